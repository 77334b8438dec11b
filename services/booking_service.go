package services

import (
	"errors"
	"log"
	"strings"
	"time"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"hotel-booking-backend/models"
	"hotel-booking-backend/utils"
)

// BookingService owns the booking lifecycle: creation with availability
// checking, lookups and cancellation.
type BookingService struct {
	DB *gorm.DB
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

type CreateBookingRequest struct {
	HotelID          uint
	RoomID           uint
	CheckIn          time.Time
	CheckOut         time.Time
	Guests           int
	TotalPrice       float64
	SpecialRequests  string
	BookingReference string
}

const maxReferenceRetries = 3

// CreateBooking validates the request, re-checks availability and inserts
// the booking inside one transaction. New bookings start as PENDING/unpaid;
// payment is a separate step.
func (s *BookingService) CreateBooking(req CreateBookingRequest, customerEmail string) (models.Booking, error) {
	var customer models.Customer
	if err := s.DB.Where("email = ?", customerEmail).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, notFound("Customer not found")
		}
		return models.Booking{}, err
	}

	var hotel models.Hotel
	if err := s.DB.First(&hotel, req.HotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, notFound("Hotel not found")
		}
		return models.Booking{}, err
	}

	var room models.Room
	if err := s.DB.First(&room, req.RoomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, notFound("Room not found")
		}
		return models.Booking{}, err
	}

	checkIn := dateOnly(req.CheckIn)
	checkOut := dateOnly(req.CheckOut)

	if !checkIn.Before(checkOut) {
		return models.Booking{}, invalidRequest("Check-in date must be before check-out date")
	}
	if checkIn.Before(dateOnly(time.Now())) {
		return models.Booking{}, invalidRequest("Check-in date cannot be in the past")
	}
	if req.Guests < 1 {
		return models.Booking{}, invalidRequest("Guests must be at least 1")
	}

	var booking models.Booking
	for attempt := 0; attempt < maxReferenceRetries; attempt++ {
		reference := strings.TrimSpace(req.BookingReference)
		if reference == "" || attempt > 0 {
			reference = utils.GenerateBookingReference()
		}

		booking = models.Booking{
			BookingReference: reference,
			CustomerID:       customer.ID,
			HotelID:          hotel.ID,
			RoomID:           room.ID,
			CheckIn:          checkIn,
			CheckOut:         checkOut,
			Guests:           req.Guests,
			TotalPrice:       req.TotalPrice,
			Status:           models.BookingStatusPending,
			BookingDate:      time.Now(),
			IsPaid:           false,
			SpecialRequests:  req.SpecialRequests,
		}

		// Availability must be re-evaluated on the same transaction as the
		// insert; the predicate locks the room's blocking rows so two
		// concurrent requests for overlapping dates cannot both pass.
		err := s.DB.Transaction(func(tx *gorm.DB) error {
			available, aErr := roomAvailable(tx, room.ID, checkIn, checkOut)
			if aErr != nil {
				return aErr
			}
			if !available {
				return conflict("Room is not available for the requested dates")
			}
			return tx.Create(&booking).Error
		})
		if err == nil {
			log.Printf("booking created: reference=%s customer=%s", booking.BookingReference, customerEmail)
			booking.Customer = customer
			booking.Hotel = hotel
			booking.Room = room
			return booking, nil
		}
		if isDuplicateKeyError(err) {
			if strings.TrimSpace(req.BookingReference) != "" {
				// Client-supplied reference: not ours to regenerate.
				return models.Booking{}, conflict("Booking reference already in use")
			}
			log.Printf("booking reference collision (attempt %d) - retrying", attempt+1)
			continue
		}
		return models.Booking{}, err
	}
	return models.Booking{}, errors.New("failed to generate a unique booking reference")
}

// GetBookingByReference is a bare lookup; ownership is enforced at the
// boundary, not here.
func (s *BookingService) GetBookingByReference(reference string) (models.Booking, error) {
	var booking models.Booking
	err := s.DB.Preload("Customer").Preload("Hotel").Preload("Room").
		Where("booking_reference = ?", reference).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, notFound("Booking not found")
		}
		return models.Booking{}, err
	}
	return booking, nil
}

func (s *BookingService) GetBookingsByCustomer(customerEmail string) ([]models.Booking, error) {
	var customer models.Customer
	if err := s.DB.Where("email = ?", customerEmail).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Customer not found")
		}
		return nil, err
	}

	var bookings []models.Booking
	err := s.DB.Preload("Hotel").Preload("Room").
		Where("customer_id = ?", customer.ID).
		Order("booking_date DESC").
		Find(&bookings).Error
	return bookings, err
}

func (s *BookingService) GetBookingsByHotel(hotelID uint) ([]models.Booking, error) {
	var hotel models.Hotel
	if err := s.DB.First(&hotel, hotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Hotel not found")
		}
		return nil, err
	}

	var bookings []models.Booking
	err := s.DB.Preload("Customer").Preload("Room").
		Where("hotel_id = ?", hotelID).
		Order("check_in").
		Find(&bookings).Error
	return bookings, err
}

// CancelBooking moves a booking to CANCELLED. Only the owning customer may
// cancel, only strictly before check-in, never twice. No refund is issued.
func (s *BookingService) CancelBooking(reference, customerEmail string) (models.Booking, error) {
	var customer models.Customer
	if err := s.DB.Where("email = ?", customerEmail).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Booking{}, notFound("Customer not found")
		}
		return models.Booking{}, err
	}

	var booking models.Booking
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).Where("booking_reference = ?", reference).First(&booking).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return notFound("Booking not found")
			}
			return err
		}
		if booking.CustomerID != customer.ID {
			return forbidden("You are not authorized to cancel this booking")
		}
		if booking.Status == models.BookingStatusCancelled {
			return conflict("Booking is already cancelled")
		}
		if dateOnly(time.Now()).After(dateOnly(booking.CheckIn)) {
			return conflict("Booking cannot be cancelled after check-in date")
		}
		booking.Status = models.BookingStatusCancelled
		return tx.Model(&models.Booking{}).
			Where("id = ?", booking.ID).
			Update("status", models.BookingStatusCancelled).Error
	})
	if err != nil {
		return models.Booking{}, err
	}
	log.Printf("booking cancelled: reference=%s customer=%s", reference, customerEmail)
	return booking, nil
}

func (s *BookingService) GetAllBookings() ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.Preload("Customer").Preload("Hotel").Preload("Room").
		Order("booking_date DESC").
		Find(&bookings).Error
	return bookings, err
}

// isDuplicateKeyError detects unique-constraint violations across the MySQL
// driver (error 1062) and the SQLite driver used in tests.
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1062
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique")
}
