package services

import (
	"context"
	"errors"
	"log"
	"time"

	"gorm.io/gorm"

	"hotel-booking-backend/models"
	"hotel-booking-backend/queue"
	"hotel-booking-backend/utils"
)

// PaymentService validates payment requests against bookings, charges the
// gateway, records every attempt and drives the booking's CONFIRMED/paid
// transition.
type PaymentService struct {
	DB      *gorm.DB
	Gateway PaymentGateway
	Events  *queue.Publisher
}

func NewPaymentService(db *gorm.DB, gateway PaymentGateway, events *queue.Publisher) *PaymentService {
	return &PaymentService{DB: db, Gateway: gateway, Events: events}
}

type PaymentRequest struct {
	BookingReference string
	CardNumber       string
	ExpiryDate       string
	CVV              string
	NameOnCard       string
	Amount           float64
	PaymentMethod    string
}

// PaymentOutcome is the business result of a payment attempt. Declined
// cards, mismatched amounts and duplicate submissions are FAILED outcomes,
// not errors; callers branch on PaymentStatus.
type PaymentOutcome struct {
	BookingReference string    `json:"bookingReference"`
	Amount           float64   `json:"amount"`
	PaymentStatus    string    `json:"paymentStatus"`
	Message          string    `json:"message"`
	TransactionID    string    `json:"transactionId,omitempty"`
	PaymentDate      time.Time `json:"paymentDate"`
}

func failedOutcome(reference string, amount float64, message string) PaymentOutcome {
	return PaymentOutcome{
		BookingReference: reference,
		Amount:           amount,
		PaymentStatus:    models.PaymentStatusFailed,
		Message:          message,
		PaymentDate:      time.Now(),
	}
}

// ProcessPayment runs the sequential validation chain; the first failure
// short-circuits with a FAILED outcome. The duplicate check considers only
// COMPLETED rows, so a declined card never locks a booking out of retrying.
// Duplicate-check, attempt insert and booking transition share one
// transaction with the booking row locked.
func (s *PaymentService) ProcessPayment(req PaymentRequest, customerEmail string) (PaymentOutcome, error) {
	log.Printf("processing payment: reference=%s", req.BookingReference)

	var booking models.Booking
	if err := s.DB.Where("booking_reference = ?", req.BookingReference).First(&booking).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return failedOutcome(req.BookingReference, req.Amount, "Booking not found"), nil
		}
		return PaymentOutcome{}, err
	}

	var customer models.Customer
	if err := s.DB.Where("email = ?", customerEmail).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return failedOutcome(req.BookingReference, req.Amount, "Customer not found"), nil
		}
		return PaymentOutcome{}, err
	}

	var outcome PaymentOutcome
	confirmed := false
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := lockForUpdate(tx).Where("booking_reference = ?", req.BookingReference).
			First(&booking).Error; err != nil {
			return err
		}

		var completed int64
		if err := tx.Model(&models.Payment{}).
			Where("booking_reference = ? AND payment_status = ?",
				req.BookingReference, models.PaymentStatusCompleted).
			Count(&completed).Error; err != nil {
			return err
		}
		if completed > 0 {
			outcome = failedOutcome(req.BookingReference, req.Amount, "Payment already processed for this booking")
			return nil
		}

		if !utils.SameAmount(req.Amount, booking.TotalPrice) {
			outcome = failedOutcome(req.BookingReference, req.Amount, "Payment amount does not match booking amount")
			return s.recordAttempt(tx, req, customer.ID, models.PaymentStatusFailed, "", outcome.Message)
		}

		result := s.Gateway.Charge(req.CardNumber)
		outcome = PaymentOutcome{
			BookingReference: req.BookingReference,
			Amount:           req.Amount,
			PaymentStatus:    result.Status,
			Message:          result.Message,
			TransactionID:    result.TransactionID,
			PaymentDate:      time.Now(),
		}

		if result.Status != models.PaymentStatusCompleted {
			return s.recordAttempt(tx, req, customer.ID, models.PaymentStatusFailed, "", result.Message)
		}

		if err := s.recordAttempt(tx, req, customer.ID, models.PaymentStatusCompleted, result.TransactionID, ""); err != nil {
			return err
		}
		confirmed = true
		return tx.Model(&models.Booking{}).
			Where("id = ?", booking.ID).
			Updates(map[string]interface{}{
				"status":  models.BookingStatusConfirmed,
				"is_paid": true,
			}).Error
	})
	if err != nil {
		return PaymentOutcome{}, err
	}

	if confirmed {
		log.Printf("payment completed: reference=%s transaction=%s", req.BookingReference, outcome.TransactionID)
		s.publishConfirmation(booking, customerEmail, req, outcome)
	} else {
		log.Printf("payment failed: reference=%s reason=%s", req.BookingReference, outcome.Message)
	}
	return outcome, nil
}

// recordAttempt appends one payment row. Only the last four card digits are
// ever stored.
func (s *PaymentService) recordAttempt(tx *gorm.DB, req PaymentRequest, customerID uint, status, transactionID, errorMessage string) error {
	payment := models.Payment{
		BookingReference: req.BookingReference,
		Amount:           req.Amount,
		PaymentStatus:    status,
		PaymentDate:      time.Now(),
		PaymentMethod:    req.PaymentMethod,
		CardLastFour:     cardLastFour(req.CardNumber),
		TransactionID:    transactionID,
		PaymentGateway:   PaymentGatewayName,
		ErrorMessage:     errorMessage,
		CustomerID:       customerID,
	}
	return tx.Create(&payment).Error
}

func (s *PaymentService) publishConfirmation(booking models.Booking, customerEmail string, req PaymentRequest, outcome PaymentOutcome) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = s.Events.Publish(ctx, queue.PaymentCompletedQueue, queue.PaymentCompletedEvent{
		BookingReference: booking.BookingReference,
		Amount:           outcome.Amount,
		TransactionID:    outcome.TransactionID,
		PaymentMethod:    req.PaymentMethod,
		PaidAt:           outcome.PaymentDate.UTC().Format(time.RFC3339),
	})
	_ = s.Events.Publish(ctx, queue.BookingConfirmedQueue, queue.BookingConfirmedEvent{
		BookingReference: booking.BookingReference,
		CustomerEmail:    customerEmail,
		HotelID:          booking.HotelID,
		RoomID:           booking.RoomID,
		CheckIn:          booking.CheckIn.Format("2006-01-02"),
		CheckOut:         booking.CheckOut.Format("2006-01-02"),
		TotalPrice:       booking.TotalPrice,
		ConfirmedAt:      time.Now().UTC().Format(time.RFC3339),
	})
}

// GetPaymentByBookingReference returns the most recent payment row for a
// booking reference.
func (s *PaymentService) GetPaymentByBookingReference(reference string) (models.Payment, error) {
	var payment models.Payment
	err := s.DB.Preload("Customer").
		Where("booking_reference = ?", reference).
		Order("id DESC").
		First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Payment{}, notFound("Payment not found")
		}
		return models.Payment{}, err
	}
	return payment, nil
}

func (s *PaymentService) GetPaymentsByCustomer(customerEmail string) ([]models.Payment, error) {
	var customer models.Customer
	if err := s.DB.Where("email = ?", customerEmail).First(&customer).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Customer not found")
		}
		return nil, err
	}

	var payments []models.Payment
	err := s.DB.Where("customer_id = ?", customer.ID).
		Order("payment_date DESC").
		Find(&payments).Error
	return payments, err
}

func (s *PaymentService) GetAllPayments() ([]models.Payment, error) {
	var payments []models.Payment
	err := s.DB.Preload("Customer").Order("payment_date DESC").Find(&payments).Error
	return payments, err
}
