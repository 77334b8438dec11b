package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"hotel-booking-backend/models"
)

func validCreateRequest(hotel models.Hotel, room models.Room) CreateBookingRequest {
	return CreateBookingRequest{
		HotelID:    hotel.ID,
		RoomID:     room.ID,
		CheckIn:    futureDate(7),
		CheckOut:   futureDate(10),
		Guests:     2,
		TotalPrice: 375.00,
	}
}

func TestCreateBooking(t *testing.T) {
	db := openTestDB(t)
	svc := NewBookingService(db)
	seedCustomer(t, db, "guest@example.com")
	hotel, room := seedHotelAndRoom(t, db)

	booking, err := svc.CreateBooking(validCreateRequest(hotel, room), "guest@example.com")
	require.NoError(t, err)
	require.Equal(t, models.BookingStatusPending, booking.Status)
	require.False(t, booking.IsPaid)
	require.True(t, strings.HasPrefix(booking.BookingReference, "HB-"),
		"generated reference %q must carry the HB- prefix", booking.BookingReference)
	require.NotZero(t, booking.ID)
	require.NotZero(t, booking.BookingDate)
}

func TestCreateBookingKeepsClientReference(t *testing.T) {
	db := openTestDB(t)
	svc := NewBookingService(db)
	seedCustomer(t, db, "guest@example.com")
	hotel, room := seedHotelAndRoom(t, db)

	req := validCreateRequest(hotel, room)
	req.BookingReference = "CLIENT-REF-42"
	booking, err := svc.CreateBooking(req, "guest@example.com")
	require.NoError(t, err)
	require.Equal(t, "CLIENT-REF-42", booking.BookingReference)

	// Same client reference again, non-overlapping dates: rejected instead
	// of silently regenerated.
	req2 := validCreateRequest(hotel, room)
	req2.CheckIn = futureDate(20)
	req2.CheckOut = futureDate(22)
	req2.BookingReference = "CLIENT-REF-42"
	_, err = svc.CreateBooking(req2, "guest@example.com")
	require.Error(t, err)
	require.Equal(t, KindConflict, KindOf(err))
}

func TestCreateBookingValidation(t *testing.T) {
	db := openTestDB(t)
	svc := NewBookingService(db)
	seedCustomer(t, db, "guest@example.com")
	hotel, room := seedHotelAndRoom(t, db)

	tests := []struct {
		name   string
		mutate func(*CreateBookingRequest)
		email  string
		kind   Kind
	}{
		{
			name:   "unknown customer",
			mutate: func(r *CreateBookingRequest) {},
			email:  "nobody@example.com",
			kind:   KindNotFound,
		},
		{
			name:   "unknown hotel",
			mutate: func(r *CreateBookingRequest) { r.HotelID = 9999 },
			email:  "guest@example.com",
			kind:   KindNotFound,
		},
		{
			name:   "unknown room",
			mutate: func(r *CreateBookingRequest) { r.RoomID = 9999 },
			email:  "guest@example.com",
			kind:   KindNotFound,
		},
		{
			name: "check-in equals check-out",
			mutate: func(r *CreateBookingRequest) {
				r.CheckIn = futureDate(7)
				r.CheckOut = futureDate(7)
			},
			email: "guest@example.com",
			kind:  KindInvalidRequest,
		},
		{
			name: "check-in after check-out",
			mutate: func(r *CreateBookingRequest) {
				r.CheckIn = futureDate(10)
				r.CheckOut = futureDate(7)
			},
			email: "guest@example.com",
			kind:  KindInvalidRequest,
		},
		{
			name: "check-in in the past",
			mutate: func(r *CreateBookingRequest) {
				r.CheckIn = futureDate(-2)
				r.CheckOut = futureDate(3)
			},
			email: "guest@example.com",
			kind:  KindInvalidRequest,
		},
		{
			name:   "zero guests",
			mutate: func(r *CreateBookingRequest) { r.Guests = 0 },
			email:  "guest@example.com",
			kind:   KindInvalidRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validCreateRequest(hotel, room)
			tt.mutate(&req)
			_, err := svc.CreateBooking(req, tt.email)
			require.Error(t, err)
			require.Equal(t, tt.kind, KindOf(err))
		})
	}
}

func TestCreateBookingRejectsOverlap(t *testing.T) {
	db := openTestDB(t)
	svc := NewBookingService(db)
	seedCustomer(t, db, "guest@example.com")
	hotel, room := seedHotelAndRoom(t, db)

	first := validCreateRequest(hotel, room)
	first.CheckIn = futureDate(7)
	first.CheckOut = futureDate(11)
	_, err := svc.CreateBooking(first, "guest@example.com")
	require.NoError(t, err)

	overlapping := validCreateRequest(hotel, room)
	overlapping.CheckIn = futureDate(10)
	overlapping.CheckOut = futureDate(14)
	_, err = svc.CreateBooking(overlapping, "guest@example.com")
	require.Error(t, err)
	require.Equal(t, KindConflict, KindOf(err))
	require.EqualError(t, err, "Room is not available for the requested dates")

	// Back-to-back stay: new check-in on the previous check-out day.
	adjacent := validCreateRequest(hotel, room)
	adjacent.CheckIn = futureDate(11)
	adjacent.CheckOut = futureDate(14)
	_, err = svc.CreateBooking(adjacent, "guest@example.com")
	require.NoError(t, err)
}

func TestCancelledBookingFreesTheRoom(t *testing.T) {
	db := openTestDB(t)
	svc := NewBookingService(db)
	seedCustomer(t, db, "guest@example.com")
	hotel, room := seedHotelAndRoom(t, db)

	first := validCreateRequest(hotel, room)
	booking, err := svc.CreateBooking(first, "guest@example.com")
	require.NoError(t, err)

	_, err = svc.CancelBooking(booking.BookingReference, "guest@example.com")
	require.NoError(t, err)

	again := validCreateRequest(hotel, room)
	_, err = svc.CreateBooking(again, "guest@example.com")
	require.NoError(t, err)
}

func TestCancelBooking(t *testing.T) {
	db := openTestDB(t)
	svc := NewBookingService(db)
	seedCustomer(t, db, "guest@example.com")
	seedCustomer(t, db, "other@example.com")
	hotel, room := seedHotelAndRoom(t, db)

	booking, err := svc.CreateBooking(validCreateRequest(hotel, room), "guest@example.com")
	require.NoError(t, err)

	_, err = svc.CancelBooking(booking.BookingReference, "other@example.com")
	require.Error(t, err)
	require.Equal(t, KindForbidden, KindOf(err))

	cancelled, err := svc.CancelBooking(booking.BookingReference, "guest@example.com")
	require.NoError(t, err)
	require.Equal(t, models.BookingStatusCancelled, cancelled.Status)

	_, err = svc.CancelBooking(booking.BookingReference, "guest@example.com")
	require.Error(t, err)
	require.Equal(t, KindConflict, KindOf(err))
	require.EqualError(t, err, "Booking is already cancelled")

	_, err = svc.CancelBooking("HB-MISSING-XXXX", "guest@example.com")
	require.Error(t, err)
	require.Equal(t, KindNotFound, KindOf(err))
}

func TestCancelBookingAfterCheckIn(t *testing.T) {
	db := openTestDB(t)
	svc := NewBookingService(db)
	customer := seedCustomer(t, db, "guest@example.com")
	_, room := seedHotelAndRoom(t, db)

	// Seed directly: a stay already in progress cannot be created through
	// the service.
	booking := models.Booking{
		BookingReference: "HB-PAST-0001",
		CustomerID:       customer.ID,
		HotelID:          room.HotelID,
		RoomID:           room.ID,
		CheckIn:          futureDate(-3),
		CheckOut:         futureDate(2),
		Status:           models.BookingStatusConfirmed,
	}
	require.NoError(t, db.Create(&booking).Error)

	_, err := svc.CancelBooking(booking.BookingReference, "guest@example.com")
	require.Error(t, err)
	require.Equal(t, KindConflict, KindOf(err))
	require.EqualError(t, err, "Booking cannot be cancelled after check-in date")
}

func TestBookingLookups(t *testing.T) {
	db := openTestDB(t)
	svc := NewBookingService(db)
	seedCustomer(t, db, "guest@example.com")
	hotel, room := seedHotelAndRoom(t, db)

	created, err := svc.CreateBooking(validCreateRequest(hotel, room), "guest@example.com")
	require.NoError(t, err)

	found, err := svc.GetBookingByReference(created.BookingReference)
	require.NoError(t, err)
	require.Equal(t, created.ID, found.ID)
	require.Equal(t, "guest@example.com", found.Customer.Email)

	_, err = svc.GetBookingByReference("HB-MISSING-XXXX")
	require.Equal(t, KindNotFound, KindOf(err))

	byCustomer, err := svc.GetBookingsByCustomer("guest@example.com")
	require.NoError(t, err)
	require.Len(t, byCustomer, 1)

	_, err = svc.GetBookingsByCustomer("nobody@example.com")
	require.Equal(t, KindNotFound, KindOf(err))

	byHotel, err := svc.GetBookingsByHotel(hotel.ID)
	require.NoError(t, err)
	require.Len(t, byHotel, 1)

	_, err = svc.GetBookingsByHotel(9999)
	require.Equal(t, KindNotFound, KindOf(err))

	all, err := svc.GetAllBookings()
	require.NoError(t, err)
	require.Len(t, all, 1)
}
