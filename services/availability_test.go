package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"hotel-booking-backend/models"
)

func TestDatesOverlap(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{
			name:   "fully inside",
			aStart: date(2024, 6, 1), aEnd: date(2024, 6, 10),
			bStart: date(2024, 6, 3), bEnd: date(2024, 6, 5),
			want: true,
		},
		{
			name:   "partial overlap at tail",
			aStart: date(2024, 6, 1), aEnd: date(2024, 6, 5),
			bStart: date(2024, 6, 4), bEnd: date(2024, 6, 8),
			want: true,
		},
		{
			name:   "shared boundary does not overlap",
			aStart: date(2024, 6, 1), aEnd: date(2024, 6, 5),
			bStart: date(2024, 6, 5), bEnd: date(2024, 6, 8),
			want: false,
		},
		{
			name:   "disjoint",
			aStart: date(2024, 6, 1), aEnd: date(2024, 6, 3),
			bStart: date(2024, 6, 10), bEnd: date(2024, 6, 12),
			want: false,
		},
		{
			name:   "identical intervals",
			aStart: date(2024, 6, 1), aEnd: date(2024, 6, 5),
			bStart: date(2024, 6, 1), bEnd: date(2024, 6, 5),
			want: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, DatesOverlap(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd))
			// Overlap is symmetric.
			require.Equal(t, tt.want, DatesOverlap(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd))
		})
	}
}

func TestRoomAvailable(t *testing.T) {
	db := openTestDB(t)
	svc := NewBookingService(db)
	customer := seedCustomer(t, db, "guest@example.com")
	_, room := seedHotelAndRoom(t, db)

	block := models.Booking{
		BookingReference: "HB-TEST-0001",
		CustomerID:       customer.ID,
		HotelID:          room.HotelID,
		RoomID:           room.ID,
		CheckIn:          date(2024, 6, 1),
		CheckOut:         date(2024, 6, 5),
		Status:           models.BookingStatusConfirmed,
	}
	require.NoError(t, db.Create(&block).Error)

	available, err := svc.RoomAvailable(room.ID, date(2024, 6, 4), date(2024, 6, 8))
	require.NoError(t, err)
	require.False(t, available, "overlapping interval must be unavailable")

	available, err = svc.RoomAvailable(room.ID, date(2024, 6, 5), date(2024, 6, 8))
	require.NoError(t, err)
	require.True(t, available, "half-open interval: checkout day may be reused as checkin")
}

func TestRoomAvailableIgnoresCancelled(t *testing.T) {
	db := openTestDB(t)
	svc := NewBookingService(db)
	customer := seedCustomer(t, db, "guest@example.com")
	_, room := seedHotelAndRoom(t, db)

	cancelled := models.Booking{
		BookingReference: "HB-TEST-0002",
		CustomerID:       customer.ID,
		HotelID:          room.HotelID,
		RoomID:           room.ID,
		CheckIn:          date(2024, 6, 1),
		CheckOut:         date(2024, 6, 5),
		Status:           models.BookingStatusCancelled,
	}
	require.NoError(t, db.Create(&cancelled).Error)

	available, err := svc.RoomAvailable(room.ID, date(2024, 6, 2), date(2024, 6, 4))
	require.NoError(t, err)
	require.True(t, available, "cancelled bookings never block")
}
