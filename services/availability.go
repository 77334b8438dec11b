package services

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hotel-booking-backend/models"
)

// DatesOverlap reports whether two half-open intervals [aStart, aEnd) and
// [bStart, bEnd) overlap. Touching boundaries (checkout day == checkin day)
// do not overlap.
func DatesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return bStart.Before(aEnd) && bEnd.After(aStart)
}

// lockForUpdate adds a FOR UPDATE clause on MySQL. SQLite (used by the test
// suite) rejects the syntax and serializes writers on its own.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "mysql" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// roomAvailable is the availability predicate: no PENDING or CONFIRMED
// booking on the room may overlap the requested interval. CANCELLED rows
// never block. It must run on the same transactional handle as the insert
// that follows it; the blocking rows are locked so a concurrent create for
// the same room waits instead of double-booking.
func roomAvailable(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time) (bool, error) {
	var bookings []models.Booking
	err := lockForUpdate(tx).
		Where("room_id = ? AND status IN ?", roomID,
			[]string{models.BookingStatusPending, models.BookingStatusConfirmed}).
		Find(&bookings).Error
	if err != nil {
		return false, err
	}
	for _, b := range bookings {
		if DatesOverlap(dateOnly(b.CheckIn), dateOnly(b.CheckOut), checkIn, checkOut) {
			return false, nil
		}
	}
	return true, nil
}

// RoomAvailable answers the read-only availability question outside a
// booking attempt. Creation re-evaluates the predicate inside its own
// transaction, so this result is only advisory.
func (s *BookingService) RoomAvailable(roomID uint, checkIn, checkOut time.Time) (bool, error) {
	return roomAvailable(s.DB, roomID, dateOnly(checkIn), dateOnly(checkOut))
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
