package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking statuses. PENDING becomes CONFIRMED only through a successful
// payment and CANCELLED only through an explicit cancellation; the status and
// is_paid columns are never written outside those two paths.
const (
	BookingStatusPending   = "PENDING"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCancelled = "CANCELLED"
)

type Booking struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	BookingReference string `gorm:"column:booking_reference;size:64;uniqueIndex" json:"bookingReference"`

	CustomerID uint `gorm:"column:customer_id;index" json:"customerId"`
	HotelID    uint `gorm:"column:hotel_id;index" json:"hotelId"`
	RoomID     uint `gorm:"column:room_id;index" json:"roomId"`

	// Calendar dates, no time-of-day. The stay interval is half-open:
	// [check_in, check_out).
	CheckIn  time.Time `gorm:"column:check_in;type:date" json:"checkIn"`
	CheckOut time.Time `gorm:"column:check_out;type:date" json:"checkOut"`

	Guests          int       `gorm:"column:guests" json:"guests"`
	TotalPrice      float64   `gorm:"column:total_price;type:decimal(10,2)" json:"totalPrice"`
	Status          string    `gorm:"column:status;size:32;index" json:"status"`
	BookingDate     time.Time `gorm:"column:booking_date" json:"bookingDate"`
	IsPaid          bool      `gorm:"column:is_paid;default:false" json:"isPaid"`
	SpecialRequests string    `gorm:"column:special_requests;type:text" json:"specialRequests,omitempty"`

	Customer Customer `gorm:"foreignKey:CustomerID;references:ID" json:"customer,omitempty"`
	Hotel    Hotel    `gorm:"foreignKey:HotelID;references:ID" json:"hotel,omitempty"`
	Room     Room     `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
}
