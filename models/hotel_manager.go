package models

import (
	"time"

	"gorm.io/gorm"
)

type HotelManager struct {
	ID           uint           `gorm:"primaryKey" json:"id"`
	Username     string         `gorm:"size:150" json:"username"`
	Email        string         `gorm:"uniqueIndex;size:255" json:"email"`
	Password     string         `gorm:"size:255" json:"-"`
	HotelName    string         `gorm:"size:255" json:"hotelName,omitempty"`
	HotelAddress string         `gorm:"size:255" json:"hotelAddress,omitempty"`
	PhoneNumber  string         `gorm:"size:32" json:"phoneNumber,omitempty"`
	Role         string         `gorm:"size:32;default:hotel_manager" json:"role"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
}
