package models

import (
	"time"

	"gorm.io/gorm"
)

type Room struct {
	ID         uint    `gorm:"primaryKey" json:"id"`
	HotelID    uint    `gorm:"column:hotel_id;uniqueIndex:idx_hotel_room_number" json:"hotelId"`
	RoomNumber string  `gorm:"column:room_number;size:50;uniqueIndex:idx_hotel_room_number" json:"roomNumber"`
	Type       string  `gorm:"size:64" json:"type"`
	Price      float64 `gorm:"type:decimal(10,2)" json:"price"`
	Available  bool    `gorm:"default:true" json:"available"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Hotel Hotel `gorm:"foreignKey:HotelID;references:ID" json:"hotel,omitempty"`
}
