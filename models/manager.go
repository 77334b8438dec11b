package models

import (
	"time"

	"gorm.io/gorm"
)

// Manager is the legacy manager account table. New manager signups go to
// HotelManager; this table is still written by the admin create-manager flow
// and is probed during identity resolution.
type Manager struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Username  string         `gorm:"size:150" json:"username"`
	Email     string         `gorm:"uniqueIndex;size:255" json:"email"`
	Password  string         `gorm:"size:255" json:"-"`
	Role      string         `gorm:"size:32;default:hotel_manager" json:"role"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
