package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Hotel struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:255;index" json:"name"`
	Address     string         `gorm:"size:255" json:"address"`
	Contact     string         `gorm:"size:64" json:"contact,omitempty"`
	Description string         `gorm:"type:text" json:"description,omitempty"`
	Amenities   datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`
	ManagerID   *uint          `gorm:"column:manager_id;index" json:"managerId,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	Manager HotelManager `gorm:"foreignKey:ManagerID;references:ID" json:"manager,omitempty"`
	Rooms   []Room       `gorm:"foreignKey:HotelID" json:"rooms,omitempty"`
}
