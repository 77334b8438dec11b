package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	PaymentStatusPending   = "PENDING"
	PaymentStatusCompleted = "COMPLETED"
	PaymentStatusFailed    = "FAILED"
	PaymentStatusRefunded  = "REFUNDED"
)

// Payment is one processing attempt. Rows are append-only: failed attempts
// accumulate, at most one COMPLETED row exists per booking reference.
type Payment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	BookingReference string    `gorm:"column:booking_reference;size:64;index" json:"bookingReference"`
	Amount           float64   `gorm:"column:amount;type:decimal(10,2)" json:"amount"`
	PaymentStatus    string    `gorm:"column:payment_status;size:32;index" json:"paymentStatus"`
	PaymentDate      time.Time `gorm:"column:payment_date" json:"paymentDate"`
	PaymentMethod    string    `gorm:"column:payment_method;size:32" json:"paymentMethod,omitempty"`
	CardLastFour     string    `gorm:"column:card_last_four;size:4" json:"cardLastFour,omitempty"`
	TransactionID    string    `gorm:"column:transaction_id;size:64" json:"transactionId,omitempty"`
	PaymentGateway   string    `gorm:"column:payment_gateway;size:32" json:"paymentGateway,omitempty"`
	ErrorMessage     string    `gorm:"column:error_message;size:255" json:"errorMessage,omitempty"`

	CustomerID uint     `gorm:"column:customer_id;index" json:"customerId"`
	Customer   Customer `gorm:"foreignKey:CustomerID;references:ID" json:"customer,omitempty"`
}
