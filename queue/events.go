// Package queue defines the domain events published to the message broker
// and a best-effort publisher for them.
package queue

// Queue names. Durable; consumers declare the same names.
const (
	BookingConfirmedQueue = "booking.confirmed"
	PaymentCompletedQueue = "payment.completed"
)

// BookingConfirmedEvent is published when a successful payment confirms a
// booking. It carries enough for downstream consumers (notifications,
// analytics) to act without querying the primary database.
type BookingConfirmedEvent struct {
	BookingReference string  `json:"booking_reference"`
	CustomerEmail    string  `json:"customer_email"`
	HotelID          uint    `json:"hotel_id"`
	RoomID           uint    `json:"room_id"`
	CheckIn          string  `json:"check_in"`
	CheckOut         string  `json:"check_out"`
	TotalPrice       float64 `json:"total_price"`
	ConfirmedAt      string  `json:"confirmed_at"`
}

// PaymentCompletedEvent is published after a COMPLETED payment row commits.
type PaymentCompletedEvent struct {
	BookingReference string  `json:"booking_reference"`
	Amount           float64 `json:"amount"`
	TransactionID    string  `json:"transaction_id"`
	PaymentMethod    string  `json:"payment_method,omitempty"`
	PaidAt           string  `json:"paid_at"`
}
