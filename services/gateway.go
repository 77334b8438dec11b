package services

import (
	"strings"

	"hotel-booking-backend/models"
	"hotel-booking-backend/utils"
)

// PaymentGatewayName identifies the processor recorded on payment rows.
const PaymentGatewayName = "STRIPE"

type GatewayResult struct {
	Status        string
	Message       string
	TransactionID string
}

// PaymentGateway is the charge contract. The simulation below stands in for
// a real processor; a production integration replaces it behind the same
// interface.
type PaymentGateway interface {
	Charge(cardNumber string) GatewayResult
}

// SimulatedGateway decides deterministically: cards whose final digit is odd
// are approved, even digits are declined. Keeps payment outcomes reproducible
// for tests.
type SimulatedGateway struct{}

func (SimulatedGateway) Charge(cardNumber string) GatewayResult {
	card := strings.ReplaceAll(strings.TrimSpace(cardNumber), " ", "")
	if card == "" {
		return GatewayResult{Status: models.PaymentStatusFailed, Message: "Invalid card number"}
	}
	last := card[len(card)-1]
	if last < '0' || last > '9' {
		return GatewayResult{Status: models.PaymentStatusFailed, Message: "Invalid card number"}
	}
	if (last-'0')%2 == 1 {
		return GatewayResult{
			Status:        models.PaymentStatusCompleted,
			Message:       "Payment processed successfully",
			TransactionID: utils.GenerateTransactionID(),
		}
	}
	return GatewayResult{Status: models.PaymentStatusFailed, Message: "Payment declined by issuing bank"}
}

// cardLastFour keeps only the tail of the card number; full card data is
// never persisted.
func cardLastFour(cardNumber string) string {
	card := strings.ReplaceAll(strings.TrimSpace(cardNumber), " ", "")
	if len(card) <= 4 {
		return card
	}
	return card[len(card)-4:]
}
