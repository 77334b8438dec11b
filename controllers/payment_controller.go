package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"
)

type PaymentController struct {
	Payments *services.PaymentService
	Identity *services.IdentityService
}

func NewPaymentController(payments *services.PaymentService, identity *services.IdentityService) *PaymentController {
	return &PaymentController{Payments: payments, Identity: identity}
}

type paymentPayload struct {
	BookingReference string  `json:"bookingReference" binding:"required"`
	CardNumber       string  `json:"cardNumber" binding:"required"`
	ExpiryDate       string  `json:"expiryDate" binding:"required"`
	CVV              string  `json:"cvv" binding:"required"`
	NameOnCard       string  `json:"nameOnCard" binding:"required"`
	Amount           float64 `json:"amount" binding:"required"`
	PaymentMethod    string  `json:"paymentMethod"`
}

// ProcessPayment handles POST /api/payments/process. Business failures
// (declined card, mismatched amount, duplicate payment) come back as 200
// with a FAILED outcome; only system errors produce a 5xx.
func (pc *PaymentController) ProcessPayment(c *gin.Context) {
	var payload paymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	outcome, err := pc.Payments.ProcessPayment(services.PaymentRequest{
		BookingReference: payload.BookingReference,
		CardNumber:       payload.CardNumber,
		ExpiryDate:       payload.ExpiryDate,
		CVV:              payload.CVV,
		NameOnCard:       payload.NameOnCard,
		Amount:           payload.Amount,
		PaymentMethod:    payload.PaymentMethod,
	}, callerEmail(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, outcome)
}

// GetPaymentByBookingReference handles GET /api/payments/booking/:bookingReference.
func (pc *PaymentController) GetPaymentByBookingReference(c *gin.Context) {
	email := callerEmail(c)
	payment, err := pc.Payments.GetPaymentByBookingReference(c.Param("bookingReference"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if payment.Customer.Email != email && !pc.Identity.IsAdmin(email) {
		utils.JSONError(c, http.StatusForbidden, "You are not authorized to view this payment")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payment)
}

// GetCustomerPayments handles GET /api/payments/customer.
func (pc *PaymentController) GetCustomerPayments(c *gin.Context) {
	payments, err := pc.Payments.GetPaymentsByCustomer(callerEmail(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payments)
}

// GetAllPayments handles GET /api/payments/admin/all.
func (pc *PaymentController) GetAllPayments(c *gin.Context) {
	payments, err := pc.Payments.GetAllPayments()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, payments)
}
