package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"
)

type BookingController struct {
	Bookings *services.BookingService
	Identity *services.IdentityService
}

func NewBookingController(bookings *services.BookingService, identity *services.IdentityService) *BookingController {
	return &BookingController{Bookings: bookings, Identity: identity}
}

const dateLayout = "2006-01-02"

type createBookingPayload struct {
	HotelID          uint    `json:"hotelId" binding:"required"`
	RoomID           uint    `json:"roomId" binding:"required"`
	CheckIn          string  `json:"checkIn" binding:"required"`
	CheckOut         string  `json:"checkOut" binding:"required"`
	Guests           int     `json:"guests" binding:"required"`
	TotalPrice       float64 `json:"totalPrice" binding:"required"`
	SpecialRequests  string  `json:"specialRequests"`
	BookingReference string  `json:"bookingReference"`
}

// CreateBooking handles POST /customer/booking/create.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var payload createBookingPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}

	checkIn, err := time.Parse(dateLayout, payload.CheckIn)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "checkIn must be a date in YYYY-MM-DD format")
		return
	}
	checkOut, err := time.Parse(dateLayout, payload.CheckOut)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "checkOut must be a date in YYYY-MM-DD format")
		return
	}

	booking, err := bc.Bookings.CreateBooking(services.CreateBookingRequest{
		HotelID:          payload.HotelID,
		RoomID:           payload.RoomID,
		CheckIn:          checkIn,
		CheckOut:         checkOut,
		Guests:           payload.Guests,
		TotalPrice:       payload.TotalPrice,
		SpecialRequests:  payload.SpecialRequests,
		BookingReference: payload.BookingReference,
	}, callerEmail(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// GetBookingByReference handles GET /customer/booking/:bookingReference.
// The booking is returned only to its owner or an admin.
func (bc *BookingController) GetBookingByReference(c *gin.Context) {
	reference := c.Param("bookingReference")
	email := callerEmail(c)

	booking, err := bc.Bookings.GetBookingByReference(reference)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if booking.Customer.Email != email && !bc.Identity.IsAdmin(email) {
		utils.JSONError(c, http.StatusForbidden, "You are not authorized to view this booking")
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// GetCustomerBookings handles GET /customer/booking/all.
func (bc *BookingController) GetCustomerBookings(c *gin.Context) {
	bookings, err := bc.Bookings.GetBookingsByCustomer(callerEmail(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// CancelBooking handles PUT /customer/booking/:bookingReference/cancel.
func (bc *BookingController) CancelBooking(c *gin.Context) {
	booking, err := bc.Bookings.CancelBooking(c.Param("bookingReference"), callerEmail(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}

// GetHotelBookings handles GET /customer/booking/hotel/:hotelId.
func (bc *BookingController) GetHotelBookings(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Param("hotelId"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "hotelId must be numeric")
		return
	}
	bookings, err := bc.Bookings.GetBookingsByHotel(uint(hotelID))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// GetAllBookings handles GET /customer/booking/admin/all.
func (bc *BookingController) GetAllBookings(c *gin.Context) {
	bookings, err := bc.Bookings.GetAllBookings()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}
