package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"
)

type CustomerController struct {
	Customers *services.CustomerService
	Hotels    *services.HotelService
	JWTSecret string
}

func NewCustomerController(customers *services.CustomerService, hotels *services.HotelService, jwtSecret string) *CustomerController {
	return &CustomerController{Customers: customers, Hotels: hotels, JWTSecret: jwtSecret}
}

const accessTokenTTL = 24 * time.Hour

type customerSignupPayload struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

type loginPayload struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (cc *CustomerController) Signup(c *gin.Context) {
	var payload customerSignupPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	customer, err := cc.Customers.Signup(services.CustomerSignupRequest{
		FullName: payload.FullName,
		Email:    payload.Email,
		Password: payload.Password,
		Phone:    payload.Phone,
		Address:  payload.Address,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, customer)
}

func (cc *CustomerController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	customer, err := cc.Customers.Login(payload.Email, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	token, err := utils.NewAccessToken(cc.JWTSecret, customer.Email, string(services.RoleCustomer), accessTokenTTL)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token": token,
		"email": customer.Email,
		"role":  services.RoleCustomer,
	})
}

// CheckEmail handles GET /customer/check-email?email=; used by the signup
// form to detect existing accounts.
func (cc *CustomerController) CheckEmail(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		utils.JSONError(c, http.StatusBadRequest, "email query parameter is required")
		return
	}
	exists, err := cc.Customers.EmailExists(email)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"exists": exists})
}

func (cc *CustomerController) GetProfile(c *gin.Context) {
	customer, err := cc.Customers.GetProfile(callerEmail(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customer)
}

type profileUpdatePayload struct {
	FullName *string `json:"fullName"`
	Phone    *string `json:"phone"`
	Address  *string `json:"address"`
}

func (cc *CustomerController) UpdateProfile(c *gin.Context) {
	var payload profileUpdatePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	customer, err := cc.Customers.UpdateProfile(callerEmail(c), services.CustomerProfileUpdate{
		FullName: payload.FullName,
		Phone:    payload.Phone,
		Address:  payload.Address,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customer)
}

type changePasswordPayload struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required"`
}

func (cc *CustomerController) ChangePassword(c *gin.Context) {
	var payload changePasswordPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	if err := cc.Customers.ChangePassword(callerEmail(c), payload.CurrentPassword, payload.NewPassword); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "password updated"})
}

// ViewHotels handles GET /customer/hotels.
func (cc *CustomerController) ViewHotels(c *gin.Context) {
	hotels, err := cc.Hotels.GetAllHotels()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

// GetHotelDetails handles GET /customer/hotels/:id.
func (cc *CustomerController) GetHotelDetails(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "hotel id must be numeric")
		return
	}
	hotel, err := cc.Hotels.GetHotelByID(uint(id))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

// GetRoomsByHotelName handles GET /customer/hotels/rooms?hotelName=.
func (cc *CustomerController) GetRoomsByHotelName(c *gin.Context) {
	name := c.Query("hotelName")
	if name == "" {
		utils.JSONError(c, http.StatusBadRequest, "hotelName query parameter is required")
		return
	}
	rooms, err := cc.Hotels.GetRoomsByHotelName(name)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// SearchHotels handles GET /customer/hotels/search?query=.
func (cc *CustomerController) SearchHotels(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		utils.JSONError(c, http.StatusBadRequest, "query parameter is required")
		return
	}
	hotels, err := cc.Hotels.SearchHotels(query)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

// FilterRooms handles GET /customer/hotels/rooms/filter.
func (cc *CustomerController) FilterRooms(c *gin.Context) {
	filter := services.RoomFilter{
		HotelName:     c.Query("hotelName"),
		Type:          c.Query("type"),
		AvailableOnly: c.Query("availableOnly") == "true",
	}
	if filter.HotelName == "" {
		utils.JSONError(c, http.StatusBadRequest, "hotelName query parameter is required")
		return
	}
	if raw := c.Query("minPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "minPrice must be numeric")
			return
		}
		filter.MinPrice = &v
	}
	if raw := c.Query("maxPrice"); raw != "" {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "maxPrice must be numeric")
			return
		}
		filter.MaxPrice = &v
	}
	rooms, err := cc.Hotels.FilterRooms(filter)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}
