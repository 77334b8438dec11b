package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"
)

type HotelController struct {
	Hotels *services.HotelService
}

func NewHotelController(hotels *services.HotelService) *HotelController {
	return &HotelController{Hotels: hotels}
}

type hotelPayload struct {
	Name        string         `json:"name"`
	Address     string         `json:"address"`
	Contact     string         `json:"contact"`
	Description string         `json:"description"`
	Amenities   datatypes.JSON `json:"amenities"`
}

func (p hotelPayload) toRequest() services.HotelRequest {
	return services.HotelRequest{
		Name:        p.Name,
		Address:     p.Address,
		Contact:     p.Contact,
		Description: p.Description,
		Amenities:   p.Amenities,
	}
}

// AddHotel handles POST /manager/hotel/add.
func (hc *HotelController) AddHotel(c *gin.Context) {
	var payload hotelPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	hotel, err := hc.Hotels.AddHotel(payload.toRequest(), callerEmail(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, hotel)
}

// ViewHotels handles GET /manager/hotel/view (manager-scoped).
func (hc *HotelController) ViewHotels(c *gin.Context) {
	hotels, err := hc.Hotels.GetHotelsByManager(callerEmail(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}

// UpdateHotelByID handles PUT /manager/hotel/update/by-id/:id.
func (hc *HotelController) UpdateHotelByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "hotel id must be numeric")
		return
	}
	var payload hotelPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	hotel, err := hc.Hotels.UpdateHotelByID(uint(id), callerEmail(c), payload.toRequest())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

// UpdateHotelByName handles PUT /manager/hotel/update/by-name?name=.
func (hc *HotelController) UpdateHotelByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		utils.JSONError(c, http.StatusBadRequest, "name query parameter is required")
		return
	}
	var payload hotelPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	hotel, err := hc.Hotels.UpdateHotelByName(name, callerEmail(c), payload.toRequest())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotel)
}

// DeleteHotelByID handles DELETE /manager/hotel/delete/by-id/:id.
func (hc *HotelController) DeleteHotelByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "hotel id must be numeric")
		return
	}
	if err := hc.Hotels.DeleteHotelByID(uint(id), callerEmail(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "hotel deleted"})
}

// DeleteHotelByName handles DELETE /manager/hotel/delete/by-name?name=.
func (hc *HotelController) DeleteHotelByName(c *gin.Context) {
	name := c.Query("name")
	if name == "" {
		utils.JSONError(c, http.StatusBadRequest, "name query parameter is required")
		return
	}
	if err := hc.Hotels.DeleteHotelByName(name, callerEmail(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "hotel deleted"})
}

// GetAllHotels handles GET /manager/hotel/all.
func (hc *HotelController) GetAllHotels(c *gin.Context) {
	hotels, err := hc.Hotels.GetAllHotels()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, hotels)
}
