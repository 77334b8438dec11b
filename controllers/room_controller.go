package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"
)

type RoomController struct {
	Rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{Rooms: rooms}
}

type roomPayload struct {
	RoomNumber string  `json:"roomNumber"`
	Type       string  `json:"type"`
	Price      float64 `json:"price"`
	Available  *bool   `json:"available"`
}

func (p roomPayload) toRequest() services.RoomRequest {
	return services.RoomRequest{
		RoomNumber: p.RoomNumber,
		Type:       p.Type,
		Price:      p.Price,
		Available:  p.Available,
	}
}

// AddRoom handles POST /manager/room/add?hotelId=.
func (rc *RoomController) AddRoom(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Query("hotelId"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "hotelId query parameter must be numeric")
		return
	}
	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	room, err := rc.Rooms.AddRoom(payload.toRequest(), uint(hotelID), callerEmail(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// ViewRooms handles GET /manager/room/view?hotelId=.
func (rc *RoomController) ViewRooms(c *gin.Context) {
	hotelID, err := strconv.ParseUint(c.Query("hotelId"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "hotelId query parameter must be numeric")
		return
	}
	rooms, err := rc.Rooms.GetRoomsByHotel(uint(hotelID), callerEmail(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// UpdateRoomByNumber handles PUT /manager/room/update/:roomNumber.
func (rc *RoomController) UpdateRoomByNumber(c *gin.Context) {
	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	room, err := rc.Rooms.UpdateRoomByNumber(c.Param("roomNumber"), callerEmail(c), payload.toRequest())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// DeleteRoom handles DELETE /manager/room/delete/:roomNumber.
func (rc *RoomController) DeleteRoom(c *gin.Context) {
	if err := rc.Rooms.DeleteRoomByNumber(c.Param("roomNumber"), callerEmail(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"message": "room deleted"})
}
