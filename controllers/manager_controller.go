package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"
)

type ManagerController struct {
	Managers  *services.ManagerService
	JWTSecret string
}

func NewManagerController(managers *services.ManagerService, jwtSecret string) *ManagerController {
	return &ManagerController{Managers: managers, JWTSecret: jwtSecret}
}

type managerSignupPayload struct {
	Username     string `json:"username" binding:"required"`
	Email        string `json:"email" binding:"required,email"`
	Password     string `json:"password" binding:"required,min=6"`
	HotelName    string `json:"hotelName"`
	HotelAddress string `json:"hotelAddress"`
	PhoneNumber  string `json:"phoneNumber"`
}

func (mc *ManagerController) Signup(c *gin.Context) {
	var payload managerSignupPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	manager, err := mc.Managers.Signup(services.ManagerSignupRequest{
		Username:     payload.Username,
		Email:        payload.Email,
		Password:     payload.Password,
		HotelName:    payload.HotelName,
		HotelAddress: payload.HotelAddress,
		PhoneNumber:  payload.PhoneNumber,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, manager)
}

func (mc *ManagerController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	identity, err := mc.Managers.Login(payload.Email, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	token, err := utils.NewAccessToken(mc.JWTSecret, identity.Email, string(identity.Role), accessTokenTTL)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token": token,
		"email": identity.Email,
		"role":  identity.Role,
	})
}

func (mc *ManagerController) GetAllManagers(c *gin.Context) {
	managers, err := mc.Managers.GetAllManagers()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, managers)
}
