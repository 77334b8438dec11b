package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"
)

type AdminController struct {
	Admins    *services.AdminService
	Customers *services.CustomerService
	JWTSecret string
}

func NewAdminController(admins *services.AdminService, customers *services.CustomerService, jwtSecret string) *AdminController {
	return &AdminController{Admins: admins, Customers: customers, JWTSecret: jwtSecret}
}

type adminSignupPayload struct {
	FullName string `json:"fullName" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

func (ac *AdminController) Signup(c *gin.Context) {
	var payload adminSignupPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	admin, err := ac.Admins.Signup(services.AdminSignupRequest{
		FullName: payload.FullName,
		Email:    payload.Email,
		Password: payload.Password,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, admin)
}

func (ac *AdminController) Login(c *gin.Context) {
	var payload loginPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	admin, err := ac.Admins.Login(payload.Email, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	token, err := utils.NewAccessToken(ac.JWTSecret, admin.Email, string(services.RoleAdmin), accessTokenTTL)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"token": token,
		"email": admin.Email,
		"role":  services.RoleAdmin,
	})
}

type createManagerPayload struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// CreateManager handles POST /admin/create-manager (legacy manager table).
func (ac *AdminController) CreateManager(c *gin.Context) {
	var payload createManagerPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload: "+err.Error())
		return
	}
	manager, err := ac.Admins.CreateManager(payload.Username, payload.Email, payload.Password)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, manager)
}

func (ac *AdminController) GetAllAdmins(c *gin.Context) {
	admins, err := ac.Admins.GetAllAdmins()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, admins)
}

func (ac *AdminController) GetAllCustomers(c *gin.Context) {
	customers, err := ac.Customers.GetAllCustomers()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, customers)
}
