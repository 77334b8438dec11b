package controllers

import (
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"hotel-booking-backend/middleware"
	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"
)

// callerEmail resolves the acting identity: the explicit email query
// parameter wins (original API contract), falling back to the authenticated
// token claim.
func callerEmail(c *gin.Context) string {
	if email := strings.TrimSpace(c.Query("email")); email != "" {
		return email
	}
	return c.GetString(middleware.ContextEmail)
}

// respondServiceError maps business failure kinds to HTTP statuses.
// Anything unclassified is a system error and must not leak details.
func respondServiceError(c *gin.Context, err error) {
	switch services.KindOf(err) {
	case services.KindNotFound:
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case services.KindInvalidRequest:
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case services.KindConflict:
		utils.JSONError(c, http.StatusConflict, err.Error())
	case services.KindForbidden:
		utils.JSONError(c, http.StatusForbidden, err.Error())
	case services.KindUnauthorized:
		utils.JSONError(c, http.StatusUnauthorized, err.Error())
	default:
		log.Printf("internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	}
}
