package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-booking-backend/controllers"
	"hotel-booking-backend/models"
	"hotel-booking-backend/services"
)

const testJWTSecret = "routes-test-secret"

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Admin{},
		&models.Manager{},
		&models.HotelManager{},
		&models.Customer{},
		&models.Hotel{},
		&models.Room{},
		&models.Booking{},
		&models.Payment{},
	))

	identity := services.NewIdentityService(db)
	customers := services.NewCustomerService(db)
	admins := services.NewAdminService(db)
	managers := services.NewManagerService(db)
	hotels := services.NewHotelService(db)
	rooms := services.NewRoomService(db, hotels)
	bookings := services.NewBookingService(db)
	payments := services.NewPaymentService(db, services.SimulatedGateway{}, nil)

	router := SetupRouter(
		controllers.NewCustomerController(customers, hotels, testJWTSecret),
		controllers.NewAdminController(admins, customers, testJWTSecret),
		controllers.NewManagerController(managers, testJWTSecret),
		controllers.NewHotelController(hotels),
		controllers.NewRoomController(rooms),
		controllers.NewBookingController(bookings, identity),
		controllers.NewPaymentController(payments, identity),
		testJWTSecret,
		nil,
	)
	return router, db
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func doJSON(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func signupAndLogin(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()
	w, _ := doJSON(t, router, http.MethodPost, "/customer/signup", "", gin.H{
		"fullName": "Test Customer",
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w, env := doJSON(t, router, http.MethodPost, "/customer/login", "", gin.H{
		"email":    email,
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &login))
	require.NotEmpty(t, login.Token)
	return login.Token
}

func seedHotelRoom(t *testing.T, db *gorm.DB) (models.Hotel, models.Room) {
	t.Helper()
	hotel := models.Hotel{Name: "Seaside Inn", Address: "1 Beach Rd"}
	require.NoError(t, db.Create(&hotel).Error)
	room := models.Room{HotelID: hotel.ID, RoomNumber: "101", Type: "Standard", Price: 125.00, Available: true}
	require.NoError(t, db.Create(&room).Error)
	return hotel, room
}

func TestBookingAndPaymentFlow(t *testing.T) {
	router, db := setupTestRouter(t)
	token := signupAndLogin(t, router, "guest@example.com")
	hotel, room := seedHotelRoom(t, db)

	w, env := doJSON(t, router, http.MethodPost, "/customer/booking/create", token, gin.H{
		"hotelId":    hotel.ID,
		"roomId":     room.ID,
		"checkIn":    futureDateString(7),
		"checkOut":   futureDateString(9),
		"guests":     2,
		"totalPrice": 250.00,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var booking models.Booking
	require.NoError(t, json.Unmarshal(env.Data, &booking))
	require.Equal(t, models.BookingStatusPending, booking.Status)
	require.NotEmpty(t, booking.BookingReference)

	// The owner can read their booking back.
	w, _ = doJSON(t, router, http.MethodGet, "/customer/booking/"+booking.BookingReference, token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// A different customer cannot.
	otherToken := signupAndLogin(t, router, "intruder@example.com")
	w, _ = doJSON(t, router, http.MethodGet, "/customer/booking/"+booking.BookingReference, otherToken, nil)
	require.Equal(t, http.StatusForbidden, w.Code)

	// Pay with an approved card and the booking flips to CONFIRMED.
	w, env = doJSON(t, router, http.MethodPost, "/api/payments/process", token, gin.H{
		"bookingReference": booking.BookingReference,
		"cardNumber":       "4111111111111113",
		"expiryDate":       "12/27",
		"cvv":              "123",
		"nameOnCard":       "Test Customer",
		"amount":           250.00,
		"paymentMethod":    "CREDIT_CARD",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var outcome struct {
		PaymentStatus string `json:"paymentStatus"`
		TransactionID string `json:"transactionId"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &outcome))
	require.Equal(t, models.PaymentStatusCompleted, outcome.PaymentStatus)
	require.NotEmpty(t, outcome.TransactionID)

	w, env = doJSON(t, router, http.MethodGet, "/customer/booking/"+booking.BookingReference, token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &booking))
	require.Equal(t, models.BookingStatusConfirmed, booking.Status)
	require.True(t, booking.IsPaid)
}

func TestDeclinedCardReturnsFailedOutcome(t *testing.T) {
	router, db := setupTestRouter(t)
	token := signupAndLogin(t, router, "guest@example.com")
	hotel, room := seedHotelRoom(t, db)

	w, env := doJSON(t, router, http.MethodPost, "/customer/booking/create", token, gin.H{
		"hotelId":    hotel.ID,
		"roomId":     room.ID,
		"checkIn":    futureDateString(7),
		"checkOut":   futureDateString(9),
		"guests":     1,
		"totalPrice": 250.00,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var booking models.Booking
	require.NoError(t, json.Unmarshal(env.Data, &booking))

	// Declines are a business outcome, not an HTTP error.
	w, env = doJSON(t, router, http.MethodPost, "/api/payments/process", token, gin.H{
		"bookingReference": booking.BookingReference,
		"cardNumber":       "4111111111111114",
		"expiryDate":       "12/27",
		"cvv":              "123",
		"nameOnCard":       "Test Customer",
		"amount":           250.00,
		"paymentMethod":    "CREDIT_CARD",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var outcome struct {
		PaymentStatus string `json:"paymentStatus"`
		Message       string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &outcome))
	require.Equal(t, models.PaymentStatusFailed, outcome.PaymentStatus)
	require.Equal(t, "Payment declined by issuing bank", outcome.Message)
}

func TestAuthGates(t *testing.T) {
	router, _ := setupTestRouter(t)

	w, _ := doJSON(t, router, http.MethodGet, "/customer/profile", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	w, _ = doJSON(t, router, http.MethodGet, "/customer/profile", "garbage-token", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	// Customer tokens cannot reach admin or manager surfaces.
	token := signupAndLogin(t, router, "guest@example.com")
	w, _ = doJSON(t, router, http.MethodGet, "/customer/booking/admin/all", token, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
	w, _ = doJSON(t, router, http.MethodGet, "/manager/hotel/view", token, nil)
	require.Equal(t, http.StatusForbidden, w.Code)
}

func TestHealthAndBadPayload(t *testing.T) {
	router, _ := setupTestRouter(t)

	w, _ := doJSON(t, router, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	token := signupAndLogin(t, router, "guest@example.com")
	w, env := doJSON(t, router, http.MethodPost, "/customer/booking/create", token, gin.H{
		"hotelId": 1,
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.False(t, env.Success)
}

func futureDateString(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}
