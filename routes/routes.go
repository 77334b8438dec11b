package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"hotel-booking-backend/controllers"
	"hotel-booking-backend/middleware"
	"hotel-booking-backend/services"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers into route groups. Signup and login are
// public (login behind the rate limiter); everything else requires a Bearer
// token, with admin and manager groups additionally gated by role.
func SetupRouter(
	cc *controllers.CustomerController,
	ac *controllers.AdminController,
	mc *controllers.ManagerController,
	hc *controllers.HotelController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	pc *controllers.PaymentController,
	jwtSecret string,
	redisClient *redis.Client,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := middleware.JWTAuth(jwtSecret)
	adminOnly := middleware.RequireRoles(string(services.RoleAdmin))
	managerOnly := middleware.RequireRoles(string(services.RoleHotelManager), string(services.RoleManager))
	loginLimit := middleware.LoginRateLimit(redisClient, 10, time.Minute)

	customer := r.Group("/customer")
	{
		customer.POST("/signup", cc.Signup)
		customer.POST("/login", loginLimit, cc.Login)
		customer.GET("/check-email", cc.CheckEmail)

		customer.GET("/profile", auth, cc.GetProfile)
		customer.PUT("/profile/update", auth, cc.UpdateProfile)
		customer.PUT("/profile/change-password", auth, cc.ChangePassword)

		customer.GET("/hotels", auth, cc.ViewHotels)
		customer.GET("/hotels/:id", auth, cc.GetHotelDetails)
		customer.GET("/hotels/rooms", auth, cc.GetRoomsByHotelName)
		customer.GET("/hotels/search", auth, cc.SearchHotels)
		customer.GET("/hotels/rooms/filter", auth, cc.FilterRooms)

		booking := customer.Group("/booking", auth)
		{
			booking.POST("/create", bc.CreateBooking)
			booking.GET("/all", bc.GetCustomerBookings)
			booking.GET("/hotel/:hotelId", bc.GetHotelBookings)
			booking.GET("/admin/all", adminOnly, bc.GetAllBookings)
			booking.GET("/:bookingReference", bc.GetBookingByReference)
			booking.PUT("/:bookingReference/cancel", bc.CancelBooking)
		}
	}

	payments := r.Group("/api/payments", auth)
	{
		payments.POST("/process", pc.ProcessPayment)
		payments.GET("/booking/:bookingReference", pc.GetPaymentByBookingReference)
		payments.GET("/customer", pc.GetCustomerPayments)
		payments.GET("/admin/all", adminOnly, pc.GetAllPayments)
	}

	admin := r.Group("/admin")
	{
		admin.POST("/signup", ac.Signup)
		admin.POST("/login", loginLimit, ac.Login)

		admin.POST("/create-manager", auth, adminOnly, ac.CreateManager)
		admin.GET("/all", auth, adminOnly, ac.GetAllAdmins)
		admin.GET("/customers", auth, adminOnly, ac.GetAllCustomers)
	}

	manager := r.Group("/manager")
	{
		manager.POST("/signup", mc.Signup)
		manager.POST("/login", loginLimit, mc.Login)
		manager.GET("/all", auth, adminOnly, mc.GetAllManagers)

		hotel := manager.Group("/hotel", auth, managerOnly)
		{
			hotel.POST("/add", hc.AddHotel)
			hotel.GET("/view", hc.ViewHotels)
			hotel.PUT("/update/by-id/:id", hc.UpdateHotelByID)
			hotel.PUT("/update/by-name", hc.UpdateHotelByName)
			hotel.DELETE("/delete/by-id/:id", hc.DeleteHotelByID)
			hotel.DELETE("/delete/by-name", hc.DeleteHotelByName)
			hotel.GET("/all", hc.GetAllHotels)
		}

		room := manager.Group("/room", auth, managerOnly)
		{
			room.POST("/add", rc.AddRoom)
			room.GET("/view", rc.ViewRooms)
			room.PUT("/update/:roomNumber", rc.UpdateRoomByNumber)
			room.DELETE("/delete/:roomNumber", rc.DeleteRoom)
		}
	}

	return r
}
