package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-booking-backend/config"
	"hotel-booking-backend/controllers"
	"hotel-booking-backend/queue"
	"hotel-booking-backend/routes"
	"hotel-booking-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	// Required token secret (fatal if missing)
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set. Cannot issue access tokens.")
	}

	// Connect database (config.ConnectDatabase sets config.DB)
	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("❌ config.DB is nil after ConnectDatabase()")
	}
	log.Println("✅ Database connection established and migrations applied")

	redisClient := config.NewRedisClient()
	events := queue.NewPublisher(os.Getenv("RABBITMQ_URL"))
	if events == nil {
		log.Println("⚠️  RABBITMQ_URL not set; domain events disabled")
	}

	// Initialize services
	identityService := services.NewIdentityService(db)
	customerService := services.NewCustomerService(db)
	adminService := services.NewAdminService(db)
	managerService := services.NewManagerService(db)
	hotelService := services.NewHotelService(db)
	roomService := services.NewRoomService(db, hotelService)
	bookingService := services.NewBookingService(db)
	paymentService := services.NewPaymentService(db, services.SimulatedGateway{}, events)

	// Initialize controllers
	customerController := controllers.NewCustomerController(customerService, hotelService, jwtSecret)
	adminController := controllers.NewAdminController(adminService, customerService, jwtSecret)
	managerController := controllers.NewManagerController(managerService, jwtSecret)
	hotelController := controllers.NewHotelController(hotelService)
	roomController := controllers.NewRoomController(roomService)
	bookingController := controllers.NewBookingController(bookingService, identityService)
	paymentController := controllers.NewPaymentController(paymentService, identityService)

	// Build router
	router := routes.SetupRouter(
		customerController,
		adminController,
		managerController,
		hotelController,
		roomController,
		bookingController,
		paymentController,
		jwtSecret,
		redisClient,
	)

	// Port from env (prefer), fallback to 8080
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	addr := ":" + port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
