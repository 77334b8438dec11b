package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotel-booking-backend/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
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
	return db
}

func seedCustomer(t *testing.T, db *gorm.DB, email string) models.Customer {
	t.Helper()
	customer := models.Customer{FullName: "Test Customer", Email: email, Password: "x"}
	require.NoError(t, db.Create(&customer).Error)
	return customer
}

func seedHotelAndRoom(t *testing.T, db *gorm.DB) (models.Hotel, models.Room) {
	t.Helper()
	hotel := models.Hotel{Name: "Seaside Inn", Address: "1 Beach Rd"}
	require.NoError(t, db.Create(&hotel).Error)
	room := models.Room{HotelID: hotel.ID, RoomNumber: "101", Type: "Standard", Price: 125.00, Available: true}
	require.NoError(t, db.Create(&room).Error)
	return hotel, room
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func futureDate(days int) time.Time {
	d := time.Now().AddDate(0, 0, days)
	return date(d.Year(), d.Month(), d.Day())
}
