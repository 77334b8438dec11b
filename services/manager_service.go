package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotel-booking-backend/models"
)

type ManagerService struct {
	DB *gorm.DB
}

func NewManagerService(db *gorm.DB) *ManagerService {
	return &ManagerService{DB: db}
}

type ManagerSignupRequest struct {
	Username     string
	Email        string
	Password     string
	HotelName    string
	HotelAddress string
	PhoneNumber  string
}

func (s *ManagerService) Signup(req ManagerSignupRequest) (models.HotelManager, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return models.HotelManager{}, invalidRequest("Email and password are required")
	}

	var count int64
	if err := s.DB.Model(&models.HotelManager{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return models.HotelManager{}, err
	}
	if count > 0 {
		return models.HotelManager{}, conflict("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.HotelManager{}, err
	}

	manager := models.HotelManager{
		Username:     strings.TrimSpace(req.Username),
		Email:        email,
		Password:     string(hash),
		HotelName:    strings.TrimSpace(req.HotelName),
		HotelAddress: strings.TrimSpace(req.HotelAddress),
		PhoneNumber:  strings.TrimSpace(req.PhoneNumber),
		Role:         string(RoleHotelManager),
	}
	if err := s.DB.Create(&manager).Error; err != nil {
		if isDuplicateKeyError(err) {
			return models.HotelManager{}, conflict("Email already registered")
		}
		return models.HotelManager{}, err
	}
	return manager, nil
}

// Login verifies against hotel_managers first and falls back to the legacy
// manager table, mirroring the identity resolution order.
func (s *ManagerService) Login(email, password string) (Identity, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var hotelManager models.HotelManager
	err := s.DB.Where("email = ?", email).First(&hotelManager).Error
	if err == nil {
		if bcrypt.CompareHashAndPassword([]byte(hotelManager.Password), []byte(password)) != nil {
			return Identity{}, unauthorized("Invalid credentials")
		}
		return Identity{Role: RoleHotelManager, Email: hotelManager.Email, HotelManager: &hotelManager}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Identity{}, err
	}

	var manager models.Manager
	err = s.DB.Where("email = ?", email).First(&manager).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return Identity{}, unauthorized("Invalid credentials")
		}
		return Identity{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(manager.Password), []byte(password)) != nil {
		return Identity{}, unauthorized("Invalid credentials")
	}
	return Identity{Role: RoleManager, Email: manager.Email, Manager: &manager}, nil
}

func (s *ManagerService) GetAllManagers() ([]models.HotelManager, error) {
	var managers []models.HotelManager
	err := s.DB.Order("id").Find(&managers).Error
	return managers, err
}
