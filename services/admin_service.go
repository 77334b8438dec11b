package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotel-booking-backend/models"
)

type AdminService struct {
	DB *gorm.DB
}

func NewAdminService(db *gorm.DB) *AdminService {
	return &AdminService{DB: db}
}

type AdminSignupRequest struct {
	FullName string
	Email    string
	Password string
}

func (s *AdminService) Signup(req AdminSignupRequest) (models.Admin, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return models.Admin{}, invalidRequest("Email and password are required")
	}

	var count int64
	if err := s.DB.Model(&models.Admin{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return models.Admin{}, err
	}
	if count > 0 {
		return models.Admin{}, conflict("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Admin{}, err
	}

	admin := models.Admin{
		FullName: strings.TrimSpace(req.FullName),
		Email:    email,
		Password: string(hash),
	}
	if err := s.DB.Create(&admin).Error; err != nil {
		if isDuplicateKeyError(err) {
			return models.Admin{}, conflict("Email already registered")
		}
		return models.Admin{}, err
	}
	return admin, nil
}

func (s *AdminService) Login(email, password string) (models.Admin, error) {
	var admin models.Admin
	err := s.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&admin).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Admin{}, unauthorized("Invalid credentials")
		}
		return models.Admin{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)) != nil {
		return models.Admin{}, unauthorized("Invalid credentials")
	}
	return admin, nil
}

// CreateManager writes to the legacy manager table; self-service manager
// signups go to hotel_managers instead.
func (s *AdminService) CreateManager(username, email, password string) (models.Manager, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return models.Manager{}, invalidRequest("Email and password are required")
	}

	var count int64
	if err := s.DB.Model(&models.Manager{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return models.Manager{}, err
	}
	if count > 0 {
		return models.Manager{}, conflict("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return models.Manager{}, err
	}

	manager := models.Manager{
		Username: strings.TrimSpace(username),
		Email:    email,
		Password: string(hash),
		Role:     string(RoleHotelManager),
	}
	if err := s.DB.Create(&manager).Error; err != nil {
		if isDuplicateKeyError(err) {
			return models.Manager{}, conflict("Email already registered")
		}
		return models.Manager{}, err
	}
	return manager, nil
}

func (s *AdminService) GetAllAdmins() ([]models.Admin, error) {
	var admins []models.Admin
	err := s.DB.Order("id").Find(&admins).Error
	return admins, err
}
