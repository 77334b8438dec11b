package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hotel-booking-backend/models"
)

type CustomerService struct {
	DB *gorm.DB
}

func NewCustomerService(db *gorm.DB) *CustomerService {
	return &CustomerService{DB: db}
}

type CustomerSignupRequest struct {
	FullName string
	Email    string
	Password string
	Phone    string
	Address  string
}

func (s *CustomerService) Signup(req CustomerSignupRequest) (models.Customer, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || req.Password == "" {
		return models.Customer{}, invalidRequest("Email and password are required")
	}

	var count int64
	if err := s.DB.Model(&models.Customer{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return models.Customer{}, err
	}
	if count > 0 {
		return models.Customer{}, conflict("Email already registered")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return models.Customer{}, err
	}

	customer := models.Customer{
		FullName: strings.TrimSpace(req.FullName),
		Email:    email,
		Password: string(hash),
		Phone:    strings.TrimSpace(req.Phone),
		Address:  strings.TrimSpace(req.Address),
	}
	if err := s.DB.Create(&customer).Error; err != nil {
		if isDuplicateKeyError(err) {
			return models.Customer{}, conflict("Email already registered")
		}
		return models.Customer{}, err
	}
	return customer, nil
}

func (s *CustomerService) Login(email, password string) (models.Customer, error) {
	var customer models.Customer
	err := s.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Customer{}, unauthorized("Invalid credentials")
		}
		return models.Customer{}, err
	}
	if bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(password)) != nil {
		return models.Customer{}, unauthorized("Invalid credentials")
	}
	return customer, nil
}

// EmailExists backs the pre-signup email check on the customer table.
func (s *CustomerService) EmailExists(email string) (bool, error) {
	var count int64
	err := s.DB.Model(&models.Customer{}).
		Where("email = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count).Error
	return count > 0, err
}

func (s *CustomerService) GetProfile(email string) (models.Customer, error) {
	var customer models.Customer
	err := s.DB.Where("email = ?", email).First(&customer).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Customer{}, notFound("Customer not found")
		}
		return models.Customer{}, err
	}
	return customer, nil
}

type CustomerProfileUpdate struct {
	FullName *string
	Phone    *string
	Address  *string
}

func (s *CustomerService) UpdateProfile(email string, update CustomerProfileUpdate) (models.Customer, error) {
	customer, err := s.GetProfile(email)
	if err != nil {
		return models.Customer{}, err
	}

	changes := map[string]interface{}{}
	if update.FullName != nil {
		changes["full_name"] = strings.TrimSpace(*update.FullName)
	}
	if update.Phone != nil {
		changes["phone"] = strings.TrimSpace(*update.Phone)
	}
	if update.Address != nil {
		changes["address"] = strings.TrimSpace(*update.Address)
	}
	if len(changes) == 0 {
		return customer, nil
	}
	if err := s.DB.Model(&customer).Updates(changes).Error; err != nil {
		return models.Customer{}, err
	}
	return customer, nil
}

func (s *CustomerService) ChangePassword(email, currentPassword, newPassword string) error {
	customer, err := s.GetProfile(email)
	if err != nil {
		return err
	}
	if bcrypt.CompareHashAndPassword([]byte(customer.Password), []byte(currentPassword)) != nil {
		return unauthorized("Current password is incorrect")
	}
	if len(newPassword) < 6 {
		return invalidRequest("New password must be at least 6 characters")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	return s.DB.Model(&customer).Update("password", string(hash)).Error
}

func (s *CustomerService) GetAllCustomers() ([]models.Customer, error) {
	var customers []models.Customer
	err := s.DB.Order("id").Find(&customers).Error
	return customers, err
}
