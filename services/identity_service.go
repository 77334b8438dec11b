package services

import (
	"errors"

	"gorm.io/gorm"

	"hotel-booking-backend/models"
)

type Role string

const (
	RoleCustomer     Role = "customer"
	RoleAdmin        Role = "admin"
	RoleHotelManager Role = "hotel_manager"
	RoleManager      Role = "manager"
)

// Identity is the tagged result of resolving an email across the four
// parallel account tables. Exactly one of the entity pointers is set,
// matching Role.
type Identity struct {
	Role  Role
	Email string

	Customer     *models.Customer
	Admin        *models.Admin
	HotelManager *models.HotelManager
	Manager      *models.Manager
}

type IdentityService struct {
	DB *gorm.DB
}

func NewIdentityService(db *gorm.DB) *IdentityService {
	return &IdentityService{DB: db}
}

// ResolveByEmail probes the account tables in fixed priority order:
// customer, admin, hotel manager, legacy manager. The first hit wins; an
// email present in several tables always resolves to the same role.
func (s *IdentityService) ResolveByEmail(email string) (Identity, error) {
	var customer models.Customer
	err := s.DB.Where("email = ?", email).First(&customer).Error
	if err == nil {
		return Identity{Role: RoleCustomer, Email: customer.Email, Customer: &customer}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Identity{}, err
	}

	var admin models.Admin
	err = s.DB.Where("email = ?", email).First(&admin).Error
	if err == nil {
		return Identity{Role: RoleAdmin, Email: admin.Email, Admin: &admin}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Identity{}, err
	}

	var hotelManager models.HotelManager
	err = s.DB.Where("email = ?", email).First(&hotelManager).Error
	if err == nil {
		return Identity{Role: RoleHotelManager, Email: hotelManager.Email, HotelManager: &hotelManager}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Identity{}, err
	}

	var manager models.Manager
	err = s.DB.Where("email = ?", email).First(&manager).Error
	if err == nil {
		return Identity{Role: RoleManager, Email: manager.Email, Manager: &manager}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return Identity{}, err
	}

	return Identity{}, notFound("No account found with this email")
}

// IsAdmin reports whether the email resolves to an admin account. Used by
// the booking and payment read endpoints to let admins bypass the ownership
// check.
func (s *IdentityService) IsAdmin(email string) bool {
	identity, err := s.ResolveByEmail(email)
	return err == nil && identity.Role == RoleAdmin
}
