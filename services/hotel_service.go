package services

import (
	"errors"
	"strings"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotel-booking-backend/models"
)

type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

type HotelRequest struct {
	Name        string
	Address     string
	Contact     string
	Description string
	Amenities   datatypes.JSON
}

func (s *HotelService) findManager(email string) (models.HotelManager, error) {
	var manager models.HotelManager
	err := s.DB.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&manager).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.HotelManager{}, notFound("Manager not found")
		}
		return models.HotelManager{}, err
	}
	return manager, nil
}

func (s *HotelService) AddHotel(req HotelRequest, managerEmail string) (models.Hotel, error) {
	manager, err := s.findManager(managerEmail)
	if err != nil {
		return models.Hotel{}, err
	}
	if strings.TrimSpace(req.Name) == "" {
		return models.Hotel{}, invalidRequest("Hotel name is required")
	}

	hotel := models.Hotel{
		Name:        strings.TrimSpace(req.Name),
		Address:     strings.TrimSpace(req.Address),
		Contact:     strings.TrimSpace(req.Contact),
		Description: req.Description,
		Amenities:   req.Amenities,
		ManagerID:   &manager.ID,
	}
	if err := s.DB.Create(&hotel).Error; err != nil {
		return models.Hotel{}, err
	}
	return hotel, nil
}

// GetHotelsByManager lists the hotels owned by the manager.
func (s *HotelService) GetHotelsByManager(managerEmail string) ([]models.Hotel, error) {
	manager, err := s.findManager(managerEmail)
	if err != nil {
		return nil, err
	}
	var hotels []models.Hotel
	err = s.DB.Preload("Rooms").Where("manager_id = ?", manager.ID).Order("id").Find(&hotels).Error
	return hotels, err
}

// ownedHotelByID loads a hotel and enforces that the manager owns it.
func (s *HotelService) ownedHotelByID(id uint, managerEmail string) (models.Hotel, error) {
	manager, err := s.findManager(managerEmail)
	if err != nil {
		return models.Hotel{}, err
	}
	var hotel models.Hotel
	if err := s.DB.First(&hotel, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Hotel{}, notFound("Hotel not found")
		}
		return models.Hotel{}, err
	}
	if hotel.ManagerID == nil || *hotel.ManagerID != manager.ID {
		return models.Hotel{}, forbidden("You are not authorized to manage this hotel")
	}
	return hotel, nil
}

func (s *HotelService) ownedHotelByName(name, managerEmail string) (models.Hotel, error) {
	manager, err := s.findManager(managerEmail)
	if err != nil {
		return models.Hotel{}, err
	}
	var hotel models.Hotel
	err = s.DB.Where("name = ? AND manager_id = ?", strings.TrimSpace(name), manager.ID).First(&hotel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Hotel{}, notFound("Hotel not found")
		}
		return models.Hotel{}, err
	}
	return hotel, nil
}

func (s *HotelService) applyUpdate(hotel models.Hotel, req HotelRequest) (models.Hotel, error) {
	changes := map[string]interface{}{}
	if strings.TrimSpace(req.Name) != "" {
		changes["name"] = strings.TrimSpace(req.Name)
	}
	if strings.TrimSpace(req.Address) != "" {
		changes["address"] = strings.TrimSpace(req.Address)
	}
	if strings.TrimSpace(req.Contact) != "" {
		changes["contact"] = strings.TrimSpace(req.Contact)
	}
	if req.Description != "" {
		changes["description"] = req.Description
	}
	if len(req.Amenities) > 0 {
		changes["amenities"] = req.Amenities
	}
	if len(changes) == 0 {
		return hotel, nil
	}
	if err := s.DB.Model(&hotel).Updates(changes).Error; err != nil {
		return models.Hotel{}, err
	}
	return hotel, nil
}

func (s *HotelService) UpdateHotelByID(id uint, managerEmail string, req HotelRequest) (models.Hotel, error) {
	hotel, err := s.ownedHotelByID(id, managerEmail)
	if err != nil {
		return models.Hotel{}, err
	}
	return s.applyUpdate(hotel, req)
}

func (s *HotelService) UpdateHotelByName(name, managerEmail string, req HotelRequest) (models.Hotel, error) {
	hotel, err := s.ownedHotelByName(name, managerEmail)
	if err != nil {
		return models.Hotel{}, err
	}
	return s.applyUpdate(hotel, req)
}

func (s *HotelService) DeleteHotelByID(id uint, managerEmail string) error {
	hotel, err := s.ownedHotelByID(id, managerEmail)
	if err != nil {
		return err
	}
	return s.DB.Delete(&hotel).Error
}

func (s *HotelService) DeleteHotelByName(name, managerEmail string) error {
	hotel, err := s.ownedHotelByName(name, managerEmail)
	if err != nil {
		return err
	}
	return s.DB.Delete(&hotel).Error
}

func (s *HotelService) GetAllHotels() ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := s.DB.Preload("Rooms").Order("id").Find(&hotels).Error
	return hotels, err
}

func (s *HotelService) GetHotelByID(id uint) (models.Hotel, error) {
	var hotel models.Hotel
	err := s.DB.Preload("Rooms").First(&hotel, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Hotel{}, notFound("Hotel not found")
		}
		return models.Hotel{}, err
	}
	return hotel, nil
}

// SearchHotels matches hotel name or address, case-insensitive substring.
func (s *HotelService) SearchHotels(query string) ([]models.Hotel, error) {
	like := "%" + strings.ToLower(strings.TrimSpace(query)) + "%"
	var hotels []models.Hotel
	err := s.DB.Preload("Rooms").
		Where("LOWER(name) LIKE ? OR LOWER(address) LIKE ?", like, like).
		Order("name").
		Find(&hotels).Error
	return hotels, err
}

func (s *HotelService) GetRoomsByHotelName(name string) ([]models.Room, error) {
	var hotel models.Hotel
	err := s.DB.Where("name = ?", strings.TrimSpace(name)).First(&hotel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Hotel not found")
		}
		return nil, err
	}
	var rooms []models.Room
	err = s.DB.Where("hotel_id = ?", hotel.ID).Order("room_number").Find(&rooms).Error
	return rooms, err
}

type RoomFilter struct {
	HotelName     string
	Type          string
	MinPrice      *float64
	MaxPrice      *float64
	AvailableOnly bool
}

func (s *HotelService) FilterRooms(filter RoomFilter) ([]models.Room, error) {
	var hotel models.Hotel
	err := s.DB.Where("name = ?", strings.TrimSpace(filter.HotelName)).First(&hotel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Hotel not found")
		}
		return nil, err
	}

	q := s.DB.Where("hotel_id = ?", hotel.ID)
	if filter.Type != "" {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.MinPrice != nil {
		q = q.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.AvailableOnly {
		q = q.Where("available = ?", true)
	}

	var rooms []models.Room
	err = q.Order("price").Find(&rooms).Error
	return rooms, err
}
