package services

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"hotel-booking-backend/models"
)

type RoomService struct {
	DB     *gorm.DB
	Hotels *HotelService
}

func NewRoomService(db *gorm.DB, hotels *HotelService) *RoomService {
	return &RoomService{DB: db, Hotels: hotels}
}

type RoomRequest struct {
	RoomNumber string
	Type       string
	Price      float64
	Available  *bool
}

func (s *RoomService) AddRoom(req RoomRequest, hotelID uint, managerEmail string) (models.Room, error) {
	hotel, err := s.Hotels.ownedHotelByID(hotelID, managerEmail)
	if err != nil {
		return models.Room{}, err
	}
	if strings.TrimSpace(req.RoomNumber) == "" {
		return models.Room{}, invalidRequest("Room number is required")
	}

	available := true
	if req.Available != nil {
		available = *req.Available
	}
	room := models.Room{
		HotelID:    hotel.ID,
		RoomNumber: strings.TrimSpace(req.RoomNumber),
		Type:       strings.TrimSpace(req.Type),
		Price:      req.Price,
		Available:  available,
	}
	if err := s.DB.Create(&room).Error; err != nil {
		if isDuplicateKeyError(err) {
			return models.Room{}, conflict("Room number already exists for this hotel")
		}
		return models.Room{}, err
	}
	return room, nil
}

func (s *RoomService) GetRoomsByHotel(hotelID uint, managerEmail string) ([]models.Room, error) {
	hotel, err := s.Hotels.ownedHotelByID(hotelID, managerEmail)
	if err != nil {
		return nil, err
	}
	var rooms []models.Room
	err = s.DB.Where("hotel_id = ?", hotel.ID).Order("room_number").Find(&rooms).Error
	return rooms, err
}

// managedRoomByNumber finds a room by number within the manager's hotels.
func (s *RoomService) managedRoomByNumber(roomNumber, managerEmail string) (models.Room, error) {
	manager, err := s.Hotels.findManager(managerEmail)
	if err != nil {
		return models.Room{}, err
	}
	var room models.Room
	err = s.DB.
		Joins("JOIN hotels ON hotels.id = rooms.hotel_id").
		Where("rooms.room_number = ? AND hotels.manager_id = ?", strings.TrimSpace(roomNumber), manager.ID).
		First(&room).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, notFound("Room not found")
		}
		return models.Room{}, err
	}
	return room, nil
}

func (s *RoomService) UpdateRoomByNumber(roomNumber, managerEmail string, req RoomRequest) (models.Room, error) {
	room, err := s.managedRoomByNumber(roomNumber, managerEmail)
	if err != nil {
		return models.Room{}, err
	}

	changes := map[string]interface{}{}
	if strings.TrimSpace(req.Type) != "" {
		changes["type"] = strings.TrimSpace(req.Type)
	}
	if req.Price > 0 {
		changes["price"] = req.Price
	}
	if req.Available != nil {
		changes["available"] = *req.Available
	}
	if len(changes) == 0 {
		return room, nil
	}
	if err := s.DB.Model(&room).Updates(changes).Error; err != nil {
		return models.Room{}, err
	}
	return room, nil
}

func (s *RoomService) DeleteRoomByNumber(roomNumber, managerEmail string) error {
	room, err := s.managedRoomByNumber(roomNumber, managerEmail)
	if err != nil {
		return err
	}
	return s.DB.Delete(&room).Error
}
