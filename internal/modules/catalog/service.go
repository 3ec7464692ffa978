package catalog

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"
)

type Service struct {
	hotelRepo *repository.HotelRepository
	roomRepo  *repository.RoomRepository
}

func NewService(hotelRepo *repository.HotelRepository, roomRepo *repository.RoomRepository) *Service {
	return &Service{hotelRepo: hotelRepo, roomRepo: roomRepo}
}

/* ---------- SEARCH ---------- */

// SearchHotels lists hotels whose location contains the substring and
// which still have at least one free room unit over [from, to).
func (s *Service) SearchHotels(ctx context.Context, location string, from, to time.Time) ([]repository.HotelAvailability, error) {
	if !to.After(from) {
		return nil, ErrInvalidDateRange
	}
	return s.hotelRepo.SearchAvailable(ctx, location, from, to)
}

// SearchRooms lists every room of a hotel with its remaining capacity
// over [from, to) and the total cost of the stay. Rooms without
// remaining capacity are listed anyway; only hotel-level search hides
// them.
func (s *Service) SearchRooms(ctx context.Context, hotelID int64, from, to time.Time) ([]RoomWithCost, error) {
	if !to.After(from) {
		return nil, ErrInvalidDateRange
	}

	rows, err := s.roomRepo.GetWithAvailability(ctx, hotelID, from, to)
	if err != nil {
		return nil, err
	}

	nights := int(to.Sub(from).Hours() / 24)
	out := make([]RoomWithCost, 0, len(rows))
	for _, r := range rows {
		out = append(out, RoomWithCost{
			RoomAvailability: r,
			TotalCost:        r.Price * nights,
		})
	}
	return out, nil
}

func (s *Service) GetHotel(ctx context.Context, id int64) (*domain.Hotel, error) {
	hotel, err := s.hotelRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, err
	}
	return hotel, nil
}

func (s *Service) ListHotels(ctx context.Context, name, location string) ([]domain.Hotel, error) {
	return s.hotelRepo.GetAll(ctx, repository.HotelFilters{Name: name, Location: location})
}

/* ---------- HOTEL ADMIN ---------- */

func (s *Service) CreateHotel(ctx context.Context, req CreateHotelRequest) (*domain.Hotel, error) {
	hotel := &domain.Hotel{
		Name:          req.Name,
		Location:      req.Location,
		Services:      req.Services,
		RoomsQuantity: req.RoomsQuantity,
		ImageID:       req.ImageID,
	}
	if err := s.hotelRepo.Create(ctx, hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

func (s *Service) UpdateHotel(ctx context.Context, hotelID int64, req UpdateHotelRequest) (*domain.Hotel, error) {
	hotel, err := s.GetHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		hotel.Name = *req.Name
	}
	if req.Location != nil {
		hotel.Location = *req.Location
	}
	if req.Services != nil {
		hotel.Services = *req.Services
	}
	if req.RoomsQuantity != nil && *req.RoomsQuantity >= 0 {
		hotel.RoomsQuantity = *req.RoomsQuantity
	}
	if req.ImageID != nil {
		hotel.ImageID = *req.ImageID
	}

	if err := s.hotelRepo.Update(ctx, hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

func (s *Service) DeleteHotel(ctx context.Context, hotelID int64) error {
	deleted, err := s.hotelRepo.Delete(ctx, hotelID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrHotelNotFound
	}
	return nil
}

/* ---------- ROOM ADMIN ---------- */

func (s *Service) CreateRoom(ctx context.Context, hotelID int64, req CreateRoomRequest) (*domain.Room, error) {
	if _, err := s.GetHotel(ctx, hotelID); err != nil {
		return nil, err
	}

	room := &domain.Room{
		HotelID:     hotelID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Services:    req.Services,
		Quantity:    req.Quantity,
		ImageID:     req.ImageID,
	}
	if err := s.roomRepo.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) UpdateRoom(ctx context.Context, roomID int64, req UpdateRoomRequest) (*domain.Room, error) {
	room, err := s.roomRepo.GetByID(ctx, roomID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	if req.Name != nil {
		room.Name = *req.Name
	}
	if req.Description != nil {
		room.Description = *req.Description
	}
	if req.Price != nil && *req.Price >= 0 {
		room.Price = *req.Price
	}
	if req.Services != nil {
		room.Services = *req.Services
	}
	if req.Quantity != nil && *req.Quantity >= 0 {
		room.Quantity = *req.Quantity
	}
	if req.ImageID != nil {
		room.ImageID = *req.ImageID
	}

	if err := s.roomRepo.Update(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

func (s *Service) DeleteRoom(ctx context.Context, roomID int64) error {
	deleted, err := s.roomRepo.Delete(ctx, roomID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrRoomNotFound
	}
	return nil
}
