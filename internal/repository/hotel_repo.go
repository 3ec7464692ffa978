package repository

import (
	"context"
	"time"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

type HotelFilters struct {
	Name     string
	Location string
}

// HotelAvailability is a hotel row annotated with remaining capacity
// summed over its room types for a query window.
type HotelAvailability struct {
	ID            int64    `gorm:"column:id" json:"id"`
	Name          string   `gorm:"column:name" json:"name"`
	Location      string   `gorm:"column:location" json:"location"`
	Services      []string `gorm:"column:services;serializer:json" json:"services,omitempty"`
	RoomsQuantity int      `gorm:"column:rooms_quantity" json:"rooms_quantity"`
	ImageID       int      `gorm:"column:image_id" json:"image_id"`
	RoomsLeft     int      `gorm:"column:rooms_left" json:"rooms_left"`
}

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

// GetAll returns hotels matching the optional name/location substrings,
// case-insensitive, with no availability annotation.
func (r *HotelRepository) GetAll(ctx context.Context, f HotelFilters) ([]domain.Hotel, error) {
	var hotels []domain.Hotel

	q := r.db.WithContext(ctx).Model(&domain.Hotel{})
	if f.Name != "" {
		q = q.Where("LOWER(name) LIKE LOWER(?)", "%"+f.Name+"%")
	}
	if f.Location != "" {
		q = q.Where("LOWER(location) LIKE LOWER(?)", "%"+f.Location+"%")
	}

	err := q.Order("id").Find(&hotels).Error
	return hotels, err
}

func (r *HotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	var hotel domain.Hotel
	err := r.db.WithContext(ctx).First(&hotel, id).Error
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (r *HotelRepository) Create(ctx context.Context, hotel *domain.Hotel) error {
	return r.db.WithContext(ctx).Create(hotel).Error
}

func (r *HotelRepository) Update(ctx context.Context, hotel *domain.Hotel) error {
	return r.db.WithContext(ctx).Save(hotel).Error
}

func (r *HotelRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&domain.Hotel{}, id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

const searchAvailableQuery = `
WITH booked_rooms AS (
    SELECT room_id, COUNT(id) AS booked_count
    FROM bookings
    WHERE date_from < ? AND date_to > ?
    GROUP BY room_id
)
SELECT hotels.id,
       hotels.name,
       hotels.location,
       hotels.services,
       hotels.rooms_quantity,
       hotels.image_id,
       SUM(rooms.quantity) - COALESCE(SUM(booked_rooms.booked_count), 0) AS rooms_left
FROM hotels
JOIN rooms ON rooms.hotel_id = hotels.id
LEFT JOIN booked_rooms ON booked_rooms.room_id = rooms.id
WHERE LOWER(hotels.location) LIKE LOWER(?)
GROUP BY hotels.id, hotels.name, hotels.location, hotels.services, hotels.rooms_quantity, hotels.image_id
HAVING SUM(rooms.quantity) - COALESCE(SUM(booked_rooms.booked_count), 0) > 0
ORDER BY hotels.id
`

// SearchAvailable returns hotels in a location that still have at
// least one room unit free across their room types for [from, to).
// Hotels with zero remaining units are filtered out entirely.
func (r *HotelRepository) SearchAvailable(ctx context.Context, location string, from, to time.Time) ([]HotelAvailability, error) {
	var rows []HotelAvailability
	err := r.db.WithContext(ctx).
		Raw(searchAvailableQuery, to, from, "%"+location+"%").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
