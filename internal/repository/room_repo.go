package repository

import (
	"context"
	"time"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
)

// RoomAvailability is a room row annotated with remaining capacity for
// a query window. RoomsLeft keeps its raw sign: a room stays listed
// even when over-booked by a data anomaly.
type RoomAvailability struct {
	ID          int64    `gorm:"column:id" json:"id"`
	HotelID     int64    `gorm:"column:hotel_id" json:"hotel_id"`
	Name        string   `gorm:"column:name" json:"name"`
	Description string   `gorm:"column:description" json:"description,omitempty"`
	Price       int      `gorm:"column:price" json:"price"`
	Services    []string `gorm:"column:services;serializer:json" json:"services,omitempty"`
	Quantity    int      `gorm:"column:quantity" json:"quantity"`
	ImageID     int      `gorm:"column:image_id" json:"image_id"`
	RoomsLeft   int      `gorm:"column:rooms_left" json:"rooms_left"`
}

type RoomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) *RoomRepository {
	return &RoomRepository{db: db}
}

func (r *RoomRepository) GetByID(ctx context.Context, id int64) (*domain.Room, error) {
	var room domain.Room
	err := r.db.WithContext(ctx).First(&room, id).Error
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) GetByHotelID(ctx context.Context, hotelID int64) ([]domain.Room, error) {
	var rooms []domain.Room
	err := r.db.WithContext(ctx).
		Where("hotel_id = ?", hotelID).
		Order("id").
		Find(&rooms).Error
	return rooms, err
}

func (r *RoomRepository) Create(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Create(room).Error
}

func (r *RoomRepository) Update(ctx context.Context, room *domain.Room) error {
	return r.db.WithContext(ctx).Save(room).Error
}

func (r *RoomRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tx := r.db.WithContext(ctx).Delete(&domain.Room{}, id)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

const roomsWithAvailabilityQuery = `
WITH booked_rooms AS (
    SELECT room_id, COUNT(id) AS booked_count
    FROM bookings
    WHERE date_from < ? AND date_to > ?
    GROUP BY room_id
)
SELECT rooms.id,
       rooms.hotel_id,
       rooms.name,
       rooms.description,
       rooms.price,
       rooms.services,
       rooms.quantity,
       rooms.image_id,
       rooms.quantity - COALESCE(booked_rooms.booked_count, 0) AS rooms_left
FROM rooms
LEFT JOIN booked_rooms ON booked_rooms.room_id = rooms.id
WHERE rooms.hotel_id = ?
ORDER BY rooms.id
`

// GetWithAvailability returns every room of a hotel annotated with its
// remaining capacity for [from, to), including rooms with none left.
func (r *RoomRepository) GetWithAvailability(ctx context.Context, hotelID int64, from, to time.Time) ([]RoomAvailability, error) {
	var rows []RoomAvailability
	err := r.db.WithContext(ctx).
		Raw(roomsWithAvailabilityQuery, to, from, hotelID).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}
