package repository

import (
	"context"
	"errors"
	"time"

	"hotelbooking/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNoRoomsLeft signals the admission check found no remaining
// capacity. It is a business rejection, not a data-access failure.
var ErrNoRoomsLeft = errors.New("no rooms left for the requested window")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

type bookingModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	RoomID    int64     `gorm:"column:room_id"`
	UserID    int64     `gorm:"column:user_id"`
	DateFrom  time.Time `gorm:"column:date_from"`
	DateTo    time.Time `gorm:"column:date_to"`
	Price     int       `gorm:"column:price"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (bookingModel) TableName() string { return "bookings" }

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:        m.ID,
		RoomID:    m.RoomID,
		UserID:    m.UserID,
		DateFrom:  m.DateFrom,
		DateTo:    m.DateTo,
		Price:     m.Price,
		CreatedAt: m.CreatedAt,
	}
}

// Book runs the admission check and the insert as one transaction.
// The room row is locked first so two concurrent requests for the last
// unit cannot both pass the capacity read; the remaining-capacity count
// then runs on the same transaction handle. The nightly price is
// snapshotted from the room at insert time.
func (r *BookingRepository) Book(ctx context.Context, userID, roomID int64, from, to time.Time) (*domain.Booking, error) {
	var m bookingModel

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx
		if tx.Dialector.Name() == "postgres" {
			// Row lock only exists on Postgres. SQLite serializes
			// writers on its own, so the plain read is already safe
			// within the transaction there.
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var room domain.Room
		if err := q.First(&room, roomID).Error; err != nil {
			return err
		}

		left, err := RoomsLeft(ctx, tx, roomID, from, to)
		if err != nil {
			return err
		}
		if left <= 0 {
			return ErrNoRoomsLeft
		}

		m = bookingModel{
			RoomID:   roomID,
			UserID:   userID,
			DateFrom: from,
			DateTo:   to,
			Price:    room.Price,
		}
		return tx.Create(&m).Error
	})
	if err != nil {
		return nil, err
	}

	return toDomainBooking(m), nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	var m bookingModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainBooking(m), nil
}

// UserBookingDetails is a booking joined with the display data of its
// room for the caller's booking list.
type UserBookingDetails struct {
	ID           int64     `gorm:"column:id" json:"id"`
	RoomID       int64     `gorm:"column:room_id" json:"room_id"`
	UserID       int64     `gorm:"column:user_id" json:"user_id"`
	DateFrom     time.Time `gorm:"column:date_from" json:"date_from"`
	DateTo       time.Time `gorm:"column:date_to" json:"date_to"`
	Price        int       `gorm:"column:price" json:"price"`
	RoomName     string    `gorm:"column:room_name" json:"name"`
	Description  string    `gorm:"column:room_description" json:"description,omitempty"`
	RoomServices []string  `gorm:"column:room_services;serializer:json" json:"services,omitempty"`
	ImageID      int       `gorm:"column:image_id" json:"image_id"`
}

const userBookingsQuery = `
SELECT bookings.id,
       bookings.room_id,
       bookings.user_id,
       bookings.date_from,
       bookings.date_to,
       bookings.price,
       rooms.name        AS room_name,
       rooms.description AS room_description,
       rooms.services    AS room_services,
       rooms.image_id    AS image_id
FROM bookings
JOIN rooms ON rooms.id = bookings.room_id
WHERE bookings.user_id = ?
ORDER BY bookings.date_from, bookings.id
`

func (r *BookingRepository) GetUserBookingsWithDetails(ctx context.Context, userID int64) ([]UserBookingDetails, error) {
	var rows []UserBookingDetails
	err := r.db.WithContext(ctx).Raw(userBookingsQuery, userID).Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// DeleteOwned deletes a booking only when it belongs to the given
// user. A miss on either id or ownership reports false the same way.
func (r *BookingRepository) DeleteOwned(ctx context.Context, bookingID, userID int64) (bool, error) {
	tx := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", bookingID, userID).
		Delete(&bookingModel{})
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
