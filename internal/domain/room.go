package domain

import "time"

// Room is one bookable room type of a hotel. Quantity is the number of
// physical units of this type and is the ceiling for overlapping bookings.
type Room struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	HotelID     int64     `json:"hotel_id" validate:"required"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	Price       int       `json:"price" validate:"gte=0"`
	Services    []string  `json:"services,omitempty" gorm:"serializer:json"`
	Quantity    int       `json:"quantity" validate:"gte=0"`
	ImageID     int       `json:"image_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
