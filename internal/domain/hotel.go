package domain

import "time"

type Hotel struct {
	ID            int64     `json:"id" gorm:"primaryKey"`
	Name          string    `json:"name" validate:"required"`
	Location      string    `json:"location" validate:"required"`
	Services      []string  `json:"services,omitempty" gorm:"serializer:json"`
	RoomsQuantity int       `json:"rooms_quantity" validate:"gte=0"`
	ImageID       int       `json:"image_id"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`

	Rooms []Room `json:"rooms,omitempty" gorm:"foreignKey:HotelID"`
}
