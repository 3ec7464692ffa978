package catalog

import (
	"time"

	"hotelbooking/internal/repository"
)

const dateLayout = "2006-01-02"

// RoomWithCost is a room availability row with the total cost of the
// requested stay: nightly price times whole nights.
type RoomWithCost struct {
	repository.RoomAvailability
	TotalCost int `json:"total_cost"`
}

type CreateHotelRequest struct {
	Name          string   `json:"name" validate:"required"`
	Location      string   `json:"location" validate:"required"`
	Services      []string `json:"services"`
	RoomsQuantity int      `json:"rooms_quantity" validate:"gte=0"`
	ImageID       int      `json:"image_id"`
}

type UpdateHotelRequest struct {
	Name          *string   `json:"name,omitempty"`
	Location      *string   `json:"location,omitempty"`
	Services      *[]string `json:"services,omitempty"`
	RoomsQuantity *int      `json:"rooms_quantity,omitempty"`
	ImageID       *int      `json:"image_id,omitempty"`
}

type CreateRoomRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Price       int      `json:"price" validate:"gte=0"`
	Services    []string `json:"services"`
	Quantity    int      `json:"quantity" validate:"gte=0"`
	ImageID     int      `json:"image_id"`
}

type UpdateRoomRequest struct {
	Name        *string   `json:"name,omitempty"`
	Description *string   `json:"description,omitempty"`
	Price       *int      `json:"price,omitempty"`
	Services    *[]string `json:"services,omitempty"`
	Quantity    *int      `json:"quantity,omitempty"`
	ImageID     *int      `json:"image_id,omitempty"`
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
