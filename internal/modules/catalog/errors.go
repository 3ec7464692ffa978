package catalog

import "errors"

var (
	ErrInvalidDateRange = errors.New("date_to must be after date_from")
	ErrHotelNotFound    = errors.New("hotel not found")
	ErrRoomNotFound     = errors.New("room not found")
)
