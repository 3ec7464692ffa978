package booking

import "errors"

var (
	ErrInvalidDateRange   = errors.New("date_to must be after date_from")
	ErrRoomCannotBeBooked = errors.New("room cannot be booked")
	ErrBookingNotFound    = errors.New("booking not found")
)
