package booking

import (
	"time"

	"hotelbooking/internal/domain"
)

const dateLayout = "2006-01-02"

type BookingResponse struct {
	ID        int64  `json:"id"`
	RoomID    int64  `json:"room_id"`
	UserID    int64  `json:"user_id"`
	DateFrom  string `json:"date_from"`
	DateTo    string `json:"date_to"`
	Price     int    `json:"price"`
	TotalDays int    `json:"total_days"`
	TotalCost int    `json:"total_cost"`
}

func newBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		RoomID:    b.RoomID,
		UserID:    b.UserID,
		DateFrom:  b.DateFrom.Format(dateLayout),
		DateTo:    b.DateTo.Format(dateLayout),
		Price:     b.Price,
		TotalDays: b.TotalDays(),
		TotalCost: b.TotalCost(),
	}
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
