package domain

import "time"

// Booking reserves one unit of a room for the half-open window
// [DateFrom, DateTo). Price is the nightly price captured at booking
// time; later room price changes do not affect it. Bookings are
// immutable once created, the only write after insert is deletion.
type Booking struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	RoomID    int64     `json:"room_id"`
	UserID    int64     `json:"user_id"`
	DateFrom  time.Time `json:"date_from"`
	DateTo    time.Time `json:"date_to"`
	Price     int       `json:"price"`
	CreatedAt time.Time `json:"created_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Room *Room `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}

// TotalDays is the stay length in whole nights.
func (b *Booking) TotalDays() int {
	return int(b.DateTo.Sub(b.DateFrom).Hours() / 24)
}

// TotalCost is the nightly price snapshot times the stay length.
func (b *Booking) TotalCost() int {
	return b.Price * b.TotalDays()
}
