package repository

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// Two half-open windows [a,b) and [c,d) overlap iff a < d AND c < b.
// Every availability query in this package counts bookings with
// date_from < window_end AND date_to > window_start, so a stay ending
// exactly when another starts never collides.

const roomsLeftQuery = `
SELECT rooms.quantity - COUNT(bookings.id) AS rooms_left
FROM rooms
LEFT JOIN bookings
       ON bookings.room_id = rooms.id
      AND bookings.date_from < ?
      AND bookings.date_to > ?
WHERE rooms.id = ?
GROUP BY rooms.quantity
`

// RoomsLeft returns the remaining capacity of a room over [from, to):
// quantity minus the count of overlapping bookings, as one aggregate
// query on the given handle. Callers that need the value to stay true
// until a subsequent insert must pass their transaction handle.
// The raw integer is returned even when zero or negative.
func RoomsLeft(ctx context.Context, db *gorm.DB, roomID int64, from, to time.Time) (int, error) {
	var left int
	tx := db.WithContext(ctx).Raw(roomsLeftQuery, to, from, roomID).Scan(&left)
	if tx.Error != nil {
		return 0, tx.Error
	}
	if tx.RowsAffected == 0 {
		return 0, gorm.ErrRecordNotFound
	}
	return left, nil
}
