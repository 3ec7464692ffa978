package booking

import (
	"context"
	"time"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"
)

// BookingRepository covers the booking operations this service needs.
// Book must run its capacity check and insert in one transaction.
type BookingRepository interface {
	Book(ctx context.Context, userID, roomID int64, from, to time.Time) (*domain.Booking, error)
	GetUserBookingsWithDetails(ctx context.Context, userID int64) ([]repository.UserBookingDetails, error)
	DeleteOwned(ctx context.Context, bookingID, userID int64) (bool, error)
}

// UserRepository resolves the recipient address for confirmations.
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

// NotificationSender queues a confirmation after the booking committed.
type NotificationSender interface {
	Enqueue(email string, b domain.Booking)
}
