package booking

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"hotelbooking/internal/domain"
	"hotelbooking/internal/repository"
)

type Service struct {
	bookings BookingRepository
	users    UserRepository
	notifs   NotificationSender
}

func NewService(bookings BookingRepository, users UserRepository, notifs NotificationSender) *Service {
	return &Service{
		bookings: bookings,
		users:    users,
		notifs:   notifs,
	}
}

// RequestBooking admits a stay on a room for [from, to). The capacity
// check and the insert run in one repository transaction; a rejection
// for lack of capacity is a business outcome, anything else from the
// store is an internal failure and is logged with the request
// parameters. The confirmation email is queued only after the commit
// and can never unwind the booking.
func (s *Service) RequestBooking(ctx context.Context, userID, roomID int64, from, to time.Time) (*domain.Booking, error) {
	if !to.After(from) {
		return nil, ErrInvalidDateRange
	}

	b, err := s.bookings.Book(ctx, userID, roomID, from, to)
	if err != nil {
		if errors.Is(err, repository.ErrNoRoomsLeft) {
			return nil, ErrRoomCannotBeBooked
		}
		// A unique/exclusion violation on the bookings table means a
		// concurrent writer won the last unit; same business outcome.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrRoomCannotBeBooked
		}
		log.Printf("booking admission failed user_id=%d room_id=%d date_from=%s date_to=%s error=%q",
			userID, roomID, from.Format(dateLayout), to.Format(dateLayout), err)
		return nil, err
	}

	if s.notifs != nil {
		user, err := s.users.GetByID(ctx, userID)
		if err != nil {
			log.Printf("confirmation recipient lookup failed user_id=%d booking_id=%d error=%q", userID, b.ID, err)
		} else {
			s.notifs.Enqueue(user.Email, *b)
		}
	}

	return b, nil
}

func (s *Service) MyBookings(ctx context.Context, userID int64) ([]repository.UserBookingDetails, error) {
	return s.bookings.GetUserBookingsWithDetails(ctx, userID)
}

// CancelBooking deletes the caller's booking. A booking that does not
// exist and a booking owned by someone else are both reported as not
// found, so ownership is not leaked.
func (s *Service) CancelBooking(ctx context.Context, bookingID, userID int64) error {
	deleted, err := s.bookings.DeleteOwned(ctx, bookingID, userID)
	if err != nil {
		log.Printf("booking cancellation failed booking_id=%d user_id=%d error=%q", bookingID, userID, err)
		return err
	}
	if !deleted {
		return ErrBookingNotFound
	}
	return nil
}
