package repository

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"hotelbooking/internal/domain"
)

func TestBook_Success(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db, "Grand", "Paris")
	room := seedRoom(t, db, hotel.ID, 4500, 4)
	user := seedUser(t, db, "a@example.com")
	seedBooking(t, db, room.ID, user.ID, day(5), day(12), 4500)

	repo := NewBookingRepository(db)
	b, err := repo.Book(context.Background(), user.ID, room.ID, day(1), day(15))
	require.NoError(t, err)

	assert.NotZero(t, b.ID)
	assert.Equal(t, room.ID, b.RoomID)
	assert.Equal(t, user.ID, b.UserID)
	assert.Equal(t, 4500, b.Price)

	left, err := RoomsLeft(context.Background(), db, room.ID, day(1), day(15))
	require.NoError(t, err)
	assert.Equal(t, 2, left)
}

func TestBook_RejectsWhenNoCapacity(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db, "Grand", "Paris")
	room := seedRoom(t, db, hotel.ID, 100, 1)
	user := seedUser(t, db, "a@example.com")
	seedBooking(t, db, room.ID, user.ID, day(5), day(12), 100)

	repo := NewBookingRepository(db)
	_, err := repo.Book(context.Background(), user.ID, room.ID, day(10), day(14))
	assert.ErrorIs(t, err, ErrNoRoomsLeft)

	var count int64
	require.NoError(t, db.Model(&domain.Booking{}).Count(&count).Error)
	assert.Equal(t, int64(1), count, "rejected request must leave no row behind")
}

func TestBook_BoundaryAdjacentStayAccepted(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db, "Grand", "Paris")
	room := seedRoom(t, db, hotel.ID, 100, 1)
	user := seedUser(t, db, "a@example.com")
	seedBooking(t, db, room.ID, user.ID, day(1), day(5), 100)

	repo := NewBookingRepository(db)
	b, err := repo.Book(context.Background(), user.ID, room.ID, day(5), day(9))
	require.NoError(t, err)
	assert.True(t, b.DateFrom.Equal(day(5)))
}

func TestBook_LastUnitAdmitsExactlyOne(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db, "Grand", "Paris")
	room := seedRoom(t, db, hotel.ID, 100, 1)
	user := seedUser(t, db, "a@example.com")

	repo := NewBookingRepository(db)
	successes := 0
	for i := 0; i < 5; i++ {
		_, err := repo.Book(context.Background(), user.ID, room.ID, day(1), day(10))
		if err == nil {
			successes++
		} else {
			assert.ErrorIs(t, err, ErrNoRoomsLeft)
		}
	}
	assert.Equal(t, 1, successes)
}

func TestBook_ConcurrentLastUnitAdmitsExactlyOne(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db, "Grand", "Paris")
	room := seedRoom(t, db, hotel.ID, 100, 1)
	user := seedUser(t, db, "a@example.com")

	repo := NewBookingRepository(db)

	const callers = 8
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = repo.Book(context.Background(), user.ID, room.ID, day(1), day(10))
		}(i)
	}
	wg.Wait()

	successes := 0
	for _, err := range errs {
		if err == nil {
			successes++
		} else {
			// losers get the business rejection, not a driver error
			assert.ErrorIs(t, err, ErrNoRoomsLeft)
		}
	}
	assert.Equal(t, 1, successes)

	var count int64
	require.NoError(t, db.Model(&domain.Booking{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestBook_UnknownRoom(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "a@example.com")

	repo := NewBookingRepository(db)
	_, err := repo.Book(context.Background(), user.ID, 777, day(1), day(2))
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestBook_PriceSnapshotSurvivesRoomRepricing(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db, "Grand", "Paris")
	room := seedRoom(t, db, hotel.ID, 100, 2)
	user := seedUser(t, db, "a@example.com")

	repo := NewBookingRepository(db)
	b, err := repo.Book(context.Background(), user.ID, room.ID, day(1), day(5))
	require.NoError(t, err)

	require.NoError(t, db.Model(&domain.Room{}).Where("id = ?", room.ID).Update("price", 999).Error)

	got, err := repo.GetByID(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, 100, got.Price)
}

func TestGetUserBookingsWithDetails(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db, "Grand", "Paris")
	room := seedRoom(t, db, hotel.ID, 200, 3)
	anna := seedUser(t, db, "anna@example.com")
	boris := seedUser(t, db, "boris@example.com")

	seedBooking(t, db, room.ID, anna.ID, day(10), day(12), 200)
	seedBooking(t, db, room.ID, anna.ID, day(1), day(3), 200)
	seedBooking(t, db, room.ID, boris.ID, day(1), day(3), 200)

	repo := NewBookingRepository(db)
	rows, err := repo.GetUserBookingsWithDetails(context.Background(), anna.ID)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "Standard", rows[0].RoomName)
	// ordered by stay start
	assert.True(t, rows[0].DateFrom.Before(rows[1].DateFrom))
	for _, row := range rows {
		assert.Equal(t, anna.ID, row.UserID)
	}
}

func TestDeleteOwned(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db, "Grand", "Paris")
	room := seedRoom(t, db, hotel.ID, 100, 2)
	anna := seedUser(t, db, "anna@example.com")
	boris := seedUser(t, db, "boris@example.com")
	b := seedBooking(t, db, room.ID, anna.ID, day(1), day(3), 100)

	repo := NewBookingRepository(db)

	// someone else's id does not reach it
	deleted, err := repo.DeleteOwned(context.Background(), b.ID, boris.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	// the owner does
	deleted, err = repo.DeleteOwned(context.Background(), b.ID, anna.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	// second delete is a miss
	deleted, err = repo.DeleteOwned(context.Background(), b.ID, anna.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestCancelFreesCapacity(t *testing.T) {
	db := newTestDB(t)
	hotel := seedHotel(t, db, "Grand", "Paris")
	room := seedRoom(t, db, hotel.ID, 100, 1)
	user := seedUser(t, db, "a@example.com")

	repo := NewBookingRepository(db)
	b, err := repo.Book(context.Background(), user.ID, room.ID, day(1), day(10))
	require.NoError(t, err)

	_, err = repo.Book(context.Background(), user.ID, room.ID, day(1), day(10))
	assert.ErrorIs(t, err, ErrNoRoomsLeft)

	deleted, err := repo.DeleteOwned(context.Background(), b.ID, user.ID)
	require.NoError(t, err)
	require.True(t, deleted)

	_, err = repo.Book(context.Background(), user.ID, room.ID, day(1), day(10))
	assert.NoError(t, err)
}
