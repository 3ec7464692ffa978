package repository

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"hotelbooking/internal/database"
	"hotelbooking/internal/domain"

	_ "modernc.org/sqlite"
)

// newTestDB opens a fresh file-backed sqlite database under the test's
// temp dir. A file, not :memory:, because gorm pools connections and
// each in-memory connection would get its own empty database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := database.SQLiteDSN(filepath.Join(t.TempDir(), "hotels.db"))
	db, err := gorm.Open(gormsqlite.New(gormsqlite.Config{
		DriverName: "sqlite",
		DSN:        dsn,
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Hotel{},
		&domain.Room{},
		&domain.Booking{},
	))
	return db
}

func day(d int) time.Time {
	return time.Date(2030, 5, d, 0, 0, 0, 0, time.UTC)
}

func seedHotel(t *testing.T, db *gorm.DB, name, location string) *domain.Hotel {
	t.Helper()
	h := &domain.Hotel{Name: name, Location: location, Services: []string{"wifi"}}
	require.NoError(t, db.Create(h).Error)
	return h
}

func seedRoom(t *testing.T, db *gorm.DB, hotelID int64, price, quantity int) *domain.Room {
	t.Helper()
	r := &domain.Room{HotelID: hotelID, Name: "Standard", Price: price, Quantity: quantity}
	require.NoError(t, db.Create(r).Error)
	return r
}

func seedUser(t *testing.T, db *gorm.DB, email string) *domain.User {
	t.Helper()
	u := &domain.User{Email: email, PasswordHash: "x"}
	require.NoError(t, db.Create(u).Error)
	return u
}

func seedBooking(t *testing.T, db *gorm.DB, roomID, userID int64, from, to time.Time, price int) *domain.Booking {
	t.Helper()
	b := &domain.Booking{RoomID: roomID, UserID: userID, DateFrom: from, DateTo: to, Price: price}
	require.NoError(t, db.Create(b).Error)
	return b
}
