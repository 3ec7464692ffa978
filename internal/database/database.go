package database

import (
	"log"
	"strings"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// Registers the cgo-free "sqlite" database/sql driver.
	_ "modernc.org/sqlite"
)

// Connect opens the store by DSN: postgres URLs go to the pgx-backed
// driver, anything else is treated as a SQLite path for local runs
// and tests.
func Connect(dsn string) (*gorm.DB, error) {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		log.Println("Connecting to PostgreSQL...")
		return gorm.Open(postgres.Open(dsn), &gorm.Config{})
	}

	log.Println("Using SQLite:", dsn)

	db, err := gorm.Open(
		gormsqlite.New(gormsqlite.Config{
			DriverName: "sqlite",
			DSN:        SQLiteDSN(dsn),
		}),
		&gorm.Config{},
	)
	if err != nil {
		return nil, err
	}
	if err := limitSQLitePool(db); err != nil {
		return nil, err
	}
	return db, nil
}

// SQLiteDSN appends a busy timeout so a writer waits for the lock
// instead of failing with SQLITE_BUSY under contention.
func SQLiteDSN(path string) string {
	if strings.Contains(path, "?") {
		return path + "&_pragma=busy_timeout(5000)"
	}
	return path + "?_pragma=busy_timeout(5000)"
}

// limitSQLitePool caps the pool at one connection. SQLite allows a
// single writer, and concurrent transactions on pooled connections
// fail with SQLITE_BUSY or nested-transaction errors instead of
// queueing; one connection serializes them at the pool.
func limitSQLitePool(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	sqlDB.SetMaxOpenConns(1)
	return nil
}
