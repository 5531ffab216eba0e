package database

import (
	"fmt"
	"log"
	"time"

	"activies-backend/internal/config"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq" // PostgreSQL driver
)

// Connect opens the single shared database handle. The underlying
// database/sql pool enforces the configured upper bound on checked-out
// connections and queues acquisitions beyond it; a connection is returned
// to the pool after every statement, success or failure.
func Connect(cfg *config.Config) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode)

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(cfg.DBMaxConns)
	db.SetMaxIdleConns(cfg.DBMaxConns / 4)
	db.SetConnMaxIdleTime(5 * time.Minute)

	log.Printf("Connected to database (pool limit %d)", cfg.DBMaxConns)
	return db, nil
}
