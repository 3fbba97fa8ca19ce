package database

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"paperhub/internal/httpapi/models"
)

// pool is a process-wide pgx pool kept alongside GORM, used for liveness
// checks. Initialized once at startup, torn down at shutdown.
var pool *pgxpool.Pool

// OpenGorm opens the GORM handle used by the repositories and migrates the
// domain schema.
func OpenGorm(databaseURL string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(databaseURL), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.AutoMigrate(
		&models.Paper{},
		&models.Author{},
	); err != nil {
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}
	return db, nil
}

// Connect initializes the shared pgx pool.
func Connect(ctx context.Context, databaseURL string) error {
	p, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return fmt.Errorf("create pgx pool: %w", err)
	}
	if err := p.Ping(ctx); err != nil {
		p.Close()
		return fmt.Errorf("ping database: %w", err)
	}
	pool = p
	return nil
}

// Ping reports whether the store is reachable.
func Ping(ctx context.Context) error {
	if pool == nil {
		return fmt.Errorf("database pool not initialized")
	}
	return pool.Ping(ctx)
}

func Close() {
	if pool != nil {
		pool.Close()
	}
}
