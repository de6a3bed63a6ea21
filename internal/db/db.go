package db

import (
	"database/sql"
	"fmt"

	"storefront-admin/internal/config"

	_ "github.com/lib/pq"
)

func buildDSN(cfg *config.Config) string {
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort,
	)
}

// NewDatabase opens and verifies the Postgres connection.
func NewDatabase(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("postgres", buildDSN(cfg))
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping db: %w", err)
	}

	return db, nil
}
