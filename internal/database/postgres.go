// Package database manages the optional PostgreSQL connection for the
// verification-run history.
package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/aannayev/QaTask/internal/config"
	_ "github.com/lib/pq"
)

// Connect opens and verifies a connection using the given configuration. The
// caller owns the returned handle and passes it to the repository explicitly;
// there is no package-level connection.
func Connect(cfg *config.PostgresConfig) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.ConnectionString())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}
