package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	// Import the PostgreSQL driver.
	_ "github.com/lib/pq"
	"github.com/pkg/errors"

	rerrors "github.com/hrygo/laddoo/internal/errors"
	"github.com/hrygo/laddoo/internal/profile"
	"github.com/hrygo/laddoo/store"
)

const schema = `
CREATE TABLE IF NOT EXISTS reminder (
	ts TEXT NOT NULL PRIMARY KEY,
	content TEXT NOT NULL,
	recurrence TEXT NOT NULL DEFAULT 'once'
);`

type DB struct {
	db *sql.DB
}

func NewDB(profile *profile.Profile) (store.Driver, error) {
	if profile == nil {
		return nil, errors.New("profile is nil")
	}

	db, err := sql.Open("postgres", profile.DSN)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		return nil, rerrors.Storage(err, "failed to open database")
	}

	// A single user reads and writes serially.
	db.SetMaxOpenConns(2)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(2 * time.Hour)
	db.SetConnMaxIdleTime(15 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Verify connection is working before returning
	if err := db.PingContext(ctx); err != nil {
		slog.Error("failed to ping database", "error", err)
		db.Close()
		return nil, rerrors.Storage(err, "failed to ping database")
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, rerrors.Storage(err, "failed to migrate reminder table")
	}

	return &DB{db: db}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}
