package sqlite

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"

	// Import the SQLite driver.
	_ "modernc.org/sqlite"

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

// NewDB opens the SQLite database named by profile.DSN and ensures the
// reminder table exists.
func NewDB(profile *profile.Profile) (store.Driver, error) {
	// Ensure a DSN is set before attempting to open the database.
	if profile.DSN == "" {
		return nil, errors.New("dsn required")
	}

	// Connect to the database with some sane settings:
	// - No foreign key constraints.
	// - Journal mode set to WAL, which prevents most locking issues.
	//
	// When using the `modernc.org/sqlite` driver, each pragma must be prefixed with `_pragma=`.
	sqliteDB, err := sql.Open("sqlite", profile.DSN+"?_pragma=foreign_keys(0)&_pragma=busy_timeout(10000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, rerrors.Storage(err, "failed to open db").WithContext("dsn", profile.DSN)
	}
	// One connection serializes writers from concurrent API handlers.
	sqliteDB.SetMaxOpenConns(1)

	if _, err := sqliteDB.ExecContext(context.Background(), schema); err != nil {
		sqliteDB.Close()
		return nil, rerrors.Storage(err, "failed to migrate reminder table").WithContext("dsn", profile.DSN)
	}

	return &DB{db: sqliteDB}, nil
}

func (d *DB) Close() error {
	return d.db.Close()
}
