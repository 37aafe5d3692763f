package db

import (
	"github.com/pkg/errors"

	"github.com/hrygo/laddoo/internal/profile"
	"github.com/hrygo/laddoo/store"
	"github.com/hrygo/laddoo/store/db/jsonfile"
	"github.com/hrygo/laddoo/store/db/memory"
	"github.com/hrygo/laddoo/store/db/postgres"
	"github.com/hrygo/laddoo/store/db/sqlite"
)

// NewDBDriver creates new db driver based on profile.
//
// json is the default and keeps the human-readable reminders file; sqlite and
// postgres hold the same key/record table; memory keeps nothing on disk.
func NewDBDriver(profile *profile.Profile) (store.Driver, error) {
	var driver store.Driver
	var err error

	switch profile.Driver {
	case "json", "":
		driver, err = jsonfile.NewDB(profile)
	case "sqlite":
		driver, err = sqlite.NewDB(profile)
	case "postgres":
		driver, err = postgres.NewDB(profile)
	case "memory":
		driver = memory.NewDB()
	default:
		return nil, errors.Errorf("unknown db driver %q: supported drivers are json, sqlite, postgres and memory", profile.Driver)
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to create db driver")
	}
	return driver, nil
}
