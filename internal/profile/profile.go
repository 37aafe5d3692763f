package profile

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
)

// Profile is the configuration to start laddoo.
type Profile struct {
	// Mode can be "prod" or "dev" or "demo"
	Mode string
	// Addr is the binding address for the HTTP API
	Addr string
	// Port is the binding port for the HTTP API
	Port int
	// Data is the data directory
	Data string
	// Driver is the reminder store driver (json, sqlite, postgres or memory)
	Driver string
	// DSN points to where laddoo stores its reminders
	DSN string
	// Version is the current version of laddoo
	Version string

	// Assistant Configuration
	ListenRetries int    // --listen-retries, LADDOO_LISTEN_RETRIES (default: 3)
	MaxAttempts   int    // --max-attempts, LADDOO_MAX_ATTEMPTS (default: 5)
	HistoryFile   string // --history-file, LADDOO_HISTORY_FILE (default: "")
}

const (
	// DefaultListenRetries is the number of reads per prompt before the assistant moves on.
	DefaultListenRetries = 3
	// DefaultMaxAttempts bounds the date and time re-prompts of one add.
	DefaultMaxAttempts = 5
)

func (p *Profile) IsDev() bool {
	return p.Mode != "prod"
}

func checkDataDir(dataDir string) (string, error) {
	// Convert to absolute path if relative path is supplied.
	if !filepath.IsAbs(dataDir) {
		absDir, err := filepath.Abs(dataDir)
		if err != nil {
			return "", err
		}
		dataDir = absDir
	}

	// Trim trailing \ or / in case user supplies
	dataDir = strings.TrimRight(dataDir, "\\/")
	if _, err := os.Stat(dataDir); err != nil {
		return "", errors.Wrapf(err, "unable to access data folder %s", dataDir)
	}
	return dataDir, nil
}

func (p *Profile) Validate() error {
	if p.Mode != "demo" && p.Mode != "dev" && p.Mode != "prod" {
		p.Mode = "demo"
	}
	if p.Driver == "" {
		p.Driver = "json"
	}
	if p.ListenRetries <= 0 {
		p.ListenRetries = DefaultListenRetries
	}
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = DefaultMaxAttempts
	}

	// The memory driver keeps nothing on disk.
	if p.Driver == "memory" {
		return nil
	}

	if p.Mode == "prod" && p.Data == "" {
		if runtime.GOOS == "windows" {
			p.Data = filepath.Join(os.Getenv("ProgramData"), "laddoo")
		} else {
			p.Data = "/var/opt/laddoo"
		}
		if _, err := os.Stat(p.Data); os.IsNotExist(err) {
			if err := os.MkdirAll(p.Data, 0770); err != nil {
				slog.Error("failed to create data directory", slog.String("data", p.Data), slog.String("error", err.Error()))
				return err
			}
		}
	}
	if p.Data == "" {
		p.Data = "."
	}

	dataDir, err := checkDataDir(p.Data)
	if err != nil {
		slog.Error("failed to check data directory", slog.String("data", p.Data), slog.String("error", err.Error()))
		return err
	}
	p.Data = dataDir

	if p.DSN != "" {
		return nil
	}
	switch p.Driver {
	case "json":
		p.DSN = filepath.Join(dataDir, "reminders.json")
	case "sqlite":
		p.DSN = filepath.Join(dataDir, fmt.Sprintf("laddoo_%s.db", p.Mode))
	case "postgres":
		return errors.New("postgres driver requires a dsn")
	}

	return nil
}
