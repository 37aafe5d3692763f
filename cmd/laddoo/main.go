package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hrygo/laddoo/internal/profile"
	"github.com/hrygo/laddoo/server/service/reminder"
	"github.com/hrygo/laddoo/store"
	"github.com/hrygo/laddoo/store/db"
)

const version = "0.1.0"

var (
	rootCmd = &cobra.Command{
		Use:   "laddoo",
		Short: "A voice-driven reminder manager.",
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return setupLogger(viper.GetString("log-level"))
		},
		SilenceUsage: true,
	}
)

func init() {
	viper.SetDefault("mode", "dev")
	viper.SetDefault("driver", "json")
	viper.SetDefault("port", 8081)
	viper.SetDefault("log-level", "info")
	viper.SetDefault("listen-retries", profile.DefaultListenRetries)
	viper.SetDefault("max-attempts", profile.DefaultMaxAttempts)

	rootCmd.PersistentFlags().String("mode", "dev", `mode of laddoo, can be "prod" or "dev" or "demo"`)
	rootCmd.PersistentFlags().String("addr", "", "address of the HTTP API")
	rootCmd.PersistentFlags().Int("port", 8081, "port of the HTTP API")
	rootCmd.PersistentFlags().String("data", "", "data directory")
	rootCmd.PersistentFlags().String("driver", "json", "reminder store driver (json, sqlite, postgres or memory)")
	rootCmd.PersistentFlags().String("dsn", "", "reminder store dsn, defaults to a file in the data directory")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn or error)")
	rootCmd.PersistentFlags().Int("listen-retries", profile.DefaultListenRetries, "reads per prompt before the assistant moves on")
	rootCmd.PersistentFlags().Int("max-attempts", profile.DefaultMaxAttempts, "date and time attempts per reminder")
	rootCmd.PersistentFlags().String("history-file", "", "file keeping chat history across sessions")

	for _, name := range []string{"mode", "addr", "port", "data", "driver", "dsn", "log-level", "listen-retries", "max-attempts", "history-file"} {
		if err := viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name)); err != nil {
			panic(err)
		}
	}

	viper.SetEnvPrefix("laddoo")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd.AddCommand(
		newServeCommand(),
		newChatCommand(),
		newAddCommand(),
		newListCommand(),
		newRemoveCommand(),
		newParseCommand(),
	)
}

func setupLogger(level string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return errors.Errorf("invalid log level %q", level)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))
	return nil
}

func loadProfile() (*profile.Profile, error) {
	instanceProfile := &profile.Profile{
		Mode:    viper.GetString("mode"),
		Addr:    viper.GetString("addr"),
		Port:    viper.GetInt("port"),
		Data:    viper.GetString("data"),
		Driver:  viper.GetString("driver"),
		DSN:     viper.GetString("dsn"),
		Version: version,

		ListenRetries: viper.GetInt("listen-retries"),
		MaxAttempts:   viper.GetInt("max-attempts"),
		HistoryFile:   viper.GetString("history-file"),
	}
	if err := instanceProfile.Validate(); err != nil {
		return nil, err
	}
	return instanceProfile, nil
}

// openReminders builds the store and the reminder service from the flags.
// Callers close the returned store.
func openReminders() (*profile.Profile, *store.Store, reminder.Service, error) {
	instanceProfile, err := loadProfile()
	if err != nil {
		return nil, nil, nil, err
	}

	dbDriver, err := db.NewDBDriver(instanceProfile)
	if err != nil {
		slog.Error("failed to create db driver", "error", err)
		return nil, nil, nil, err
	}

	storeInstance := store.New(dbDriver)
	return instanceProfile, storeInstance, reminder.NewService(storeInstance), nil
}

func printGreetings(profile *profile.Profile) {
	fmt.Printf("Laddoo %s started successfully!\n", profile.Version)

	if profile.IsDev() {
		fmt.Fprint(os.Stderr, "Development mode is enabled\n")
		fmt.Fprintf(os.Stderr, "Store: %s %s\n", profile.Driver, profile.DSN)
	}

	fmt.Printf("API running on %s\n", color.CyanString("http://%s:%d/api/v1", hostOrLocalhost(profile.Addr), profile.Port))
	fmt.Printf("Feed available at %s\n", color.CyanString("http://%s:%d/api/v1/reminders/feed", hostOrLocalhost(profile.Addr), profile.Port))
}

func hostOrLocalhost(addr string) string {
	if addr == "" {
		return "localhost"
	}
	return addr
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
