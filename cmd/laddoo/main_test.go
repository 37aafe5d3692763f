package main

import (
	"bytes"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rerrors "github.com/hrygo/laddoo/internal/errors"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestParseCommand(t *testing.T) {
	out, err := execute(t, "parse", "time", "three", "forty", "five", "p.m.")
	require.NoError(t, err)
	assert.Equal(t, "15:45\n", out)

	out, err = execute(t, "parse", "date", "the", "eleventh", "of", "august")
	require.NoError(t, err)
	assert.Equal(t, "August 11\n", out)

	_, err = execute(t, "parse", "date", "someday")
	assert.Error(t, err)
}

func TestListCommand_Empty(t *testing.T) {
	dir := t.TempDir()

	out, err := execute(t, "--data", dir, "--driver", "json", "list")
	require.NoError(t, err)
	assert.Equal(t, "No upcoming reminders.\n", out)

	out, err = execute(t, "--data", dir, "--dsn", filepath.Join(dir, "other.json"), "list", "--all")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestSetupLogger(t *testing.T) {
	require.NoError(t, setupLogger("debug"))
	require.NoError(t, setupLogger("WARN"))
	assert.Error(t, setupLogger("loud"))
}

func TestAddAndRemoveCommands(t *testing.T) {
	dir := t.TempDir()
	year := time.Now().Year()
	run := func(args ...string) (string, error) {
		storeFlags := []string{"--data", dir, "--driver", "json", "--dsn", filepath.Join(dir, "reminders.json")}
		return execute(t, append(storeFlags, args...)...)
	}
	momKey := fmt.Sprintf("%d-12-31 23:59", year)
	dadKey := fmt.Sprintf("%d-12-30 09:00", year)

	out, err := run("add", "--date", "december 31st", "--time", "11 59 pm", "--repeat", "weakly", "call", "mom")
	require.NoError(t, err)
	assert.Contains(t, out, "call mom at "+momKey+", repeating weekly")

	_, err = run("add", "--date", "december 31st", "--time", "11 59 pm", "--repeat", "once", "call", "dad")
	assert.True(t, rerrors.IsCode(err, rerrors.ErrCodeDuplicateKey), "got %v", err)

	_, err = run("add", "--date", "january first", "--time", "12 am", "--repeat", "once", "new", "year")
	assert.True(t, rerrors.IsCode(err, rerrors.ErrCodePastInstant), "got %v", err)

	_, err = run("add", "--date", "december 30th", "--time", "9 am", "--repeat", "once", "call", "dad")
	require.NoError(t, err)

	// A query matching several reminders removes nothing.
	out, err = run("remove", "call")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "2 reminders match")
	assert.Contains(t, out, dadKey)
	assert.Contains(t, out, momKey)

	_, err = run("remove", "grocery")
	assert.True(t, rerrors.IsCode(err, rerrors.ErrCodeNotFound), "got %v", err)

	out, err = run("remove", "dad")
	require.NoError(t, err)
	assert.Contains(t, out, "Removed "+dadKey)

	out, err = run("remove", "--key", momKey)
	require.NoError(t, err)
	assert.Contains(t, out, "Removed "+momKey)

	out, err = run("list", "--all")
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestAssistantSettingsFromEnv(t *testing.T) {
	t.Setenv("LADDOO_LISTEN_RETRIES", "7")
	t.Setenv("LADDOO_MAX_ATTEMPTS", "2")
	t.Setenv("LADDOO_HISTORY_FILE", "/tmp/laddoo-history")

	for _, name := range []string{"listen-retries", "max-attempts", "history-file"} {
		assert.NotNil(t, rootCmd.PersistentFlags().Lookup(name), name)
	}
	assert.Equal(t, 7, viper.GetInt("listen-retries"))
	assert.Equal(t, 2, viper.GetInt("max-attempts"))
	assert.Equal(t, "/tmp/laddoo-history", viper.GetString("history-file"))
}
