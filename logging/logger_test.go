package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestNewWritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.log")

	logger, err := New(Options{Level: "debug", File: path})
	require.NoError(t, err)

	logger.Info("command dispatched")
	logger.Warn("command failed")
	_ = logger.Sync()

	entries := readEntries(t, path)
	require.Len(t, entries, 2)

	assert.Equal(t, "INFO", entries[0]["severity"])
	assert.Equal(t, "command dispatched", entries[0]["message"])
	assert.Contains(t, entries[0], "timestamp")
	assert.Contains(t, entries[0], "caller")
	assert.Equal(t, "WARNING", entries[1]["severity"])
}

func TestNewDefaultLevelIsWarn(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.log")

	logger, err := New(Options{File: path})
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("hidden")
	logger.Error("shown")
	_ = logger.Sync()

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	assert.Equal(t, "ERROR", entries[0]["severity"])
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New(Options{Level: "chatty"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chatty")
}

func TestLevelIsCaseInsensitive(t *testing.T) {
	for _, option := range []string{"DEBUG", "Info", "warn", "ERROR"} {
		t.Run(option, func(t *testing.T) {
			_, err := level(option)
			assert.NoError(t, err)
		})
	}
}

func TestTimestampFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bot.log")

	logger, err := New(Options{Level: "info", File: path})
	require.NoError(t, err)
	logger.Info("tick")
	_ = logger.Sync()

	entries := readEntries(t, path)
	require.Len(t, entries, 1)
	ts, ok := entries[0]["timestamp"].(string)
	require.True(t, ok)
	assert.Len(t, ts, len(RFC3339Micros))
	assert.True(t, strings.HasSuffix(ts, "Z"))
}
