package log_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tollan/keywire/internal/log"
)

func TestParseLevel(t *testing.T) {
	type testCase struct {
		in   string
		want slog.Level
	}

	cases := []testCase{
		{in: "trace", want: log.LevelTrace},
		{in: "debug", want: slog.LevelDebug},
		{in: "info", want: slog.LevelInfo},
		{in: "", want: slog.LevelInfo},
		{in: "warn", want: slog.LevelWarn},
		{in: "error", want: slog.LevelError},
		{in: "bogus", want: slog.LevelInfo},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, log.ParseLevel(tc.in), "level %q", tc.in)
	}
}

func setupFileLogger(t *testing.T, level string) (*slog.Logger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "keywire.log")
	logger, closers, err := log.SetupLogger(level, path)
	require.NoError(t, err)
	t.Cleanup(func() {
		for _, c := range closers {
			_ = c.Close()
		}
	})
	return logger, path
}

func TestTraceLevelRendering(t *testing.T) {
	logger, path := setupFileLogger(t, "trace")

	log.Trace(logger, "rx byte", "byte", "0x1c")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "level=TRACE")
	assert.Contains(t, string(data), "rx byte")
}

func TestTraceFilteredAtInfo(t *testing.T) {
	logger, path := setupFileLogger(t, "info")

	log.Trace(logger, "rx byte", "byte", "0x1c")
	logger.Info("session done")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "rx byte")
	assert.Contains(t, string(data), "session done")
}
