package logger

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  Level
	}{
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"warn", LevelWarn},
		{"warning", LevelWarn},
		{"error", LevelError},
		{"", LevelInfo},
		{"unknown", LevelInfo},
		{" ERROR ", LevelError},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseLevel(tt.input), "input=%q", tt.input)
	}
}

func TestLoggerWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "service.log")

	log, err := New(path, "info")
	require.NoError(t, err)

	log.Info("hello %s", "world")
	log.Debug("should be filtered out")
	log.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	assert.Contains(t, string(data), "[INFO] hello world")
	assert.NotContains(t, string(data), "filtered out")
}

func TestLoggerStdoutOnly(t *testing.T) {
	log, err := New("", "debug")
	require.NoError(t, err)
	defer log.Close()

	// Не должно паниковать без файла
	log.Debug("debug message")
	log.Warn("warn message")
}
