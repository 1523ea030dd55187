package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/galaxysim/internal/infrastructure/config"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		"info":    slog.LevelInfo,
		"warn":    slog.LevelWarn,
		"error":   slog.LevelError,
		"verbose": slog.LevelInfo,
	}
	for name, want := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, want, ParseLevel(name))
		})
	}
}

func TestNewHandler_JSONRespectsLevel(t *testing.T) {
	// Arrange
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, config.LoggingConfig{Level: "warn", Format: "json"}))

	// Act
	logger.Info("hidden")
	logger.Warn("shown", "component", "simulation")

	// Assert
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "shown", entry["msg"])
	assert.Equal(t, "simulation", entry["component"])
}

func TestNewHandler_Text(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(NewHandler(&buf, config.LoggingConfig{Level: "debug", Format: "text"}))

	logger.Debug("generated galaxy", "stars", 3)

	assert.Contains(t, buf.String(), "msg=\"generated galaxy\" stars=3")
}

func TestNew_FileOutput(t *testing.T) {
	// Arrange
	path := filepath.Join(t.TempDir(), "galaxysim.log")

	// Act
	logger, closer, err := New(config.LoggingConfig{Level: "info", Format: "json", Output: "file", FilePath: path})
	require.NoError(t, err)
	logger.Info("run completed")
	require.NoError(t, closer.Close())

	// Assert
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "run completed")
}

func TestNew_RejectsUnknownOutput(t *testing.T) {
	_, _, err := New(config.LoggingConfig{Output: "syslog"})

	assert.EqualError(t, err, "unsupported logging output: syslog")
}

func TestNew_FileOutputWithoutPath(t *testing.T) {
	_, _, err := New(config.LoggingConfig{Output: "file"})

	assert.Error(t, err)
}
