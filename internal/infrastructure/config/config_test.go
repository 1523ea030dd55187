package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadConfig_FileValuesAndDefaults(t *testing.T) {
	// Arrange
	path := writeConfigFile(t, `
simulation:
  stars: 500
  civilizations: 3
  seed: 7
  events_enabled: false
database:
  type: sqlite
  path: /tmp/runs.db
logging:
  level: debug
  format: text
`)

	// Act
	cfg, err := LoadConfig(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.Simulation.Stars)
	assert.Equal(t, 3, cfg.Simulation.Civilizations)
	assert.Equal(t, int64(7), cfg.Simulation.Seed)
	assert.False(t, cfg.Simulation.EventsEnabled)
	assert.Equal(t, 100, cfg.Simulation.Steps)
	assert.Equal(t, 1.0, cfg.Simulation.PropagationSpeed)
	assert.Equal(t, "/tmp/runs.db", cfg.Database.Path)
	assert.Equal(t, 25, cfg.Database.Pool.MaxOpen)
	assert.Equal(t, 5*time.Minute, cfg.Database.Pool.MaxLifetime)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "stderr", cfg.Logging.Output)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
	assert.Equal(t, 9090, cfg.Metrics.Port)
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	// Arrange
	path := writeConfigFile(t, "simulation:\n  stars: 500\n")
	t.Setenv("GS_SIMULATION_STARS", "250")
	t.Setenv("GS_SIMULATION_ADAPTIVE_POLICY", "true")

	// Act
	cfg, err := LoadConfig(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 250, cfg.Simulation.Stars)
	assert.True(t, cfg.Simulation.AdaptivePolicy)
	assert.True(t, cfg.Simulation.EventsEnabled)
}

func TestLoadConfig_DatabaseURLOverride(t *testing.T) {
	// Arrange
	path := writeConfigFile(t, "database:\n  type: postgres\n")
	t.Setenv("DATABASE_URL", "postgresql://sim:secret@db:5432/galaxysim")

	// Act
	cfg, err := LoadConfig(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "postgresql://sim:secret@db:5432/galaxysim", cfg.Database.URL)
	assert.Equal(t, "postgres", cfg.Database.Type)
	assert.Equal(t, 5432, cfg.Database.Port)
}

func TestLoadConfig_RejectsZeroStars(t *testing.T) {
	// Arrange
	path := writeConfigFile(t, "simulation:\n  stars: 0\n")

	// Act
	cfg, err := LoadConfig(path)

	// Assert
	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "Stars")
}

func TestLoadConfig_RejectsNonPositivePropagationSpeed(t *testing.T) {
	path := writeConfigFile(t, "simulation:\n  propagation_speed: -2\n")

	_, err := LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "PropagationSpeed")
}

func TestLoadConfig_FileOutputRequiresPath(t *testing.T) {
	path := writeConfigFile(t, "logging:\n  output: file\n")

	_, err := LoadConfig(path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "FilePath")
}

func TestLoadConfig_MissingExplicitFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))

	assert.Error(t, err)
}

func TestLoadConfigOrDefault_FallsBackToDefaults(t *testing.T) {
	cfg := LoadConfigOrDefault(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NotNil(t, cfg)
	assert.Equal(t, DefaultSimulationConfig(), cfg.Simulation)
	assert.Equal(t, "sqlite", cfg.Database.Type)
	assert.Equal(t, "galaxysim.db", cfg.Database.Path)
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()

	assert.NoError(t, ValidateConfig(cfg))
	assert.Equal(t, 1000, cfg.Simulation.Stars)
	assert.Equal(t, 10, cfg.Simulation.Civilizations)
	assert.Equal(t, int64(42), cfg.Simulation.Seed)
	assert.True(t, cfg.Simulation.EventsEnabled)
	assert.Zero(t, cfg.Simulation.Pace)
}

func TestMustLoadConfig_PanicsOnInvalidConfig(t *testing.T) {
	path := writeConfigFile(t, "simulation:\n  steps: -1\n")

	assert.Panics(t, func() { MustLoadConfig(path) })
}

func TestValidator_FormatsFieldErrors(t *testing.T) {
	cfg := Default()
	cfg.Logging.Level = "verbose"

	err := ValidateConfig(cfg)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "field 'Level' failed validation: oneof (value: 'verbose')")
}

func TestValidator_PostgresNeedsURLOrHost(t *testing.T) {
	db := DatabaseConfig{
		Type: "postgres",
		Pool: PoolConfig{MaxOpen: 5, MaxIdle: 1},
	}

	err := NewValidator().Validate(&db)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "field 'Host' failed validation: required_without_url")
	assert.Contains(t, err.Error(), "field 'Name' failed validation: required_without_url")

	db.URL = "postgresql://sim@db:5432/galaxysim"
	assert.NoError(t, NewValidator().Validate(&db))
}
