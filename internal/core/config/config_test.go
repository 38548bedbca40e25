package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setCatalogEnv(t *testing.T) {
	t.Helper()
	os.Setenv("CATALOG_URL", "https://catalog.test")
	t.Cleanup(func() { os.Unsetenv("CATALOG_URL") })
}

// TestLoad_Defaults verifies that default values are used when env vars are missing.
func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("APP_ENV")
	os.Unsetenv("LOG_LEVEL")
	os.Unsetenv("SERVER_PORT")
	setCatalogEnv(t)

	cfg, err := Load(".")
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "redis://localhost:6379/0", cfg.RedisURL)
}

// TestLoad_SimulationDefaults verifies the built-in simulation constants.
func TestLoad_SimulationDefaults(t *testing.T) {
	setCatalogEnv(t)

	cfg, err := Load(".")
	require.NoError(t, err)

	sim := cfg.Simulation
	assert.InDelta(t, 10.7769, sim.WarehouseLat, 1e-9)
	assert.InDelta(t, 106.7009, sim.WarehouseLng, 1e-9)
	assert.InDelta(t, 10.79, sim.FallbackDestLat, 1e-9)
	assert.InDelta(t, 106.68, sim.FallbackDestLng, 1e-9)
	assert.Equal(t, 8, sim.RouteSteps)
	assert.Equal(t, 3, sim.TickSeconds)
	assert.Equal(t, 15, sim.MaxEtaMinutes)
	assert.Equal(t, 3*time.Second, sim.TickPeriod())
}

// TestLoad_EnvVars verifies that environment variables override defaults.
func TestLoad_EnvVars(t *testing.T) {
	os.Setenv("APP_ENV", "production")
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("ROUTE_STEPS", "4")
	os.Setenv("TICK_SECONDS", "1")
	setCatalogEnv(t)
	defer func() {
		os.Unsetenv("APP_ENV")
		os.Unsetenv("LOG_LEVEL")
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("ROUTE_STEPS")
		os.Unsetenv("TICK_SECONDS")
	}()

	cfg, err := Load(".")
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Environment)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, 4, cfg.Simulation.RouteSteps)
	assert.Equal(t, 1, cfg.Simulation.TickSeconds)
}

// TestLoad_MissingRequired verifies that a missing required value fails loading.
func TestLoad_MissingRequired(t *testing.T) {
	os.Unsetenv("CATALOG_URL")

	cfg, err := Load(".")
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CATALOG_URL")
}
