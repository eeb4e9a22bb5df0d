package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestFromViperAppliesDefaults(t *testing.T) {
	resetViper(t)
	SetDefaults()

	cfg, err := FromViper()
	require.NoError(t, err)
	require.NotNil(t, cfg)

	// Server defaults
	assert.Equal(t, "localhost", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 60*time.Second, cfg.Server.WriteTimeout)
	assert.Equal(t, 120*time.Second, cfg.Server.IdleTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)

	// Store defaults
	assert.Equal(t, "libsql", cfg.Store.Driver)
	assert.NotEmpty(t, cfg.Store.Path)
	assert.Equal(t, "", cfg.Store.URL)
	assert.Equal(t, "", cfg.Store.AuthToken)

	// Discovery pacing defaults
	assert.Equal(t, "http://localhost:3000", cfg.Discovery.ServiceURL)
	assert.Equal(t, 5*time.Second, cfg.Discovery.MinDisplay)
	assert.Equal(t, 45*time.Second, cfg.Discovery.MaxTimeout)
	assert.Equal(t, 40*time.Second, cfg.Discovery.RequestTimeout)
	assert.Equal(t, 10*time.Minute, cfg.Discovery.CacheTTL)

	// Logging defaults
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "structured", cfg.Logging.Profile)

	// Metrics defaults
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, 9090, cfg.Metrics.Port)

	// Health and debug defaults
	assert.True(t, cfg.Health.Enabled)
	assert.False(t, cfg.Debug.Enabled)
}

func TestFromViperHonorsOverrides(t *testing.T) {
	resetViper(t)
	SetDefaults()

	viper.Set("discovery.service_url", "http://events.internal:9000")
	viper.Set("discovery.min_display", "2s")
	viper.Set("discovery.max_timeout", "20s")
	viper.Set("server.port", 9999)

	cfg, err := FromViper()
	require.NoError(t, err)

	assert.Equal(t, "http://events.internal:9000", cfg.Discovery.ServiceURL)
	assert.Equal(t, 2*time.Second, cfg.Discovery.MinDisplay)
	assert.Equal(t, 20*time.Second, cfg.Discovery.MaxTimeout)
	assert.Equal(t, 9999, cfg.Server.Port)
}

func TestValidateRejectsBrokenConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Port: 8080},
			Discovery: DiscoveryConfig{
				ServiceURL: "http://localhost:3000",
				MinDisplay: 5 * time.Second,
				MaxTimeout: 45 * time.Second,
			},
		}
	}

	require.NoError(t, valid().Validate())

	cfg := valid()
	cfg.Discovery.ServiceURL = "   "
	require.ErrorContains(t, cfg.Validate(), "discovery.service_url")

	cfg = valid()
	cfg.Discovery.MinDisplay = -time.Second
	require.ErrorContains(t, cfg.Validate(), "discovery.min_display")

	cfg = valid()
	cfg.Discovery.MaxTimeout = 0
	require.ErrorContains(t, cfg.Validate(), "discovery.max_timeout")

	cfg = valid()
	cfg.Server.Port = 70000
	require.ErrorContains(t, cfg.Validate(), "server.port")
}

func TestFromViperRejectsInvalidMergedState(t *testing.T) {
	resetViper(t)
	SetDefaults()
	viper.Set("discovery.service_url", "")

	_, err := FromViper()
	require.Error(t, err)
}
