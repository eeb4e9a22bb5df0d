package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// SetDefaults registers every configuration default with viper. Called once
// from CLI initialization, before any config file or environment override is
// applied.
func SetDefaults() {
	// Server defaults
	viper.SetDefault("server.host", "localhost")
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "60s")
	viper.SetDefault("server.idle_timeout", "120s")
	viper.SetDefault("server.shutdown_timeout", "10s")

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.profile", "structured")

	// Store defaults
	viper.SetDefault("store.driver", "libsql")
	viper.SetDefault("store.path", DefaultStorePath())
	viper.SetDefault("store.url", "")
	viper.SetDefault("store.auth_token", "")

	// Discovery pacing: the 5s minimum and 45s ceiling are product
	// invariants, not tuning knobs; they are configurable for tests.
	viper.SetDefault("discovery.service_url", "http://localhost:3000")
	viper.SetDefault("discovery.min_display", "5s")
	viper.SetDefault("discovery.max_timeout", "45s")
	viper.SetDefault("discovery.request_timeout", "40s")
	viper.SetDefault("discovery.cache_ttl", "10m")

	// Metrics defaults
	viper.SetDefault("metrics.enabled", true)
	viper.SetDefault("metrics.port", 9090)

	// Health check defaults
	viper.SetDefault("health.enabled", true)

	// Debug defaults
	viper.SetDefault("debug.enabled", false)
}

// FromViper materializes the typed configuration from viper's merged state.
func FromViper() (*Config, error) {
	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decode configuration: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects configurations the orchestrator cannot run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Discovery.ServiceURL) == "" {
		return fmt.Errorf("discovery.service_url is required")
	}
	if c.Discovery.MinDisplay < 0 {
		return fmt.Errorf("discovery.min_display must not be negative")
	}
	if c.Discovery.MaxTimeout <= 0 {
		return fmt.Errorf("discovery.max_timeout must be positive")
	}
	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port out of range: %d", c.Server.Port)
	}
	return nil
}
