// Package config provides centralized configuration management for VibeScout.
// Values flow through viper: defaults set at CLI init, an optional YAML file
// from the app-identity config directory, then environment overrides.
package config

import (
	"os"
	"path/filepath"
	"time"

	gfconfig "github.com/fulmenhq/gofulmen/config"
)

// Config represents the complete application configuration.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Store     StoreConfig     `mapstructure:"store"`
	Discovery DiscoveryConfig `mapstructure:"discovery"`
	Logging   LoggingConfig   `mapstructure:"logging"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Health    HealthConfig    `mapstructure:"health"`
	Debug     DebugConfig     `mapstructure:"debug"`
}

// ServerConfig contains HTTP server configuration.
type ServerConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	IdleTimeout     time.Duration `mapstructure:"idle_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// StoreConfig contains database configuration for libsql/Turso.
type StoreConfig struct {
	Driver    string `mapstructure:"driver"`
	Path      string `mapstructure:"path"`
	URL       string `mapstructure:"url"`
	AuthToken string `mapstructure:"auth_token"`
}

// DiscoveryConfig paces the discovery attempt and points at the generation
// service.
type DiscoveryConfig struct {
	// ServiceURL is the base URL of the event-generation service.
	ServiceURL string `mapstructure:"service_url"`

	// MinDisplay is the minimum perceived-loading duration measured from
	// attempt start. Hand-off never happens earlier.
	MinDisplay time.Duration `mapstructure:"min_display"`

	// MaxTimeout is the hard ceiling after which the attempt proceeds
	// without a response. Wins over MinDisplay.
	MaxTimeout time.Duration `mapstructure:"max_timeout"`

	// RequestTimeout bounds the single HTTP request itself.
	RequestTimeout time.Duration `mapstructure:"request_timeout"`

	// CacheTTL controls how long resolved attempts may be replayed from the
	// store. Zero disables the cache.
	CacheTTL time.Duration `mapstructure:"cache_ttl"`
}

// LoggingConfig contains logging configuration.
type LoggingConfig struct {
	// Level controls the minimum log level: trace, debug, info, warn, error.
	Level string `mapstructure:"level"`

	// Profile selects the logging complexity level: SIMPLE or STRUCTURED.
	Profile string `mapstructure:"profile"`
}

// MetricsConfig contains Prometheus metrics configuration.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

// HealthConfig contains health check configuration.
type HealthConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// DebugConfig contains debug and profiling configuration.
type DebugConfig struct {
	Enabled bool `mapstructure:"enabled"`
}

// DefaultStorePath resolves where the local libsql database lives when no
// explicit path or URL is configured.
func DefaultStorePath() string {
	if dir := gfconfig.GetAppConfigDir("vibescout"); dir != "" {
		return filepath.Join(dir, "vibescout.db")
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "vibescout.db"
	}
	return filepath.Join(home, ".vibescout", "vibescout.db")
}
