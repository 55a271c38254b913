// Package config loads the toolforge server configuration.
package config

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// Config holds the server configuration.
type Config struct {
	// Listen is the HTTP listen address (e.g. ":9100"). Empty means stdio
	// mode.
	Listen string `toml:"listen,omitempty"`

	// LogLevel is one of: debug, info, warn, error.
	// Default: "info"
	LogLevel string `toml:"log_level,omitempty"`

	// LogFormat is one of: logfmt, json.
	// Default: "logfmt"
	LogFormat string `toml:"log_format,omitempty"`

	// Metrics controls whether the /metrics endpoint is served and tool
	// handlers are instrumented (HTTP mode only).
	// Default: true
	Metrics bool `toml:"metrics,omitempty"`
}

// DefaultConfig returns the configuration defaults.
func DefaultConfig() Config {
	return Config{
		LogLevel:  "info",
		LogFormat: "logfmt",
		Metrics:   true,
	}
}

// Load reads a TOML config file over the defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	switch c.LogFormat {
	case "logfmt", "json":
	default:
		return fmt.Errorf("invalid log_format %q", c.LogFormat)
	}
	return nil
}
