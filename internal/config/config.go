// Package config provides application configuration loaded from environment variables.
package config

import (
	"fmt"
	"time"
)

// Config holds application configuration.
type Config struct {
	// Server holds HTTP server configuration.
	Server ServerConfig
	// Logger holds logger configuration.
	Logger LoggerConfig
	// GinMode is the Gin framework mode (debug, release, test).
	GinMode string
	// Timezone is the IANA timezone the gym operates in. Revenue bucketing,
	// chart month windows and membership expiry all resolve "today" in this zone.
	Timezone string
}

// LoadFromEnv loads all configuration from environment variables.
func LoadFromEnv() Config {
	return Config{
		Server:   LoadServerConfigFromEnv(),
		Logger:   LoadLoggerConfigFromEnv(),
		GinMode:  GetEnv("GIN_MODE", "release"),
		Timezone: GetEnv("APP_TIMEZONE", "Asia/Manila"),
	}
}

// Validate validates all configuration.
func (c Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}

	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger config validation failed: %w", err)
	}

	validGinModes := map[string]bool{
		"debug":   true,
		"release": true,
		"test":    true,
	}
	if !validGinModes[c.GinMode] {
		return fmt.Errorf("invalid GIN_MODE: %s (must be: debug, release, test)", c.GinMode)
	}

	if _, err := time.LoadLocation(c.Timezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE: %s: %w", c.Timezone, err)
	}

	return nil
}

// Location resolves the configured timezone.
// Falls back to UTC if the zone database lookup fails.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return time.UTC
	}
	return loc
}
