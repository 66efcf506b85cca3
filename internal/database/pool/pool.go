// Package pool tunes the connection pool behind the gorm handle.
package pool

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/nwssu/gymadmin/internal/config"
)

// Config holds the knobs applied to the underlying sql.DB. The defaults
// are sized for the admin workload: a handful of staff browsing members,
// not a public traffic front.
type Config struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// LoadFromEnv reads the pool knobs from DB_POOL_* variables, falling back
// to the defaults.
func LoadFromEnv() Config {
	return Config{
		MaxOpenConns:    config.GetEnvInt("DB_POOL_MAX_OPEN_CONNS", 25),
		MaxIdleConns:    config.GetEnvInt("DB_POOL_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: config.GetEnvDuration("DB_POOL_CONN_MAX_LIFETIME", 5*time.Minute),
		ConnMaxIdleTime: config.GetEnvDuration("DB_POOL_CONN_MAX_IDLE_TIME", 10*time.Minute),
	}
}

// Validate checks the pool configuration for impossible combinations.
func (c Config) Validate() error {
	if c.MaxOpenConns <= 0 {
		return fmt.Errorf("MaxOpenConns must be greater than 0")
	}
	if c.MaxIdleConns < 0 {
		return fmt.Errorf("MaxIdleConns must be non-negative")
	}
	if c.MaxIdleConns > c.MaxOpenConns {
		return fmt.Errorf(
			"MaxIdleConns (%d) cannot be greater than MaxOpenConns (%d)",
			c.MaxIdleConns, c.MaxOpenConns)
	}
	return nil
}

// Apply configures the connection pool on the gorm handle.
func Apply(db *gorm.DB, cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	return nil
}
