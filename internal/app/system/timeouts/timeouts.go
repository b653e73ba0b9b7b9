// Package timeouts provides centralized timeout values for handler operations.
//
// These timeouts are used with context.WithTimeout for database operations
// in HTTP handlers. Using centralized values keeps request budgets consistent
// across features.
//
// Guidelines for choosing a timeout:
//   - Ping: diagnostics and connectivity checks
//   - Short: single-document reads and writes
//   - Medium: list queries
//   - Long: analytics, which issues several round trips
package timeouts

import (
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
)

// Default timeout values (used if Configure is not called).
const (
	DefaultPing   = 2 * time.Second
	DefaultShort  = 5 * time.Second
	DefaultMedium = 10 * time.Second
	DefaultLong   = 30 * time.Second
)

// mu protects all timeout values from concurrent access.
var mu sync.RWMutex

var (
	ping   = DefaultPing
	short  = DefaultShort
	medium = DefaultMedium
	long   = DefaultLong
)

// Ping returns the timeout for connectivity checks.
func Ping() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return ping
}

// Short returns the timeout for single-document operations.
func Short() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return short
}

// Medium returns the timeout for list queries.
func Medium() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return medium
}

// Long returns the timeout for multi-query operations such as analytics.
func Long() time.Duration {
	mu.RLock()
	defer mu.RUnlock()
	return long
}

// Config holds timeout configuration values.
// Zero values are ignored (defaults are kept).
type Config struct {
	Ping   time.Duration `env:"TIMEOUT_PING"`
	Short  time.Duration `env:"TIMEOUT_SHORT"`
	Medium time.Duration `env:"TIMEOUT_MEDIUM"`
	Long   time.Duration `env:"TIMEOUT_LONG"`
}

// Configure sets custom timeout values. Zero or negative values are ignored.
func Configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()
	if cfg.Ping > 0 {
		ping = cfg.Ping
	}
	if cfg.Short > 0 {
		short = cfg.Short
	}
	if cfg.Medium > 0 {
		medium = cfg.Medium
	}
	if cfg.Long > 0 {
		long = cfg.Long
	}
}

// Reset restores all timeouts to their default values.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ping = DefaultPing
	short = DefaultShort
	medium = DefaultMedium
	long = DefaultLong
}

// ConfigureFromEnv reads <prefix>TIMEOUT_PING, <prefix>TIMEOUT_SHORT,
// <prefix>TIMEOUT_MEDIUM and <prefix>TIMEOUT_LONG (Go duration strings such
// as "500ms" or "2m"). Unset variables keep their current value. A malformed
// value is returned as an error and nothing is changed.
func ConfigureFromEnv(prefix string) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: prefix}); err != nil {
		return Config{}, err
	}
	Configure(cfg)
	return Current(), nil
}

// Current returns the current timeout configuration.
func Current() Config {
	mu.RLock()
	defer mu.RUnlock()
	return Config{
		Ping:   ping,
		Short:  short,
		Medium: medium,
		Long:   long,
	}
}
