// Package config provides configuration loading and validation for the
// hiredash client.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// Defaults applied when the corresponding environment variable is unset.
const (
	DefaultTimeout  = 30 * time.Second
	DefaultPageSize = 10
)

// Config holds the client configuration, sourced from environment
// variables.
type Config struct {
	// BaseURL is the backend origin all requests go to. Required.
	BaseURL string
	// Timeout bounds each HTTP request.
	Timeout time.Duration
	// StateDir is where the session cache and remember-me files live.
	StateDir string
	// PageSize is the default matches page size.
	PageSize int
}

// Load reads configuration from the environment. HIREDASH_API_URL is
// required; HIREDASH_TIMEOUT_SECONDS, HIREDASH_STATE_DIR and
// HIREDASH_PAGE_SIZE are optional.
func Load() (*Config, error) {
	baseURL := os.Getenv("HIREDASH_API_URL")
	if baseURL == "" {
		return nil, fmt.Errorf("HIREDASH_API_URL is required but not set")
	}

	cfg := &Config{
		BaseURL:  baseURL,
		Timeout:  DefaultTimeout,
		StateDir: os.Getenv("HIREDASH_STATE_DIR"),
		PageSize: DefaultPageSize,
	}

	if raw := os.Getenv("HIREDASH_TIMEOUT_SECONDS"); raw != "" {
		seconds, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid HIREDASH_TIMEOUT_SECONDS: %v", err)
		}
		cfg.Timeout = time.Duration(seconds) * time.Second
	}

	if raw := os.Getenv("HIREDASH_PAGE_SIZE"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid HIREDASH_PAGE_SIZE: %v", err)
		}
		cfg.PageSize = size
	}

	if cfg.StateDir == "" {
		configDir, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve user config dir: %w", err)
		}
		cfg.StateDir = filepath.Join(configDir, "hiredash")
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// normalize validates the configuration.
func (c *Config) normalize() error {
	if c.BaseURL == "" {
		return fmt.Errorf("base URL cannot be empty")
	}
	if c.Timeout < time.Second {
		return fmt.Errorf("timeout must be at least 1 second, got: %s", c.Timeout)
	}
	if c.PageSize < 1 {
		return fmt.Errorf("page size must be at least 1, got: %d", c.PageSize)
	}
	return nil
}
