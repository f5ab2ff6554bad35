// Package config provides centralized configuration management for the Unipile MCP server.
package config

import (
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/spf13/viper"
	"github.com/theapemachine/mcp-server-unipile/pkg/unipile"
)

// Config holds the complete configuration for the application
type Config struct {
	// Unipile API connection
	Unipile struct {
		BaseURL           string
		APIKey            string
		LinkedInAccountID string
		EmailAccountID    string
		Timeout           time.Duration
	}

	// Metrics endpoint, disabled when empty
	Metrics struct {
		Addr string
	}

	Log struct {
		Level string
	}

	timeoutErr error
}

var (
	once   sync.Once
	config *Config
)

// Load reads the configuration once from the environment and an optional .env file.
func Load() *Config {
	once.Do(func() {
		config = FromViper(newViper())
	})

	return config
}

func newViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("unipile_timeout", unipile.DefaultTimeout.String())
	v.SetDefault("log_level", "info")

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")

	// A missing .env is fine, the environment is the primary source.
	_ = v.ReadInConfig()

	v.AutomaticEnv()

	return v
}

// FromViper maps an already populated viper instance onto Config.
func FromViper(v *viper.Viper) *Config {
	cfg := &Config{}

	cfg.Unipile.BaseURL = strings.TrimRight(v.GetString("unipile_base_url"), "/")
	cfg.Unipile.APIKey = v.GetString("unipile_api_key")
	cfg.Unipile.LinkedInAccountID = v.GetString("unipile_linkedin_account_id")
	cfg.Unipile.EmailAccountID = v.GetString("unipile_email_account_id")
	cfg.Unipile.Timeout, cfg.timeoutErr = parseTimeout(v.GetString("unipile_timeout"))

	cfg.Metrics.Addr = v.GetString("unipile_metrics_addr")
	cfg.Log.Level = v.GetString("log_level")

	return cfg
}

// parseTimeout accepts a bare number of seconds or a Go duration string.
// Empty means the gateway default.
func parseTimeout(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return unipile.DefaultTimeout, nil
	}

	if seconds, err := strconv.Atoi(raw); err == nil {
		return time.Duration(seconds) * time.Second, nil
	}

	return time.ParseDuration(raw)
}

// Validate checks if all required configuration values are set
func (c *Config) Validate() error {
	var errors []string

	if c.Unipile.BaseURL == "" {
		errors = append(errors, "UNIPILE_BASE_URL must be set")
	}

	if c.Unipile.APIKey == "" {
		errors = append(errors, "UNIPILE_API_KEY must be set")
	}

	switch {
	case c.timeoutErr != nil:
		errors = append(errors, fmt.Sprintf("UNIPILE_TIMEOUT is invalid: %v", c.timeoutErr))
	case c.Unipile.Timeout < time.Second:
		errors = append(errors, "UNIPILE_TIMEOUT must be at least 1s")
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed: %v", errors)
	}

	return nil
}

// Gateway converts the settings into the gateway client configuration.
func (c *Config) Gateway() unipile.Config {
	return unipile.Config{
		BaseURL:           c.Unipile.BaseURL,
		APIKey:            c.Unipile.APIKey,
		LinkedInAccountID: c.Unipile.LinkedInAccountID,
		EmailAccountID:    c.Unipile.EmailAccountID,
		Timeout:           c.Unipile.Timeout,
	}
}
