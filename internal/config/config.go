// Package config holds the environment configuration for the dashboard.
//
// The configuration is constructed once at process start and passed to the
// components that need it. There is no package level state.
package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ryanuber/go-glob"
)

var (
	ErrBaseURLMissing = errors.New("FIREFLY_III_BASE_URL is not set")
	ErrTokenMissing   = errors.New("FIREFLY_III_API_TOKEN is not set")
)

// DefaultExcludedAccountTypes are the account types that never show up in
// the account filter. Firefly III keeps system accounts for opening
// balances and reconciliations, both are noise in a reporting UI.
const DefaultExcludedAccountTypes = "initial-balance,reconciliation"

type Config struct {
	// HTTP server
	Port string

	// Firefly III API
	FireflyBaseURL string
	FireflyToken   string
	FireflyTimeout time.Duration

	// Account types hidden from the account filter. Each entry is a
	// glob pattern matched against the lower-cased account type.
	ExcludedAccountTypes []string
}

// Load reads the configuration from the environment.
func Load() *Config {
	return &Config{
		Port:                 getEnv("PORT", "8081"),
		FireflyBaseURL:       strings.TrimRight(getEnv("FIREFLY_III_BASE_URL", ""), "/"),
		FireflyToken:         getEnv("FIREFLY_III_API_TOKEN", ""),
		FireflyTimeout:       getEnvDuration("FIREFLY_TIMEOUT", 30*time.Second),
		ExcludedAccountTypes: splitList(getEnv("EXCLUDED_ACCOUNT_TYPES", DefaultExcludedAccountTypes)),
	}
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	if c.FireflyBaseURL == "" {
		return ErrBaseURLMissing
	}

	if c.FireflyToken == "" {
		return ErrTokenMissing
	}

	parsed, err := url.Parse(c.FireflyBaseURL)
	if err != nil {
		return fmt.Errorf("invalid FIREFLY_III_BASE_URL %q: %w", c.FireflyBaseURL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return fmt.Errorf("invalid FIREFLY_III_BASE_URL %q: scheme must be http or https", c.FireflyBaseURL)
	}

	if port, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("invalid port %q: must be a number", c.Port)
	} else if port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %d: must be between 1 and 65535", port)
	}

	return nil
}

// AccountTypeExcluded reports whether an account type is hidden from the
// account filter.
func (c *Config) AccountTypeExcluded(accountType string) bool {
	accountType = strings.ToLower(strings.TrimSpace(accountType))
	for _, pattern := range c.ExcludedAccountTypes {
		if glob.Glob(pattern, accountType) {
			return true
		}
	}
	return false
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok || value == "" {
		return fallback
	}

	d, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return d
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
