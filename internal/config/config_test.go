package config_test

import (
	"testing"
	"time"

	"github.com/fireview/backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("FIREFLY_TIMEOUT", "")
	t.Setenv("EXCLUDED_ACCOUNT_TYPES", "")

	cfg := config.Load()

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.FireflyTimeout)
	assert.Equal(t, []string{"initial-balance", "reconciliation"}, cfg.ExcludedAccountTypes)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PORT", "9999")
	t.Setenv("FIREFLY_III_BASE_URL", "https://firefly.example.com/")
	t.Setenv("FIREFLY_III_API_TOKEN", "token")
	t.Setenv("FIREFLY_TIMEOUT", "5s")
	t.Setenv("EXCLUDED_ACCOUNT_TYPES", "Initial-Balance, liability*")

	cfg := config.Load()

	assert.Equal(t, "9999", cfg.Port)
	assert.Equal(t, "https://firefly.example.com", cfg.FireflyBaseURL, "trailing slash is stripped")
	assert.Equal(t, 5*time.Second, cfg.FireflyTimeout)
	assert.Equal(t, []string{"initial-balance", "liability*"}, cfg.ExcludedAccountTypes)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*config.Config)
		wantErr string
	}{
		{"valid", func(c *config.Config) {}, ""},
		{"missing base URL", func(c *config.Config) { c.FireflyBaseURL = "" }, "FIREFLY_III_BASE_URL is not set"},
		{"missing token", func(c *config.Config) { c.FireflyToken = "" }, "FIREFLY_III_API_TOKEN is not set"},
		{"bad scheme", func(c *config.Config) { c.FireflyBaseURL = "ftp://example.com" }, "scheme must be http or https"},
		{"bad port", func(c *config.Config) { c.Port = "http" }, "must be a number"},
		{"port out of range", func(c *config.Config) { c.Port = "70000" }, "must be between 1 and 65535"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{
				Port:           "8081",
				FireflyBaseURL: "https://firefly.example.com",
				FireflyToken:   "token",
			}
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestAccountTypeExcluded(t *testing.T) {
	cfg := &config.Config{ExcludedAccountTypes: []string{"initial-balance", "reconciliation", "liability*"}}

	assert.True(t, cfg.AccountTypeExcluded("initial-balance"))
	assert.True(t, cfg.AccountTypeExcluded("Reconciliation"))
	assert.True(t, cfg.AccountTypeExcluded("liabilities"))
	assert.False(t, cfg.AccountTypeExcluded("asset"))
	assert.False(t, cfg.AccountTypeExcluded(""))
}
