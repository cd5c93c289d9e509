package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "session_key: test-key\n")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:3000", cfg.Listen)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 172800, cfg.SessionMaxAge)
	assert.Equal(t, SessionStoreMemory, cfg.SessionStore)
	assert.Equal(t, "./data/gigfinder.db", cfg.Database.Path)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	require.NotNil(t, cfg.RateLimit)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, "20-M", cfg.RateLimit.Rate)
	assert.Equal(t, RateLimitStoreMemory, cfg.RateLimit.Store)
	assert.Empty(t, cfg.TrustedProxies)
}

func TestLoad_FileValues(t *testing.T) {
	path := writeConfig(t, `
listen: " 127.0.0.1:8080 "
log_level: DEBUG
session_key: abc
session_store: Cookie
trusted_proxies:
  - " 10.0.0.0/8 "
  - ""
  - 192.168.1.5
database:
  path: /tmp/gigs.db
auth:
  bcrypt_cost: 12
rate_limit:
  enabled: true
  rate: 5-S
  store: redis
  redis_url: redis://localhost:6379/
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Listen)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, SessionStoreCookie, cfg.SessionStore)
	assert.Equal(t, "/tmp/gigs.db", cfg.Database.Path)
	assert.Equal(t, 12, cfg.Auth.BcryptCost)
	assert.Equal(t, RateLimitStoreRedis, cfg.RateLimit.Store)
	assert.Equal(t, "redis://localhost:6379", cfg.RateLimit.RedisURL)
	assert.Equal(t, []string{"10.0.0.0/8", "192.168.1.5"}, cfg.TrustedProxies)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, "session_key: from-file\n")
	t.Setenv("GIGFINDER_SESSION_KEY", "from-env")
	t.Setenv("GIGFINDER_DATABASE_PATH", "/var/lib/gigfinder.db")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.SessionKey)
	assert.Equal(t, "/var/lib/gigfinder.db", cfg.Database.Path)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Listen:        ":3000",
			SessionKey:    "key",
			SessionMaxAge: 3600,
			SessionStore:  SessionStoreMemory,
			Database:      &DatabaseConfig{Path: "db.sqlite"},
			Auth:          &AuthConfig{BcryptCost: 10},
			RateLimit:     &RateLimitConfig{Enabled: true, Rate: "10-M", Store: RateLimitStoreMemory},
		}
	}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing session key", mutate: func(c *Config) { c.SessionKey = "" }, wantErr: "session key is required"},
		{name: "missing listen", mutate: func(c *Config) { c.Listen = "" }, wantErr: "listen address is required"},
		{name: "bad session store", mutate: func(c *Config) { c.SessionStore = "disk" }, wantErr: "unknown session store"},
		{name: "missing database", mutate: func(c *Config) { c.Database = nil }, wantErr: "database path is required"},
		{name: "bcrypt cost too low", mutate: func(c *Config) { c.Auth.BcryptCost = 2 }, wantErr: "bcrypt cost"},
		{name: "nil auth gets defaults", mutate: func(c *Config) { c.Auth = nil }},
		{name: "redis without url", mutate: func(c *Config) { c.RateLimit.Store = RateLimitStoreRedis }, wantErr: "Redis URL is required"},
		{name: "disabled limiter skips checks", mutate: func(c *Config) { c.RateLimit = &RateLimitConfig{Enabled: false} }},
		{name: "missing rate", mutate: func(c *Config) { c.RateLimit.Rate = "" }, wantErr: "rate limit rate is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)
			err := validateConfig(c)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
