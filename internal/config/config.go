package config

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

type SessionStoreType string

const (
	SessionStoreMemory SessionStoreType = "memory"
	SessionStoreCookie SessionStoreType = "cookie"
)

type RateLimitStoreType string

const (
	RateLimitStoreMemory RateLimitStoreType = "memory"
	RateLimitStoreRedis  RateLimitStoreType = "redis"
)

const (
	minBcryptCost = 4
	maxBcryptCost = 31
)

// Config holds the configuration for the GigFinder server.
type Config struct {
	// Listen is the address the GigFinder server will listen on.
	Listen string `yaml:"listen" mapstructure:"listen"`
	// LogLevel is the default log level, the --log-level flag takes precedence.
	LogLevel string `yaml:"log_level" mapstructure:"log_level"`
	// SessionKey is the key used to sign session cookies.
	SessionKey string `yaml:"session_key" mapstructure:"session_key"`
	// SessionMaxAge is the maximum age of a session in seconds.
	SessionMaxAge int `yaml:"session_max_age" mapstructure:"session_max_age"`
	// SessionStore selects where session data lives. "memory" keeps it server side and only
	// sends an opaque id to the browser, "cookie" stores the signed values in the cookie itself.
	SessionStore SessionStoreType `yaml:"session_store" mapstructure:"session_store"`
	// SecureCookies sets the Secure flag on the session cookie.
	SecureCookies bool `yaml:"secure_cookies" mapstructure:"secure_cookies"`
	// TrustedProxies lists the IPs or CIDRs of reverse proxies allowed to set X-Forwarded-For.
	// When empty, the client IP is always the remote address of the connection.
	TrustedProxies []string `yaml:"trusted_proxies" mapstructure:"trusted_proxies"`
	// Database holds the database configuration.
	Database *DatabaseConfig `yaml:"database" mapstructure:"database"`
	// Auth holds the password authentication configuration.
	Auth *AuthConfig `yaml:"auth" mapstructure:"auth"`
	// RateLimit holds the rate limit configuration for the credential routes.
	RateLimit *RateLimitConfig `yaml:"rate_limit" mapstructure:"rate_limit"`
}

// DatabaseConfig holds the database configuration.
type DatabaseConfig struct {
	// Path is the path to the database file.
	Path string `yaml:"path" mapstructure:"path"`
}

// AuthConfig holds the password authentication configuration.
type AuthConfig struct {
	// BcryptCost is the cost factor used when hashing passwords.
	BcryptCost int `yaml:"bcrypt_cost" mapstructure:"bcrypt_cost"`
}

// RateLimitConfig holds the rate limit configuration for login and signup.
type RateLimitConfig struct {
	// Enabled indicates whether POST /login and POST /signup are rate limited.
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`
	// Rate is the limit in limiter format, e.g. "20-M" for 20 requests per minute.
	Rate string `yaml:"rate" mapstructure:"rate"`
	// Store is the backend for the limiter counters ("memory" or "redis").
	Store RateLimitStoreType `yaml:"store" mapstructure:"store"`
	// RedisURL is the URL of the redis server if the redis store is used.
	RedisURL string `yaml:"redis_url" mapstructure:"redis_url"`
}

// Load reads the configuration from the specified path and returns a Config struct.
// If path is empty, it will use default search paths for config files.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigType("yaml")
	v.SetEnvPrefix("GIGFINDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var configFileFound bool
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.gigfinder")
		v.AddConfigPath("/etc/gigfinder")
	}

	if err := v.ReadInConfig(); err != nil {
		// If no config file is found, use defaults
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		configFileFound = true
	}

	if configFileFound {
		log.Debug("Using config file", "file", v.ConfigFileUsed())
		log.Debug("All values can be overridden with GIGFINDER_ prefixed environment variables")
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	sanitizeConfig(&c)

	if err := validateConfig(&c); err != nil {
		return nil, err
	}

	return &c, nil
}

// setDefaults sets default values for the configuration.
func setDefaults(v *viper.Viper) {
	v.SetDefault("listen", "0.0.0.0:3000")
	v.SetDefault("log_level", "info")
	v.SetDefault("session_key", "")
	v.SetDefault("session_max_age", 172800) // 48 hours
	v.SetDefault("session_store", SessionStoreMemory)
	v.SetDefault("secure_cookies", false)
	v.SetDefault("trusted_proxies", []string{})

	// Database defaults
	v.SetDefault("database.path", "./data/gigfinder.db")

	// Auth defaults
	v.SetDefault("auth.bcrypt_cost", 10)

	// Rate limit defaults
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.rate", "20-M")
	v.SetDefault("rate_limit.store", RateLimitStoreMemory)
	v.SetDefault("rate_limit.redis_url", "")
}

// validateConfig validates the configuration.
func validateConfig(c *Config) error {
	if c == nil {
		return fmt.Errorf("missing gigfinder config")
	}

	if c.Listen == "" {
		return fmt.Errorf("listen address is required")
	}

	if c.SessionKey == "" {
		return fmt.Errorf("session key is required")
	}

	if c.SessionMaxAge <= 0 {
		return fmt.Errorf("session max age must be greater than 0")
	}

	switch c.SessionStore {
	case SessionStoreMemory, SessionStoreCookie:
	default:
		return fmt.Errorf("unknown session store %q (valid: memory, cookie)", c.SessionStore)
	}

	if c.Database == nil || c.Database.Path == "" {
		return fmt.Errorf("database path is required")
	}

	if c.Auth == nil {
		c.Auth = &AuthConfig{BcryptCost: 10}
	}
	if c.Auth.BcryptCost < minBcryptCost || c.Auth.BcryptCost > maxBcryptCost {
		return fmt.Errorf("bcrypt cost must be between %d and %d", minBcryptCost, maxBcryptCost)
	}

	if c.RateLimit != nil && c.RateLimit.Enabled {
		if c.RateLimit.Rate == "" {
			return fmt.Errorf("rate limit rate is required when rate limiting is enabled")
		}
		switch c.RateLimit.Store {
		case RateLimitStoreMemory:
		case RateLimitStoreRedis:
			if c.RateLimit.RedisURL == "" {
				return fmt.Errorf("Redis URL is required when the redis rate limit store is used") //nolint:staticcheck
			}
		default:
			return fmt.Errorf("unknown rate limit store %q (valid: memory, redis)", c.RateLimit.Store)
		}
	}

	return nil
}

// sanitizeConfig sanitizes the configuration values.
func sanitizeConfig(c *Config) {
	if c == nil {
		return
	}

	c.Listen = strings.TrimSpace(c.Listen)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.SessionStore = SessionStoreType(strings.ToLower(strings.TrimSpace(string(c.SessionStore))))
	c.TrustedProxies = lo.Compact(lo.Map(c.TrustedProxies, func(p string, _ int) string {
		return strings.TrimSpace(p)
	}))

	if c.Database != nil {
		c.Database.Path = strings.TrimSpace(c.Database.Path)
	}

	if c.RateLimit != nil {
		c.RateLimit.Store = RateLimitStoreType(strings.ToLower(strings.TrimSpace(string(c.RateLimit.Store))))
		c.RateLimit.RedisURL = strings.TrimSuffix(strings.TrimSpace(c.RateLimit.RedisURL), "/")
	}
}
