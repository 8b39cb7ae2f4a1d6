// Package config loads the API configuration. Sources are layered, later
// ones winning: built-in defaults, an optional TOML file, a .env file, then
// the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"investwelth/internal/database"

	"github.com/joho/godotenv"
	toml "github.com/pelletier/go-toml/v2"
)

// Config holds application configuration
type Config struct {
	Env  string `toml:"env"`
	Port string `toml:"port"`

	Database       database.Config `toml:"database"`
	MigrationsPath string          `toml:"migrations_path"`

	// JWT
	JWTSecret    string `toml:"jwt_secret"`
	JWTExpiresIn string `toml:"jwt_expires_in"`

	// Demo mode serves DemoUserID to unauthenticated user routes and
	// synthesizes portfolio series when no rows exist.
	DemoMode   bool `toml:"demo_mode"`
	DemoUserID uint `toml:"demo_user_id"`

	PipelineAPIKey string `toml:"pipeline_api_key"`

	RequestTimeout string  `toml:"request_timeout"`
	RateLimitRPS   float64 `toml:"rate_limit_rps"`
	RateLimitBurst int     `toml:"rate_limit_burst"`
}

// Default returns the configuration used when nothing is overridden.
func Default() *Config {
	return &Config{
		Env:            "development",
		Port:           "5001",
		Database:       database.DefaultConfig(),
		MigrationsPath: "file://migrations",
		JWTSecret:      "fallback-secret-key-for-dev-only",
		JWTExpiresIn:   "24h",
		DemoUserID:     3,
		RequestTimeout: "10s",
		RateLimitRPS:   50,
		RateLimitBurst: 100,
	}
}

// Load builds the configuration. CONFIG_FILE names the TOML file; when unset,
// config.toml is read if it exists.
func Load() (*Config, error) {
	cfg := Default()

	path, explicit := os.LookupEnv("CONFIG_FILE")
	if !explicit {
		path = "config.toml"
	}
	if err := cfg.mergeFile(path, explicit); err != nil {
		return nil, err
	}

	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) mergeFile(path string, required bool) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() error {
	setString(&c.Env, "ENV")
	setString(&c.Port, "PORT")

	setString(&c.Database.URL, "DATABASE_URL")
	setString(&c.Database.Host, "DB_HOST")
	setString(&c.Database.Port, "DB_PORT")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Database.DBName, "DB_NAME")
	setString(&c.Database.SSLMode, "DB_SSLMODE")
	setString(&c.MigrationsPath, "MIGRATIONS_PATH")

	setString(&c.JWTSecret, "JWT_SECRET")
	setString(&c.JWTExpiresIn, "JWT_EXPIRES_IN")
	setString(&c.PipelineAPIKey, "PIPELINE_API_KEY")
	setString(&c.RequestTimeout, "REQUEST_TIMEOUT")

	if v, ok := lookup("DEMO_MODE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid DEMO_MODE %q: %w", v, err)
		}
		c.DemoMode = b
	}
	if v, ok := lookup("DEMO_USER_ID"); ok {
		id, err := strconv.ParseUint(v, 10, 32)
		if err != nil {
			return fmt.Errorf("invalid DEMO_USER_ID %q: %w", v, err)
		}
		c.DemoUserID = uint(id)
	}
	if v, ok := lookup("RATE_LIMIT_RPS"); ok {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_RPS %q: %w", v, err)
		}
		c.RateLimitRPS = rps
	}
	if v, ok := lookup("RATE_LIMIT_BURST"); ok {
		burst, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid RATE_LIMIT_BURST %q: %w", v, err)
		}
		c.RateLimitBurst = burst
	}
	return nil
}

// Validate rejects settings the server cannot start with.
func (c *Config) Validate() error {
	if _, err := time.ParseDuration(c.JWTExpiresIn); err != nil {
		return fmt.Errorf("invalid jwt expiry %q: %w", c.JWTExpiresIn, err)
	}
	if d, err := time.ParseDuration(c.RequestTimeout); err != nil || d <= 0 {
		return fmt.Errorf("invalid request timeout %q", c.RequestTimeout)
	}
	if c.IsProduction() && c.JWTSecret == Default().JWTSecret {
		return errors.New("JWT_SECRET must be set in production")
	}
	if c.DemoMode && c.DemoUserID == 0 {
		return errors.New("DEMO_USER_ID must be set when DEMO_MODE is enabled")
	}
	return nil
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	env := strings.ToLower(strings.TrimSpace(c.Env))
	return env == "production" || env == "prod"
}

// ExposeErrorDetails reports whether wrapped error text may be sent to clients.
func (c *Config) ExposeErrorDetails() bool {
	return !c.IsProduction()
}

// JWTExpiration is the parsed token lifetime. Validate guarantees it parses.
func (c *Config) JWTExpiration() time.Duration {
	d, err := time.ParseDuration(c.JWTExpiresIn)
	if err != nil {
		return 24 * time.Hour
	}
	return d
}

// RequestTimeoutDuration is the per-request deadline.
func (c *Config) RequestTimeoutDuration() time.Duration {
	d, err := time.ParseDuration(c.RequestTimeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

func setString(dst *string, key string) {
	if v, ok := lookup(key); ok {
		*dst = v
	}
}
