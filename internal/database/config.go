package database

import (
	"fmt"
	"net/url"
)

// Config holds database connection settings. URL, when set, takes precedence
// over the individual fields; hosted Postgres providers hand out a URL.
type Config struct {
	URL          string `toml:"url"`
	Host         string `toml:"host"`
	Port         string `toml:"port"`
	User         string `toml:"user"`
	Password     string `toml:"password"`
	DBName       string `toml:"name"`
	SSLMode      string `toml:"sslmode"`
	MaxOpenConns int    `toml:"max_open_conns"`
	MaxIdleConns int    `toml:"max_idle_conns"`
}

// DefaultConfig returns settings for a local development database.
func DefaultConfig() Config {
	return Config{
		Host:         "localhost",
		Port:         "5432",
		User:         "investwelth",
		Password:     "investwelth",
		DBName:       "investwelth",
		SSLMode:      "disable",
		MaxOpenConns: 25,
		MaxIdleConns: 10,
	}
}

// DSN returns the connection string handed to the GORM postgres driver.
func (c Config) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode)
}

// MigrateURL returns the postgres:// URL golang-migrate expects.
func (c Config) MigrateURL() string {
	if c.URL != "" {
		return c.URL
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     c.Host + ":" + c.Port,
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {c.SSLMode}}.Encode(),
	}
	return u.String()
}
