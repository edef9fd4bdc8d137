package config

import (
	"os"
)

const (
	defaultAppName     = "Demo App"
	defaultPort        = "3000"
	defaultEnvironment = "development"
)

// Config is the snapshot of application settings taken once at startup.
// It is passed by value and never mutated after Load returns.
type Config struct {
	AppName      string `toml:"app_name" json:"app_name"`
	Port         string `toml:"port" json:"port"`
	Environment  string `toml:"environment" json:"environment"`
	AWSAccessKey string `toml:"aws_access_key" json:"aws_access_key,omitempty"`
	AWSSecretKey string `toml:"aws_secret_key" json:"aws_secret_key,omitempty"`
	DBConnection string `toml:"db_connection" json:"db_connection,omitempty"`
}

// Default returns the snapshot used when nothing is set in the environment.
func Default() Config {
	return Config{
		AppName:     defaultAppName,
		Port:        defaultPort,
		Environment: defaultEnvironment,
	}
}

// Load builds a Config from getenv. Empty values count as unset.
func Load(getenv func(string) string) Config {
	return overlayEnv(Default(), getenv)
}

// FromEnv loads the Config from the process environment.
func FromEnv() Config {
	return Load(os.Getenv)
}

func overlayEnv(cfg Config, getenv func(string) string) Config {
	if v := getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := getenv("NODE_ENV"); v != "" {
		cfg.Environment = v
	}
	if v := getenv("AWS_ACCESS_KEY"); v != "" {
		cfg.AWSAccessKey = v
	}
	if v := getenv("AWS_SECRET_KEY"); v != "" {
		cfg.AWSSecretKey = v
	}
	if v := getenv("DB_CONNECTION"); v != "" {
		cfg.DBConnection = v
	}
	return cfg
}

// Addr is the listen address for the configured port.
func (c Config) Addr() string {
	return ":" + c.Port
}

// URL is the address logged once the listener is up.
func (c Config) URL() string {
	return "http://localhost:" + c.Port
}

// Redacted returns a copy safe to print, with credentials masked.
func (c Config) Redacted() Config {
	c.AWSAccessKey = mask(c.AWSAccessKey)
	c.AWSSecretKey = mask(c.AWSSecretKey)
	c.DBConnection = mask(c.DBConnection)
	return c
}

func mask(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 8 {
		return "****"
	}
	return s[:4] + "****" + s[len(s)-4:]
}
