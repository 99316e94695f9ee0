// Package config loads the application configuration from layered sources.
//
// Values are read from config/default.yaml, then an optional per-environment
// overlay (config/<APP_ENV>.yaml), then APP_-prefixed environment variables.
// Later sources win. The active environment comes from APP_ENV and defaults
// to "local". A .env file in the working directory, when present, seeds
// environment variables before any of this happens.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultEnvironment is the profile used when APP_ENV is not set.
const DefaultEnvironment = "local"

const defaultMaxUploadBytes = 10 << 20 // 10 MB, matches the multipart form limit

// ErrInvalidConfig is returned when configuration cannot be loaded or fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds the runtime settings shared across handlers.
type Config struct {
	// Domain scopes the session cookie.
	Domain string `yaml:"domain" env:"DOMAIN"`

	// Address and Port form the listen address of the HTTP server.
	Address string `yaml:"address" env:"ADDRESS"`
	Port    int    `yaml:"port" env:"PORT"`

	// AuthServiceURL receives browsers that arrive without a valid session.
	AuthServiceURL string `yaml:"auth_service_url" env:"AUTH_SERVICE_URL"`

	// Secret signs and verifies session tokens.
	Secret string `yaml:"secret" env:"SECRET"`

	// UploadPath is the filesystem root below which hub files live.
	UploadPath string `yaml:"upload_path" env:"UPLOAD_PATH"`

	// MaxUploadBytes caps the size of a single upload request.
	MaxUploadBytes int64 `yaml:"max_upload_bytes" env:"MAX_UPLOAD_BYTES"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"log_level" env:"LOG_LEVEL"`

	// SentryDSN enables error reporting when non-empty.
	SentryDSN string `yaml:"sentry_dsn" env:"SENTRY_DSN"`

	// Environment is the active profile, taken from APP_ENV.
	Environment string `yaml:"-" env:"-"`
}

// Load reads the configuration from dir, overlaying environment variables.
func Load(dir string) (Config, error) {
	// Variables already set in the environment win over .env entries.
	_ = godotenv.Load()

	environment := os.Getenv("APP_ENV")
	if environment == "" {
		environment = DefaultEnvironment
	}

	var cfg Config
	if err := loadFile(filepath.Join(dir, "default.yaml"), &cfg, true); err != nil {
		return Config{}, err
	}
	if err := loadFile(filepath.Join(dir, environment+".yaml"), &cfg, false); err != nil {
		return Config{}, err
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: "APP_"}); err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	cfg.Environment = environment
	cfg.applyDefaults()
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// loadFile merges one YAML file into cfg. Missing optional files are skipped.
func loadFile(path string, cfg *Config, required bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfig, path, err)
	}
	return nil
}

// ListenAddr returns the address:port the HTTP server binds to.
func (c Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Address, c.Port)
}

func (c *Config) applyDefaults() {
	if c.Domain == "" {
		c.Domain = "localhost"
	}
	if c.Address == "" {
		c.Address = "127.0.0.1"
	}
	if c.Port == 0 {
		c.Port = 8080
	}
	if c.UploadPath == "" {
		c.UploadPath = "./upload"
	}
	if c.MaxUploadBytes == 0 {
		c.MaxUploadBytes = defaultMaxUploadBytes
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
}

func (c Config) validate() error {
	if c.Secret == "" {
		return fmt.Errorf("%w: secret is required", ErrInvalidConfig)
	}
	if c.AuthServiceURL == "" {
		return fmt.Errorf("%w: auth_service_url is required", ErrInvalidConfig)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: port %d out of range", ErrInvalidConfig, c.Port)
	}
	if c.MaxUploadBytes < 0 {
		return fmt.Errorf("%w: max_upload_bytes must be positive", ErrInvalidConfig)
	}
	return nil
}
