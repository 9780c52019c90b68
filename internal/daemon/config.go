// Package daemon manages the bhava runtime lifecycle and configuration.
package daemon

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all bhava configuration.
type Config struct {
	Storage  StorageConfig  `toml:"storage"`
	Sync     SyncConfig     `toml:"sync"`
	API      APIConfig      `toml:"api"`
	Logging  LoggingConfig  `toml:"logging"`
	Calendar CalendarConfig `toml:"calendar"`
}

// StorageConfig controls where local state lives.
type StorageConfig struct {
	Dir string `toml:"dir" validate:"required"`
}

// SyncConfig controls the best-effort remote backup.
type SyncConfig struct {
	Enabled      bool   `toml:"enabled"`
	URL          string `toml:"url" validate:"omitempty,url"`
	APIKey       string `toml:"api_key"`
	Timeout      string `toml:"timeout"`
	FlushTimeout string `toml:"flush_timeout"`
}

// APIConfig controls the local HTTP server.
type APIConfig struct {
	Host    string `toml:"host" validate:"required"`
	Port    int    `toml:"port" validate:"min=1,max=65535"`
	Metrics bool   `toml:"metrics"`
}

// LoggingConfig controls logging behavior.
type LoggingConfig struct {
	Level  string `toml:"level" validate:"omitempty,oneof=trace debug info warn error"`
	Pretty bool   `toml:"pretty"`
}

// CalendarConfig decides where one day ends and the next begins.
type CalendarConfig struct {
	Timezone string `toml:"timezone"`
}

// envOverrides are the BHAVA_* variables applied on top of config.toml.
// Unset variables leave the file value alone.
type envOverrides struct {
	SyncEnabled *bool   `envconfig:"SYNC_ENABLED"`
	SyncURL     *string `envconfig:"SYNC_URL"`
	SyncKey     *string `envconfig:"SYNC_KEY"`
	APIPort     *int    `envconfig:"API_PORT"`
	LogLevel    *string `envconfig:"LOG_LEVEL"`
	Timezone    *string `envconfig:"TIMEZONE"`
}

// DefaultConfig returns the configuration used when no file exists.
func DefaultConfig() Config {
	return Config{
		Storage: StorageConfig{
			Dir: bhavaHome(),
		},
		Sync: SyncConfig{
			Enabled:      false,
			Timeout:      "10s",
			FlushTimeout: "3s",
		},
		API: APIConfig{
			Host:    "127.0.0.1",
			Port:    7477,
			Metrics: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Pretty: true,
		},
		Calendar: CalendarConfig{
			Timezone: "Local",
		},
	}
}

// LoadConfig reads $BHAVA_HOME/config.toml over the defaults, then applies
// an optional .env file and BHAVA_* environment overrides.
func LoadConfig() (Config, error) {
	cfg := DefaultConfig()
	path := ConfigPath()

	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("load .env: %w", err)
	}
	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	var env envOverrides
	if err := envconfig.Process("bhava", &env); err != nil {
		return fmt.Errorf("read environment: %w", err)
	}
	if env.SyncEnabled != nil {
		cfg.Sync.Enabled = *env.SyncEnabled
	}
	if env.SyncURL != nil {
		cfg.Sync.URL = *env.SyncURL
	}
	if env.SyncKey != nil {
		cfg.Sync.APIKey = *env.SyncKey
	}
	if env.APIPort != nil {
		cfg.API.Port = *env.APIPort
	}
	if env.LogLevel != nil {
		cfg.Logging.Level = *env.LogLevel
	}
	if env.Timezone != nil {
		cfg.Calendar.Timezone = *env.Timezone
	}
	return nil
}

// Validate checks field constraints and that the time zone resolves.
// Enabling sync requires both a URL and an API key.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if c.Sync.Enabled && (c.Sync.URL == "" || c.Sync.APIKey == "") {
		return errors.New("invalid config: sync enabled without url and api_key")
	}
	if _, err := c.Location(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Location resolves the calendar time zone. "" and "Local" mean the
// system zone.
func (c Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Calendar.Timezone)
	if tz == "" || strings.EqualFold(tz, "local") {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("calendar timezone %q: %w", tz, err)
	}
	return loc, nil
}

// SaveConfig writes the config to $BHAVA_HOME/config.toml.
func SaveConfig(cfg Config) error {
	path := ConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := toml.NewEncoder(f)
	return encoder.Encode(cfg)
}

// bhavaHome returns the bhava data directory.
func bhavaHome() string {
	if env := os.Getenv("BHAVA_HOME"); env != "" {
		return env
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".bhava")
}

// ConfigPath returns the location of config.toml.
func ConfigPath() string {
	return filepath.Join(bhavaHome(), "config.toml")
}

// EncodeConfig writes cfg as TOML with the sync API key masked.
func EncodeConfig(w io.Writer, cfg Config) error {
	if cfg.Sync.APIKey != "" {
		cfg.Sync.APIKey = "********"
	}
	return toml.NewEncoder(w).Encode(cfg)
}

// parseDuration parses a duration string, returning a fallback on error.
func parseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return fallback
	}
	return d
}
