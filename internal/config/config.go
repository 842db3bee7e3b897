package config

import (
	"fmt"
	"github.com/osmike/cronpick/internal/domain"
	errs "github.com/osmike/cronpick/internal/error"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

const (
	// Config file path, relative to the home directory
	configFileName = ".cronpick/config.yaml"

	defaultDBFile = ".cronpick/cron.db"
)

// Store drivers.
const (
	DriverMemory = "memory"
	DriverSQLite = "sqlite"
	DriverRedis  = "redis"
)

// Config represents the cronpick configuration
type Config struct {
	Dialect    domain.Dialect    `yaml:"dialect"`
	HourFormat domain.HourFormat `yaml:"hour_format"`
	Store      StoreConfig       `yaml:"store"`
	Log        LogConfig         `yaml:"log"`
	Preview    PreviewConfig     `yaml:"preview"`
}

// StoreConfig selects where picked expressions are persisted
type StoreConfig struct {
	Driver    string `yaml:"driver"`
	DSN       string `yaml:"dsn"`
	KeyPrefix string `yaml:"key_prefix"`
}

// LogConfig configures the zap logger
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // "console" | "json"
}

// PreviewConfig configures the next-run preview
type PreviewConfig struct {
	Count    int    `yaml:"count"`
	Timezone string `yaml:"timezone"`
}

// Flags carries values given on the command line. Empty values are ignored.
type Flags struct {
	Dialect    string
	HourFormat string
	Driver     string
	DSN        string
}

// Default returns the built-in configuration.
func Default() *Config {
	dsn := defaultDBFile
	if home, err := os.UserHomeDir(); err == nil {
		dsn = filepath.Join(home, defaultDBFile)
	}
	return &Config{
		Dialect:    domain.Standard,
		HourFormat: domain.Format24,
		Store: StoreConfig{
			Driver: DriverSQLite,
			DSN:    dsn,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Preview: PreviewConfig{
			Count:    5,
			Timezone: "UTC",
		},
	}
}

// Load builds the configuration with precedence:
// 1. CLI flags
// 2. Environment variables
// 3. Config file (path, or ~/.cronpick/config.yaml when path is empty)
// 4. Defaults
func Load(path string, flags Flags) (*Config, error) {
	cfg := Default()

	// 3. Config file
	fileConfig, err := loadFromFile(path)
	if err != nil {
		return nil, err
	}
	if fileConfig != nil {
		cfg.merge(fileConfig)
	}

	// 2. Environment variables
	if v := os.Getenv("CRONPICK_DIALECT"); v != "" {
		cfg.Dialect = domain.Dialect(v)
	}
	if v := os.Getenv("CRONPICK_HOUR_FORMAT"); v != "" {
		cfg.HourFormat = domain.HourFormat(v)
	}
	if v := os.Getenv("CRONPICK_STORE"); v != "" {
		cfg.Store.Driver = v
	}
	if v := os.Getenv("CRONPICK_DSN"); v != "" {
		cfg.Store.DSN = v
	}
	if v := os.Getenv("CRONPICK_PREVIEW_COUNT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("CRONPICK_PREVIEW_COUNT: %w", err)
		}
		cfg.Preview.Count = n
	}

	// 1. CLI flags (highest priority)
	if flags.Dialect != "" {
		cfg.Dialect = domain.Dialect(flags.Dialect)
	}
	if flags.HourFormat != "" {
		cfg.HourFormat = domain.HourFormat(flags.HourFormat)
	}
	if flags.Driver != "" {
		cfg.Store.Driver = flags.Driver
	}
	if flags.DSN != "" {
		cfg.Store.DSN = flags.DSN
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	switch c.Dialect {
	case domain.Standard, domain.Quartz:
	default:
		return errs.New(errs.ErrUnknownDialect, string(c.Dialect))
	}
	switch c.HourFormat {
	case domain.Format24, domain.Format12:
	default:
		return errs.New(errs.ErrUnknownHourFormat, string(c.HourFormat))
	}
	switch c.Store.Driver {
	case DriverMemory, DriverSQLite, DriverRedis:
	default:
		return errs.New(errs.ErrUnknownStore, c.Store.Driver)
	}
	return nil
}

// merge copies the non-zero values of other into c.
func (c *Config) merge(other *Config) {
	if other.Dialect != "" {
		c.Dialect = other.Dialect
	}
	if other.HourFormat != "" {
		c.HourFormat = other.HourFormat
	}
	if other.Store.Driver != "" {
		c.Store.Driver = other.Store.Driver
	}
	if other.Store.DSN != "" {
		c.Store.DSN = other.Store.DSN
	}
	if other.Store.KeyPrefix != "" {
		c.Store.KeyPrefix = other.Store.KeyPrefix
	}
	if other.Log.Level != "" {
		c.Log.Level = other.Log.Level
	}
	if other.Log.Format != "" {
		c.Log.Format = other.Log.Format
	}
	if other.Preview.Count > 0 {
		c.Preview.Count = other.Preview.Count
	}
	if other.Preview.Timezone != "" {
		c.Preview.Timezone = other.Preview.Timezone
	}
}

// loadFromFile reads path, or ~/.cronpick/config.yaml when path is empty.
// A missing default file is not an error; a missing explicit file is.
func loadFromFile(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, nil
		}
		path = filepath.Join(homeDir, configFileName)
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}
