// Package config provides configuration for tasktally.
//
// Configuration is loaded with the following precedence:
// 1. Command-line flags (highest priority, applied by the commands package)
// 2. Environment variables (TASKTALLY_*)
// 3. Configuration file
// 4. Default values (lowest priority)
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config represents the complete application configuration.
type Config struct {
	// Storage settings
	Storage StorageConfig `yaml:"storage"`

	// Timezone used for calendar-date bucketing ("Local", "UTC", or an
	// IANA name such as "Europe/London")
	Timezone string `yaml:"timezone"`

	// Logging settings
	Logging LoggingConfig `yaml:"logging"`
}

// StorageConfig contains interval store settings.
type StorageConfig struct {
	// Path of the bbolt database file
	DBPath string `yaml:"db_path"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Log level: debug, info, warn, error
	Level string `yaml:"level"`

	// Log file path; empty disables file logging
	File string `yaml:"file"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			DBPath: filepath.Join(homeDir(), ".tasktally", "tasktally.db"),
		},
		Timezone: "Local",
		Logging: LoggingConfig{
			Level: "info",
			File:  filepath.Join(homeDir(), ".tasktally", "logs", "app.log"),
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Storage.DBPath == "" {
		return fmt.Errorf("storage.db_path must not be empty")
	}

	if c.Timezone != "" && c.Timezone != "Local" {
		if _, err := time.LoadLocation(c.Timezone); err != nil {
			return fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
		}
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error", "fatal":
	default:
		return fmt.Errorf("invalid logging level %q", c.Logging.Level)
	}

	return nil
}

func homeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return home
}
