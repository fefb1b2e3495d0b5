package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Loader loads configuration from defaults, a file, and the environment.
type Loader struct {
	configPath string
}

// NewLoader creates a configuration loader. If configPath is empty, standard
// locations are searched: ./tasktally.yaml, then
// ~/.config/tasktally/config.yaml.
func NewLoader(configPath string) *Loader {
	return &Loader{configPath: configPath}
}

// Load merges defaults, the config file (if any), and environment variable
// overrides, then validates the result.
func (l *Loader) Load() (*Config, error) {
	cfg := Default()

	configPath := l.configPath
	if configPath == "" {
		configPath = findConfigFile()
	}

	if configPath != "" {
		fileCfg, err := loadFile(configPath)
		if err != nil {
			// An explicitly-requested file must load; a discovered one
			// may be absent.
			if l.configPath != "" {
				return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
			}
		} else {
			cfg = merge(cfg, fileCfg)
		}
	}

	applyEnv(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func loadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return &cfg, nil
}

func findConfigFile() string {
	candidates := []string{
		"./tasktally.yaml",
		filepath.Join(homeDir(), ".config", "tasktally", "config.yaml"),
	}

	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// merge overlays non-zero file values onto the defaults.
func merge(base, override *Config) *Config {
	result := *base

	if override.Storage.DBPath != "" {
		result.Storage.DBPath = override.Storage.DBPath
	}
	if override.Timezone != "" {
		result.Timezone = override.Timezone
	}
	if override.Logging.Level != "" {
		result.Logging.Level = override.Logging.Level
	}
	if override.Logging.File != "" {
		result.Logging.File = override.Logging.File
	}

	return &result
}

// applyEnv overrides config values from TASKTALLY_* environment variables.
func applyEnv(cfg *Config) {
	if v := os.Getenv("TASKTALLY_DB"); v != "" {
		cfg.Storage.DBPath = v
	}
	if v := os.Getenv("TASKTALLY_TIMEZONE"); v != "" {
		cfg.Timezone = v
	}
	if v := os.Getenv("TASKTALLY_LOG_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("TASKTALLY_LOG_FILE"); v != "" {
		cfg.Logging.File = v
	}
}
