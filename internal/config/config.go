// Package config loads application settings: where the database file
// lives, the default accent, and logging verbosity. Settings come from
// an optional YAML file with environment overrides (CHECKME_ prefix); a
// .env file next to the process is honored when present.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/rmaia/checkme/internal/model"
)

// Config is the top-level application configuration.
type Config struct {
	DatabasePath string `mapstructure:"database_path" yaml:"database_path"`
	DefaultColor string `mapstructure:"default_color" yaml:"default_color"`
	LogLevel     string `mapstructure:"log_level" yaml:"log_level"`
}

// DefaultConfigPath returns the default configuration file location,
// ~/.config/checkme/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "checkme", "config.yaml")
}

// DefaultDatabasePath returns where the database file lives unless
// configured otherwise, ~/.local/share/checkme/checkme.db.
func DefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "checkme.db")
	}
	return filepath.Join(home, ".local", "share", "checkme", "checkme.db")
}

// Load reads configuration from the given YAML file path. A missing
// file is not an error; defaults apply. Environment variables prefixed
// CHECKME_ override file values, and a .env file is loaded first when
// present.
func Load(path string) (*Config, error) {
	// Ignore a missing .env; it is a development convenience.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix("checkme")
	v.AutomaticEnv()

	v.SetDefault("database_path", DefaultDatabasePath())
	v.SetDefault("default_color", model.DefaultColor)
	v.SetDefault("log_level", "info")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); !ok {
			if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
				return nil, fmt.Errorf("reading config %s: %w", path, err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
