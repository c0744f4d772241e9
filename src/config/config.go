package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Values are loaded by Viper from a config file and/or environment
// variables; the session cookie is the only way the core ever learns
// about an itch.io login.
type Config struct {
	Cookies          string `mapstructure:"ITCH_COOKIES"`
	DataDir          string `mapstructure:"MITCH_DATA_DIR"`
	UserAgent        string `mapstructure:"USERAGENT"`
	Workers          int    `mapstructure:"MITCH_WORKERS"`
	CacheTTLHours    int    `mapstructure:"CACHE_TTL_HOURS"`
	GamePageTTLHours int    `mapstructure:"GAME_PAGE_TTL_HOURS"`
	KeyTTLHours      int    `mapstructure:"DOWNLOAD_KEY_TTL_HOURS"`
	DatabasePath     string `mapstructure:"-"` // derived from DataDir
	CacheDir         string `mapstructure:"-"` // derived from DataDir
}

// Load reads configuration from a .env-style file in path and from the
// environment. Missing file is fine; missing values get defaults.
func Load(path string, version string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			slog.Debug("config file (.env) not found, relying on environment variables")
		} else {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.AutomaticEnv()
	for _, key := range []string{
		"ITCH_COOKIES", "MITCH_DATA_DIR", "USERAGENT", "MITCH_WORKERS",
		"CACHE_TTL_HOURS", "GAME_PAGE_TTL_HOURS", "DOWNLOAD_KEY_TTL_HOURS",
	} {
		if err := v.BindEnv(key); err != nil {
			slog.Warn("unable to bind env var", "key", key, "error", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("unable to decode config: %w", err)
	}

	if config.DataDir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("failed to get current working directory: %w", err)
		}
		config.DataDir = cwd
	}
	if err := os.MkdirAll(config.DataDir, 0755); err != nil {
		return Config{}, fmt.Errorf("failed to create data directory: %w", err)
	}

	if config.UserAgent == "" {
		config.UserAgent = "mitch-scraper/" + version
	}
	if config.Workers <= 0 {
		config.Workers = 5
	}
	if config.CacheTTLHours <= 0 {
		config.CacheTTLHours = 24
	}
	if config.GamePageTTLHours <= 0 {
		config.GamePageTTLHours = 2
	}
	if config.KeyTTLHours <= 0 {
		// permanent download URLs survive a long time, but owners do
		// revoke them; a week keeps stale keys from lingering
		config.KeyTTLHours = 24 * 7
	}

	config.DatabasePath = filepath.Join(config.DataDir, "mitch.db")
	config.CacheDir = filepath.Join(config.DataDir, "cache")

	return config, nil
}
