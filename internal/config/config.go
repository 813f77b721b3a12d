package config

import (
	"github.com/spf13/viper"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	Env      string `mapstructure:"APP_ENV"` // development | production
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// Database
	DatabasePath  string `mapstructure:"DATABASE_PATH"`
	LogQueries    bool   `mapstructure:"DB_LOG_QUERIES"`
	BusyTimeoutMS int    `mapstructure:"DB_BUSY_TIMEOUT_MS"`
}

// Load reads configuration from environment variables (and optional .env file).
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("DATABASE_PATH", "lite-pos.db")
	v.SetDefault("DB_LOG_QUERIES", false)
	v.SetDefault("DB_BUSY_TIMEOUT_MS", 5000)

	// Optional .env file for local development; a missing file is fine
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
