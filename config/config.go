package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds environment-driven settings for the weather API.
type Config struct {
	InfluxURL    string
	InfluxToken  string
	InfluxOrg    string
	InfluxBucket string
	Port         int
	DefaultDays  int
	AppEnv       string
	LogLevel     slog.Level
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load() // ignore missing file

	cfg := Config{
		Port:        8080,
		DefaultDays: 3,
		AppEnv:      "dev",
		LogLevel:    slog.LevelInfo,
	}

	cfg.InfluxURL = os.Getenv("INFLUX_URL")
	if cfg.InfluxURL == "" {
		return cfg, errors.New("INFLUX_URL is required")
	}

	cfg.InfluxToken = os.Getenv("INFLUX_TOKEN")
	if cfg.InfluxToken == "" {
		return cfg, errors.New("INFLUX_TOKEN is required")
	}

	cfg.InfluxOrg = os.Getenv("INFLUX_ORG")
	if cfg.InfluxOrg == "" {
		return cfg, errors.New("INFLUX_ORG is required")
	}

	cfg.InfluxBucket = os.Getenv("INFLUX_BUCKET")
	if cfg.InfluxBucket == "" {
		return cfg, errors.New("INFLUX_BUCKET is required")
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid PORT: %s", portStr)
		}
	}

	if daysStr := os.Getenv("API_DEFAULT_DAYS"); daysStr != "" {
		if days, err := strconv.Atoi(daysStr); err == nil && days > 0 {
			cfg.DefaultDays = days
		} else {
			return cfg, fmt.Errorf("invalid API_DEFAULT_DAYS: %s", daysStr)
		}
	}

	if env := os.Getenv("APP_ENV"); env != "" {
		cfg.AppEnv = env
	}

	if levelStr := os.Getenv("LOG_LEVEL"); levelStr != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(levelStr)); err != nil {
			return cfg, fmt.Errorf("invalid LOG_LEVEL: %s", levelStr)
		}
		cfg.LogLevel = level
	}

	return cfg, nil
}

// ListenAddr returns the host:port string for the HTTP server.
func (c Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
