// Package config loads server configuration from an optional YAML file with
// environment-variable overrides.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config defines server configuration.
type Config struct {
	Server ServerConfig `yaml:"server"`
	DB     DBConfig     `yaml:"db"`
	Log    LogConfig    `yaml:"log"`
	Auth   AuthConfig   `yaml:"auth"`
	Gate   GateConfig   `yaml:"gate"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

type DBConfig struct {
	Path string `yaml:"path"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type AuthConfig struct {
	Secret        string `yaml:"secret"`
	TokenExpiryHr int    `yaml:"token_expiry_hours"`
	AdminUser     string `yaml:"admin_user"`
	AdminPassword string `yaml:"admin_password"`
}

type GateConfig struct {
	TrialMinutes int    `yaml:"trial_minutes"`
	DevMode      bool   `yaml:"dev_mode"`
	DevKey       string `yaml:"dev_key"`
}

// Load reads configuration from an optional YAML file and environment variables.
func Load() (Config, error) {
	cfg := Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		DB: DBConfig{
			Path: "guestgate.db",
		},
		Log: LogConfig{
			Level: "info",
		},
		Auth: AuthConfig{
			TokenExpiryHr: 24,
		},
		Gate: GateConfig{
			TrialMinutes: 20,
		},
	}

	if path := os.Getenv("GUESTGATE_CONFIG_PATH"); path != "" {
		if err := loadFromFile(path, &cfg); err != nil {
			return Config{}, err
		}
	}

	if host := os.Getenv("GUESTGATE_SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if portStr := os.Getenv("GUESTGATE_SERVER_PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return Config{}, fmt.Errorf("invalid GUESTGATE_SERVER_PORT: %w", err)
		}
		cfg.Server.Port = port
	}
	if dbPath := os.Getenv("GUESTGATE_DB_PATH"); dbPath != "" {
		cfg.DB.Path = dbPath
	}
	if level := os.Getenv("GUESTGATE_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if secret := os.Getenv("GUESTGATE_AUTH_SECRET"); secret != "" {
		cfg.Auth.Secret = secret
	}
	if user := os.Getenv("GUESTGATE_ADMIN_USER"); user != "" {
		cfg.Auth.AdminUser = user
	}
	if pass := os.Getenv("GUESTGATE_ADMIN_PASSWORD"); pass != "" {
		cfg.Auth.AdminPassword = pass
	}
	if minutesStr := os.Getenv("GUESTGATE_TRIAL_MINUTES"); minutesStr != "" {
		minutes, err := strconv.Atoi(minutesStr)
		if err != nil || minutes <= 0 {
			return Config{}, fmt.Errorf("invalid GUESTGATE_TRIAL_MINUTES")
		}
		cfg.Gate.TrialMinutes = minutes
	}
	if devMode := os.Getenv("GUESTGATE_DEV_MODE"); devMode != "" {
		cfg.Gate.DevMode = devMode == "1" || devMode == "true"
	}
	if devKey := os.Getenv("GUESTGATE_DEV_KEY"); devKey != "" {
		cfg.Gate.DevKey = devKey
	}

	if cfg.Auth.Secret == "" {
		return Config{}, fmt.Errorf("auth secret is required (GUESTGATE_AUTH_SECRET)")
	}
	if cfg.Auth.TokenExpiryHr <= 0 {
		return Config{}, fmt.Errorf("token expiry must be positive")
	}

	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	return nil
}
