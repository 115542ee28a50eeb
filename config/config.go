package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults matching the docker-compose dev environment.
const DEFAULT_LISTEN_ADDRESS = ":8080"
const DEFAULT_REDIS_ADDRESS = "redis:6379"
const DEFAULT_REDIS_PASSWORD = ""
const DEFAULT_REDIS_DB = 0

// Auth defaults.
const DEFAULT_TOKEN_EXPIRY_MINUTES = 30

// Forecast refresher default schedule.
const DEFAULT_REFRESH_INTERVAL_MINUTES = 60

// Default horizon when a request does not specify one.
const DEFAULT_FORECAST_HORIZON = 7

// MQTTConfig holds the alert publisher settings.
type MQTTConfig struct {
	Enabled     bool   `yaml:"enabled"`
	Broker      string `yaml:"broker"`
	Username    string `yaml:"username,omitempty"`
	Password    string `yaml:"password,omitempty"`
	TopicPrefix string `yaml:"topic_prefix,omitempty"`
	MinSeverity string `yaml:"min_severity,omitempty"` // lowest severity that publishes
}

// InferenceConfig points at the external model backend.
type InferenceConfig struct {
	BaseURL string `yaml:"base_url"`
	Token   string `yaml:"token,omitempty"`
}

// Config holds the application configuration
type Config struct {
	Env                    string          `yaml:"env,omitempty"`
	ListenAddress          string          `yaml:"listen_address,omitempty"`
	RedisAddress           string          `yaml:"redis_address,omitempty"`
	RedisPassword          string          `yaml:"redis_password,omitempty"`
	RedisDB                int             `yaml:"redis_db,omitempty"`
	JWTSecret              string          `yaml:"jwt_secret,omitempty"`
	TokenExpiryMinutes     int             `yaml:"token_expiry_minutes,omitempty"`
	RefreshIntervalMinutes int             `yaml:"refresh_interval_minutes,omitempty"`
	Inference              InferenceConfig `yaml:"inference,omitempty"`
	MQTT                   MQTTConfig      `yaml:"mqtt,omitempty"`
}

// Load reads the config file, falling back to an empty config (all
// defaults) when the file does not exist. Environment variables override
// the file for the deployment-sensitive values.
func Load(configPath string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(configPath)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if v := os.Getenv("SE_LISTEN_ADDRESS"); v != "" {
		cfg.ListenAddress = v
	}
	if v := os.Getenv("SE_REDIS_ADDRESS"); v != "" {
		cfg.RedisAddress = v
	}
	if v := os.Getenv("SE_JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}
	if v := os.Getenv("SE_ENV"); v != "" {
		cfg.Env = v
	}

	return &cfg, nil
}

// DefaultConfigPath returns the default config file path (local directory)
func DefaultConfigPath() string {
	return "config.yaml"
}

// GetEnv returns the deployment environment, defaulting to dev.
func (c *Config) GetEnv() string {
	if c.Env == "" {
		return "dev"
	}
	return c.Env
}

// GetListenAddress returns the HTTP listen address with a default.
func (c *Config) GetListenAddress() string {
	if c.ListenAddress == "" {
		return DEFAULT_LISTEN_ADDRESS
	}
	return c.ListenAddress
}

// GetRedisAddress returns the redis address with a default.
func (c *Config) GetRedisAddress() string {
	if c.RedisAddress == "" {
		return DEFAULT_REDIS_ADDRESS
	}
	return c.RedisAddress
}

// GetJWTSecret returns the signing secret. The fallback keeps dev setups
// working; deployments must set SE_JWT_SECRET.
func (c *Config) GetJWTSecret() string {
	if c.JWTSecret == "" {
		return "dev-only-secret"
	}
	return c.JWTSecret
}

// GetTokenExpiryMinutes returns the access-token lifetime.
func (c *Config) GetTokenExpiryMinutes() int {
	if c.TokenExpiryMinutes <= 0 {
		return DEFAULT_TOKEN_EXPIRY_MINUTES
	}
	return c.TokenExpiryMinutes
}

// GetRefreshIntervalMinutes returns the forecast refresher schedule.
func (c *Config) GetRefreshIntervalMinutes() int {
	if c.RefreshIntervalMinutes <= 0 {
		return DEFAULT_REFRESH_INTERVAL_MINUTES
	}
	return c.RefreshIntervalMinutes
}
