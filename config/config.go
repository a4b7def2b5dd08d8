package config

import "github.com/kelseyhightower/envconfig"

// Config holds runtime configuration for the application.
type Config struct {
	Addr     string `envconfig:"ADDR" default:":8080"`
	DBPath   string `envconfig:"DB_PATH" default:"./data/cockpit.db"`
	AuthUser string `envconfig:"AUTH_USER"`
	AuthPass string `envconfig:"AUTH_PASS"`
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
