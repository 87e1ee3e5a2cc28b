// Package config loads the server configuration from the environment and an
// optional YAML file.
package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Environment variable names.
const (
	EnvBaseURL    = "TANDOOR_BASE_URL"
	EnvAPIKey     = "TANDOOR_API_KEY"
	EnvAPIToken   = "TANDOOR_API_TOKEN"
	EnvConfigFile = "TANDOOR_MCP_CONFIG"
)

// Config holds the settings required to talk to a Tandoor instance.
type Config struct {
	// BaseURL is the root URL of the Tandoor instance, without the /api suffix.
	BaseURL string `yaml:"base_url"`

	// Token is the bearer token used for every API call.
	Token string `yaml:"token"`

	// LogJSON switches logging from console to JSON output.
	LogJSON bool `yaml:"log_json"`
}

// Load reads the configuration from the optional YAML file named by
// TANDOOR_MCP_CONFIG, then applies environment overrides, then validates.
func Load() (*Config, error) {
	cfg := &Config{}

	if path := os.Getenv(EnvConfigFile); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	if v := os.Getenv(EnvBaseURL); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv(EnvAPIKey); v != "" {
		cfg.Token = v
	} else if v := os.Getenv(EnvAPIToken); v != "" {
		cfg.Token = v
	}

	cfg.BaseURL = NormalizeBaseURL(cfg.BaseURL)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the required settings are present.
func (c *Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("missing Tandoor base URL: set %s", EnvBaseURL)
	}
	if c.Token == "" {
		return fmt.Errorf("missing Tandoor API token: set %s (or %s)", EnvAPIKey, EnvAPIToken)
	}
	return nil
}

// NormalizeBaseURL strips trailing slashes and a trailing /api segment so the
// client can append API paths uniformly.
func NormalizeBaseURL(raw string) string {
	url := strings.TrimRight(strings.TrimSpace(raw), "/")
	url = strings.TrimSuffix(url, "/api")
	return strings.TrimRight(url, "/")
}
