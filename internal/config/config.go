// Package config manages the global configuration stored at
// ~/.ledgerline/config.yaml, with LEDGERLINE_* environment overrides.
package config

import (
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ledgerline/ledgerline/internal/errors"
)

const configFile = "config.yaml"

// Config is the global ledgerline configuration
type Config struct {
	// API holds the remote platform settings
	API APIConfig `yaml:"api,omitempty"`
	// Defaults holds per-command defaults
	Defaults CommandDefaults `yaml:"defaults,omitempty"`
	// Logging controls the structured logger
	Logging LoggingConfig `yaml:"logging,omitempty"`
}

// APIConfig configures the HTTP client
type APIConfig struct {
	// URL is the base URL of the expense platform API
	URL string `yaml:"url,omitempty"`
	// TimeoutSeconds bounds each request; zero keeps the transport default
	TimeoutSeconds int `yaml:"timeout_seconds,omitempty"`
}

// CommandDefaults holds per-command defaults
type CommandDefaults struct {
	Format string `yaml:"format,omitempty"` // "text", "json", "yaml"
	// OrgID is the organization selected by 'ledgerline org switch'
	OrgID string `yaml:"org_id,omitempty"`
}

// LoggingConfig controls the structured logger
type LoggingConfig struct {
	Level  string `yaml:"level,omitempty"`  // "debug", "info", "warn", "error"
	Format string `yaml:"format,omitempty"` // "text", "json"
}

// Default returns the configuration used when no file exists yet
func Default() *Config {
	return &Config{
		API:      APIConfig{URL: "http://localhost:5000/api", TimeoutSeconds: 30},
		Defaults: CommandDefaults{Format: "text"},
		Logging:  LoggingConfig{Level: "warn", Format: "text"},
	}
}

// Path returns the configuration file location under dir
func Path(dir string) string {
	return filepath.Join(dir, configFile)
}

// DefaultDir returns the standard per-user location, ~/.ledgerline
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeConfigNotFound, "cannot resolve home directory", err)
	}
	return filepath.Join(home, ".ledgerline"), nil
}

// Load reads the configuration from dir, creating a default file when absent,
// then applies environment overrides. A .env file in the working directory is
// honored if present.
func Load(dir string) (*Config, error) {
	_ = godotenv.Load()

	path := Path(dir)
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case os.IsNotExist(err):
		if err := Save(cfg, dir); err != nil {
			return nil, err
		}
	case err != nil:
		return nil, errors.Wrap(errors.ErrCodeConfigNotFound, "cannot read config file", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrap(errors.ErrCodeConfigInvalid, "cannot parse config file", err)
		}
	}

	applyEnv(cfg)
	return cfg, nil
}

// Save writes the configuration to dir, creating it if needed
func Save(cfg *Config, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "cannot create config directory", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(errors.ErrCodeConfigInvalid, "cannot encode config", err)
	}

	if err := os.WriteFile(Path(dir), data, 0o600); err != nil {
		return errors.Wrap(errors.ErrCodeFileWriteFailed, "cannot write config file", err)
	}
	return nil
}

// Timeout returns the configured request timeout
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

// Get returns the value of a dotted configuration key
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "api.url":
		return c.API.URL, nil
	case "api.timeout_seconds":
		return strconv.Itoa(c.API.TimeoutSeconds), nil
	case "defaults.format":
		return c.Defaults.Format, nil
	case "defaults.org_id":
		return c.Defaults.OrgID, nil
	case "logging.level":
		return c.Logging.Level, nil
	case "logging.format":
		return c.Logging.Format, nil
	default:
		return "", errors.New(errors.ErrCodeConfigKey, "unknown configuration key: "+key).
			WithSuggestion("Run 'ledgerline config view' to list available keys")
	}
}

// Set updates the value of a dotted configuration key
func (c *Config) Set(key, value string) error {
	switch key {
	case "api.url":
		c.API.URL = value
	case "api.timeout_seconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return errors.Wrap(errors.ErrCodeConfigInvalid, "timeout must be an integer", err)
		}
		c.API.TimeoutSeconds = n
	case "defaults.format":
		c.Defaults.Format = value
	case "defaults.org_id":
		c.Defaults.OrgID = value
	case "logging.level":
		c.Logging.Level = value
	case "logging.format":
		c.Logging.Format = value
	default:
		return errors.New(errors.ErrCodeConfigKey, "unknown configuration key: "+key).
			WithSuggestion("Run 'ledgerline config view' to list available keys")
	}
	return nil
}

func applyEnv(cfg *Config) {
	cfg.API.URL = getEnv("LEDGERLINE_API_URL", cfg.API.URL)
	cfg.Defaults.Format = getEnv("LEDGERLINE_FORMAT", cfg.Defaults.Format)
	cfg.Defaults.OrgID = getEnv("LEDGERLINE_ORG_ID", cfg.Defaults.OrgID)
	cfg.Logging.Level = getEnv("LEDGERLINE_LOG_LEVEL", cfg.Logging.Level)
	cfg.Logging.Format = getEnv("LEDGERLINE_LOG_FORMAT", cfg.Logging.Format)
	cfg.API.TimeoutSeconds = getEnvInt("LEDGERLINE_TIMEOUT_SECONDS", cfg.API.TimeoutSeconds)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
