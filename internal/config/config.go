// Package config provides configuration loading and validation for the CLI
// and server. The excluded-section list lives here and is threaded into the
// normalizer as an explicit parameter; nothing in the engine reads ambient
// process state.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Config represents the engine configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// DefaultCV is the path of the CV YAML file served when no document is
	// supplied with a request.
	DefaultCV string `json:"default_cv,omitempty"`
	// ExcludedSections hides whole sections from normalized output. Names
	// outside the known section set are dropped with an advisory log line.
	ExcludedSections []string `json:"excluded_sections,omitempty"`
	// Port is the HTTP server listen port.
	Port int `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	// Theme is the default theme name offered to the presentation layer.
	Theme string `json:"theme,omitempty"`
	// Dev enables advisory diagnostics that stay silent in production.
	Dev bool `json:"dev,omitempty"`
	// Verbose prints detailed summaries of normalized output.
	Verbose bool `json:"verbose,omitempty"`
}

// envPrefix namespaces the engine's environment variables.
const envPrefix = "CV_ENGINE_"

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv builds a Config from CV_ENGINE_* environment variables. A .env
// file, when present, is loaded into the environment by the CLI entry point
// before this runs. Unset variables leave zero values.
func FromEnv() Config {
	cfg := Config{
		DefaultCV: os.Getenv(envPrefix + "DEFAULT_CV"),
		Theme:     os.Getenv(envPrefix + "THEME"),
	}

	if raw := os.Getenv(envPrefix + "EXCLUDED_SECTIONS"); raw != "" {
		for _, name := range strings.Split(raw, ",") {
			if name = strings.TrimSpace(name); name != "" {
				cfg.ExcludedSections = append(cfg.ExcludedSections, name)
			}
		}
	}

	if raw := os.Getenv(envPrefix + "PORT"); raw != "" {
		if port, err := strconv.Atoi(raw); err == nil {
			cfg.Port = port
		}
	}

	if raw := os.Getenv(envPrefix + "DEV"); raw != "" {
		cfg.Dev, _ = strconv.ParseBool(raw)
	}

	return cfg
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.DefaultCV != "" {
		if _, err := os.Stat(c.DefaultCV); os.IsNotExist(err) {
			return fmt.Errorf("config error: default CV file not found: %s", c.DefaultCV)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. This is used to apply config file values as defaults for CLI
// flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DefaultCV == "" {
		result.DefaultCV = defaults.DefaultCV
	}
	if result.Theme == "" {
		result.Theme = defaults.Theme
	}
	if len(result.ExcludedSections) == 0 {
		result.ExcludedSections = defaults.ExcludedSections
	}
	if result.Port == 0 {
		result.Port = defaults.Port
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
