// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Data locations
	DataURL string `json:"data_url,omitempty" validate:"omitempty,url"` // Base URL serving the JSON resource documents
	DataDir string `json:"data_dir,omitempty"`                          // Local directory of resource documents

	// Site layout
	Pages     string   `json:"pages,omitempty"`                                     // Directory of HTML page shells
	Output    string   `json:"output,omitempty"`                                    // Output directory for rendered pages
	Resources []string `json:"resources,omitempty" validate:"omitempty,dive,min=1"` // Resource Set override

	// Cache behavior
	UseCache      bool   `json:"use_cache,omitempty"`                        // Enable the expiring fetch cache
	CacheDir      string `json:"cache_dir,omitempty"`                        // Cache directory
	CacheTTLHours int    `json:"cache_ttl_hours,omitempty" validate:"min=0"` // Cache freshness window

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// validate is shared across Validate calls.
var validate = validator.New()

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	// Validate mutually exclusive fields
	if c.DataURL != "" && c.DataDir != "" {
		return fmt.Errorf("config error: 'data_url' and 'data_dir' are mutually exclusive")
	}

	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	// Validate directories exist (if specified)
	if c.DataDir != "" {
		if _, err := os.Stat(c.DataDir); os.IsNotExist(err) {
			return fmt.Errorf("config error: data directory not found: %s", c.DataDir)
		}
	}

	if c.Pages != "" {
		if _, err := os.Stat(c.Pages); os.IsNotExist(err) {
			return fmt.Errorf("config error: pages directory not found: %s", c.Pages)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty string fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.DataURL == "" {
		result.DataURL = defaults.DataURL
	}
	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.Pages == "" {
		result.Pages = defaults.Pages
	}
	if result.Output == "" {
		result.Output = defaults.Output
	}
	if result.CacheDir == "" {
		result.CacheDir = defaults.CacheDir
	}

	// Slice fields: use default if unset
	if len(result.Resources) == 0 {
		result.Resources = defaults.Resources
	}

	// Int fields: use default if zero
	if result.CacheTTLHours == 0 {
		result.CacheTTLHours = defaults.CacheTTLHours
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
