// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Skill bank sources (mutually exclusive)
	BankFile    string `json:"bank_file,omitempty"`    // Path to a skill bank JSON snapshot
	BankURL     string `json:"bank_url,omitempty"`     // Base URL of the skill bank service
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL

	// Session
	UserID string `json:"user_id,omitempty"` // User UUID (required for URL/DB sources)

	// Behavior
	TimeoutSeconds int  `json:"timeout_seconds,omitempty"` // HTTP fetch timeout
	Verbose        bool `json:"verbose,omitempty"`         // Print detailed derivation information
}

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
	// Exactly one bank source may be configured
	sources := 0
	if c.BankFile != "" {
		sources++
	}
	if c.BankURL != "" {
		sources++
	}
	if c.DatabaseURL != "" {
		sources++
	}
	if sources > 1 {
		return fmt.Errorf("config error: 'bank_file', 'bank_url' and 'database_url' are mutually exclusive")
	}

	if c.TimeoutSeconds < 0 {
		return fmt.Errorf("config error: 'timeout_seconds' must be non-negative")
	}

	// Validate file paths exist (if specified)
	if c.BankFile != "" {
		if _, err := os.Stat(c.BankFile); os.IsNotExist(err) {
			return fmt.Errorf("config error: bank file not found: %s", c.BankFile)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.BankFile == "" {
		result.BankFile = defaults.BankFile
	}
	if result.BankURL == "" {
		result.BankURL = defaults.BankURL
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.UserID == "" {
		result.UserID = defaults.UserID
	}

	// Int fields: use default if zero
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
