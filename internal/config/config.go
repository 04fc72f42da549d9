// Package config provides configuration loading and validation for the CLI
// and the HTTP server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the application configuration. It can be loaded from a
// JSON file, from the environment, or both; CLI flags take precedence after
// merging. All fields are optional.
type Config struct {
	// DataDir is the directory parsed resumes are stored in when no
	// database is configured.
	DataDir string `json:"data_dir,omitempty"`

	// DatabaseURL switches persistence to PostgreSQL when set.
	DatabaseURL string `json:"database_url,omitempty"`

	// APIKey is the Gemini API key. When empty, parsing is rule-based only.
	APIKey string `json:"api_key,omitempty"`

	// Model overrides the default extraction model name.
	Model string `json:"model,omitempty"`

	// ListenAddr is the HTTP server bind address.
	ListenAddr string `json:"listen_addr,omitempty"`

	// Workers bounds concurrent document parsing in batch operations.
	Workers int `json:"workers,omitempty"`

	// Verbose enables debug logging; JSONLogs switches to JSON encoding.
	Verbose  bool `json:"verbose,omitempty"`
	JSONLogs bool `json:"json_logs,omitempty"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		DataDir:    "parsed_resumes",
		ListenAddr: ":8080",
		Workers:    4,
	}
}

// LoadConfig loads configuration from a JSON file.
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

// FromEnv fills a Config from environment variables. godotenv loads a .env
// file into the environment before this runs.
func FromEnv() Config {
	cfg := Config{
		DataDir:     os.Getenv("RESUME_DATA_DIR"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		APIKey:      os.Getenv("GEMINI_API_KEY"),
		Model:       os.Getenv("RESUME_MODEL"),
		ListenAddr:  os.Getenv("RESUME_LISTEN_ADDR"),
	}
	if v := os.Getenv("RESUME_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Workers = n
		}
	}
	return cfg
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("config error: 'workers' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with unset fields filled from
// defaults. Used to layer file values over environment values over the
// built-in defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.ListenAddr == "" {
		result.ListenAddr = defaults.ListenAddr
	}
	if result.Workers == 0 {
		result.Workers = defaults.Workers
	}
	result.Verbose = result.Verbose || defaults.Verbose
	result.JSONLogs = result.JSONLogs || defaults.JSONLogs

	return result
}
