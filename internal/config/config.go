// Package config provides configuration loading and validation for the CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/jonathan/skill-matcher/internal/logging"
	"github.com/jonathan/skill-matcher/internal/ranking"
)

// Defaults used when neither the config file, the environment nor a flag sets a value.
const (
	DefaultPort           = 3001
	DefaultLogLevel       = "info"
	DefaultExtractTimeout = "30s"
)

// Config represents settings that can be loaded from a JSON or YAML file or the environment.
// All fields are optional; empty values fall back to defaults or built-in data.
type Config struct {
	// Server
	Port        int    `json:"port,omitempty" yaml:"port,omitempty"`                 // HTTP listen port
	FrontendURL string `json:"frontend_url,omitempty" yaml:"frontend_url,omitempty"` // Allowed CORS origin; empty allows any
	StaticDir   string `json:"static_dir,omitempty" yaml:"static_dir,omitempty"`     // Frontend build served at /

	// Data
	CatalogPath   string `json:"catalog_path,omitempty" yaml:"catalog_path,omitempty"`     // JSON or YAML catalog; empty uses the embedded one
	ResourcesPath string `json:"resources_path,omitempty" yaml:"resources_path,omitempty"` // JSON or YAML resource table

	// Extraction
	APIKey         string `json:"api_key,omitempty" yaml:"api_key,omitempty"`                 // Gemini API key; empty disables the LLM
	Model          string `json:"model,omitempty" yaml:"model,omitempty"`                     // Overrides the standard-tier model
	ExtractTimeout string `json:"extract_timeout,omitempty" yaml:"extract_timeout,omitempty"` // Go duration, e.g. "30s"

	// Behavior
	LogLevel         string `json:"log_level,omitempty" yaml:"log_level,omitempty"`
	RecommendGroupBy string `json:"recommend_group_by,omitempty" yaml:"recommend_group_by,omitempty"` // "literal" or "normalized"
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Port:             DefaultPort,
		LogLevel:         DefaultLogLevel,
		ExtractTimeout:   DefaultExtractTimeout,
		RecommendGroupBy: string(ranking.GroupLiteral),
	}
}

// LoadConfig loads configuration from a JSON file, or YAML when the path ends in .yaml or .yml.
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
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config YAML: %w", err)
		}
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	return &cfg, nil
}

// FromEnv reads configuration from environment variables. Unset variables
// leave their field empty so file values and defaults can fill them.
func FromEnv() (*Config, error) {
	cfg := &Config{
		CatalogPath:      os.Getenv("CATALOG_PATH"),
		ResourcesPath:    os.Getenv("RESOURCES_PATH"),
		FrontendURL:      os.Getenv("FRONTEND_URL"),
		StaticDir:        os.Getenv("STATIC_DIR"),
		APIKey:           os.Getenv("GEMINI_API_KEY"),
		Model:            os.Getenv("GEMINI_MODEL"),
		LogLevel:         os.Getenv("LOG_LEVEL"),
		RecommendGroupBy: os.Getenv("RECOMMEND_GROUP_BY"),
		ExtractTimeout:   os.Getenv("EXTRACT_TIMEOUT"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT value %q: %w", portStr, err)
		}
		cfg.Port = port
	}

	return cfg, nil
}

// Validate checks that the configuration has valid values. Empty fields are
// accepted; call it after merging with defaults.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535, got %d", c.Port)
	}

	if _, err := ranking.ParseGroupBy(c.RecommendGroupBy); err != nil {
		return fmt.Errorf("config error: 'recommend_group_by': %w", err)
	}

	if err := logging.ValidateLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config error: 'log_level': %w", err)
	}

	if _, err := c.ExtractTimeoutDuration(); err != nil {
		return fmt.Errorf("config error: 'extract_timeout': %w", err)
	}

	if c.FrontendURL != "" {
		u, err := url.Parse(c.FrontendURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			return fmt.Errorf("config error: 'frontend_url' must be an absolute URL, got %q", c.FrontendURL)
		}
	}

	if c.CatalogPath != "" {
		if _, err := os.Stat(c.CatalogPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.CatalogPath)
		}
	}

	if c.ResourcesPath != "" {
		if _, err := os.Stat(c.ResourcesPath); os.IsNotExist(err) {
			return fmt.Errorf("config error: resources file not found: %s", c.ResourcesPath)
		}
	}

	if c.StaticDir != "" {
		info, err := os.Stat(c.StaticDir)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("config error: static dir not found: %s", c.StaticDir)
		}
	}

	return nil
}

// ExtractTimeoutDuration parses ExtractTimeout. Empty means zero (no bound).
func (c *Config) ExtractTimeoutDuration() (time.Duration, error) {
	if c.ExtractTimeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.ExtractTimeout)
	if err != nil {
		return 0, err
	}
	if d < 0 {
		return 0, fmt.Errorf("duration must not be negative: %s", c.ExtractTimeout)
	}
	return d, nil
}

// GroupBy returns the parsed recommendation grouping. Call Validate first.
func (c *Config) GroupBy() ranking.GroupBy {
	g, err := ranking.ParseGroupBy(c.RecommendGroupBy)
	if err != nil {
		return ranking.GroupLiteral
	}
	return g
}

// Addr returns the listen address for Port.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// It is applied in layers: environment over file over built-in defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.FrontendURL == "" {
		result.FrontendURL = defaults.FrontendURL
	}
	if result.StaticDir == "" {
		result.StaticDir = defaults.StaticDir
	}
	if result.CatalogPath == "" {
		result.CatalogPath = defaults.CatalogPath
	}
	if result.ResourcesPath == "" {
		result.ResourcesPath = defaults.ResourcesPath
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.ExtractTimeout == "" {
		result.ExtractTimeout = defaults.ExtractTimeout
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.RecommendGroupBy == "" {
		result.RecommendGroupBy = defaults.RecommendGroupBy
	}

	return result
}

// Resolve layers the environment over an optional config file over Defaults
// and validates the result. CLI flags are applied by the caller afterwards.
func Resolve(path string) (Config, error) {
	env, err := FromEnv()
	if err != nil {
		return Config{}, err
	}

	file := &Config{}
	if path != "" {
		file, err = LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
	}

	base := file.MergeWithDefaults(Defaults())
	merged := env.MergeWithDefaults(base)
	if err := merged.Validate(); err != nil {
		return Config{}, err
	}
	return merged, nil
}
