package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all configuration for birdat.
type Config struct {
	// Language selects the message catalog: "auto", "en" or "zh".
	Language string `yaml:"language" env:"BIRDAT_LANGUAGE"`

	// InPlace rewrites files instead of printing to stdout by default.
	InPlace bool `yaml:"in_place" env:"BIRDAT_IN_PLACE"`

	// Extensions are the file extensions collected in directory mode.
	Extensions []string `yaml:"extensions" env:"BIRDAT_EXTENSIONS"`

	// CacheEnabled turns the content-hash result cache on or off.
	CacheEnabled bool `yaml:"cache_enabled" env:"BIRDAT_CACHE_ENABLED"`

	// CacheMaxEntries bounds the persisted cache; 0 means unbounded.
	CacheMaxEntries int `yaml:"cache_max_entries" env:"BIRDAT_CACHE_MAX_ENTRIES"`

	// Jobs bounds directory-mode concurrency; 0 means one per CPU.
	Jobs int `yaml:"jobs" env:"BIRDAT_JOBS"`

	// Verbose enables debug logging.
	Verbose bool `yaml:"verbose" env:"BIRDAT_VERBOSE"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Language:        "auto",
		InPlace:         false,
		Extensions:      []string{".conf"},
		CacheEnabled:    true,
		CacheMaxEntries: 4096,
		Jobs:            0,
		Verbose:         false,
	}
}

// GlobalPath returns the global config file path (~/.birdat/config.yaml).
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".birdat/config.yaml"
	}
	return filepath.Join(home, ".birdat", "config.yaml")
}

// CachePath returns the default cache file location.
func CachePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".birdat/cache/results.msgpack"
	}
	return filepath.Join(home, ".birdat", "cache", "results.msgpack")
}

// projectPath returns the project-level config file path.
func projectPath() string {
	return ".birdat/config.yaml"
}

// Load reads configuration with the following priority (highest to lowest):
// 1. Environment variables
// 2. Project-level config (./.birdat/config.yaml)
// 3. Global config (~/.birdat/config.yaml)
// 4. Defaults
func Load() (*Config, error) {
	cfg := DefaultConfig()

	for _, path := range []string{GlobalPath(), projectPath()} {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromFile reads configuration from a specific YAML file path.
func LoadFromFile(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", path, err)
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the given YAML file path, creating parent
// directories as needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file %s: %w", path, err)
	}
	return nil
}

// EffectiveJobs resolves the Jobs setting into a concrete worker count.
func (c *Config) EffectiveJobs() int {
	if c.Jobs > 0 {
		return c.Jobs
	}
	return runtime.NumCPU()
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("BIRDAT_LANGUAGE"); v != "" {
		cfg.Language = v
	}
	if v := os.Getenv("BIRDAT_IN_PLACE"); v != "" {
		cfg.InPlace = isTruthy(v)
	}
	if v := os.Getenv("BIRDAT_EXTENSIONS"); v != "" {
		cfg.Extensions = splitList(v)
	}
	if v := os.Getenv("BIRDAT_CACHE_ENABLED"); v != "" {
		cfg.CacheEnabled = isTruthy(v)
	}
	if v := os.Getenv("BIRDAT_CACHE_MAX_ENTRIES"); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i >= 0 {
			cfg.CacheMaxEntries = i
		}
	}
	if v := os.Getenv("BIRDAT_JOBS"); v != "" {
		if i, err := strconv.Atoi(v); err == nil && i >= 0 {
			cfg.Jobs = i
		}
	}
	if v := os.Getenv("BIRDAT_VERBOSE"); v != "" {
		cfg.Verbose = isTruthy(v)
	}
}

func isTruthy(v string) bool {
	return v == "true" || v == "1" || v == "yes"
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// Validate checks that the configuration has valid required fields.
func (c *Config) Validate() error {
	switch c.Language {
	case "auto", "en", "zh":
	default:
		return fmt.Errorf("invalid language: %s (must be 'auto', 'en' or 'zh')", c.Language)
	}

	if len(c.Extensions) == 0 {
		return fmt.Errorf("extensions must not be empty")
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("invalid extension %q (must start with '.')", ext)
		}
	}

	if c.CacheMaxEntries < 0 {
		return fmt.Errorf("cache_max_entries must be non-negative")
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs must be non-negative")
	}
	return nil
}
