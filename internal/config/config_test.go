package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if cfg.Language != "auto" {
		t.Errorf("Language = %q", cfg.Language)
	}
	if !cfg.CacheEnabled {
		t.Error("cache should default to enabled")
	}
	if len(cfg.Extensions) != 1 || cfg.Extensions[0] != ".conf" {
		t.Errorf("Extensions = %v", cfg.Extensions)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `language: zh
in_place: true
extensions:
  - .conf
  - .cfg
jobs: 4
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if cfg.Language != "zh" || !cfg.InPlace || cfg.Jobs != 4 {
		t.Errorf("unexpected config: %+v", cfg)
	}
	if len(cfg.Extensions) != 2 {
		t.Errorf("Extensions = %v", cfg.Extensions)
	}
	// Unset fields keep their defaults.
	if !cfg.CacheEnabled {
		t.Error("CacheEnabled default lost")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("BIRDAT_LANGUAGE", "en")
	t.Setenv("BIRDAT_JOBS", "2")
	t.Setenv("BIRDAT_CACHE_ENABLED", "false")
	t.Setenv("BIRDAT_EXTENSIONS", ".conf, .bird")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Language != "en" {
		t.Errorf("Language = %q", cfg.Language)
	}
	if cfg.Jobs != 2 {
		t.Errorf("Jobs = %d", cfg.Jobs)
	}
	if cfg.CacheEnabled {
		t.Error("CacheEnabled not overridden")
	}
	if len(cfg.Extensions) != 2 || cfg.Extensions[1] != ".bird" {
		t.Errorf("Extensions = %v", cfg.Extensions)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"bad language", func(c *Config) { c.Language = "fr" }},
		{"empty extensions", func(c *Config) { c.Extensions = nil }},
		{"extension without dot", func(c *Config) { c.Extensions = []string{"conf"} }},
		{"negative jobs", func(c *Config) { c.Jobs = -1 }},
		{"negative cache bound", func(c *Config) { c.CacheMaxEntries = -1 }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.yaml")

	cfg := DefaultConfig()
	cfg.Language = "zh"
	cfg.Jobs = 8
	if err := cfg.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if loaded.Language != "zh" || loaded.Jobs != 8 {
		t.Errorf("round trip lost values: %+v", loaded)
	}
}

func TestEffectiveJobs(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Jobs = 3
	if got := cfg.EffectiveJobs(); got != 3 {
		t.Errorf("EffectiveJobs = %d", got)
	}
	cfg.Jobs = 0
	if got := cfg.EffectiveJobs(); got < 1 {
		t.Errorf("EffectiveJobs = %d", got)
	}
}
