package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	// Missing file
	if _, err := Load(path); err == nil {
		t.Fatal("Load(missing) should error")
	}

	content := `
limit: 100
levels: [error, "falha da auditoria"]
ids: [4624, 4625]
search: logon
lookup:
  disabled: true
  base_url: http://localhost:8080
  timeout_seconds: 3
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Limit != 100 {
		t.Errorf("Limit = %d", cfg.Limit)
	}
	if len(cfg.Levels) != 2 || cfg.Levels[1] != "falha da auditoria" {
		t.Errorf("Levels = %v", cfg.Levels)
	}
	if len(cfg.IDs) != 2 || cfg.IDs[0] != 4624 {
		t.Errorf("IDs = %v", cfg.IDs)
	}
	if cfg.Search != "logon" {
		t.Errorf("Search = %q", cfg.Search)
	}
	if !cfg.Lookup.Disabled || cfg.Lookup.BaseURL != "http://localhost:8080" {
		t.Errorf("Lookup = %+v", cfg.Lookup)
	}
	if cfg.LookupTimeout().Seconds() != 3 {
		t.Errorf("LookupTimeout = %v", cfg.LookupTimeout())
	}
}

func TestLoadEmpty(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "empty.yaml")
	if err := os.WriteFile(path, []byte(""), 0644); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Limit != 50 {
		t.Errorf("empty config should keep default limit, got %d", cfg.Limit)
	}
	if cfg.Lookup.TimeoutSeconds != 10 {
		t.Errorf("empty config should keep default timeout, got %d", cfg.Lookup.TimeoutSeconds)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(path, []byte("levels:\n  - [broken"), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load(invalid YAML) should error")
	}
}

func TestValidate(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
	c.Levels = []string{"verbose"}
	if err := c.Validate(); err == nil {
		t.Error("unknown level should be rejected")
	}
	c = Default()
	c.Limit = 0
	if err := c.Validate(); err == nil {
		t.Error("non-positive limit should be rejected")
	}
}
