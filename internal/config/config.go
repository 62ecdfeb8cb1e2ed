package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wh0isandrew/WinEventsOrganizer/internal/pipeline"
	"github.com/wh0isandrew/WinEventsOrganizer/internal/types"
)

// Config holds file-based defaults for weorg. Flags override every field.
type Config struct {
	Limit  int          `yaml:"limit"`
	Levels []string     `yaml:"levels"`
	IDs    []int        `yaml:"ids"`
	Search string       `yaml:"search"`
	Lookup LookupConfig `yaml:"lookup"`
}

// LookupConfig configures the online Event-ID lookup collaborator.
type LookupConfig struct {
	Disabled       bool   `yaml:"disabled"`
	BaseURL        string `yaml:"base_url"`        // default: public encyclopedia
	TimeoutSeconds int    `yaml:"timeout_seconds"` // default: 10
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Limit: pipeline.DefaultLimit,
		Lookup: LookupConfig{
			TimeoutSeconds: 10,
		},
	}
}

// Load reads config from a YAML file on top of the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, err
	}
	return c, c.Validate()
}

// Validate rejects out-of-range fields and unknown severity names.
func (c *Config) Validate() error {
	if c.Limit <= 0 {
		return fmt.Errorf("limit must be positive, got %d", c.Limit)
	}
	for _, l := range c.Levels {
		if !types.ValidLevel(l) {
			return fmt.Errorf("unknown level %q", l)
		}
	}
	if c.Lookup.TimeoutSeconds < 0 {
		return fmt.Errorf("lookup timeout must not be negative, got %d", c.Lookup.TimeoutSeconds)
	}
	return nil
}

// LookupTimeout returns the lookup timeout as a duration.
func (c *Config) LookupTimeout() time.Duration {
	return time.Duration(c.Lookup.TimeoutSeconds) * time.Second
}
