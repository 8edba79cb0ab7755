package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vistaara/sutradhar/internal/layout"
	"github.com/vistaara/sutradhar/internal/reconcile"
)

// Config holds project-level settings loaded from sutradhar.yml. The tag map
// and the exclusion sets are hand-authored lookup tables; they live here so
// different runs (other organisations, other time windows) can carry
// different mappings without shared package state.
type Config struct {
	RelayDir      string              `yaml:"relayDir,omitempty"`
	GraphSource   string              `yaml:"graphSource,omitempty"`
	Tags          map[string][]string `yaml:"tags,omitempty"`
	Structural    []string            `yaml:"structural,omitempty"`
	ChildPrefixes []string            `yaml:"childPrefixes,omitempty"`
	Layout        layout.Config       `yaml:"layout,omitempty"`
	Verbose       bool                `yaml:"verbose,omitempty"`
}

// Load attempts to read sutradhar.yml or sutradhar.yaml from the given
// directory. Returns a zero-value config (not an error) if no config file
// exists.
func Load(dir string) (*Config, error) {
	for _, name := range []string{"sutradhar.yml", "sutradhar.yaml"} {
		path := filepath.Join(dir, name)
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var cfg Config
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, err
		}
		return &cfg, nil
	}
	return &Config{}, nil
}

// TagMap returns the tag→entity mapping as the reconciler expects it.
func (c *Config) TagMap() reconcile.TagMap {
	return reconcile.TagMap(c.Tags)
}

// Exclusions returns the expected-silent entity sets.
func (c *Config) Exclusions() reconcile.Exclusions {
	return reconcile.Exclusions{
		Structural:    c.Structural,
		ChildPrefixes: c.ChildPrefixes,
	}
}
