// Package cliconfig loads an optional .quick-lint-js.yaml file that extends
// the scope analyzer's global-variable table with project-specific names
// (spec.md §8's "external collaborator: project configuration"), the way
// the corpus loads YAML-based tool config with gopkg.in/yaml.v3 rather than
// a hand-rolled parser.
package cliconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vegerot/quick-lint-js/scope"
)

// Config is the shape of a .quick-lint-js.yaml file.
type Config struct {
	Globals    map[string]bool `yaml:"global-groups,omitempty"`
	ExtraGlobals []GlobalEntry `yaml:"globals,omitempty"`
}

// GlobalEntry describes one extra global identifier, mirroring
// quick-lint-js's own --config-file schema (original_source/docs/config.md):
// a name plus whether it may be assigned to.
type GlobalEntry struct {
	Name      string `yaml:"name"`
	Writable  bool   `yaml:"writable"`
	Shadowable bool  `yaml:"shadowable"`
}

// Load reads and parses the YAML file at path. A missing or unreadable file
// is returned as an error, like a parse failure.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &cfg, nil
}

// ApplyTo clones base and layers this config's extra globals on top of it,
// leaving base untouched so the same defaults can seed multiple files
// concurrently (cmd/jslint runs one Analyzer per file on a worker pool).
func (c *Config) ApplyTo(base *scope.GlobalVariables) *scope.GlobalVariables {
	g := base.Clone()
	for _, entry := range c.ExtraGlobals {
		if entry.Writable {
			g.Writable[entry.Name] = true
			delete(g.NonWritable, entry.Name)
		} else {
			g.NonWritable[entry.Name] = true
			delete(g.Writable, entry.Name)
		}
	}
	return g
}
