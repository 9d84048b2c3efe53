// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package careguide

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/poiesic/careguide/retrieval"
	"github.com/poiesic/careguide/triage"
)

// Config holds the tuned constants and catalog source of an Engine.
type Config struct {
	// Triage holds the confidence scorer constants.
	Triage triage.Params `yaml:"triage"`

	// Retrieval holds the document scorer and cache constants.
	Retrieval retrieval.Params `yaml:"retrieval"`

	// CatalogFile is an optional YAML catalog overriding the built-in tables.
	CatalogFile string `yaml:"catalog_file,omitempty"`

	// CatalogDB is an optional badger directory holding a seeded catalog.
	// Mutually exclusive with CatalogFile.
	CatalogDB string `yaml:"catalog_db,omitempty"`
}

// ConfigOption is a functional option for configuring a Config.
type ConfigOption func(*Config)

// WithTriageParams sets the confidence scorer constants.
func WithTriageParams(p triage.Params) ConfigOption {
	return func(c *Config) {
		c.Triage = p
	}
}

// WithRetrievalParams sets the document scorer constants.
func WithRetrievalParams(p retrieval.Params) ConfigOption {
	return func(c *Config) {
		c.Retrieval = p
	}
}

// WithCatalogFile loads the catalog from a YAML file.
func WithCatalogFile(path string) ConfigOption {
	return func(c *Config) {
		c.CatalogFile = path
	}
}

// WithCatalogDB loads the catalog from a badger directory.
func WithCatalogDB(path string) ConfigOption {
	return func(c *Config) {
		c.CatalogDB = path
	}
}

// DefaultConfig returns a Config using the reference constants and the
// built-in catalog.
func DefaultConfig() *Config {
	return &Config{
		Triage:    triage.DefaultParams(),
		Retrieval: retrieval.DefaultParams(),
	}
}

// NewConfig creates a Config with the default values and applies the provided options.
func NewConfig(opts ...ConfigOption) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// LoadConfig reads a YAML config file. Keys absent from the file keep their
// default values.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(strings.TrimSpace(path)))
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes a YAML config document over the defaults and validates it.
func ParseConfig(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := c.Triage.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Retrieval.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.CatalogFile != "" && c.CatalogDB != "" {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, ErrConflictingCatalog)
	}
	return nil
}
