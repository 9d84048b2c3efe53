package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/poiesic/careguide/core"
)

// File is the YAML layout of a catalog file. Sections left empty fall back
// to the built-in tables.
type File struct {
	Rules      []core.Rule        `yaml:"rules,omitempty"`
	Documents  []core.EvidenceDoc `yaml:"documents,omitempty"`
	Vocabulary *core.Vocabulary   `yaml:"vocabulary,omitempty"`
}

// LoadFile reads a YAML catalog file. Missing sections are filled from the
// built-in defaults, so a file containing only documents still yields the
// default rule table.
func LoadFile(path string) (*Catalog, error) {
	clean := filepath.Clean(strings.TrimSpace(path))
	data, err := os.ReadFile(clean)
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog file: %w", err)
	}

	rules := f.Rules
	if len(rules) == 0 {
		rules = defaultRules
	}
	docs := f.Documents
	if len(docs) == 0 {
		docs = defaultCorpus
	}
	vocab := defaultVocabulary
	if f.Vocabulary != nil {
		vocab = *f.Vocabulary
	}
	return New(rules, docs, vocab)
}

// WriteFile writes c as a YAML catalog file, creating parent directories.
func WriteFile(path string, c *Catalog) error {
	clean := filepath.Clean(strings.TrimSpace(path))
	dir := filepath.Dir(clean)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	vocab := c.Vocabulary()
	data, err := yaml.Marshal(File{
		Rules:      c.Rules(),
		Documents:  c.Documents(),
		Vocabulary: &vocab,
	})
	if err != nil {
		return err
	}
	return os.WriteFile(clean, data, 0o644)
}
