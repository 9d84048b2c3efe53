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

// Package careguide turns free-text symptom descriptions into ranked triage
// candidates and the reference documents that support them.
//
// Confidence values are heuristic ranking signals, not calibrated
// probabilities, and an Engine never makes a diagnosis.
package careguide

import (
	"context"
	"log/slog"

	"github.com/poiesic/careguide/catalog"
	"github.com/poiesic/careguide/core"
	"github.com/poiesic/careguide/retrieval"
	"github.com/poiesic/careguide/triage"
)

// Engine composes a catalog, a triager and a retriever.
// It is safe for concurrent use.
type Engine struct {
	catalog   *catalog.Catalog
	triager   *triage.Triager
	retriever *retrieval.Retriever
	config    Config
	logger    *slog.Logger
}

// EngineOption configures an Engine.
type EngineOption func(*engineOptions)

type engineOptions struct {
	config  *Config
	catalog *catalog.Catalog
	logger  *slog.Logger
}

// WithConfig sets the engine configuration.
// Default is DefaultConfig().
func WithConfig(cfg *Config) EngineOption {
	return func(o *engineOptions) {
		o.config = cfg
	}
}

// WithCatalog sets the catalog directly, bypassing the configured source.
func WithCatalog(c *catalog.Catalog) EngineOption {
	return func(o *engineOptions) {
		o.catalog = c
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) EngineOption {
	return func(o *engineOptions) {
		o.logger = logger
	}
}

// NewEngine builds an Engine. The catalog comes from WithCatalog if given,
// then the configured catalog database, then the configured catalog file,
// and finally the built-in tables.
func NewEngine(opts ...EngineOption) (*Engine, error) {
	options := &engineOptions{
		config: DefaultConfig(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.config == nil {
		options.config = DefaultConfig()
	}
	if options.logger == nil {
		options.logger = slog.Default()
	}

	cfg := options.config
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cat, err := resolveCatalog(options)
	if err != nil {
		return nil, err
	}

	triager, err := triage.New(cat.Rules(),
		triage.WithParams(cfg.Triage),
		triage.WithLogger(options.logger))
	if err != nil {
		return nil, err
	}

	retriever, err := retrieval.New(cat.Documents(), cat.Vocabulary(),
		retrieval.WithParams(cfg.Retrieval),
		retrieval.WithLogger(options.logger))
	if err != nil {
		return nil, err
	}

	options.logger.Debug("engine ready",
		"rules", len(cat.Rules()),
		"documents", len(cat.Documents()),
		"revision", cat.Revision())

	return &Engine{
		catalog:   cat,
		triager:   triager,
		retriever: retriever,
		config:    *cfg,
		logger:    options.logger,
	}, nil
}

func resolveCatalog(o *engineOptions) (*catalog.Catalog, error) {
	switch {
	case o.catalog != nil:
		return o.catalog, nil
	case o.config.CatalogDB != "":
		o.logger.Info("loading catalog database", "path", o.config.CatalogDB)
		return LoadCatalogDB(context.Background(), o.config.CatalogDB)
	case o.config.CatalogFile != "":
		o.logger.Info("loading catalog file", "path", o.config.CatalogFile)
		return catalog.LoadFile(o.config.CatalogFile)
	default:
		return catalog.Default(), nil
	}
}

// Catalog returns the catalog the engine was built from.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Config returns a copy of the engine configuration.
func (e *Engine) Config() Config {
	cfg := e.config
	cfg.Triage = e.triager.Params()
	cfg.Retrieval = e.retriever.Params()
	return cfg
}

// Triage ranks the catalog rules against symptoms.
func (e *Engine) Triage(symptoms string, includeCandidates bool) core.TriageResult {
	return e.triager.Triage(symptoms, includeCandidates)
}

// Retrieve ranks corpus documents for a condition. topK below 1 is treated as 1.
func (e *Engine) Retrieve(conditionKey, symptoms string, evidence core.EvidencePayload, topK int) []core.ScoredDoc {
	return e.retriever.Retrieve(conditionKey, symptoms, evidence, topK)
}

// RetrieveGrouped is Retrieve with the derived query and per-type grouping.
func (e *Engine) RetrieveGrouped(conditionKey, symptoms string, evidence core.EvidencePayload, topK int) retrieval.Grouped {
	return e.retriever.RetrieveGrouped(conditionKey, symptoms, evidence, topK)
}

// Assess triages symptoms and retrieves documents for the best candidate,
// using its condition key and rule evidence. topK of zero or less uses the
// configured default. Candidates are attached only to the triage result.
func (e *Engine) Assess(symptoms string, includeCandidates bool, topK int) core.Assessment {
	if topK <= 0 {
		topK = e.config.Retrieval.DefaultTopK
	}

	result := e.triager.Triage(symptoms, includeCandidates)
	best := result.Best
	grouped := e.retriever.RetrieveGrouped(best.ConditionKey, symptoms, core.EvidenceFromRule(best.Evidence), topK)

	return core.Assessment{
		Triage:    result,
		Query:     grouped.Query,
		Documents: grouped.Documents,
		Grouped:   grouped.Grouped,
	}
}

// CacheStats reports the retrieval cache counters.
func (e *Engine) CacheStats() retrieval.CacheStats {
	return e.retriever.CacheStats()
}
