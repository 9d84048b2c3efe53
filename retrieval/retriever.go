package retrieval

import (
	"log/slog"

	"github.com/poiesic/careguide/core"
)

// Retriever ranks corpus documents for triage outcomes and memoizes results.
// It is safe for concurrent use; the cache is its only mutable state.
type Retriever struct {
	docs   []indexedDoc
	vocab  core.Vocabulary
	params Params
	cache  *resultCache
	logger *slog.Logger
}

// Option configures a Retriever.
type Option func(*Retriever) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Retriever) error {
		if logger == nil {
			logger = slog.Default()
		}
		r.logger = logger
		return nil
	}
}

// WithParams overrides the scoring constants.
// Default is DefaultParams().
func WithParams(p Params) Option {
	return func(r *Retriever) error {
		if err := p.Validate(); err != nil {
			return err
		}
		r.params = p.clone()
		return nil
	}
}

// Grouped is the result of RetrieveGrouped.
type Grouped struct {
	Query     core.Query                        `json:"query"`
	Documents []core.ScoredDoc                  `json:"documents"`
	Grouped   map[core.DocType][]core.ScoredDoc `json:"grouped"`
}

// New creates a Retriever over the given corpus and vocabulary.
func New(docs []core.EvidenceDoc, vocab core.Vocabulary, opts ...Option) (*Retriever, error) {
	for i := range docs {
		if err := core.ValidateEvidenceDoc(&docs[i]); err != nil {
			return nil, err
		}
	}

	r := &Retriever{
		docs:   indexDocuments(docs),
		vocab:  cloneVocabulary(vocab),
		params: DefaultParams(),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	cache, err := newResultCache(r.params.CacheSize)
	if err != nil {
		return nil, err
	}
	r.cache = cache

	return r, nil
}

// Params returns a copy of the scoring constants in use.
func (r *Retriever) Params() Params {
	return r.params.clone()
}

// Retrieve returns up to topK documents for the condition, ranked by score.
// topK below 1 is treated as 1. Results for identical inputs are served from
// the cache.
func (r *Retriever) Retrieve(conditionKey, symptoms string, evidence core.EvidencePayload, topK int) []core.ScoredDoc {
	return r.RetrieveWithMonitor(conditionKey, symptoms, evidence, topK, nil)
}

// RetrieveWithMonitor is Retrieve with callbacks at each stage.
func (r *Retriever) RetrieveWithMonitor(conditionKey, symptoms string, evidence core.EvidencePayload, topK int, monitor Monitor) []core.ScoredDoc {
	if monitor == nil {
		monitor = &noopMonitor{}
	}
	topK = max(topK, 1)
	monitor.Start(conditionKey, symptoms, topK)

	key := cacheKey{
		conditionKey: conditionKey,
		symptoms:     symptoms,
		fingerprint:  Fingerprint(evidence),
		topK:         topK,
	}

	docs, hit := r.cache.getOrCompute(key, func() []core.ScoredDoc {
		query := BuildQuery(conditionKey, symptoms, evidence, r.vocab)
		monitor.QueryBuilt(query)
		scored := scoreIndexed(query, r.docs, topK, r.params)
		for _, d := range scored {
			monitor.DocumentScored(d)
		}
		return scored
	})

	if hit {
		monitor.CacheHit(key.fingerprint)
		r.logger.Debug("retrieval cache hit", "condition", conditionKey, "top_k", topK)
	} else {
		monitor.CacheMiss(key.fingerprint)
		r.logger.Debug("retrieval cache miss", "condition", conditionKey, "top_k", topK, "results", len(docs))
	}

	monitor.Finish(docs)
	return docs
}

// RetrieveGrouped returns the derived query, the ranked documents and the
// documents grouped by type.
func (r *Retriever) RetrieveGrouped(conditionKey, symptoms string, evidence core.EvidencePayload, topK int) Grouped {
	docs := r.Retrieve(conditionKey, symptoms, evidence, topK)
	return Grouped{
		Query:     BuildQuery(conditionKey, symptoms, evidence, r.vocab),
		Documents: docs,
		Grouped:   GroupByType(docs),
	}
}

// CacheStats reports cache hits, misses and occupancy.
func (r *Retriever) CacheStats() CacheStats {
	return r.cache.stats()
}

// PurgeCache drops every cached result and resets the counters.
func (r *Retriever) PurgeCache() {
	r.cache.purge()
}

func cloneVocabulary(v core.Vocabulary) core.Vocabulary {
	out := core.Vocabulary{
		Synonyms: make(map[string][]string, len(v.Synonyms)),
		RedFlags: make([]core.RedFlagCategory, len(v.RedFlags)),
	}
	for k, syns := range v.Synonyms {
		out.Synonyms[k] = append([]string(nil), syns...)
	}
	for i, cat := range v.RedFlags {
		out.RedFlags[i] = core.RedFlagCategory{Name: cat.Name, Phrases: append([]string(nil), cat.Phrases...)}
	}
	return out
}
