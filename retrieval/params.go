package retrieval

import (
	"fmt"

	"github.com/poiesic/careguide/core"
)

// Params holds the tuned scoring constants. The defaults reproduce the
// reference ranking; every value can be overridden from configuration.
type Params struct {
	// ConditionBonus is added when the query condition is one of the
	// document's conditions.
	// Default: 2.0
	ConditionBonus float64 `yaml:"condition_bonus"`

	// KeywordWeight scores each query term found in the document keywords.
	// Default: 1.15
	KeywordWeight float64 `yaml:"keyword_weight"`

	// TitleWeight scores each query term found among the title tokens.
	// Default: 0.95
	TitleWeight float64 `yaml:"title_weight"`

	// BodyWeight scores each query term found among the abstract tokens.
	// Default: 0.55
	BodyWeight float64 `yaml:"body_weight"`

	// DocTypeWeights multiplies the relevance score by document type.
	DocTypeWeights map[core.DocType]float64 `yaml:"doc_type_weights"`

	// UnknownTypeWeight applies to types missing from DocTypeWeights.
	// Default: 1.0
	UnknownTypeWeight float64 `yaml:"unknown_type_weight"`

	// RecencyCeiling is the boost for a document from ReferenceYear.
	// Default: 0.55
	RecencyCeiling float64 `yaml:"recency_ceiling"`

	// RecencyDecay is subtracted from the boost per year of age.
	// Default: 0.06
	RecencyDecay float64 `yaml:"recency_decay"`

	// ReferenceYear is treated as "now" when computing document age.
	// Default: 2025
	ReferenceYear int `yaml:"reference_year"`

	// EmergencyRedFlagBoost is added to emergency documents when the query
	// carries red flags.
	// Default: 1.2
	EmergencyRedFlagBoost float64 `yaml:"emergency_red_flag_boost"`

	// SupportiveRedFlagBoost is added to guideline and clinical documents
	// when the query carries red flags.
	// Default: 0.25
	SupportiveRedFlagBoost float64 `yaml:"supportive_red_flag_boost"`

	// CacheSize is the maximum number of memoized retrieval results.
	// Default: 256
	CacheSize int `yaml:"cache_size"`

	// DefaultTopK is the result count used when callers do not choose one.
	// Default: 5
	DefaultTopK int `yaml:"default_top_k"`
}

// DefaultParams returns the reference scoring constants.
func DefaultParams() Params {
	return Params{
		ConditionBonus: 2.0,
		KeywordWeight:  1.15,
		TitleWeight:    0.95,
		BodyWeight:     0.55,
		DocTypeWeights: map[core.DocType]float64{
			core.DocTypeGuideline:  1.40,
			core.DocTypeSystematic: 1.30,
			core.DocTypeReview:     1.15,
			core.DocTypeEmergency:  1.25,
			core.DocTypeClinical:   1.05,
		},
		UnknownTypeWeight:      1.0,
		RecencyCeiling:         0.55,
		RecencyDecay:           0.06,
		ReferenceYear:          2025,
		EmergencyRedFlagBoost:  1.2,
		SupportiveRedFlagBoost: 0.25,
		CacheSize:              256,
		DefaultTopK:            5,
	}
}

// Validate checks that the parameters can drive a Retriever.
func (p Params) Validate() error {
	if p.CacheSize <= 0 {
		return fmt.Errorf("%w: cache size must be positive (got %d)", ErrInvalidParams, p.CacheSize)
	}
	if p.DefaultTopK <= 0 {
		return fmt.Errorf("%w: default top_k must be positive (got %d)", ErrInvalidParams, p.DefaultTopK)
	}
	if p.RecencyDecay < 0 {
		return fmt.Errorf("%w: recency decay must be non-negative", ErrInvalidParams)
	}
	for t, w := range p.DocTypeWeights {
		if w < 0 {
			return fmt.Errorf("%w: weight for %q must be non-negative", ErrInvalidParams, t)
		}
	}
	return nil
}

// TypeWeight returns the multiplier for a document type.
func (p Params) TypeWeight(t core.DocType) float64 {
	if w, ok := p.DocTypeWeights[t]; ok {
		return w
	}
	return p.UnknownTypeWeight
}

func (p Params) clone() Params {
	weights := make(map[core.DocType]float64, len(p.DocTypeWeights))
	for t, w := range p.DocTypeWeights {
		weights[t] = w
	}
	p.DocTypeWeights = weights
	return p
}
