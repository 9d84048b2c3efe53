package triage

import "fmt"

// Params holds the tuned constants of the confidence scorer. Their values are
// hand-calibrated; DefaultParams reproduces the reference behavior.
type Params struct {
	// BaseConfidence is the share of the score granted once the gate passes.
	// Default: 0.35
	BaseConfidence float64 `yaml:"base_confidence"`

	// SupportSpan is the share scaled by the support keyword ratio.
	// Default: 0.65
	SupportSpan float64 `yaml:"support_span"`

	// MediumThreshold is the inclusive lower bound of the "중간" label.
	// Default: 0.50
	MediumThreshold float64 `yaml:"medium_threshold"`

	// HighThreshold is the inclusive lower bound of the "높음" label.
	// Default: 0.75
	HighThreshold float64 `yaml:"high_threshold"`
}

// DefaultParams returns the reference scorer constants.
func DefaultParams() Params {
	return Params{
		BaseConfidence:  0.35,
		SupportSpan:     0.65,
		MediumThreshold: 0.50,
		HighThreshold:   0.75,
	}
}

// Validate checks that the parameters describe a usable scorer.
func (p Params) Validate() error {
	if p.BaseConfidence < 0 || p.SupportSpan < 0 {
		return fmt.Errorf("%w: base confidence and support span must be non-negative", ErrInvalidParams)
	}
	if p.MediumThreshold < 0 || p.HighThreshold > 1 || p.MediumThreshold > p.HighThreshold {
		return fmt.Errorf("%w: label thresholds must satisfy 0 <= medium <= high <= 1", ErrInvalidParams)
	}
	return nil
}
