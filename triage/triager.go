package triage

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/poiesic/careguide/core"
	"github.com/poiesic/careguide/textnorm"
)

// Triager ranks triage rules against free-text symptom descriptions.
// A Triager is immutable after construction and safe for concurrent use.
type Triager struct {
	rules  []compiledRule
	params Params
	logger *slog.Logger
}

// Option configures a Triager.
type Option func(*Triager) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(t *Triager) error {
		if logger == nil {
			logger = slog.Default()
		}
		t.logger = logger
		return nil
	}
}

// WithParams overrides the scorer constants.
func WithParams(p Params) Option {
	return func(t *Triager) error {
		if err := p.Validate(); err != nil {
			return err
		}
		t.params = p
		return nil
	}
}

// New creates a Triager over the given rule catalog. Rules are validated and
// copied; the caller's slice may be reused afterwards.
func New(rules []core.Rule, opts ...Option) (*Triager, error) {
	if len(rules) == 0 {
		return nil, ErrNoRules
	}

	t := &Triager{
		params: DefaultParams(),
		logger: slog.Default(),
	}

	seen := make(map[string]struct{}, len(rules))
	t.rules = make([]compiledRule, 0, len(rules))
	for i := range rules {
		if err := core.ValidateRule(&rules[i]); err != nil {
			return nil, err
		}
		if _, dup := seen[rules[i].ID]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateRule, rules[i].ID)
		}
		seen[rules[i].ID] = struct{}{}
		t.rules = append(t.rules, compileRule(cloneRule(rules[i])))
	}

	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// Params returns the scorer constants in use.
func (t *Triager) Params() Params {
	return t.params
}

// Triage evaluates every rule against symptoms and returns the best
// candidate. When includeCandidates is set the full ordered list is attached
// to the result. Triage never fails: empty input and input matching no rule
// yield fixed terminal results.
func (t *Triager) Triage(symptoms string, includeCandidates bool) core.TriageResult {
	text := textnorm.Normalize(symptoms)
	if text == "" {
		t.logger.Debug("triage: empty input")
		return t.terminal(t.emptyInputCandidate(), includeCandidates)
	}

	candidates := make([]core.Candidate, 0, len(t.rules))
	for i := range t.rules {
		cr := &t.rules[i]
		confidence, evidence := scoreCompiled(text, cr, t.params)
		if confidence <= 0 {
			continue
		}
		candidates = append(candidates, t.candidateFor(cr.rule, confidence, evidence))
	}

	if len(candidates) == 0 {
		t.logger.Debug("triage: no rule gate matched", "rules", len(t.rules))
		return t.terminal(t.fallbackCandidate(), includeCandidates)
	}

	RankCandidates(candidates)

	t.logger.Debug("triage: ranked candidates",
		"matched", len(candidates),
		"best_rule", candidates[0].RuleID,
		"best_confidence", candidates[0].Confidence)

	result := core.TriageResult{Best: candidates[0]}
	if includeCandidates {
		result.Candidates = candidates
	}
	return result
}

// RankCandidates sorts candidates in place, best first, by confidence, then
// emergency status, then rule weight. Emergency rules win ties so that
// urgent patterns are never silently pushed down.
func RankCandidates(candidates []core.Candidate) {
	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Confidence != b.Confidence {
			return a.Confidence > b.Confidence
		}
		if a.Emergency != b.Emergency {
			return a.Emergency
		}
		return a.Evidence.Weight > b.Evidence.Weight
	})
}

func (t *Triager) terminal(c core.Candidate, includeCandidates bool) core.TriageResult {
	result := core.TriageResult{Best: c}
	if includeCandidates {
		result.Candidates = []core.Candidate{}
	}
	return result
}

func (t *Triager) candidateFor(rule core.Rule, confidence float64, evidence core.RuleEvidence) core.Candidate {
	return core.Candidate{
		ConditionKey:        rule.ConditionKey,
		DisplayLabel:        rule.DisplayLabel,
		SuspectedConditions: []string{fmt.Sprintf("%s과(와) 유사한 양상이 의심됩니다", rule.DisplayLabel)},
		Departments:         append([]string{}, rule.Departments...),
		Emergency:           rule.Emergency,
		Urgency:             rule.Urgency,
		ActionReason:        rule.ActionReason,
		NextActions:         append([]string{}, rule.NextActions...),
		Confidence:          confidence,
		ConfidenceLabel:     t.label(confidence),
		RuleID:              rule.ID,
		Evidence:            evidence,
	}
}

func (t *Triager) label(confidence float64) core.ConfidenceLabel {
	return core.LabelForConfidence(confidence, t.params.MediumThreshold, t.params.HighThreshold)
}

func cloneRule(r core.Rule) core.Rule {
	r.GateKeywords = append([]string(nil), r.GateKeywords...)
	r.SupportKeywords = append([]string(nil), r.SupportKeywords...)
	r.Departments = append([]string(nil), r.Departments...)
	r.NextActions = append([]string(nil), r.NextActions...)
	return r
}
