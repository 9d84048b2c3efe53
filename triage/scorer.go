package triage

import (
	"math"
	"strings"

	"github.com/poiesic/careguide/core"
	"github.com/poiesic/careguide/textnorm"
)

// keyword pairs the configured spelling (reported in evidence) with the
// normalized form used for matching.
type keyword struct {
	raw  string
	norm string
}

type compiledRule struct {
	rule    core.Rule
	gate    []keyword
	support []keyword
}

func compileRule(rule core.Rule) compiledRule {
	return compiledRule{
		rule:    rule,
		gate:    compileKeywords(rule.GateKeywords),
		support: compileKeywords(rule.SupportKeywords),
	}
}

func compileKeywords(words []string) []keyword {
	out := make([]keyword, 0, len(words))
	for _, w := range words {
		out = append(out, keyword{raw: w, norm: textnorm.Normalize(w)})
	}
	return out
}

// ScoreRule evaluates one rule against already-normalized symptom text and
// returns the confidence together with its audit trail.
//
// A rule whose gate is not satisfied short-circuits to confidence 0 with
// every support keyword reported missing.
func ScoreRule(normalized string, rule core.Rule, p Params) (float64, core.RuleEvidence) {
	cr := compileRule(rule)
	return scoreCompiled(normalized, &cr, p)
}

func scoreCompiled(text string, cr *compiledRule, p Params) (float64, core.RuleEvidence) {
	gateMatched := matchKeywords(text, cr.gate)
	if len(gateMatched) == 0 {
		return 0, core.RuleEvidence{
			GateOK:         false,
			GateMatched:    []string{},
			SupportMatched: []string{},
			SupportMissing: append([]string{}, cr.rule.SupportKeywords...),
			SupportRatio:   0,
			Weight:         cr.rule.Weight,
		}
	}

	supportMatched := make([]string, 0, len(cr.support))
	supportMissing := make([]string, 0, len(cr.support))
	for _, kw := range cr.support {
		if containsKeyword(text, kw) {
			supportMatched = append(supportMatched, kw.raw)
		} else {
			supportMissing = append(supportMissing, kw.raw)
		}
	}

	denom := max(len(cr.support), 1)
	ratio := float64(len(supportMatched)) / float64(denom)

	base := p.BaseConfidence + p.SupportSpan*ratio
	confidence := round2(clamp01(base * cr.rule.Weight))

	return confidence, core.RuleEvidence{
		GateOK:         true,
		GateMatched:    gateMatched,
		SupportMatched: supportMatched,
		SupportMissing: supportMissing,
		SupportRatio:   round2(ratio),
		Weight:         cr.rule.Weight,
	}
}

func matchKeywords(text string, words []keyword) []string {
	matched := make([]string, 0, len(words))
	for _, kw := range words {
		if containsKeyword(text, kw) {
			matched = append(matched, kw.raw)
		}
	}
	return matched
}

func containsKeyword(text string, kw keyword) bool {
	return kw.norm != "" && strings.Contains(text, kw.norm)
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
