package retrieval

import (
	"strings"

	"github.com/poiesic/careguide/core"
	"github.com/poiesic/careguide/textnorm"
)

// Evidence mapping keys whose keyword lists feed the query.
const (
	gateMatchedKey    = "gate_matched"
	supportMatchedKey = "support_matched"
)

// BuildQuery derives the search query for a triage outcome. Terms come from
// the condition key, its synonyms, the symptom text and the matched rule
// keywords, in that order, deduplicated on first occurrence. Red flags are
// scanned across every category regardless of condition.
func BuildQuery(conditionKey, symptoms string, evidence core.EvidencePayload, vocab core.Vocabulary) core.Query {
	terms := make([]string, 0, 32)
	terms = append(terms, textnorm.Tokens(conditionKey)...)
	for _, syn := range vocab.Synonyms[conditionKey] {
		terms = append(terms, textnorm.Tokens(syn)...)
	}
	terms = append(terms, textnorm.Tokens(symptoms)...)
	for _, kw := range evidence.StringList(gateMatchedKey) {
		terms = append(terms, textnorm.Tokens(kw)...)
	}
	for _, kw := range evidence.StringList(supportMatchedKey) {
		terms = append(terms, textnorm.Tokens(kw)...)
	}

	return core.Query{
		ConditionKey: conditionKey,
		Terms:        textnorm.Dedupe(terms),
		RedFlags:     DetectRedFlags(symptoms, vocab),
	}
}

// DetectRedFlags returns the red-flag phrases contained in the symptom text,
// deduplicated, in table order.
func DetectRedFlags(symptoms string, vocab core.Vocabulary) []string {
	text := textnorm.Normalize(symptoms)
	flags := make([]string, 0)
	if text == "" {
		return flags
	}
	for _, cat := range vocab.RedFlags {
		for _, phrase := range cat.Phrases {
			p := textnorm.Normalize(phrase)
			if p != "" && strings.Contains(text, p) {
				flags = append(flags, phrase)
			}
		}
	}
	return textnorm.Dedupe(flags)
}
