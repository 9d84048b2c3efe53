package core

import (
	"encoding/binary"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// UrgencyLevel is the categorical triage urgency attached to a rule.
type UrgencyLevel string

const (
	UrgencyEmergency UrgencyLevel = "emergency"
	UrgencyUrgent    UrgencyLevel = "urgent"
	UrgencyRoutine   UrgencyLevel = "routine"
	UrgencyObserve   UrgencyLevel = "observe"
)

// ConfidenceLabel is the coarse, user-facing bucket of a confidence score.
type ConfidenceLabel string

const (
	ConfidenceLow    ConfidenceLabel = "낮음"
	ConfidenceMedium ConfidenceLabel = "중간"
	ConfidenceHigh   ConfidenceLabel = "높음"
)

// Rule is a single triage rule. Rules are static configuration: they are
// defined once at process start and never mutated.
//
// Weight is a clinical-priority factor in [0,1], not a probability.
type Rule struct {
	ID              string       `yaml:"id" json:"id"`
	ConditionKey    string       `yaml:"condition_key" json:"condition_key"`
	DisplayLabel    string       `yaml:"display_label" json:"display_label"`
	GateKeywords    []string     `yaml:"gate_keywords" json:"gate_keywords"`
	SupportKeywords []string     `yaml:"support_keywords" json:"support_keywords"`
	Departments     []string     `yaml:"departments" json:"departments"`
	Emergency       bool         `yaml:"emergency" json:"emergency"`
	Urgency         UrgencyLevel `yaml:"urgency_level" json:"urgency_level"`
	Weight          float64      `yaml:"weight" json:"weight"`
	ActionReason    string       `yaml:"action_reason" json:"action_reason"`
	NextActions     []string     `yaml:"next_actions" json:"next_actions"`
}

// RuleEvidence is the audit trail produced when a rule is evaluated against
// symptom text. For the fixed terminal states only Reason is set.
type RuleEvidence struct {
	GateOK         bool     `json:"gate_ok"`
	GateMatched    []string `json:"gate_matched"`
	SupportMatched []string `json:"support_matched"`
	SupportMissing []string `json:"support_missing"`
	SupportRatio   float64  `json:"support_ratio"`
	Weight         float64  `json:"weight"`
	Reason         string   `json:"reason,omitempty"`
}

// AsMapping converts the evidence into the flat mapping form consumed by
// retrieval fingerprinting and query building.
func (e RuleEvidence) AsMapping() map[string]any {
	if e.Reason != "" {
		return map[string]any{"reason": e.Reason}
	}
	return map[string]any{
		"gate_ok":         e.GateOK,
		"gate_matched":    cloneStrings(e.GateMatched),
		"support_matched": cloneStrings(e.SupportMatched),
		"support_missing": cloneStrings(e.SupportMissing),
		"support_ratio":   e.SupportRatio,
		"weight":          e.Weight,
	}
}

// Candidate is one ranked triage outcome. Candidates never hold other
// candidates; the full ordered list lives on TriageResult.
type Candidate struct {
	ConditionKey        string          `json:"condition_key"`
	DisplayLabel        string          `json:"display_label"`
	SuspectedConditions []string        `json:"suspected_conditions"`
	Departments         []string        `json:"recommended_departments"`
	Emergency           bool            `json:"emergency"`
	Urgency             UrgencyLevel    `json:"urgency_level"`
	ActionReason        string          `json:"action_reason"`
	NextActions         []string        `json:"next_actions"`
	Confidence          float64         `json:"confidence"`
	ConfidenceLabel     ConfidenceLabel `json:"confidence_label"`
	RuleID              string          `json:"rule_id"`
	Evidence            RuleEvidence    `json:"evidence"`
}

// TriageResult holds the best candidate and, when requested, the full
// ordered candidate list (best first).
type TriageResult struct {
	Best       Candidate   `json:"best"`
	Candidates []Candidate `json:"candidates,omitempty"`
}

// DocType categorizes a reference document and drives its scoring weight.
type DocType string

const (
	DocTypeGuideline  DocType = "guideline"
	DocTypeSystematic DocType = "systematic"
	DocTypeReview     DocType = "review"
	DocTypeClinical   DocType = "clinical"
	DocTypeEmergency  DocType = "emergency"
)

// EvidenceDoc is a reference document in the static evidence corpus.
type EvidenceDoc struct {
	ID           string   `yaml:"doc_id" json:"doc_id"`
	Title        string   `yaml:"title" json:"title"`
	Source       string   `yaml:"source" json:"source"`
	Type         DocType  `yaml:"doc_type" json:"doc_type"`
	Year         int      `yaml:"year" json:"year"`
	Organization string   `yaml:"organization" json:"organization"`
	Abstract     string   `yaml:"abstract" json:"abstract"`
	Conditions   []string `yaml:"conditions" json:"conditions"`
	Keywords     []string `yaml:"keywords" json:"keywords"`
	SearchQuery  string   `yaml:"search_query,omitempty" json:"search_query,omitempty"`
	URL          string   `yaml:"url,omitempty" json:"url,omitempty"`
}

// HasCondition reports whether the document is associated with conditionKey.
func (d *EvidenceDoc) HasCondition(conditionKey string) bool {
	for _, c := range d.Conditions {
		if c == conditionKey {
			return true
		}
	}
	return false
}

// Query is the ephemeral search request derived for one retrieval call.
type Query struct {
	ConditionKey string   `json:"condition_key"`
	Terms        []string `json:"terms"`
	RedFlags     []string `json:"red_flags"`
}

// RetrievalEvidence explains why a document was ranked where it was.
type RetrievalEvidence struct {
	Score           float64  `json:"score"`
	ConditionMatch  bool     `json:"condition_match"`
	DocType         DocType  `json:"doc_type"`
	TypeWeight      float64  `json:"type_weight"`
	RecencyBoost    float64  `json:"recency_boost"`
	RedFlags        []string `json:"red_flags"`
	RedFlagBoost    float64  `json:"red_flag_boost"`
	MatchedKeywords []string `json:"matched_keywords"`
	MatchedTitle    []string `json:"matched_title"`
	MatchedBody     []string `json:"matched_body"`
}

// ScoredDoc is a corpus document together with its retrieval evidence.
type ScoredDoc struct {
	EvidenceDoc
	Evidence RetrievalEvidence `json:"retrieval_evidence"`
}

// Assessment combines a triage result with the supporting documents
// retrieved for its best candidate.
type Assessment struct {
	Triage    TriageResult            `json:"triage"`
	Query     Query                   `json:"query"`
	Documents []ScoredDoc             `json:"documents"`
	Grouped   map[DocType][]ScoredDoc `json:"grouped"`
}

// RedFlagCategory is a named group of phrases that signal a potential emergency.
type RedFlagCategory struct {
	Name    string   `yaml:"name" json:"name"`
	Phrases []string `yaml:"phrases" json:"phrases"`
}

// Vocabulary holds the static lookup tables used by query building.
type Vocabulary struct {
	Synonyms map[string][]string `yaml:"synonyms" json:"synonyms"`
	RedFlags []RedFlagCategory   `yaml:"red_flags" json:"red_flags"`
}

func cloneStrings(s []string) []string {
	if s == nil {
		return []string{}
	}
	out := make([]string, len(s))
	copy(out, s)
	return out
}
