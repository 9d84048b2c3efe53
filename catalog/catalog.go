// Package catalog holds the static triage configuration: the rule table,
// the evidence corpus, and the synonym and red-flag vocabulary.
//
// A Catalog is immutable once built. Accessors return copies so callers can
// never mutate the process-wide tables.
package catalog

import (
	"fmt"
	"strings"

	"github.com/poiesic/careguide/core"
)

// Catalog is an immutable set of rules, documents and vocabulary.
type Catalog struct {
	rules []core.Rule
	docs  []core.EvidenceDoc
	vocab core.Vocabulary
}

// New validates and copies the given tables into a Catalog.
func New(rules []core.Rule, docs []core.EvidenceDoc, vocab core.Vocabulary) (*Catalog, error) {
	if len(rules) == 0 {
		return nil, ErrNoRules
	}

	ruleIDs := make(map[string]struct{}, len(rules))
	for i := range rules {
		if err := core.ValidateRule(&rules[i]); err != nil {
			return nil, err
		}
		if _, dup := ruleIDs[rules[i].ID]; dup {
			return nil, fmt.Errorf("%w: rule %s", ErrDuplicateID, rules[i].ID)
		}
		ruleIDs[rules[i].ID] = struct{}{}
	}

	docIDs := make(map[string]struct{}, len(docs))
	for i := range docs {
		if err := core.ValidateEvidenceDoc(&docs[i]); err != nil {
			return nil, err
		}
		if _, dup := docIDs[docs[i].ID]; dup {
			return nil, fmt.Errorf("%w: document %s", ErrDuplicateID, docs[i].ID)
		}
		docIDs[docs[i].ID] = struct{}{}
	}

	return &Catalog{
		rules: cloneRules(rules),
		docs:  cloneDocs(docs),
		vocab: cloneVocabulary(vocab),
	}, nil
}

// Default returns the built-in catalog.
func Default() *Catalog {
	c, err := New(defaultRules, defaultCorpus, defaultVocabulary)
	if err != nil {
		panic(fmt.Sprintf("catalog: built-in tables are invalid: %v", err))
	}
	return c
}

// DefaultVocabulary returns a copy of the built-in synonym and red-flag tables.
func DefaultVocabulary() core.Vocabulary {
	return cloneVocabulary(defaultVocabulary)
}

// Rules returns a copy of the rule table in evaluation order.
func (c *Catalog) Rules() []core.Rule {
	return cloneRules(c.rules)
}

// Documents returns a copy of the evidence corpus in corpus order.
func (c *Catalog) Documents() []core.EvidenceDoc {
	return cloneDocs(c.docs)
}

// Vocabulary returns a copy of the synonym and red-flag tables.
func (c *Catalog) Vocabulary() core.Vocabulary {
	return cloneVocabulary(c.vocab)
}

// ConditionKeys returns the distinct condition keys of the rule table in
// first-seen order.
func (c *Catalog) ConditionKeys() []string {
	seen := make(map[string]struct{}, len(c.rules))
	keys := make([]string, 0, len(c.rules))
	for _, r := range c.rules {
		if _, ok := seen[r.ConditionKey]; ok {
			continue
		}
		seen[r.ConditionKey] = struct{}{}
		keys = append(keys, r.ConditionKey)
	}
	return keys
}

// Revision returns a content ID identifying this exact set of rule and
// document identifiers, in order.
func (c *Catalog) Revision() core.ID {
	var b strings.Builder
	for _, r := range c.rules {
		b.WriteString("rule:")
		b.WriteString(r.ID)
		b.WriteByte('\n')
	}
	for _, d := range c.docs {
		b.WriteString("doc:")
		b.WriteString(d.ID)
		b.WriteByte('\n')
	}
	return core.IDFromContent(b.String())
}

func cloneRules(src []core.Rule) []core.Rule {
	out := make([]core.Rule, len(src))
	for i, r := range src {
		r.GateKeywords = cloneStrings(r.GateKeywords)
		r.SupportKeywords = cloneStrings(r.SupportKeywords)
		r.Departments = cloneStrings(r.Departments)
		r.NextActions = cloneStrings(r.NextActions)
		out[i] = r
	}
	return out
}

func cloneDocs(src []core.EvidenceDoc) []core.EvidenceDoc {
	out := make([]core.EvidenceDoc, len(src))
	for i, d := range src {
		d.Conditions = cloneStrings(d.Conditions)
		d.Keywords = cloneStrings(d.Keywords)
		out[i] = d
	}
	return out
}

func cloneVocabulary(v core.Vocabulary) core.Vocabulary {
	out := core.Vocabulary{
		Synonyms: make(map[string][]string, len(v.Synonyms)),
		RedFlags: make([]core.RedFlagCategory, len(v.RedFlags)),
	}
	for k, syns := range v.Synonyms {
		out.Synonyms[k] = cloneStrings(syns)
	}
	for i, cat := range v.RedFlags {
		out.RedFlags[i] = core.RedFlagCategory{Name: cat.Name, Phrases: cloneStrings(cat.Phrases)}
	}
	return out
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
