package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/careguide/core"
)

func TestDefault(t *testing.T) {
	c := Default()

	rules := c.Rules()
	require.Len(t, rules, 5)
	assert.Equal(t, "rlq_abdominal_pain_pattern", rules[0].ID)
	assert.Equal(t, []string{"통증", "쥐어짜", "압박", "식은땀", "호흡곤란", "방사"}, rules[1].SupportKeywords)

	docs := c.Documents()
	assert.Len(t, docs, 15)
	for _, d := range docs {
		assert.NoError(t, core.ValidateEvidenceDoc(&d), d.ID)
		assert.LessOrEqual(t, d.Year, ReferenceYear, d.ID)
	}

	vocab := c.Vocabulary()
	for _, key := range c.ConditionKeys() {
		assert.NotEmpty(t, vocab.Synonyms[key], key)
	}
}

func TestDefault_EveryConditionHasDocuments(t *testing.T) {
	c := Default()
	docs := c.Documents()
	for _, key := range c.ConditionKeys() {
		found := false
		for i := range docs {
			if docs[i].HasCondition(key) {
				found = true
				break
			}
		}
		assert.True(t, found, "no document for %s", key)
	}
}

func TestAccessorsReturnCopies(t *testing.T) {
	c := Default()

	rules := c.Rules()
	rules[0].GateKeywords[0] = "mutated"
	rules[0].ID = "mutated"

	docs := c.Documents()
	docs[0].Keywords[0] = "mutated"

	vocab := c.Vocabulary()
	vocab.Synonyms["급성 인두염"][0] = "mutated"
	vocab.RedFlags[0].Phrases[0] = "mutated"

	assert.Equal(t, "rlq_abdominal_pain_pattern", c.Rules()[0].ID)
	assert.NotEqual(t, "mutated", c.Rules()[0].GateKeywords[0])
	assert.NotEqual(t, "mutated", c.Documents()[0].Keywords[0])
	assert.NotEqual(t, "mutated", c.Vocabulary().Synonyms["급성 인두염"][0])
	assert.NotEqual(t, "mutated", c.Vocabulary().RedFlags[0].Phrases[0])
}

func TestNew_Validation(t *testing.T) {
	valid := Default().Rules()
	docs := Default().Documents()

	t.Run("no rules", func(t *testing.T) {
		_, err := New(nil, docs, DefaultVocabulary())
		assert.ErrorIs(t, err, ErrNoRules)
	})

	t.Run("duplicate rule", func(t *testing.T) {
		rules := append(valid, valid[0])
		_, err := New(rules, docs, DefaultVocabulary())
		assert.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("duplicate document", func(t *testing.T) {
		_, err := New(valid, append(docs, docs[0]), DefaultVocabulary())
		assert.ErrorIs(t, err, ErrDuplicateID)
	})

	t.Run("invalid rule", func(t *testing.T) {
		rules := Default().Rules()
		rules[2].Weight = 1.5
		_, err := New(rules, docs, DefaultVocabulary())
		assert.ErrorIs(t, err, core.ErrInvalidWeight)
	})

	t.Run("invalid document", func(t *testing.T) {
		bad := Default().Documents()
		bad[3].Title = " "
		_, err := New(valid, bad, DefaultVocabulary())
		assert.ErrorIs(t, err, core.ErrEmptyTitle)
	})

	t.Run("empty corpus is allowed", func(t *testing.T) {
		c, err := New(valid, nil, core.Vocabulary{})
		require.NoError(t, err)
		assert.Empty(t, c.Documents())
	})
}

func TestConditionKeys_FirstSeenOrder(t *testing.T) {
	rules := []core.Rule{
		{ID: "a", ConditionKey: "x", GateKeywords: []string{"g"}, Urgency: core.UrgencyRoutine},
		{ID: "b", ConditionKey: "y", GateKeywords: []string{"g"}, Urgency: core.UrgencyRoutine},
		{ID: "c", ConditionKey: "x", GateKeywords: []string{"g"}, Urgency: core.UrgencyRoutine},
	}
	c, err := New(rules, nil, core.Vocabulary{})
	require.NoError(t, err)
	assert.Equal(t, []string{"x", "y"}, c.ConditionKeys())
}

func TestRevision(t *testing.T) {
	a := Default()
	b := Default()
	assert.Equal(t, a.Revision(), b.Revision())

	c, err := New(a.Rules()[:2], a.Documents(), a.Vocabulary())
	require.NoError(t, err)
	assert.NotEqual(t, a.Revision(), c.Revision())
}
