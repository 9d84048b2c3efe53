package careguide

import (
	"context"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poiesic/careguide/catalog"
	"github.com/poiesic/careguide/core"
	"github.com/poiesic/careguide/triage"
)

func newTestEngine(t *testing.T, opts ...EngineOption) *Engine {
	t.Helper()
	e, err := NewEngine(opts...)
	require.NoError(t, err)
	return e
}

func TestNewEngine(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		e := newTestEngine(t)
		assert.NotNil(t, e.Catalog())
		assert.Equal(t, catalog.Default().Revision(), e.Catalog().Revision())
		assert.Equal(t, *DefaultConfig(), e.Config())
		assert.NotNil(t, e.logger)
	})

	t.Run("nil options fall back to defaults", func(t *testing.T) {
		e := newTestEngine(t, WithConfig(nil), WithLogger(nil), WithCatalog(nil))
		assert.Equal(t, *DefaultConfig(), e.Config())
		assert.NotNil(t, e.logger)
	})

	t.Run("invalid config", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Retrieval.DefaultTopK = -1
		e, err := NewEngine(WithConfig(cfg))
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Nil(t, e)
	})

	t.Run("missing catalog file", func(t *testing.T) {
		cfg := NewConfig(WithCatalogFile(filepath.Join(t.TempDir(), "missing.yaml")))
		e, err := NewEngine(WithConfig(cfg))
		assert.Error(t, err)
		assert.Nil(t, e)
	})

	t.Run("catalog file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, catalog.WriteFile(path, catalog.Default()))

		e := newTestEngine(t, WithConfig(NewConfig(WithCatalogFile(path))))
		assert.Equal(t, catalog.Default().Revision(), e.Catalog().Revision())
	})

	t.Run("empty catalog database", func(t *testing.T) {
		cfg := NewConfig(WithCatalogDB(t.TempDir()))
		_, err := NewEngine(WithConfig(cfg))
		assert.ErrorIs(t, err, catalog.ErrNoRules)
	})
}

func TestEngine_Triage(t *testing.T) {
	e := newTestEngine(t)

	best := e.Triage("가슴이 아프고 식은땀이 나요", false).Best
	assert.Equal(t, "급성 관상동맥 증후군", best.ConditionKey)
	assert.Equal(t, 0.44, best.Confidence)
	assert.True(t, best.Emergency)
}

func TestEngine_Assess(t *testing.T) {
	e := newTestEngine(t)
	symptoms := "가슴이 아프고 식은땀이 나요"

	a := e.Assess(symptoms, true, 3)

	best := a.Triage.Best
	assert.Equal(t, "급성 관상동맥 증후군", best.ConditionKey)
	require.NotEmpty(t, a.Triage.Candidates)
	assert.Equal(t, best, a.Triage.Candidates[0])

	assert.Equal(t, best.ConditionKey, a.Query.ConditionKey)
	assert.Equal(t, []string{"식은땀"}, a.Query.RedFlags)
	require.Len(t, a.Documents, 3)
	assert.Equal(t, "acs-esc-guideline-2023", a.Documents[0].ID)

	want := e.Retrieve(best.ConditionKey, symptoms, core.EvidenceFromRule(best.Evidence), 3)
	assert.Equal(t, want, a.Documents)

	total := 0
	for _, docs := range a.Grouped {
		total += len(docs)
	}
	assert.Equal(t, len(a.Documents), total)
}

func TestEngine_Assess_DefaultTopK(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Retrieval.DefaultTopK = 2
	e := newTestEngine(t, WithConfig(cfg))

	a := e.Assess("목이 아프고 삼키기 힘들어요", false, 0)
	assert.Len(t, a.Documents, 2)
	assert.Nil(t, a.Triage.Candidates)
}

func TestEngine_Assess_TerminalStates(t *testing.T) {
	e := newTestEngine(t)

	t.Run("empty input", func(t *testing.T) {
		a := e.Assess("", false, 3)
		assert.Equal(t, triage.EmptyInputRuleID, a.Triage.Best.RuleID)
		assert.Equal(t, triage.NonSpecificConditionKey, a.Query.ConditionKey)
		assert.NotEmpty(t, a.Documents)
	})

	t.Run("no rule matched", func(t *testing.T) {
		a := e.Assess("머리가 지끈거려요", false, 3)
		assert.Equal(t, triage.FallbackRuleID, a.Triage.Best.RuleID)
		assert.NotEmpty(t, a.Documents)
	})
}

func TestEngine_CacheStats(t *testing.T) {
	e := newTestEngine(t)

	e.Assess("목이 아파요", false, 3)
	e.Assess("목이 아파요", false, 3)

	stats := e.CacheStats()
	assert.Equal(t, uint64(1), stats.Misses)
	assert.Equal(t, uint64(1), stats.Hits)
	assert.Equal(t, 1, stats.Size)
}

func TestEngine_ConcurrentAssess(t *testing.T) {
	e := newTestEngine(t)
	want := e.Assess("숨이 차고 쌕쌕거려요", true, 5)

	var wg sync.WaitGroup
	results := make([]core.Assessment, 16)
	for i := range results {
		wg.Add(1)
		go func() {
			defer wg.Done()
			results[i] = e.Assess("숨이 차고 쌕쌕거려요", true, 5)
		}()
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestCatalogDB_RoundTrip(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "catalog")

	require.NoError(t, SeedCatalogDB(ctx, dir, catalog.Default()))

	loaded, err := LoadCatalogDB(ctx, dir)
	require.NoError(t, err)
	assert.Equal(t, catalog.Default().Rules(), loaded.Rules())
	assert.Equal(t, catalog.Default().Documents(), loaded.Documents())

	e := newTestEngine(t, WithConfig(NewConfig(WithCatalogDB(dir))))
	assert.Equal(t, catalog.Default().Revision(), e.Catalog().Revision())
}
