package retrieval

import (
	"strconv"
	"strings"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"github.com/poiesic/careguide/core"
)

// cacheKey identifies one retrieval call.
type cacheKey struct {
	conditionKey string
	symptoms     string
	fingerprint  string
	topK         int
}

// flightKey renders the key for singleflight, which needs a string.
func (k cacheKey) flightKey() string {
	var b strings.Builder
	b.WriteString(strconv.Quote(k.conditionKey))
	b.WriteByte(' ')
	b.WriteString(strconv.Quote(k.symptoms))
	b.WriteByte(' ')
	b.WriteString(strconv.Quote(k.fingerprint))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(k.topK))
	return b.String()
}

// CacheStats reports retrieval cache activity.
type CacheStats struct {
	Hits     uint64 `json:"hits"`
	Misses   uint64 `json:"misses"`
	Size     int    `json:"size"`
	Capacity int    `json:"capacity"`
}

// resultCache is a bounded LRU of scored document lists. Concurrent misses
// on the same key share one computation.
type resultCache struct {
	entries  *lru.Cache[cacheKey, []core.ScoredDoc]
	flight   singleflight.Group
	capacity int
	hits     atomic.Uint64
	misses   atomic.Uint64
}

func newResultCache(capacity int) (*resultCache, error) {
	entries, err := lru.New[cacheKey, []core.ScoredDoc](capacity)
	if err != nil {
		return nil, err
	}
	return &resultCache{entries: entries, capacity: capacity}, nil
}

// getOrCompute returns the cached list for key, computing and storing it on
// a miss. The returned list is a private copy. hit reports whether the value
// came from the cache or from a computation started by another caller.
func (c *resultCache) getOrCompute(key cacheKey, compute func() []core.ScoredDoc) (docs []core.ScoredDoc, hit bool) {
	if cached, ok := c.entries.Get(key); ok {
		c.hits.Add(1)
		return cloneScored(cached), true
	}

	// singleflight runs fn on the leader's goroutine, so computed needs no
	// synchronization.
	computed := false
	v, _, _ := c.flight.Do(key.flightKey(), func() (any, error) {
		if cached, ok := c.entries.Get(key); ok {
			return cached, nil
		}
		computed = true
		result := compute()
		c.entries.Add(key, result)
		return result, nil
	})

	if computed {
		c.misses.Add(1)
	} else {
		c.hits.Add(1)
	}
	return cloneScored(v.([]core.ScoredDoc)), !computed
}

func (c *resultCache) stats() CacheStats {
	return CacheStats{
		Hits:     c.hits.Load(),
		Misses:   c.misses.Load(),
		Size:     c.entries.Len(),
		Capacity: c.capacity,
	}
}

func (c *resultCache) purge() {
	c.entries.Purge()
	c.hits.Store(0)
	c.misses.Store(0)
}

func cloneScored(src []core.ScoredDoc) []core.ScoredDoc {
	out := make([]core.ScoredDoc, len(src))
	for i, d := range src {
		d.Conditions = append([]string(nil), d.Conditions...)
		d.Keywords = append([]string(nil), d.Keywords...)
		d.Evidence.RedFlags = append([]string{}, d.Evidence.RedFlags...)
		d.Evidence.MatchedKeywords = append([]string{}, d.Evidence.MatchedKeywords...)
		d.Evidence.MatchedTitle = append([]string{}, d.Evidence.MatchedTitle...)
		d.Evidence.MatchedBody = append([]string{}, d.Evidence.MatchedBody...)
		out[i] = d
	}
	return out
}
