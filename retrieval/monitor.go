package retrieval

import "github.com/poiesic/careguide/core"

// Monitor provides hooks to observe the retrieval process.
// Implement this interface to trace cache behavior and intermediate results.
type Monitor interface {
	Start(conditionKey, symptoms string, topK int)
	CacheHit(fingerprint string)
	CacheMiss(fingerprint string)
	QueryBuilt(query core.Query)
	DocumentScored(doc core.ScoredDoc)
	Finish(docs []core.ScoredDoc)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_, _ string, _ int)        {}
func (n *noopMonitor) CacheHit(_ string)               {}
func (n *noopMonitor) CacheMiss(_ string)              {}
func (n *noopMonitor) QueryBuilt(_ core.Query)         {}
func (n *noopMonitor) DocumentScored(_ core.ScoredDoc) {}
func (n *noopMonitor) Finish(_ []core.ScoredDoc)       {}
