package retrieval

import "github.com/poiesic/careguide/core"

// GroupByType partitions ranked documents by document type, keeping the
// ranked order within each group.
func GroupByType(docs []core.ScoredDoc) map[core.DocType][]core.ScoredDoc {
	groups := make(map[core.DocType][]core.ScoredDoc)
	for _, d := range docs {
		groups[d.Type] = append(groups[d.Type], d)
	}
	return groups
}
