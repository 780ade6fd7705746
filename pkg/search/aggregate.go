package search

import (
	"github.com/rihla/rihla/pkg/catalog"
	"github.com/rihla/rihla/pkg/core"
	"github.com/rihla/rihla/pkg/match"
)

// Aggregate runs the matcher over every loaded snapshot for the given kinds,
// in kind order, and concatenates the hits. Each entity appears at most once,
// annotated with the first matching field in its probe order. Empty or
// never-loaded snapshots contribute zero candidates; that is normal, not an
// error. A blank query aggregates nothing.
func Aggregate(c *catalog.Catalog, kinds []core.Kind, query string) []match.Result {
	if match.Blank(query) {
		return nil
	}

	var results []match.Result
	for _, kind := range kinds {
		for _, entity := range c.Snapshot(kind) {
			if result, ok := match.Annotate(entity, query); ok {
				results = append(results, result)
			}
		}
	}
	return results
}
