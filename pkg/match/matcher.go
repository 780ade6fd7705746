// Package match implements the multi-field matcher: case-insensitive
// substring containment over an entity-type-specific, priority-ordered field
// set. There is no tokenization, stemming, or edit-distance tolerance; a hit
// means one probed field literally contains the query.
package match

import (
	"strings"

	"github.com/rihla/rihla/pkg/core"
)

// Result is an entity annotated with its kind and the field that contained
// the query at annotation time.
type Result struct {
	Entity core.Entity
	Kind   core.Kind
	Field  core.Field
}

// Blank reports whether the query is empty or whitespace-only. Blank queries
// yield no candidates at all: nothing is probed and no unfiltered dump is
// shown.
func Blank(query string) bool {
	return strings.TrimSpace(query) == ""
}

// MatchedField returns the first field, in the kind's declared probe order,
// that contains the query, and whether any field did.
func MatchedField(e core.Entity, query string) (core.Field, bool) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return "", false
	}
	lowered := strings.ToLower(query)

	for _, probe := range ProbesFor(e.Kind()) {
		for _, value := range probe.Extract(e) {
			if probe.Exact {
				if strings.Contains(value, trimmed) {
					return probe.Field, true
				}
				continue
			}
			if strings.Contains(strings.ToLower(value), lowered) {
				return probe.Field, true
			}
		}
	}
	return "", false
}

// Matches reports whether any probed field of the entity contains the query.
func Matches(e core.Entity, query string) bool {
	_, ok := MatchedField(e, query)
	return ok
}

// Annotate wraps a matching entity into a Result. The second return is false
// when the entity does not match.
func Annotate(e core.Entity, query string) (Result, bool) {
	field, ok := MatchedField(e, query)
	if !ok {
		return Result{}, false
	}
	return Result{Entity: e, Kind: e.Kind(), Field: field}, true
}
