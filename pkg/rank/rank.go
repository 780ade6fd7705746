// Package rank orders aggregated candidates for the public search bar. The
// ordering is a strict cascade: each comparator only breaks ties left by the
// one before it, and candidates still tied after all three keep their
// aggregation order. Back-office search never goes through this package; its
// contract is plain concatenation in collection priority order.
package rank

import (
	"sort"
	"strings"

	"github.com/rihla/rihla/pkg/match"
)

// PublicCap is the maximum number of public results after ranking.
const PublicCap = 20

// Rank sorts candidates by the relevance cascade, stably:
//
//  1. Exact match: display name equals the lower-cased query.
//  2. Destination kinds (city, country) before everything else; a user
//     typing a place name wants the place before content about it.
//  3. Matched-field precedence: name before city before country before the
//     rest, encoding "the thing itself" above "a thing that mentions it".
//  4. Remaining ties keep aggregation order.
//
// The input slice is not modified.
func Rank(candidates []match.Result, query string) []match.Result {
	ranked := make([]match.Result, len(candidates))
	copy(ranked, candidates)

	lowered := strings.ToLower(strings.TrimSpace(query))

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]

		aExact := strings.ToLower(a.Entity.Display()) == lowered
		bExact := strings.ToLower(b.Entity.Display()) == lowered
		if aExact != bExact {
			return aExact
		}

		aDest := a.Kind.Destination()
		bDest := b.Kind.Destination()
		if aDest != bDest {
			return aDest
		}

		return a.Field.Weight() < b.Field.Weight()
	})
	return ranked
}

// Cap truncates to at most n results; n <= 0 means uncapped.
func Cap(results []match.Result, n int) []match.Result {
	if n <= 0 || len(results) <= n {
		return results
	}
	return results[:n]
}
