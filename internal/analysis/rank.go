package analysis

import (
	"cmp"
	"slices"
)

// rank sorts a copy of records by key with a stable sort, so records with
// equal keys keep their input order, then keeps the first topN.
// topN <= 0 keeps everything.
func rank[T any](records []T, key func(T) int, descending bool, topN int) []T {
	ranked := slices.Clone(records)
	slices.SortStableFunc(ranked, func(a, b T) int {
		if descending {
			return cmp.Compare(key(b), key(a))
		}
		return cmp.Compare(key(a), key(b))
	})

	if topN > 0 && len(ranked) > topN {
		ranked = ranked[:topN]
	}
	if ranked == nil {
		ranked = []T{}
	}
	return ranked
}
