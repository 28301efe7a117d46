package swisstable

import (
	"sort"

	"golang.org/x/exp/constraints"

	"github.com/zyedidia/generic/iter"
)

// SortedPairs is an iteration adapter for the common case where K has a
// natural order and a caller wants a deterministic view of the table's
// contents, e.g. for display or golden-file tests. It consumes Each and
// never touches the table's internals, and it does not change the core's
// iteration-order guarantee, which stays unspecified between mutations.
func SortedPairs[K constraints.Ordered, V any](t *Table[K, V]) []iter.KV[K, V] {
	pairs := make([]iter.KV[K, V], 0, t.Size())
	t.Each(func(key K, val V) bool {
		pairs = append(pairs, iter.KV[K, V]{Key: key, Val: val})
		return false
	})
	sort.Slice(pairs, func(i, j int) bool {
		return pairs[i].Key < pairs[j].Key
	})
	return pairs
}
