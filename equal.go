package swisstable

import "github.com/zyedidia/generic"

// Equal reports whether a and b are structurally equal: same size, and
// every (key, value) pair of one is present in the other with an equal
// value under eq. Capacity and internal slot layout never factor in.
//
// eq is needed because V is only constrained to be any, not comparable;
// EqualComparable covers the common case where it happens to be.
func Equal[K comparable, V any](a, b *Table[K, V], eq generic.EqualsFn[V]) bool {
	if a.size != b.size {
		return false
	}
	equal := true
	a.Each(func(key K, val V) bool {
		ov, ok := b.Get(key)
		if !ok || !eq(val, ov) {
			equal = false
			return true // stop, no point in continuing
		}
		return false
	})
	return equal
}

// EqualComparable is Equal specialized to comparable value types, using the
// built-in == operator.
func EqualComparable[K comparable, V comparable](a, b *Table[K, V]) bool {
	return Equal[K, V](a, b, generic.Equals[V])
}
