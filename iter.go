package swisstable

import "github.com/zyedidia/generic/iter"

// Each calls fn for every live entry in unspecified order. If fn returns
// true, enumeration stops early.
func (t *Table[K, V]) Each(fn func(key K, val V) bool) {
	for i := range t.meta {
		if emptyOrTombstone(t.meta[i]) {
			continue
		}
		e := &t.entries[i]
		if stop := fn(e.key, e.val); stop {
			return
		}
	}
}

// EachWithIndex is the same as Each but also passes the 0-based enumeration
// ordinal of the entry, not its backing slot index.
func (t *Table[K, V]) EachWithIndex(fn func(i int, key K, val V) bool) {
	i := 0
	t.Each(func(key K, val V) bool {
		stop := fn(i, key, val)
		i++
		return stop
	})
}

// Iterate returns a lazy sequence over the table's live entries: an
// explicit cursor that, called repeatedly, yields each (key, value) pair
// exactly once and then (zero, false) forever after.
//
// The pairs are snapshotted at the time Iterate is called. Per the table's
// concurrency model, mutating the table while a cursor from an earlier
// Iterate call is still in use is undefined; this implementation happens to
// tolerate it (the cursor walks its own snapshot) but callers must not rely
// on that.
func (t *Table[K, V]) Iterate() iter.Iter[iter.KV[K, V]] {
	pairs := make([]iter.KV[K, V], 0, t.size)
	t.Each(func(key K, val V) bool {
		pairs = append(pairs, iter.KV[K, V]{Key: key, Val: val})
		return false
	})
	return iter.Slice(pairs)
}
