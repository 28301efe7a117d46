package swisstable

import (
	"github.com/zyedidia/generic/iter"

	"github.com/nilsvik/swisstable/shared"
)

// Control byte states. EMPTY and TOMBSTONE share a set high bit so that the
// "empty-or-deleted" predicate used by the probe engine is a single
// comparison, while still being distinguishable from each other for
// growth's EMPTY-only reset.
const (
	ctrlEmpty     byte = 0xFF
	ctrlTombstone byte = 0x80
)

// entry is the record stored per occupied slot. The hash is cached so that
// growth and Robin Hood distance computations never recompute it.
type entry[K comparable, V any] struct {
	key  K
	val  V
	hash uint64
}

// Table is a SwissTable-style Robin Hood hash map. The zero value is not
// usable; construct one with New or NewWithHasher.
//
// A Table is a single-owner mutable data structure: concurrent mutation
// from distinct goroutines is undefined, and any mutation during iteration
// invalidates cursors obtained from Iterate.
type Table[K comparable, V any] struct {
	meta      []byte
	entries   []entry[K, V]
	mask      uint64
	size      int
	loadLimit uint64
	hasher    shared.HashFn[K]
}

// New creates a ready-to-use Table with a default hasher for integer, float
// and string key kinds (see shared.GetHasher). capacityHint is rounded up to the next power of two, with a
// minimum (and zero-value default) of 8.
func New[K comparable, V any](capacityHint int) *Table[K, V] {
	return NewWithHasher[K, V](capacityHint, shared.GetHasher[K]())
}

// NewWithHasher is the same as New but with a caller-supplied hash
// function, required for key types New cannot reflect its way into a
// hasher for (structs, slices, maps, ...).
func NewWithHasher[K comparable, V any](capacityHint int, hasher shared.HashFn[K]) *Table[K, V] {
	capacity := roundCapacity(capacityHint)
	return &Table[K, V]{
		meta:      newMetaArray(capacity),
		entries:   make([]entry[K, V], capacity),
		mask:      capacity - 1,
		loadLimit: loadLimitFor(capacity),
		hasher:    hasher,
	}
}

// FromSeq builds a Table from a slice of pairs, using the default hasher.
// Later pairs overwrite earlier ones for duplicate keys.
func FromSeq[K comparable, V any](pairs []iter.KV[K, V]) *Table[K, V] {
	return FromSeqWithHasher(pairs, shared.GetHasher[K]())
}

// FromSeqWithHasher is the same as FromSeq but with a caller-supplied hash
// function.
func FromSeqWithHasher[K comparable, V any](pairs []iter.KV[K, V], hasher shared.HashFn[K]) *Table[K, V] {
	t := NewWithHasher[K, V](len(pairs), hasher)
	for _, p := range pairs {
		t.Set(p.Key, p.Val)
	}
	return t
}

func newMetaArray(capacity uint64) []byte {
	meta := make([]byte, capacity)
	for i := range meta {
		meta[i] = ctrlEmpty
	}
	return meta
}

// roundCapacity rounds hint up to a power of two, minimum shared.DefaultCapacity.
func roundCapacity(hint int) uint64 {
	if hint <= shared.DefaultCapacity {
		return shared.DefaultCapacity
	}
	return shared.NextPowerOf2(uint64(hint))
}

// loadLimitFor derives the peak-load threshold (7/8 of capacity) above which
// the next insertion must grow the table first.
func loadLimitFor(capacity uint64) uint64 {
	return (capacity * shared.MaxLoadNumerator) >> 3
}

// Size returns the number of live entries.
func (t *Table[K, V]) Size() int {
	return t.size
}

// Capacity returns the number of slots currently backing the table.
func (t *Table[K, V]) Capacity() int {
	return len(t.meta)
}

// IsEmpty reports whether the table has no live entries.
func (t *Table[K, V]) IsEmpty() bool {
	return t.size == 0
}

// Contains reports whether key is present.
func (t *Table[K, V]) Contains(key K) bool {
	_, ok := t.Get(key)
	return ok
}

// GetOrDefault returns the value for key, or def if key is absent.
func (t *Table[K, V]) GetOrDefault(key K, def V) V {
	if v, ok := t.Get(key); ok {
		return v
	}
	return def
}

// Copy returns a deep copy of the table: a new backing allocation with the
// same logical contents. Mutating the copy never affects the original.
func (t *Table[K, V]) Copy() *Table[K, V] {
	nt := &Table[K, V]{
		meta:      make([]byte, len(t.meta)),
		entries:   make([]entry[K, V], len(t.entries)),
		mask:      t.mask,
		size:      t.size,
		loadLimit: t.loadLimit,
		hasher:    t.hasher,
	}
	copy(nt.meta, t.meta)
	copy(nt.entries, t.entries)
	return nt
}

// Reserve grows the table ahead of time so that it can hold at least n
// entries without an intermediate growth step. It is a no-op if the table
// is already large enough.
func (t *Table[K, V]) Reserve(n int) {
	if n <= 0 {
		return
	}
	capacity := uint64(len(t.meta))
	for loadLimitFor(capacity) < uint64(n) {
		capacity *= 2
	}
	if capacity == uint64(len(t.meta)) {
		return
	}
	t.growTo(capacity)
}
