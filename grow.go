package swisstable

// grow doubles the table's capacity. It is only ever called from Set, which
// has already checked size against loadLimit.
func (t *Table[K, V]) grow() {
	t.growTo(uint64(len(t.meta)) * 2)
}

// growTo migrates every live entry into a freshly allocated table of the
// given capacity, using each entry's cached hash so no key is rehashed.
// Tombstones are discarded in the process. The new arrays are fully built
// up in nt before anything is published into t, so a caller never observes
// a half-migrated table.
func (t *Table[K, V]) growTo(capacity uint64) {
	nt := &Table[K, V]{
		meta:      newMetaArray(capacity),
		entries:   make([]entry[K, V], capacity),
		mask:      capacity - 1,
		loadLimit: loadLimitFor(capacity),
		hasher:    t.hasher,
	}

	for i, m := range t.meta {
		if emptyOrTombstone(m) {
			continue
		}
		e := t.entries[i]
		nt.put(e.hash, e.key, e.val)
	}

	t.meta = nt.meta
	t.entries = nt.entries
	t.mask = nt.mask
	t.loadLimit = nt.loadLimit
	t.size = nt.size
}
