package swisstable

// Remove deletes key from the table. It reports whether the key was
// present; removing an absent key is a silent no-op.
//
// Deletion marks the slot TOMBSTONE rather than backward-shifting later
// occupants: the slot stays part of any probe chain that passes through it
// until the next insertion that targets it, or until growth discards it
// wholesale.
func (t *Table[K, V]) Remove(key K) bool {
	h := t.hasher(key)
	h2 := fingerprint(h)
	idx := idealSlot(h, t.mask)
	var d uint64

	for {
		m := t.meta[idx]
		switch {
		case m == ctrlEmpty:
			return false
		case m == h2:
			e := &t.entries[idx]
			if e.hash == h && e.key == key {
				t.meta[idx] = ctrlTombstone
				t.entries[idx] = entry[K, V]{}
				t.size--
				return true
			}
		}

		if !emptyOrTombstone(m) {
			if d > distance(idx, t.entries[idx].hash, t.mask) {
				return false
			}
		}

		idx = (idx + 1) & t.mask
		d++
		if d > t.mask {
			return false // every slot visited
		}
	}
}

// Clear removes every entry without shrinking the backing arrays.
func (t *Table[K, V]) Clear() {
	for i := range t.meta {
		t.meta[i] = ctrlEmpty
	}
	var zero entry[K, V]
	for i := range t.entries {
		t.entries[i] = zero
	}
	t.size = 0
}
