package swisstable

// Get returns the value stored for key, and whether it was present.
//
// The probe walk filters almost all mismatches on the one-byte fingerprint
// before ever touching the entry array, and stops early the moment the
// walker's current probe distance exceeds that of the occupant it is
// looking at: under Robin Hood's monotonicity invariant, nothing farther
// along the chain could possibly be the key being searched for.
func (t *Table[K, V]) Get(key K) (V, bool) {
	var zero V

	h := t.hasher(key)
	h2 := fingerprint(h)
	idx := idealSlot(h, t.mask)
	var d uint64

	for {
		m := t.meta[idx]
		switch {
		case m == ctrlEmpty:
			return zero, false
		case m == h2:
			e := &t.entries[idx]
			if e.hash == h && e.key == key {
				return e.val, true
			}
		}

		if !emptyOrTombstone(m) {
			if d > distance(idx, t.entries[idx].hash, t.mask) {
				return zero, false
			}
		}

		idx = (idx + 1) & t.mask
		d++
		if d > t.mask {
			return zero, false // every slot visited
		}
	}
}
