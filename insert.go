package swisstable

// Set maps key to val, overwriting any existing value. It reports whether
// the key is new to the table.
func (t *Table[K, V]) Set(key K, val V) bool {
	if uint64(t.size) >= t.loadLimit {
		t.grow()
	}
	return t.put(t.hasher(key), key, val)
}

// put runs the full insertion algorithm for a (possibly already-hashed)
// key. It never triggers growth itself: callers that can reuse a cached
// hash (growth's own migration) rely on that to avoid recursing.
func (t *Table[K, V]) put(h uint64, key K, val V) bool {
	h2 := fingerprint(h)
	idx := idealSlot(h, t.mask)
	var d uint64

	for {
		m := t.meta[idx]
		if emptyOrTombstone(m) {
			t.meta[idx] = h2
			t.entries[idx] = entry[K, V]{key: key, val: val, hash: h}
			t.size++
			return true
		}

		if m == h2 {
			e := &t.entries[idx]
			if e.hash == h && e.key == key {
				e.val = val
				return false // update in place, size unchanged
			}
		}

		existing := distance(idx, t.entries[idx].hash, t.mask)
		if d > existing {
			// Robin Hood creed: the walker has traveled farther from its
			// ideal slot than the occupant here, so it takes this slot and
			// the occupant becomes the new pending entry.
			t.displace(h2, entry[K, V]{key: key, val: val, hash: h}, idx)
			t.size++
			return true
		}

		idx = (idx + 1) & t.mask
		d++
	}
}

// displace runs the cyclic swap chain: pending is known to outrank the
// current occupant of idx, so it takes that slot, and the evicted occupant
// becomes the new pending entry one step farther along the probe sequence.
// The chain terminates the first time it lands on an EMPTY or TOMBSTONE
// slot, which is guaranteed to happen within capacity steps because the
// load factor is kept below 1.
func (t *Table[K, V]) displace(h2 byte, pending entry[K, V], idx uint64) {
	for {
		evictedH2 := t.meta[idx]
		evicted := t.entries[idx]

		t.meta[idx] = h2
		t.entries[idx] = pending

		if emptyOrTombstone(evictedH2) {
			return
		}

		h2 = evictedH2
		pending = evicted
		idx = (idx + 1) & t.mask
	}
}
