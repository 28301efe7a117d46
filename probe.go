package swisstable

// idealSlot is the slot a key would occupy absent collisions.
func idealSlot(hash, mask uint64) uint64 {
	return hash & mask
}

// fingerprint extracts the 7-bit tag stored in an OCCUPIED control byte. 0 is
// reserved to keep OCCUPIED bytes from ever colliding in value with EMPTY
// (0xFF) or TOMBSTONE (0x80), so it is remapped to 1.
func fingerprint(hash uint64) byte {
	h2 := byte((hash >> 7) & 0x7F)
	if h2 == 0 {
		h2 = 1
	}
	return h2
}

// distance is the probe distance of an occupant at slot i whose cached hash
// is h: the number of linear-probe steps from its ideal slot to i, wrapping
// around the table.
func distance(slot, hash, mask uint64) uint64 {
	return (slot - idealSlot(hash, mask)) & mask
}

// emptyOrTombstone reports whether the high bit of the control byte is set,
// i.e. the slot holds no live entry. Both EMPTY (0xFF) and TOMBSTONE (0x80)
// satisfy this, which is what lets growth's bulk EMPTY-only reset coexist
// with a single-comparison "can I write here" check elsewhere.
func emptyOrTombstone(b byte) bool {
	return b&0x80 != 0
}
