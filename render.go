package swisstable

import (
	"fmt"
	"strings"
)

// Render produces a human-readable "{k1: v1, k2: v2}" view of the table.
// An empty table renders as "{}". Entries appear in live-enumeration order,
// which is stable only between mutations (see Each).
func Render[K comparable, V any](t *Table[K, V]) string {
	if t.IsEmpty() {
		return "{}"
	}

	var b strings.Builder
	b.WriteByte('{')
	first := true
	t.Each(func(key K, val V) bool {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%v: %v", key, val)
		return false
	})
	b.WriteByte('}')
	return b.String()
}

// String implements fmt.Stringer via Render.
func (t *Table[K, V]) String() string {
	return Render(t)
}
