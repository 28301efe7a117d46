package swisstable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/zyedidia/generic/iter"

	"github.com/nilsvik/swisstable"
)

func TestSortedPairsIsDeterministic(t *testing.T) {
	tbl := swisstable.New[int, string](0)
	tbl.Set(5, "five")
	tbl.Set(1, "one")
	tbl.Set(3, "three")

	got := swisstable.SortedPairs(tbl)
	want := []iter.KV[int, string]{
		{Key: 1, Val: "one"},
		{Key: 3, Val: "three"},
		{Key: 5, Val: "five"},
	}
	assert.Equal(t, want, got)
}

func TestSortedPairsEmpty(t *testing.T) {
	tbl := swisstable.New[int, string](0)
	assert.Empty(t, swisstable.SortedPairs(tbl))
}
