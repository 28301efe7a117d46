package swisstable_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nilsvik/swisstable"
)

func TestEachStopsEarly(t *testing.T) {
	tbl := swisstable.New[int, int](0)
	for i := 0; i < 10; i++ {
		tbl.Set(i, i)
	}

	visited := 0
	tbl.Each(func(k, v int) bool {
		visited++
		return visited == 3 // stop after the third visit
	})
	assert.Equal(t, 3, visited)
}

func TestEachWithIndexCountsOrdinal(t *testing.T) {
	tbl := swisstable.New[int, int](0)
	for i := 0; i < 5; i++ {
		tbl.Set(i, i)
	}

	seen := map[int]bool{}
	tbl.EachWithIndex(func(i, k, v int) bool {
		assert.Equal(t, len(seen), i)
		seen[k] = true
		return false
	})
	assert.Len(t, seen, 5)
}

func TestIterateVisitsEveryLiveEntryOnce(t *testing.T) {
	tbl := swisstable.New[int, string](0)
	want := map[int]string{1: "a", 2: "b", 3: "c"}
	for k, v := range want {
		tbl.Set(k, v)
	}

	got := map[int]string{}
	it := tbl.Iterate()
	for pair, ok := it(); ok; pair, ok = it() {
		got[pair.Key] = pair.Val
	}
	assert.Equal(t, want, got)

	// the cursor is exhausted: further calls keep reporting done
	_, ok := it()
	assert.False(t, ok)
}

func TestIterateSnapshotsAtCallTime(t *testing.T) {
	tbl := swisstable.New[int, int](0)
	tbl.Set(1, 1)

	it := tbl.Iterate()
	tbl.Set(2, 2) // mutate after snapshotting the cursor

	count := 0
	for _, ok := it(); ok; _, ok = it() {
		count++
	}
	assert.Equal(t, 1, count)
}
