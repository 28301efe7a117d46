package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/nilsvik/swisstable/shared"
)

func TestGetHasherDistinguishesKeys(t *testing.T) {
	h := shared.GetHasher[int]()
	assert.NotEqual(t, h(1), h(2))
}

func TestGetHasherStrings(t *testing.T) {
	h := shared.GetHasher[string]()
	assert.NotEqual(t, h("foo"), h("bar"))
	assert.Equal(t, h("foo"), h("foo"))
}

func TestGetHasherPanicsOnUnsupportedKind(t *testing.T) {
	type notHashable struct{ a, b int }
	assert.Panics(t, func() {
		shared.GetHasher[notHashable]()
	})
}
