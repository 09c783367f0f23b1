package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIncrement_CreatesCounter(t *testing.T) {
	index := NewMemoryIndex()

	assert.False(t, index.Has("IPA"))
	index.Increment("IPA", 10)

	assert.True(t, index.Has("IPA"))
	count, ok := index.Get("IPA")
	require.True(t, ok)
	assert.Equal(t, 10, count)
}

func TestDecrement_Success(t *testing.T) {
	index := NewMemoryIndex()
	index.Increment("IPA", 10)

	require.True(t, index.Decrement("IPA", 3))

	count, _ := index.Get("IPA")
	assert.Equal(t, 7, count)
}

func TestDecrement_Insufficient(t *testing.T) {
	index := NewMemoryIndex()
	index.Increment("IPA", 2)

	require.False(t, index.Decrement("IPA", 3))

	count, _ := index.Get("IPA")
	assert.Equal(t, 2, count, "failed decrement must not mutate")
}

func TestDecrement_MissingCounter(t *testing.T) {
	index := NewMemoryIndex()

	require.False(t, index.Decrement("IPA", 1))
	assert.False(t, index.Has("IPA"), "failed decrement must not create the counter")
}

func TestDeduct_Unconditional(t *testing.T) {
	index := NewMemoryIndex()
	index.Increment("IPA", 4)

	// Deduct is the id-addressed retirement path and does not guard against
	// going negative.
	index.Deduct("IPA", 24)

	count, _ := index.Get("IPA")
	assert.Equal(t, -20, count)
}

func TestGet_Missing(t *testing.T) {
	index := NewMemoryIndex()

	count, ok := index.Get("IPA")
	assert.False(t, ok)
	assert.Equal(t, 0, count)
}

func TestSnapshot_IsACopy(t *testing.T) {
	index := NewMemoryIndex()
	index.Increment("IPA", 10)
	index.Increment("Stout", 5)

	snap := index.Snapshot()
	require.Equal(t, map[string]int{"IPA": 10, "Stout": 5}, snap)

	snap["IPA"] = 99
	count, _ := index.Get("IPA")
	assert.Equal(t, 10, count)
}
