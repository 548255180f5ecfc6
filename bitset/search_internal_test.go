package bitset

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func recoverError(t *testing.T, fn func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected panic")
		var ok bool
		err, ok = r.(error)
		require.True(t, ok, "panic value must be an error")
	}()
	fn()
	return nil
}

func TestSearchGuardsPadding(t *testing.T) {
	// Padding can only be corrupted from inside the package.
	b := &BitSet{universe: 5, words: []uint64{1 << 10}}

	err := recoverError(t, func() { b.NextSetAtOrAfter(0) })
	assert.True(t, errors.Is(err, ErrInternalInvariant))
	assert.Contains(t, err.Error(), "search hit 10 beyond universe of size 5")

	b = &BitSet{universe: 65, words: []uint64{0, 1 << 5}}
	err = recoverError(t, func() { b.NextSetAtOrAfter(0) })
	assert.True(t, errors.Is(err, ErrInternalInvariant))
}

func TestBitScanHelpersRejectZero(t *testing.T) {
	err := recoverError(t, func() { lowestSetBit(0) })
	assert.ErrorIs(t, err, ErrInternalInvariant)

	err = recoverError(t, func() { highestSetBit(0) })
	assert.ErrorIs(t, err, ErrInternalInvariant)

	assert.Equal(t, uint64(0), lowestSetBit(1))
	assert.Equal(t, uint64(63), highestSetBit(1<<63))
	assert.Equal(t, uint64(4), highestSetBit(0x1F))
}
