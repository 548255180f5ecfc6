package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRNGReset(t *testing.T) {
	rng := NewRNG(4711)
	first := rng.Uint64()
	rng.Reset()
	assert.Equal(t, first, rng.Uint64())
	assert.Equal(t, int64(4711), rng.Seed())
}

func TestBitSetDensity(t *testing.T) {
	rng := NewRNG(4711)

	empty := rng.BitSet(100, 0)
	assert.True(t, empty.IsEmpty())

	full := rng.BitSet(100, 1)
	assert.True(t, full.IsFull())

	half := rng.BitSet(1000, 0.5)
	assert.InDelta(t, 500, float64(half.Len()), 100)
}

func TestBoolsRoundTrip(t *testing.T) {
	rng := NewRNG(4711)
	for _, n := range Universes {
		b := rng.BitSet(n, 0.4)
		v := Bools(b)
		assert.Len(t, v, int(n))
		assert.True(t, FromBools(v).Equal(b), "universe %d", n)
		assert.Equal(t, Count(v), b.Len())
		assert.Equal(t, Members(v), b.AppendTo(nil))
	}
}
