package bitset_test

import (
	"slices"
	"testing"

	"github.com/hupe1980/labelset/bitset"
	"github.com/hupe1980/labelset/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func forward(t *testing.T, b *bitset.BitSet) []uint64 {
	t.Helper()
	var out []uint64
	for it, end := b.Begin(), b.End(); !it.Equal(end); it.Next() {
		v, err := it.Value()
		require.NoError(t, err)
		out = append(out, v)
	}
	return out
}

func backward(t *testing.T, b *bitset.BitSet) []uint64 {
	t.Helper()
	var out []uint64
	it := b.End()
	for it.Prev(); it.Position() >= 0; it.Prev() {
		v, err := it.Value()
		require.NoError(t, err)
		out = append(out, v)
	}
	return out
}

func TestIteratorMatchesOracle(t *testing.T) {
	rng := testutil.NewRNG(4711)
	for _, n := range testutil.Universes {
		for _, density := range []float64{0, 0.05, 0.5, 1} {
			b := rng.BitSet(n, density)
			want := testutil.Members(testutil.Bools(b))

			assert.Equal(t, want, forward(t, b), "forward, universe %d", n)
			assert.Equal(t, want, slices.Collect(b.All()), "All, universe %d", n)

			desc := slices.Clone(want)
			slices.Reverse(desc)
			assert.Equal(t, desc, backward(t, b), "backward, universe %d", n)
			assert.Equal(t, desc, slices.Collect(b.Backward()), "Backward, universe %d", n)
		}
	}
}

func TestIteratorSentinels(t *testing.T) {
	b := bitsetOf(t, 10, 2, 7)

	end := b.End()
	assert.Equal(t, int64(10), end.Position())
	assert.False(t, end.Valid())
	_, err := end.Value()
	assert.ErrorIs(t, err, bitset.ErrInvalidDereference)

	// Advancing past the end stays at the end.
	end.Next()
	assert.True(t, end.Equal(b.End()))

	it := b.Begin()
	v, err := it.Value()
	require.NoError(t, err)
	assert.Equal(t, uint64(2), v)

	// Stepping back from the first element reaches the -1 sentinel.
	it.Prev()
	assert.Equal(t, int64(-1), it.Position())
	_, err = it.Value()
	assert.ErrorIs(t, err, bitset.ErrInvalidDereference)

	it.Prev()
	assert.Equal(t, int64(-1), it.Position())

	// And forward again to the first element.
	it.Next()
	assert.True(t, it.Equal(b.Begin()))
}

func TestIteratorEquality(t *testing.T) {
	a := bitsetOf(t, 10, 3)
	b := bitsetOf(t, 10, 3)

	assert.True(t, a.Begin().Equal(a.Begin()))
	assert.False(t, a.Begin().Equal(b.Begin()), "different sets")
	assert.False(t, a.Begin().Equal(a.End()))
}

func TestEmptySetBeginIsEnd(t *testing.T) {
	for _, n := range testutil.Universes {
		b := bitset.New(n)
		assert.True(t, b.Begin().Equal(b.End()), "universe %d", n)
		assert.Empty(t, slices.Collect(b.All()))
		assert.Empty(t, slices.Collect(b.Backward()))
	}
}

func TestEraseAt(t *testing.T) {
	b := bitsetOf(t, 100, 1, 50, 99)

	it := b.Begin()
	it.Next()
	require.NoError(t, b.EraseAt(it))
	assert.Equal(t, []uint64{1, 99}, slices.Collect(b.All()))

	// The cursor still advances from its position after the erase.
	it.Next()
	v, err := it.Value()
	require.NoError(t, err)
	assert.Equal(t, uint64(99), v)

	assert.ErrorIs(t, b.EraseAt(b.End()), bitset.ErrInvalidDereference)

	other := bitsetOf(t, 100, 1)
	assert.ErrorIs(t, b.EraseAt(other.Begin()), bitset.ErrInvalidDereference)
	assert.Equal(t, uint64(1), other.Len())
}

func TestEraseWhileIterating(t *testing.T) {
	b := bitset.NewFilled(130, true)
	for it := b.Begin(); it.Valid(); it.Next() {
		v, _ := it.Value()
		if v%2 == 1 {
			require.NoError(t, b.EraseAt(it))
		}
	}
	assert.Equal(t, uint64(65), b.Len())
	for v := range b.All() {
		assert.Zero(t, v%2)
	}
}

func TestAllStopsEarly(t *testing.T) {
	b := bitset.NewFilled(200, true)
	var seen []uint64
	for v := range b.All() {
		if v == 3 {
			break
		}
		seen = append(seen, v)
	}
	assert.Equal(t, []uint64{0, 1, 2}, seen)

	seen = seen[:0]
	for v := range b.Backward() {
		if v == 197 {
			break
		}
		seen = append(seen, v)
	}
	assert.Equal(t, []uint64{199, 198}, seen)
}
