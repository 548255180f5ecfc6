package bitset_test

import (
	"testing"

	"github.com/hupe1980/labelset/bitset"
	"github.com/hupe1980/labelset/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bitsetOf(t *testing.T, universe uint64, elems ...uint64) *bitset.BitSet {
	t.Helper()
	b := bitset.New(universe)
	for _, e := range elems {
		require.NoError(t, b.Set(e))
	}
	return b
}

func TestNextSetAtOrAfter(t *testing.T) {
	b := bitsetOf(t, 200, 10, 63, 64, 130, 199)

	tests := []struct {
		start    uint64
		expected uint64
		found    bool
	}{
		{0, 10, true},
		{10, 10, true},
		{11, 63, true},
		{63, 63, true},
		{64, 64, true},
		{65, 130, true},
		{131, 199, true},
		{199, 199, true},
		{200, 200, false},
		{250, 250, false},
	}

	for _, tt := range tests {
		got, found := b.NextSetAtOrAfter(tt.start)
		assert.Equal(t, tt.found, found, "NextSetAtOrAfter(%d)", tt.start)
		assert.Equal(t, tt.expected, got, "NextSetAtOrAfter(%d)", tt.start)
	}

	// None beyond the start returns the universe size.
	got, found := bitsetOf(t, 200, 5).NextSetAtOrAfter(6)
	assert.False(t, found)
	assert.Equal(t, uint64(200), got)
}

func TestNextSetAfter(t *testing.T) {
	b := bitsetOf(t, 130, 0, 64, 129)

	got, ok := b.NextSetAfter(0)
	assert.True(t, ok)
	assert.Equal(t, uint64(64), got)

	got, ok = b.NextSetAfter(64)
	assert.True(t, ok)
	assert.Equal(t, uint64(129), got)

	_, ok = b.NextSetAfter(129)
	assert.False(t, ok)

	_, ok = b.NextSetAfter(^uint64(0))
	assert.False(t, ok)
}

func TestPrevSetAtOrBefore(t *testing.T) {
	b := bitsetOf(t, 200, 0, 63, 64, 130)

	tests := []struct {
		start    uint64
		expected uint64
		found    bool
	}{
		{0, 0, true},
		{1, 0, true},
		{62, 0, true},
		{63, 63, true},
		{64, 64, true},
		{129, 64, true},
		{130, 130, true},
		{199, 130, true},
		{1000, 130, true},
	}

	for _, tt := range tests {
		got, found := b.PrevSetAtOrBefore(tt.start)
		assert.Equal(t, tt.found, found, "PrevSetAtOrBefore(%d)", tt.start)
		if found {
			assert.Equal(t, tt.expected, got, "PrevSetAtOrBefore(%d)", tt.start)
		}
	}

	_, found := bitsetOf(t, 200, 100).PrevSetAtOrBefore(99)
	assert.False(t, found)

	_, found = bitsetOf(t, 200, 100).PrevSetAtOrBefore(0)
	assert.False(t, found)

	_, found = bitset.New(0).PrevSetAtOrBefore(0)
	assert.False(t, found)
}

func TestPrevSetBefore(t *testing.T) {
	b := bitsetOf(t, 70, 0, 69)

	_, ok := b.PrevSetBefore(0)
	assert.False(t, ok)

	got, ok := b.PrevSetBefore(1)
	assert.True(t, ok)
	assert.Equal(t, uint64(0), got)

	got, ok = b.PrevSetBefore(70)
	assert.True(t, ok)
	assert.Equal(t, uint64(69), got)

	got, ok = b.PrevSetBefore(69)
	assert.True(t, ok)
	assert.Equal(t, uint64(0), got)
}

func TestSearchMatchesOracle(t *testing.T) {
	rng := testutil.NewRNG(4711)
	for _, n := range testutil.Universes {
		for _, density := range []float64{0.01, 0.2, 0.8} {
			b := rng.BitSet(n, density)
			v := testutil.Bools(b)

			for p := range n {
				wantNext, wantNextOK := n, false
				for i := p; i < n; i++ {
					if v[i] {
						wantNext, wantNextOK = i, true
						break
					}
				}
				got, ok := b.NextSetAtOrAfter(p)
				assert.Equal(t, wantNextOK, ok, "next universe %d pos %d", n, p)
				assert.Equal(t, wantNext, got, "next universe %d pos %d", n, p)

				var wantPrev uint64
				wantPrevOK := false
				for i := int64(p); i >= 0; i-- {
					if v[i] {
						wantPrev, wantPrevOK = uint64(i), true
						break
					}
				}
				got, ok = b.PrevSetAtOrBefore(p)
				assert.Equal(t, wantPrevOK, ok, "prev universe %d pos %d", n, p)
				if wantPrevOK {
					assert.Equal(t, wantPrev, got, "prev universe %d pos %d", n, p)
				}
			}
		}
	}
}
