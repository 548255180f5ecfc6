package interop

import (
	"fmt"

	bbitset "github.com/bits-and-blooms/bitset"
	"github.com/hupe1980/labelset/bitset"
	"github.com/hupe1980/labelset/internal/conv"
)

// ToBitsAndBlooms converts b to a bits-and-blooms bitset of length
// b.Universe().
func ToBitsAndBlooms(b *bitset.BitSet) (*bbitset.BitSet, error) {
	length, err := conv.Uint64ToUint(b.Universe())
	if err != nil {
		return nil, fmt.Errorf("interop: universe too large: %w", err)
	}
	out := bbitset.New(length)
	for i := range b.All() {
		out.Set(uint(i))
	}
	return out, nil
}

// FromBitsAndBlooms builds a BitSet over [0, universe) from bb. Elements
// outside the universe fail with bitset.ErrOutOfBounds.
func FromBitsAndBlooms(universe uint64, bb *bbitset.BitSet) (*bitset.BitSet, error) {
	b := bitset.New(universe)
	for i, ok := bb.NextSet(0); ok; i, ok = bb.NextSet(i + 1) {
		if err := b.Set(uint64(i)); err != nil {
			return nil, fmt.Errorf("interop: %w", err)
		}
	}
	return b, nil
}
