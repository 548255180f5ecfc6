package interop

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/labelset/bitset"
	"github.com/hupe1980/labelset/internal/conv"
)

// ToRoaring converts b to a 32-bit Roaring bitmap. Every element must fit in
// a uint32.
func ToRoaring(b *bitset.BitSet) (*roaring.Bitmap, error) {
	rb := roaring.New()
	if b.IsEmpty() {
		return rb, nil
	}
	last, _ := b.PrevSetAtOrBefore(b.Universe())
	if _, err := conv.Uint64ToUint32(last); err != nil {
		return nil, fmt.Errorf("interop: element %d does not fit a roaring bitmap: %w", last, err)
	}

	buf := make([]uint32, 0, 256)
	for i := range b.All() {
		buf = append(buf, uint32(i))
		if len(buf) == cap(buf) {
			rb.AddMany(buf)
			buf = buf[:0]
		}
	}
	rb.AddMany(buf)
	return rb, nil
}

// FromRoaring builds a BitSet over [0, universe) from rb. Elements outside
// the universe fail with bitset.ErrOutOfBounds.
func FromRoaring(universe uint64, rb *roaring.Bitmap) (*bitset.BitSet, error) {
	b := bitset.New(universe)
	if rb.IsEmpty() {
		return b, nil
	}
	if highest := uint64(rb.Maximum()); highest >= universe {
		return nil, fmt.Errorf("interop: %w", &bitset.IndexError{Index: highest, Universe: universe})
	}

	it := rb.Iterator()
	for it.HasNext() {
		if err := b.Set(uint64(it.Next())); err != nil {
			return nil, err
		}
	}
	return b, nil
}
