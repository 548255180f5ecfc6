package bitset

import (
	"math/bits"

	"github.com/hupe1980/labelset/internal/kernel"
)

// NextSetAtOrAfter returns the smallest element >= pos.
//
// When pos >= Universe() it returns (pos, false). When no element is found
// it returns (Universe(), false).
func (b *BitSet) NextSetAtOrAfter(pos uint64) (uint64, bool) {
	if pos >= b.universe {
		return pos, false
	}

	// 1. The rest of the word containing pos
	wi := pos / kernel.WordBits
	if w := b.words[wi] >> (pos % kernel.WordBits); w != 0 {
		return b.found(pos + lowestSetBit(w))
	}

	// 2. Skip zero words, then the lowest bit of the first nonzero word
	for wi++; wi < uint64(len(b.words)); wi++ {
		if w := b.words[wi]; w != 0 {
			return b.found(wi*kernel.WordBits + lowestSetBit(w))
		}
	}
	return b.universe, false
}

// NextSetAfter returns the smallest element > pos, with the same results as
// NextSetAtOrAfter(pos + 1).
func (b *BitSet) NextSetAfter(pos uint64) (uint64, bool) {
	if pos >= b.universe {
		return pos + 1, false
	}
	return b.NextSetAtOrAfter(pos + 1)
}

// PrevSetAtOrBefore returns the largest element <= pos. Positions beyond the
// universe are clamped to its last index. ok is false when there is none.
func (b *BitSet) PrevSetAtOrBefore(pos uint64) (uint64, bool) {
	if b.universe == 0 {
		return 0, false
	}
	if pos == 0 {
		return 0, b.words[0]&1 != 0
	}
	pos = min(pos, b.universe-1)

	// 1. The word containing pos, from pos's bit downward
	wi := int(pos / kernel.WordBits)
	if w := b.words[wi] << (kernel.WordBits - 1 - pos%kernel.WordBits); w != 0 {
		return b.found(pos - uint64(bits.LeadingZeros64(w)))
	}

	// 2. Skip zero words, then the highest bit of the first nonzero word
	for wi--; wi >= 0; wi-- {
		if w := b.words[wi]; w != 0 {
			return b.found(uint64(wi)*kernel.WordBits + highestSetBit(w))
		}
	}
	return 0, false
}

// PrevSetBefore returns the largest element < pos.
func (b *BitSet) PrevSetBefore(pos uint64) (uint64, bool) {
	if pos == 0 {
		return 0, false
	}
	return b.PrevSetAtOrBefore(pos - 1)
}

// found validates a search hit. Padding bits are never set, so a hit at or
// beyond the universe means the buffer was corrupted.
func (b *BitSet) found(i uint64) (uint64, bool) {
	if i >= b.universe {
		invariant("search hit %d beyond universe of size %d", i, b.universe)
	}
	return i, true
}

func lowestSetBit(w uint64) uint64 {
	if w == 0 {
		invariant("lowest set bit of a zero word")
	}
	return uint64(bits.TrailingZeros64(w))
}

func highestSetBit(w uint64) uint64 {
	if w == 0 {
		invariant("highest set bit of a zero word")
	}
	return uint64(kernel.WordBits - 1 - bits.LeadingZeros64(w))
}
