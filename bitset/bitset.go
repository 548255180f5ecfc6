package bitset

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hupe1980/labelset/internal/hash"
	"github.com/hupe1980/labelset/internal/kernel"
)

// BitSet is a dense set over the fixed universe [0, Universe()).
// The zero value is an empty set over the empty universe.
type BitSet struct {
	universe uint64
	words    []uint64
}

// New creates an empty BitSet over [0, universe).
func New(universe uint64) *BitSet {
	return &BitSet{
		universe: universe,
		words:    make([]uint64, kernel.NumWords(universe)),
	}
}

// NewFilled creates a BitSet over [0, universe) with every element present
// when value is true, or none when it is false.
func NewFilled(universe uint64, value bool) *BitSet {
	b := New(universe)
	if value {
		kernel.FillWords(b.words, universe)
	}
	return b
}

// FromWords creates a BitSet over [0, universe) from a copy of words.
// The word count must match the universe and padding bits must be zero.
func FromWords(universe uint64, words []uint64) (*BitSet, error) {
	if len(words) != kernel.NumWords(universe) {
		return nil, fmt.Errorf("%w: %d words for universe of size %d", ErrInvalidWords, len(words), universe)
	}
	if len(words) > 0 && words[len(words)-1]&^kernel.TailMask(universe) != 0 {
		return nil, fmt.Errorf("%w: padding bits set", ErrInvalidWords)
	}
	b := New(universe)
	copy(b.words, words)
	return b, nil
}

// Universe returns the size of the universe.
func (b *BitSet) Universe() uint64 {
	return b.universe
}

// Words returns a copy of the underlying word buffer.
func (b *BitSet) Words() []uint64 {
	return append([]uint64(nil), b.words...)
}

// Clone returns a deep copy.
func (b *BitSet) Clone() *BitSet {
	return &BitSet{
		universe: b.universe,
		words:    append(make([]uint64, 0, len(b.words)), b.words...),
	}
}

// CopyFrom replaces the receiver's universe and content with a deep copy of
// src.
func (b *BitSet) CopyFrom(src *BitSet) {
	if b == src {
		return
	}
	if len(b.words) != len(src.words) {
		b.words = make([]uint64, len(src.words))
	}
	copy(b.words, src.words)
	b.universe = src.universe
}

// Move transfers the buffer to a new BitSet. The receiver is left as an
// empty set over the empty universe; Refs and Iterators bound to it become
// invalid.
func (b *BitSet) Move() *BitSet {
	moved := &BitSet{universe: b.universe, words: b.words}
	b.universe = 0
	b.words = nil
	return moved
}

func (b *BitSet) check(i uint64) error {
	if i >= b.universe {
		return &IndexError{Index: i, Universe: b.universe}
	}
	return nil
}

// Set adds i to the set.
func (b *BitSet) Set(i uint64) error {
	if err := b.check(i); err != nil {
		return err
	}
	b.words[i/kernel.WordBits] |= kernel.BitMask(i)
	return nil
}

// Clear removes i from the set.
func (b *BitSet) Clear(i uint64) error {
	if err := b.check(i); err != nil {
		return err
	}
	b.words[i/kernel.WordBits] &^= kernel.BitMask(i)
	return nil
}

// Flip toggles i and returns its previous membership.
func (b *BitSet) Flip(i uint64) (bool, error) {
	if err := b.check(i); err != nil {
		return false, err
	}
	w := &b.words[i/kernel.WordBits]
	mask := kernel.BitMask(i)
	prev := *w&mask != 0
	*w ^= mask
	return prev, nil
}

// Test reports whether i is in the set.
func (b *BitSet) Test(i uint64) (bool, error) {
	if err := b.check(i); err != nil {
		return false, err
	}
	return b.words[i/kernel.WordBits]&kernel.BitMask(i) != 0, nil
}

// Get is read-only indexing. It is equivalent to Test.
func (b *BitSet) Get(i uint64) (bool, error) {
	return b.Test(i)
}

// Insert is an alias for Set.
func (b *BitSet) Insert(i uint64) error {
	return b.Set(i)
}

// Erase is an alias for Clear.
func (b *BitSet) Erase(i uint64) error {
	return b.Clear(i)
}

// SetAll adds every element of the universe.
func (b *BitSet) SetAll() {
	kernel.FillWords(b.words, b.universe)
}

// ClearAll removes every element.
func (b *BitSet) ClearAll() {
	kernel.ZeroWords(b.words)
}

// Reset is an alias for ClearAll.
func (b *BitSet) Reset() {
	b.ClearAll()
}

// FlipAll complements the set in place. It is equivalent to Negate.
func (b *BitSet) FlipAll() {
	kernel.NotWords(b.words, b.universe)
}

// Len returns the number of elements (the cardinality).
func (b *BitSet) Len() uint64 {
	return uint64(kernel.PopcountWords(b.words))
}

// Size is an alias for Len.
func (b *BitSet) Size() uint64 {
	return b.Len()
}

// IsEmpty reports whether the set has no elements.
func (b *BitSet) IsEmpty() bool {
	return kernel.IsZero(b.words)
}

// IsFull reports whether every element of the universe is present.
// The empty universe is both empty and full.
func (b *BitSet) IsFull() bool {
	return kernel.IsFull(b.words, b.universe)
}

// Equal reports whether both sets share a universe and hold the same
// elements. Unlike the ordering methods it never fails.
func (b *BitSet) Equal(other *BitSet) bool {
	return b.universe == other.universe && kernel.EqualWords(b.words, other.words)
}

// LessEqual reports whether b is a subset of other (b <= other).
func (b *BitSet) LessEqual(other *BitSet) (bool, error) {
	if err := checkUniverse("subset test", b, other); err != nil {
		return false, err
	}
	subset, _ := kernel.SubsetWords(b.words, other.words)
	return subset, nil
}

// Less reports whether b is a proper subset of other (b < other).
func (b *BitSet) Less(other *BitSet) (bool, error) {
	if err := checkUniverse("proper subset test", b, other); err != nil {
		return false, err
	}
	subset, proper := kernel.SubsetWords(b.words, other.words)
	return subset && proper, nil
}

// Greater is the negation of LessEqual. On a partial order this is not the
// same as being a proper superset: incomparable sets are also Greater.
func (b *BitSet) Greater(other *BitSet) (bool, error) {
	le, err := b.LessEqual(other)
	if err != nil {
		return false, err
	}
	return !le, nil
}

// GreaterEqual is the negation of Less.
func (b *BitSet) GreaterEqual(other *BitSet) (bool, error) {
	lt, err := b.Less(other)
	if err != nil {
		return false, err
	}
	return !lt, nil
}

// IsSubsetOf is an alias for LessEqual.
func (b *BitSet) IsSubsetOf(other *BitSet) (bool, error) {
	return b.LessEqual(other)
}

// IsProperSubsetOf is an alias for Less.
func (b *BitSet) IsProperSubsetOf(other *BitSet) (bool, error) {
	return b.Less(other)
}

// Hash returns a 64-bit content hash of the word buffer. Sets that are
// Equal hash equal.
func (b *BitSet) Hash() uint64 {
	return hash.Words(b.words)
}

// String renders the set as "BitSet(N): {e1, e2, ...}".
func (b *BitSet) String() string {
	var sb strings.Builder
	sb.WriteString("BitSet(")
	sb.WriteString(strconv.FormatUint(b.universe, 10))
	sb.WriteString("): {")
	first := true
	for i := range b.All() {
		if !first {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatUint(i, 10))
		first = false
	}
	sb.WriteString("}")
	return sb.String()
}
