package bitset

import (
	"fmt"
	"iter"
)

// Iterator is a bidirectional cursor over the elements of a BitSet in
// ascending order. Its position is an element, Universe() (past the end) or
// -1 (before the beginning).
//
// Iterators do not own the set and observe mutations made through it.
type Iterator struct {
	set *BitSet
	pos int64
}

// Begin returns an Iterator at the smallest element, or End() if the set is
// empty.
func (b *BitSet) Begin() Iterator {
	first, _ := b.NextSetAtOrAfter(0)
	return Iterator{set: b, pos: int64(first)}
}

// End returns an Iterator at the past-the-end position.
func (b *BitSet) End() Iterator {
	return Iterator{set: b, pos: b.end()}
}

// Universe sizes are bounded by allocatable memory, far below 1<<63.
func (b *BitSet) end() int64 {
	return int64(b.universe)
}

// Position returns the raw position, including the sentinels.
func (it Iterator) Position() int64 {
	return it.pos
}

// Valid reports whether the Iterator is at an element position.
func (it Iterator) Valid() bool {
	return it.set != nil && it.pos >= 0 && it.pos < it.set.end()
}

// Value returns the element under the Iterator.
func (it Iterator) Value() (uint64, error) {
	if !it.Valid() {
		return 0, fmt.Errorf("%w: position %d", ErrInvalidDereference, it.pos)
	}
	return uint64(it.pos), nil
}

// Next advances to the next larger element, or to the past-the-end position.
func (it *Iterator) Next() {
	var (
		next uint64
		ok   bool
	)
	if it.pos < 0 {
		next, ok = it.set.NextSetAtOrAfter(0)
	} else {
		next, ok = it.set.NextSetAfter(uint64(it.pos))
	}
	if !ok {
		it.pos = it.set.end()
		return
	}
	it.pos = int64(next)
}

// Prev moves to the next smaller element, or to -1.
func (it *Iterator) Prev() {
	if it.pos <= 0 {
		it.pos = -1
		return
	}
	prev, ok := it.set.PrevSetBefore(uint64(it.pos))
	if !ok {
		it.pos = -1
		return
	}
	it.pos = int64(prev)
}

// Equal reports whether both Iterators are bound to the same set at the
// same position.
func (it Iterator) Equal(other Iterator) bool {
	return it.set == other.set && it.pos == other.pos
}

// EraseAt removes the element under it.
func (b *BitSet) EraseAt(it Iterator) error {
	i, err := it.Value()
	if err != nil {
		return err
	}
	if it.set != b {
		return fmt.Errorf("%w: iterator bound to another set", ErrInvalidDereference)
	}
	return b.Clear(i)
}

// All returns an iterator over the elements in ascending order.
func (b *BitSet) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for i, ok := b.NextSetAtOrAfter(0); ok; i, ok = b.NextSetAfter(i) {
			if !yield(i) {
				return
			}
		}
	}
}

// Backward returns an iterator over the elements in descending order.
func (b *BitSet) Backward() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for i, ok := b.PrevSetAtOrBefore(b.universe); ok; i, ok = b.PrevSetBefore(i) {
			if !yield(i) {
				return
			}
		}
	}
}

// AppendTo appends the elements in ascending order to dst.
func (b *BitSet) AppendTo(dst []uint64) []uint64 {
	for i := range b.All() {
		dst = append(dst, i)
	}
	return dst
}
