package bitset

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is returned when an index is not below the universe size.
	ErrOutOfBounds = errors.New("bitset: index out of bounds")

	// ErrUniverseMismatch is returned when a binary or ordering operation is
	// applied to sets over different universes.
	ErrUniverseMismatch = errors.New("bitset: universe size mismatch")

	// ErrInvalidDereference is returned when an iterator is read at a sentinel
	// position.
	ErrInvalidDereference = errors.New("bitset: invalid iterator dereference")

	// ErrInvalidWords is returned by FromWords for a malformed word buffer.
	ErrInvalidWords = errors.New("bitset: invalid word buffer")

	// ErrInternalInvariant signals a bug in this package, not caller misuse.
	ErrInternalInvariant = errors.New("bitset: internal invariant violated")
)

// IndexError reports an out-of-bounds index.
//
// It matches ErrOutOfBounds via errors.Is.
type IndexError struct {
	Index    uint64
	Universe uint64
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("bitset: index %d out of bounds for universe of size %d", e.Index, e.Universe)
}

func (e *IndexError) Unwrap() error { return ErrOutOfBounds }

// MismatchError reports an operation between sets over different universes.
//
// It matches ErrUniverseMismatch via errors.Is.
type MismatchError struct {
	Op    string
	Left  uint64
	Right uint64
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("bitset: %s on universes of size %d and %d", e.Op, e.Left, e.Right)
}

func (e *MismatchError) Unwrap() error { return ErrUniverseMismatch }

func checkUniverse(op string, a, b *BitSet) error {
	if a.universe != b.universe {
		return &MismatchError{Op: op, Left: a.universe, Right: b.universe}
	}
	return nil
}

// invariant panics with ErrInternalInvariant. It guards paths the search
// algorithms prove unreachable.
func invariant(format string, args ...any) {
	panic(fmt.Errorf("%w: %s", ErrInternalInvariant, fmt.Sprintf(format, args...)))
}
