package labelset

import (
	"errors"
	"fmt"

	"github.com/hupe1980/labelset/bitset"
)

var (
	// ErrInvalidProblem is returned when a problem's sets do not share its
	// universe.
	ErrInvalidProblem = errors.New("labelset: invalid problem")
	// ErrNoLabels is returned for a problem without labels.
	ErrNoLabels = errors.New("labelset: problem has no labels")
	// ErrUncoveredPoint is returned when a point has no correct label.
	ErrUncoveredPoint = errors.New("labelset: point has no correct label")
	// ErrNoSplit is returned when no attribute separates a point set that no
	// single label covers.
	ErrNoSplit = errors.New("labelset: no attribute separates points")
	// ErrMaxDepth is returned when the tree would exceed the depth limit.
	ErrMaxDepth = errors.New("labelset: maximum depth exceeded")
	// ErrInvalidPoint is returned when classifying a point outside the problem.
	ErrInvalidPoint = errors.New("labelset: invalid point")
)

// LearnError reports where in the tree learning got stuck.
//
// The underlying sentinel (ErrNoSplit, ErrMaxDepth) can be matched with
// errors.Is.
type LearnError struct {
	Depth  int
	Points uint64
	cause  error
}

func (e *LearnError) Error() string {
	return fmt.Sprintf("%v (depth %d, %d points)", e.cause, e.Depth, e.Points)
}

func (e *LearnError) Unwrap() error { return e.cause }

func translateError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, bitset.ErrUniverseMismatch) {
		return fmt.Errorf("%w: %w", ErrInvalidProblem, err)
	}
	if errors.Is(err, bitset.ErrOutOfBounds) {
		return fmt.Errorf("%w: %w", ErrInvalidPoint, err)
	}

	return err
}
