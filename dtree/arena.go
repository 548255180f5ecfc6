package dtree

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"sync"
)

var (
	// ErrStaleRef is returned for a Ref whose node has been freed, or that
	// never belonged to the arena.
	ErrStaleRef = errors.New("dtree: stale node reference")
	// ErrArenaFull is returned when no more slots can be addressed.
	ErrArenaFull = errors.New("dtree: arena is full")
	// ErrRefOverflow is returned when a node's reference count would wrap.
	ErrRefOverflow = errors.New("dtree: reference count overflow")
)

type slot struct {
	node Node
	refs uint32
	gen  uint32
}

// Arena owns tree nodes. It is safe for concurrent use.
type Arena struct {
	mu    sync.Mutex
	slots []slot
	free  []uint32
	live  int
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// NewLeaf allocates a leaf holding label. The caller owns one reference.
func (a *Arena) NewLeaf(label uint64) (Ref, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.alloc(Node{Kind: KindLeaf, LabelID: label})
}

// NewSplit allocates a split on attr. The split retains both children; the
// caller keeps its own references to them and owns one reference to the
// split.
func (a *Arena) NewSplit(attr uint64, positive, negative Ref) (Ref, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	p, err := a.lookup(positive)
	if err != nil {
		return Ref{}, fmt.Errorf("positive child: %w", err)
	}
	n, err := a.lookup(negative)
	if err != nil {
		return Ref{}, fmt.Errorf("negative child: %w", err)
	}
	need := uint32(1)
	if positive == negative {
		need = 2
	}
	if p.refs > math.MaxUint32-need || n.refs > math.MaxUint32-need {
		return Ref{}, ErrRefOverflow
	}

	ref, err := a.alloc(Node{Kind: KindSplit, AttributeID: attr, Positive: positive, Negative: negative})
	if err != nil {
		return Ref{}, err
	}
	// alloc may grow slots, so index again.
	a.slots[positive.index].refs++
	a.slots[negative.index].refs++
	return ref, nil
}

// Retain adds a reference to ref.
func (a *Arena) Retain(ref Ref) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, err := a.lookup(ref)
	if err != nil {
		return err
	}
	if s.refs == math.MaxUint32 {
		return fmt.Errorf("%w: %s", ErrRefOverflow, ref)
	}
	s.refs++
	return nil
}

// Release drops a reference to ref. When the count reaches zero the node is
// freed and its children are released in turn.
func (a *Arena) Release(ref Ref) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if _, err := a.lookup(ref); err != nil {
		return err
	}

	pending := []Ref{ref}
	for len(pending) > 0 {
		r := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		s := &a.slots[r.index]
		s.refs--
		if s.refs > 0 {
			continue
		}
		if s.node.Kind == KindSplit {
			pending = append(pending, s.node.Positive, s.node.Negative)
		}
		a.freeSlot(r.index)
	}
	return nil
}

// RefCount returns the number of references held on ref.
func (a *Arena) RefCount(ref Ref) (uint32, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, err := a.lookup(ref)
	if err != nil {
		return 0, err
	}
	return s.refs, nil
}

// Node returns a copy of the node at ref.
func (a *Arena) Node(ref Ref) (Node, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	s, err := a.lookup(ref)
	if err != nil {
		return Node{}, err
	}
	return s.node, nil
}

// Live returns the number of allocated nodes.
func (a *Arena) Live() int {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.live
}

// Evaluate walks the tree from root, following Positive where attr reports
// true, and returns the label of the leaf reached.
func (a *Arena) Evaluate(root Ref, attr func(id uint64) bool) (uint64, error) {
	ref := root
	for {
		node, err := a.Node(ref)
		if err != nil {
			return 0, err
		}
		switch node.Kind {
		case KindLeaf:
			return node.LabelID, nil
		case KindSplit:
			if attr(node.AttributeID) {
				ref = node.Positive
			} else {
				ref = node.Negative
			}
		default:
			return 0, fmt.Errorf("dtree: node %s has unknown kind %s", ref, node.Kind)
		}
	}
}

// Format renders the tree under root, one node per line.
func (a *Arena) Format(root Ref) (string, error) {
	var sb strings.Builder
	if err := a.format(&sb, root, "", 0); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func (a *Arena) format(sb *strings.Builder, ref Ref, prefix string, depth int) error {
	node, err := a.Node(ref)
	if err != nil {
		return err
	}
	sb.WriteString(strings.Repeat("  ", depth))
	sb.WriteString(prefix)
	switch node.Kind {
	case KindLeaf:
		fmt.Fprintf(sb, "leaf label=%d\n", node.LabelID)
		return nil
	case KindSplit:
		fmt.Fprintf(sb, "split attr=%d\n", node.AttributeID)
		if err := a.format(sb, node.Positive, "+ ", depth+1); err != nil {
			return err
		}
		return a.format(sb, node.Negative, "- ", depth+1)
	default:
		return fmt.Errorf("dtree: node %s has unknown kind %s", ref, node.Kind)
	}
}

func (a *Arena) alloc(node Node) (Ref, error) {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		s := &a.slots[idx]
		s.node = node
		s.refs = 1
		a.live++
		return Ref{index: idx, gen: s.gen}, nil
	}
	if uint64(len(a.slots)) >= math.MaxUint32 {
		return Ref{}, ErrArenaFull
	}
	idx := uint32(len(a.slots)) //nolint:gosec // bounded above
	a.slots = append(a.slots, slot{node: node, refs: 1, gen: 1})
	a.live++
	return Ref{index: idx, gen: 1}, nil
}

func (a *Arena) freeSlot(idx uint32) {
	s := &a.slots[idx]
	s.node = Node{}
	s.gen++
	if s.gen == 0 {
		// Skip the zero generation so the zero Ref stays invalid.
		s.gen = 1
	}
	a.free = append(a.free, idx)
	a.live--
}

func (a *Arena) lookup(ref Ref) (*slot, error) {
	if ref.IsZero() || int(ref.index) >= len(a.slots) {
		return nil, fmt.Errorf("%w: %s", ErrStaleRef, ref)
	}
	s := &a.slots[ref.index]
	if s.gen != ref.gen || s.refs == 0 {
		return nil, fmt.Errorf("%w: %s", ErrStaleRef, ref)
	}
	return s, nil
}
