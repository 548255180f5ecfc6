package dtree

import "fmt"

// Kind tags the variant held by a Node.
type Kind uint8

const (
	// KindSplit tests an attribute and continues in Positive or Negative.
	KindSplit Kind = iota + 1
	// KindLeaf yields LabelID.
	KindLeaf
)

func (k Kind) String() string {
	switch k {
	case KindSplit:
		return "split"
	case KindLeaf:
		return "leaf"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Node is a tree node. AttributeID, Positive and Negative are set for
// KindSplit; LabelID is set for KindLeaf.
type Node struct {
	Kind        Kind
	AttributeID uint64
	Positive    Ref
	Negative    Ref
	LabelID     uint64
}

// Ref addresses a node in an Arena. The zero Ref is never valid.
type Ref struct {
	index uint32
	gen   uint32
}

// IsZero reports whether r is the zero Ref.
func (r Ref) IsZero() bool {
	return r.gen == 0
}

func (r Ref) String() string {
	return fmt.Sprintf("#%d.%d", r.index, r.gen)
}
