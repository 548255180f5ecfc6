// Package bitset provides a fixed-universe, word-packed dense set of
// non-negative integers.
//
// A BitSet represents a subset of the universe [0, N). N is fixed when the
// set is created and never changes; there is no growth. Sets sharing a
// universe form a Boolean algebra and a partial order, which makes them
// cheap first-class values for labels and feature masks in learning and
// synthesis algorithms.
//
// # Memory Layout
//
//	┌────────────────────┬────────────────────┬──────────────────────────┐
//	│  word 0            │  word 1            │  word k-1 (trailing)     │
//	│  bits [0, 63]      │  bits [64, 127]    │  valid low bits │ padding│
//	└────────────────────┴────────────────────┴──────────────────────────┘
//
// Padding bits (positions >= N inside the trailing word) are always zero:
// fill, flip and complement mask the trailing word after they run, and
// single-bit operations reject indices >= N before touching any word.
//
// # Operations
//
//   - Membership: Set, Clear, Flip, Test, At (assignable Ref), Get
//   - Whole set: SetAll, ClearAll, FlipAll, Len, IsEmpty, IsFull
//   - Algebra: And/Or/Xor/AndNot/Not as copying functions, as named methods
//     (Intersection, Union, ...) and in place (IntersectWith, UnionWith, ...)
//   - Ordering: Equal, LessEqual, Less, Greater, GreaterEqual
//   - Traversal: NextSetAtOrAfter, PrevSetAtOrBefore, Iterator, All, Backward
//   - Keys: Hash, String
//
// # Universe Rules
//
// Binary algebra and ordering require both operands to share a universe and
// fail with ErrUniverseMismatch otherwise. Equal is total: sets over
// different universes are simply unequal.
//
// # Example Usage
//
//	a := bitset.New(8)
//	_ = a.Set(1)
//	_ = a.Set(3)
//	_ = a.Set(4)
//
//	fmt.Println(a)              // BitSet(8): {1, 3, 4}
//	fmt.Println(a.Complement()) // BitSet(8): {0, 2, 5, 6, 7}
//
//	for i := range a.All() {
//	    fmt.Println(i)
//	}
//
// A BitSet is not safe for concurrent mutation. Concurrent readers are fine.
package bitset
