// Package dtree stores decision-tree nodes in a reference-counted arena.
//
// A tree is built bottom-up: leaves carry a label id, splits carry an
// attribute id and two children. Nodes are addressed by Ref, a slot index
// paired with the slot's generation. Releasing the last reference to a node
// frees its slot, bumps the generation and releases its children, so a Ref
// kept past that point fails with ErrStaleRef instead of reading whatever
// node reuses the slot.
//
//	a := dtree.NewArena()
//	yes, _ := a.NewLeaf(1)
//	no, _ := a.NewLeaf(0)
//	root, _ := a.NewSplit(7, yes, no) // root holds yes and no
//	_ = a.Release(yes)
//	_ = a.Release(no)
//	label, _ := a.Evaluate(root, func(attr uint64) bool { return attr == 7 })
package dtree
