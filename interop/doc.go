// Package interop converts between bitset.BitSet and the general-purpose
// bitmap libraries.
//
// RoaringBitmap is the compressed representation to use when a label set is
// handed to an inverted index or kept long-lived and sparse. bits-and-blooms
// bitsets are growable; converting to one drops the fixed universe, and
// converting back requires naming it again.
//
//	rb, err := interop.ToRoaring(labels)
//	back, err := interop.FromRoaring(labels.Universe(), rb)
package interop
