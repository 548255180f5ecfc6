// Package kernel provides the word-level primitives behind bitset.BitSet.
//
// All kernels operate on []uint64 buffers where bit i of the logical set
// lives in word i/64 at bit position i%64. Binary kernels are two-operand
// (dst op= src) so a destination may alias either source of a copying
// operation: callers copy the left operand into the result first.
//
// # Population count
//
// PopcountWords dispatches through a function pointer selected at init:
//
//	Impl     Technique
//	swar     parallel bit-summing (no table, no per-bit loop)
//	native   math/bits.OnesCount64 (POPCNT / CNT when the CPU has it)
//
// The selection can be forced with LABELSET_POPCOUNT=swar|native.
package kernel
