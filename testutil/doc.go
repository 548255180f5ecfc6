// Package testutil provides testing utilities for labelset.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded RNG, random BitSet generation and a per-index
// boolean oracle to check word-level results against.
//
// # Random Sets
//
//	rng := testutil.NewRNG(seed)
//	a := rng.BitSet(65, 0.5)        // each element present with p=0.5
//	a, b := rng.BitSetPair(128, 0.3)
//
// # Oracle
//
//	want := testutil.Bools(a)       // []bool via Test, one index at a time
//	got := testutil.FromBools(want) // back to a BitSet
package testutil
