// Package conv provides checked integer conversions.
//
// Universes and element indices are uint64 throughout labelset. Some
// collaborators use narrower or signed types: RoaringBitmap stores uint32,
// bits-and-blooms indexes with uint, and iterator positions are int64 so
// they can hold the -1 sentinel. These helpers reject values that would
// wrap instead of truncating them silently.
//
// For conversions that are provably safe by construction (loop indices,
// values already bounded by a universe), use direct casts instead.
package conv
