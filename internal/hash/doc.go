// Package hash provides the fixed-seed content hash used for BitSet keys.
//
// # xxHash64
//
// Content hashes use xxHash64 with a fixed seed over the little-endian bytes
// of a word buffer:
//
//   - Deterministic across processes and platforms (byte order is fixed)
//   - Non-cryptographic: equal content gives equal hashes, collisions are
//     possible and callers must still compare with Equal
//   - ~10 GB/s on modern CPUs, no allocation for buffers of any size
//
// # Usage
//
//	h := hash.Words(words)
//
// For streaming:
//
//	d := hash.New()
//	hash.WriteWords(d, chunk1)
//	hash.WriteWords(d, chunk2)
//	sum := d.Sum64()
package hash
