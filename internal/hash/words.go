package hash

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Seed is the fixed xxHash64 seed for content hashes.
const Seed uint64 = 0x6c62272e07bb0142

// scratchWords bounds the stack buffer used to feed the digest.
const scratchWords = 32

// New returns a digest primed with Seed.
func New() *xxhash.Digest {
	return xxhash.NewWithSeed(Seed)
}

// WriteWords feeds words to d as little-endian bytes.
func WriteWords(d *xxhash.Digest, words []uint64) {
	var buf [scratchWords * 8]byte
	for len(words) > 0 {
		n := min(len(words), scratchWords)
		for i, w := range words[:n] {
			binary.LittleEndian.PutUint64(buf[i*8:], w)
		}
		// Digest.Write never fails.
		_, _ = d.Write(buf[:n*8])
		words = words[n:]
	}
}

// Words computes the content hash of a word buffer.
func Words(words []uint64) uint64 {
	d := New()
	WriteWords(d, words)
	return d.Sum64()
}
