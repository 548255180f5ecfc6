package kernel

import "math/bits"

const (
	m1  = 0x5555555555555555
	m2  = 0x3333333333333333
	m4  = 0x0F0F0F0F0F0F0F0F
	h01 = 0x0101010101010101
)

// kernelPopcountWords is replaced at init when a native popcount is selected.
var kernelPopcountWords = popcountWordsSWAR

// PopcountWords counts all set bits across words.
func PopcountWords(words []uint64) int {
	return kernelPopcountWords(words)
}

// Popcount64 counts the set bits of x by parallel bit-summing: pairs, then
// nibbles, then bytes, with the byte sums folded by a multiply.
func Popcount64(x uint64) int {
	x -= (x >> 1) & m1
	x = (x & m2) + ((x >> 2) & m2)
	x = (x + (x >> 4)) & m4
	return int((x * h01) >> 56)
}

func popcountWordsSWAR(words []uint64) int {
	count := 0
	// Process 4 words at a time
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += Popcount64(words[i])
		count += Popcount64(words[i+1])
		count += Popcount64(words[i+2])
		count += Popcount64(words[i+3])
	}
	for ; i < len(words); i++ {
		count += Popcount64(words[i])
	}
	return count
}

func popcountWordsNative(words []uint64) int {
	count := 0
	i := 0
	for ; i+4 <= len(words); i += 4 {
		count += bits.OnesCount64(words[i])
		count += bits.OnesCount64(words[i+1])
		count += bits.OnesCount64(words[i+2])
		count += bits.OnesCount64(words[i+3])
	}
	for ; i < len(words); i++ {
		count += bits.OnesCount64(words[i])
	}
	return count
}
