package kernel

// WordBits is the width of one storage word.
const WordBits = 64

// AllOnes is a word with every bit set.
const AllOnes = ^uint64(0)

// NumWords returns the number of words needed to hold n bits.
func NumWords(n uint64) int {
	return int((n + WordBits - 1) / WordBits)
}

// Padding returns the number of allocated bits beyond n in the trailing word.
func Padding(n uint64) uint64 {
	return uint64(NumWords(n))*WordBits - n
}

// TailMask returns the mask of valid low bits in the trailing word of an
// n-bit buffer. It is AllOnes when n is a multiple of WordBits.
func TailMask(n uint64) uint64 {
	pad := Padding(n)
	if pad == 0 {
		return AllOnes
	}
	return AllOnes >> pad
}

// BitMask returns the single-bit mask for position i within its word.
func BitMask(i uint64) uint64 {
	return uint64(1) << (i % WordBits)
}

// AndWords performs dst[i] &= src[i] for all words.
func AndWords(dst, src []uint64) {
	// Process 4 words at a time (unrolled)
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &= src[i]
		dst[i+1] &= src[i+1]
		dst[i+2] &= src[i+2]
		dst[i+3] &= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &= src[i]
	}
}

// AndNotWords performs dst[i] &= ^src[i] for all words.
func AndNotWords(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &^= src[i]
		dst[i+1] &^= src[i+1]
		dst[i+2] &^= src[i+2]
		dst[i+3] &^= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &^= src[i]
	}
}

// OrWords performs dst[i] |= src[i] for all words.
func OrWords(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] |= src[i]
		dst[i+1] |= src[i+1]
		dst[i+2] |= src[i+2]
		dst[i+3] |= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] |= src[i]
	}
}

// XorWords performs dst[i] ^= src[i] for all words.
func XorWords(dst, src []uint64) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] ^= src[i]
		dst[i+1] ^= src[i+1]
		dst[i+2] ^= src[i+2]
		dst[i+3] ^= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] ^= src[i]
	}
}

// NotWords inverts an n-bit buffer in place and clears the padding bits of
// the trailing word.
func NotWords(words []uint64, n uint64) {
	for i := range words {
		words[i] = ^words[i]
	}
	MaskTail(words, n)
}

// FillWords sets every valid bit of an n-bit buffer; padding stays zero.
func FillWords(words []uint64, n uint64) {
	for i := range words {
		words[i] = AllOnes
	}
	MaskTail(words, n)
}

// ZeroWords clears the buffer.
func ZeroWords(words []uint64) {
	clear(words)
}

// MaskTail clears the padding bits of the trailing word of an n-bit buffer.
func MaskTail(words []uint64, n uint64) {
	if len(words) == 0 {
		return
	}
	words[len(words)-1] &= TailMask(n)
}

// IsZero reports whether every word is zero.
func IsZero(words []uint64) bool {
	for _, w := range words {
		if w != 0 {
			return false
		}
	}
	return true
}

// IsFull reports whether every valid bit of an n-bit buffer is set.
// Padding bits are not inspected.
func IsFull(words []uint64, n uint64) bool {
	if len(words) == 0 {
		return true
	}
	last := len(words) - 1
	for _, w := range words[:last] {
		if w != AllOnes {
			return false
		}
	}
	mask := TailMask(n)
	return words[last]&mask == mask
}

// EqualWords reports whether a and b hold the same words.
func EqualWords(a, b []uint64) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// SubsetWords reports whether every bit set in a is also set in b, and
// whether at least one word differs. a and b must have equal length.
func SubsetWords(a, b []uint64) (subset, proper bool) {
	for i := range a {
		if a[i]&b[i] != a[i] {
			return false, false
		}
		if a[i] != b[i] {
			proper = true
		}
	}
	return true, proper
}
