package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/labelset/bitset"
)

// Universes are the sizes the bitset tests sweep: empty, a single bit, and
// both sides of one and two word boundaries.
var Universes = []uint64{0, 1, 8, 63, 64, 65, 127, 128, 129, 200}

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint64 returns a pseudo-random uint64.
func (r *RNG) Uint64() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint64()
}

// Float64 returns, as a float64, a pseudo-random number in [0.0,1.0).
func (r *RNG) Float64() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Float64()
}

// BitSet returns a random set over [0, universe) where each element is
// present with probability density.
func (r *RNG) BitSet(universe uint64, density float64) *bitset.BitSet {
	r.mu.Lock()
	defer r.mu.Unlock()

	b := bitset.New(universe)
	for i := range universe {
		if r.rand.Float64() < density {
			_ = b.Set(i)
		}
	}
	return b
}

// BitSetPair returns two independent random sets over the same universe.
func (r *RNG) BitSetPair(universe uint64, density float64) (*bitset.BitSet, *bitset.BitSet) {
	return r.BitSet(universe, density), r.BitSet(universe, density)
}

// Bools reads b one index at a time.
func Bools(b *bitset.BitSet) []bool {
	out := make([]bool, b.Universe())
	for i := range out {
		out[i], _ = b.Test(uint64(i))
	}
	return out
}

// FromBools builds a set over [0, len(v)) holding the indices where v is true.
func FromBools(v []bool) *bitset.BitSet {
	b := bitset.New(uint64(len(v)))
	for i, ok := range v {
		if ok {
			_ = b.Set(uint64(i))
		}
	}
	return b
}

// Members returns the indices where v is true, ascending.
func Members(v []bool) []uint64 {
	var out []uint64
	for i, ok := range v {
		if ok {
			out = append(out, uint64(i))
		}
	}
	return out
}

// Count returns the number of true entries in v.
func Count(v []bool) uint64 {
	var n uint64
	for _, ok := range v {
		if ok {
			n++
		}
	}
	return n
}
