package bitset

import "github.com/hupe1980/labelset/internal/kernel"

// And returns the intersection of a and b.
func And(a, b *BitSet) (*BitSet, error) {
	return a.Intersection(b)
}

// Or returns the union of a and b.
func Or(a, b *BitSet) (*BitSet, error) {
	return a.Union(b)
}

// Xor returns the symmetric difference of a and b.
func Xor(a, b *BitSet) (*BitSet, error) {
	return a.SymmetricDifference(b)
}

// AndNot returns the elements of a that are not in b.
func AndNot(a, b *BitSet) (*BitSet, error) {
	return a.Difference(b)
}

// Not returns the complement of a within its universe.
func Not(a *BitSet) *BitSet {
	return a.Complement()
}

// Intersection returns a new set holding the elements in both b and other.
func (b *BitSet) Intersection(other *BitSet) (*BitSet, error) {
	return b.combine("intersection", other, kernel.AndWords)
}

// Union returns a new set holding the elements in b or other.
func (b *BitSet) Union(other *BitSet) (*BitSet, error) {
	return b.combine("union", other, kernel.OrWords)
}

// SymmetricDifference returns a new set holding the elements in exactly one
// of b and other.
func (b *BitSet) SymmetricDifference(other *BitSet) (*BitSet, error) {
	return b.combine("symmetric difference", other, kernel.XorWords)
}

// Difference returns a new set holding the elements of b not in other.
func (b *BitSet) Difference(other *BitSet) (*BitSet, error) {
	return b.combine("difference", other, kernel.AndNotWords)
}

// Complement returns a new set holding the elements of the universe not in b.
func (b *BitSet) Complement() *BitSet {
	out := b.Clone()
	out.Negate()
	return out
}

// IntersectWith keeps only the elements also in other.
func (b *BitSet) IntersectWith(other *BitSet) error {
	return b.apply("intersection", other, kernel.AndWords)
}

// UnionWith adds the elements of other.
func (b *BitSet) UnionWith(other *BitSet) error {
	return b.apply("union", other, kernel.OrWords)
}

// SymmetricDifferenceWith toggles the elements of other.
func (b *BitSet) SymmetricDifferenceWith(other *BitSet) error {
	return b.apply("symmetric difference", other, kernel.XorWords)
}

// DifferenceWith removes the elements of other.
func (b *BitSet) DifferenceWith(other *BitSet) error {
	return b.apply("difference", other, kernel.AndNotWords)
}

// Negate complements b in place.
func (b *BitSet) Negate() {
	kernel.NotWords(b.words, b.universe)
}

func (b *BitSet) combine(op string, other *BitSet, fn func(dst, src []uint64)) (*BitSet, error) {
	if err := checkUniverse(op, b, other); err != nil {
		return nil, err
	}
	out := b.Clone()
	fn(out.words, other.words)
	return out, nil
}

func (b *BitSet) apply(op string, other *BitSet, fn func(dst, src []uint64)) error {
	if err := checkUniverse(op, b, other); err != nil {
		return err
	}
	fn(b.words, other.words)
	return nil
}
