package bitset

// Ref is an assignable handle to one element position of a BitSet.
// It does not own the set and is invalid after the set is moved.
type Ref struct {
	set   *BitSet
	index uint64
}

// At returns an assignable Ref for position i.
func (b *BitSet) At(i uint64) (Ref, error) {
	if err := b.check(i); err != nil {
		return Ref{}, err
	}
	return Ref{set: b, index: i}, nil
}

// Index returns the position the Ref is bound to.
func (r Ref) Index() uint64 {
	return r.index
}

// Value reads membership through the Ref. An invalid Ref reads as false.
func (r Ref) Value() bool {
	if r.set == nil {
		return false
	}
	v, err := r.set.Test(r.index)
	return err == nil && v
}

// Assign writes membership through the Ref.
func (r Ref) Assign(v bool) error {
	if r.set == nil {
		return &IndexError{Index: r.index}
	}
	if v {
		return r.set.Set(r.index)
	}
	return r.set.Clear(r.index)
}

// Equal compares the values read through both Refs.
func (r Ref) Equal(other Ref) bool {
	return r.Value() == other.Value()
}

// Is compares the value read through the Ref with v.
func (r Ref) Is(v bool) bool {
	return r.Value() == v
}

// Not returns the negated value.
func (r Ref) Not() bool {
	return !r.Value()
}
