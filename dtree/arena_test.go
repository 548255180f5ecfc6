package dtree

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildStump(t *testing.T, a *Arena, attr uint64) Ref {
	t.Helper()
	yes, err := a.NewLeaf(1)
	require.NoError(t, err)
	no, err := a.NewLeaf(0)
	require.NoError(t, err)
	root, err := a.NewSplit(attr, yes, no)
	require.NoError(t, err)
	require.NoError(t, a.Release(yes))
	require.NoError(t, a.Release(no))
	return root
}

func TestArenaLeaf(t *testing.T) {
	a := NewArena()
	ref, err := a.NewLeaf(42)
	require.NoError(t, err)
	assert.False(t, ref.IsZero())

	node, err := a.Node(ref)
	require.NoError(t, err)
	assert.Equal(t, KindLeaf, node.Kind)
	assert.Equal(t, uint64(42), node.LabelID)

	count, err := a.RefCount(ref)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), count)
	assert.Equal(t, 1, a.Live())
}

func TestArenaSplitRetainsChildren(t *testing.T) {
	a := NewArena()
	yes, err := a.NewLeaf(1)
	require.NoError(t, err)
	no, err := a.NewLeaf(0)
	require.NoError(t, err)

	root, err := a.NewSplit(3, yes, no)
	require.NoError(t, err)

	count, err := a.RefCount(yes)
	require.NoError(t, err)
	assert.Equal(t, uint32(2), count)

	require.NoError(t, a.Release(yes))
	require.NoError(t, a.Release(no))
	assert.Equal(t, 3, a.Live())

	node, err := a.Node(root)
	require.NoError(t, err)
	assert.Equal(t, KindSplit, node.Kind)
	assert.Equal(t, uint64(3), node.AttributeID)
	assert.Equal(t, yes, node.Positive)
	assert.Equal(t, no, node.Negative)

	require.NoError(t, a.Release(root))
	assert.Equal(t, 0, a.Live())
}

func TestArenaSharedChild(t *testing.T) {
	a := NewArena()
	leaf, err := a.NewLeaf(5)
	require.NoError(t, err)

	root, err := a.NewSplit(0, leaf, leaf)
	require.NoError(t, err)
	count, err := a.RefCount(leaf)
	require.NoError(t, err)
	assert.Equal(t, uint32(3), count)

	require.NoError(t, a.Release(leaf))
	require.NoError(t, a.Release(root))
	assert.Equal(t, 0, a.Live())
}

func TestArenaStaleRef(t *testing.T) {
	a := NewArena()
	old, err := a.NewLeaf(1)
	require.NoError(t, err)
	require.NoError(t, a.Release(old))

	_, err = a.Node(old)
	assert.ErrorIs(t, err, ErrStaleRef)
	assert.ErrorIs(t, a.Release(old), ErrStaleRef)
	assert.ErrorIs(t, a.Retain(old), ErrStaleRef)

	// The slot is reused under a new generation.
	fresh, err := a.NewLeaf(2)
	require.NoError(t, err)
	assert.Equal(t, old.index, fresh.index)
	assert.NotEqual(t, old, fresh)

	_, err = a.Node(old)
	assert.ErrorIs(t, err, ErrStaleRef)

	_, err = a.NewSplit(0, old, fresh)
	assert.ErrorIs(t, err, ErrStaleRef)
	_, err = a.NewSplit(0, fresh, Ref{})
	assert.ErrorIs(t, err, ErrStaleRef)
}

func TestArenaZeroRef(t *testing.T) {
	a := NewArena()
	var zero Ref
	assert.True(t, zero.IsZero())

	_, err := a.RefCount(zero)
	assert.ErrorIs(t, err, ErrStaleRef)
	_, err = a.Evaluate(zero, func(uint64) bool { return true })
	assert.ErrorIs(t, err, ErrStaleRef)
}

func TestArenaRetainKeepsSubtree(t *testing.T) {
	a := NewArena()
	root := buildStump(t, a, 9)

	node, err := a.Node(root)
	require.NoError(t, err)
	require.NoError(t, a.Retain(node.Positive))

	require.NoError(t, a.Release(root))
	assert.Equal(t, 1, a.Live())

	label, err := a.Evaluate(node.Positive, func(uint64) bool { return false })
	require.NoError(t, err)
	assert.Equal(t, uint64(1), label)

	_, err = a.Node(node.Negative)
	assert.ErrorIs(t, err, ErrStaleRef)
}

func TestArenaEvaluate(t *testing.T) {
	a := NewArena()
	inner := buildStump(t, a, 2)
	other, err := a.NewLeaf(7)
	require.NoError(t, err)
	root, err := a.NewSplit(1, inner, other)
	require.NoError(t, err)
	require.NoError(t, a.Release(inner))
	require.NoError(t, a.Release(other))

	tests := []struct {
		name  string
		attrs map[uint64]bool
		want  uint64
	}{
		{"both", map[uint64]bool{1: true, 2: true}, 1},
		{"outer only", map[uint64]bool{1: true}, 0},
		{"none", map[uint64]bool{}, 7},
		{"inner only", map[uint64]bool{2: true}, 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := a.Evaluate(root, func(id uint64) bool { return tt.attrs[id] })
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestArenaFormat(t *testing.T) {
	a := NewArena()
	root := buildStump(t, a, 4)

	out, err := a.Format(root)
	require.NoError(t, err)
	assert.Equal(t, "split attr=4\n  + leaf label=1\n  - leaf label=0\n", out)
}

func TestArenaConcurrentBuild(t *testing.T) {
	a := NewArena()
	var wg sync.WaitGroup
	roots := make([]Ref, 8)
	for i := range roots {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			yes, _ := a.NewLeaf(uint64(i))
			no, _ := a.NewLeaf(uint64(i + 100))
			roots[i], _ = a.NewSplit(uint64(i), yes, no)
			_ = a.Release(yes)
			_ = a.Release(no)
		}(i)
	}
	wg.Wait()
	assert.Equal(t, 24, a.Live())

	for i, root := range roots {
		label, err := a.Evaluate(root, func(uint64) bool { return true })
		require.NoError(t, err)
		assert.Equal(t, uint64(i), label)
		require.NoError(t, a.Release(root))
	}
	assert.Equal(t, 0, a.Live())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "split", KindSplit.String())
	assert.Equal(t, "leaf", KindLeaf.String())
	assert.Equal(t, "Kind(0)", Kind(0).String())
}
