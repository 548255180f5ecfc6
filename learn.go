package labelset

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/hupe1980/labelset/bitset"
	"github.com/hupe1980/labelset/dtree"
	"golang.org/x/sync/errgroup"
)

// Problem is a learning problem over NumPoints points.
type Problem struct {
	NumPoints  uint64
	Attributes []*bitset.BitSet
	Labels     []*bitset.BitSet
}

// Validate checks that every set shares the problem's universe and that
// every point has at least one correct label.
func (p *Problem) Validate() error {
	if len(p.Labels) == 0 {
		return ErrNoLabels
	}
	check := func(kind string, sets []*bitset.BitSet) error {
		for i, s := range sets {
			if s == nil {
				return fmt.Errorf("%w: %s %d is nil", ErrInvalidProblem, kind, i)
			}
			if s.Universe() != p.NumPoints {
				return translateError(&bitset.MismatchError{
					Op:    fmt.Sprintf("%s %d", kind, i),
					Left:  p.NumPoints,
					Right: s.Universe(),
				})
			}
		}
		return nil
	}
	if err := check("attribute", p.Attributes); err != nil {
		return err
	}
	if err := check("label", p.Labels); err != nil {
		return err
	}

	covered := bitset.New(p.NumPoints)
	for _, l := range p.Labels {
		if err := covered.UnionWith(l); err != nil {
			return translateError(err)
		}
	}
	if !covered.IsFull() {
		covered.Negate()
		point, _ := covered.NextSetAtOrAfter(0)
		return fmt.Errorf("%w: %d", ErrUncoveredPoint, point)
	}
	return nil
}

// Result is a learned tree. The caller owns one reference to Root.
type Result struct {
	Arena *dtree.Arena
	Root  dtree.Ref
}

// Classify returns the label the tree assigns to point.
func (r *Result) Classify(p *Problem, point uint64) (uint64, error) {
	if point >= p.NumPoints {
		return 0, translateError(&bitset.IndexError{Index: point, Universe: p.NumPoints})
	}

	var attrErr error
	label, err := r.Arena.Evaluate(r.Root, func(id uint64) bool {
		if id >= uint64(len(p.Attributes)) {
			attrErr = fmt.Errorf("%w: attribute %d not in problem", ErrInvalidProblem, id)
			return false
		}
		v, err := p.Attributes[id].Test(point)
		if err != nil && attrErr == nil {
			attrErr = translateError(err)
		}
		return v
	})
	if err != nil {
		return 0, err
	}
	if attrErr != nil {
		return 0, attrErr
	}
	return label, nil
}

// Format renders the learned tree.
func (r *Result) Format() (string, error) {
	return r.Arena.Format(r.Root)
}

// Release drops the result's reference to the tree.
func (r *Result) Release() error {
	return r.Arena.Release(r.Root)
}

// Learner builds decision trees. It is safe for concurrent use.
type Learner struct {
	opts options
}

// New creates a Learner.
func New(optFns ...Option) *Learner {
	return &Learner{opts: applyOptions(optFns)}
}

// Learn builds a tree that assigns every point of p one of its correct
// labels.
func (l *Learner) Learn(ctx context.Context, p *Problem) (*Result, error) {
	start := time.Now()
	logger := l.opts.logger.WithUniverse(p.NumPoints)

	res, err := l.learn(ctx, logger, p)

	nodes := 0
	if res != nil {
		nodes = res.Arena.Live()
	}
	l.opts.metricsCollector.RecordLearn(time.Since(start), nodes, err)
	logger.LogLearn(ctx, len(p.Attributes), len(p.Labels), nodes, err)
	return res, err
}

func (l *Learner) learn(ctx context.Context, logger *Logger, p *Problem) (*Result, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	b := &builder{
		opts:   l.opts,
		logger: logger,
		p:      p,
		arena:  dtree.NewArena(),
		used:   bitset.New(uint64(len(p.Attributes))),
	}
	root, err := b.build(ctx, bitset.NewFilled(p.NumPoints, true), 0)
	if err != nil {
		return nil, err
	}
	return &Result{Arena: b.arena, Root: root}, nil
}

type builder struct {
	opts   options
	logger *Logger
	p      *Problem
	arena  *dtree.Arena
	// Attributes already split on along the current path.
	used *bitset.BitSet
}

func (b *builder) build(ctx context.Context, points *bitset.BitSet, depth int) (dtree.Ref, error) {
	if err := ctx.Err(); err != nil {
		return dtree.Ref{}, err
	}

	if label, ok := b.coveringLabel(points); ok {
		b.opts.metricsCollector.RecordLeaf(label, points.Len())
		b.logger.WithDepth(depth).LogLeaf(ctx, label, points.Len())
		return b.arena.NewLeaf(uint64(label))
	}

	if depth >= b.opts.maxDepth {
		return dtree.Ref{}, &LearnError{Depth: depth, Points: points.Len(), cause: ErrMaxDepth}
	}

	attr, score, err := b.bestAttribute(ctx, points)
	if err != nil {
		return dtree.Ref{}, err
	}
	if attr < 0 {
		return dtree.Ref{}, &LearnError{Depth: depth, Points: points.Len(), cause: ErrNoSplit}
	}
	b.opts.metricsCollector.RecordSplit(attr, points.Len())
	b.logger.WithDepth(depth).LogSplit(ctx, attr, points.Len(), score)

	positive, err := points.Intersection(b.p.Attributes[attr])
	if err != nil {
		return dtree.Ref{}, translateError(err)
	}
	negative, err := points.Difference(b.p.Attributes[attr])
	if err != nil {
		return dtree.Ref{}, translateError(err)
	}

	id := uint64(attr)
	_ = b.used.Set(id)
	defer func() { _ = b.used.Clear(id) }()

	pos, err := b.build(ctx, positive, depth+1)
	if err != nil {
		return dtree.Ref{}, err
	}
	neg, err := b.build(ctx, negative, depth+1)
	if err != nil {
		_ = b.arena.Release(pos)
		return dtree.Ref{}, err
	}

	split, err := b.arena.NewSplit(id, pos, neg)
	// The split holds its own references to the children.
	_ = b.arena.Release(pos)
	_ = b.arena.Release(neg)
	return split, err
}

// coveringLabel returns the label containing every point, preferring the
// label with the most points overall and then the lowest id.
func (b *builder) coveringLabel(points *bitset.BitSet) (int, bool) {
	best, bestLen := -1, uint64(0)
	for i, l := range b.p.Labels {
		covers, err := points.LessEqual(l)
		if err != nil || !covers {
			continue
		}
		if n := l.Len(); best < 0 || n > bestLen {
			best, bestLen = i, n
		}
	}
	return best, best >= 0
}

// bestAttribute scores every unused attribute that divides points into two
// non-empty sides and returns the one with the lowest weighted entropy, or
// -1 when none does.
func (b *builder) bestAttribute(ctx context.Context, points *bitset.BitSet) (int, float64, error) {
	scores := make([]float64, len(b.p.Attributes))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.opts.parallelism)

	for a, attr := range b.p.Attributes {
		scores[a] = math.NaN()
		if used, _ := b.used.Test(uint64(a)); used {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			score, ok, err := b.score(points, attr)
			if err != nil {
				return err
			}
			if ok {
				scores[a] = score
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return -1, 0, translateError(err)
	}

	best, bestScore := -1, math.Inf(1)
	for a, s := range scores {
		if !math.IsNaN(s) && s < bestScore {
			best, bestScore = a, s
		}
	}
	return best, bestScore, nil
}

// score returns the entropy of the label distribution on each side of the
// split, weighted by side size. ok is false when one side is empty.
func (b *builder) score(points, attr *bitset.BitSet) (float64, bool, error) {
	positive, err := points.Intersection(attr)
	if err != nil {
		return 0, false, err
	}
	negative, err := points.Difference(attr)
	if err != nil {
		return 0, false, err
	}
	if positive.IsEmpty() || negative.IsEmpty() {
		return 0, false, nil
	}

	total := float64(points.Len())
	var score float64
	for _, side := range []*bitset.BitSet{positive, negative} {
		h, err := b.entropy(side)
		if err != nil {
			return 0, false, err
		}
		score += float64(side.Len()) / total * h
	}
	return score, true, nil
}

// entropy is the Shannon entropy, in bits, of the label distribution over
// side, where each label is weighted by how many points of side it covers.
func (b *builder) entropy(side *bitset.BitSet) (float64, error) {
	counts := make([]float64, len(b.p.Labels))
	var sum float64
	for i, l := range b.p.Labels {
		common, err := side.Intersection(l)
		if err != nil {
			return 0, err
		}
		counts[i] = float64(common.Len())
		sum += counts[i]
	}
	if sum == 0 {
		return 0, nil
	}

	var h float64
	for _, c := range counts {
		if c > 0 {
			q := c / sum
			h -= q * math.Log2(q)
		}
	}
	return h, nil
}
