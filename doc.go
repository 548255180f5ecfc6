// Package labelset learns decision trees over fixed-universe label sets.
//
// A Problem describes NumPoints points. Each attribute and each label is a
// bitset.BitSet over [0, NumPoints): attribute a holds at point p when
// Attributes[a] contains p, and label l is a correct answer at p when
// Labels[l] contains p. A point may have several correct labels.
//
// # Quick Start
//
//	ctx := context.Background()
//	learner := labelset.New(labelset.WithLogLevel(slog.LevelDebug))
//	res, err := learner.Learn(ctx, problem)
//	if err != nil {
//	    return err
//	}
//	defer res.Release()
//	label, _ := res.Classify(problem, 3)
//
// # Learning
//
// The learner splits the point set recursively. A set that some label
// covers entirely becomes a leaf carrying that label. Otherwise it is split
// on the attribute with the lowest weighted label entropy, scored in
// parallel. Learning fails with ErrNoSplit when no attribute separates the
// remaining points and with ErrMaxDepth when the depth limit is reached.
//
// The tree lives in a dtree.Arena; see package dtree for the node model.
// Package bitset holds the set type itself.
package labelset
