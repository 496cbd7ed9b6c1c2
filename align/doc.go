// Package align implements pairwise sequence alignment by dynamic
// programming: global (Needleman-Wunsch) and local (Smith-Waterman)
// matrix fill under a pluggable scoring model, plus traceback of one
// optimal alignment.
//
// The fill recurrence is parametric over a scoring.Objective, so the
// same code maximizes similarity scores and minimizes edit costs;
// only the local variant is restricted to maximization (its zero
// floor has no meaning for cost minimization and is rejected with
// ErrLocalMinimize).
//
// Key features:
//   - full-matrix mode: exact O(M·N) time & memory, score + traceback
//   - two-rows mode: O(N) memory when only the score is needed
//   - deterministic traceback: ties resolve diagonal, then up, then
//     left, so identical inputs always reconstruct the same alignment
//   - empty sequences are valid inputs, never errors
//
// Usage:
//
//	import (
//	    "github.com/katalvlaran/seqalign/align"
//	    "github.com/katalvlaran/seqalign/scoring"
//	)
//
//	// optimal global score only, rolling storage
//	opts := align.DefaultOptions()
//	opts.MemoryMode = align.TwoRows
//	score, err := align.Score("AGCT", "AGGT", scoring.DefaultSimilarity(), opts)
//
//	// full alignment with gap markers
//	res, err := align.Align("AGCT", "AGGT", scoring.DefaultSimilarity(), align.DefaultOptions())
//	// res.AlignedA, res.AlignedB, res.Score
//
// Performance:
//
//   - Time:   O(M·N)
//   - Memory: O(M·N) (FullMatrix) or O(min side) rolling (TwoRows)
//
// The fill is synchronous and single-threaded: every cell depends on
// its up, left and diagonal neighbours, so only anti-diagonal
// wavefronts could ever be parallelized, and at the sequence lengths
// this package targets that is not worth the coordination cost.
package align
