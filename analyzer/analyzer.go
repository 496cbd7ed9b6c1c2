package analyzer

import (
	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/scoring"
)

// Similarity returns the optimal global similarity score of a against
// b: the similarity model under a maximizing objective, rolling
// two-row storage since no traceback is needed.
//
// Complexity: O(M·N) time, O(N) memory.
func (an *Analyzer) Similarity(a, b string) (int, error) {
	opts := align.DefaultOptions()
	opts.MemoryMode = align.TwoRows

	return align.Score(a, b, an.similarity, opts)
}

// EditDistance returns the optimal global edit cost of transforming a
// into b: the edit-cost model under a minimizing objective, rolling
// two-row storage.
//
// Complexity: O(M·N) time, O(N) memory.
func (an *Analyzer) EditDistance(a, b string) (int, error) {
	opts := align.DefaultOptions()
	opts.Objective = scoring.Minimize
	opts.MemoryMode = align.TwoRows

	return align.Score(a, b, an.editCost, opts)
}

// Alignment reconstructs one optimal alignment of a against b under
// the similarity model; variant selects Global (Needleman-Wunsch) or
// Local (Smith-Waterman).
//
// Complexity: O(M·N) time and memory (traceback needs the full matrix).
func (an *Analyzer) Alignment(a, b string, variant align.Variant) (align.Result, error) {
	opts := align.DefaultOptions()
	opts.Variant = variant

	return align.Align(a, b, an.similarity, opts)
}

// Summary answers all four query modes for one pair. Orchestration
// only: each field is computed by the operations above, so the parts
// of a Summary always agree with the individual queries.
func (an *Analyzer) Summary(a, b string) (Summary, error) {
	var s Summary
	var err error

	if s.Similarity, err = an.Similarity(a, b); err != nil {
		return Summary{}, err
	}
	if s.EditDistance, err = an.EditDistance(a, b); err != nil {
		return Summary{}, err
	}
	if s.Global, err = an.Alignment(a, b, align.Global); err != nil {
		return Summary{}, err
	}
	if s.Local, err = an.Alignment(a, b, align.Local); err != nil {
		return Summary{}, err
	}

	return s, nil
}
