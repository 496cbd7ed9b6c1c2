// Package analyzer defines the Analyzer configuration and the Summary
// result type for the four pairwise query modes.
package analyzer

import (
	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/scoring"
)

// Analyzer answers the four query modes over sequence pairs:
// similarity, edit distance, alignment reconstruction, and the
// composite summary. It holds one similarity model (paired with
// maximization) and one edit-cost model (paired with minimization);
// both default to the built-in schemes.
//
// An Analyzer is immutable after New and safe to reuse across
// computations; each query owns its matrix privately.
type Analyzer struct {
	similarity scoring.Model
	editCost   scoring.Model
}

// Option configures an Analyzer during New.
type Option func(*Analyzer)

// WithSimilarityModel replaces the built-in similarity scheme, e.g.
// with a scoring.Table loaded from a substitution file. The model is
// consumed under a maximizing objective.
func WithSimilarityModel(m scoring.Model) Option {
	return func(a *Analyzer) {
		a.similarity = m
	}
}

// WithEditCostModel replaces the built-in edit-cost scheme. The model
// is consumed under a minimizing objective; keep Match=0 if the
// zero-distance identity EditDistance(A,A)=0 should hold.
func WithEditCostModel(m scoring.Model) Option {
	return func(a *Analyzer) {
		a.editCost = m
	}
}

// New returns an Analyzer carrying the default similarity
// (1,-1,-1) and edit-cost (0,1,1) schemes, then applies opts.
func New(opts ...Option) *Analyzer {
	a := &Analyzer{
		similarity: scoring.DefaultSimilarity(),
		editCost:   scoring.DefaultEditCost(),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a
}

// Summary is the composite answer of all four query modes for one
// sequence pair. Immutable once produced.
type Summary struct {
	Similarity   int          // optimal global similarity score
	EditDistance int          // optimal global edit cost
	Global       align.Result // global alignment under the similarity model
	Local        align.Result // local alignment under the similarity model
}
