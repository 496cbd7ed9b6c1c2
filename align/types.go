// Package align defines options, modes and sentinel errors for the
// pairwise alignment matrix fill and traceback.
package align

import (
	"errors"

	"github.com/katalvlaran/seqalign/scoring"
)

// Sentinel errors returned by the align package.
var (
	// ErrNilModel indicates that no scoring model was supplied.
	ErrNilModel = errors.New("align: scoring model is nil")

	// ErrLocalMinimize indicates a local alignment requested under a
	// minimizing objective. The local zero floor is only meaningful
	// when higher is better, so this combination is rejected before
	// any matrix cell is filled.
	ErrLocalMinimize = errors.New("align: local alignment requires a maximizing objective")

	// ErrTracebackNeedsMatrix indicates that alignment reconstruction
	// was requested without full-matrix storage.
	ErrTracebackNeedsMatrix = errors.New("align: traceback requires MemoryMode=FullMatrix")

	// ErrBadVariant indicates an Options.Variant outside the declared values.
	ErrBadVariant = errors.New("align: unknown alignment variant")

	// ErrBadMemoryMode indicates an Options.MemoryMode outside the declared values.
	ErrBadMemoryMode = errors.New("align: unknown memory mode")

	// ErrBadObjective indicates an Options.Objective outside the declared values.
	ErrBadObjective = errors.New("align: unknown objective")
)

// Variant selects the alignment algorithm.
//
//   - Global — Needleman-Wunsch: the alignment spans both sequences
//     end-to-end; borders carry cumulative gap penalties.
//   - Local  — Smith-Waterman: only the best-scoring contiguous
//     subregions are aligned; borders are zero and every cell is
//     floored at zero. Maximizing objectives only.
type Variant int

const (
	// Global aligns both sequences end-to-end (Needleman-Wunsch).
	Global Variant = iota

	// Local aligns the highest-scoring subregions (Smith-Waterman).
	Local
)

// Valid reports whether v is one of the declared Variant values.
func (v Variant) Valid() bool {
	return v == Global || v == Local
}

// String returns a human-readable name for v.
func (v Variant) String() string {
	switch v {
	case Global:
		return "global"
	case Local:
		return "local"
	default:
		return "unknown"
	}
}

// MemoryMode controls how the fill stores its DP matrix.
//
//   - FullMatrix — keep the entire (m+1)×(n+1) matrix plus move
//     directions. Allows score + traceback. Memory: O(m·n).
//   - TwoRows — keep only two rows (current and previous). Reduces
//     memory to O(n) but cannot recover the alignment. Use when only
//     the score is needed.
type MemoryMode int

const (
	// FullMatrix mode: store all rows and moves, support traceback.
	FullMatrix MemoryMode = iota

	// TwoRows mode: rolling two-row storage, score only.
	TwoRows
)

// Valid reports whether m is one of the declared MemoryMode values.
func (m MemoryMode) Valid() bool {
	return m == FullMatrix || m == TwoRows
}

// Options configures a matrix fill.
//
// Fields:
//   - Variant    — Global (Needleman-Wunsch) or Local (Smith-Waterman).
//   - Objective  — scoring.Maximize for similarity, scoring.Minimize
//     for edit cost. Local requires Maximize.
//   - MemoryMode — FullMatrix or TwoRows; traceback needs FullMatrix.
//
// Example:
//
//	opts := align.DefaultOptions()
//	opts.Variant = align.Local
//	res, err := align.Align("AGCT", "AGGT", scoring.DefaultSimilarity(), opts)
type Options struct {
	Variant    Variant
	Objective  scoring.Objective
	MemoryMode MemoryMode
}

// DefaultOptions returns the canonical configuration: global variant,
// maximizing objective, full-matrix storage.
func DefaultOptions() Options {
	return Options{
		Variant:    Global,
		Objective:  scoring.Maximize,
		MemoryMode: FullMatrix,
	}
}

// validate rejects inconsistent option combinations before any cell
// is touched. No partial results: callers receive the error and zero
// values only.
func (o Options) validate(model scoring.Model) error {
	if model == nil {
		return ErrNilModel
	}
	if !o.Variant.Valid() {
		return ErrBadVariant
	}
	if !o.MemoryMode.Valid() {
		return ErrBadMemoryMode
	}
	if !o.Objective.Valid() {
		return ErrBadObjective
	}
	if o.Variant == Local && o.Objective != scoring.Maximize {
		return ErrLocalMinimize
	}

	return nil
}

// Result is one reconstructed alignment: the two gap-padded strings
// and the optimal score of the matrix they were traced from.
// Immutable once produced.
type Result struct {
	AlignedA string // first sequence with gap markers inserted
	AlignedB string // second sequence with gap markers inserted
	Score    int    // optimal score of the underlying matrix
}
