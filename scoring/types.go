package scoring

import (
	"errors"
	"math"
)

// DefaultGapSymbol is the placeholder byte used for insertions and
// deletions when a model does not specify its own.
const DefaultGapSymbol byte = '-'

// Sentinel errors for substitution-table loading.
var (
	// ErrTableHeader indicates a missing or malformed header row.
	ErrTableHeader = errors.New("scoring: substitution table header must list one single-byte symbol per column")

	// ErrTableShape indicates a data row whose length or key does not
	// match the header.
	ErrTableShape = errors.New("scoring: substitution table row does not match header")

	// ErrTableValue indicates a cost cell that is not an integer.
	ErrTableValue = errors.New("scoring: substitution table cell is not an integer")
)

// Model is the pairwise cost model consulted during matrix fill.
// Score must be a pure, total function over all byte symbols; either
// argument may be the model's gap symbol, in which case the result is
// that model's gap cost. Implementations must not mutate state between
// calls: one Model instance serves one whole computation unchanged.
type Model interface {
	// Score returns the cost of aligning symbol a against symbol b.
	Score(a, b byte) int

	// GapSymbol returns the placeholder byte representing an
	// insertion or deletion in aligned output.
	GapSymbol() byte
}

// Objective selects the optimization direction of a matrix fill.
// Similarity scoring maximizes; edit-cost scoring minimizes. The fill
// recurrence is parametric over this value so the same code serves
// both directions.
type Objective int

const (
	// Maximize keeps the largest of the candidate cell values.
	Maximize Objective = iota

	// Minimize keeps the smallest of the candidate cell values.
	Minimize
)

// Valid reports whether o is one of the declared Objective values.
func (o Objective) Valid() bool {
	return o == Maximize || o == Minimize
}

// Better reports whether candidate strictly improves on incumbent
// under o. Strictness makes tie-breaking the caller's responsibility:
// when candidates are tested in a fixed order, the first best wins.
func (o Objective) Better(candidate, incumbent int) bool {
	if o == Minimize {
		return candidate < incumbent
	}

	return candidate > incumbent
}

// Start returns the identity element for o: every real cell value
// improves on it.
func (o Objective) Start() int {
	if o == Minimize {
		return math.MaxInt
	}

	return math.MinInt
}

// String returns a human-readable name for o.
func (o Objective) String() string {
	switch o {
	case Maximize:
		return "maximize"
	case Minimize:
		return "minimize"
	default:
		return "unknown"
	}
}

// Scheme is the three-value cost model: one cost for a match, one for
// a mismatch, one for a gap. The zero value is usable but scores
// everything at zero; prefer NewScheme or the Default* constructors.
//
// Two configurations are used in practice, differing only by sign
// convention: a similarity scheme (match>0, mismatch<0, gap<0, paired
// with Maximize) and an edit-cost scheme (match=0, mismatch>0, gap>0,
// paired with Minimize).
type Scheme struct {
	Match    int  // cost when the two symbols are equal
	Mismatch int  // cost when the two symbols differ
	Gap      int  // cost when either symbol is the gap symbol
	GapSym   byte // gap placeholder; 0 means DefaultGapSymbol
}

// NewScheme returns a Scheme with the given costs and the default gap
// symbol.
func NewScheme(match, mismatch, gap int) Scheme {
	return Scheme{Match: match, Mismatch: mismatch, Gap: gap, GapSym: DefaultGapSymbol}
}

// DefaultSimilarity returns the built-in similarity scheme
// (match=1, mismatch=-1, gap=-1). Pair it with Maximize.
func DefaultSimilarity() Scheme {
	return NewScheme(1, -1, -1)
}

// DefaultEditCost returns the built-in edit-cost scheme
// (match=0, mismatch=1, gap=1). Pair it with Minimize.
// EditDistance(A, A) under this scheme is always zero.
func DefaultEditCost() Scheme {
	return NewScheme(0, 1, 1)
}

// Score implements Model. The gap symbol on either side yields the gap
// cost; equal symbols yield the match cost; anything else is a
// mismatch. Total over all byte values: no failure modes.
func (s Scheme) Score(a, b byte) int {
	gap := s.GapSymbol()
	switch {
	case a == gap || b == gap:
		return s.Gap
	case a == b:
		return s.Match
	default:
		return s.Mismatch
	}
}

// GapSymbol implements Model, substituting DefaultGapSymbol for the
// zero value so that Scheme literals remain usable.
func (s Scheme) GapSymbol() byte {
	if s.GapSym == 0 {
		return DefaultGapSymbol
	}

	return s.GapSym
}
