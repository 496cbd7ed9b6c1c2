package align

import (
	"github.com/katalvlaran/seqalign/scoring"
)

// move records which recurrence term produced a cell, for traceback.
type move byte

const (
	moveNone move = iota // terminal cell: (0,0) global, zero-floored local
	moveDiag             // substitution: consume one symbol of each sequence
	moveUp               // gap in B: consume one symbol of A
	moveLeft             // gap in A: consume one symbol of B
)

// Matrix is a filled dynamic-programming table for one alignment
// computation. It is exclusively owned by the computation that built
// it: fill once, traceback at will, then discard. Cell (i,j) holds the
// optimal cumulative score of aligning a[0:i] against b[0:j].
type Matrix struct {
	a, b  string
	model scoring.Model
	opts  Options

	cells [][]int
	moves [][]move

	// Optimal cell. Global: always (m,n). Local: the row-major-first
	// maximum anywhere in the table.
	bestScore    int
	bestI, bestJ int
}

// Score returns the optimal alignment score of the filled matrix.
func (x *Matrix) Score() int { return x.bestScore }

// Best returns the coordinates of the optimal cell: (m,n) for global
// fills, the recorded maximum cell for local fills.
func (x *Matrix) Best() (i, j int) { return x.bestI, x.bestJ }

// Dims returns the table dimensions (m+1 rows, n+1 columns).
func (x *Matrix) Dims() (rows, cols int) { return len(x.a) + 1, len(x.b) + 1 }

// Cell returns the cumulative score at row i, column j.
func (x *Matrix) Cell(i, j int) int { return x.cells[i][j] }

// Fill builds the full dynamic-programming matrix for aligning a
// against b under model and opts.
//
// Global initialization: cell(0,0)=0, then each border cell extends
// its predecessor by one gap cost (equal to i×gap for constant-gap
// models). Local initialization: zero borders.
//
// Recurrence for i=1..m, j=1..n: the best of
//
//	diagonal = cell(i-1,j-1) + model.Score(a[i-1], b[j-1])
//	up       = cell(i-1,j)   + model.Score(a[i-1], gap)
//	left     = cell(i,j-1)   + model.Score(gap, b[j-1])
//
// under opts.Objective, candidates tested in that fixed order with
// strict improvement, so on ties diagonal wins over up wins over left.
// This order is a documented choice for reproducibility, not an
// algorithmic necessity: multiple optimal alignments may exist.
// Local fills additionally floor each cell at zero.
//
// Empty sequences are valid: the matrix degenerates to a single
// border row or column and the global score is the cumulative gap
// penalty of the non-empty side.
//
// Complexity: O(m·n) time, O(m·n) memory.
//
// Errors: ErrNilModel, ErrBadVariant, ErrBadMemoryMode, ErrBadObjective,
// ErrLocalMinimize (local + Minimize), ErrTracebackNeedsMatrix when
// opts.MemoryMode is not FullMatrix (a Matrix is full-matrix storage;
// use Score for the rolling two-row mode).
func Fill(a, b string, model scoring.Model, opts Options) (*Matrix, error) {
	if err := opts.validate(model); err != nil {
		return nil, err
	}
	if opts.MemoryMode != FullMatrix {
		return nil, ErrTracebackNeedsMatrix
	}

	m, n := len(a), len(b)
	gap := model.GapSymbol()

	x := &Matrix{a: a, b: b, model: model, opts: opts}
	x.cells = make([][]int, m+1)
	x.moves = make([][]move, m+1)
	for i := range x.cells {
		x.cells[i] = make([]int, n+1)
		x.moves[i] = make([]move, n+1)
	}

	// Borders. Global borders accumulate gap costs and point back
	// along the edge so traceback can walk them; local borders stay
	// zero with no move, which is exactly the traceback terminator.
	if opts.Variant == Global {
		for i := 1; i <= m; i++ {
			x.cells[i][0] = x.cells[i-1][0] + model.Score(a[i-1], gap)
			x.moves[i][0] = moveUp
		}
		for j := 1; j <= n; j++ {
			x.cells[0][j] = x.cells[0][j-1] + model.Score(gap, b[j-1])
			x.moves[0][j] = moveLeft
		}
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			diag := x.cells[i-1][j-1] + model.Score(a[i-1], b[j-1])
			up := x.cells[i-1][j] + model.Score(a[i-1], gap)
			left := x.cells[i][j-1] + model.Score(gap, b[j-1])

			best, bestMove := diag, moveDiag
			if opts.Objective.Better(up, best) {
				best, bestMove = up, moveUp
			}
			if opts.Objective.Better(left, best) {
				best, bestMove = left, moveLeft
			}

			if opts.Variant == Local && best <= 0 {
				// Zero floor: non-positive prefixes restart the
				// alignment, so the cell is terminal.
				best, bestMove = 0, moveNone
			}

			x.cells[i][j] = best
			x.moves[i][j] = bestMove

			if opts.Variant == Local && best > x.bestScore {
				x.bestScore = best
				x.bestI, x.bestJ = i, j
			}
		}
	}

	if opts.Variant == Global {
		x.bestScore = x.cells[m][n]
		x.bestI, x.bestJ = m, n
	}

	return x, nil
}

// Score computes only the optimal alignment score of a against b.
// With MemoryMode=FullMatrix it delegates to Fill; with TwoRows it
// runs the same recurrence over a rolling pair of rows, reducing
// memory to O(n) at the price of losing the traceback.
//
// Complexity: O(m·n) time, O(m·n) or O(n) memory by MemoryMode.
func Score(a, b string, model scoring.Model, opts Options) (int, error) {
	if err := opts.validate(model); err != nil {
		return 0, err
	}
	if opts.MemoryMode == FullMatrix {
		x, err := Fill(a, b, model, opts)
		if err != nil {
			return 0, err
		}

		return x.Score(), nil
	}

	m, n := len(a), len(b)
	gap := model.GapSymbol()

	prev := make([]int, n+1)
	curr := make([]int, n+1)
	if opts.Variant == Global {
		for j := 1; j <= n; j++ {
			prev[j] = prev[j-1] + model.Score(gap, b[j-1])
		}
	}

	bestLocal := 0
	for i := 1; i <= m; i++ {
		if opts.Variant == Global {
			curr[0] = prev[0] + model.Score(a[i-1], gap)
		} else {
			curr[0] = 0
		}
		for j := 1; j <= n; j++ {
			diag := prev[j-1] + model.Score(a[i-1], b[j-1])
			up := prev[j] + model.Score(a[i-1], gap)
			left := curr[j-1] + model.Score(gap, b[j-1])

			best := diag
			if opts.Objective.Better(up, best) {
				best = up
			}
			if opts.Objective.Better(left, best) {
				best = left
			}
			if opts.Variant == Local {
				if best < 0 {
					best = 0
				}
				if best > bestLocal {
					bestLocal = best
				}
			}
			curr[j] = best
		}
		prev, curr = curr, prev
	}

	if opts.Variant == Local {
		return bestLocal, nil
	}

	return prev[n], nil
}

// Align fills the matrix and immediately reconstructs one optimal
// alignment. Requires MemoryMode=FullMatrix.
//
// Complexity: O(m·n) time and memory.
func Align(a, b string, model scoring.Model, opts Options) (Result, error) {
	x, err := Fill(a, b, model, opts)
	if err != nil {
		return Result{}, err
	}

	return x.Traceback(), nil
}
