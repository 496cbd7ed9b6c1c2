package align

import (
	"fmt"
	"io"
)

// glyph maps a stored move to a one-character marker for rendering.
func (m move) glyph() byte {
	switch m {
	case moveDiag:
		return '\\'
	case moveUp:
		return '|'
	case moveLeft:
		return '-'
	default:
		return '.'
	}
}

// Render writes the filled table to w as a grid for diagnostics: a
// header row of B's symbols, then one row per table row prefixed with
// A's symbol. Each cell shows its move marker ('\' diagonal, '|' up,
// '-' left, '.' terminal) followed by its cumulative score; the
// optimal cell's score is bracketed.
//
// Intended for CLI verbose output and debugging, not machine parsing.
func (x *Matrix) Render(w io.Writer) {
	rows, cols := x.Dims()

	fmt.Fprint(w, "       ")
	for j := 1; j < cols; j++ {
		fmt.Fprintf(w, "     %c", x.b[j-1])
	}
	fmt.Fprintln(w)

	for i := 0; i < rows; i++ {
		if i == 0 {
			fmt.Fprint(w, " ")
		} else {
			fmt.Fprintf(w, "%c", x.a[i-1])
		}
		for j := 0; j < cols; j++ {
			lb, rb := ' ', ' '
			if i == x.bestI && j == x.bestJ {
				lb, rb = '[', ']'
			}
			fmt.Fprintf(w, " %c%c%2d%c", x.moves[i][j].glyph(), lb, x.cells[i][j], rb)
		}
		fmt.Fprintln(w)
	}
}
