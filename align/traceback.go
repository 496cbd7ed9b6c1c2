package align

// Traceback reconstructs one optimal alignment from the filled matrix.
//
// The walk starts at the optimal cell — (m,n) for global fills, the
// recorded maximum cell for local fills — and follows the move stored
// during fill at each step: diagonal emits a symbol pair, up emits a
// gap in B, left emits a gap in A. Because candidates were tested in
// (diagonal, up, left) order with strict improvement, ties resolve
// deterministically in that same order.
//
// Global walks terminate at (0,0); the border cells carry edge moves,
// so leading gaps are emitted naturally. Local walks terminate at the
// first zero-valued cell (stored as a terminal move), since a local
// alignment never extends into a non-positive-scoring prefix.
//
// Each step decreases i+j by at least one, so the walk finishes within
// m+n steps. Pairs are accumulated in reverse and flipped once.
func (x *Matrix) Traceback() Result {
	gap := x.model.GapSymbol()
	i, j := x.bestI, x.bestJ

	// m+n is the exact worst case (pure gap alignments).
	outA := make([]byte, 0, i+j)
	outB := make([]byte, 0, i+j)

	for {
		switch x.moves[i][j] {
		case moveDiag:
			i, j = i-1, j-1
			outA = append(outA, x.a[i])
			outB = append(outB, x.b[j])
		case moveUp:
			i--
			outA = append(outA, x.a[i])
			outB = append(outB, gap)
		case moveLeft:
			j--
			outA = append(outA, gap)
			outB = append(outB, x.b[j])
		default:
			reverse(outA)
			reverse(outB)

			return Result{
				AlignedA: string(outA),
				AlignedB: string(outB),
				Score:    x.bestScore,
			}
		}
	}
}

// reverse flips s in place.
func reverse(s []byte) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}
