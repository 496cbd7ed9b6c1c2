package align_test

import (
	"fmt"

	"github.com/katalvlaran/seqalign/align"
	"github.com/katalvlaran/seqalign/scoring"
)

// ExampleAlign demonstrates a global (Needleman-Wunsch) alignment of
// two equal-length nucleotide sequences under the default similarity
// scheme (match=1, mismatch=-1, gap=-1).
//
// Scenario:
//
//	AGCT vs AGGT differ in one position, so the optimal alignment is
//	gap-free: three matches and one mismatch score 1+1-1+1 = 2.
//
// Complexity: O(M·N) time and memory.
func ExampleAlign() {
	res, err := align.Align("AGCT", "AGGT", scoring.DefaultSimilarity(), align.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(res.AlignedA)
	fmt.Println(res.AlignedB)
	fmt.Println("score:", res.Score)
	// Output:
	// AGCT
	// AGGT
	// score: 2
}

// ExampleAlign_gap shows how length mismatches surface as gap markers:
// deleting C from ACGT is cheaper than forcing mismatches.
func ExampleAlign_gap() {
	res, err := align.Align("ACGT", "AGT", scoring.DefaultSimilarity(), align.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(res.AlignedA)
	fmt.Println(res.AlignedB)
	fmt.Println("score:", res.Score)
	// Output:
	// ACGT
	// A-GT
	// score: 2
}

// ExampleAlign_local demonstrates a local (Smith-Waterman) alignment:
// only the best-scoring subregion is reported, the mismatching tail
// of AGCT/AGGT is dropped rather than penalized.
func ExampleAlign_local() {
	opts := align.DefaultOptions()
	opts.Variant = align.Local

	res, err := align.Align("AGCT", "AGGT", scoring.DefaultSimilarity(), opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(res.AlignedA)
	fmt.Println(res.AlignedB)
	fmt.Println("score:", res.Score)
	// Output:
	// AG
	// AG
	// score: 2
}

// ExampleScore demonstrates the rolling two-row mode: same optimum as
// the full matrix at O(N) memory, for score-only callers.
func ExampleScore() {
	opts := align.DefaultOptions()
	opts.Objective = scoring.Minimize
	opts.MemoryMode = align.TwoRows

	dist, err := align.Score("AGCT", "AGGT", scoring.DefaultEditCost(), opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("edit distance:", dist)
	// Output:
	// edit distance: 1
}
