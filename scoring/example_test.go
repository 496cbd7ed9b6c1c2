package scoring_test

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/seqalign/scoring"
)

// ExampleScheme shows the three verdicts of the default similarity
// scheme: match, mismatch, gap.
func ExampleScheme() {
	s := scoring.DefaultSimilarity()

	fmt.Println(s.Score('A', 'A'))
	fmt.Println(s.Score('A', 'G'))
	fmt.Println(s.Score('A', '-'))
	// Output:
	// 1
	// -1
	// -1
}

// ExampleReadTable loads a substitution table from CSV and falls back
// to the base scheme for pairs the table does not list.
func ExampleReadTable() {
	csv := ",A,C\nA,5,-4\nC,-4,5\n"

	table, err := scoring.ReadTable(strings.NewReader(csv), scoring.DefaultSimilarity())
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(table.Score('A', 'A'))
	fmt.Println(table.Score('A', 'C'))
	fmt.Println(table.Score('G', 'G')) // not in the table: base scheme
	// Output:
	// 5
	// -4
	// 1
}
