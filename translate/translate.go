package translate

import (
	"fmt"
	"strings"
)

// Translate converts an RNA sequence into its one-letter amino-acid
// string under the standard genetic code, reading triplets from the
// first symbol. Translation stops at the first stop codon; symbols
// after it are ignored, including partial trailers.
//
// Input is normalized first: lower case is accepted, and T is read as
// U so DNA-style input translates too. A static lookup, not a dynamic
// programming problem.
//
// Complexity: O(len(rna)) time.
//
// Errors: ErrUnknownCodon for a triplet outside {A,C,G,U};
// ErrPartialCodon when the sequence ends mid-triplet before any stop
// codon. The empty sequence translates to the empty protein.
func Translate(rna string) (string, error) {
	norm := strings.ToUpper(rna)
	norm = strings.ReplaceAll(norm, "T", "U")

	var protein strings.Builder
	protein.Grow(len(norm) / 3)

	for i := 0; i+3 <= len(norm); i += 3 {
		codon := norm[i : i+3]
		aa, ok := geneticCode[codon]
		if !ok {
			return "", fmt.Errorf("%w: %q at position %d", ErrUnknownCodon, codon, i)
		}
		if aa == stop {
			return protein.String(), nil
		}
		protein.WriteByte(aa)
	}

	if len(norm)%3 != 0 {
		return "", fmt.Errorf("%w: %d trailing symbol(s)", ErrPartialCodon, len(norm)%3)
	}

	return protein.String(), nil
}
