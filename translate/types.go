// Package translate defines sentinel errors and the genetic-code
// table for RNA-to-protein translation.
package translate

import "errors"

// Sentinel errors returned by Translate.
var (
	// ErrPartialCodon indicates trailing input shorter than one full
	// triplet (length % 3 != 0 before any stop codon was reached).
	ErrPartialCodon = errors.New("translate: trailing partial codon")

	// ErrUnknownCodon indicates a triplet containing symbols outside
	// the RNA alphabet {A, C, G, U}.
	ErrUnknownCodon = errors.New("translate: codon outside the RNA alphabet")
)

// geneticCode maps each of the 64 RNA triplets to its one-letter
// amino acid, with '*' marking the three stop codons. The standard
// code, U-based.
var geneticCode = map[string]byte{
	"UUU": 'F', "UUC": 'F', "UUA": 'L', "UUG": 'L',
	"CUU": 'L', "CUC": 'L', "CUA": 'L', "CUG": 'L',
	"AUU": 'I', "AUC": 'I', "AUA": 'I', "AUG": 'M',
	"GUU": 'V', "GUC": 'V', "GUA": 'V', "GUG": 'V',

	"UCU": 'S', "UCC": 'S', "UCA": 'S', "UCG": 'S',
	"CCU": 'P', "CCC": 'P', "CCA": 'P', "CCG": 'P',
	"ACU": 'T', "ACC": 'T', "ACA": 'T', "ACG": 'T',
	"GCU": 'A', "GCC": 'A', "GCA": 'A', "GCG": 'A',

	"UAU": 'Y', "UAC": 'Y', "UAA": '*', "UAG": '*',
	"CAU": 'H', "CAC": 'H', "CAA": 'Q', "CAG": 'Q',
	"AAU": 'N', "AAC": 'N', "AAA": 'K', "AAG": 'K',
	"GAU": 'D', "GAC": 'D', "GAA": 'E', "GAG": 'E',

	"UGU": 'C', "UGC": 'C', "UGA": '*', "UGG": 'W',
	"CGU": 'R', "CGC": 'R', "CGA": 'R', "CGG": 'R',
	"AGU": 'S', "AGC": 'S', "AGA": 'R', "AGG": 'R',
	"GGU": 'G', "GGC": 'G', "GGA": 'G', "GGG": 'G',
}

// stop marks the three stop codons in geneticCode.
const stop = '*'
