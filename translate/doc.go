// Package translate maps RNA triplets to amino acids under the
// standard genetic code: a static lookup-table collaborator of the
// alignment core, deliberately free of any dynamic programming.
//
// Usage:
//
//	protein, err := translate.Translate("AUGGGCUAA")
//	// protein == "MG" (translation stops at the UAA stop codon)
//
// DNA-style input (T instead of U, any case) is normalized before
// lookup.
package translate
