package translate_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqalign/translate"
)

// TestTranslate_StartCodon pins the canonical AUG → M lookup.
func TestTranslate_StartCodon(t *testing.T) {
	protein, err := translate.Translate("AUG")
	require.NoError(t, err)
	assert.Equal(t, "M", protein)
}

// TestTranslate_StopsAtStopCodon: symbols after the first stop codon
// are ignored, even malformed ones.
func TestTranslate_StopsAtStopCodon(t *testing.T) {
	protein, err := translate.Translate("AUGGGCUAAACG")
	require.NoError(t, err)
	assert.Equal(t, "MG", protein)

	protein, err = translate.Translate("AUGUGAXX")
	require.NoError(t, err, "content past the stop codon must not be inspected")
	assert.Equal(t, "M", protein)
}

// TestTranslate_AllStops: each of the three stop codons terminates
// translation immediately.
func TestTranslate_AllStops(t *testing.T) {
	for _, codon := range []string{"UAA", "UAG", "UGA"} {
		protein, err := translate.Translate(codon)
		require.NoError(t, err, "stop codon %s", codon)
		assert.Empty(t, protein)
	}
}

// TestTranslate_Normalization: lower case and DNA-style T both map
// onto the U-based table.
func TestTranslate_Normalization(t *testing.T) {
	protein, err := translate.Translate("atg")
	require.NoError(t, err)
	assert.Equal(t, "M", protein)

	protein, err = translate.Translate("ATGGGT")
	require.NoError(t, err)
	assert.Equal(t, "MG", protein)
}

// TestTranslate_Empty: the empty sequence is valid and yields the
// empty protein.
func TestTranslate_Empty(t *testing.T) {
	protein, err := translate.Translate("")
	require.NoError(t, err)
	assert.Empty(t, protein)
}

// TestTranslate_PartialCodon: a trailing fragment shorter than one
// triplet is an error when no stop codon was reached first.
func TestTranslate_PartialCodon(t *testing.T) {
	_, err := translate.Translate("AUGGG")
	assert.ErrorIs(t, err, translate.ErrPartialCodon)

	_, err = translate.Translate("AU")
	assert.ErrorIs(t, err, translate.ErrPartialCodon)
}

// TestTranslate_UnknownCodon: symbols outside {A,C,G,U} fail with a
// typed error naming the offending triplet.
func TestTranslate_UnknownCodon(t *testing.T) {
	_, err := translate.Translate("AXG")
	assert.ErrorIs(t, err, translate.ErrUnknownCodon)

	_, err = translate.Translate("AUGN-G")
	assert.ErrorIs(t, err, translate.ErrUnknownCodon)
}

// TestTranslate_SpotChecks covers one codon from each table quadrant.
func TestTranslate_SpotChecks(t *testing.T) {
	cases := map[string]string{
		"UUU": "F",
		"GCA": "A",
		"CAU": "H",
		"UGG": "W",
		"GGG": "G",
		"AAA": "K",
	}
	for codon, want := range cases {
		protein, err := translate.Translate(codon)
		require.NoError(t, err, "codon %s", codon)
		assert.Equal(t, want, protein, "codon %s", codon)
	}
}

// ExampleTranslate demonstrates translation with a stop codon.
func ExampleTranslate() {
	protein, err := translate.Translate("AUGUUUGGCUAAACG")
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println(protein)
	// Output:
	// MFG
}
