package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/seqalign/config"
)

// TestNew_Defaults: with nothing but SetDefaults, the config carries
// the documented built-in triples.
func TestNew_Defaults(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)

	c, err := config.New(v)
	require.NoError(t, err)

	assert.Equal(t, "-", c.GapSymbol)
	assert.Equal(t, 1, c.Similarity.Match)
	assert.Equal(t, -1, c.Similarity.Mismatch)
	assert.Equal(t, -1, c.Similarity.Gap)
	assert.Equal(t, 0, c.EditCost.Match)
	assert.Equal(t, 1, c.EditCost.Mismatch)
	assert.Equal(t, 1, c.EditCost.Gap)
}

// TestNew_SettingsFile: values from a YAML settings file override the
// defaults through viper.
func TestNew_SettingsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "settings.yaml")
	yaml := "gap-symbol: \"_\"\nsimilarity:\n  match: 5\n  mismatch: -4\n  gap: -2\n"
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	v := viper.New()
	config.SetDefaults(v)
	v.SetConfigFile(path)
	require.NoError(t, v.ReadInConfig())

	c, err := config.New(v)
	require.NoError(t, err)

	assert.Equal(t, "_", c.GapSymbol)
	assert.Equal(t, 5, c.Similarity.Match)
	assert.Equal(t, -4, c.Similarity.Mismatch)
	assert.Equal(t, -2, c.Similarity.Gap)
	assert.Equal(t, 1, c.EditCost.Mismatch, "untouched sections keep their defaults")
}

// TestNew_BadGapSymbol rejects multi-character gap markers.
func TestNew_BadGapSymbol(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)
	v.Set("gap-symbol", "--")

	_, err := config.New(v)
	assert.Error(t, err)
}

// TestConfig_Models builds both models and spot-checks their verdicts
// and gap symbol.
func TestConfig_Models(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)
	v.Set("gap-symbol", "_")

	c, err := config.New(v)
	require.NoError(t, err)

	sim, err := c.SimilarityModel()
	require.NoError(t, err)
	assert.Equal(t, byte('_'), sim.GapSymbol())
	assert.Equal(t, 1, sim.Score('A', 'A'))
	assert.Equal(t, -1, sim.Score('A', '_'))

	edit, err := c.EditCostModel()
	require.NoError(t, err)
	assert.Equal(t, 0, edit.Score('A', 'A'))
	assert.Equal(t, 1, edit.Score('A', '_'))
}

// TestConfig_TableModel: a configured CSV table overrides the pairs
// it lists and falls back to the triple elsewhere.
func TestConfig_TableModel(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scores.csv")
	csv := ",A,C\nA,9,-7\nC,-7,9\n"
	require.NoError(t, os.WriteFile(path, []byte(csv), 0o644))

	v := viper.New()
	config.SetDefaults(v)
	v.Set("similarity.table", path)

	c, err := config.New(v)
	require.NoError(t, err)

	sim, err := c.SimilarityModel()
	require.NoError(t, err)
	assert.Equal(t, 9, sim.Score('A', 'A'))
	assert.Equal(t, -7, sim.Score('A', 'C'))
	assert.Equal(t, 1, sim.Score('G', 'G'), "pairs outside the table use the base triple")
}

// TestConfig_MissingTable surfaces the open error instead of silently
// substituting the triple.
func TestConfig_MissingTable(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)
	v.Set("similarity.table", filepath.Join(t.TempDir(), "absent.csv"))

	c, err := config.New(v)
	require.NoError(t, err)

	_, err = c.SimilarityModel()
	assert.Error(t, err)
}
