// Package config holds the app-wide CLI settings that are unmarshalled
// from Viper (see: /cmd/seqalign): the two cost triples, the gap
// symbol, and optional substitution-table paths. The core packages
// never read files or flags; they receive finished scoring.Model
// values built here.
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/katalvlaran/seqalign/scoring"
)

// ModelConfig is one cost triple plus an optional path to a CSV
// substitution table overriding individual symbol pairs.
type ModelConfig struct {
	// cost when the two symbols are equal
	Match int `mapstructure:"match"`

	// cost when the two symbols differ
	Mismatch int `mapstructure:"mismatch"`

	// cost of an insertion or deletion
	Gap int `mapstructure:"gap"`

	// optional CSV substitution table; pairs it lists override the triple
	Table string `mapstructure:"table"`
}

// Config is the root-level settings struct: a mix of settings
// available in the settings file and those bound from command-line
// flags.
type Config struct {
	// gap placeholder in aligned output (one character)
	GapSymbol string `mapstructure:"gap-symbol"`

	// similarity triple, paired with maximization
	Similarity ModelConfig `mapstructure:"similarity"`

	// edit-cost triple, paired with minimization
	EditCost ModelConfig `mapstructure:"editcost"`
}

// SetDefaults registers the built-in cost triples and gap symbol with
// viper so that an absent settings file still yields working models.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("gap-symbol", string(scoring.DefaultGapSymbol))
	v.SetDefault("similarity.match", 1)
	v.SetDefault("similarity.mismatch", -1)
	v.SetDefault("similarity.gap", -1)
	v.SetDefault("editcost.match", 0)
	v.SetDefault("editcost.mismatch", 1)
	v.SetDefault("editcost.gap", 1)
}

// New returns a Config populated from v (settings file and/or bound
// command-line flags).
func New(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: decode settings: %w", err)
	}
	if len(c.GapSymbol) > 1 {
		return Config{}, fmt.Errorf("config: gap-symbol must be a single character, got %q", c.GapSymbol)
	}

	return c, nil
}

// gapByte resolves the configured gap symbol, falling back to the
// package default when unset.
func (c Config) gapByte() byte {
	if c.GapSymbol == "" {
		return scoring.DefaultGapSymbol
	}

	return c.GapSymbol[0]
}

// model builds one scoring.Model from mc: the plain triple, or a
// CSV-backed table over it when a table path is configured.
func (c Config) model(mc ModelConfig) (scoring.Model, error) {
	scheme := scoring.NewScheme(mc.Match, mc.Mismatch, mc.Gap)
	scheme.GapSym = c.gapByte()
	if mc.Table == "" {
		return scheme, nil
	}

	return scoring.LoadTable(mc.Table, scheme)
}

// SimilarityModel builds the similarity model described by c.
func (c Config) SimilarityModel() (scoring.Model, error) {
	return c.model(c.Similarity)
}

// EditCostModel builds the edit-cost model described by c.
func (c Config) EditCostModel() (scoring.Model, error) {
	return c.model(c.EditCost)
}
