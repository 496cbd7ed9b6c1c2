// Package commands wires the seqalign CLI: cobra commands over the
// analyzer, with viper-backed settings and flag binding.
package commands

import (
	"log"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/seqalign/analyzer"
	"github.com/katalvlaran/seqalign/config"
)

// logger writes diagnostics to stderr so stdout stays parseable.
var logger = log.New(os.Stderr, "", 0)

var (
	settingsPath string
	verbose      bool

	cfg config.Config
	an  *analyzer.Analyzer
)

// Execute builds the command tree and runs it. Called by main.main().
func Execute() error {
	root := &cobra.Command{
		Use:   "seqalign",
		Short: "Pairwise sequence alignment: similarity, edit distance, alignments",
		Long: `seqalign computes pairwise alignments of symbolic sequences by dynamic
programming: global (Needleman-Wunsch) and local (Smith-Waterman) variants,
similarity scores and edit distances, under built-in or CSV-loaded scoring.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	v := viper.New()
	config.SetDefaults(v)

	pf := root.PersistentFlags()
	pf.StringVar(&settingsPath, "settings", "", "path to a YAML settings file")
	pf.BoolVarP(&verbose, "verbose", "v", false, "print the filled score matrix to stderr")
	pf.Int("match", 1, "similarity cost of a matching symbol pair")
	pf.Int("mismatch", -1, "similarity cost of a differing symbol pair")
	pf.Int("gap", -1, "similarity cost of an insertion or deletion")
	pf.String("gap-symbol", "-", "gap placeholder character in aligned output")
	pf.String("scores", "", "CSV substitution table for the similarity model")
	pf.String("edit-costs", "", "CSV substitution table for the edit-cost model")

	// Flag values participate in viper's precedence chain: a changed
	// flag beats the settings file, an untouched one falls through to it.
	must(v.BindPFlag("similarity.match", pf.Lookup("match")))
	must(v.BindPFlag("similarity.mismatch", pf.Lookup("mismatch")))
	must(v.BindPFlag("similarity.gap", pf.Lookup("gap")))
	must(v.BindPFlag("gap-symbol", pf.Lookup("gap-symbol")))
	must(v.BindPFlag("similarity.table", pf.Lookup("scores")))
	must(v.BindPFlag("editcost.table", pf.Lookup("edit-costs")))

	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if settingsPath != "" {
			v.SetConfigFile(settingsPath)
			if err := v.ReadInConfig(); err != nil {
				return err
			}
		}

		var err error
		if cfg, err = config.New(v); err != nil {
			return err
		}

		sim, err := cfg.SimilarityModel()
		if err != nil {
			return err
		}
		edit, err := cfg.EditCostModel()
		if err != nil {
			return err
		}
		an = analyzer.New(
			analyzer.WithSimilarityModel(sim),
			analyzer.WithEditCostModel(edit),
		)

		return nil
	}

	root.AddCommand(similarityCmd(), editDistCmd(), alignCmd(), summaryCmd(), translateCmd())

	if err := root.Execute(); err != nil {
		logger.Printf("seqalign: %v", err)

		return err
	}

	return nil
}

// normalize applies the caller-side sequence preparation: surrounding
// whitespace stripped, symbols upper-cased.
func normalize(seq string) string {
	return strings.ToUpper(strings.TrimSpace(seq))
}

// must panics on flag-binding errors, which can only come from a
// mistyped key at build time.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
