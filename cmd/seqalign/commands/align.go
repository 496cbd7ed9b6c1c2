package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqalign/align"
)

// alignCmd reconstructs one optimal alignment, global by default or
// local with --local, and prints the two gap-padded strings.
func alignCmd() *cobra.Command {
	var local bool

	cmd := &cobra.Command{
		Use:   "align <seqA> <seqB>",
		Short: "Reconstruct one optimal alignment (global, or local with --local)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, b := normalize(args[0]), normalize(args[1])

			opts := align.DefaultOptions()
			if local {
				opts.Variant = align.Local
			}

			model, err := cfg.SimilarityModel()
			if err != nil {
				return err
			}
			x, err := align.Fill(a, b, model, opts)
			if err != nil {
				return err
			}
			if verbose {
				x.Render(logger.Writer())
			}

			res := x.Traceback()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, res.AlignedA)
			fmt.Fprintln(out, res.AlignedB)
			fmt.Fprintln(out, "score:", res.Score)

			return nil
		},
	}
	cmd.Flags().BoolVar(&local, "local", false, "local (Smith-Waterman) instead of global alignment")

	return cmd
}
