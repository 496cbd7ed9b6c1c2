package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// summaryCmd answers all four query modes for one pair in a single
// tabulated report.
func summaryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "summary <seqA> <seqB>",
		Short: "Similarity, edit distance and both alignments in one report",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sum, err := an.Summary(normalize(args[0]), normalize(args[1]))
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "similarity\t%d\n", sum.Similarity)
			fmt.Fprintf(w, "edit distance\t%d\n", sum.EditDistance)
			fmt.Fprintf(w, "global\t%s / %s\t(score %d)\n", sum.Global.AlignedA, sum.Global.AlignedB, sum.Global.Score)
			fmt.Fprintf(w, "local\t%s / %s\t(score %d)\n", sum.Local.AlignedA, sum.Local.AlignedB, sum.Local.Score)

			return w.Flush()
		},
	}
}
