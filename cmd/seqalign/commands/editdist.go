package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// editDistCmd reports the optimal edit distance of two sequences
// under the configured edit-cost model.
func editDistCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "editdist <seqA> <seqB>",
		Short: "Optimal edit distance (minimizing)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dist, err := an.EditDistance(normalize(args[0]), normalize(args[1]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), dist)

			return nil
		},
	}
}
