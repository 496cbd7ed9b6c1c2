package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// similarityCmd reports the optimal global similarity score of two
// sequences under the configured similarity model.
func similarityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "similarity <seqA> <seqB>",
		Short: "Optimal global similarity score (maximizing)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			score, err := an.Similarity(normalize(args[0]), normalize(args[1]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), score)

			return nil
		},
	}
}
