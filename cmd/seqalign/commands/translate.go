package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/seqalign/translate"
)

// translateCmd maps an RNA sequence to its one-letter amino-acid
// string under the standard genetic code.
func translateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "translate <rna>",
		Short: "Translate an RNA sequence into amino acids",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			protein, err := translate.Translate(normalize(args[0]))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), protein)

			return nil
		},
	}
}
