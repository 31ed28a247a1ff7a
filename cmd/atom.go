package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newAtomCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "atom WORD...",
		Short: "Look up words in the keyword set",
		Long: `Print the atom each word interns to under the configured keyword set.
Lookups ignore ASCII case.

Examples:
  csskit atom px COLOR nonsense
  csskit atom --atoms query shorthand`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			atoms := c.cfg.AtomSet()
			for _, word := range args {
				bits := atoms.Bits(word)
				if bits == 0 {
					fmt.Fprintf(cmd.OutOrStdout(), "%s\t-\n", word)
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\t%s\n", word, bits, atoms.Name(bits))
			}
			return nil
		},
	}
}
