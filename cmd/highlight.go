package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/zjrosen/csskit/internal/highlight"
)

func newHighlightCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "highlight FILE",
		Short: "Print a stylesheet with syntax colours",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := readSource(c.fs, args[0])
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), highlight.Highlight(c.cfg.AtomSet(), source, c.cfg.LexerFeatures()))
			return err
		},
	}
}
