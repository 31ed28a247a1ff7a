package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"

	"github.com/zjrosen/csskit/internal/lexer"
	"github.com/zjrosen/csskit/internal/log"
	"github.com/zjrosen/csskit/internal/tracing"
)

func newLexCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "lex FILE",
		Short: "Print the tokens of a stylesheet",
		Long: `Print one line per token: byte offset, token description and source text.

Identifiers that match the configured keyword set also show their atom.

Examples:
  csskit lex style.css
  csskit lex --atoms empty style.css`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			source, err := readSource(c.fs, path)
			if err != nil {
				return err
			}

			_, span := tracing.StartFile(cmd.Context(), c.tracer(), tracing.SpanParse, path, len(source))
			atoms := c.cfg.AtomSet()
			cursors := lexer.Tokenize(atoms, source, c.cfg.LexerFeatures())
			log.Debug(log.CatLexer, "tokenized", "path", path, "tokens", len(cursors))
			span.SetAttributes(attribute.Int(tracing.AttrTokenCount, len(cursors)))
			tracing.EndFile(span, 0, nil)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, cur := range cursors {
				text := cur.StrSlice(source)
				name := atoms.Name(cur.Token.AtomBits())
				fmt.Fprintf(w, "%d\t%s\t%q\t%s\n", cur.Offset, cur.Token, text, name)
			}
			return w.Flush()
		},
	}
}
