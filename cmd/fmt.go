package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/zjrosen/csskit/internal/parser"
	"github.com/zjrosen/csskit/internal/styles"
	"github.com/zjrosen/csskit/internal/tracing"
)

func newFmtCmd(c *cli) *cobra.Command {
	var preserve, diff bool
	cmd := &cobra.Command{
		Use:   "fmt FILE",
		Short: "Re-serialize a stylesheet",
		Long: `Parse a stylesheet and write it back out.

By default the output is compact: comments and whitespace are dropped and a
single space is kept only where tokens would otherwise merge. With --preserve
(or output.format: preserve) the original trivia is replayed so the output
matches the input byte for byte.

Examples:
  csskit fmt style.css
  csskit fmt --diff style.css`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			source, err := readSource(c.fs, path)
			if err != nil {
				return err
			}

			_, span := tracing.StartFile(cmd.Context(), c.tracer(), tracing.SpanParse, path, len(source))
			result := parseStyleSheet(c.cfg, source)
			tracing.EndFile(span, len(result.Errors), nil)
			if len(result.Errors) > 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), parser.ReportAll(result.Errors, source, path))
			}

			if preserve || c.cfg.Output.Format == "preserve" {
				result = result.WithTrivia()
			}
			var b strings.Builder
			sink := parser.NewWriteSink(source, &b)
			result.ToCursors(sink)
			if err := sink.Err(); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}

			if diff {
				writeDiff(cmd.OutOrStdout(), source, b.String())
				return nil
			}
			_, err = io.WriteString(cmd.OutOrStdout(), b.String())
			return err
		},
	}
	cmd.Flags().BoolVarP(&preserve, "preserve", "p", false, "keep comments and whitespace")
	cmd.Flags().BoolVarP(&diff, "diff", "d", false, "print a line diff against the input instead")
	return cmd
}

// writeDiff prints a line-oriented diff from before to after. Unchanged lines
// are omitted.
func writeDiff(w io.Writer, before, after string) {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(before, after)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	changed := false
	for _, d := range diffs {
		var prefix string
		var render func(...string) string
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			prefix, render = "+", styles.DiffInsertStyle.Render
		case diffmatchpatch.DiffDelete:
			prefix, render = "-", styles.DiffDeleteStyle.Render
		default:
			continue
		}
		changed = true
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			fmt.Fprintln(w, render(prefix+strings.TrimSuffix(line, "\n")))
		}
	}
	if !changed {
		fmt.Fprintln(w, styles.DiffHunkStyle.Render("no changes"))
	}
}
