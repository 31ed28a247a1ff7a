// Command atomgen generates atom interning tables from a YAML keyword list.
//
//	go run ./cmd/atomgen -i css_atoms.yaml -o css_atoms_gen.go
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/zjrosen/csskit/internal/atomgen"
)

func main() {
	if err := newCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newCommand() *cobra.Command {
	var in, out string
	cmd := &cobra.Command{
		Use:           "atomgen",
		Short:         "Generate atom interning code from a keyword list",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, _ []string) error {
			spec, err := atomgen.Load(in)
			if err != nil {
				return err
			}
			src, err := atomgen.Generate(spec, filepath.Base(in))
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			if err := os.WriteFile(out, src, 0o644); err != nil { //nolint:gosec // generated source is world readable
				return fmt.Errorf("writing %s: %w", out, err)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&in, "in", "i", "", "YAML keyword file")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output Go file (stdout when empty)")
	_ = cmd.MarkFlagRequired("in")
	return cmd
}
