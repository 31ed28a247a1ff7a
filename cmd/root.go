// Package cmd implements the csskit command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.opentelemetry.io/otel/trace"
	"go.opentelemetry.io/otel/trace/noop"

	"github.com/zjrosen/csskit/internal/config"
	"github.com/zjrosen/csskit/internal/log"
	"github.com/zjrosen/csskit/internal/tracing"
)

var version = "dev"

// cli holds state shared by every subcommand of one root command.
type cli struct {
	fs    afero.Fs
	viper *viper.Viper

	cfgFile string
	debug   bool

	cfg      config.Config
	provider *tracing.Provider
	cleanup  []func()
}

func (c *cli) tracer() trace.Tracer {
	if c.provider == nil {
		return noop.NewTracerProvider().Tracer("csskit")
	}
	return c.provider.Tracer()
}

// newRootCmd builds the command tree. Source files are read through fs. The
// caller must close the returned cli after Execute.
func newRootCmd(fs afero.Fs) (*cobra.Command, *cli) {
	c := &cli{fs: fs, viper: viper.New()}

	root := &cobra.Command{
		Use:   "csskit",
		Short: "Tokenize, check and format CSS",
		Long: `csskit tokenizes and parses CSS stylesheets.

It reports syntax errors with source excerpts, re-serializes stylesheets
compactly or losslessly, and highlights source in the terminal.`,
		Version:            version,
		SilenceUsage:       true,
		PersistentPreRunE: c.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVarP(&c.cfgFile, "config", "c", "",
		"config file (default: .csskit/config.yaml or ~/.config/csskit/config.yaml)")
	flags.BoolVar(&c.debug, "debug", false, "write debug logs (also CSSKIT_DEBUG)")
	flags.String("atoms", "", "keyword set: css, query or empty")
	flags.String("color", "", "colour output: auto, always or never")
	_ = c.viper.BindPFlag("atoms", flags.Lookup("atoms"))
	_ = c.viper.BindPFlag("output.color", flags.Lookup("color"))

	root.AddCommand(
		newLexCmd(c),
		newCheckCmd(c),
		newFmtCmd(c),
		newHighlightCmd(c),
		newAtomCmd(c),
		newConfigCmd(c),
	)
	return root, c
}

func (c *cli) setup(cmd *cobra.Command, _ []string) error {
	if c.debug || os.Getenv("CSSKIT_DEBUG") != "" {
		logPath := os.Getenv("CSSKIT_LOG")
		if logPath == "" {
			logPath = "debug.log"
		}
		cleanup, err := log.Init(logPath)
		if err != nil {
			return fmt.Errorf("initializing logging: %w", err)
		}
		c.cleanup = append(c.cleanup, cleanup)
		log.Info(log.CatCLI, "csskit starting", "command", cmd.Name(), "version", version)
	}

	cfg, err := config.Load(c.viper, c.cfgFile)
	if err != nil {
		return err
	}
	c.cfg = cfg
	log.Debug(log.CatAtoms, "atom set selected", "atoms", cfg.Atoms, "lookahead", cfg.Lookahead)

	switch cfg.Output.Color {
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	}

	provider, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("initializing tracing: %w", err)
	}
	c.provider = provider
	return nil
}

// close flushes traces and closes the debug log. Safe to call when setup
// never ran.
func (c *cli) close() error {
	var errs []error
	if c.provider != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := c.provider.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("flushing traces: %w", err))
		}
		c.provider = nil
	}
	for _, fn := range c.cleanup {
		fn()
	}
	c.cleanup = nil
	return errors.Join(errs...)
}

// Execute runs the root command
func Execute() error {
	root, c := newRootCmd(afero.NewOsFs())
	err := root.Execute()
	if closeErr := c.close(); closeErr != nil && err == nil {
		err = closeErr
	}
	return err
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
}
