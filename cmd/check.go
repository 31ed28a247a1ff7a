package cmd

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"runtime"
	"slices"
	"strconv"
	"syscall"

	"github.com/sourcegraph/conc/pool"
	"github.com/spf13/cobra"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/zjrosen/csskit/internal/cachemanager"
	"github.com/zjrosen/csskit/internal/config"
	"github.com/zjrosen/csskit/internal/log"
	"github.com/zjrosen/csskit/internal/parser"
	"github.com/zjrosen/csskit/internal/tracing"
	"github.com/zjrosen/csskit/internal/watcher"
)

// checkInput is one file to check.
type checkInput struct {
	Path   string
	Source string
}

// checkOutcome is the cached result of checking one file.
type checkOutcome struct {
	Path     string
	Problems int
	Report   string
	Err      error
}

// checker parses files and caches reports by content.
type checker struct {
	cfg    config.Config
	tracer trace.Tracer
	mgr    cachemanager.CacheManager[cachemanager.Key, checkOutcome]
	cache  *cachemanager.ReadThroughCache[cachemanager.Key, checkOutcome, checkInput]
}

func newChecker(cfg config.Config, tracer trace.Tracer, skipCache bool) *checker {
	ch := &checker{cfg: cfg, tracer: tracer}
	ch.mgr = cachemanager.NewInMemoryCacheManager[cachemanager.Key, checkOutcome](
		"check", cfg.Cache.TTL, cachemanager.DefaultCleanupInterval)
	ch.cache = cachemanager.NewReadThroughCache(ch.mgr, ch.key, ch.check, skipCache)
	return ch
}

// reload switches to cfg and drops every cached report. Must not be called
// while run is in progress.
func (ch *checker) reload(ctx context.Context, cfg config.Config) error {
	ch.cfg = cfg
	if err := ch.mgr.Flush(ctx); err != nil {
		return fmt.Errorf("flushing check cache: %w", err)
	}
	log.Info(log.CatConfig, "config reloaded, check cache flushed", "atoms", cfg.Atoms)
	return nil
}

// key covers everything that changes a report.
func (ch *checker) key(in checkInput) cachemanager.Key {
	return cachemanager.ContentKey(
		in.Path,
		in.Source,
		ch.cfg.Atoms,
		strconv.Itoa(int(ch.cfg.LexerFeatures())),
	)
}

func (ch *checker) check(_ context.Context, in checkInput) (checkOutcome, error) {
	result := parseStyleSheet(ch.cfg, in.Source)
	out := checkOutcome{Path: in.Path, Problems: len(result.Errors)}
	if out.Problems > 0 {
		out.Report = parser.ReportAll(result.Errors, in.Source, in.Path)
	}
	log.Debug(log.CatParser, "checked", "path", in.Path, "problems", out.Problems)
	return out, nil
}

// run checks paths with at most cfg.Workers files in flight. Outcomes keep
// the order of paths.
func (ch *checker) run(ctx context.Context, c *cli, paths []string) []checkOutcome {
	workers := ch.cfg.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	outcomes := make([]checkOutcome, len(paths))
	p := pool.New().WithMaxGoroutines(workers)
	for i, path := range paths {
		p.Go(func() {
			outcomes[i] = ch.checkFile(ctx, c, path)
		})
	}
	p.Wait()
	return outcomes
}

func (ch *checker) checkFile(ctx context.Context, c *cli, path string) checkOutcome {
	source, err := readSource(c.fs, path)
	if err != nil {
		return checkOutcome{Path: path, Err: err}
	}
	ctx, span := tracing.StartFile(ctx, ch.tracer, tracing.SpanCheck, path, len(source))
	out, hit, err := ch.cache.Get(ctx, checkInput{Path: path, Source: source}, ch.cfg.Cache.TTL)
	span.SetAttributes(attribute.Bool(tracing.AttrCacheHit, hit))
	tracing.EndFile(span, out.Problems, err)
	if err != nil {
		return checkOutcome{Path: path, Err: err}
	}
	return out
}

// printOutcomes writes reports and returns the number of problems, counting
// unreadable files as one each.
func printOutcomes(w io.Writer, outcomes []checkOutcome) int {
	problems := 0
	for _, o := range outcomes {
		switch {
		case o.Err != nil:
			problems++
			fmt.Fprintf(w, "%v\n", o.Err)
		case o.Problems > 0:
			problems += o.Problems
			fmt.Fprintln(w, o.Report)
		}
	}
	return problems
}

func plural(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}

func newCheckCmd(c *cli) *cobra.Command {
	var watch bool
	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Report syntax errors in stylesheets",
		Long: `Parse each file as a stylesheet and print a report for every syntax error.

Files are checked concurrently, bounded by the "workers" setting. With --watch
the files are re-checked whenever they change; unchanged content is served
from a cache keyed by its hash.

Examples:
  csskit check style.css theme.css
  csskit check --watch src/*.css`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, span := tracing.StartCommand(cmd.Context(), c.tracer(), "check")
			defer span.End()
			span.SetAttributes(attribute.String(tracing.AttrAtomSet, c.cfg.Atoms))

			ch := newChecker(c.cfg, c.tracer(), !watch)
			problems := printOutcomes(cmd.OutOrStdout(), ch.run(ctx, c, args))
			if !watch {
				if problems > 0 {
					return fmt.Errorf("found %s in %s", plural(problems, "problem"), plural(len(args), "file"))
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s checked, no problems\n", plural(len(args), "file"))
				return nil
			}
			return c.watchAndCheck(ctx, cmd.OutOrStdout(), ch, args)
		},
	}
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "re-check files when they change")
	cmd.Flags().Int("workers", 0, "files checked concurrently (overrides config)")
	_ = c.viper.BindPFlag("workers", cmd.Flags().Lookup("workers"))
	return cmd
}

// loadedConfigPath returns the config file in effect, or "" when running on
// defaults.
func (c *cli) loadedConfigPath() string {
	if c.cfgFile != "" {
		return c.cfgFile
	}
	if c.viper == nil {
		return ""
	}
	return c.viper.ConfigFileUsed()
}

// splitConfig separates the config file from the stylesheets in a batch of
// changed paths.
func splitConfig(changed []string, configPath string) ([]string, bool) {
	if configPath == "" {
		return changed, false
	}
	files := make([]string, 0, len(changed))
	found := false
	for _, p := range changed {
		if p == configPath {
			found = true
			continue
		}
		files = append(files, p)
	}
	return files, found
}

// reloadConfig re-reads the config file. A config that fails to load or
// validate is reported and the previous one kept.
func (c *cli) reloadConfig(ctx context.Context, w io.Writer, ch *checker, path string) bool {
	cfg, err := config.Load(c.viper, path)
	if err != nil {
		log.ErrorErr(log.CatConfig, "config reload failed", err)
		fmt.Fprintf(w, "keeping previous config: %v\n", err)
		return false
	}
	if err := ch.reload(ctx, cfg); err != nil {
		fmt.Fprintf(w, "%v\n", err)
		return false
	}
	c.cfg = cfg
	return true
}

// watchAndCheck re-checks changed files until interrupted. A change to the
// config file reloads it and re-checks every file.
func (c *cli) watchAndCheck(ctx context.Context, w io.Writer, ch *checker, paths []string) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	configPath := c.loadedConfigPath()
	watched := paths
	if configPath != "" {
		watched = append(slices.Clip(paths), configPath)
	}
	cfg := watcher.DefaultConfig(watched...)
	if c.cfg.Watch.Debounce > 0 {
		cfg.DebounceDur = c.cfg.Watch.Debounce
	}
	wt, err := watcher.New(cfg)
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	changes, err := wt.Start()
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer func() { _ = wt.Stop() }()

	fmt.Fprintf(w, "watching %s, press ctrl-c to stop\n", plural(len(paths), "file"))
	for {
		select {
		case <-ctx.Done():
			return nil
		case changed, ok := <-changes:
			if !ok {
				return nil
			}
			log.Info(log.CatWatcher, "files changed", "count", len(changed))
			files, configChanged := splitConfig(changed, configPath)
			if configChanged && c.reloadConfig(ctx, w, ch, configPath) {
				files = paths
			}
			if len(files) == 0 {
				continue
			}
			problems := printOutcomes(w, ch.run(ctx, c, files))
			log.Debug(log.CatWatcher, "check cache", "entries", ch.mgr.Len())
			fmt.Fprintf(w, "re-checked %s: %s\n", plural(len(files), "file"), plural(problems, "problem"))
		}
	}
}
