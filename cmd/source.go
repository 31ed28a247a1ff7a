package cmd

import (
	"fmt"

	"github.com/spf13/afero"

	"github.com/zjrosen/csskit/internal/arena"
	"github.com/zjrosen/csskit/internal/config"
	"github.com/zjrosen/csskit/internal/parser"
	"github.com/zjrosen/csskit/internal/syntax"
)

// readSource reads a stylesheet from fs.
func readSource(fs afero.Fs, path string) (string, error) {
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}
	return string(data), nil
}

// parseStyleSheet parses source with the configured atoms, lookahead and
// tokenizer features. Each call gets its own arena.
func parseStyleSheet(cfg config.Config, source string) parser.Result[syntax.StyleSheet] {
	p := parser.NewWithOptions(arena.New(), cfg.AtomSet(), source, parser.Options{
		Lookahead: cfg.Lookahead,
		Features:  cfg.LexerFeatures(),
	})
	return parser.ParseEntirely[syntax.StyleSheet](p)
}
