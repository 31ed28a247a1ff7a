// Package config provides configuration types and defaults for csskit.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/csskit/internal/atoms"
	"github.com/zjrosen/csskit/internal/lexer"
	"github.com/zjrosen/csskit/internal/log"
)

// Config holds all configuration options for csskit.
type Config struct {
	Atoms     string         `mapstructure:"atoms"`     // "css" (default), "query" or "empty"
	Lookahead int            `mapstructure:"lookahead"` // parser lookahead ring size
	Workers   int            `mapstructure:"workers"`   // files checked concurrently
	Features  FeaturesConfig `mapstructure:"features"`
	Output    OutputConfig   `mapstructure:"output"`
	Cache     CacheConfig    `mapstructure:"cache"`
	Watch     WatchConfig    `mapstructure:"watch"`
	Tracing   TracingConfig  `mapstructure:"tracing"`
}

// FeaturesConfig toggles optional tokenizer behaviour.
type FeaturesConfig struct {
	SingleLineComments bool `mapstructure:"single_line_comments"`
	SeparateWhitespace bool `mapstructure:"separate_whitespace"`
}

// OutputConfig controls how results are printed.
type OutputConfig struct {
	Color  string `mapstructure:"color"`  // "auto" (default), "always" or "never"
	Format string `mapstructure:"format"` // "compact" (default) or "preserve"
}

// CacheConfig controls the check result cache used in watch mode.
type CacheConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

// WatchConfig controls file watching.
type WatchConfig struct {
	// Debounce coalesces bursts of file events.
	// Default: 100ms
	Debounce time.Duration `mapstructure:"debounce"`
}

// TracingConfig holds tracing configuration for the CLI.
type TracingConfig struct {
	// Enabled controls whether tracing is active.
	// Default: false
	Enabled bool `mapstructure:"enabled"`

	// Exporter selects the trace export backend.
	// Options: "none", "file", "stdout", "otlp"
	// Default: "file"
	Exporter string `mapstructure:"exporter"`

	// FilePath is the output file for "file" exporter.
	// Default: ~/.config/csskit/traces/traces.jsonl
	FilePath string `mapstructure:"file_path"`

	// OTLPEndpoint is the collector endpoint for "otlp" exporter.
	// Default: "localhost:4317"
	OTLPEndpoint string `mapstructure:"otlp_endpoint"`

	// SampleRate controls trace sampling (0.0 to 1.0).
	// Default: 1.0
	SampleRate float64 `mapstructure:"sample_rate"`
}

// AtomSet returns the atom set named by Atoms.
func (c Config) AtomSet() lexer.AtomSet {
	switch c.Atoms {
	case "query":
		return atoms.Query
	case "empty":
		return lexer.EmptyAtomSet{}
	default:
		return atoms.CSS
	}
}

// LexerFeatures returns the tokenizer feature flags.
func (c Config) LexerFeatures() lexer.Feature {
	var f lexer.Feature
	if c.Features.SingleLineComments {
		f |= lexer.SingleLineComments
	}
	if c.Features.SeparateWhitespace {
		f |= lexer.SeparateWhitespace
	}
	return f
}

// DefaultTracesFilePath returns the default path for trace file export.
// Returns ~/.config/csskit/traces/traces.jsonl or empty string if home dir unavailable.
func DefaultTracesFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "csskit", "traces", "traces.jsonl")
}

// LocalConfigPath is the project-local config file, checked first.
const LocalConfigPath = ".csskit/config.yaml"

// UserConfigDir returns ~/.config/csskit, or empty string if home dir unavailable.
func UserConfigDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "csskit")
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Atoms:     "css",
		Lookahead: 12,
		Workers:   4,
		Output: OutputConfig{
			Color:  "auto",
			Format: "compact",
		},
		Cache: CacheConfig{
			TTL: 10 * time.Minute,
		},
		Watch: WatchConfig{
			Debounce: 100 * time.Millisecond,
		},
		Tracing: TracingConfig{
			Enabled:      false,
			Exporter:     "file",
			FilePath:     "", // Derived from config dir at runtime
			OTLPEndpoint: "localhost:4317",
			SampleRate:   1.0,
		},
	}
}

// Validate checks the whole configuration.
func Validate(c Config) error {
	switch c.Atoms {
	case "", "css", "query", "empty":
	default:
		return fmt.Errorf("atoms must be \"css\", \"query\", or \"empty\", got %q", c.Atoms)
	}
	if c.Lookahead < 0 || c.Lookahead > 32 {
		return fmt.Errorf("lookahead must be between 0 and 32, got %d", c.Lookahead)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	if err := ValidateOutput(c.Output); err != nil {
		return err
	}
	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must not be negative, got %s", c.Cache.TTL)
	}
	if c.Watch.Debounce < 0 {
		return fmt.Errorf("watch.debounce must not be negative, got %s", c.Watch.Debounce)
	}
	return ValidateTracing(c.Tracing)
}

// ValidateOutput checks output configuration for errors.
func ValidateOutput(o OutputConfig) error {
	switch o.Color {
	case "", "auto", "always", "never":
	default:
		return fmt.Errorf("output.color must be \"auto\", \"always\", or \"never\", got %q", o.Color)
	}
	switch o.Format {
	case "", "compact", "preserve":
	default:
		return fmt.Errorf("output.format must be \"compact\" or \"preserve\", got %q", o.Format)
	}
	return nil
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(tracing TracingConfig) error {
	if tracing.SampleRate < 0.0 || tracing.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", tracing.SampleRate)
	}

	if tracing.Exporter != "" {
		switch tracing.Exporter {
		case "none", "file", "stdout", "otlp":
		default:
			return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", tracing.Exporter)
		}
	}

	// Only validate path requirements when tracing is enabled
	if tracing.Enabled {
		if tracing.Exporter == "file" && tracing.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if tracing.Exporter == "otlp" && tracing.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}

	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# csskit configuration

# Keyword set used to pre-classify identifiers: css, query or empty
atoms: css

# Parser lookahead ring size (1-32)
lookahead: 12

# Files checked concurrently by "csskit check"
workers: 4

# Optional tokenizer behaviour
features:
  single_line_comments: false   # Treat "//" to end of line as a comment
  separate_whitespace: false    # One token per run of identical whitespace

output:
  color: auto       # auto, always or never
  format: compact   # compact or preserve (keeps comments and whitespace)

# Check results are cached by content hash in watch mode
cache:
  ttl: 10m

watch:
  debounce: 100ms

# Tracing (disabled by default)
# tracing:
#   enabled: true
#   exporter: file
#   file_path: ~/.config/csskit/traces/traces.jsonl
#
# Example: Send traces to Jaeger via OTLP
# tracing:
#   enabled: true
#   exporter: otlp
#   otlp_endpoint: jaeger.internal:4317
#   sample_rate: 0.1  # Sample 10% of traces
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
