package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/zjrosen/csskit/internal/atoms"
	"github.com/zjrosen/csskit/internal/lexer"
)

func TestDefaults_AreValid(t *testing.T) {
	require.NoError(t, Validate(Defaults()))
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{name: "unknown atoms", mutate: func(c *Config) { c.Atoms = "html" }, wantErr: "atoms must be"},
		{name: "lookahead too large", mutate: func(c *Config) { c.Lookahead = 33 }, wantErr: "lookahead must be between 0 and 32"},
		{name: "negative workers", mutate: func(c *Config) { c.Workers = -1 }, wantErr: "workers must not be negative"},
		{name: "bad color", mutate: func(c *Config) { c.Output.Color = "sometimes" }, wantErr: "output.color"},
		{name: "bad format", mutate: func(c *Config) { c.Output.Format = "pretty" }, wantErr: "output.format"},
		{name: "negative ttl", mutate: func(c *Config) { c.Cache.TTL = -time.Second }, wantErr: "cache.ttl"},
		{name: "negative debounce", mutate: func(c *Config) { c.Watch.Debounce = -time.Second }, wantErr: "watch.debounce"},
		{name: "sample rate", mutate: func(c *Config) { c.Tracing.SampleRate = 1.5 }, wantErr: "sample_rate"},
		{name: "exporter", mutate: func(c *Config) { c.Tracing.Exporter = "zipkin" }, wantErr: "tracing.exporter"},
		{
			name: "file exporter needs path",
			mutate: func(c *Config) {
				c.Tracing.Enabled = true
				c.Tracing.Exporter = "file"
			},
			wantErr: "file_path is required",
		},
		{
			name: "otlp needs endpoint",
			mutate: func(c *Config) {
				c.Tracing.Enabled = true
				c.Tracing.Exporter = "otlp"
				c.Tracing.OTLPEndpoint = ""
			},
			wantErr: "otlp_endpoint is required",
		},
		{name: "empty values use defaults", mutate: func(c *Config) { *c = Config{} }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Defaults()
			tt.mutate(&c)
			err := Validate(c)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			require.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConfig_AtomSetAndFeatures(t *testing.T) {
	c := Defaults()
	require.Equal(t, atoms.CSS, c.AtomSet())
	c.Atoms = "query"
	require.Equal(t, atoms.Query, c.AtomSet())
	c.Atoms = "empty"
	require.Equal(t, lexer.EmptyAtomSet{}, c.AtomSet())

	require.Equal(t, lexer.Feature(0), c.LexerFeatures())
	c.Features.SingleLineComments = true
	c.Features.SeparateWhitespace = true
	require.True(t, c.LexerFeatures().Has(lexer.SingleLineComments))
	require.True(t, c.LexerFeatures().Has(lexer.SeparateWhitespace))
}

func TestDefaultConfigTemplate_MatchesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.yaml")
	require.NoError(t, WriteDefaultConfig(path))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)

	want := Defaults()
	require.Equal(t, want, cfg)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("atoms: query\noutput:\n  format: preserve\nwatch:\n  debounce: 2s\n"), 0o600))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, "query", cfg.Atoms)
	require.Equal(t, "preserve", cfg.Output.Format)
	require.Equal(t, "auto", cfg.Output.Color)
	require.Equal(t, 2*time.Second, cfg.Watch.Debounce)
	require.Equal(t, 12, cfg.Lookahead)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(viper.New(), filepath.Join(dir, "missing.yaml"))
	require.ErrorContains(t, err, "reading config")

	invalid := filepath.Join(dir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalid, []byte("workers: -3\n"), 0o600))
	_, err = Load(viper.New(), invalid)
	require.ErrorContains(t, err, "invalid config")
}

func TestSetValue_PreservesComments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("# keep me\natoms: css # inline\noutput:\n  color: auto\n"), 0o600))

	require.NoError(t, SetValue(path, "output.format", "preserve"))
	require.NoError(t, SetValue(path, "atoms", "query"))
	require.NoError(t, SetValue(path, "watch.debounce", "1s"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "# keep me")
	require.Contains(t, string(data), "# inline")

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(data, &got))
	require.Equal(t, "query", got["atoms"])
	require.Equal(t, map[string]any{"color": "auto", "format": "preserve"}, got["output"])
	require.Equal(t, map[string]any{"debounce": "1s"}, got["watch"])
}

func TestSetValue_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new", "config.yaml")
	require.NoError(t, SetValue(path, "workers", "8"))

	cfg, err := Load(viper.New(), path)
	require.NoError(t, err)
	require.Equal(t, 8, cfg.Workers)
}

func TestSetValue_Errors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output:\n  color: auto\n"), 0o600))

	require.ErrorContains(t, SetValue(path, "", "x"), "empty key")
	require.ErrorContains(t, SetValue(path, "output", "x"), "is a section")
	require.ErrorContains(t, SetValue(path, "output.color.deep", "x"), "is not a section")
}
