package atoms

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zjrosen/csskit/internal/atomgen"
)

// The checked-in tables must be exactly what go generate would write.
func TestGeneratedFilesAreCurrent(t *testing.T) {
	tests := []struct {
		yaml string
		gen  string
	}{
		{yaml: "css_atoms.yaml", gen: "css_atoms_gen.go"},
		{yaml: "query_atoms.yaml", gen: "query_atoms_gen.go"},
	}
	for _, tt := range tests {
		t.Run(tt.yaml, func(t *testing.T) {
			spec, err := atomgen.Load(tt.yaml)
			require.NoError(t, err)
			want, err := atomgen.Generate(spec, tt.yaml)
			require.NoError(t, err)

			got, err := os.ReadFile(tt.gen)
			require.NoError(t, err)
			require.Equal(t, string(want), string(got), "%s is stale; run go generate ./internal/atoms", tt.gen)
		})
	}
}

func TestNoneKeywordIsDistinctFromNoMatch(t *testing.T) {
	require.Equal(t, CSSAtomNoneKeyword, CSSAtomFromString("none"))
	require.Equal(t, CSSAtomNoneKeyword, CSSAtomFromString("NONE"))
	require.NotEqual(t, CSSAtomNone, CSSAtomNoneKeyword)
	require.Equal(t, "none", CSSAtomNoneKeyword.String())
}
