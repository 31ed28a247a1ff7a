package atomgen

import (
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

const sampleSpec = `
package: sample
type: SampleAtom
doc: a test set.
atoms:
  - px
  - em
  - color
  - display
  - font-size
  - animation-timing-function
  - name: Percent
    atom: "%"
`

func TestParse(t *testing.T) {
	spec, err := Parse([]byte(sampleSpec))
	require.NoError(t, err)
	assert.Equal(t, "sample", spec.Package)
	assert.Equal(t, "SampleAtom", spec.Type)
	require.Len(t, spec.Atoms, 7)
	assert.Equal(t, Atom{Name: "FontSize", Text: "font-size"}, spec.Atoms[4])
	assert.Equal(t, Atom{Name: "Percent", Text: "%"}, spec.Atoms[6])
}

func TestValidate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{
			name:    "missing package",
			input:   "type: A\natoms: [px]",
			wantErr: "package is required",
		},
		{
			name:    "bad type",
			input:   "package: p\ntype: lower\natoms: [px]",
			wantErr: "exported identifier",
		},
		{
			name:    "no atoms",
			input:   "package: p\ntype: A",
			wantErr: "no atoms",
		},
		{
			name:    "upper case",
			input:   "package: p\ntype: A\natoms: [PX]",
			wantErr: "lower case",
		},
		{
			name:    "duplicate",
			input:   "package: p\ntype: A\natoms: [px, px]",
			wantErr: "duplicate",
		},
		{
			name:    "needs name",
			input:   "package: p\ntype: A\natoms: ['%']",
			wantErr: "needs an explicit name",
		},
		{
			name:    "reserved name",
			input:   "package: p\ntype: A\natoms: [none]",
			wantErr: "needs an explicit name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestConstName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{input: "px", expected: "Px"},
		{input: "font-size", expected: "FontSize"},
		{input: "-webkit-box", expected: "WebkitBox"},
		{input: "nth-of-type", expected: "NthOfType"},
		{input: "%", expected: ""},
		{input: "3d", expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, ConstName(tt.input))
		})
	}
}

func TestUnexported(t *testing.T) {
	assert.Equal(t, "cssAtom", unexported("CSSAtom"))
	assert.Equal(t, "queryAtom", unexported("QueryAtom"))
	assert.Equal(t, "url", unexported("URL"))
	assert.Equal(t, "a", unexported("A"))
}

func TestGenerate(t *testing.T) {
	spec, err := Parse([]byte(sampleSpec))
	require.NoError(t, err)

	src, err := Generate(spec, "sample.yaml")
	require.NoError(t, err)

	_, err = parser.ParseFile(token.NewFileSet(), "sample_gen.go", src, parser.AllErrors)
	require.NoError(t, err)

	out := string(src)
	assert.True(t, strings.HasPrefix(out, "// Code generated by atomgen from sample.yaml. DO NOT EDIT."))
	for _, want := range []string{
		"type SampleAtom uint32",
		"SampleAtomNone SampleAtom = iota",
		"SampleAtomAnimationTimingFunction",
		"SampleAtomPercent",
		"func SampleAtomFromString(s string) SampleAtom",
		"func (SampleAtomSet) BitsBytes(b []byte) uint32",
		"func sampleAtomLookup[T string | []byte](s T) SampleAtom",
		"b0, b1 := lowerByte(s[0]), lowerByte(s[1])",
		"case b0 == 'p' && b1 == 'x':",
		"case b0 == '%':",
		"w0 := fold64(load64(s, 0, 8))",
		"w3 := fold64(load64(s, 24, 1))",
	} {
		assert.Contains(t, out, want)
	}
}

func TestBuckets(t *testing.T) {
	spec, err := Parse([]byte(sampleSpec))
	require.NoError(t, err)

	got := buckets(spec)
	var lens []int
	for _, b := range got {
		lens = append(lens, b.Len)
		assert.Equal(t, b.Len <= TupleMaxLen, b.Tuple)
	}
	assert.Equal(t, []int{1, 2, 5, 7, 9, 25}, lens)
	assert.Len(t, got[5].Atoms[0].Words, 4)
}

func TestFold64(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		s := string(rapid.SliceOfN(rapid.Byte(), 8, 8).Draw(t, "s"))
		want := Load64(lowerASCII(s), 0, 8)
		if got := Fold64(Load64(s, 0, 8)); got != want {
			t.Fatalf("Fold64(%q) = %#x, want %#x", s, got, want)
		}
	})
}

func TestFold64_AllBytes(t *testing.T) {
	for c := range 256 {
		want := byte(c)
		if want >= 'A' && want <= 'Z' {
			want += 'a' - 'A'
		}
		got := byte(Fold64(uint64(c)))
		assert.Equal(t, want, got, "byte %#x", c)
	}
}

func TestWords(t *testing.T) {
	assert.Equal(t, []uint64{0x79616c70736964}, Words("display"))
	assert.Equal(t, Words("display"), Words("DISPLAY"))
	assert.Len(t, Words("animation-timing-function"), 4)
	assert.Empty(t, Words(""))
}
