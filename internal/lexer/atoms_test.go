package lexer_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/csskit/internal/atoms"
	"github.com/zjrosen/csskit/internal/lexer"
)

func TestLexer_Interning(t *testing.T) {
	tests := []struct {
		input    string
		kind     lexer.Kind
		expected atoms.CSSAtom
	}{
		{input: "width", kind: lexer.KindIdent, expected: atoms.CSSAtomWidth},
		{input: "WIDTH", kind: lexer.KindIdent, expected: atoms.CSSAtomWidth},
		{input: `w\69 dth`, kind: lexer.KindIdent, expected: atoms.CSSAtomWidth},
		{input: "@media", kind: lexer.KindAtKeyword, expected: atoms.CSSAtomMedia},
		{input: "@MeDiA", kind: lexer.KindAtKeyword, expected: atoms.CSSAtomMedia},
		{input: "calc(", kind: lexer.KindFunction, expected: atoms.CSSAtomCalc},
		{input: "10px", kind: lexer.KindDimension, expected: atoms.CSSAtomPx},
		{input: "10PX", kind: lexer.KindDimension, expected: atoms.CSSAtomPx},
		{input: "50%", kind: lexer.KindDimension, expected: atoms.CSSAtomPercent},
		{input: "animation-timing-function", kind: lexer.KindIdent, expected: atoms.CSSAtomAnimationTimingFunction},
		{input: "-WEBKIT-font-smoothing", kind: lexer.KindIdent, expected: atoms.CSSAtomWebkitFontSmoothing},
		{input: "widths", kind: lexer.KindIdent, expected: atoms.CSSAtomNone},
		{input: "--width", kind: lexer.KindIdent, expected: atoms.CSSAtomNone},
		{input: "--px", kind: lexer.KindIdent, expected: atoms.CSSAtomNone},
		{input: `--\70 x`, kind: lexer.KindIdent, expected: atoms.CSSAtomNone},
		{input: "--calc(", kind: lexer.KindFunction, expected: atoms.CSSAtomNone},
		{input: "@--media", kind: lexer.KindAtKeyword, expected: atoms.CSSAtomNone},
		{input: "1--px", kind: lexer.KindDimension, expected: atoms.CSSAtomNone},
		{input: `1--\70 x`, kind: lexer.KindDimension, expected: atoms.CSSAtomNone},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			cursors := lexer.Tokenize(atoms.CSS, tt.input, 0)
			require.Len(t, cursors, 1)
			assert.Equal(t, tt.kind, cursors[0].Kind())
			assert.Equal(t, tt.expected, atoms.CSSAtom(cursors[0].Token.AtomBits()))
		})
	}
}

func TestLexer_EscapesMatchPlainSpelling(t *testing.T) {
	escaped := lexer.Tokenize(atoms.CSS, `bo\64 y{width:1\70\78}`, 0)
	plain := lexer.Tokenize(atoms.CSS, "body{width:1px}", 0)
	require.Len(t, escaped, len(plain))
	for i := range plain {
		assert.Equal(t, plain[i].Kind(), escaped[i].Kind(), "token %d", i)
		assert.Equal(t, plain[i].Token.AtomBits(), escaped[i].Token.AtomBits(), "token %d", i)
		assert.Equal(t, plain[i].Token.Value(), escaped[i].Token.Value(), "token %d", i)
	}
	assert.Equal(t, atoms.CSSAtomPx, atoms.CSSAtom(escaped[4].Token.AtomBits()))
	assert.True(t, escaped[0].Token.ContainsEscape())
	assert.False(t, plain[0].Token.ContainsEscape())
}

// The lexer never fails: every input is covered by non-empty tokens that
// tile the source exactly.
func TestLexer_TilesAnyInput(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		source := rapid.String().Draw(t, "source")
		features := lexer.Feature(rapid.IntRange(0, 3).Draw(t, "features"))
		offset := lexer.SourceOffset(0)
		for _, c := range lexer.Tokenize(atoms.CSS, source, features) {
			if c.Offset != offset {
				t.Fatalf("gap before %s: expected offset %d", c, offset)
			}
			if c.Token.IsEmpty() {
				t.Fatalf("empty token %s", c)
			}
			offset = c.EndOffset()
		}
		if int(offset) != len(source) {
			t.Fatalf("tokens cover %d of %d bytes", offset, len(source))
		}
	})
}

var fragments = []string{
	"a", "b-c", "--x", "px", "Width", "1", "-2", "+3", ".5", "1.5", "10px", "50%", "1e3",
	"#fff", "#a", "@m", "'s'", `"d"`, ":", ";", ",", "{", "}", "(", ")", "[", "]",
	".", "+", "-", "#", "@", "/", "*", "f(", "url(x)", " ", "\n", "/* c */",
	"<", "!", ">", `\`, "--", "<!--", "-->",
}

func significant(source string) []lexer.SourceCursor {
	var out []lexer.SourceCursor
	for _, c := range lexer.Tokenize(atoms.CSS, source, 0) {
		if !c.Token.IsTrivia() {
			out = append(out, lexer.NewSourceCursor(c, source))
		}
	}
	return out
}

func minify(tokens []lexer.SourceCursor) string {
	var b strings.Builder
	for i, tok := range tokens {
		if i > 0 && tokens[i-1].Token().NeedsSeparatorFor(tok.Token()) {
			b.WriteString(lexer.DummyCursor(tokens[i-1].Token().Separator()).StrSlice(""))
		}
		b.WriteString(tok.Text)
	}
	if n := len(tokens); n > 0 && tokens[n-1].Token().NeedsSeparatorFor(lexer.TokenEOF) {
		b.WriteString(lexer.DummyCursor(tokens[n-1].Token().Separator()).StrSlice(""))
	}
	return b.String()
}

// Dropping trivia and re-joining tokens with a separator wherever
// NeedsSeparatorFor asks for one reproduces the same token sequence.
func TestLexer_SeparatorRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		parts := rapid.SliceOfN(rapid.SampledFrom(fragments), 0, 24).Draw(t, "parts")
		source := strings.Join(parts, "")
		tokens := significant(source)

		minified := minify(tokens)

		again := significant(minified)
		if len(again) != len(tokens) {
			t.Fatalf("%q minified to %q: %d tokens became %d", source, minified, len(tokens), len(again))
		}
		for i := range tokens {
			if tokens[i].Token() != again[i].Token() || tokens[i].Text != again[i].Text {
				t.Fatalf("%q minified to %q: token %d %s became %s", source, minified, i, tokens[i].Cursor, again[i].Cursor)
			}
		}
	})
}

func TestLexer_SeparatorEdgeCases(t *testing.T) {
	tests := []struct {
		source   string
		expected string
	}{
		{source: `\<!-- >`, expected: `\<! -- >`},
		{source: "<! -->", expected: "<! -->"},
		{source: "<! --x", expected: "<! --x"},
		{source: "-- >", expected: "-- >"},
		{source: "a\\\n", expected: "a\\\n"},
		{source: "\\\n b", expected: "\\\nb"},
		{source: "'s\n a", expected: "'s\na"},
		{source: "'s\n", expected: "'s\n"},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			tokens := significant(tt.source)
			minified := minify(tokens)
			assert.Equal(t, tt.expected, minified)
			again := significant(minified)
			require.Len(t, again, len(tokens))
			for i := range tokens {
				assert.Equal(t, tokens[i].Token(), again[i].Token())
			}
		})
	}
}
