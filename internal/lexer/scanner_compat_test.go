package lexer

import (
	"testing"

	"github.com/gorilla/css/scanner"
	"github.com/stretchr/testify/require"
)

// gorillaTexts tokenizes with github.com/gorilla/css, a CSS 2.1 scanner, as
// an independent reference for token boundaries.
func gorillaTexts(t *testing.T, source string) []string {
	t.Helper()
	var out []string
	s := scanner.New(source)
	for {
		tok := s.Next()
		switch tok.Type {
		case scanner.TokenEOF:
			return out
		case scanner.TokenError:
			t.Fatalf("reference scanner failed on %q at %d:%d", source, tok.Line, tok.Column)
		}
		out = append(out, tok.Value)
	}
}

// Inputs avoid constructs where CSS 2.1 and CSS Syntax 3 tokenize
// differently: match operators such as `~=`, strings and unicode ranges.
func TestLexer_BoundariesMatchReferenceScanner(t *testing.T) {
	inputs := []string{
		"body { color: red; }",
		"a:hover{margin:0 auto}",
		"@media screen{.x{width:50%}}",
		"/* c */ #id{}",
		"a{b:url(foo.png)}",
		"a{width:calc(1px + 2em)}",
		"h1,\n  h2 > p{line-height:1.5}",
		"<!-- a{} -->",
	}
	for _, source := range inputs {
		t.Run(source, func(t *testing.T) {
			var got []string
			for _, c := range Tokenize(nil, source, 0) {
				got = append(got, c.StrSlice(source))
			}
			require.Equal(t, gorillaTexts(t, source), got)
		})
	}
}
