package highlight

import (
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/csskit/internal/atoms"
	"github.com/zjrosen/csskit/internal/lexer"
)

// ansiRegex matches ANSI escape sequences
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

func init() {
	// Force ANSI color output in tests (lipgloss disables colors when no TTY)
	lipgloss.SetColorProfile(termenv.ANSI256)
}

func TestHighlight(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		wantANSI bool
	}{
		{name: "rule", source: "body { color: red; }", wantANSI: true},
		{name: "at rule", source: "@media screen { a { b: c } }", wantANSI: true},
		{name: "function and numbers", source: "a{width:calc(1px + 50%)}", wantANSI: true},
		{name: "comment", source: "/* hi */", wantANSI: true},
		{name: "bad string", source: "a{content:\"oops\n}", wantANSI: true},
		{name: "whitespace only", source: "  \n\t", wantANSI: false},
		{name: "empty", source: "", wantANSI: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := Highlight(atoms.CSS, tt.source, 0)
			assert.Equal(t, tt.wantANSI, ansiRegex.MatchString(out))
			assert.Equal(t, tt.source, stripANSI(out))
		})
	}
}

func TestHighlight_PropertyNames(t *testing.T) {
	source := "a:hover{color:red}"
	out := Highlight(atoms.CSS, source, 0)

	property := PropertyStyle.Render("color")
	assert.Contains(t, out, property)
	// `a` sits outside a block, so it is not a property even though `:` follows.
	assert.False(t, strings.HasPrefix(out, PropertyStyle.Render("a")))
	assert.Equal(t, 1, strings.Count(out, property))
}

func TestHighlight_SingleLineComments(t *testing.T) {
	source := "a{} // note"
	out := Highlight(atoms.CSS, source, lexer.SingleLineComments)
	assert.Contains(t, out, CommentStyle.Render("// note"))
}

func TestHighlight_TokenStyles(t *testing.T) {
	tests := []struct {
		kind  lexer.Kind
		style lipgloss.Style
	}{
		{lexer.KindAtKeyword, AtKeywordStyle},
		{lexer.KindFunction, FunctionStyle},
		{lexer.KindUrl, StringStyle},
		{lexer.KindDimension, NumberStyle},
		{lexer.KindHash, HashStyle},
		{lexer.KindSemicolon, DelimStyle},
		{lexer.KindRightSquare, BracketStyle},
		{lexer.KindCdcOrCdo, CommentStyle},
		{lexer.KindBadUrl, BadStyle},
		{lexer.KindIdent, DefaultStyle},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.style.Render("x"), tokenStyle(tt.kind).Render("x"))
		})
	}
}

func TestHighlight_StripsBackToSource(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		source := rapid.StringOf(rapid.SampledFrom([]rune("ab-:;{}()@#\"/* \n1.%"))).Draw(t, "source")
		out := Highlight(atoms.CSS, source, 0)
		require.Equal(t, source, stripANSI(out))
	})
}
