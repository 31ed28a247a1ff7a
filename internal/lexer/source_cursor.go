package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/zjrosen/csskit/internal/arena"
)

// SourceCursor is a cursor together with the exact source text it covers.
type SourceCursor struct {
	Cursor Cursor
	Text   string
}

// NewSourceCursor slices the text for c out of source.
func NewSourceCursor(c Cursor, source string) SourceCursor {
	return SourceCursor{Cursor: c, Text: c.StrSlice(source)}
}

// Token returns the cursor's token.
func (s SourceCursor) Token() Token { return s.Cursor.Token }

// Span returns the cursor's byte range.
func (s SourceCursor) Span() Span { return s.Cursor.Span() }

// String returns the raw source text.
func (s SourceCursor) String() string { return s.Text }

// inner strips the token's leading and trailing markers.
func (s SourceCursor) inner() string {
	t := s.Cursor.Token
	start := int(t.LeadingLen())
	end := len(s.Text) - int(t.TrailingLen())
	if start > end || start > len(s.Text) {
		return ""
	}
	return s.Text[start:end]
}

// Value returns the semantic value of the token: markers (`@`, `#`, quotes,
// `(`, `url(`, comment delimiters, the numeric part of a dimension) are
// stripped and escapes are decoded. Text without escapes is returned as a
// sub-slice of the source; decoded text is allocated in a.
func (s SourceCursor) Value(a *arena.Arena) string {
	text := s.inner()
	if !s.Cursor.Token.ContainsEscape() {
		return text
	}
	return decodeText(a, text, s.Cursor.Token.kind == KindString)
}

// LowerValue is Value folded to ASCII lower case.
func (s SourceCursor) LowerValue(a *arena.Arena) string {
	v := s.Value(a)
	for i := 0; i < len(v); i++ {
		if c := v[i]; c >= 'A' && c <= 'Z' {
			buf := a.Buffer(len(v))
			for j := 0; j < len(v); j++ {
				c := v[j]
				if c >= 'A' && c <= 'Z' {
					c += 'a' - 'A'
				}
				buf = append(buf, c)
			}
			return a.Freeze(buf)
		}
	}
	return v
}

// EqualFold reports whether the decoded value equals other under ASCII case
// folding, without allocating.
func (s SourceCursor) EqualFold(other string) bool {
	text := s.inner()
	if !s.Cursor.Token.ContainsEscape() {
		return asciiEqualFold(text, other)
	}
	isString := s.Cursor.Token.kind == KindString
	for len(text) > 0 {
		r, n := nextDecoded(text, isString)
		text = text[n:]
		if r < 0 {
			continue
		}
		o, m := utf8.DecodeRuneInString(other)
		if m == 0 || foldASCII(o) != foldASCII(r) {
			return false
		}
		other = other[m:]
	}
	return other == ""
}

func foldASCII(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + 'a' - 'A'
	}
	return r
}

func asciiEqualFold(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if foldASCII(rune(a[i])) != foldASCII(rune(b[i])) {
			return false
		}
	}
	return true
}

// nextDecoded decodes one code point from text. It returns -1 for a string
// line continuation, which contributes nothing.
func nextDecoded(text string, isString bool) (rune, int) {
	c, w := decodeRune(text)
	switch {
	case c == 0 && w == 1:
		return replacement, 1
	case c != '\\':
		return c, w
	}
	rest := text[1:]
	if isString {
		if rest == "" {
			return -1, 1
		}
		if isNewline(rune(rest[0])) {
			if strings.HasPrefix(rest, "\r\n") {
				return -1, 3
			}
			return -1, 2
		}
	}
	r, n := DecodeEscape(rest)
	return r, 1 + n
}

func decodeText(a *arena.Arena, text string, isString bool) string {
	// A NUL byte expands to three bytes; every other escape shrinks.
	buf := a.Buffer(3 * len(text))
	for len(text) > 0 {
		r, n := nextDecoded(text, isString)
		if r >= 0 {
			buf = utf8.AppendRune(buf, r)
		}
		text = text[n:]
	}
	return a.Freeze(buf)
}
