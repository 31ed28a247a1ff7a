// Package highlight renders CSS source with ANSI colours per token kind.
package highlight

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/zjrosen/csskit/internal/lexer"
	"github.com/zjrosen/csskit/internal/styles"
)

func newStyle(c lipgloss.TerminalColor) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(c).TabWidth(lipgloss.NoTabConversion)
}

var (
	AtKeywordStyle = newStyle(styles.CSSAtKeywordColor).Bold(true)
	PropertyStyle  = newStyle(styles.CSSPropertyColor)
	FunctionStyle  = newStyle(styles.CSSFunctionColor)
	StringStyle    = newStyle(styles.CSSStringColor)
	NumberStyle    = newStyle(styles.CSSNumberColor)
	HashStyle      = newStyle(styles.CSSHashColor)
	DelimStyle     = newStyle(styles.CSSDelimColor)
	BracketStyle   = newStyle(styles.CSSBracketColor)
	CommentStyle   = newStyle(styles.CSSCommentColor).Italic(true)
	BadStyle       = newStyle(styles.CSSBadColor).Underline(true)
	DefaultStyle   = newStyle(styles.TextPrimaryColor)
)

// Highlight returns source with ANSI colour codes applied by token kind.
// Whitespace is copied as is, so stripping the escapes gives back source.
func Highlight(atoms lexer.AtomSet, source string, features lexer.Feature) string {
	if source == "" {
		return ""
	}
	cursors := lexer.Tokenize(atoms, source, features)

	var b strings.Builder
	b.Grow(len(source) * 2)
	depth := 0
	for i, c := range cursors {
		text := c.StrSlice(source)
		switch c.Kind() {
		case lexer.KindWhitespace:
			b.WriteString(text)
			continue
		case lexer.KindLeftCurly:
			depth++
		case lexer.KindRightCurly:
			depth = max(depth-1, 0)
		}
		// An ident followed by `:` in a block names a property.
		if c.Is(lexer.KindIdent) && depth > 0 && nextSignificant(cursors, i).Is(lexer.KindColon) {
			render(&b, PropertyStyle, text)
			continue
		}
		render(&b, tokenStyle(c.Kind()), text)
	}
	return b.String()
}

// render styles text one line at a time. Lip Gloss pads multi-line blocks
// to a common width, which would change the text.
func render(b *strings.Builder, style lipgloss.Style, text string) {
	for text != "" {
		i := strings.IndexAny(text, "\r\n\f")
		if i < 0 {
			b.WriteString(style.Render(text))
			return
		}
		if i > 0 {
			b.WriteString(style.Render(text[:i]))
		}
		b.WriteByte(text[i])
		text = text[i+1:]
	}
}

func nextSignificant(cursors []lexer.Cursor, i int) lexer.Cursor {
	for _, c := range cursors[i+1:] {
		if !c.Kind().IsTrivia() {
			return c
		}
	}
	return lexer.CursorEOF
}

// tokenStyle returns the style for a token kind.
func tokenStyle(k lexer.Kind) lipgloss.Style {
	switch k {
	case lexer.KindAtKeyword:
		return AtKeywordStyle
	case lexer.KindFunction:
		return FunctionStyle
	case lexer.KindString, lexer.KindUrl:
		return StringStyle
	case lexer.KindNumber, lexer.KindDimension:
		return NumberStyle
	case lexer.KindHash:
		return HashStyle
	case lexer.KindDelim, lexer.KindColon, lexer.KindSemicolon, lexer.KindComma:
		return DelimStyle
	case lexer.KindLeftParen, lexer.KindRightParen,
		lexer.KindLeftSquare, lexer.KindRightSquare,
		lexer.KindLeftCurly, lexer.KindRightCurly:
		return BracketStyle
	case lexer.KindComment, lexer.KindCdcOrCdo:
		return CommentStyle
	case lexer.KindBadString, lexer.KindBadUrl:
		return BadStyle
	default:
		return DefaultStyle
	}
}
