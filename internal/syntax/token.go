// Package syntax implements the generic CSS syntax nodes: single tokens,
// component values, simple and function blocks, declarations, qualified
// and at-rules, and whole style sheets with error recovery.
//
// Every node writes back exactly the cursors it consumed, in source order,
// so a parse with trivia re-serializes to the original text.
package syntax

import (
	"github.com/zjrosen/csskit/internal/arena"
	"github.com/zjrosen/csskit/internal/lexer"
	"github.com/zjrosen/csskit/internal/parser"
)

// tokenKind selects the kind a Token accepts.
type tokenKind interface {
	kind() lexer.Kind
}

type (
	whitespaceKind  struct{}
	commentKind     struct{}
	cdcOrCdoKind    struct{}
	numberKind      struct{}
	dimensionKind   struct{}
	identKind       struct{}
	functionKind    struct{}
	atKeywordKind   struct{}
	hashKind        struct{}
	stringKind      struct{}
	urlKind         struct{}
	delimKind       struct{}
	colonKind       struct{}
	semicolonKind   struct{}
	commaKind       struct{}
	leftSquareKind  struct{}
	rightSquareKind struct{}
	leftParenKind   struct{}
	rightParenKind  struct{}
	leftCurlyKind   struct{}
	rightCurlyKind  struct{}
)

func (whitespaceKind) kind() lexer.Kind  { return lexer.KindWhitespace }
func (commentKind) kind() lexer.Kind     { return lexer.KindComment }
func (cdcOrCdoKind) kind() lexer.Kind    { return lexer.KindCdcOrCdo }
func (numberKind) kind() lexer.Kind      { return lexer.KindNumber }
func (dimensionKind) kind() lexer.Kind   { return lexer.KindDimension }
func (identKind) kind() lexer.Kind       { return lexer.KindIdent }
func (functionKind) kind() lexer.Kind    { return lexer.KindFunction }
func (atKeywordKind) kind() lexer.Kind   { return lexer.KindAtKeyword }
func (hashKind) kind() lexer.Kind        { return lexer.KindHash }
func (stringKind) kind() lexer.Kind      { return lexer.KindString }
func (urlKind) kind() lexer.Kind         { return lexer.KindUrl }
func (delimKind) kind() lexer.Kind       { return lexer.KindDelim }
func (colonKind) kind() lexer.Kind       { return lexer.KindColon }
func (semicolonKind) kind() lexer.Kind   { return lexer.KindSemicolon }
func (commaKind) kind() lexer.Kind       { return lexer.KindComma }
func (leftSquareKind) kind() lexer.Kind  { return lexer.KindLeftSquare }
func (rightSquareKind) kind() lexer.Kind { return lexer.KindRightSquare }
func (leftParenKind) kind() lexer.Kind   { return lexer.KindLeftParen }
func (rightParenKind) kind() lexer.Kind  { return lexer.KindRightParen }
func (leftCurlyKind) kind() lexer.Kind   { return lexer.KindLeftCurly }
func (rightCurlyKind) kind() lexer.Kind  { return lexer.KindRightCurly }

// Token is a node holding exactly one cursor of the kind K selects.
type Token[K tokenKind] struct {
	Cursor lexer.Cursor
}

// Single-token nodes.
type (
	Whitespace  = Token[whitespaceKind]
	Comment     = Token[commentKind]
	CdcOrCdo    = Token[cdcOrCdoKind]
	Number      = Token[numberKind]
	Dimension   = Token[dimensionKind]
	Ident       = Token[identKind]
	Function    = Token[functionKind]
	AtKeyword   = Token[atKeywordKind]
	Hash        = Token[hashKind]
	String      = Token[stringKind]
	URL         = Token[urlKind]
	Delim       = Token[delimKind]
	Colon       = Token[colonKind]
	Semicolon   = Token[semicolonKind]
	Comma       = Token[commaKind]
	LeftSquare  = Token[leftSquareKind]
	RightSquare = Token[rightSquareKind]
	LeftParen   = Token[leftParenKind]
	RightParen  = Token[rightParenKind]
	LeftCurly   = Token[leftCurlyKind]
	RightCurly  = Token[rightCurlyKind]
)

// Kind returns the kind the token accepts.
func (Token[K]) Kind() lexer.Kind {
	var k K
	return k.kind()
}

// Peek reports whether c has the token's kind.
func (t Token[K]) Peek(_ *parser.Parser, c lexer.Cursor) bool {
	return c.Is(t.Kind())
}

// Parse consumes the next cursor when it has the token's kind. Trivia kinds
// are read even when the skip set would hide them. Nothing is consumed on
// failure.
func (t *Token[K]) Parse(p *parser.Parser) error {
	k := t.Kind()
	if k.IsTrivia() {
		old := p.SetSkip(p.Skip().Without(k))
		defer p.SetSkip(old)
	}
	c := p.PeekNext()
	if !c.Is(k) {
		return parser.Expected(k, c)
	}
	t.Cursor = p.Next()
	return nil
}

// ToCursors writes the cursor.
func (t Token[K]) ToCursors(s parser.CursorSink) { s.Append(t.Cursor) }

// Span returns the cursor's span.
func (t Token[K]) Span() lexer.Span { return t.Cursor.Span() }

// Text returns the raw source text of the token.
func (t Token[K]) Text(p *parser.Parser) string {
	return t.Cursor.StrSlice(p.Source())
}

// Char returns the character of a delimiter-like token.
func (t Token[K]) Char() rune {
	r, _ := t.Cursor.Token.Char()
	return r
}

func (*Token[K]) isComponentValue() {}

// Raw holds a cursor kept verbatim: stray semicolons, CDO and CDC markers,
// and tokens no grammar accepts such as a stray `)`.
type Raw struct {
	Cursor lexer.Cursor
}

// ToCursors writes the cursor.
func (r *Raw) ToCursors(s parser.CursorSink) { s.Append(r.Cursor) }

// Span returns the cursor's span.
func (r *Raw) Span() lexer.Span { return r.Cursor.Span() }

func (*Raw) isComponentValue() {}
func (*Raw) isBlockItem()      {}
func (*Raw) isRule()           {}

// parseRaw consumes the next significant cursor whatever its kind.
func parseRaw(p *parser.Parser) *Raw {
	r := arena.Alloc[Raw](p.Arena())
	r.Cursor = p.Next()
	return r
}
