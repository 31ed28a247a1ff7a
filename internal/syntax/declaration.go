package syntax

import (
	"github.com/zjrosen/csskit/internal/arena"
	"github.com/zjrosen/csskit/internal/lexer"
	"github.com/zjrosen/csskit/internal/parser"
)

// BangImportant is the `!important` annotation.
type BangImportant struct {
	Bang      Delim
	Important Ident
}

// peekImportant reports whether `!important` comes next.
func peekImportant(p *parser.Parser) bool {
	c := p.PeekNext()
	if !c.Is(lexer.KindDelim) || !c.Token.IsChar('!') {
		return false
	}
	next := p.PeekN(2)
	return next.Is(lexer.KindIdent) && p.SourceCursor(next).EqualFold("important")
}

// Peek reports whether c is a `!` delimiter.
func (BangImportant) Peek(_ *parser.Parser, c lexer.Cursor) bool {
	return c.Is(lexer.KindDelim) && c.Token.IsChar('!')
}

// Parse implements parser.Parsable.
func (b *BangImportant) Parse(p *parser.Parser) error {
	c := p.PeekNext()
	if !b.Peek(p, c) {
		return parser.NewDiagnostic(parser.ExpectedDelim, c).WithWant("!")
	}
	b.Bang.Cursor = p.Next()
	c = p.PeekNext()
	if !c.Is(lexer.KindIdent) {
		return parser.Expected(lexer.KindIdent, c)
	}
	if !p.SourceCursor(c).EqualFold("important") {
		return parser.NewDiagnostic(parser.UnexpectedIdent, c)
	}
	b.Important.Cursor = p.Next()
	return nil
}

// ToCursors writes both tokens.
func (b *BangImportant) ToCursors(s parser.CursorSink) {
	b.Bang.ToCursors(s)
	b.Important.ToCursors(s)
}

// Span covers `!` to `important`.
func (b *BangImportant) Span() lexer.Span {
	return b.Bang.Span().Join(b.Important.Span())
}

// BlockItem is anything a `{}` block body holds.
type BlockItem interface {
	parser.Node
	isBlockItem()
}

// Declaration is `name: value [!important] [;]`.
type Declaration struct {
	Name      Ident
	Colon     Colon
	Value     ComponentValues
	Important *BangImportant
	Semicolon *Semicolon
}

// Peek reports whether a declaration starts at c. A nested rule such as
// `a:hover {}` also starts with an ident and a colon, so for ordinary names
// a `{` shortly after the colon means a rule instead.
func (Declaration) Peek(p *parser.Parser, c lexer.Cursor) bool {
	if !c.Is(lexer.KindIdent) || !p.PeekN(2).Is(lexer.KindColon) {
		return false
	}
	if c.Token.IsDashedIdent() {
		return true
	}
	if p.PeekN(3).Is(lexer.KindColon) {
		return false
	}
	return !p.PeekN(4).Is(lexer.KindLeftCurly) && !p.PeekN(5).Is(lexer.KindLeftCurly)
}

// Parse implements parser.Parsable. A value holding a `{}` block is only
// accepted for custom properties; otherwise the declaration fails so the
// caller can read the input as a rule.
func (d *Declaration) Parse(p *parser.Parser) error {
	if err := d.Name.Parse(p); err != nil {
		return err
	}
	if err := d.Colon.Parse(p); err != nil {
		return err
	}
	old := p.SetStop(lexer.KindSetRightCurlyOrSemi)
	err := d.Value.parse(p, true)
	p.SetStop(old)
	if err != nil {
		return err
	}
	if !d.Name.Cursor.Token.IsDashedIdent() {
		for _, v := range d.Value.Values {
			if b, ok := v.(*SimpleBlock); ok && b.Open.Is(lexer.KindLeftCurly) {
				return parser.NewDiagnostic(parser.BadDeclaration, d.Name.Cursor).WithEnd(b.Open)
			}
		}
	}
	if peekImportant(p) {
		imp, err := parser.Parse[BangImportant](p)
		if err != nil {
			return err
		}
		d.Important = imp
	}
	c := p.PeekNext()
	switch {
	case c.Is(lexer.KindSemicolon):
		d.Semicolon = arena.Alloc[Semicolon](p.Arena())
		d.Semicolon.Cursor = p.Next()
	case c.Is(lexer.KindEof), c.Is(lexer.KindRightCurly):
	default:
		return parser.NewDiagnostic(parser.Unexpected, c)
	}
	return nil
}

// IsCustomProperty reports whether the name starts with `--`.
func (d *Declaration) IsCustomProperty() bool {
	return d.Name.Cursor.Token.IsDashedIdent()
}

// ToCursors writes the declaration.
func (d *Declaration) ToCursors(s parser.CursorSink) {
	d.Name.ToCursors(s)
	d.Colon.ToCursors(s)
	d.Value.ToCursors(s)
	if d.Important != nil {
		d.Important.ToCursors(s)
	}
	if d.Semicolon != nil {
		d.Semicolon.ToCursors(s)
	}
}

// Span covers the name to the last written token.
func (d *Declaration) Span() lexer.Span {
	span := d.Name.Span().Join(d.Colon.Span()).Join(d.Value.Span())
	if d.Important != nil {
		span = span.Join(d.Important.Span())
	}
	if d.Semicolon != nil {
		span = span.Join(d.Semicolon.Span())
	}
	return span
}

func (*Declaration) isBlockItem() {}

// BadDeclaration holds the input skipped after a declaration failed to
// parse: component values up to and including a `;`, or up to the `}`
// closing the enclosing block.
type BadDeclaration struct {
	Values    []ComponentValue
	Semicolon *Semicolon
}

// Peek always succeeds; a bad declaration is the recovery of last resort.
func (BadDeclaration) Peek(*parser.Parser, lexer.Cursor) bool { return true }

// Parse implements parser.Parsable. It never fails.
func (b *BadDeclaration) Parse(p *parser.Parser) error {
	old := p.SetStop(lexer.KindSetNone)
	defer p.SetStop(old)
	for {
		c := p.PeekNext()
		switch {
		case c.Is(lexer.KindEof):
			return nil
		case c.Is(lexer.KindSemicolon):
			b.Semicolon = arena.Alloc[Semicolon](p.Arena())
			b.Semicolon.Cursor = p.Next()
			return nil
		case c.Is(lexer.KindRightCurly) && p.Is(parser.StateNested):
			return nil
		}
		var v ComponentValue
		if PeekComponentValue(c) {
			var err error
			if v, err = ParseComponentValue(p); err != nil {
				return err
			}
		} else {
			v = parseRaw(p)
		}
		b.Values = arena.Append(p.Arena(), b.Values, v)
	}
}

// ToCursors writes the skipped input.
func (b *BadDeclaration) ToCursors(s parser.CursorSink) {
	for _, v := range b.Values {
		v.ToCursors(s)
	}
	if b.Semicolon != nil {
		b.Semicolon.ToCursors(s)
	}
}

// Span covers the skipped input.
func (b *BadDeclaration) Span() lexer.Span {
	span := lexer.DummySpan
	if len(b.Values) > 0 {
		span = b.Values[0].Span().Join(b.Values[len(b.Values)-1].Span())
	}
	if b.Semicolon != nil {
		span = span.Join(b.Semicolon.Span())
	}
	return span
}

func (*BadDeclaration) isBlockItem() {}
