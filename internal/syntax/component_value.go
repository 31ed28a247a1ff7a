package syntax

import (
	"github.com/zjrosen/csskit/internal/arena"
	"github.com/zjrosen/csskit/internal/lexer"
	"github.com/zjrosen/csskit/internal/parser"
)

// ComponentValue is a preserved token, a simple block or a function block.
type ComponentValue interface {
	parser.Node
	isComponentValue()
}

var componentValueKinds = lexer.NewKindSet(
	lexer.KindWhitespace,
	lexer.KindNumber,
	lexer.KindDimension,
	lexer.KindIdent,
	lexer.KindAtKeyword,
	lexer.KindHash,
	lexer.KindString,
	lexer.KindUrl,
	lexer.KindDelim,
	lexer.KindColon,
	lexer.KindSemicolon,
	lexer.KindComma,
	lexer.KindFunction,
	lexer.KindLeftCurly,
	lexer.KindLeftParen,
	lexer.KindLeftSquare,
)

// PeekComponentValue reports whether a component value can start at c.
func PeekComponentValue(c lexer.Cursor) bool {
	return componentValueKinds.Contains(c.Kind())
}

func parseToken[K tokenKind](p *parser.Parser) (ComponentValue, error) {
	t := arena.Alloc[Token[K]](p.Arena())
	if err := t.Parse(p); err != nil {
		return nil, err
	}
	return t, nil
}

// ParseComponentValue consumes one component value. Blocks are parsed with
// the parser in the nested state. A delimiter records whether whitespace
// followed it so compact output keeps the two apart.
func ParseComponentValue(p *parser.Parser) (ComponentValue, error) {
	c := p.PeekNextIncludingWhitespace()
	if !c.Is(lexer.KindWhitespace) {
		c = p.PeekNext()
	}
	switch c.Kind() {
	case lexer.KindWhitespace:
		return parseToken[whitespaceKind](p)
	case lexer.KindLeftCurly, lexer.KindLeftParen, lexer.KindLeftSquare:
		old := p.SetState(p.State() | parser.StateNested)
		b, err := parser.Parse[SimpleBlock](p)
		p.SetState(old)
		if err != nil {
			return nil, err
		}
		return b, nil
	case lexer.KindFunction:
		f, err := parser.Parse[FunctionBlock](p)
		if err != nil {
			return nil, err
		}
		return f, nil
	case lexer.KindNumber:
		return parseToken[numberKind](p)
	case lexer.KindDimension:
		return parseToken[dimensionKind](p)
	case lexer.KindIdent:
		return parseToken[identKind](p)
	case lexer.KindAtKeyword:
		return parseToken[atKeywordKind](p)
	case lexer.KindHash:
		return parseToken[hashKind](p)
	case lexer.KindString:
		return parseToken[stringKind](p)
	case lexer.KindUrl:
		return parseToken[urlKind](p)
	case lexer.KindDelim:
		d := arena.Alloc[Delim](p.Arena())
		if err := d.Parse(p); err != nil {
			return nil, err
		}
		rules := lexer.BanAfter
		if p.PeekNWithSkip(1, lexer.KindSetComments).Is(lexer.KindWhitespace) {
			rules = lexer.EnforceAfter
		}
		d.Cursor = d.Cursor.WithAssociatedWhitespace(rules)
		return d, nil
	case lexer.KindColon:
		return parseToken[colonKind](p)
	case lexer.KindSemicolon:
		return parseToken[semicolonKind](p)
	case lexer.KindComma:
		return parseToken[commaKind](p)
	}
	return nil, parser.NewDiagnostic(parser.Unexpected, c)
}

// ComponentValues is a list of component values, read until the end of
// input, a cursor in the stop set, or a cursor that cannot start a value.
type ComponentValues struct {
	Values []ComponentValue
}

// Peek reports whether a component value can start at c.
func (ComponentValues) Peek(_ *parser.Parser, c lexer.Cursor) bool {
	return PeekComponentValue(c)
}

// Parse implements parser.Parsable.
func (v *ComponentValues) Parse(p *parser.Parser) error {
	return v.parse(p, false)
}

// parse reads values, optionally stopping in front of `!important`.
// Leading whitespace and whitespace before a stop are left as trivia.
func (v *ComponentValues) parse(p *parser.Parser, stopAtImportant bool) error {
	p.ConsumeTrivia()
	lastWasWhitespace := false
	for {
		c := p.PeekNext()
		if c.Is(lexer.KindEof) || p.Stop().Contains(c.Kind()) || !PeekComponentValue(c) {
			break
		}
		if stopAtImportant && peekImportant(p) {
			break
		}
		value, err := ParseComponentValue(p)
		if err != nil {
			return err
		}
		if d, ok := value.(*Delim); ok && lastWasWhitespace {
			rules := d.Cursor.Token.AssociatedWhitespace() | lexer.EnforceBefore
			d.Cursor = d.Cursor.WithAssociatedWhitespace(rules)
		}
		_, lastWasWhitespace = value.(*Whitespace)
		v.Values = arena.Append(p.Arena(), v.Values, value)
	}
	return nil
}

// ToCursors writes every value.
func (v *ComponentValues) ToCursors(s parser.CursorSink) {
	for _, value := range v.Values {
		value.ToCursors(s)
	}
}

// Span covers the first to the last value.
func (v *ComponentValues) Span() lexer.Span {
	if len(v.Values) == 0 {
		return lexer.DummySpan
	}
	return v.Values[0].Span().Join(v.Values[len(v.Values)-1].Span())
}

// Len returns the number of values.
func (v *ComponentValues) Len() int { return len(v.Values) }

// SimpleBlock is a `{}`, `()` or `[]` block of component values. The close
// is nil when the input ended or another closer came first.
type SimpleBlock struct {
	Open   lexer.Cursor
	Values ComponentValues
	Close  *lexer.Cursor
}

// Peek reports whether c opens a simple block.
func (SimpleBlock) Peek(_ *parser.Parser, c lexer.Cursor) bool {
	return c.Is(lexer.KindLeftCurly) || c.Is(lexer.KindLeftParen) || c.Is(lexer.KindLeftSquare)
}

// Parse implements parser.Parsable. A missing close is recorded as an
// UnclosedBlock diagnostic and the partial block is kept.
func (b *SimpleBlock) Parse(p *parser.Parser) error {
	c := p.PeekNext()
	if !b.Peek(p, c) {
		return parser.NewDiagnostic(parser.Unexpected, c)
	}
	b.Open = p.Next()
	end := lexer.PairWiseOf(b.Open.Kind()).End()
	old := p.SetStop(lexer.NewKindSet(end))
	err := b.Values.Parse(p)
	p.SetStop(old)
	if err != nil {
		return err
	}
	b.Close = parseClose(p, b.Open, end)
	return nil
}

var closerText = map[lexer.Kind]string{
	lexer.KindRightParen:  ")",
	lexer.KindRightSquare: "]",
	lexer.KindRightCurly:  "}",
}

// parseClose consumes the closer of a pair, or records that it is missing.
func parseClose(p *parser.Parser, open lexer.Cursor, end lexer.Kind) *lexer.Cursor {
	if !p.PeekNext().Is(end) {
		p.Error(parser.NewDiagnostic(parser.UnclosedBlock, open).WithWant(closerText[end]))
		return nil
	}
	c := arena.Alloc[lexer.Cursor](p.Arena())
	*c = p.Next()
	return c
}

// ToCursors writes the block.
func (b *SimpleBlock) ToCursors(s parser.CursorSink) {
	s.Append(b.Open)
	b.Values.ToCursors(s)
	if b.Close != nil {
		s.Append(*b.Close)
	}
}

// Span covers the open to the close, or to the last value.
func (b *SimpleBlock) Span() lexer.Span {
	if b.Close != nil {
		return b.Open.Span().Join(b.Close.Span())
	}
	if len(b.Values.Values) > 0 {
		return b.Open.Span().Join(b.Values.Span())
	}
	return b.Open.Span()
}

func (*SimpleBlock) isComponentValue() {}

// FunctionBlock is a function token, its parameters and the closing paren.
type FunctionBlock struct {
	Name   Function
	Params ComponentValues
	Close  *lexer.Cursor
}

// Peek reports whether c is a function token.
func (FunctionBlock) Peek(_ *parser.Parser, c lexer.Cursor) bool {
	return c.Is(lexer.KindFunction)
}

// Parse implements parser.Parsable.
func (f *FunctionBlock) Parse(p *parser.Parser) error {
	if err := f.Name.Parse(p); err != nil {
		return err
	}
	old := p.SetStop(lexer.KindSetRightParen)
	err := f.Params.Parse(p)
	p.SetStop(old)
	if err != nil {
		return err
	}
	f.Close = parseClose(p, f.Name.Cursor, lexer.KindRightParen)
	return nil
}

// ToCursors writes the function.
func (f *FunctionBlock) ToCursors(s parser.CursorSink) {
	f.Name.ToCursors(s)
	f.Params.ToCursors(s)
	if f.Close != nil {
		s.Append(*f.Close)
	}
}

// Span covers the name to the close.
func (f *FunctionBlock) Span() lexer.Span {
	if f.Close != nil {
		return f.Name.Span().Join(f.Close.Span())
	}
	if len(f.Params.Values) > 0 {
		return f.Name.Span().Join(f.Params.Span())
	}
	return f.Name.Span()
}

func (*FunctionBlock) isComponentValue() {}
