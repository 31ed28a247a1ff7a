package syntax

import (
	"github.com/zjrosen/csskit/internal/arena"
	"github.com/zjrosen/csskit/internal/lexer"
	"github.com/zjrosen/csskit/internal/log"
	"github.com/zjrosen/csskit/internal/parser"
)

// Rule is a top-level style sheet entry.
type Rule interface {
	parser.Node
	isRule()
}

// Block is a `{}` body of declarations and nested rules, kept in source
// order.
type Block struct {
	Open  LeftCurly
	Items []BlockItem
	Close *RightCurly
}

// Peek reports whether c is `{`.
func (Block) Peek(_ *parser.Parser, c lexer.Cursor) bool {
	return c.Is(lexer.KindLeftCurly)
}

// Parse implements parser.Parsable. Items that fail to parse are recorded as
// diagnostics and kept as bad declarations; only a missing `{` fails.
func (b *Block) Parse(p *parser.Parser) error {
	if err := b.Open.Parse(p); err != nil {
		return err
	}
	oldState := p.SetState(p.State() | parser.StateNested)
	oldStop := p.SetStop(lexer.KindSetNone)
	defer func() {
		p.SetState(oldState)
		p.SetStop(oldStop)
	}()
	for {
		c := p.PeekNext()
		if c.Is(lexer.KindEof) || c.Is(lexer.KindRightCurly) {
			break
		}
		if c.Is(lexer.KindSemicolon) {
			b.Items = arena.Append[BlockItem](p.Arena(), b.Items, parseRaw(p))
			continue
		}
		b.Items = arena.Append(p.Arena(), b.Items, parseBlockItem(p, c))
	}
	if !p.PeekNext().Is(lexer.KindRightCurly) {
		p.Error(parser.NewDiagnostic(parser.UnclosedBlock, b.Open.Cursor).WithWant("}"))
		return nil
	}
	b.Close = arena.Alloc[RightCurly](p.Arena())
	b.Close.Cursor = p.Next()
	return nil
}

// parseBlockItem reads one declaration or nested rule starting at c. Input
// that looks like a declaration but fails is retried as a rule. On failure
// the input is reread as a bad declaration.
func parseBlockItem(p *parser.Parser, c lexer.Cursor) BlockItem {
	cp := p.Checkpoint()
	var (
		item BlockItem
		err  error
	)
	switch {
	case c.Is(lexer.KindAtKeyword):
		item, err = parser.Parse[AtRule](p)
	case parser.Peek[Declaration](p):
		decl, declErr := parser.TryParse[Declaration](p)
		if declErr == nil {
			return decl
		}
		if item, err = parser.Parse[QualifiedRule](p); err != nil {
			err = declErr
		}
	default:
		item, err = parser.Parse[QualifiedRule](p)
	}
	if err == nil {
		return item
	}
	d := parser.AsDiagnostic(err, c)
	p.Rewind(cp)
	p.Error(d)
	if log.Enabled(log.LevelDebug) {
		log.Debug(log.CatParser, "recovering block item", "offset", int(c.Offset), "kind", d.Kind.String())
	}
	bad, _ := parser.Parse[BadDeclaration](p)
	return bad
}

// Declarations returns the block's declarations in order.
func (b *Block) Declarations() []*Declaration {
	var out []*Declaration
	for _, item := range b.Items {
		if d, ok := item.(*Declaration); ok {
			out = append(out, d)
		}
	}
	return out
}

// Rules returns the block's nested rules in order.
func (b *Block) Rules() []Rule {
	var out []Rule
	for _, item := range b.Items {
		switch r := item.(type) {
		case *QualifiedRule:
			out = append(out, r)
		case *AtRule:
			out = append(out, r)
		}
	}
	return out
}

// ToCursors writes the block.
func (b *Block) ToCursors(s parser.CursorSink) {
	b.Open.ToCursors(s)
	for _, item := range b.Items {
		item.ToCursors(s)
	}
	if b.Close != nil {
		b.Close.ToCursors(s)
	}
}

// Span covers `{` to `}`, or to the last item when unclosed.
func (b *Block) Span() lexer.Span {
	span := b.Open.Span()
	if n := len(b.Items); n > 0 {
		span = span.Join(b.Items[n-1].Span())
	}
	if b.Close != nil {
		span = span.Join(b.Close.Span())
	}
	return span
}

// QualifiedRule is a prelude, usually a selector list, followed by a block.
type QualifiedRule struct {
	Prelude ComponentValues
	Block   Block
}

// Peek reports whether a qualified rule could start at c.
func (QualifiedRule) Peek(_ *parser.Parser, c lexer.Cursor) bool {
	return PeekComponentValue(c)
}

// Parse implements parser.Parsable.
func (r *QualifiedRule) Parse(p *parser.Parser) error {
	c := p.PeekNext()
	switch {
	case c.Is(lexer.KindEof):
		return parser.NewDiagnostic(parser.UnexpectedEnd, c)
	case c.Is(lexer.KindRightCurly) && p.Is(parser.StateNested):
		return parser.NewDiagnostic(parser.UnexpectedCloseCurly, c)
	case c.Token.IsDashedIdent() && p.PeekN(2).Is(lexer.KindColon):
		return parser.NewDiagnostic(parser.BadDeclaration, c)
	}
	stop := lexer.NewKindSet(lexer.KindLeftCurly)
	if p.Is(parser.StateNested) {
		stop = stop.With(lexer.KindSemicolon)
	}
	old := p.SetStop(stop)
	err := r.Prelude.Parse(p)
	p.SetStop(old)
	if err != nil {
		return err
	}
	if c := p.PeekNext(); !c.Is(lexer.KindLeftCurly) {
		if c.Is(lexer.KindEof) {
			return parser.NewDiagnostic(parser.UnexpectedEnd, c)
		}
		return parser.Expected(lexer.KindLeftCurly, c)
	}
	return r.Block.Parse(p)
}

// ToCursors writes the rule.
func (r *QualifiedRule) ToCursors(s parser.CursorSink) {
	r.Prelude.ToCursors(s)
	r.Block.ToCursors(s)
}

// Span covers the prelude and block.
func (r *QualifiedRule) Span() lexer.Span {
	return r.Prelude.Span().Join(r.Block.Span())
}

func (*QualifiedRule) isRule()      {}
func (*QualifiedRule) isBlockItem() {}

// AtRule is `@name prelude` ended by a block or a `;`.
type AtRule struct {
	Name      AtKeyword
	Prelude   ComponentValues
	Block     *Block
	Semicolon *Semicolon
}

// Peek reports whether c is an at-keyword.
func (AtRule) Peek(_ *parser.Parser, c lexer.Cursor) bool {
	return c.Is(lexer.KindAtKeyword)
}

// Parse implements parser.Parsable. An at-rule may end at the end of input
// without a block or `;`.
func (r *AtRule) Parse(p *parser.Parser) error {
	if err := r.Name.Parse(p); err != nil {
		return err
	}
	stop := lexer.KindSetLeftCurlyOrSemi
	if p.Is(parser.StateNested) {
		stop = stop.With(lexer.KindRightCurly)
	}
	old := p.SetStop(stop)
	err := r.Prelude.Parse(p)
	p.SetStop(old)
	if err != nil {
		return err
	}
	c := p.PeekNext()
	switch {
	case c.Is(lexer.KindLeftCurly):
		b, err := parser.Parse[Block](p)
		if err != nil {
			return err
		}
		r.Block = b
	case c.Is(lexer.KindSemicolon):
		r.Semicolon = arena.Alloc[Semicolon](p.Arena())
		r.Semicolon.Cursor = p.Next()
	case c.Is(lexer.KindEof):
	case c.Is(lexer.KindRightCurly) && p.Is(parser.StateNested):
	default:
		return parser.NewDiagnostic(parser.Unexpected, c)
	}
	return nil
}

// NameText returns the rule name without `@`.
func (r *AtRule) NameText(p *parser.Parser) string {
	return p.SourceCursor(r.Name.Cursor).Value(p.Arena())
}

// ToCursors writes the rule.
func (r *AtRule) ToCursors(s parser.CursorSink) {
	r.Name.ToCursors(s)
	r.Prelude.ToCursors(s)
	if r.Block != nil {
		r.Block.ToCursors(s)
	}
	if r.Semicolon != nil {
		r.Semicolon.ToCursors(s)
	}
}

// Span covers the name to the block or `;`.
func (r *AtRule) Span() lexer.Span {
	span := r.Name.Span().Join(r.Prelude.Span())
	if r.Block != nil {
		span = span.Join(r.Block.Span())
	}
	if r.Semicolon != nil {
		span = span.Join(r.Semicolon.Span())
	}
	return span
}

func (*AtRule) isRule()      {}
func (*AtRule) isBlockItem() {}
