package syntax

import (
	"github.com/zjrosen/csskit/internal/arena"
	"github.com/zjrosen/csskit/internal/lexer"
	"github.com/zjrosen/csskit/internal/log"
	"github.com/zjrosen/csskit/internal/parser"
)

// StyleSheet is a whole CSS file. CDO and CDC markers are kept as Raw.
type StyleSheet struct {
	Rules []Rule
}

// Peek always succeeds; any input is a style sheet.
func (StyleSheet) Peek(*parser.Parser, lexer.Cursor) bool { return true }

// Parse implements parser.Parsable. It never fails: rules that do not parse
// are recorded as diagnostics and kept as bad rules.
func (s *StyleSheet) Parse(p *parser.Parser) error {
	for {
		c := p.PeekNext()
		if c.Is(lexer.KindEof) {
			return nil
		}
		if c.Is(lexer.KindCdcOrCdo) {
			s.Rules = arena.Append[Rule](p.Arena(), s.Rules, parseRaw(p))
			continue
		}
		s.Rules = arena.Append(p.Arena(), s.Rules, parseRule(p, c))
	}
}

func parseRule(p *parser.Parser, c lexer.Cursor) Rule {
	cp := p.Checkpoint()
	var (
		rule Rule
		err  error
	)
	if c.Is(lexer.KindAtKeyword) {
		rule, err = parser.Parse[AtRule](p)
	} else {
		rule, err = parser.Parse[QualifiedRule](p)
	}
	if err == nil {
		return rule
	}
	d := parser.AsDiagnostic(err, c)
	p.Rewind(cp)
	p.Error(d)
	if log.Enabled(log.LevelDebug) {
		log.Debug(log.CatParser, "recovering rule", "offset", int(c.Offset), "kind", d.Kind.String())
	}
	bad, _ := parser.Parse[BadRule](p)
	return bad
}

// Declarations returns every declaration in the sheet, nested ones included,
// in source order.
func (s *StyleSheet) Declarations() []*Declaration {
	var out []*Declaration
	var walk func(b *Block)
	walk = func(b *Block) {
		for _, item := range b.Items {
			switch n := item.(type) {
			case *Declaration:
				out = append(out, n)
			case *QualifiedRule:
				walk(&n.Block)
			case *AtRule:
				if n.Block != nil {
					walk(n.Block)
				}
			}
		}
	}
	for _, r := range s.Rules {
		switch n := r.(type) {
		case *QualifiedRule:
			walk(&n.Block)
		case *AtRule:
			if n.Block != nil {
				walk(n.Block)
			}
		}
	}
	return out
}

// ToCursors writes every rule.
func (s *StyleSheet) ToCursors(sink parser.CursorSink) {
	for _, r := range s.Rules {
		r.ToCursors(sink)
	}
}

// Span covers the first to the last rule.
func (s *StyleSheet) Span() lexer.Span {
	if len(s.Rules) == 0 {
		return lexer.DummySpan
	}
	return s.Rules[0].Span().Join(s.Rules[len(s.Rules)-1].Span())
}

// BadRule holds top-level input skipped after a rule failed to parse:
// component values up to and including the next `{}` block, or to the end.
type BadRule struct {
	Values []ComponentValue
}

// Peek always succeeds.
func (BadRule) Peek(*parser.Parser, lexer.Cursor) bool { return true }

// Parse implements parser.Parsable. It consumes at least one cursor unless
// the input is exhausted.
func (b *BadRule) Parse(p *parser.Parser) error {
	old := p.SetStop(lexer.KindSetNone)
	defer p.SetStop(old)
	for {
		c := p.PeekNext()
		if c.Is(lexer.KindEof) {
			return nil
		}
		if !PeekComponentValue(c) {
			b.Values = arena.Append[ComponentValue](p.Arena(), b.Values, parseRaw(p))
			continue
		}
		v, err := ParseComponentValue(p)
		if err != nil {
			return err
		}
		b.Values = arena.Append(p.Arena(), b.Values, v)
		if sb, ok := v.(*SimpleBlock); ok && sb.Open.Is(lexer.KindLeftCurly) {
			return nil
		}
	}
}

// ToCursors writes the skipped input.
func (b *BadRule) ToCursors(s parser.CursorSink) {
	for _, v := range b.Values {
		v.ToCursors(s)
	}
}

// Span covers the skipped input.
func (b *BadRule) Span() lexer.Span {
	if len(b.Values) == 0 {
		return lexer.DummySpan
	}
	return b.Values[0].Span().Join(b.Values[len(b.Values)-1].Span())
}

func (*BadRule) isRule() {}
