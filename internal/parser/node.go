package parser

import (
	"errors"

	"github.com/zjrosen/csskit/internal/arena"
	"github.com/zjrosen/csskit/internal/lexer"
)

// Node is anything that can be written back out as cursors.
type Node interface {
	ToCursors(s CursorSink)
	Span() lexer.Span
}

// Parsable is the contract grammar nodes implement on their pointer type.
// Peek is called on a zero value and must not consume input.
type Parsable[T any] interface {
	*T
	Node
	Peek(p *Parser, c lexer.Cursor) bool
	Parse(p *Parser) error
}

// Parse allocates a T in the parser's arena and parses into it. On failure
// the input consumed so far is not restored; use TryParse for that.
func Parse[T any, PT Parsable[T]](p *Parser) (*T, error) {
	out := arena.Alloc[T](p.arena)
	if err := PT(out).Parse(p); err != nil {
		return nil, err
	}
	return out, nil
}

// Peek reports whether a T could start at the next significant cursor.
func Peek[T any, PT Parsable[T]](p *Parser) bool {
	var zero T
	return PT(&zero).Peek(p, p.PeekNext())
}

// ParseIfPeek parses a T when Peek succeeds, otherwise returns nil without
// consuming anything.
func ParseIfPeek[T any, PT Parsable[T]](p *Parser) (*T, error) {
	if !Peek[T, PT](p) {
		return nil, nil
	}
	return Parse[T, PT](p)
}

// TryParse parses a T, rewinding the parser when parsing fails.
func TryParse[T any, PT Parsable[T]](p *Parser) (*T, error) {
	cp := p.Checkpoint()
	out, err := Parse[T, PT](p)
	if err != nil {
		p.Rewind(cp)
		return nil, err
	}
	return out, nil
}

// AsDiagnostic returns the diagnostic err wraps, or an Unexpected
// diagnostic at c when it wraps none.
func AsDiagnostic(err error, c lexer.Cursor) *Diagnostic {
	var d *Diagnostic
	if errors.As(err, &d) {
		return d
	}
	return NewDiagnostic(Unexpected, c)
}

// ParseEntirely parses a T that must cover the whole source. A parse error
// and any content left over afterwards are recorded as diagnostics; the
// trailing trivia is kept so Result.WithTrivia reproduces the full input.
func ParseEntirely[T any, PT Parsable[T]](p *Parser) Result[T] {
	out, err := Parse[T, PT](p)
	if err != nil {
		p.Error(AsDiagnostic(err, p.PeekNext()))
	}
	if !p.AtEnd() {
		first := p.PeekNext()
		last := first
		for {
			c := p.raw(0)
			if c.Is(lexer.KindEof) {
				break
			}
			if !p.skip.Contains(c.Kind()) {
				last = c
			}
			p.trivia = arena.Append(p.arena, p.trivia, p.pop())
		}
		p.Error(NewDiagnostic(ExpectedEnd, first).WithEnd(last))
	}
	p.Next()

	r := Result[T]{
		Output: out,
		Source: p.source,
		Errors: p.errors,
		Trivia: make([]Trivia, len(p.groups)),
	}
	for i, g := range p.groups {
		r.Trivia[i] = Trivia{Before: p.trivia[g.start:g.end], Cursor: g.cursor}
	}
	if out != nil {
		r.node = PT(out)
	}
	return r
}

// Trivia lists the skipped cursors that came before Cursor.
type Trivia struct {
	Before []lexer.Cursor
	Cursor lexer.Cursor
}

// Result is the outcome of ParseEntirely.
type Result[T any] struct {
	// Output is nil when the top-level parse failed.
	Output *T
	Source string
	Errors []Diagnostic
	Trivia []Trivia

	withTrivia bool
	node       Node
}

// WithTrivia makes ToCursors replay trivia around the output's cursors.
func (r Result[T]) WithTrivia() Result[T] {
	r.withTrivia = true
	return r
}

// OK reports whether parsing produced output without diagnostics.
func (r Result[T]) OK() bool {
	return r.Output != nil && len(r.Errors) == 0
}

// Err joins all diagnostics into a single error, or returns nil.
func (r Result[T]) Err() error {
	if len(r.Errors) == 0 {
		return nil
	}
	errs := make([]error, len(r.Errors))
	for i := range r.Errors {
		errs[i] = &r.Errors[i]
	}
	return errors.Join(errs...)
}

// ToCursors writes the output to s. Nothing is written when the parse
// failed.
func (r Result[T]) ToCursors(s CursorSink) {
	if r.node == nil {
		return
	}
	if !r.withTrivia {
		r.node.ToCursors(s)
		return
	}
	is := NewInterleaveSink(s, r.Trivia)
	r.node.ToCursors(is)
	is.Flush()
}

// Span returns the span of the output.
func (r Result[T]) Span() lexer.Span {
	if r.node == nil {
		return lexer.DummySpan
	}
	return r.node.Span()
}
