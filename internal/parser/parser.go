// Package parser implements the backtracking parser substrate: a lookahead
// ring over the lexer, checkpoint/rewind, scoped stop and skip sets, and an
// append-only diagnostics list. Grammar nodes implement Parse, Peek,
// ToCursors and Span and call back into the Parser.
//
// A Parser is single-threaded. Everything it allocates (diagnostics, trivia
// and the nodes built on it) lives in the arena passed to New.
package parser

import (
	"github.com/zjrosen/csskit/internal/arena"
	"github.com/zjrosen/csskit/internal/lexer"
	"github.com/zjrosen/csskit/internal/log"
)

const (
	// DefaultLookahead is the ring capacity used when Options.Lookahead is 0.
	DefaultLookahead = 12
	// MaxLookahead bounds Options.Lookahead.
	MaxLookahead = 32
)

// Options configures a Parser.
type Options struct {
	// Lookahead is the number of upcoming cursors kept in the ring. Peeks
	// further ahead still work but re-lex on every call.
	Lookahead int
	// Features enables optional tokenizer behaviour.
	Features lexer.Feature
}

// State holds grammar context flags.
type State uint8

const (
	// StateNested is set while parsing inside a block.
	StateNested State = 1 << iota
)

// Has reports whether all flags in o are set.
func (s State) Has(o State) bool { return s&o == o }

// Parser drives a lexer on demand for grammar nodes.
type Parser struct {
	source string
	lex    *lexer.Lexer
	arena  *arena.Arena

	// ring holds raw upcoming cursors, trivia included, starting at the
	// consumption point. The lexer sits at the end of the last one.
	ring  [MaxLookahead]lexer.Cursor
	head  int
	count int
	size  int

	errors  []Diagnostic
	trivia  []lexer.Cursor
	groups  []triviaGroup
	pending int

	skip  lexer.KindSet
	stop  lexer.KindSet
	state State
}

// triviaGroup associates trivia[start:end] with the significant cursor that
// follows it.
type triviaGroup struct {
	start, end int
	cursor     lexer.Cursor
}

// New creates a parser over source using the default options.
func New(a *arena.Arena, atoms lexer.AtomSet, source string) *Parser {
	return NewWithOptions(a, atoms, source, Options{})
}

// NewWithOptions creates a parser with explicit options.
func NewWithOptions(a *arena.Arena, atoms lexer.AtomSet, source string, opts Options) *Parser {
	size := opts.Lookahead
	if size <= 0 {
		size = DefaultLookahead
	}
	size = min(size, MaxLookahead)
	return &Parser{
		source: source,
		lex:    lexer.NewWithFeatures(atoms, source, opts.Features),
		arena:  a,
		size:   size,
		skip:   lexer.KindSetTrivia,
		stop:   lexer.KindSetNone,
	}
}

// Source returns the source text.
func (p *Parser) Source() string { return p.source }

// Arena returns the arena nodes should allocate from.
func (p *Parser) Arena() *arena.Arena { return p.arena }

// Atoms returns the lexer's atom set.
func (p *Parser) Atoms() lexer.AtomSet { return p.lex.Atoms() }

// Lookahead returns the ring capacity.
func (p *Parser) Lookahead() int { return p.size }

// Is reports whether the parser state includes s.
func (p *Parser) Is(s State) bool { return p.state.Has(s) }

// State returns the parser state.
func (p *Parser) State() State { return p.state }

// SetState replaces the parser state, returning the previous one.
func (p *Parser) SetState(s State) State {
	old := p.state
	p.state = s
	return old
}

// SetSkip replaces the skip set, returning the previous one. Kinds in the
// skip set are invisible to peeks and are recorded as trivia when consumed.
func (p *Parser) SetSkip(s lexer.KindSet) lexer.KindSet {
	old := p.skip
	p.skip = s
	return old
}

// SetStop replaces the stop set, returning the previous one.
func (p *Parser) SetStop(s lexer.KindSet) lexer.KindSet {
	old := p.stop
	p.stop = s
	return old
}

// Skip returns the active skip set.
func (p *Parser) Skip() lexer.KindSet { return p.skip }

// Stop returns the active stop set.
func (p *Parser) Stop() lexer.KindSet { return p.stop }

// Offset returns the offset of the next unconsumed cursor.
func (p *Parser) Offset() lexer.SourceOffset {
	if p.count > 0 {
		return p.ring[p.head].Offset
	}
	return p.lex.Offset()
}

// raw returns the i-th upcoming cursor, counting skipped kinds.
func (p *Parser) raw(i int) lexer.Cursor {
	for p.count <= i && p.count < p.size {
		if p.count > 0 && p.at(p.count-1).Is(lexer.KindEof) {
			return p.at(p.count - 1)
		}
		p.ring[(p.head+p.count)%MaxLookahead] = p.lex.AdvanceCursor()
		p.count++
	}
	if i < p.count {
		return p.at(i)
	}
	// Past the ring: scan without buffering.
	saved := p.lex.Checkpoint()
	c := p.at(p.count - 1)
	for j := p.count; j <= i && !c.Is(lexer.KindEof); j++ {
		c = p.lex.AdvanceCursor()
	}
	p.lex.Rewind(saved)
	return c
}

func (p *Parser) at(i int) lexer.Cursor {
	return p.ring[(p.head+i)%MaxLookahead]
}

// pop consumes the next raw cursor.
func (p *Parser) pop() lexer.Cursor {
	c := p.raw(0)
	p.head = (p.head + 1) % MaxLookahead
	p.count--
	return c
}

func (p *Parser) peekWith(n int, skip lexer.KindSet) lexer.Cursor {
	for i := 0; ; i++ {
		c := p.raw(i)
		if c.Is(lexer.KindEof) {
			return c
		}
		if !skip.Contains(c.Kind()) {
			n--
			if n <= 0 {
				return c
			}
		}
	}
}

// PeekN returns the n-th (1-based) upcoming cursor not in the skip set,
// without consuming anything. Past the end it returns the EOF cursor.
func (p *Parser) PeekN(n int) lexer.Cursor {
	return p.peekWith(n, p.skip)
}

// PeekNWithSkip is PeekN with an explicit skip set.
func (p *Parser) PeekNWithSkip(n int, skip lexer.KindSet) lexer.Cursor {
	return p.peekWith(n, skip)
}

// PeekNext returns the next cursor not in the skip set.
func (p *Parser) PeekNext() lexer.Cursor {
	return p.peekWith(1, p.skip)
}

// PeekNextIncludingWhitespace returns the next cursor, treating whitespace
// as significant even when the skip set contains it.
func (p *Parser) PeekNextIncludingWhitespace() lexer.Cursor {
	return p.peekWith(1, p.skip.Without(lexer.KindWhitespace))
}

// NextIsStop reports whether the next significant cursor is in the stop set.
func (p *Parser) NextIsStop() bool {
	return p.stop.Contains(p.PeekNext().Kind())
}

// AtEnd reports whether only EOF and skipped kinds remain.
func (p *Parser) AtEnd() bool {
	return p.PeekNext().Is(lexer.KindEof)
}

// Next consumes and returns the next significant cursor, recording any
// skipped cursors before it as trivia. At the end it returns EOF.
func (p *Parser) Next() lexer.Cursor {
	for {
		c := p.pop()
		if c.Is(lexer.KindEof) || !p.skip.Contains(c.Kind()) {
			p.closeTrivia(c)
			return c
		}
		p.trivia = arena.Append(p.arena, p.trivia, c)
	}
}

// ConsumeTrivia consumes skipped cursors up to the next significant one.
func (p *Parser) ConsumeTrivia() {
	for {
		c := p.raw(0)
		if c.Is(lexer.KindEof) || !p.skip.Contains(c.Kind()) {
			return
		}
		p.trivia = arena.Append(p.arena, p.trivia, p.pop())
	}
}

func (p *Parser) closeTrivia(c lexer.Cursor) {
	if len(p.trivia) == p.pending {
		return
	}
	p.groups = arena.Append(p.arena, p.groups, triviaGroup{start: p.pending, end: len(p.trivia), cursor: c})
	p.pending = len(p.trivia)
}

// Error records a diagnostic.
func (p *Parser) Error(d *Diagnostic) {
	if d == nil {
		return
	}
	if log.Enabled(log.LevelDebug) {
		log.Debug(log.CatParser, "diagnostic", "code", d.Kind.Code(), "span", d.Span())
	}
	p.errors = arena.Append(p.arena, p.errors, *d)
}

// Errors returns the diagnostics recorded so far.
func (p *Parser) Errors() []Diagnostic { return p.errors }

// SourceCursor pairs c with its source text.
func (p *Parser) SourceCursor(c lexer.Cursor) lexer.SourceCursor {
	return lexer.NewSourceCursor(c, p.source)
}

// ToAtom returns the atom of c in set. Atom bits computed by the lexer are
// used when set is the lexer's own set; otherwise the decoded value of c is
// classified.
func (p *Parser) ToAtom(c lexer.Cursor, set lexer.AtomSet) uint32 {
	if set == p.lex.Atoms() {
		return c.Token.AtomBits()
	}
	if !c.Kind().IsIdentLike() && !c.Is(lexer.KindDimension) {
		return 0
	}
	return set.Bits(p.SourceCursor(c).Value(p.arena))
}

// EqualsAtom reports whether c spells the atom bits of set.
func (p *Parser) EqualsAtom(c lexer.Cursor, set lexer.AtomSet, bits uint32) bool {
	return bits != 0 && p.ToAtom(c, set) == bits
}
