package parser

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/zjrosen/csskit/internal/arena"
	"github.com/zjrosen/csskit/internal/atoms"
	"github.com/zjrosen/csskit/internal/lexer"
)

// identNode parses exactly one ident.
type identNode struct{ c lexer.Cursor }

func (n *identNode) Peek(_ *Parser, c lexer.Cursor) bool { return c.Is(lexer.KindIdent) }

func (n *identNode) Parse(p *Parser) error {
	c := p.Next()
	if !c.Is(lexer.KindIdent) {
		return Expected(lexer.KindIdent, c)
	}
	n.c = c
	return nil
}

func (n *identNode) ToCursors(s CursorSink) { s.Append(n.c) }
func (n *identNode) Span() lexer.Span       { return n.c.Span() }

// identPair parses two idents.
type identPair struct{ a, b identNode }

func (n *identPair) Peek(p *Parser, c lexer.Cursor) bool { return n.a.Peek(p, c) }

func (n *identPair) Parse(p *Parser) error {
	if err := n.a.Parse(p); err != nil {
		return err
	}
	return n.b.Parse(p)
}

func (n *identPair) ToCursors(s CursorSink) {
	n.a.ToCursors(s)
	n.b.ToCursors(s)
}

func (n *identPair) Span() lexer.Span { return n.a.Span().Join(n.b.Span()) }

// tokenList consumes significant cursors up to the end or the stop set.
type tokenList struct{ cursors []lexer.Cursor }

func (n *tokenList) Peek(*Parser, lexer.Cursor) bool { return true }

func (n *tokenList) Parse(p *Parser) error {
	for !p.AtEnd() && !p.NextIsStop() {
		n.cursors = arena.Append(p.Arena(), n.cursors, p.Next())
	}
	return nil
}

func (n *tokenList) ToCursors(s CursorSink) {
	for _, c := range n.cursors {
		s.Append(c)
	}
}

func (n *tokenList) Span() lexer.Span {
	if len(n.cursors) == 0 {
		return lexer.DummySpan
	}
	return n.cursors[0].Span().Join(n.cursors[len(n.cursors)-1].Span())
}

func newParser(source string) *Parser {
	return New(arena.New(), atoms.CSS, source)
}

func write(source string, n Node) string {
	var b strings.Builder
	n.ToCursors(NewWriteSink(source, &b))
	return b.String()
}

func TestNewWithOptions_Lookahead(t *testing.T) {
	tests := []struct {
		name     string
		in       int
		expected int
	}{
		{name: "default", in: 0, expected: DefaultLookahead},
		{name: "negative", in: -3, expected: DefaultLookahead},
		{name: "explicit", in: 4, expected: 4},
		{name: "clamped", in: 100, expected: MaxLookahead},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewWithOptions(nil, atoms.CSS, "a", Options{Lookahead: tt.in})
			assert.Equal(t, tt.expected, p.Lookahead())
		})
	}
}

func TestParser_PeekDoesNotConsume(t *testing.T) {
	p := newParser("a /* c */ b  c")

	assert.Equal(t, lexer.SourceOffset(0), p.PeekNext().Offset)
	assert.Equal(t, lexer.SourceOffset(10), p.PeekN(2).Offset)
	assert.Equal(t, lexer.SourceOffset(13), p.PeekN(3).Offset)
	assert.True(t, p.PeekN(4).Is(lexer.KindEof))
	assert.True(t, p.PeekN(40).Is(lexer.KindEof))
	assert.True(t, p.PeekNWithSkip(2, lexer.KindSetNone).Is(lexer.KindWhitespace))
	assert.Equal(t, lexer.SourceOffset(0), p.Offset())

	assert.Equal(t, lexer.SourceOffset(0), p.Next().Offset)
	assert.True(t, p.PeekNextIncludingWhitespace().Is(lexer.KindWhitespace))
	assert.Equal(t, lexer.SourceOffset(10), p.Next().Offset)
	assert.Equal(t, lexer.SourceOffset(13), p.Next().Offset)
	assert.True(t, p.AtEnd())
	assert.True(t, p.Next().Is(lexer.KindEof))
	assert.True(t, p.Next().Is(lexer.KindEof))
}

func TestParser_PeekPastRing(t *testing.T) {
	p := NewWithOptions(arena.New(), atoms.CSS, "a b c d e f", Options{Lookahead: 2})

	assert.Equal(t, lexer.SourceOffset(8), p.PeekN(5).Offset)
	assert.Equal(t, lexer.SourceOffset(10), p.PeekN(6).Offset)
	assert.True(t, p.PeekN(7).Is(lexer.KindEof))

	var got []lexer.SourceOffset
	for !p.AtEnd() {
		got = append(got, p.Next().Offset)
	}
	assert.Equal(t, []lexer.SourceOffset{0, 2, 4, 6, 8, 10}, got)
}

func TestParser_PeekMatchesNext(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		source := rapid.StringOf(rapid.SampledFrom([]rune("a1 -+.;:{}()[]\"'#/*@%,\\\n"))).Draw(t, "source")
		size := rapid.IntRange(1, MaxLookahead).Draw(t, "lookahead")
		p := NewWithOptions(arena.New(), atoms.CSS, source, Options{Lookahead: size})

		var peeked []lexer.Cursor
		for i := 1; ; i++ {
			c := p.PeekN(i)
			peeked = append(peeked, c)
			if c.Is(lexer.KindEof) {
				break
			}
		}
		for i, want := range peeked {
			if got := p.Next(); got != want {
				t.Fatalf("cursor %d: Next() = %v, PeekN = %v", i, got, want)
			}
		}
	})
}

func TestParser_SkipSet(t *testing.T) {
	p := newParser("a :b")
	p.Next()

	old := p.SetSkip(lexer.KindSetNone)
	assert.Equal(t, lexer.KindSetTrivia, old)
	assert.True(t, p.PeekNext().Is(lexer.KindWhitespace))
	p.SetSkip(old)
	assert.True(t, p.PeekNext().Is(lexer.KindColon))
}

func TestParser_StopSetBoundsUnbalancedInput(t *testing.T) {
	p := newParser("(foo(bar)")
	require.True(t, p.Next().Is(lexer.KindLeftParen))

	old := p.SetStop(lexer.KindSetRightParen)
	list, err := Parse[tokenList](p)
	p.SetStop(old)

	require.NoError(t, err)
	require.Len(t, list.cursors, 2)
	assert.True(t, list.cursors[0].Is(lexer.KindFunction))
	assert.True(t, list.cursors[1].Is(lexer.KindIdent))
	assert.True(t, p.Next().Is(lexer.KindRightParen))
	assert.True(t, p.AtEnd())
}

func TestParser_State(t *testing.T) {
	p := newParser("")
	assert.False(t, p.Is(StateNested))
	old := p.SetState(StateNested)
	assert.True(t, p.Is(StateNested))
	p.SetState(old)
	assert.False(t, p.Is(StateNested))
}

func TestParser_CheckpointIdentity(t *testing.T) {
	p := newParser("a b { c: d }")
	p.Next()
	p.PeekN(3)
	p.Error(NewDiagnostic(Unexpected, p.PeekNext()))

	cp := p.Checkpoint()
	p.Rewind(cp)
	assert.Equal(t, cp, p.Checkpoint())
	assert.Len(t, p.Errors(), 1)
}

func TestParser_RewindRestoresEverything(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		source := rapid.StringOf(rapid.SampledFrom([]rune("ab1 -;:{}()/*\n"))).Draw(t, "source")
		p := NewWithOptions(arena.New(), atoms.CSS, source, Options{Lookahead: rapid.IntRange(1, 16).Draw(t, "lookahead")})

		for range rapid.IntRange(0, 5).Draw(t, "prefix") {
			p.Next()
		}
		cp := p.Checkpoint()
		errs := len(p.Errors())

		p.SetSkip(lexer.KindSetNone)
		p.SetStop(lexer.KindSetRightCurly)
		p.SetState(StateNested)
		for range rapid.IntRange(0, 8).Draw(t, "speculative") {
			c := p.Next()
			if rapid.Bool().Draw(t, "error") {
				p.Error(NewDiagnostic(Unexpected, c))
			}
		}
		p.Rewind(cp)

		if got := len(p.Errors()); got != errs {
			t.Fatalf("errors after rewind = %d, want %d", got, errs)
		}
		if p.Checkpoint() != cp {
			t.Fatalf("checkpoint after rewind differs")
		}
		if p.Skip() != lexer.KindSetTrivia || p.Stop() != lexer.KindSetNone || p.Is(StateNested) {
			t.Fatalf("scoped sets not restored")
		}

		fresh := NewWithOptions(arena.New(), atoms.CSS, source, Options{})
		for fresh.Offset() < cp.Offset() {
			fresh.Next()
		}
		for {
			want, got := fresh.Next(), p.Next()
			if want != got {
				t.Fatalf("Next() after rewind = %v, want %v", got, want)
			}
			if want.Is(lexer.KindEof) {
				break
			}
		}
	})
}

func TestTryParse_RewindsOnFailure(t *testing.T) {
	p := newParser("a 1")

	pair, err := TryParse[identPair](p)
	assert.Nil(t, pair)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ExpectedKind))

	var d *Diagnostic
	require.True(t, errors.As(err, &d))
	assert.Equal(t, "ident", strings.ToLower(d.Want))
	assert.Equal(t, lexer.SourceOffset(0), p.Offset())

	ident, err := TryParse[identNode](p)
	require.NoError(t, err)
	assert.Equal(t, "a", ident.c.StrSlice(p.Source()))
}

func TestParseIfPeek(t *testing.T) {
	p := newParser("1 a")

	n, err := ParseIfPeek[identNode](p)
	assert.NoError(t, err)
	assert.Nil(t, n)
	assert.Equal(t, lexer.SourceOffset(0), p.Offset())
	assert.False(t, Peek[identNode](p))

	p.Next()
	assert.True(t, Peek[identNode](p))
	n, err = ParseIfPeek[identNode](p)
	require.NoError(t, err)
	assert.Equal(t, lexer.SourceOffset(2), n.c.Offset)
}

func TestParseEntirely_ExpectedEnd(t *testing.T) {
	p := newParser("a b c")
	res := ParseEntirely[identNode](p)

	require.NotNil(t, res.Output)
	assert.False(t, res.OK())
	require.Len(t, res.Errors, 1)
	d := res.Errors[0]
	assert.Equal(t, ExpectedEnd, d.Kind)
	assert.Equal(t, lexer.NewSpan(2, 5), d.Span())
	assert.True(t, errors.Is(res.Err(), ExpectedEnd))
	assert.Equal(t, "a b c", write(res.Source, res.WithTrivia()))
	assert.Equal(t, "a", write(res.Source, res))
}

func TestParseEntirely_Failure(t *testing.T) {
	res := ParseEntirely[identNode](newParser("  1"))
	assert.Nil(t, res.Output)
	require.Len(t, res.Errors, 1)
	assert.Equal(t, ExpectedKind, res.Errors[0].Kind)
	assert.Empty(t, write(res.Source, res.WithTrivia()))
	assert.True(t, res.Span().IsDummy())
}

func TestParseEntirely_TriviaReproducesSource(t *testing.T) {
	tests := []string{
		"",
		"   ",
		"a",
		"  a /* x */ b  ",
		"body { color : blue ; }\n/* end */",
		"1.5.5 1+1 a-->b",
		"/**/a/**/",
	}
	for _, source := range tests {
		t.Run(source, func(t *testing.T) {
			res := ParseEntirely[tokenList](newParser(source))
			require.True(t, res.OK())
			assert.Equal(t, source, write(source, res.WithTrivia()))
		})
	}
}

func TestParseEntirely_TriviaRoundTripProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		source := rapid.String().Draw(t, "source")
		res := ParseEntirely[tokenList](newParser(source))
		if got := write(source, res.WithTrivia()); got != source {
			t.Fatalf("round trip = %q, want %q", got, source)
		}
	})
}

func TestParser_ArenaUsageIsStable(t *testing.T) {
	run := func(a *arena.Arena) arena.Stats {
		p := New(a, atoms.CSS, "body{color:blue}")
		res := ParseEntirely[tokenList](p)
		require.True(t, res.OK())
		return a.Stats()
	}

	first := run(arena.New())
	second := run(arena.New())
	assert.Equal(t, first, second)

	a := arena.New()
	run(a)
	used := a.Stats().Used
	a.Reset()
	assert.Equal(t, used, run(a).Used)
}

func TestParser_Atoms(t *testing.T) {
	p := New(arena.New(), atoms.CSS, "px webkit \\70x")
	px, webkit, escaped := p.Next(), p.Next(), p.Next()

	assert.Equal(t, uint32(atoms.CSSAtomPx), p.ToAtom(px, atoms.CSS))
	assert.True(t, p.EqualsAtom(px, atoms.CSS, uint32(atoms.CSSAtomPx)))
	assert.False(t, p.EqualsAtom(px, atoms.CSS, 0))
	assert.Equal(t, uint32(atoms.QueryAtomWebkit), p.ToAtom(webkit, atoms.Query))
	assert.Equal(t, uint32(atoms.CSSAtomPx), p.ToAtom(escaped, atoms.CSS))
	assert.Equal(t, uint32(0), p.ToAtom(lexer.DummyCursor(lexer.TokenColon), atoms.Query))

	p = New(arena.New(), lexer.EmptyAtomSet{}, "\\70x")
	c := p.Next()
	assert.Zero(t, c.Token.AtomBits())
	assert.Equal(t, uint32(atoms.CSSAtomPx), p.ToAtom(c, atoms.CSS))
}
