package parser

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zjrosen/csskit/internal/arena"
	"github.com/zjrosen/csskit/internal/lexer"
)

func TestOverlaySink_ReplacesSpan(t *testing.T) {
	source := "black white"
	res := ParseEntirely[identPair](newParser(source))
	require.True(t, res.OK())

	overlaySource := "green"
	overlay := ParseEntirely[identNode](newParser(overlaySource))
	require.True(t, overlay.OK())

	overlays := NewOverlaySet()
	overlays.Insert(res.Output.b.Span(), overlaySource, overlay)
	assert.Equal(t, 1, overlays.Len())

	var b strings.Builder
	res.ToCursors(NewOverlaySink(source, overlays, NewWriteSink(source, &b)))
	assert.Equal(t, "black green", b.String())
}

func TestOverlaySink_SpanningSeveralCursors(t *testing.T) {
	source := "a b c d"
	res := ParseEntirely[tokenList](newParser(source))
	require.True(t, res.OK())

	replacement := ParseEntirely[identNode](newParser("x"))
	overlays := NewOverlaySet()
	cs := res.Output.cursors
	overlays.Insert(cs[1].Span().Join(cs[2].Span()), "x", replacement)

	var b strings.Builder
	res.ToCursors(NewOverlaySink(source, overlays, NewWriteSink(source, &b)))
	assert.Equal(t, "a x d", b.String())
}

func TestVecSink_InsertsSeparators(t *testing.T) {
	source := "a  b(1 +2)"
	res := ParseEntirely[tokenList](newParser(source))
	require.True(t, res.OK())

	sink := NewVecSink(arena.New())
	res.ToCursors(sink)

	var texts []string
	for _, c := range sink.Cursors {
		texts = append(texts, c.StrSlice(source))
	}
	assert.Equal(t, []string{"a", " ", "b(", "1", " ", "+2", ")"}, texts)
	assert.True(t, sink.Cursors[1].IsDummy())
}

func TestWriteSink_MinimalSeparators(t *testing.T) {
	tests := []struct {
		source   string
		expected string
	}{
		{source: "a b", expected: "a b"},
		{source: "a   ;   b", expected: "a;b"},
		{source: "1 % ", expected: "1 %"},
		{source: "a ( b )", expected: "a (b)"},
		{source: "# foo", expected: "# foo"},
		{source: "/ *", expected: "/ *"},
		{source: "1.5.5", expected: "1.5.5"},
		{source: "x /* c */ y", expected: "x y"},
	}
	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			res := ParseEntirely[tokenList](newParser(tt.source))
			assert.Equal(t, tt.expected, write(tt.source, res))
		})
	}
}

func TestWriteSink_CommentAfterSlash(t *testing.T) {
	source := "a/b"
	p := newParser(source)
	a, slash := p.Next(), p.Next()

	var b strings.Builder
	s := NewWriteSink(source, &b)
	s.Append(a)
	s.Append(slash)
	s.AppendSource(lexer.NewSourceCursor(lexer.Tokenize(lexer.EmptyAtomSet{}, "/**/", 0)[0], "/**/"))
	assert.Equal(t, "a/ /**/", b.String())
}

func TestWriteSink_NewlineAfterBackslash(t *testing.T) {
	source := "x\\\n+\\\n"
	var b strings.Builder
	s := NewWriteSink(source, &b)
	for _, c := range lexer.Tokenize(lexer.EmptyAtomSet{}, source, 0) {
		if !c.Token.IsTrivia() {
			s.AppendSource(lexer.NewSourceCursor(c, source))
		}
	}
	s.AppendSource(lexer.NewSourceCursor(lexer.DummyCursor(lexer.TokenEOF), source))
	require.NoError(t, s.Err())
	assert.Equal(t, source, b.String())
}

func TestVecSink_NewlineAfterBackslash(t *testing.T) {
	source := "\\\n--x"
	sink := NewVecSink(arena.New())
	for _, c := range lexer.Tokenize(lexer.EmptyAtomSet{}, source, 0) {
		if !c.Token.IsTrivia() {
			sink.Append(c)
		}
	}
	require.Len(t, sink.Cursors, 3)
	assert.Equal(t, "\n", sink.Cursors[1].StrSlice(source))
}

type failingWriter struct{ n int }

func (w *failingWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errors.New("disk full")
	}
	w.n--
	return len(p), nil
}

func TestWriteSink_KeepsFirstError(t *testing.T) {
	source := "a b c"
	res := ParseEntirely[tokenList](newParser(source))
	w := &failingWriter{n: 1}
	s := NewWriteSink(source, w)
	res.ToCursors(s)
	assert.EqualError(t, s.Err(), "disk full")
}

func TestInterleaveSink_SkipsUnwrittenGroups(t *testing.T) {
	source := "a /* 1 */ b /* 2 */ c"
	res := ParseEntirely[tokenList](newParser(source))
	require.True(t, res.OK())
	require.Len(t, res.Trivia, 2)

	var buf bytes.Buffer
	ws := NewWriteSink(source, &buf)
	is := NewInterleaveSink(ws, res.Trivia)
	is.Append(res.Output.cursors[0])
	is.Append(res.Output.cursors[2])
	is.Flush()
	assert.Equal(t, "a /* 2 */ c", buf.String())
}

func TestInterleaveSink_FlushesOnEOF(t *testing.T) {
	source := "a  "
	res := ParseEntirely[tokenList](newParser(source))

	var b strings.Builder
	is := NewInterleaveSink(NewWriteSink(source, &b), res.Trivia)
	is.Append(res.Output.cursors[0])
	is.Append(res.Trivia[len(res.Trivia)-1].Cursor)
	assert.Equal(t, "a  ", b.String())
}
