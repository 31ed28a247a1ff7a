package parser

import (
	"io"
	"sort"

	"github.com/zjrosen/csskit/internal/arena"
	"github.com/zjrosen/csskit/internal/lexer"
)

// CursorSink receives the cursors a node writes out, in source order.
type CursorSink interface {
	Append(c lexer.Cursor)
}

// SourceCursorSink receives cursors together with their text. Sinks that
// accept cursors from more than one source implement it.
type SourceCursorSink interface {
	AppendSource(c lexer.SourceCursor)
}

// needsSeparator reports whether writing next straight after prev would
// change how the text tokenizes. Trivia already separates tokens, except a
// `/` delimiter directly before a comment or a token that must end a line.
func needsSeparator(prev, next lexer.Cursor) bool {
	if prev.Is(lexer.KindEof) {
		return false
	}
	if prev.Is(lexer.KindWhitespace) || next.Is(lexer.KindWhitespace) {
		return false
	}
	if next.Is(lexer.KindComment) {
		return prev.Token.IsChar('/') || prev.Token.NeedsNewlineAfter()
	}
	if prev.Is(lexer.KindComment) {
		return false
	}
	return prev.NeedsSeparatorFor(next)
}

// VecSink collects cursors into an arena slice, inserting a dummy space
// cursor wherever two neighbours would otherwise merge.
type VecSink struct {
	arena   *arena.Arena
	Cursors []lexer.Cursor
}

// NewVecSink creates an empty VecSink backed by a.
func NewVecSink(a *arena.Arena) *VecSink {
	return &VecSink{arena: a}
}

// adjacent reports whether two cursors from the same source touch, in which
// case they already tokenized apart and need nothing between them.
func adjacent(prev, next lexer.Cursor) bool {
	return !prev.IsDummy() && !next.IsDummy() && prev.EndOffset() == next.Offset
}

// Append implements CursorSink.
func (s *VecSink) Append(c lexer.Cursor) {
	if n := len(s.Cursors); n > 0 && !adjacent(s.Cursors[n-1], c) && needsSeparator(s.Cursors[n-1], c) {
		s.Cursors = arena.Append(s.arena, s.Cursors, lexer.DummyCursor(s.Cursors[n-1].Token.Separator()))
	}
	s.Cursors = arena.Append(s.arena, s.Cursors, c)
}

// WriteSink writes cursor text to a writer, adding a single space only
// where two neighbours would otherwise merge, or a newline after a
// backslash. The first write error is kept and later writes are dropped.
type WriteSink struct {
	source string
	w      io.Writer
	prev   lexer.Cursor
	has    bool
	own    bool // prev came from source
	err    error
}

// NewWriteSink creates a sink writing cursors sliced from source to w.
func NewWriteSink(source string, w io.Writer) *WriteSink {
	return &WriteSink{source: source, w: w}
}

// Append implements CursorSink.
func (s *WriteSink) Append(c lexer.Cursor) {
	s.append(lexer.NewSourceCursor(c, s.source), true)
}

// AppendSource implements SourceCursorSink. The cursor may come from any
// source, so only token kinds decide whether a separator is needed.
func (s *WriteSink) AppendSource(c lexer.SourceCursor) {
	s.append(c, false)
}

func (s *WriteSink) append(c lexer.SourceCursor, own bool) {
	if s.err != nil {
		return
	}
	if s.has && !(own && s.own && adjacent(s.prev, c.Cursor)) && needsSeparator(s.prev, c.Cursor) {
		s.write(lexer.DummyCursor(s.prev.Token.Separator()).StrSlice(""))
	}
	if c.Cursor.Is(lexer.KindEof) {
		s.has = false
		return
	}
	s.write(c.Text)
	s.prev = c.Cursor
	s.has = true
	s.own = own
}

func (s *WriteSink) write(text string) {
	if s.err != nil || text == "" {
		return
	}
	_, s.err = io.WriteString(s.w, text)
}

// Err returns the first write error.
func (s *WriteSink) Err() error { return s.err }

// InterleaveSink forwards cursors to another sink, replaying the trivia
// recorded before each one.
type InterleaveSink struct {
	sink   CursorSink
	trivia []Trivia
	next   int
}

// NewInterleaveSink wraps sink, interleaving trivia.
func NewInterleaveSink(sink CursorSink, trivia []Trivia) *InterleaveSink {
	return &InterleaveSink{sink: sink, trivia: trivia}
}

// Append implements CursorSink. Trivia groups attached to cursors that were
// never written are dropped once a later cursor is seen.
func (s *InterleaveSink) Append(c lexer.Cursor) {
	if !c.IsDummy() {
		for s.next < len(s.trivia) {
			t := s.trivia[s.next]
			if t.Cursor.Offset == c.Offset {
				s.emit(t.Before)
				s.next++
				break
			}
			if t.Cursor.Offset > c.Offset {
				break
			}
			s.next++
		}
	}
	if c.Is(lexer.KindEof) {
		s.Flush()
	}
	s.sink.Append(c)
}

// Flush writes any trivia that has not been replayed yet.
func (s *InterleaveSink) Flush() {
	for ; s.next < len(s.trivia); s.next++ {
		s.emit(s.trivia[s.next].Before)
	}
}

func (s *InterleaveSink) emit(cursors []lexer.Cursor) {
	for _, c := range cursors {
		s.sink.Append(c)
	}
}

// OverlaySet maps source spans to replacement cursors taken from other
// parses.
type OverlaySet struct {
	starts   []lexer.SourceOffset
	overlays map[lexer.SourceOffset]overlay
}

type overlay struct {
	end     lexer.SourceOffset
	cursors []lexer.SourceCursor
}

// NewOverlaySet creates an empty overlay set.
func NewOverlaySet() *OverlaySet {
	return &OverlaySet{overlays: make(map[lexer.SourceOffset]overlay)}
}

// Insert replaces span with the cursors of replacement, which is usually a
// Result from a parse of a different source text.
func (o *OverlaySet) Insert(span lexer.Span, source string, replacement Node) {
	c := &sourceCollector{source: source}
	replacement.ToCursors(c)
	if _, ok := o.overlays[span.Start]; !ok {
		i := sort.Search(len(o.starts), func(i int) bool { return o.starts[i] >= span.Start })
		o.starts = append(o.starts, 0)
		copy(o.starts[i+1:], o.starts[i:])
		o.starts[i] = span.Start
	}
	o.overlays[span.Start] = overlay{end: span.End, cursors: c.cursors}
}

// Len returns the number of overlays.
func (o *OverlaySet) Len() int { return len(o.starts) }

// find returns the last overlay starting at or before pos that still covers
// pos.
func (o *OverlaySet) find(pos lexer.SourceOffset) (lexer.SourceOffset, overlay, bool) {
	i := sort.Search(len(o.starts), func(i int) bool { return o.starts[i] > pos })
	for i--; i >= 0; i-- {
		start := o.starts[i]
		if ov := o.overlays[start]; pos < ov.end {
			return start, ov, true
		}
	}
	return 0, overlay{}, false
}

type sourceCollector struct {
	source  string
	cursors []lexer.SourceCursor
}

func (s *sourceCollector) Append(c lexer.Cursor) {
	if c.Is(lexer.KindEof) {
		return
	}
	s.cursors = append(s.cursors, lexer.NewSourceCursor(c, s.source))
}

// OverlaySink writes cursors to a SourceCursorSink, substituting overlays
// for any cursor whose span they cover.
type OverlaySink struct {
	source    string
	overlays  *OverlaySet
	sink      SourceCursorSink
	processed map[lexer.SourceOffset]lexer.SourceOffset
}

// NewOverlaySink creates a sink writing cursors from source, with overlays
// applied, to sink.
func NewOverlaySink(source string, overlays *OverlaySet, sink SourceCursorSink) *OverlaySink {
	return &OverlaySink{
		source:    source,
		overlays:  overlays,
		sink:      sink,
		processed: make(map[lexer.SourceOffset]lexer.SourceOffset),
	}
}

// Append implements CursorSink.
func (s *OverlaySink) Append(c lexer.Cursor) {
	s.AppendSource(lexer.NewSourceCursor(c, s.source))
}

// AppendSource implements SourceCursorSink.
func (s *OverlaySink) AppendSource(c lexer.SourceCursor) {
	span := c.Span()
	if c.Cursor.IsDummy() || span.IsEmpty() {
		s.sink.AppendSource(c)
		return
	}
	if s.covered(span) {
		return
	}
	for pos := span.Start; pos < span.End; {
		start, ov, ok := s.overlays.find(pos)
		if !ok {
			s.sink.AppendSource(c)
			return
		}
		for _, oc := range ov.cursors {
			s.sink.AppendSource(oc)
		}
		s.processed[start] = ov.end
		pos = ov.end
	}
}

// covered reports whether span lies inside an overlay already written.
func (s *OverlaySink) covered(span lexer.Span) bool {
	for start, end := range s.processed {
		if start <= span.Start && span.End <= end {
			return true
		}
	}
	return false
}
