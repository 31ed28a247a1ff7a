package lexer

import (
	"fmt"
	"math"
)

// SourceOffset is a byte offset into the source text.
type SourceOffset uint32

// DummyOffset marks a cursor that does not point into the source.
const DummyOffset SourceOffset = math.MaxUint32

// IsDummy reports whether the offset is DummyOffset.
func (o SourceOffset) IsDummy() bool { return o == DummyOffset }

// Cursor is a token at a source offset. Cursors are comparable values and
// may be used as map keys.
type Cursor struct {
	Offset SourceOffset
	Token  Token
}

// CursorEOF is the end-of-file cursor at offset zero.
var CursorEOF = Cursor{}

// DummyCursor synthesizes a cursor that is not backed by source text.
func DummyCursor(t Token) Cursor {
	return Cursor{Offset: DummyOffset, Token: t}
}

// Kind returns the kind of the cursor's token.
func (c Cursor) Kind() Kind { return c.Token.kind }

// Is reports whether the cursor's token has kind k.
func (c Cursor) Is(k Kind) bool { return c.Token.kind == k }

// IsDummy reports whether the cursor was synthesized.
func (c Cursor) IsDummy() bool { return c.Offset.IsDummy() }

// EndOffset returns the offset just past the token.
func (c Cursor) EndOffset() SourceOffset {
	if c.IsDummy() {
		return c.Offset
	}
	return c.Offset + SourceOffset(c.Token.len)
}

// Span returns the byte range covered by the cursor.
func (c Cursor) Span() Span {
	return Span{Start: c.Offset, End: c.EndOffset()}
}

// StrSlice returns the source bytes covered by the cursor. Dummy cursors of
// delimiter-like or whitespace kinds render their canonical text, other
// dummy cursors render nothing.
func (c Cursor) StrSlice(source string) string {
	if c.IsDummy() {
		return c.Token.dummyText()
	}
	end := c.EndOffset()
	if int(end) > len(source) {
		end = SourceOffset(len(source))
	}
	if int(c.Offset) > len(source) {
		return ""
	}
	return source[c.Offset:end]
}

// WithToken returns a cursor at the same offset carrying t. The length of t
// must match the original token for the cursor to remain sliceable.
func (c Cursor) WithToken(t Token) Cursor {
	c.Token = t
	return c
}

// WithAssociatedWhitespace replaces the whitespace rules of a
// delimiter-like cursor.
func (c Cursor) WithAssociatedWhitespace(rules AssociatedWhitespaceRules) Cursor {
	c.Token = c.Token.WithAssociatedWhitespace(rules)
	return c
}

// NeedsSeparatorFor reports whether a separator is needed between c and
// next when they are written adjacently.
func (c Cursor) NeedsSeparatorFor(next Cursor) bool {
	return c.Token.NeedsSeparatorFor(next.Token)
}

func (c Cursor) String() string {
	if c.IsDummy() {
		return fmt.Sprintf("%s@dummy", c.Token)
	}
	return fmt.Sprintf("%s@%d", c.Token, c.Offset)
}

func (t Token) dummyText() string {
	switch t.kind {
	case KindWhitespace:
		if t.WhitespaceStyle().Has(WhitespaceNewline) {
			return "\n"
		}
		if t.WhitespaceStyle() == WhitespaceTab {
			return "\t"
		}
		return " "
	case KindCdcOrCdo:
		if t.IsCDC() {
			return "-->"
		}
		return "<!--"
	}
	if r, ok := t.Char(); ok {
		return string(r)
	}
	return ""
}

// Span is a half-open byte range [Start, End) in the source.
type Span struct {
	Start SourceOffset
	End   SourceOffset
}

// DummySpan covers nothing.
var DummySpan = Span{Start: DummyOffset, End: DummyOffset}

// NewSpan creates a span, swapping the bounds if needed.
func NewSpan(start, end SourceOffset) Span {
	if end < start {
		start, end = end, start
	}
	return Span{Start: start, End: end}
}

// Len returns the number of bytes covered.
func (s Span) Len() uint32 {
	if s.IsDummy() {
		return 0
	}
	return uint32(s.End - s.Start)
}

// IsEmpty reports whether the span covers no bytes.
func (s Span) IsEmpty() bool { return s.Len() == 0 }

// IsDummy reports whether the span is DummySpan.
func (s Span) IsDummy() bool { return s.Start.IsDummy() }

// Join returns the smallest span covering both s and o. Dummy spans are
// ignored.
func (s Span) Join(o Span) Span {
	if s.IsDummy() {
		return o
	}
	if o.IsDummy() {
		return s
	}
	return Span{Start: min(s.Start, o.Start), End: max(s.End, o.End)}
}

// Contains reports whether offset lies within the span.
func (s Span) Contains(offset SourceOffset) bool {
	return !s.IsDummy() && offset >= s.Start && offset < s.End
}

// ContainsSpan reports whether o lies entirely within s.
func (s Span) ContainsSpan(o Span) bool {
	return !s.IsDummy() && !o.IsDummy() && o.Start >= s.Start && o.End <= s.End
}

// StrSlice returns the source bytes covered by the span.
func (s Span) StrSlice(source string) string {
	if s.IsDummy() || int(s.Start) > len(source) {
		return ""
	}
	end := min(int(s.End), len(source))
	return source[s.Start:end]
}

func (s Span) String() string {
	if s.IsDummy() {
		return "dummy"
	}
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}
