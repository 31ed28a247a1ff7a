package lexer

import (
	"iter"
)

// Lexer converts source text into tokens one at a time. It never fails:
// every input maps to some token sequence, with malformed constructs marked
// by flags or by the bad-string and bad-url kinds.
type Lexer struct {
	atoms    AtomSet
	source   string
	offset   SourceOffset
	features Feature

	// scratch holds decoded identifier text for atom lookups.
	scratch []byte
}

// New creates a lexer over source, interning identifiers with atoms.
func New(atoms AtomSet, source string) *Lexer {
	return NewWithFeatures(atoms, source, 0)
}

// NewWithFeatures creates a lexer with optional features enabled.
func NewWithFeatures(atoms AtomSet, source string, features Feature) *Lexer {
	if atoms == nil {
		atoms = EmptyAtomSet{}
	}
	return &Lexer{atoms: atoms, source: source, features: features}
}

// Source returns the full source text.
func (l *Lexer) Source() string { return l.source }

// Offset returns the offset of the next token.
func (l *Lexer) Offset() SourceOffset { return l.offset }

// Atoms returns the atom set used for interning.
func (l *Lexer) Atoms() AtomSet { return l.atoms }

// Features returns the enabled features.
func (l *Lexer) Features() Feature { return l.features }

// AtEnd reports whether the whole source has been consumed.
func (l *Lexer) AtEnd() bool { return int(l.offset) >= len(l.source) }

// Checkpoint returns the current position for a later Rewind.
func (l *Lexer) Checkpoint() SourceOffset { return l.offset }

// Rewind moves the lexer back (or forward) to offset, which must lie on a
// token boundary.
func (l *Lexer) Rewind(offset SourceOffset) {
	l.offset = min(offset, SourceOffset(len(l.source)))
}

// Hop moves the lexer to the end of c, skipping any tokens before it.
func (l *Lexer) Hop(c Cursor) {
	if c.IsDummy() {
		return
	}
	l.Rewind(c.EndOffset())
}

// Advance consumes and returns the next token. At the end of the source it
// returns TokenEOF.
func (l *Lexer) Advance() Token {
	t := l.readToken(int(l.offset))
	l.offset += SourceOffset(t.len)
	return t
}

// AdvanceCursor consumes the next token and returns it with its offset.
func (l *Lexer) AdvanceCursor() Cursor {
	offset := l.offset
	return l.Advance().WithCursor(offset)
}

// Next returns the next cursor, or false once the end of input is reached.
func (l *Lexer) Next() (Cursor, bool) {
	c := l.AdvanceCursor()
	if c.Is(KindEof) {
		return c, false
	}
	return c, true
}

// All iterates over the remaining cursors, excluding EOF.
func (l *Lexer) All() iter.Seq[Cursor] {
	return func(yield func(Cursor) bool) {
		for {
			c, ok := l.Next()
			if !ok || !yield(c) {
				return
			}
		}
	}
}

// Tokenize lexes all of source into cursors, excluding EOF.
func Tokenize(atoms AtomSet, source string, features Feature) []Cursor {
	l := NewWithFeatures(atoms, source, features)
	var out []Cursor
	for c := range l.All() {
		out = append(out, c)
	}
	return out
}
