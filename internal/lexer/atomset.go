package lexer

// AtomSet classifies identifier text into small integer atoms. Zero is
// reserved for "no match". Implementations are generated ahead of time and
// never change at runtime; the lexer receives one explicitly so several
// keyword universes can share the same tokenizer.
type AtomSet interface {
	// Bits returns the atom for s, folding ASCII letters to lower case.
	Bits(s string) uint32
	// BitsBytes is Bits for a byte slice.
	BitsBytes(b []byte) uint32
	// Name returns the canonical spelling of an atom, or "" for zero.
	Name(bits uint32) string
}

// EmptyAtomSet disables interning: every lookup returns zero.
type EmptyAtomSet struct{}

// Bits always returns zero.
func (EmptyAtomSet) Bits(string) uint32 { return 0 }

// BitsBytes always returns zero.
func (EmptyAtomSet) BitsBytes([]byte) uint32 { return 0 }

// Name always returns "".
func (EmptyAtomSet) Name(uint32) string { return "" }
