package lexer

import "unicode/utf8"

const (
	eof         rune = 0
	replacement rune = utf8.RuneError
)

var (
	asciiStart     [128]bool
	asciiLowerOrNo [128]bool
	byteIsIdent    [256]bool
	asciiSpace     [128]bool
	nonPrintable   [128]bool
)

func init() {
	for c := 'a'; c <= 'z'; c++ {
		asciiStart[c] = true
		asciiStart[c-'a'+'A'] = true
		asciiLowerOrNo[c] = true
		byteIsIdent[c] = true
		byteIsIdent[c-'a'+'A'] = true
	}
	for c := '0'; c <= '9'; c++ {
		asciiLowerOrNo[c] = true
		byteIsIdent[c] = true
	}
	asciiStart['_'] = true
	byteIsIdent['_'] = true
	byteIsIdent['-'] = true

	for _, c := range []byte{' ', '\t', '\n', '\r', '\f'} {
		asciiSpace[c] = true
	}
	for c := 0; c <= 0x08; c++ {
		nonPrintable[c] = true
	}
	nonPrintable[0x0b] = true
	for c := 0x0e; c <= 0x1f; c++ {
		nonPrintable[c] = true
	}
	nonPrintable[0x7f] = true
}

func isWhitespace(c rune) bool {
	return c >= 0 && c < 128 && asciiSpace[c]
}

func isNewline(c rune) bool {
	return c == '\n' || c == '\r' || c == '\f'
}

func isQuote(c rune) bool {
	return c == '"' || c == '\''
}

func isDigit(c byte) bool {
	return c-'0' < 10
}

func isHexDigit(c rune) bool {
	return (c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func hexValue(c rune) uint32 {
	switch {
	case c >= '0' && c <= '9':
		return uint32(c - '0')
	case c >= 'a' && c <= 'f':
		return uint32(c-'a') + 10
	default:
		return uint32(c-'A') + 10
	}
}

func isNonPrintable(c rune) bool {
	return c >= 0 && c < 128 && nonPrintable[c]
}

func isEscapeSequence(c, next rune) bool {
	return c == '\\' && !isNewline(next)
}

// isNonASCIIIdent covers the non-ASCII ident code point ranges, including
// everything in the astral planes.
func isNonASCIIIdent(c rune) bool {
	if c >= 0x10000 {
		return true
	}
	switch {
	case c == 0x00b7, c == 0x200c, c == 0x200d, c == 0x203f, c == 0x2040:
		return true
	case c >= 0x00c0 && c <= 0x00d6,
		c >= 0x00d8 && c <= 0x00f6,
		c >= 0x00f8 && c <= 0x037d,
		c >= 0x037f && c <= 0x1fff,
		c >= 0x2070 && c <= 0x218f,
		c >= 0x2c00 && c <= 0x2fef,
		c >= 0x3001 && c <= 0xd7ff,
		c >= 0xf900 && c <= 0xfdcf,
		c >= 0xfdf0 && c <= 0xfffd:
		return true
	}
	return false
}

func isIdentStart(c rune) bool {
	if c < 128 {
		return c >= 0 && asciiStart[c]
	}
	return isNonASCIIIdent(c)
}

func isIdent(c rune) bool {
	if c < 128 {
		return c >= 0 && byteIsIdent[c]
	}
	return isNonASCIIIdent(c)
}

func isIdentStartSequence(c, c2, c3 rune) bool {
	if c == '-' {
		return c2 == '-' || isIdentStart(c2) || isEscapeSequence(c2, c3)
	}
	return isIdentStart(c) || isEscapeSequence(c, c2)
}

func isURLIdent(s string) bool {
	return len(s) == 3 &&
		(s[0] == 'u' || s[0] == 'U') &&
		(s[1] == 'r' || s[1] == 'R') &&
		(s[2] == 'l' || s[2] == 'L')
}

// IsIdentStartSequence reports whether s begins with a sequence that would
// start an identifier.
func IsIdentStartSequence(s string) bool {
	c, n := decodeRune(s)
	c2, n2 := decodeRune(s[n:])
	c3, _ := decodeRune(s[n+n2:])
	return isIdentStartSequence(c, c2, c3)
}

// decodeRune returns eof for an empty string. Invalid UTF-8 decodes as the
// replacement character with width 1.
func decodeRune(s string) (rune, int) {
	if len(s) == 0 {
		return eof, 0
	}
	if s[0] < utf8.RuneSelf {
		return rune(s[0]), 1
	}
	return utf8.DecodeRuneInString(s)
}
