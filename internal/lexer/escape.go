package lexer

// DecodeEscape decodes the escape sequence that follows a backslash. s must
// start immediately after the backslash. It returns the decoded rune and the
// number of bytes consumed from s.
//
// Up to six hex digits are consumed, followed by at most one whitespace
// character (CR LF counts as one). Zero, surrogates and values past the
// Unicode range decode to U+FFFD. A non-hex character decodes to itself. An
// empty s decodes to U+FFFD with nothing consumed.
func DecodeEscape(s string) (rune, int) {
	c, n := decodeRune(s)
	if n == 0 {
		return replacement, 0
	}
	if !isHexDigit(c) {
		return c, n
	}
	value := hexValue(c)
	i := 1
	for i < 6 && i < len(s) && isHexDigit(rune(s[i])) {
		value = value<<4 | hexValue(rune(s[i]))
		i++
	}
	i += escapeWhitespaceLen(s[i:])
	return codepointToRune(value), i
}

func escapeWhitespaceLen(s string) int {
	if len(s) == 0 || !isWhitespace(rune(s[0])) {
		return 0
	}
	if s[0] == '\r' && len(s) > 1 && s[1] == '\n' {
		return 2
	}
	return 1
}

func codepointToRune(value uint32) rune {
	if value == 0 || (value >= 0xd800 && value <= 0xdfff) || value > 0x10ffff {
		return replacement
	}
	return rune(value)
}

// escapeLen returns the number of bytes an escape occupies in s, where s
// starts immediately after the backslash.
func escapeLen(s string) int {
	_, n := DecodeEscape(s)
	return n
}
