package lexer

import (
	"strconv"
	"unicode/utf8"
)

// singleChar holds tokens for ASCII bytes that always lex as a single
// character. A zero Token means the byte needs more context.
var singleChar [128]Token

func init() {
	for _, t := range []Token{
		TokenColon, TokenSemicolon, TokenComma,
		TokenLeftSquare, TokenRightSquare,
		TokenLeftParen, TokenRightParen,
		TokenLeftCurly, TokenRightCurly,
	} {
		singleChar[t.data] = t
	}
	for _, c := range "!$%&*=>?^`|~" {
		singleChar[c] = NewDelim(c)
	}
}

func (l *Lexer) readToken(offset int) Token {
	if offset >= len(l.source) {
		return TokenEOF
	}
	s := l.source[offset:]
	c := s[0]
	if c < utf8.RuneSelf {
		if t := singleChar[c]; t != TokenEOF {
			return t
		}
		if asciiStart[c] {
			return l.consumeIdentLike(s)
		}
	}
	switch {
	case c == 0:
		// NUL reads as U+FFFD, which starts an identifier.
		return l.consumeIdentLike(s)
	case c < utf8.RuneSelf && asciiSpace[c]:
		return l.consumeWhitespaceToken(s)
	case c == '"' || c == '\'':
		return consumeString(s)
	case isDigit(c):
		return l.consumeNumeric(s)
	}
	switch c {
	case '-':
		if len(s) >= 3 && s[1] == '-' && s[2] == '>' {
			return TokenCDC
		}
		if IsIdentStartSequence(s) {
			return l.consumeIdentLike(s)
		}
		if isNumberStart(s) {
			return l.consumeNumeric(s)
		}
		return TokenDash
	case '.', '+':
		if isNumberStart(s) {
			return l.consumeNumeric(s)
		}
		return NewDelim(rune(c))
	case '<':
		if len(s) >= 4 && s[1:4] == "!--" {
			return TokenCDO
		}
		return TokenLessThan
	case '#':
		r1, n1 := decodeRune(s[1:])
		r2, _ := decodeRune(s[1+n1:])
		if n1 > 0 && (isIdent(r1) || r1 == 0 || isEscapeSequence(r1, r2)) {
			return l.consumeHash(s)
		}
		return TokenHash
	case '@':
		if IsIdentStartSequence(s[1:]) {
			id := l.consumeIdentSequence(s[1:])
			return newIdentLike(KindAtKeyword, id.nonLower, id.dashed, id.escaped, id.atom, uint32(id.n+1))
		}
		return TokenAt
	case '\\':
		r1, _ := decodeRune(s[1:])
		if isEscapeSequence('\\', r1) {
			return l.consumeIdentLike(s)
		}
		return TokenBackslash
	case '/':
		if len(s) >= 2 && s[1] == '*' {
			return consumeBlockComment(s)
		}
		if len(s) >= 2 && s[1] == '/' && l.features.Has(SingleLineComments) {
			return consumeLineComment(s)
		}
		return TokenSlash
	}
	r, w := decodeRune(s)
	if isIdentStart(r) {
		return l.consumeIdentLike(s)
	}
	t := NewDelim(r)
	t.len = uint32(w)
	return t
}

func (l *Lexer) consumeWhitespaceToken(s string) Token {
	if !l.features.Has(SeparateWhitespace) {
		n, style := consumeWhitespace(s)
		return newWhitespace(style, uint32(n))
	}
	switch s[0] {
	case ' ', '\t':
		n := 1
		for n < len(s) && s[n] == s[0] {
			n++
		}
		if s[0] == ' ' {
			return newWhitespace(WhitespaceSpace, uint32(n))
		}
		return newWhitespace(WhitespaceTab, uint32(n))
	}
	n := 0
	for n < len(s) && isNewline(rune(s[n])) {
		n++
	}
	return newWhitespace(WhitespaceNewline, uint32(n))
}

func consumeWhitespace(s string) (int, WhitespaceStyle) {
	var style WhitespaceStyle
	n := 0
	for n < len(s) && s[n] < utf8.RuneSelf && asciiSpace[s[n]] {
		switch s[n] {
		case ' ':
			style |= WhitespaceSpace
		case '\t':
			style |= WhitespaceTab
		default:
			style |= WhitespaceNewline
		}
		n++
	}
	return n, style
}

type identSequence struct {
	n        int
	nonLower bool
	dashed   bool
	escaped  bool
	atom     uint32
	isURL    bool
}

// consumeIdentSequence reads the longest identifier at the start of s.
func (l *Lexer) consumeIdentSequence(s string) identSequence {
	var id identSequence
	i := 0
	if len(s) >= 2 && s[0] == '-' && s[1] == '-' {
		i = 2
		id.dashed = true
	}
	scanStart := i
	for i < len(s) && byteIsIdent[s[i]] {
		id.nonLower = id.nonLower || s[i]-'A' < 26
		i++
	}
	if i > scanStart {
		next := byte(' ')
		if i < len(s) {
			next = s[i]
		}
		if next < utf8.RuneSelf && !byteIsIdent[next] && next != '\\' && next != 0 {
			id.n = i
			if !id.dashed {
				id.atom = l.atoms.Bits(s[scanStart:i])
			}
			id.isURL = !id.dashed && isURLIdent(s[:i])
			return id
		}
	}

	// Slow path: escapes, NUL or non-ASCII. The decoded name is collected in
	// scratch so atoms match regardless of spelling.
	l.scratch = l.scratch[:0]
	n := 0
	if id.dashed {
		n = 2
	}
	for n < len(s) {
		c, w := decodeRune(s[n:])
		switch {
		case c < utf8.RuneSelf && c > 0 && byteIsIdent[c]:
			id.nonLower = id.nonLower || (c >= 'A' && c <= 'Z')
			l.scratch = append(l.scratch, byte(c))
			n++
		case c >= utf8.RuneSelf && isNonASCIIIdent(c):
			id.nonLower = true
			l.scratch = append(l.scratch, s[n:n+w]...)
			n += w
		case c == 0:
			id.escaped = true
			l.scratch = utf8.AppendRune(l.scratch, replacement)
			n++
		case c == '\\':
			next, _ := decodeRune(s[n+1:])
			if !isEscapeSequence(c, next) {
				return l.finishIdent(id, n)
			}
			r, m := DecodeEscape(s[n+1:])
			id.escaped = true
			l.scratch = utf8.AppendRune(l.scratch, r)
			n += 1 + m
		default:
			return l.finishIdent(id, n)
		}
	}
	return l.finishIdent(id, n)
}

func (l *Lexer) finishIdent(id identSequence, n int) identSequence {
	id.n = n
	// Custom identifiers never intern as keywords.
	if !id.dashed {
		id.atom = l.atoms.BitsBytes(l.scratch)
	}
	id.isURL = !id.dashed && isURLIdent(string(l.scratch))
	return id
}

func (l *Lexer) consumeIdentLike(s string) Token {
	id := l.consumeIdentSequence(s)
	n := id.n
	if n >= len(s) || s[n] != '(' {
		return newIdentLike(KindIdent, id.nonLower, id.dashed, id.escaped, id.atom, uint32(n))
	}
	n++
	if id.isURL {
		ws, _ := consumeWhitespace(s[n:])
		if n+ws >= len(s) || !isQuote(rune(s[n+ws])) {
			return consumeURL(s, n, id.escaped)
		}
	}
	return newIdentLike(KindFunction, id.nonLower, id.dashed, id.escaped, id.atom, uint32(n))
}

// consumeURL reads an unquoted url token; leading is the length of the
// `url(` prefix already read.
func consumeURL(s string, leading int, escaped bool) Token {
	n := leading
	ws, _ := consumeWhitespace(s[n:])
	n += ws
	trailing := 0
	closed := false
loop:
	for n < len(s) {
		c, w := decodeRune(s[n:])
		switch {
		case c == ')':
			n++
			trailing++
			closed = true
			break loop
		case isWhitespace(c):
			t, _ := consumeWhitespace(s[n:])
			n += t
			trailing += t
			escaped = true
			if n >= len(s) {
				break loop
			}
			if s[n] == ')' {
				n++
				trailing++
				closed = true
				break loop
			}
			return consumeBadURLRemnants(s, n)
		case c == '"', c == '\'', c == '(', isNonPrintable(c):
			return consumeBadURLRemnants(s, n)
		case c == '\\':
			next, _ := decodeRune(s[n+1:])
			if !isEscapeSequence(c, next) {
				return consumeBadURLRemnants(s, n)
			}
			n += 1 + escapeLen(s[n+1:])
			escaped = true
		default:
			n += w
		}
	}
	return newURL(closed, ws > 0, escaped, uint32(leading+ws), uint32(trailing), uint32(n))
}

func consumeBadURLRemnants(s string, n int) Token {
	for n < len(s) {
		c, w := decodeRune(s[n:])
		n += w
		if c == ')' {
			break
		}
		if c == '\\' && n < len(s) {
			next, nw := decodeRune(s[n:])
			if isEscapeSequence(c, next) {
				n += escapeLen(s[n:])
			} else {
				n += nw
			}
		}
	}
	return Token{kind: KindBadUrl, len: uint32(n)}
}

func isNumberStart(s string) bool {
	if len(s) == 0 {
		return false
	}
	switch first := s[0]; {
	case isDigit(first):
		return true
	case first == '+' || first == '-':
		if len(s) < 2 {
			return false
		}
		return isDigit(s[1]) || (s[1] == '.' && len(s) >= 3 && isDigit(s[2]))
	case first == '.':
		return len(s) >= 2 && isDigit(s[1])
	}
	return false
}

func (l *Lexer) consumeNumeric(s string) Token {
	first := s[0]
	isFloat := first == '.'
	hasSign := first == '+' || first == '-'
	i := 1
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if !isFloat && i+1 < len(s) && s[i] == '.' && isDigit(s[i+1]) {
		i += 2
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		isFloat = true
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		var next, nextNext byte
		if i+1 < len(s) {
			next = s[i+1]
		}
		if i+2 < len(s) {
			nextNext = s[i+2]
		}
		if isDigit(next) || ((next == '-' || next == '+') && isDigit(nextNext)) {
			i += 2
			for i < len(s) && isDigit(s[i]) {
				i++
			}
			isFloat = true
		}
	}
	value, _ := strconv.ParseFloat(s[:i], 32)
	rest := s[i:]
	if len(rest) > 0 && rest[0] == '%' {
		return newDimension(isFloat, hasSign, false, uint32(i), 1, float32(value), l.atoms.Bits("%"))
	}
	if IsIdentStartSequence(rest) {
		unit := l.consumeIdentSequence(rest)
		return newDimension(isFloat, hasSign, unit.escaped, uint32(i), uint32(unit.n), float32(value), unit.atom)
	}
	return newNumber(isFloat, hasSign, uint32(i), float32(value))
}

func (l *Lexer) consumeHash(s string) Token {
	rest := s[1:]
	idLike := IsIdentStartSequence(rest)
	id := l.consumeIdentSequence(rest)
	n := id.n
	var hex uint32
	switch n {
	case 3, 4:
		hex = shortHex(rest[:n])
	case 6, 8:
		hex = longHex(rest[:n])
	}
	return newHash(id.nonLower, idLike, id.escaped, uint32(n+1), hex)
}

// shortHex expands #rgb and #rgba into an RGBA word.
func shortHex(s string) uint32 {
	var v uint32
	for i := 0; i < len(s); i++ {
		if !isHexDigit(rune(s[i])) {
			return 0
		}
		d := hexValue(rune(s[i]))
		v = v<<8 | d<<4 | d
	}
	if len(s) == 3 {
		v = v<<8 | 0xff
	}
	return v
}

// longHex reads #rrggbb and #rrggbbaa into an RGBA word.
func longHex(s string) uint32 {
	var v uint32
	for i := 0; i < len(s); i++ {
		if !isHexDigit(rune(s[i])) {
			return 0
		}
		v = v<<4 | hexValue(rune(s[i]))
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	return v
}

func consumeString(s string) Token {
	quote := s[0]
	quotes := QuoteSingle
	if quote == '"' {
		quotes = QuoteDouble
	}
	escaped := false
	n := 1
	for n < len(s) {
		c := s[n]
		switch {
		case isNewline(rune(c)):
			return Token{kind: KindBadString, len: uint32(n)}
		case c == quote:
			return newString(quotes, true, escaped, uint32(n+1))
		case c == 0:
			escaped = true
			n++
		case c == '\\':
			escaped = true
			n++
			if n >= len(s) {
				return newString(quotes, false, escaped, uint32(n))
			}
			if isNewline(rune(s[n])) {
				if s[n] == '\r' && n+1 < len(s) && s[n+1] == '\n' {
					n++
				}
				n++
			} else {
				n += escapeLen(s[n:])
			}
		default:
			_, w := decodeRune(s[n:])
			n += w
		}
	}
	return newString(quotes, false, escaped, uint32(n))
}

func consumeBlockComment(s string) Token {
	style := CommentBlock
	if len(s) > 2 {
		switch s[2] {
		case '*':
			if len(s) < 4 || s[3] != '/' {
				style = CommentBlockStar
			}
		case '#':
			style = CommentBlockPound
		case '!':
			style = CommentBlockBang
		case '-', '=':
			style = CommentBlockHeading
		}
	}
	n := 2
	for n < len(s) {
		if s[n] == '*' && n+1 < len(s) && s[n+1] == '/' {
			n += 2
			return newComment(style, true, uint32(n))
		}
		n++
	}
	return newComment(style, false, uint32(n))
}

func consumeLineComment(s string) Token {
	style := CommentSingle
	if len(s) > 2 {
		switch s[2] {
		case '*':
			style = CommentSingleStar
		case '!':
			style = CommentSingleBang
		}
	}
	n := 2
	for n < len(s) && !isNewline(rune(s[n])) && s[n] != 0 {
		n++
	}
	return newComment(style, true, uint32(n))
}
