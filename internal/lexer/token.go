package lexer

import (
	"fmt"
	"math"
	"strings"
)

// Token is an immutable description of one lexical unit. It holds no source
// text: two tokens lexed from byte-identical spans compare equal with ==.
//
// The meaning of the flag bits depends on the kind:
//
//	Number     001 float       010 has sign       100 sign required
//	Dimension  001 float       010 has sign       100 sign required   1000 unit escaped
//	String     001 double      010 close quote    100 escaped
//	Ident      001 non-lower   010 dashed         100 escaped
//	Function   001 non-lower   010 dashed         100 escaped
//	AtKeyword  001 non-lower   010 dashed         100 escaped
//	Hash       001 non-lower   010 id-like        100 escaped
//	Url        001 close paren 010 leading space  100 escaped
//	CdcOrCdo   001 is CDC
//	Whitespace WhitespaceStyle
//	Comment    CommentStyle            1000 closed
//	Delim-like AssociatedWhitespaceRules
type Token struct {
	kind  Kind
	flags uint8
	len   uint32
	lead  uint32 // numeric length of a dimension, leading length of a url
	trail uint32 // trailing length of a url
	data  uint32 // atom bits, delimiter rune, hex colour or float32 bits
	unit  uint32 // unit atom bits of a dimension
}

const (
	flag1 uint8 = 0b0001
	flag2 uint8 = 0b0010
	flag3 uint8 = 0b0100
	flag4 uint8 = 0b1000
)

// Predefined tokens.
var (
	TokenEOF         = Token{}
	TokenCDO         = Token{kind: KindCdcOrCdo, len: 4}
	TokenCDC         = Token{kind: KindCdcOrCdo, flags: flag1, len: 3}
	TokenSpace       = newWhitespace(WhitespaceSpace, 1)
	TokenTab         = newWhitespace(WhitespaceTab, 1)
	TokenNewline     = newWhitespace(WhitespaceNewline, 1)
	TokenNumberZero  = newNumber(false, false, 1, 0)
	TokenColon       = newDelimKind(KindColon, ':')
	TokenSemicolon   = newDelimKind(KindSemicolon, ';')
	TokenComma       = newDelimKind(KindComma, ',')
	TokenLeftSquare  = newDelimKind(KindLeftSquare, '[')
	TokenRightSquare = newDelimKind(KindRightSquare, ']')
	TokenLeftParen   = newDelimKind(KindLeftParen, '(')
	TokenRightParen  = newDelimKind(KindRightParen, ')')
	TokenLeftCurly   = newDelimKind(KindLeftCurly, '{')
	TokenRightCurly  = newDelimKind(KindRightCurly, '}')
	TokenBang        = NewDelim('!')
	TokenHash        = NewDelim('#')
	TokenPercent     = NewDelim('%')
	TokenAsterisk    = NewDelim('*')
	TokenPlus        = NewDelim('+')
	TokenDash        = NewDelim('-')
	TokenPeriod      = NewDelim('.')
	TokenSlash       = NewDelim('/')
	TokenLessThan    = NewDelim('<')
	TokenGreaterThan = NewDelim('>')
	TokenAt          = NewDelim('@')
	TokenBackslash   = NewDelim('\\')
	TokenReplacement = NewDelim(replacement)
)

// Dummy creates a token of the given kind with no other data. Dummy tokens
// are used for synthesized cursors.
func Dummy(kind Kind) Token {
	return Token{kind: kind}
}

// DummyIdent creates an empty ident token.
func DummyIdent() Token {
	return Token{kind: KindIdent}
}

// NewDelim creates a delimiter token for r.
func NewDelim(r rune) Token {
	return Token{kind: KindDelim, data: uint32(r), len: uint32(runeLen(r))}
}

// NewInterned creates an ident-like token for a known atom. len is the
// length of the name; function and at-keyword tokens add their marker.
func NewInterned(kind Kind, bits uint32, n uint32) Token {
	if kind != KindIdent {
		n++
	}
	return Token{kind: kind, data: bits, len: n}
}

func newDelimKind(kind Kind, r rune) Token {
	return Token{kind: kind, data: uint32(r), len: 1}
}

func newWhitespace(style WhitespaceStyle, n uint32) Token {
	return Token{kind: KindWhitespace, flags: uint8(style), len: n}
}

func newComment(style CommentStyle, closed bool, n uint32) Token {
	return Token{kind: KindComment, flags: uint8(style) | bit(closed, flag4), len: n}
}

func newNumber(isFloat, hasSign bool, n uint32, value float32) Token {
	return Token{kind: KindNumber, flags: bit(isFloat, flag1) | bit(hasSign, flag2), len: n, lead: n, data: math.Float32bits(value)}
}

func newDimension(isFloat, hasSign, unitEscaped bool, numLen, unitLen uint32, value float32, unit uint32) Token {
	return Token{
		kind:  KindDimension,
		flags: bit(isFloat, flag1) | bit(hasSign, flag2) | bit(unitEscaped, flag4),
		len:   numLen + unitLen,
		lead:  numLen,
		data:  math.Float32bits(value),
		unit:  unit,
	}
}

func newIdentLike(kind Kind, nonLower, dashed, escaped bool, atom, n uint32) Token {
	return Token{kind: kind, flags: bit(nonLower, flag1) | bit(dashed, flag2) | bit(escaped, flag3), len: n, data: atom}
}

func newHash(nonLower, idLike, escaped bool, n, hex uint32) Token {
	return Token{kind: KindHash, flags: bit(nonLower, flag1) | bit(idLike, flag2) | bit(escaped, flag3), len: n, data: hex}
}

func newString(quotes QuoteStyle, closed, escaped bool, n uint32) Token {
	return Token{kind: KindString, flags: bit(quotes == QuoteDouble, flag1) | bit(closed, flag2) | bit(escaped, flag3), len: n}
}

func newURL(closed, leadingSpace, escaped bool, leading, trailing, n uint32) Token {
	return Token{
		kind:  KindUrl,
		flags: bit(closed, flag1) | bit(leadingSpace, flag2) | bit(escaped, flag3),
		len:   n,
		lead:  leading,
		trail: trailing,
	}
}

func bit(b bool, f uint8) uint8 {
	if b {
		return f
	}
	return 0
}

func runeLen(r rune) int {
	switch {
	case r < 0x80:
		return 1
	case r < 0x800:
		return 2
	case r < 0x10000:
		return 3
	}
	return 4
}

// Kind returns the token's kind.
func (t Token) Kind() Kind { return t.kind }

// Is reports whether the token has kind k.
func (t Token) Is(k Kind) bool { return t.kind == k }

// In reports whether the token's kind is a member of s.
func (t Token) In(s KindSet) bool { return s.Contains(t.kind) }

// Len returns the number of source bytes the token covers.
func (t Token) Len() uint32 { return t.len }

// IsEmpty reports whether the token covers no source.
func (t Token) IsEmpty() bool { return t.len == 0 }

// IsTrivia reports whether the token is whitespace or a comment.
func (t Token) IsTrivia() bool { return t.kind.IsTrivia() }

// Char returns the character of a delimiter-like token.
func (t Token) Char() (rune, bool) {
	if t.kind.IsDelimLike() {
		return rune(t.data), true
	}
	return 0, false
}

// IsChar reports whether the token is a delimiter-like token for r.
func (t Token) IsChar(r rune) bool {
	c, ok := t.Char()
	return ok && c == r
}

func (t Token) isNumeric() bool {
	return t.kind == KindNumber || t.kind == KindDimension
}

// IsInt reports whether a numeric token has no fraction or exponent.
func (t Token) IsInt() bool { return t.isNumeric() && t.flags&flag1 == 0 }

// IsFloat reports whether a numeric token has a fraction or exponent.
func (t Token) IsFloat() bool { return t.isNumeric() && t.flags&flag1 != 0 }

// HasSign reports whether a numeric token was written with a leading sign.
func (t Token) HasSign() bool { return t.isNumeric() && t.flags&flag2 != 0 }

// SignIsRequired reports whether serialization must keep the sign.
func (t Token) SignIsRequired() bool { return t.isNumeric() && t.flags&flag3 != 0 }

// WithSignRequired marks a numeric token as requiring its sign.
func (t Token) WithSignRequired() Token {
	if t.isNumeric() {
		t.flags |= flag3
	}
	return t
}

// NumericLen returns the length of the numeric part of a number or
// dimension.
func (t Token) NumericLen() uint32 {
	if t.isNumeric() {
		return t.lead
	}
	return 0
}

// Value returns the numeric value of a number or dimension.
func (t Token) Value() float32 {
	if t.isNumeric() {
		return math.Float32frombits(t.data)
	}
	return 0
}

// WhitespaceStyle returns the style of a whitespace token.
func (t Token) WhitespaceStyle() WhitespaceStyle {
	if t.kind == KindWhitespace {
		return WhitespaceStyle(t.flags)
	}
	return 0
}

// AssociatedWhitespace returns the whitespace rules of a delimiter-like
// token.
func (t Token) AssociatedWhitespace() AssociatedWhitespaceRules {
	if t.kind.IsDelimLike() {
		return AssociatedWhitespaceRules(t.flags) & whitespaceRulesMask
	}
	return 0
}

// WithAssociatedWhitespace replaces the whitespace rules of a
// delimiter-like token. Other tokens are returned unchanged.
func (t Token) WithAssociatedWhitespace(rules AssociatedWhitespaceRules) Token {
	if t.kind.IsDelimLike() {
		t.flags = uint8(rules & whitespaceRulesMask)
	}
	return t
}

// CommentStyle returns the style of a comment token.
func (t Token) CommentStyle() (CommentStyle, bool) {
	if t.kind == KindComment {
		return CommentStyle(t.flags &^ flag4), true
	}
	return 0, false
}

// QuoteStyle returns the quote style of a string token.
func (t Token) QuoteStyle() QuoteStyle {
	if t.kind != KindString {
		return QuoteNone
	}
	if t.flags&flag1 != 0 {
		return QuoteDouble
	}
	return QuoteSingle
}

// WithQuotes changes the quote style of a string token.
func (t Token) WithQuotes(q QuoteStyle) Token {
	if t.kind != KindString || q == QuoteNone {
		return t
	}
	t.flags = t.flags&^flag1 | bit(q == QuoteDouble, flag1)
	return t
}

// HasCloseQuote reports whether a string token was terminated.
func (t Token) HasCloseQuote() bool {
	return t.kind == KindString && t.flags&flag2 != 0
}

// ContainsEscape reports whether the token's text contains escapes (or NUL
// characters) that must be decoded to obtain its value.
func (t Token) ContainsEscape() bool {
	switch t.kind {
	case KindIdent, KindFunction, KindAtKeyword, KindHash, KindString, KindUrl:
		return t.flags&flag3 != 0
	case KindDimension:
		return t.flags&flag4 != 0
	}
	return false
}

// IsDashedIdent reports whether an ident-like token starts with `--`.
func (t Token) IsDashedIdent() bool {
	switch t.kind {
	case KindIdent, KindFunction, KindAtKeyword:
		return t.flags&flag2 != 0
	}
	return false
}

// IsLowerCase reports whether an ident-like token contains only lower case
// ASCII characters.
func (t Token) IsLowerCase() bool {
	switch t.kind {
	case KindIdent, KindFunction, KindAtKeyword, KindHash:
		return t.flags&flag1 == 0
	}
	return false
}

// AtomBits returns the interned atom of an ident, function or at-keyword, or
// of a dimension's unit. Zero means no atom matched.
func (t Token) AtomBits() uint32 {
	switch t.kind {
	case KindIdent, KindFunction, KindAtKeyword:
		return t.data
	case KindDimension:
		return t.unit
	}
	return 0
}

// URLHasLeadingSpace reports whether a url token has whitespace after `(`.
func (t Token) URLHasLeadingSpace() bool {
	return t.kind == KindUrl && t.flags&flag2 != 0
}

// URLHasClosingParen reports whether a url token was terminated by `)`.
func (t Token) URLHasClosingParen() bool {
	return t.kind == KindUrl && t.flags&flag1 != 0
}

// HashIsIDLike reports whether a hash token's name is a valid identifier.
func (t Token) HashIsIDLike() bool {
	return t.kind == KindHash && t.flags&flag2 != 0
}

// HexValue returns the RGBA value of a hash token that spells a 3, 4, 6 or
// 8 digit hex colour, or 0.
func (t Token) HexValue() uint32 {
	if t.kind == KindHash {
		return t.data
	}
	return 0
}

// IsBad reports whether the token is a bad string or bad url.
func (t Token) IsBad() bool {
	return t.kind == KindBadString || t.kind == KindBadUrl
}

// IsCDC reports whether the token is `-->`.
func (t Token) IsCDC() bool {
	return t.kind == KindCdcOrCdo && t.flags&flag1 != 0
}

// IsCDO reports whether the token is `<!--`.
func (t Token) IsCDO() bool {
	return t.kind == KindCdcOrCdo && t.flags&flag1 == 0
}

// LeadingLen returns the length of the token's leading marker: `@`, `#`,
// the opening quote, `/*`, the numeric part of a dimension or the `url(`
// prefix of a url.
func (t Token) LeadingLen() uint32 {
	switch t.kind {
	case KindAtKeyword, KindHash, KindString:
		return 1
	case KindDimension:
		return t.lead
	case KindComment:
		return 2
	case KindUrl:
		return t.lead
	}
	return 0
}

// TrailingLen returns the length of the token's trailing marker: the `(` of
// a function, a closing quote, `*/` or the closing part of a url.
func (t Token) TrailingLen() uint32 {
	switch t.kind {
	case KindFunction:
		return 1
	case KindString:
		if t.HasCloseQuote() {
			return 1
		}
	case KindComment:
		if style, _ := t.CommentStyle(); style.IsBlock() && t.flags&flag4 != 0 {
			return 2
		}
	case KindUrl:
		return t.trail
	}
	return 0
}

// PairWise returns the bracket pair the token opens or closes.
func (t Token) PairWise() PairWise {
	return PairWiseOf(t.kind)
}

// WithCursor pairs the token with a source offset.
func (t Token) WithCursor(offset SourceOffset) Cursor {
	return Cursor{Offset: offset, Token: t}
}

// NeedsSeparatorFor reports whether writing t immediately followed by next
// would re-tokenize differently, so a separator must be written between
// them.
func (t Token) NeedsSeparatorFor(next Token) bool {
	if t.NeedsNewlineAfter() {
		return next.kind != KindWhitespace
	}
	if next.kind == KindEof {
		return false
	}
	if (next.AssociatedWhitespace().Has(EnforceBefore) && t.kind != KindWhitespace) ||
		(t.AssociatedWhitespace().Has(EnforceAfter) && next.kind != KindWhitespace) {
		return true
	}
	if t.AssociatedWhitespace().Has(BanAfter) {
		return false
	}
	nextIsIdentish := next.kind == KindIdent || next.kind == KindFunction || next.kind == KindUrl || next.kind == KindBadUrl
	nextIsNumeric := next.isNumeric()
	// A leading `+` cannot merge into the previous token, a leading `-` can.
	nextNumberMerges := nextIsNumeric && (!next.HasSign() || math.Signbit(float64(next.Value())))
	switch t.kind {
	case KindIdent:
		return nextNumberMerges || nextIsIdentish || next.IsChar('(') || next.IsChar('-') || next.IsCDC() ||
			(t.len == 2 && t.IsDashedIdent() && next.IsChar('>'))
	case KindAtKeyword, KindHash, KindDimension:
		return nextNumberMerges || nextIsIdentish || next.IsChar('-') || next.IsCDC()
	case KindNumber:
		return nextIsIdentish || nextIsNumeric || next.IsChar('%') || next.IsCDC()
	}
	c, ok := t.Char()
	if !ok {
		return false
	}
	switch c {
	case '#', '-':
		return nextIsIdentish || nextIsNumeric || next.IsChar('-') || next.IsCDC()
	case '@':
		return nextIsIdentish || next.IsChar('-') || next.IsCDC()
	case '.', '+':
		return nextIsNumeric
	case '/':
		return next.IsChar('*') || next.IsChar('/')
	case '!':
		// After `<`, a following `--` opens a CDO.
		return next.IsCDC() || ((next.kind == KindIdent || next.kind == KindFunction) && next.IsDashedIdent())
	}
	return false
}

// NeedsNewlineAfter reports whether t only tokenizes as itself when a
// newline follows it, even at the end of input. A lone backslash would otherwise
// escape the next code point and a bad string would run on.
func (t Token) NeedsNewlineAfter() bool {
	return t.kind == KindBadString || t.IsChar('\\')
}

// Separator returns the whitespace to write between t and a token it would
// otherwise merge with.
func (t Token) Separator() Token {
	if t.NeedsNewlineAfter() {
		return TokenNewline
	}
	return TokenSpace
}

// String renders a debugging description of the token.
func (t Token) String() string {
	var b strings.Builder
	b.WriteString(t.kind.String())
	switch {
	case t.kind == KindEof:
	case t.isNumeric():
		fmt.Fprintf(&b, "(value=%g len=%d", t.Value(), t.len)
		if t.kind == KindDimension {
			fmt.Fprintf(&b, " unit=%d", t.unit)
		}
		b.WriteString(")")
	case t.kind.IsDelimLike():
		fmt.Fprintf(&b, "(%q", rune(t.data))
		if r := t.AssociatedWhitespace(); r != 0 {
			fmt.Fprintf(&b, " %s", r)
		}
		b.WriteString(")")
	case t.kind == KindWhitespace:
		fmt.Fprintf(&b, "(%s len=%d)", t.WhitespaceStyle(), t.len)
	case t.kind == KindComment:
		style, _ := t.CommentStyle()
		fmt.Fprintf(&b, "(%s len=%d)", style, t.len)
	case t.kind == KindHash:
		fmt.Fprintf(&b, "(len=%d hex=%#08x)", t.len, t.data)
	default:
		fmt.Fprintf(&b, "(len=%d", t.len)
		if t.data != 0 {
			fmt.Fprintf(&b, " atom=%d", t.data)
		}
		b.WriteString(")")
	}
	return b.String()
}
