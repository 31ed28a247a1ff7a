// Package lexer implements the CSS tokenizer and the compact Token/Cursor
// model that the parser substrate is built on.
//
// Tokens never carry source text. They record enough facts (kind, length,
// flags, atom bits, numeric value) for a consumer to re-slice the source or
// to serialize a token stream without re-running the tokenizer.
package lexer

// Kind represents the kind of a lexical token.
type Kind uint8

const (
	KindEof Kind = iota
	KindWhitespace
	KindComment
	KindCdcOrCdo

	// Numerics
	KindNumber
	KindDimension

	// Malformed tokens
	KindBadString
	KindBadUrl

	// Ident-like
	KindIdent
	KindFunction
	KindAtKeyword
	KindHash
	KindString
	KindUrl

	// Delim-like
	KindDelim
	KindColon       // :
	KindSemicolon   // ;
	KindComma       // ,
	KindLeftSquare  // [
	KindRightSquare // ]
	KindLeftParen   // (
	KindRightParen  // )
	KindLeftCurly   // {
	KindRightCurly  // }

	kindCount
)

var kindNames = [kindCount]string{
	KindEof:         "Eof",
	KindWhitespace:  "Whitespace",
	KindComment:     "Comment",
	KindCdcOrCdo:    "CdcOrCdo",
	KindNumber:      "Number",
	KindDimension:   "Dimension",
	KindBadString:   "BadString",
	KindBadUrl:      "BadUrl",
	KindIdent:       "Ident",
	KindFunction:    "Function",
	KindAtKeyword:   "AtKeyword",
	KindHash:        "Hash",
	KindString:      "String",
	KindUrl:         "Url",
	KindDelim:       "Delim",
	KindColon:       "Colon",
	KindSemicolon:   "Semicolon",
	KindComma:       "Comma",
	KindLeftSquare:  "LeftSquare",
	KindRightSquare: "RightSquare",
	KindLeftParen:   "LeftParen",
	KindRightParen:  "RightParen",
	KindLeftCurly:   "LeftCurly",
	KindRightCurly:  "RightCurly",
}

// String returns the name of the kind.
func (k Kind) String() string {
	if k >= kindCount {
		return "Unknown"
	}
	return kindNames[k]
}

// IsTrivia reports whether tokens of this kind are whitespace or comments.
func (k Kind) IsTrivia() bool {
	return k == KindWhitespace || k == KindComment
}

// IsIdentLike reports whether the kind carries an identifier payload that
// may be interned as an atom.
func (k Kind) IsIdentLike() bool {
	return k >= KindIdent && k <= KindUrl
}

// IsDelimLike reports whether the kind is a single character token.
func (k Kind) IsDelimLike() bool {
	return k >= KindDelim && k < kindCount
}

// KindSet is a bitmask of token kinds, used for stop and skip sets.
type KindSet uint32

// Common kind sets.
const (
	KindSetNone                 KindSet = 0
	KindSetAny                  KindSet = 1<<kindCount - 1
	KindSetWhitespace           KindSet = 1 << KindWhitespace
	KindSetComments             KindSet = 1 << KindComment
	KindSetTrivia               KindSet = KindSetWhitespace | KindSetComments
	KindSetIdentLike            KindSet = 1<<KindIdent | 1<<KindFunction | 1<<KindAtKeyword | 1<<KindHash | 1<<KindString | 1<<KindUrl
	KindSetNumeric              KindSet = 1<<KindNumber | 1<<KindDimension
	KindSetRightCurlyOrSemi     KindSet = 1<<KindRightCurly | 1<<KindSemicolon
	KindSetLeftCurlyOrSemi      KindSet = 1<<KindLeftCurly | 1<<KindSemicolon
	KindSetLeftCurlyRightParen  KindSet = 1<<KindLeftCurly | 1<<KindRightParen | 1<<KindSemicolon
	KindSetRightParen           KindSet = 1 << KindRightParen
	KindSetRightSquare          KindSet = 1 << KindRightSquare
	KindSetRightCurly           KindSet = 1 << KindRightCurly
	KindSetBad                  KindSet = 1<<KindBadString | 1<<KindBadUrl
	KindSetCloseBrackets        KindSet = 1<<KindRightParen | 1<<KindRightSquare | 1<<KindRightCurly
	KindSetDeclarationTerminals KindSet = KindSetRightCurlyOrSemi
)

// NewKindSet builds a set from the given kinds.
func NewKindSet(kinds ...Kind) KindSet {
	var s KindSet
	for _, k := range kinds {
		s |= 1 << k
	}
	return s
}

// Contains reports whether k is a member of the set.
func (s KindSet) Contains(k Kind) bool {
	return s&(1<<k) != 0
}

// With returns the union of the set and the given kinds.
func (s KindSet) With(kinds ...Kind) KindSet {
	return s | NewKindSet(kinds...)
}

// Without returns the set with the given kinds removed.
func (s KindSet) Without(kinds ...Kind) KindSet {
	return s &^ NewKindSet(kinds...)
}

// Kinds lists the members of the set in ascending order.
func (s KindSet) Kinds() []Kind {
	var out []Kind
	for k := Kind(0); k < kindCount; k++ {
		if s.Contains(k) {
			out = append(out, k)
		}
	}
	return out
}

// PairWise identifies a bracket pair.
type PairWise uint8

const (
	PairNone PairWise = iota
	PairParen
	PairSquare
	PairCurly
)

// PairWiseOf returns the pair a token opens or closes. Function tokens open
// a paren pair.
func PairWiseOf(k Kind) PairWise {
	switch k {
	case KindLeftParen, KindRightParen, KindFunction:
		return PairParen
	case KindLeftSquare, KindRightSquare:
		return PairSquare
	case KindLeftCurly, KindRightCurly:
		return PairCurly
	}
	return PairNone
}

// End returns the closing kind for the pair.
func (p PairWise) End() Kind {
	switch p {
	case PairParen:
		return KindRightParen
	case PairSquare:
		return KindRightSquare
	case PairCurly:
		return KindRightCurly
	}
	return KindEof
}

// Start returns the opening kind for the pair.
func (p PairWise) Start() Kind {
	switch p {
	case PairParen:
		return KindLeftParen
	case PairSquare:
		return KindLeftSquare
	case PairCurly:
		return KindLeftCurly
	}
	return KindEof
}
