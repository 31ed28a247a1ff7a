package lexer

import "strings"

// AssociatedWhitespaceRules describes how a delimiter relates to the
// whitespace around it when serialized. Only the three defined bits are
// meaningful.
type AssociatedWhitespaceRules uint8

const (
	// EnforceBefore requires whitespace before the token unless the previous
	// token is already whitespace.
	EnforceBefore AssociatedWhitespaceRules = 0b100
	// EnforceAfter requires a separator after the token.
	EnforceAfter AssociatedWhitespaceRules = 0b010
	// BanAfter forbids whitespace after the token.
	BanAfter AssociatedWhitespaceRules = 0b001

	whitespaceRulesMask AssociatedWhitespaceRules = 0b111
)

// Has reports whether all bits in r are set.
func (a AssociatedWhitespaceRules) Has(r AssociatedWhitespaceRules) bool {
	return a&r == r && r != 0
}

func (a AssociatedWhitespaceRules) String() string {
	if a == 0 {
		return "none"
	}
	var parts []string
	if a.Has(EnforceBefore) {
		parts = append(parts, "enforce-before")
	}
	if a.Has(EnforceAfter) {
		parts = append(parts, "enforce-after")
	}
	if a.Has(BanAfter) {
		parts = append(parts, "ban-after")
	}
	return strings.Join(parts, "|")
}

// WhitespaceStyle records which whitespace characters a whitespace token
// contains.
type WhitespaceStyle uint8

const (
	WhitespaceSpace   WhitespaceStyle = 0b001
	WhitespaceTab     WhitespaceStyle = 0b010
	WhitespaceNewline WhitespaceStyle = 0b100
)

// Has reports whether the style includes s.
func (w WhitespaceStyle) Has(s WhitespaceStyle) bool {
	return w&s != 0
}

func (w WhitespaceStyle) String() string {
	var parts []string
	if w.Has(WhitespaceSpace) {
		parts = append(parts, "space")
	}
	if w.Has(WhitespaceTab) {
		parts = append(parts, "tab")
	}
	if w.Has(WhitespaceNewline) {
		parts = append(parts, "newline")
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

// CommentStyle is the flavour of a comment token, determined by the
// characters following its opening marker.
type CommentStyle uint8

const (
	CommentBlock        CommentStyle = iota // /* */
	CommentBlockStar                        // /** */
	CommentBlockBang                        // /*! */
	CommentBlockPound                       // /*# */
	CommentBlockHeading                     // /*- */ or /*= */
	CommentSingle                           // //
	CommentSingleStar                       // //*
	CommentSingleBang                       // //!
)

// IsBlock reports whether the comment uses /* */ delimiters.
func (c CommentStyle) IsBlock() bool {
	return c <= CommentBlockHeading
}

func (c CommentStyle) String() string {
	switch c {
	case CommentBlock:
		return "block"
	case CommentBlockStar:
		return "block-star"
	case CommentBlockBang:
		return "block-bang"
	case CommentBlockPound:
		return "block-pound"
	case CommentBlockHeading:
		return "block-heading"
	case CommentSingle:
		return "single"
	case CommentSingleStar:
		return "single-star"
	case CommentSingleBang:
		return "single-bang"
	}
	return "unknown"
}

// QuoteStyle is the quote character used by a string token.
type QuoteStyle uint8

const (
	QuoteNone QuoteStyle = iota
	QuoteSingle
	QuoteDouble
)

// Rune returns the quote character, or 0 for QuoteNone.
func (q QuoteStyle) Rune() rune {
	switch q {
	case QuoteSingle:
		return '\''
	case QuoteDouble:
		return '"'
	}
	return 0
}

// Feature toggles optional tokenizer behaviour.
type Feature uint8

const (
	// SingleLineComments lexes `//` to end of line as a comment.
	SingleLineComments Feature = 1 << iota
	// SeparateWhitespace emits one whitespace token per run of identical
	// whitespace characters instead of merging them.
	SeparateWhitespace
)

// Has reports whether f enables g.
func (f Feature) Has(g Feature) bool {
	return f&g != 0
}
