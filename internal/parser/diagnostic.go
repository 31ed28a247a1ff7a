package parser

import (
	"fmt"
	"strings"

	"github.com/zjrosen/csskit/internal/lexer"
)

// DiagnosticKind identifies a class of parse error. Kinds implement error so
// they can be matched with errors.Is against any *Diagnostic of that kind.
type DiagnosticKind uint8

const (
	Unexpected DiagnosticKind = iota + 1
	UnexpectedEnd
	ExpectedEnd
	ExpectedIdent
	ExpectedIdentOf
	ExpectedKind
	ExpectedDelim
	UnexpectedIdent
	UnexpectedDelim
	UnexpectedCloseCurly
	BadDeclaration
	UnknownDeclaration
	UnclosedBlock
)

type kindInfo struct {
	code    string
	message string // may reference {found}, {text} and {want}
	help    string
	label   string
}

var kindInfos = map[DiagnosticKind]kindInfo{
	Unexpected: {
		code:    "Unexpected",
		message: "Unexpected `{found}`",
		help:    "This is not correct CSS syntax.",
		label:   "This wasn't expected here",
	},
	UnexpectedEnd: {
		code:    "UnexpectedEnd",
		message: "Expected more content but reached the end of the file.",
		help:    "Perhaps this file isn't finished yet?",
		label:   "The file ends here",
	},
	ExpectedEnd: {
		code:    "ExpectedEnd",
		message: "Expected this to be the end of the file, but there was more content.",
		help:    "Remove the trailing content or check for an unbalanced bracket.",
		label:   "All of this extra content was ignored.",
	},
	ExpectedIdent: {
		code:    "ExpectedIdent",
		message: "Expected an identifier but found `{found}`",
		help:    "This is not correct CSS syntax.",
		label:   "This should be an identifier",
	},
	ExpectedIdentOf: {
		code:    "ExpectedIdentOf",
		message: "Expected the identifier `{want}` but found `{text}`",
		help:    "Try changing `{text}` to `{want}`.",
		label:   "This should be `{want}`",
	},
	ExpectedKind: {
		code:    "ExpectedKind",
		message: "Expected {want} but found `{found}`",
		help:    "This is not correct CSS syntax.",
		label:   "Here",
	},
	ExpectedDelim: {
		code:    "ExpectedDelim",
		message: "Expected the delimiter `{want}` but saw `{found}`",
		help:    "This is not correct CSS syntax.",
		label:   "Here",
	},
	UnexpectedIdent: {
		code:    "UnexpectedIdent",
		message: "Unexpected identifier '{text}'",
		help:    "There is an extra word which shouldn't be in this position.",
		label:   "Try removing the word here.",
	},
	UnexpectedDelim: {
		code:    "UnexpectedDelim",
		message: "Unexpected delimiter '{text}'",
		help:    "Try removing the character.",
		label:   "This character wasn't understood",
	},
	UnexpectedCloseCurly: {
		code:    "UnexpectedCloseCurly",
		message: "Expected more content before this curly brace.",
		help:    "This needed more content here",
		label:   "Here",
	},
	BadDeclaration: {
		code:    "BadDeclaration",
		message: "This declaration wasn't understood, and so was disregarded.",
		help:    "The declaration contains invalid syntax, and will be ignored.",
		label:   "This is not valid syntax for a declaration.",
	},
	UnknownDeclaration: {
		code:    "UnknownDeclaration",
		message: "Ignored property due to parse error.",
		help:    "This property is going to be ignored because it doesn't look valid.",
		label:   "This property was ignored.",
	},
	UnclosedBlock: {
		code:    "UnclosedBlock",
		message: "Expected `{want}` to close this block.",
		help:    "Add the missing closing bracket.",
		label:   "This block is never closed",
	},
}

// Code returns the stable code of the kind, e.g. "css::ExpectedEnd".
func (k DiagnosticKind) Code() string {
	if info, ok := kindInfos[k]; ok {
		return "css::" + info.code
	}
	return "css::Unknown"
}

func (k DiagnosticKind) String() string {
	if info, ok := kindInfos[k]; ok {
		return info.code
	}
	return fmt.Sprintf("DiagnosticKind(%d)", uint8(k))
}

func (k DiagnosticKind) Error() string {
	return k.String()
}

// Diagnostic is a structural parse error spanning the cursors Start to End.
type Diagnostic struct {
	Kind  DiagnosticKind
	Start lexer.Cursor
	End   lexer.Cursor
	// Want is the expected spelling or kind name for the Expected* kinds.
	Want string
}

// NewDiagnostic creates a diagnostic covering a single cursor.
func NewDiagnostic(kind DiagnosticKind, c lexer.Cursor) *Diagnostic {
	return &Diagnostic{Kind: kind, Start: c, End: c}
}

// Expected creates an ExpectedKind diagnostic for c.
func Expected(want lexer.Kind, c lexer.Cursor) *Diagnostic {
	return NewDiagnostic(ExpectedKind, c).WithWant(want.String())
}

// WithEnd extends the diagnostic to end at c.
func (d *Diagnostic) WithEnd(c lexer.Cursor) *Diagnostic {
	d.End = c
	return d
}

// WithWant records the expected spelling.
func (d *Diagnostic) WithWant(want string) *Diagnostic {
	d.Want = want
	return d
}

// Span returns the source range the diagnostic covers.
func (d *Diagnostic) Span() lexer.Span {
	return d.Start.Span().Join(d.End.Span())
}

// Error renders the message without access to the source text.
func (d *Diagnostic) Error() string {
	return d.render(kindInfos[d.Kind].message, "")
}

// Message renders the message, quoting the offending source text.
func (d *Diagnostic) Message(source string) string {
	return d.render(kindInfos[d.Kind].message, source)
}

// Help returns a static hint for fixing the problem.
func (d *Diagnostic) Help(source string) string {
	return d.render(kindInfos[d.Kind].help, source)
}

// Label describes the highlighted span.
func (d *Diagnostic) Label(source string) string {
	return d.render(kindInfos[d.Kind].label, source)
}

// Is matches a DiagnosticKind or another diagnostic of the same kind.
func (d *Diagnostic) Is(target error) bool {
	switch t := target.(type) {
	case DiagnosticKind:
		return d.Kind == t
	case *Diagnostic:
		return t != nil && d.Kind == t.Kind
	}
	return false
}

func (d *Diagnostic) render(format, source string) string {
	if format == "" {
		return d.Kind.String()
	}
	text := d.Start.Kind().String()
	if source != "" && !d.Start.IsDummy() {
		text = d.Start.StrSlice(source)
	}
	found := d.Start.Kind().String()
	if d.Start.Kind().IsDelimLike() {
		if r, ok := d.Start.Token.Char(); ok {
			found = string(r)
		}
	}
	return strings.NewReplacer("{found}", found, "{text}", text, "{want}", d.Want).Replace(format)
}
