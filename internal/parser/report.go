package parser

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/zjrosen/csskit/internal/lexer"
	"github.com/zjrosen/csskit/internal/styles"
)

const tabWidth = 4

// Location is a 1-based line and display column.
type Location struct {
	Line   int
	Column int
}

// Locate converts a byte offset into a line and display column. Columns
// count terminal cells, so wide runes advance by two and tabs by four.
func Locate(source string, offset lexer.SourceOffset) Location {
	off := min(int(offset), len(source))
	lineStart := strings.LastIndexByte(source[:off], '\n') + 1
	line := strings.Count(source[:lineStart], "\n") + 1
	return Location{Line: line, Column: displayWidth(source[lineStart:off]) + 1}
}

func displayWidth(s string) int {
	w := 0
	for _, r := range s {
		if r == '\t' {
			w += tabWidth
			continue
		}
		w += runewidth.RuneWidth(r)
	}
	return w
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}

// Report renders the diagnostic with the offending source line and a caret
// underline:
//
//	error[css::ExpectedEnd]: Expected this to be the end of the file...
//	  --> style.css:1:12
//	   |
//	 1 | body{}  foo
//	   |         ^^^ All of this extra content was ignored.
//	   = help: Remove the trailing content...
func (d *Diagnostic) Report(source, filename string) string {
	var b strings.Builder
	b.WriteString(styles.ErrorTitleStyle.Render(fmt.Sprintf("error[%s]", d.Kind.Code())))
	b.WriteString(": ")
	b.WriteString(d.Message(source))
	b.WriteByte('\n')

	span := d.Span()
	if span.IsDummy() {
		fmt.Fprintf(&b, "  = help: %s\n", d.Help(source))
		return b.String()
	}

	start := min(int(span.Start), len(source))
	loc := Locate(source, span.Start)
	lineStart := strings.LastIndexByte(source[:start], '\n') + 1
	lineEnd := len(source)
	if i := strings.IndexByte(source[start:], '\n'); i >= 0 {
		lineEnd = start + i
	}
	text := strings.TrimSuffix(source[lineStart:lineEnd], "\r")

	end := min(int(span.End), lineStart+len(text))
	width := 1
	if end > start {
		width = max(displayWidth(source[start:end]), 1)
	}

	num := strconv.Itoa(loc.Line)
	pad := strings.Repeat(" ", len(num))
	gutter := func(s string) string { return styles.GutterStyle.Render(s) }

	fmt.Fprintf(&b, "%s%s %s:%d:%d\n", pad, gutter("-->"), styles.LocationStyle.Render(filename), loc.Line, loc.Column)
	fmt.Fprintf(&b, "%s %s\n", pad, gutter("|"))
	fmt.Fprintf(&b, "%s %s %s\n", gutter(num), gutter("|"), expandTabs(text))
	fmt.Fprintf(&b, "%s %s %s%s %s\n", pad, gutter("|"),
		strings.Repeat(" ", loc.Column-1),
		styles.CaretStyle.Render(strings.Repeat("^", width)),
		styles.CaretStyle.Render(d.Label(source)))
	fmt.Fprintf(&b, "%s %s %s\n", pad, gutter("="), styles.HelpStyle.Render("help: "+d.Help(source)))
	return b.String()
}

// ReportAll renders every diagnostic, separated by blank lines.
func ReportAll(diags []Diagnostic, source, filename string) string {
	parts := make([]string, len(diags))
	for i := range diags {
		parts[i] = diags[i].Report(source, filename)
	}
	return strings.Join(parts, "\n")
}
