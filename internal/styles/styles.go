// Package styles contains Lip Gloss colour and style definitions shared by
// the highlighter and diagnostic reports.
package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Semantic color names - Text hierarchy
	TextPrimaryColor = lipgloss.AdaptiveColor{Light: "#4C4F69", Dark: "#CDD6F4"} // Main/primary text
	TextMutedColor   = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#6C7086"} // Gutters, hints

	// Semantic color names - Status
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"} // Success states
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#FECA57", Dark: "#FECA57"} // Warnings
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#FF6B6B", Dark: "#FF8787"} // Errors
	StatusInfoColor    = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"} // Help lines

	// CSS syntax highlighting colors (Catppuccin Mocha)
	CSSAtKeywordColor = lipgloss.AdaptiveColor{Light: "#8839EF", Dark: "#CBA6F7"} // mauve
	CSSPropertyColor  = lipgloss.AdaptiveColor{Light: "#179299", Dark: "#94E2D5"} // teal
	CSSFunctionColor  = lipgloss.AdaptiveColor{Light: "#1E66F5", Dark: "#89B4FA"} // blue
	CSSStringColor    = lipgloss.AdaptiveColor{Light: "#40A02B", Dark: "#A6E3A1"} // green
	CSSNumberColor    = lipgloss.AdaptiveColor{Light: "#FE640B", Dark: "#FAB387"} // peach
	CSSHashColor      = lipgloss.AdaptiveColor{Light: "#DF8E1D", Dark: "#F9E2AF"} // yellow
	CSSDelimColor     = lipgloss.AdaptiveColor{Light: "#D20F39", Dark: "#F38BA8"} // red
	CSSBracketColor   = lipgloss.AdaptiveColor{Light: "#7287FD", Dark: "#B4BEFE"} // lavender
	CSSCommentColor   = lipgloss.AdaptiveColor{Light: "#9CA0B0", Dark: "#6C7086"} // overlay0
	CSSBadColor       = lipgloss.AdaptiveColor{Light: "#D20F39", Dark: "#F38BA8"} // red

	// Diagnostic report styles
	ErrorTitleStyle = lipgloss.NewStyle().Foreground(StatusErrorColor).Bold(true)
	GutterStyle     = lipgloss.NewStyle().Foreground(TextMutedColor)
	CaretStyle      = lipgloss.NewStyle().Foreground(StatusErrorColor).Bold(true)
	HelpStyle       = lipgloss.NewStyle().Foreground(StatusInfoColor)
	LocationStyle   = lipgloss.NewStyle().Foreground(TextPrimaryColor)
)

// Diff styles for "csskit fmt --diff".
var (
	DiffInsertStyle = lipgloss.NewStyle().Foreground(StatusSuccessColor)
	DiffDeleteStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)
	DiffHunkStyle   = lipgloss.NewStyle().Foreground(StatusInfoColor)
)
