package ui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("205") // Pink/magenta
	ColorSuccess = lipgloss.Color("35")  // Green
	ColorWarning = lipgloss.Color("214") // Gold/yellow
	ColorError   = lipgloss.Color("196") // Red
	ColorDim     = lipgloss.Color("241") // Gray
	ColorAccent  = lipgloss.Color("39")  // Blue
)

const (
	SymbolCheck  = "✓"
	SymbolCross  = "✗"
	SymbolArrow  = "▸"
	SymbolBullet = "●"
)

var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	AddressStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)

	DimStyle = lipgloss.NewStyle().
			Foreground(ColorDim)
)
