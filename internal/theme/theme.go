// Package theme holds the lipgloss styles for terminal receipt output.
package theme

import "github.com/charmbracelet/lipgloss"

// Paper receipt palette.
var (
	ColorInk    = lipgloss.Color("#3a3a3a")
	ColorFaded  = lipgloss.Color("#8a8a8a")
	ColorAccent = lipgloss.Color("#d7875f")
	ColorBorder = lipgloss.Color("#5f5f5f")
)

var (
	LogoStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorInk).
			Align(lipgloss.Center)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorFaded)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorFaded)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorInk)

	TotalStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorAccent)

	ReceiptStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(1, 2)
)
