package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Colors
var (
	ColorPrimary = lipgloss.Color("62")
	ColorError   = lipgloss.Color("196")
	ColorInfo    = lipgloss.Color("34")
	ColorDim     = lipgloss.Color("241")
)

// Styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	TitleDimStyle = lipgloss.NewStyle().
			Foreground(ColorDim)

	StatusInfoStyle = lipgloss.NewStyle().
			Foreground(ColorInfo)

	StatusErrorStyle = lipgloss.NewStyle().
				Foreground(ColorError)

	StatusDefaultStyle = lipgloss.NewStyle().
				Foreground(ColorDim)

	ConfirmBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorPrimary).
			Padding(1, 2)

	HelpKeyStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	PreviewTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(ColorPrimary).
				Underline(true)
)
