package views

import (
	"fmt"

	"github.com/Cyclone1070/ctxboard/internal/ui/models"
	"github.com/charmbracelet/lipgloss"
)

// RenderRoot renders the complete UI layout
func RenderRoot(s models.State) string {
	if s.ShowPreview {
		return RenderPreview(s)
	}

	title := TitleStyle.Render("Context") + " " +
		TitleDimStyle.Render(fmt.Sprintf("[%s]", s.Target))

	sections := []string{
		title,
		s.Table.View(),
		RenderStatus(s),
	}
	base := lipgloss.JoinVertical(lipgloss.Left, sections...)

	popup := ""
	switch {
	case s.PendingDelete != nil:
		popup = RenderConfirm(s)
	case s.ShowTargetInput:
		popup = RenderTargetInput(s)
	case s.ShowHelp:
		popup = RenderHelp(s)
	}
	if popup != "" && s.Width > 0 && s.Height > 0 {
		// Overlay popup on top
		return lipgloss.Place(
			s.Width,
			s.Height,
			lipgloss.Center,
			lipgloss.Center,
			popup,
			lipgloss.WithWhitespaceChars(""),
			lipgloss.WithWhitespaceForeground(lipgloss.Color("0")),
		)
	}
	if popup != "" {
		return popup
	}

	return base
}
