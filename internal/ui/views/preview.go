package views

import (
	"github.com/Cyclone1070/ctxboard/internal/ui/models"
	"github.com/charmbracelet/lipgloss"
)

// RenderPreview renders the visit pane: a title line over a scrolling
// viewport of the item's source.
func RenderPreview(s models.State) string {
	title := PreviewTitleStyle.Render(s.PreviewTitle)
	footer := TitleDimStyle.Render("Esc: back  ↑/↓: scroll")
	return lipgloss.JoinVertical(lipgloss.Left, title, s.Preview.View(), footer)
}
