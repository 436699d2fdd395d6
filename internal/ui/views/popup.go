package views

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/ctxboard/internal/ui/models"
)

// RenderConfirm renders the delete confirmation popup.
func RenderConfirm(s models.State) string {
	if s.PendingDelete == nil {
		return ""
	}

	var lines []string
	lines = append(lines, TitleStyle.Render("Delete context item?"))
	lines = append(lines, "")
	lines = append(lines, fmt.Sprintf("  %s", s.PendingDelete.Name))
	lines = append(lines, "")
	lines = append(lines, TitleDimStyle.Render("y: Delete  n/Esc: Cancel"))

	return ConfirmBoxStyle.Render(strings.Join(lines, "\n"))
}

// RenderTargetInput renders the switch-target prompt.
func RenderTargetInput(s models.State) string {
	if !s.ShowTargetInput {
		return ""
	}

	var lines []string
	lines = append(lines, TitleStyle.Render("Switch target:"))
	lines = append(lines, "")
	lines = append(lines, s.TargetInput.View())
	lines = append(lines, "")
	lines = append(lines, TitleDimStyle.Render("Enter: Switch  Esc: Cancel"))

	return ConfirmBoxStyle.Render(strings.Join(lines, "\n"))
}
