package views

import (
	"fmt"

	"github.com/Cyclone1070/ctxboard/internal/ui/models"
)

// RenderStatus renders the status bar: a transient message on the
// left, the mark tally on the right.
func RenderStatus(s models.State) string {
	left := "Ready"
	switch s.StatusPhase {
	case "error":
		left = StatusErrorStyle.Render(s.StatusMessage)
	case "info":
		left = StatusInfoStyle.Render(s.StatusMessage)
	default:
		left = StatusDefaultStyle.Render(left)
	}

	if s.MarkCount > 0 {
		marks := fmt.Sprintf("%d marked", s.MarkCount)
		return fmt.Sprintf("%s  %s", left, TitleDimStyle.Render(marks))
	}
	return left
}
