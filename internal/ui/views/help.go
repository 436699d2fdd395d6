package views

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/ctxboard/internal/ui/models"
)

type helpEntry struct {
	key  string
	desc string
}

var helpEntries = []helpEntry{
	{"m", "mark item for deletion"},
	{"u", "unmark item"},
	{"x", "delete all marked items"},
	{"d", "delete item at point"},
	{"enter", "visit item source"},
	{"p", "preview assembled model context"},
	{"K", "move item up"},
	{"J", "move item down"},
	{"g", "refresh (clears marks)"},
	{"t", "switch target"},
	{"?", "toggle this help"},
	{"q", "quit"},
}

// RenderHelp renders the key binding summary popup.
func RenderHelp(s models.State) string {
	if !s.ShowHelp {
		return ""
	}

	var lines []string
	lines = append(lines, TitleStyle.Render("Context list keys"))
	lines = append(lines, "")
	for _, e := range helpEntries {
		lines = append(lines, fmt.Sprintf("  %s  %s", HelpKeyStyle.Render(fmt.Sprintf("%-5s", e.key)), e.desc))
	}

	return ConfirmBoxStyle.Render(strings.Join(lines, "\n"))
}
