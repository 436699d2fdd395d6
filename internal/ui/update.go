package ui

import (
	"fmt"
	"strings"

	"github.com/Cyclone1070/ctxboard/internal/command"
	"github.com/Cyclone1070/ctxboard/internal/session"
	"github.com/Cyclone1070/ctxboard/internal/ui/models"
	"github.com/Cyclone1070/ctxboard/internal/ui/service"
	tea "github.com/charmbracelet/bubbletea"
)

// storeChangedMsg signals that the backing store mutated and the view
// must re-project.
type storeChangedMsg struct{}

func listenForStoreChanges(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		<-ch
		return storeChangedMsg{}
	}
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		tableHeight := msg.Height - 4 // title + status + spacing
		if tableHeight < 3 {
			tableHeight = 3
		}
		m.state.Table.SetWidth(msg.Width)
		m.state.Table.SetHeight(tableHeight)
		m.state.Preview.Width = msg.Width
		m.state.Preview.Height = msg.Height - 2
		return m, nil

	case storeChangedMsg:
		m.reproject()
		return m, listenForStoreChanges(m.storeChanged)
	}

	return m, nil
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Delete confirmation takes all input first.
	if m.state.PendingDelete != nil {
		return m.handleConfirmKey(msg)
	}

	if m.state.ShowTargetInput {
		return m.handleTargetInputKey(msg)
	}

	if m.state.ShowPreview {
		switch msg.String() {
		case "esc", "q":
			m.state.ShowPreview = false
			return m, nil
		}
		var cmd tea.Cmd
		m.state.Preview, cmd = m.state.Preview.Update(msg)
		return m, cmd
	}

	if m.state.ShowHelp {
		switch msg.String() {
		case "esc", "q", "?":
			m.state.ShowHelp = false
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "m":
		return m.markCurrent(true), nil

	case "u":
		return m.markCurrent(false), nil

	case "x":
		return m.executeMarks(), nil

	case "d":
		return m.deleteCurrent(), nil

	case "enter":
		return m.visitCurrent(), nil

	case "p":
		return m.previewAssembled(), nil

	case "K", "shift+up":
		return m.moveCurrent("move-up"), nil

	case "J", "shift+down":
		return m.moveCurrent("move-down"), nil

	case "g":
		return m.refresh(), nil

	case "t":
		m.state.ShowTargetInput = true
		m.state.TargetInput.SetValue("")
		m.state.TargetInput.Focus()
		return m, nil

	case "?":
		m.state.ShowHelp = true
		return m, nil
	}

	// Everything else is table navigation.
	var cmd tea.Cmd
	m.state.Table, cmd = m.state.Table.Update(msg)
	return m, cmd
}

func (m Model) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		pending := m.state.PendingDelete
		m.state.PendingDelete = nil
		_, err := m.registry.Invoke(m.ws, "delete", map[string]any{
			"kind": string(pending.ID.Kind),
			"key":  pending.ID.Key,
		})
		if err != nil {
			m.setError(err)
		} else {
			m.setInfo(fmt.Sprintf("Removed %s", pending.Name))
		}
		m.reproject()
	case "n", "esc":
		m.state.PendingDelete = nil
	}
	return m, nil
}

func (m Model) handleTargetInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		target := m.state.TargetInput.Value()
		m.state.ShowTargetInput = false
		m.state.TargetInput.Blur()
		if _, err := m.registry.Invoke(m.ws, "switch-target", map[string]any{"target": target}); err != nil {
			m.setError(err)
			return m, nil
		}
		m.subscribe()
		m.reproject()
		m.state.Table.SetCursor(0)
		m.setInfo(fmt.Sprintf("Viewing %s", target))
		return m, nil
	case "esc":
		m.state.ShowTargetInput = false
		m.state.TargetInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.state.TargetInput, cmd = m.state.TargetInput.Update(msg)
	return m, cmd
}

func (m Model) markCurrent(mark bool) Model {
	row, ok := m.currentRow()
	if !ok {
		return m
	}
	name := "mark"
	if !mark {
		name = "unmark"
	}
	if _, err := m.registry.Invoke(m.ws, name, itemArgs(row)); err != nil {
		m.setError(err)
		return m
	}
	m.reproject()
	// Step past the row just handled, the way mark loops expect.
	if c := m.state.Table.Cursor(); c < len(m.state.Rows)-1 {
		m.state.Table.SetCursor(c + 1)
	}
	return m
}

func (m Model) executeMarks() Model {
	resp, err := m.registry.Invoke(m.ws, "execute", nil)
	if err != nil {
		m.setError(err)
		return m
	}
	executed := resp.(command.ExecuteResponse)
	m.reproject()
	m.setInfo(fmt.Sprintf("Removed %d %s", executed.Removed, pluralItems(executed.Removed)))
	return m
}

func (m Model) deleteCurrent() Model {
	row, ok := m.currentRow()
	if !ok {
		return m
	}
	if m.ws.Config.UI.ConfirmDelete {
		m.state.PendingDelete = &models.PendingDelete{ID: row.ID, Name: row.Name}
		return m
	}
	if _, err := m.registry.Invoke(m.ws, "delete", itemArgs(row)); err != nil {
		m.setError(err)
		return m
	}
	m.reproject()
	m.setInfo(fmt.Sprintf("Removed %s", row.Name))
	return m
}

func (m Model) visitCurrent() Model {
	row, ok := m.currentRow()
	if !ok {
		return m
	}
	resp, err := m.registry.Invoke(m.ws, "visit", itemArgs(row))
	if err != nil {
		m.setError(err)
		return m
	}
	visited := resp.(command.VisitResponse)
	m.state.PreviewTitle = visited.Visit.Title
	m.state.Preview.SetContent(service.RenderSource(m.renderer, visited.Visit.Content, visited.Visit.MIME))
	m.state.Preview.GotoTop()
	m.state.ShowPreview = true
	return m
}

// previewAssembled shows what the current list would contribute to a
// model request, in list order, with dead sources already skipped.
func (m Model) previewAssembled() Model {
	assembler := session.NewAssembler(m.ws.Host)
	contents := assembler.Contents(m.ws.Store().Items())
	if len(contents) == 0 {
		m.setInfo("Context is empty")
		return m
	}

	var b strings.Builder
	parts := contents[0].Parts
	for _, part := range parts {
		switch {
		case part.Text != "":
			b.WriteString(part.Text)
			b.WriteString("\n")
		case part.InlineData != nil:
			fmt.Fprintf(&b, "[inline %s, %d bytes]\n\n", part.InlineData.MIMEType, len(part.InlineData.Data))
		}
	}

	m.state.PreviewTitle = fmt.Sprintf("Assembled context (%d %s)", len(parts), pluralParts(len(parts)))
	m.state.Preview.SetContent(service.RenderSource(m.renderer, b.String(), "text/markdown"))
	m.state.Preview.GotoTop()
	m.state.ShowPreview = true
	return m
}

func (m Model) moveCurrent(name string) Model {
	row, ok := m.currentRow()
	if !ok {
		return m
	}
	resp, err := m.registry.Invoke(m.ws, name, itemArgs(row))
	if err != nil {
		m.setError(err)
		return m
	}
	moved := resp.(command.MoveResponse)
	m.reproject()
	// Keep focus on the item that moved.
	m.state.Table.SetCursor(moved.NewPos)
	return m
}

func (m Model) refresh() Model {
	if _, err := m.registry.Invoke(m.ws, "refresh", nil); err != nil {
		m.setError(err)
		return m
	}
	m.reproject()
	m.setInfo("Refreshed")
	return m
}

func (m *Model) setInfo(msg string) {
	m.state.StatusPhase = "info"
	m.state.StatusMessage = msg
}

func (m *Model) setError(err error) {
	m.state.StatusPhase = "error"
	m.state.StatusMessage = err.Error()
}

func pluralItems(n int) string {
	if n == 1 {
		return "item"
	}
	return "items"
}

func pluralParts(n int) string {
	if n == 1 {
		return "part"
	}
	return "parts"
}
