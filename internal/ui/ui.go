// Package ui is the view adapter: it renders the context list through
// a table widget and translates key presses into commands. All state
// changes flow through the command registry; the UI itself only holds
// display state.
package ui

import (
	"github.com/Cyclone1070/ctxboard/internal/command"
	"github.com/Cyclone1070/ctxboard/internal/engine"
	"github.com/Cyclone1070/ctxboard/internal/ui/models"
	"github.com/Cyclone1070/ctxboard/internal/ui/service"
	"github.com/Cyclone1070/ctxboard/internal/ui/views"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Column layout of the context table.
var tableColumns = []table.Column{
	{Title: "M", Width: 2},
	{Title: "Type", Width: 10},
	{Title: "Name", Width: 40},
	{Title: "Details", Width: 30},
}

// Model implements tea.Model over a command workspace.
type Model struct {
	state    models.State
	ws       *command.Workspace
	registry *command.Registry
	renderer service.MarkdownRenderer

	// Store mutations signal this channel; a listener command turns
	// the signal into a refresh message.
	storeChanged chan struct{}
	unsubscribe  func()
}

// New creates the context view over the workspace's current target.
func New(ws *command.Workspace, registry *command.Registry, renderer service.MarkdownRenderer) Model {
	t := table.New(
		table.WithColumns(tableColumns),
		table.WithFocused(true),
		table.WithHeight(12),
	)
	styles := table.DefaultStyles()
	styles.Header = styles.Header.Bold(true)
	styles.Selected = styles.Selected.Bold(true)
	t.SetStyles(styles)

	ti := textinput.New()
	ti.Placeholder = "target name"

	vp := viewport.New(80, 20)

	m := Model{
		state: models.State{
			Target:      ws.Store().Target(),
			Table:       t,
			TargetInput: ti,
			Preview:     vp,
		},
		ws:           ws,
		registry:     registry,
		renderer:     renderer,
		storeChanged: make(chan struct{}, 8),
	}
	m.subscribe()
	m.reproject()
	return m
}

// Run starts the Bubble Tea program and blocks until quit.
func Run(m Model) error {
	program := tea.NewProgram(m, tea.WithAltScreen())
	_, err := program.Run()
	return err
}

// Init starts the store-change listener.
func (m Model) Init() tea.Cmd {
	return listenForStoreChanges(m.storeChanged)
}

// View renders the UI
func (m Model) View() string {
	return views.RenderRoot(m.state)
}

// State exposes the display state for tests.
func (m Model) State() models.State {
	return m.state
}

// subscribe attaches the refresh signal to the workspace's current
// store, dropping any previous subscription. Called again after
// switch-target.
func (m *Model) subscribe() {
	if m.unsubscribe != nil {
		m.unsubscribe()
	}
	ch := m.storeChanged
	m.unsubscribe = m.ws.Store().Subscribe(func() {
		// Non-blocking: repeated notifications collapse into one
		// pending refresh.
		select {
		case ch <- struct{}{}:
		default:
		}
	})
}

// reproject rebuilds the table rows from the current list, keeping
// the cursor inside bounds. Rows are recreated wholesale; nothing of
// the previous projection survives.
func (m *Model) reproject() {
	rows := m.ws.Rows()
	m.state.Rows = rows
	m.state.MarkCount = m.ws.MarkCount()
	m.state.Target = m.ws.Store().Target()

	tableRows := make([]table.Row, len(rows))
	for i, r := range rows {
		tableRows[i] = table.Row{r.Mark, r.Type, r.Name, r.Details}
	}
	m.state.Table.SetRows(tableRows)

	if c := m.state.Table.Cursor(); len(rows) > 0 && c >= len(rows) {
		m.state.Table.SetCursor(len(rows) - 1)
	}
}

// currentRow returns the row under the cursor.
func (m *Model) currentRow() (engine.Row, bool) {
	c := m.state.Table.Cursor()
	if c < 0 || c >= len(m.state.Rows) {
		return engine.Row{}, false
	}
	return m.state.Rows[c], true
}

func itemArgs(row engine.Row) map[string]any {
	return map[string]any{
		"kind": string(row.ID.Kind),
		"key":  row.ID.Key,
	}
}
