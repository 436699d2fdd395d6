package command

import (
	"github.com/Cyclone1070/ctxboard/internal/config"
	"github.com/Cyclone1070/ctxboard/internal/contextitem"
	"github.com/Cyclone1070/ctxboard/internal/engine"
	"github.com/Cyclone1070/ctxboard/internal/host"
	"github.com/Cyclone1070/ctxboard/internal/store"
)

// Workspace is the shared state commands operate on: the registry of
// target stores, the currently viewed store, the host, and the
// transient mark set.
type Workspace struct {
	Registry *store.Registry
	Host     *host.Host
	Config   *config.Config

	current *store.Store
	marks   map[contextitem.Identity]struct{}
}

// NewWorkspace opens the configured default target and starts with an
// empty mark set.
func NewWorkspace(reg *store.Registry, h *host.Host, cfg *config.Config) *Workspace {
	return &Workspace{
		Registry: reg,
		Host:     h,
		Config:   cfg,
		current:  reg.Open(cfg.UI.DefaultTarget),
		marks:    make(map[contextitem.Identity]struct{}),
	}
}

// Store returns the currently viewed target's store.
func (w *Workspace) Store() *store.Store {
	return w.current
}

// Marked reports whether the identity is flagged for deletion.
func (w *Workspace) Marked(id contextitem.Identity) bool {
	_, ok := w.marks[id]
	return ok
}

// MarkCount returns the number of marked identities.
func (w *Workspace) MarkCount() int {
	return len(w.marks)
}

// Rows projects the current list and fills the Mark column from the
// mark set.
func (w *Workspace) Rows() []engine.Row {
	rows := engine.Project(w.current.Items())
	for i := range rows {
		if w.Marked(rows[i].ID) {
			rows[i].Mark = w.Config.UI.MarkGlyph
		}
	}
	return rows
}

func (w *Workspace) mark(id contextitem.Identity) {
	w.marks[id] = struct{}{}
}

func (w *Workspace) unmark(id contextitem.Identity) {
	delete(w.marks, id)
}

func (w *Workspace) clearMarks() {
	w.marks = make(map[contextitem.Identity]struct{})
}

// markSet returns a copy of the marks for the engine to consume, so
// a drain cannot be affected by later mark changes.
func (w *Workspace) markSet() map[contextitem.Identity]struct{} {
	out := make(map[contextitem.Identity]struct{}, len(w.marks))
	for id := range w.marks {
		out[id] = struct{}{}
	}
	return out
}

// switchTarget swaps the viewed store, creating it if needed. Marks
// are per-view and do not follow across targets.
func (w *Workspace) switchTarget(target string) {
	w.current = w.Registry.Open(target)
	w.clearMarks()
}
