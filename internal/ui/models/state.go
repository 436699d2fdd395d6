// Package models holds the UI's displayable state. Views render it;
// the update loop mutates it.
package models

import (
	"github.com/Cyclone1070/ctxboard/internal/contextitem"
	"github.com/Cyclone1070/ctxboard/internal/engine"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
)

// PendingDelete is an awaiting delete confirmation.
type PendingDelete struct {
	ID   contextitem.Identity
	Name string
}

// State is everything the views need to draw a frame.
type State struct {
	Width  int
	Height int

	// Context list
	Target    string
	Rows      []engine.Row
	MarkCount int
	Table     table.Model

	// Status line
	StatusPhase   string // "", "info", "error"
	StatusMessage string

	// Popups and panes
	PendingDelete   *PendingDelete
	ShowHelp        bool
	ShowTargetInput bool
	TargetInput     textinput.Model
	ShowPreview     bool
	Preview         viewport.Model
	PreviewTitle    string
}
