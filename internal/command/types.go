package command

import (
	"errors"

	"github.com/Cyclone1070/ctxboard/internal/contextitem"
	"github.com/Cyclone1070/ctxboard/internal/engine"
	"github.com/Cyclone1070/ctxboard/internal/host"
)

// -- Validation sentinels --

var (
	ErrKindRequired = errors.New("item kind is required")
	ErrKeyRequired  = errors.New("item key is required")
	ErrUnknownKind  = errors.New("item kind must be Buffer or File")
	ErrTargetEmpty  = errors.New("target name is required")
)

// ItemRef names a context item by identity in command arguments.
type ItemRef struct {
	Kind string `mapstructure:"kind"`
	Key  string `mapstructure:"key"`
}

func (r ItemRef) Validate() error {
	if r.Kind == "" {
		return ErrKindRequired
	}
	if r.Kind != string(contextitem.KindBuffer) && r.Kind != string(contextitem.KindFile) {
		return ErrUnknownKind
	}
	if r.Key == "" {
		return ErrKeyRequired
	}
	return nil
}

// Identity converts the reference into the engine's identity value.
func (r ItemRef) Identity() contextitem.Identity {
	return contextitem.Identity{Kind: contextitem.Kind(r.Kind), Key: r.Key}
}

// -- Mark / Unmark --

type MarkRequest struct {
	ItemRef `mapstructure:",squash"`
}

type MarkResponse struct {
	Marked int // marks outstanding after the operation
}

// -- Execute --

type ExecuteRequest struct{}

type ExecuteResponse struct {
	Removed int
}

// -- Delete --

type DeleteRequest struct {
	ItemRef `mapstructure:",squash"`
}

type DeleteResponse struct {
	Remaining int
}

// -- Visit --

type VisitRequest struct {
	ItemRef `mapstructure:",squash"`
}

type VisitResponse struct {
	Visit host.Visit
}

// -- Move --

type MoveRequest struct {
	ItemRef `mapstructure:",squash"`
}

type MoveResponse struct {
	NewPos int
}

// -- Refresh --

type RefreshRequest struct{}

type RefreshResponse struct {
	Rows []engine.Row
}

// -- Switch target --

type SwitchTargetRequest struct {
	Target string `mapstructure:"target"`
}

func (r SwitchTargetRequest) Validate() error {
	if r.Target == "" {
		return ErrTargetEmpty
	}
	return nil
}

type SwitchTargetResponse struct {
	Target string
	Rows   []engine.Row
}
