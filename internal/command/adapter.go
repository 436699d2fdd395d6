// Package command exposes the context-list operations as named
// in-process commands over a shared workspace. Each command carries a
// typed request; a generic adapter decodes loosely-typed argument
// maps via mapstructure, so the same surface serves key bindings and
// programmatic callers alike.
package command

import (
	"github.com/mitchellh/mapstructure"
)

// Validator is an interface for request types that support validation
type Validator interface {
	Validate() error
}

// Handler executes a command with a typed request against the
// workspace.
type Handler[Req, Resp any] func(ws *Workspace, req Req) (Resp, error)

// Command is the registry's view of one named operation.
type Command interface {
	Name() string
	Description() string
	Invoke(ws *Workspace, args map[string]any) (any, error)
}

// Adapter provides common command functionality using generics:
// argument decoding (mapstructure), request validation, and handler
// dispatch. One adapter per command keeps handlers free of decoding
// concerns.
type Adapter[Req, Resp any] struct {
	name        string
	description string
	handler     Handler[Req, Resp]
}

// NewAdapter creates a command adapter around a typed handler.
func NewAdapter[Req, Resp any](name, description string, handler Handler[Req, Resp]) *Adapter[Req, Resp] {
	return &Adapter[Req, Resp]{
		name:        name,
		description: description,
		handler:     handler,
	}
}

func (a *Adapter[Req, Resp]) Name() string        { return a.name }
func (a *Adapter[Req, Resp]) Description() string { return a.description }

// Invoke decodes args into the request type, validates when the
// request supports it, and runs the handler.
func (a *Adapter[Req, Resp]) Invoke(ws *Workspace, args map[string]any) (any, error) {
	var req Req
	if err := mapstructure.Decode(args, &req); err != nil {
		return nil, &DecodeError{Command: a.name, Cause: err}
	}
	if v, ok := any(&req).(Validator); ok {
		if err := v.Validate(); err != nil {
			return nil, err
		}
	}
	return a.handler(ws, req)
}

// Registry maps command names to commands, keeping registration order
// for listings.
type Registry struct {
	commands map[string]Command
	order    []string
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Command)}
}

// Register adds a command, replacing any previous one with the same
// name.
func (r *Registry) Register(cmd Command) {
	if _, exists := r.commands[cmd.Name()]; !exists {
		r.order = append(r.order, cmd.Name())
	}
	r.commands[cmd.Name()] = cmd
}

// Invoke runs the named command against the workspace.
func (r *Registry) Invoke(ws *Workspace, name string, args map[string]any) (any, error) {
	cmd, ok := r.commands[name]
	if !ok {
		return nil, &UnknownCommandError{Name: name}
	}
	return cmd.Invoke(ws, args)
}

// Commands lists registered commands in registration order.
func (r *Registry) Commands() []Command {
	out := make([]Command, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.commands[name])
	}
	return out
}
