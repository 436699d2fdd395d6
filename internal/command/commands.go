package command

import (
	"github.com/Cyclone1070/ctxboard/internal/engine"
)

// DefaultRegistry registers the full command set of the context view.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewAdapter("mark", "Flag an item for batched deletion", Mark))
	r.Register(NewAdapter("unmark", "Remove an item's deletion flag", Unmark))
	r.Register(NewAdapter("execute", "Delete all flagged items", Execute))
	r.Register(NewAdapter("delete", "Delete one item", Delete))
	r.Register(NewAdapter("visit", "Show an item's source", Visit))
	r.Register(NewAdapter("move-up", "Move an item one row up", MoveUp))
	r.Register(NewAdapter("move-down", "Move an item one row down", MoveDown))
	r.Register(NewAdapter("refresh", "Re-read the list and clear marks", Refresh))
	r.Register(NewAdapter("switch-target", "View another target's context list", SwitchTarget))
	return r
}

// Mark flags an identity for deletion. Pure view state: the engine is
// not consulted, and a mark may go stale by the time it is executed.
func Mark(ws *Workspace, req MarkRequest) (MarkResponse, error) {
	ws.mark(req.Identity())
	return MarkResponse{Marked: ws.MarkCount()}, nil
}

// Unmark removes an identity's deletion flag.
func Unmark(ws *Workspace, req MarkRequest) (MarkResponse, error) {
	ws.unmark(req.Identity())
	return MarkResponse{Marked: ws.MarkCount()}, nil
}

// Execute drains the mark set through a batch delete. Stale marks are
// ignored by the engine; the response carries the count actually
// removed so the user sees what happened.
func Execute(ws *Workspace, _ ExecuteRequest) (ExecuteResponse, error) {
	s := ws.Store()
	if !s.Live() {
		return ExecuteResponse{}, engine.ErrTargetGone
	}

	newList, removed := engine.DeleteBatch(s.Items(), ws.markSet())
	if err := s.Replace(newList); err != nil {
		return ExecuteResponse{}, err
	}
	ws.clearMarks()
	return ExecuteResponse{Removed: removed}, nil
}

// Delete removes a single item by identity.
func Delete(ws *Workspace, req DeleteRequest) (DeleteResponse, error) {
	s := ws.Store()
	if !s.Live() {
		return DeleteResponse{}, engine.ErrTargetGone
	}

	newList, err := engine.DeleteOne(s.Items(), req.Identity())
	if err != nil {
		return DeleteResponse{}, err
	}
	if err := s.Replace(newList); err != nil {
		return DeleteResponse{}, err
	}
	ws.unmark(req.Identity())
	return DeleteResponse{Remaining: len(newList)}, nil
}

// Visit resolves an item's source for display without mutating
// anything.
func Visit(ws *Workspace, req VisitRequest) (VisitResponse, error) {
	s := ws.Store()
	if !s.Live() {
		return VisitResponse{}, engine.ErrTargetGone
	}

	it, err := engine.Find(s.Items(), req.Identity())
	if err != nil {
		return VisitResponse{}, err
	}
	v, err := ws.Host.Visit(it)
	if err != nil {
		return VisitResponse{}, err
	}
	return VisitResponse{Visit: v}, nil
}

// MoveUp moves an item one row toward the front of the list.
func MoveUp(ws *Workspace, req MoveRequest) (MoveResponse, error) {
	return moveBy(ws, req, -1)
}

// MoveDown moves an item one row toward the back of the list.
func MoveDown(ws *Workspace, req MoveRequest) (MoveResponse, error) {
	return moveBy(ws, req, +1)
}

func moveBy(ws *Workspace, req MoveRequest, delta int) (MoveResponse, error) {
	s := ws.Store()
	if !s.Live() {
		return MoveResponse{}, engine.ErrTargetGone
	}

	newList, newPos, err := engine.Move(s.Items(), req.Identity(), delta)
	if err != nil {
		return MoveResponse{}, err
	}
	if err := s.Replace(newList); err != nil {
		return MoveResponse{}, err
	}
	return MoveResponse{NewPos: newPos}, nil
}

// Refresh re-projects the current list. An explicit refresh also
// clears the mark set; automatic re-projections after store
// notifications keep marks, since those are not user resets.
func Refresh(ws *Workspace, _ RefreshRequest) (RefreshResponse, error) {
	s := ws.Store()
	if !s.Live() {
		return RefreshResponse{}, engine.ErrTargetGone
	}

	ws.clearMarks()
	return RefreshResponse{Rows: ws.Rows()}, nil
}

// SwitchTarget changes which target's context list is viewed,
// creating an empty list for unknown targets.
func SwitchTarget(ws *Workspace, req SwitchTargetRequest) (SwitchTargetResponse, error) {
	ws.switchTarget(req.Target)
	return SwitchTargetResponse{Target: req.Target, Rows: ws.Rows()}, nil
}
