package engine

import (
	"errors"
)

// -- Sentinels --

// All engine errors are recoverable: they surface as transient status
// messages, never as crashes.
var (
	ErrNotFound      = errors.New("no context item with that identity")
	ErrOutOfRange    = errors.New("move would leave list bounds")
	ErrTargetGone    = errors.New("target context store is no longer live")
	ErrSourceMissing = errors.New("item source no longer exists")
)
