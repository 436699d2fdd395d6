package command

import "fmt"

// UnknownCommandError is returned when no command with the given name
// is registered.
type UnknownCommandError struct {
	Name string
}

func (e *UnknownCommandError) Error() string {
	return fmt.Sprintf("unknown command: %s", e.Name)
}

// DecodeError wraps a failure to decode command arguments into the
// command's typed request.
type DecodeError struct {
	Command string
	Cause   error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("invalid arguments for %s: %v", e.Command, e.Cause)
}

func (e *DecodeError) Unwrap() error { return e.Cause }
