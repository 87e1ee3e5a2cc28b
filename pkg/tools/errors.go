package tools

import (
	"errors"
	"fmt"
)

// ErrorKind classifies tool failures for the caller.
type ErrorKind string

const (
	// ErrInvalidArgument indicates malformed or missing caller input.
	ErrInvalidArgument ErrorKind = "invalid-argument"

	// ErrNotFound indicates a required reference could not be resolved.
	ErrNotFound ErrorKind = "not-found"

	// ErrInternal indicates a remote or unexpected failure.
	ErrInternal ErrorKind = "internal"
)

// ErrUnknownTool indicates the requested tool has no registered handler.
var ErrUnknownTool = errors.New("unknown tool")

// ToolError is the uniform error shape surfaced by the dispatcher.
type ToolError struct {
	Kind    ErrorKind
	Message string
	Err     error
}

func (e *ToolError) Error() string {
	return string(e.Kind) + ": " + e.Message
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

// NewInvalidArgument creates an invalid-argument error.
func NewInvalidArgument(format string, args ...interface{}) *ToolError {
	return &ToolError{Kind: ErrInvalidArgument, Message: fmt.Sprintf(format, args...)}
}

// NewNotFound creates a not-found error.
func NewNotFound(format string, args ...interface{}) *ToolError {
	return &ToolError{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

// NewInternal creates an internal error.
func NewInternal(format string, args ...interface{}) *ToolError {
	return &ToolError{Kind: ErrInternal, Message: fmt.Sprintf(format, args...)}
}

// AsToolError unwraps err to a *ToolError if one is present.
func AsToolError(err error) (*ToolError, bool) {
	var toolErr *ToolError
	if errors.As(err, &toolErr) {
		return toolErr, true
	}
	return nil, false
}
