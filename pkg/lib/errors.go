package lib

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCommand is returned for an empty or whitespace-only command.
	ErrInvalidCommand = errors.New("invalid command")
	// ErrNoSample is returned when no sample was taken during the observation window
	// and the degraded-response policy is set to fail.
	ErrNoSample = errors.New("no sample collected during observation window")
)

// ValidationError reports a rejected request field. No process is created.
type ValidationError struct {
	Field string
	Value string
	Err   error
}

func NewValidationError(field, value string, err error) *ValidationError {
	return &ValidationError{Field: field, Value: value, Err: err}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: field '%s' with value %q: %v", e.Field, e.Value, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// SpawnError reports that the OS refused to start the process.
type SpawnError struct {
	Command Command
	Err     error
}

func (e *SpawnError) Error() string {
	return fmt.Sprintf("failed to spawn %q: %v", e.Command.Command, e.Err)
}

func (e *SpawnError) Unwrap() error { return e.Err }
