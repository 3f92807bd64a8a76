package models

import (
	"errors"
	"fmt"
)

// Error kinds reported while building snapshots
var (
	// ErrNotADirectory is returned when a root path does not denote a directory
	ErrNotADirectory = errors.New("not a directory")
	// ErrUnreadable is returned when a file or directory cannot be read
	ErrUnreadable = errors.New("unreadable")
	// ErrHashingUnavailable is returned when a hash algorithm cannot be constructed
	ErrHashingUnavailable = errors.New("hashing unavailable")
)

// PathError ties an error kind to the path it occurred on
type PathError struct {
	Kind error
	Path string
	Err  error
}

// NewPathError creates a path error of the given kind
func NewPathError(kind error, path string, err error) *PathError {
	return &PathError{Kind: kind, Path: path, Err: err}
}

func (e *PathError) Error() string {
	var msg string
	switch e.Kind {
	case ErrNotADirectory:
		msg = "path is not a directory: " + e.Path
	case ErrUnreadable:
		msg = "path is not readable: " + e.Path
	default:
		msg = fmt.Sprintf("%v: %s", e.Kind, e.Path)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the underlying cause to errors.Is
func (e *PathError) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
	// Err is the error kind behind the failure, if any
	Err error
}

func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}
