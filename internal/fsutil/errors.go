package fsutil

import (
	"errors"
	"fmt"
)

// -- Sentinels --

var (
	ErrPathMissing  = errors.New("path does not exist")
	ErrAccessDenied = errors.New("access denied")
)

// ListDirError is returned when a directory cannot be read.
type ListDirError struct {
	Path  string
	Cause error
}

func (e *ListDirError) Error() string {
	return fmt.Sprintf("failed to list %s: %v", e.Path, e.Cause)
}

func (e *ListDirError) Unwrap() error {
	return e.Cause
}
