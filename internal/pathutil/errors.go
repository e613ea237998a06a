package pathutil

import (
	"errors"
	"fmt"
)

// StartDirError is returned when the starting directory cannot be resolved.
type StartDirError struct {
	Path  string
	Cause error
}

func (e *StartDirError) Error() string {
	return fmt.Sprintf("invalid starting directory %s: %v", e.Path, e.Cause)
}
func (e *StartDirError) Unwrap() error { return e.Cause }

var (
	ErrNotADirectory = errors.New("not a directory")
	ErrNoHomeDir     = errors.New("home directory unavailable")
)
