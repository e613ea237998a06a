// Package pathutil canonicalises user-supplied paths.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileSystem is the subset of OS calls needed to canonicalise a path.
type FileSystem interface {
	UserHomeDir() (string, error)
	EvalSymlinks(path string) (string, error)
	Stat(path string) (os.FileInfo, error)
}

type osFileSystem struct{}

func (osFileSystem) UserHomeDir() (string, error)             { return os.UserHomeDir() }
func (osFileSystem) EvalSymlinks(path string) (string, error) { return filepath.EvalSymlinks(path) }
func (osFileSystem) Stat(path string) (os.FileInfo, error)    { return os.Stat(path) }

// Resolver canonicalises directories.
type Resolver struct {
	fs FileSystem
}

// NewResolver creates a Resolver backed by the OS.
func NewResolver() *Resolver {
	return &Resolver{fs: osFileSystem{}}
}

// NewResolverWithFS creates a Resolver with an injected filesystem.
func NewResolverWithFS(fs FileSystem) *Resolver {
	return &Resolver{fs: fs}
}

// ExpandHome replaces a leading "~" with the user's home directory.
func (r *Resolver) ExpandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") && !strings.HasPrefix(path, `~\`) {
		return path, nil
	}
	home, err := r.fs.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoHomeDir, err)
	}
	return filepath.Join(home, path[1:]), nil
}

// CanonicaliseDir makes dir absolute, expands "~" and resolves symlinks.
// The result must be an existing directory.
func (r *Resolver) CanonicaliseDir(dir string) (string, error) {
	expanded, err := r.ExpandHome(dir)
	if err != nil {
		return "", &StartDirError{Path: dir, Cause: err}
	}

	abs, err := filepath.Abs(expanded)
	if err != nil {
		return "", &StartDirError{Path: expanded, Cause: err}
	}

	resolved, err := r.fs.EvalSymlinks(abs)
	if err != nil {
		return "", &StartDirError{Path: abs, Cause: err}
	}

	info, err := r.fs.Stat(resolved)
	if err != nil {
		return "", &StartDirError{Path: resolved, Cause: err}
	}
	if !info.IsDir() {
		return "", &StartDirError{Path: resolved, Cause: ErrNotADirectory}
	}
	return resolved, nil
}
