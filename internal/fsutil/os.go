package fsutil

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// OSFileSystem implements directory listing using the local OS filesystem primitives.
// It uses internal function fields to enable testability via functional injection.
type OSFileSystem struct {
	readDir func(name string) ([]os.DirEntry, error)
	stat    func(name string) (os.FileInfo, error)
}

// NewOSFileSystem creates a new OSFileSystem with real OS syscalls.
func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{
		readDir: os.ReadDir,
		stat:    os.Stat,
	}
}

// ListDir lists the contents of a directory.
// Symlinks are resolved so a link to a directory reports IsDir. Entries that
// vanish or cannot be stat'ed between the read and the stat are skipped;
// only a failure to read the directory itself is an error.
func (r *OSFileSystem) ListDir(path string) ([]os.FileInfo, error) {
	entries, err := r.readDir(path)
	if err != nil {
		return nil, classify(path, err)
	}

	infos := make([]os.FileInfo, 0, len(entries))
	for _, entry := range entries {
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.Mode()&fs.ModeSymlink != 0 {
			target, err := r.stat(filepath.Join(path, entry.Name()))
			if err == nil {
				info = renamedInfo{FileInfo: target, name: entry.Name()}
			}
		}
		infos = append(infos, info)
	}

	return infos, nil
}

// renamedInfo keeps the link's own name while reporting the target's mode.
type renamedInfo struct {
	os.FileInfo
	name string
}

func (i renamedInfo) Name() string { return i.name }

func classify(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return &ListDirError{Path: path, Cause: ErrPathMissing}
	case errors.Is(err, fs.ErrPermission):
		return &ListDirError{Path: path, Cause: ErrAccessDenied}
	default:
		return &ListDirError{Path: path, Cause: err}
	}
}
