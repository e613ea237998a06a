package gitutil

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

// IgnoreFile is the per-directory ignore file name.
const IgnoreFile = ".gitignore"

// GitignoreReadError is returned when .gitignore cannot be read.
type GitignoreReadError struct {
	Path  string
	Cause error
}

func (e *GitignoreReadError) Error() string {
	return fmt.Sprintf("failed to read .gitignore at %s: %v", e.Path, e.Cause)
}
func (e *GitignoreReadError) Unwrap() error { return e.Cause }

// fileReader defines the minimal filesystem interface needed for loading ignore files.
type fileReader interface {
	ReadFile(path string) ([]byte, error)
}

type osReader struct{}

func (osReader) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

// IgnoreMatcher accumulates .gitignore patterns down a directory tree using
// go-git's gitignore matcher. Paths are expressed as segments relative to the
// tree root the matcher was started from. A nil *IgnoreMatcher never ignores.
type IgnoreMatcher struct {
	patterns []gitignore.Pattern
	matcher  gitignore.Matcher
}

// Loader reads ignore files for directories as a tree expands.
type Loader struct {
	fs fileReader
}

// NewLoader creates a Loader reading from the OS filesystem.
func NewLoader() *Loader {
	return &Loader{fs: osReader{}}
}

// NewLoaderWithFS creates a Loader with a custom reader (for testing).
func NewLoaderWithFS(fs fileReader) *Loader {
	if fs == nil {
		panic("fs is required")
	}
	return &Loader{fs: fs}
}

// Load returns parent extended with the patterns of dir/.gitignore, whose
// position below the tree root is given by domain. A missing file returns
// parent unchanged (no error).
func (l *Loader) Load(parent *IgnoreMatcher, dir string, domain []string) (*IgnoreMatcher, error) {
	path := filepath.Join(dir, IgnoreFile)
	content, err := l.fs.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return parent, nil
		}
		return parent, &GitignoreReadError{Path: path, Cause: err}
	}
	return parent.Extend(domain, string(content)), nil
}

// Extend returns a new matcher with the patterns in content added under domain.
// Blank lines and comments are skipped. The receiver is not modified.
func (m *IgnoreMatcher) Extend(domain []string, content string) *IgnoreMatcher {
	var patterns []gitignore.Pattern
	if m != nil {
		patterns = append(patterns, m.patterns...)
	}

	added := 0
	for _, line := range splitLines(content) {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		patterns = append(patterns, gitignore.ParsePattern(line, append([]string(nil), domain...)))
		added++
	}
	if added == 0 {
		return m
	}

	return &IgnoreMatcher{
		patterns: patterns,
		matcher:  gitignore.NewMatcher(patterns),
	}
}

// ShouldIgnore checks if the path (segments relative to the tree root) is ignored.
func (m *IgnoreMatcher) ShouldIgnore(segments []string, isDir bool) bool {
	if m == nil || m.matcher == nil {
		return false
	}
	return m.matcher.Match(segments, isDir)
}

// splitLines splits content into lines, handling both \n and \r\n line endings.
func splitLines(content string) []string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
