package selection

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// Mode is the declared selection filter.
type Mode string

const (
	ModeAll       Mode = "all"
	ModeDirectory Mode = "directory"
	ModeFile      Mode = "file"
)

// ParseMode converts a config or flag value into a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case "", ModeAll:
		return ModeAll, nil
	case ModeDirectory, "dir":
		return ModeDirectory, nil
	case ModeFile:
		return ModeFile, nil
	default:
		return "", fmt.Errorf("unknown selection filter %q", s)
	}
}

// Predicate decides whether an event may be recorded under filter f.
type Predicate func(ev Event, f Filter) bool

// Filter carries the declared selection mode and extension allow-list.
//
// Without a hook every event is allowed: the mode and extensions are carried
// for the host but not enforced. Install Strict (or any Predicate) with
// WithHook to enforce them.
type Filter struct {
	Mode       Mode
	Extensions []string

	hook Predicate
}

// NewFilter creates an unenforced filter.
func NewFilter(mode Mode, extensions []string) Filter {
	return Filter{
		Mode:       mode,
		Extensions: append([]string(nil), extensions...),
	}
}

// WithHook returns a copy of f that consults p.
func (f Filter) WithHook(p Predicate) Filter {
	f.hook = p
	return f
}

// Enforced reports whether a hook is installed.
func (f Filter) Enforced() bool {
	return f.hook != nil
}

// Allows is the single enforcement point for navigation events.
func (f Filter) Allows(ev Event) bool {
	if f.hook == nil {
		return true
	}
	return f.hook(ev, f)
}

// Strict enforces the mode, and for file events the extension allow-list.
// Extensions are matched with MatchExtension.
func Strict(ev Event, f Filter) bool {
	switch f.Mode {
	case ModeDirectory:
		if ev.Kind != KindDirectory {
			return false
		}
	case ModeFile:
		if ev.Kind != KindFile {
			return false
		}
	}

	if ev.Kind != KindFile || len(f.Extensions) == 0 {
		return true
	}
	for _, allowed := range f.Extensions {
		if MatchExtension(allowed, ev.Path) {
			return true
		}
	}
	return false
}

// IsPattern reports whether an allow-list entry is a glob rather than a
// plain extension.
func IsPattern(entry string) bool {
	return strings.ContainsAny(entry, "*?[{")
}

// MatchExtension matches path against one allow-list entry. Plain entries
// compare the extension with or without a leading dot; glob entries such as
// "*.tar.gz" match the base name. Both ignore case.
func MatchExtension(entry, path string) bool {
	entry = strings.ToLower(entry)
	if IsPattern(entry) {
		ok, err := doublestar.Match(entry, strings.ToLower(filepath.Base(path)))
		return err == nil && ok
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	return strings.TrimPrefix(entry, ".") == ext
}
