// Package tree implements a lazily loaded directory tree rooted at one volume.
package tree

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/Cyclone1070/volpick/internal/gitutil"
	"github.com/Cyclone1070/volpick/internal/ui/views"
)

// Lister defines the filesystem operations needed to expand a directory.
type Lister interface {
	ListDir(path string) ([]os.FileInfo, error)
}

// DirectorySelectedMsg is emitted when a directory node is chosen.
type DirectorySelectedMsg struct {
	Root string
	Path string
}

// FileSelectedMsg is emitted when a file node is chosen.
type FileSelectedMsg struct {
	Root string
	Path string
}

type node struct {
	name     string
	path     string
	isDir    bool
	depth    int
	segments []string // path below the tree root
	parent   *node

	loaded   bool
	expanded bool
	children []*node
	err      error
	ignore   *gitutil.IgnoreMatcher
}

// row is one visible line. errOf is set for the inline error line of a
// directory whose listing failed.
type row struct {
	n     *node
	errOf *node
}

// Model is a directory tree. It is a component, not a tea.Model: the owner
// forwards messages with Update and embeds View in its own layout.
type Model struct {
	root    *node
	title   string
	lister  Lister
	ignores *gitutil.Loader
	hidden  bool
	keys    KeyMap
	logger  zerolog.Logger

	cursor  int
	focused bool
}

// Option configures a Model.
type Option func(*Model)

// WithShowHidden includes dot-prefixed entries.
func WithShowHidden(show bool) Option {
	return func(m *Model) { m.hidden = show }
}

// WithGitignore hides entries matched by .gitignore files found while expanding.
func WithGitignore(loader *gitutil.Loader) Option {
	return func(m *Model) { m.ignores = loader }
}

// WithKeyMap replaces the default keybindings.
func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) { m.keys = keys }
}

// WithLogger sets the logger used for listing failures.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Model) { m.logger = logger }
}

// New creates a tree rooted at root. Nothing is listed until the root is expanded.
func New(root, title string, lister Lister, opts ...Option) *Model {
	if lister == nil {
		panic("lister is required")
	}
	m := &Model{
		root: &node{
			name:     root,
			path:     root,
			isDir:    true,
			segments: []string{},
		},
		title:  title,
		lister: lister,
		keys:   DefaultKeyMap(),
		logger: zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Root returns the root path token.
func (m *Model) Root() string { return m.root.path }

// Title returns the heading shown above the tree.
func (m *Model) Title() string { return m.title }

// Focus makes the tree react to key messages.
func (m *Model) Focus() { m.focused = true }

// Blur stops the tree from reacting to key messages.
func (m *Model) Blur() { m.focused = false }

// Focused reports whether the tree has focus.
func (m *Model) Focused() bool { return m.focused }

// CursorLine returns the index of the cursor row within View.
func (m *Model) CursorLine() int { return m.cursor }

// Len returns the number of visible rows.
func (m *Model) Len() int { return len(m.rows()) }

// CursorPath returns the path under the cursor, or "" on an error row.
func (m *Model) CursorPath() string {
	r := m.rows()[m.cursor]
	if r.n == nil {
		return ""
	}
	return r.n.path
}

// Update handles key messages while focused. Choosing a node returns the
// DirectorySelectedMsg or FileSelectedMsg directly so the owner can record it
// before the next key is processed; every other key returns nil.
func (m *Model) Update(msg tea.Msg) tea.Msg {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return nil
	}

	rows := m.rows()
	current := rows[m.cursor].n

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(keyMsg, m.keys.Down):
		if m.cursor < len(rows)-1 {
			m.cursor++
		}
	case key.Matches(keyMsg, m.keys.Home):
		m.cursor = 0
	case key.Matches(keyMsg, m.keys.End):
		m.cursor = len(rows) - 1
	case key.Matches(keyMsg, m.keys.Select):
		return m.choose(current)
	case key.Matches(keyMsg, m.keys.Expand):
		if current != nil && current.isDir {
			if !current.expanded {
				m.expand(current)
			} else if len(m.rows()) > m.cursor+1 {
				m.cursor++
			}
		}
	case key.Matches(keyMsg, m.keys.Collapse):
		if current == nil {
			break
		}
		if current.isDir && current.expanded {
			current.expanded = false
		} else if current.parent != nil {
			m.moveTo(current.parent)
		}
	}

	m.clamp()
	return nil
}

// choose toggles a directory and reports the selection.
func (m *Model) choose(n *node) tea.Msg {
	if n == nil {
		return nil
	}
	root, path := m.root.path, n.path
	if n.isDir {
		if n.expanded {
			n.expanded = false
		} else {
			m.expand(n)
		}
		m.clamp()
		return DirectorySelectedMsg{Root: root, Path: path}
	}
	return FileSelectedMsg{Root: root, Path: path}
}

func (m *Model) expand(n *node) {
	// A failed listing is retried on the next expansion
	if !n.loaded || n.err != nil {
		m.load(n)
	}
	n.expanded = true
}

func (m *Model) load(n *node) {
	n.loaded = true
	n.err = nil

	infos, err := m.lister.ListDir(n.path)
	if err != nil {
		n.err = err
		m.logger.Warn().Err(err).Str("path", n.path).Msg("failed to list directory")
		return
	}

	n.ignore = m.parentIgnore(n)
	if m.ignores != nil {
		matcher, err := m.ignores.Load(n.ignore, n.path, n.segments)
		if err != nil {
			m.logger.Debug().Err(err).Str("path", n.path).Msg("ignoring unreadable .gitignore")
		}
		n.ignore = matcher
	}

	children := make([]*node, 0, len(infos))
	for _, info := range infos {
		name := info.Name()
		if !m.hidden && strings.HasPrefix(name, ".") {
			continue
		}
		segments := append(append([]string{}, n.segments...), name)
		if n.ignore.ShouldIgnore(segments, info.IsDir()) {
			continue
		}
		children = append(children, &node{
			name:     name,
			path:     filepath.Join(n.path, name),
			isDir:    info.IsDir(),
			depth:    n.depth + 1,
			segments: segments,
			parent:   n,
		})
	}

	sort.SliceStable(children, func(i, j int) bool {
		if children[i].isDir != children[j].isDir {
			return children[i].isDir
		}
		return strings.ToLower(children[i].name) < strings.ToLower(children[j].name)
	})
	n.children = children
}

func (m *Model) parentIgnore(n *node) *gitutil.IgnoreMatcher {
	if n.parent == nil {
		return nil
	}
	return n.parent.ignore
}

func (m *Model) rows() []row {
	var out []row
	var walk func(n *node)
	walk = func(n *node) {
		out = append(out, row{n: n})
		if !n.expanded {
			return
		}
		if n.err != nil {
			out = append(out, row{errOf: n})
			return
		}
		for _, child := range n.children {
			walk(child)
		}
	}
	walk(m.root)
	return out
}

func (m *Model) moveTo(target *node) {
	for i, r := range m.rows() {
		if r.n == target {
			m.cursor = i
			return
		}
	}
}

func (m *Model) clamp() {
	n := len(m.rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// View renders the visible rows.
func (m *Model) View() string {
	rows := m.rows()
	lines := make([]string, 0, len(rows))
	for i, r := range rows {
		line := m.renderRow(r)
		if i == m.cursor && m.focused {
			line = views.TreeCursorStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderRow(r row) string {
	if r.errOf != nil {
		indent := strings.Repeat("  ", r.errOf.depth+1)
		return indent + views.ErrorStyle.Render("⚠ "+r.errOf.err.Error())
	}

	n := r.n
	indent := strings.Repeat("  ", n.depth)
	if !n.isDir {
		return indent + "  " + views.TreeFileStyle.Render(n.name)
	}

	marker := "▸ "
	if n.expanded {
		marker = "▾ "
	}
	if n == m.root {
		return indent + marker + views.TreeRootStyle.Render(n.name)
	}
	return indent + marker + views.TreeDirStyle.Render(n.name+string(filepath.Separator))
}
