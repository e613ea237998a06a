package picker

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/Cyclone1070/volpick/internal/selection"
	"github.com/Cyclone1070/volpick/internal/tree"
	"github.com/Cyclone1070/volpick/internal/ui/views"
	"github.com/Cyclone1070/volpick/internal/volume"
)

// PanelOptions configures a Panel.
type PanelOptions struct {
	Tree   []tree.Option
	Logger zerolog.Logger
}

// Panel shows one tree per volume and publishes every navigation event
// to the selection store.
type Panel struct {
	trees  []*tree.Model
	store  *selection.Store
	filter selection.Filter
	logger zerolog.Logger

	focus    int
	viewport viewport.Model
	width    int
}

// NewPanel builds one tree per volume, titled with the volume title.
func NewPanel(volumes []volume.Volume, lister tree.Lister, store *selection.Store, filter selection.Filter, opts PanelOptions) *Panel {
	if store == nil {
		panic("store is required")
	}
	p := &Panel{
		store:    store,
		filter:   filter,
		logger:   opts.Logger,
		focus:    -1,
		viewport: viewport.New(0, 0),
	}
	treeOpts := append([]tree.Option{tree.WithLogger(opts.Logger)}, opts.Tree...)
	for _, v := range volumes {
		p.trees = append(p.trees, tree.New(v.Root, v.Title(), lister, treeOpts...))
	}
	return p
}

// Trees returns the volume trees in volume order.
func (p *Panel) Trees() []*tree.Model { return p.trees }

// Len returns the number of trees.
func (p *Panel) Len() int { return len(p.trees) }

// FocusIndex returns the focused tree, or -1.
func (p *Panel) FocusIndex() int { return p.focus }

// Focus gives key focus to tree i.
func (p *Panel) Focus(i int) bool {
	if i < 0 || i >= len(p.trees) {
		return false
	}
	p.Blur()
	p.focus = i
	p.trees[i].Focus()
	p.scrollToCursor()
	return true
}

// Blur removes key focus from every tree.
func (p *Panel) Blur() {
	if p.focus >= 0 {
		p.trees[p.focus].Blur()
	}
	p.focus = -1
}

// FocusNext focuses the following tree. It reports false, leaving focus
// unchanged, when the last tree is focused.
func (p *Panel) FocusNext() bool {
	return p.Focus(p.focus + 1)
}

// FocusPrev focuses the preceding tree. It reports false, leaving focus
// unchanged, when the first tree is focused.
func (p *Panel) FocusPrev() bool {
	if p.focus <= 0 {
		return false
	}
	return p.Focus(p.focus - 1)
}

// FocusRootOf focuses the tree whose root is the longest prefix of path.
func (p *Panel) FocusRootOf(path string) bool {
	best, bestLen := -1, -1
	for i, t := range p.trees {
		if hasPathPrefix(path, t.Root()) && len(t.Root()) > bestLen {
			best, bestLen = i, len(t.Root())
		}
	}
	if best < 0 {
		return false
	}
	return p.Focus(best)
}

func hasPathPrefix(path, root string) bool {
	if path == "" || root == "" {
		return false
	}
	path, root = filepath.Clean(path), filepath.Clean(root)
	if runtime.GOOS == "windows" {
		path, root = strings.ToLower(path), strings.ToLower(root)
	}
	if !strings.HasPrefix(path, root) {
		return false
	}
	if len(path) == len(root) || strings.HasSuffix(root, string(os.PathSeparator)) {
		return true
	}
	return path[len(root)] == os.PathSeparator
}

// Update routes keys to the focused tree and records tree selections.
// A selection made by a key is recorded before Update returns, so a confirm
// key queued right behind it sees the new path.
func (p *Panel) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tree.DirectorySelectedMsg, tree.FileSelectedMsg:
		p.record(msg)
	case tea.KeyMsg:
		if p.focus < 0 {
			return nil
		}
		chosen := p.trees[p.focus].Update(msg)
		p.scrollToCursor()
		p.record(chosen)
	}
	return nil
}

func (p *Panel) record(msg tea.Msg) {
	switch msg := msg.(type) {
	case tree.DirectorySelectedMsg:
		p.publish(selection.Event{Root: msg.Root, Path: msg.Path, Kind: selection.KindDirectory})
	case tree.FileSelectedMsg:
		p.publish(selection.Event{Root: msg.Root, Path: msg.Path, Kind: selection.KindFile})
	}
}

func (p *Panel) publish(ev selection.Event) {
	if !p.filter.Allows(ev) {
		p.logger.Debug().
			Str("path", ev.Path).
			Stringer("kind", ev.Kind).
			Str("filter", string(p.filter.Mode)).
			Msg("selection rejected by filter")
		return
	}
	p.store.Record(ev.Path)
}

// SetSize sets the visible area.
func (p *Panel) SetSize(width, height int) {
	p.width = width
	p.viewport.Width = width
	p.viewport.Height = height
	p.scrollToCursor()
}

// Height returns the visible height.
func (p *Panel) Height() int { return p.viewport.Height }

// ScrollOffset returns the first visible content line.
func (p *Panel) ScrollOffset() int { return p.viewport.YOffset }

func (p *Panel) blocks() []string {
	blocks := make([]string, 0, len(p.trees))
	for i, t := range p.trees {
		blocks = append(blocks, views.RenderVolume(t.Title(), t.View(), i == p.focus, p.width))
	}
	return blocks
}

func (p *Panel) content() string {
	if len(p.trees) == 0 {
		return views.MutedStyle.Render("No volumes found")
	}
	return lipgloss.JoinVertical(lipgloss.Left, p.blocks()...)
}

// scrollToCursor keeps the focused tree's cursor row visible.
func (p *Panel) scrollToCursor() {
	p.viewport.SetContent(p.content())
	if p.focus < 0 || p.viewport.Height <= 0 {
		return
	}

	start := 0
	for i, block := range p.blocks() {
		if i == p.focus {
			break
		}
		start += lipgloss.Height(block)
	}
	// Border and title precede the first row
	cursor := p.trees[p.focus].CursorLine()
	line := start + 2 + cursor

	top := p.viewport.YOffset
	switch {
	case line < top:
		if cursor == 0 {
			line = start
		}
		p.viewport.SetYOffset(line)
	case line >= top+p.viewport.Height:
		p.viewport.SetYOffset(line - p.viewport.Height + 1)
	}
}

// View renders the visible part of the panel.
func (p *Panel) View() string {
	p.viewport.SetContent(p.content())
	return p.viewport.View()
}
