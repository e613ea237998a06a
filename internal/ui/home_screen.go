package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Cyclone1070/volpick/internal/picker"
	"github.com/Cyclone1070/volpick/internal/ui/services"
	"github.com/Cyclone1070/volpick/internal/ui/views"
)

// PathLabel displays a path read from its source on every Refresh.
type PathLabel struct {
	source    func() string
	text      string
	refreshes int
}

// NewPathLabel creates a label reading from source.
func NewPathLabel(source func() string) *PathLabel {
	l := &PathLabel{source: source}
	l.text = source()
	return l
}

// Refresh re-reads the source.
func (l *PathLabel) Refresh(recompose bool) {
	l.refreshes++
	if recompose {
		l.text = l.source()
	}
}

// Text returns the displayed path.
func (l *PathLabel) Text() string { return l.text }

// Refreshes returns how many times the label was refreshed.
func (l *PathLabel) Refreshes() int { return l.refreshes }

// View renders the label.
func (l *PathLabel) View() string {
	if l.text == "" {
		return views.MutedStyle.Render("none")
	}
	return l.text
}

type homeKeys struct {
	Open key.Binding
	Quit key.Binding
}

func defaultHomeKeys() homeKeys {
	return homeKeys{
		Open: key.NewBinding(key.WithKeys("o", "enter"), key.WithHelp("o", "open picker")),
		Quit: key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// HomeScreen is the base screen. It opens a new selection screen on demand
// and shows the last confirmed path.
type HomeScreen struct {
	opts     picker.Options
	deps     picker.Deps
	renderer services.MarkdownRenderer
	once     bool
	keys     homeKeys

	host      ModalHost
	label     *PathLabel
	confirmed string
	results   []picker.Result
	width     int
}

// NewHomeScreen creates the base screen. opts callbacks and refreshers are
// kept and run after the home screen's own. With once set the picker opens
// on mount and the program quits after the first dispatch.
func NewHomeScreen(opts picker.Options, deps picker.Deps, renderer services.MarkdownRenderer, once bool) *HomeScreen {
	h := &HomeScreen{
		opts:     opts,
		deps:     deps,
		renderer: renderer,
		once:     once,
		keys:     defaultHomeKeys(),
	}
	h.label = NewPathLabel(func() string { return h.confirmed })
	return h
}

// Mount opens the picker right away in once mode.
func (h *HomeScreen) Mount(host ModalHost, width, _ int) (tea.Cmd, error) {
	h.host = host
	h.width = width
	if h.once {
		return nil, h.Open()
	}
	return nil, nil
}

// Open pushes a fresh selection screen.
func (h *HomeScreen) Open() error {
	opts := h.opts
	opts.OnConfirm = func(path string) {
		h.confirmed = path
		if h.opts.OnConfirm != nil {
			h.opts.OnConfirm(path)
		}
	}
	opts.OnCancel = func(path string) {
		if h.opts.OnCancel != nil {
			h.opts.OnCancel(path)
		}
	}
	opts.Refresh = append([]picker.Refresher{h.label}, h.opts.Refresh...)

	return h.host.PushScreen(NewSelectionScreen(opts, h.deps, h.renderer))
}

// Confirmed returns the last confirmed path.
func (h *HomeScreen) Confirmed() string { return h.confirmed }

// Outcome returns the last confirm result, or the last result when nothing
// was confirmed, or nil when no selection screen was closed.
func (h *HomeScreen) Outcome() *picker.Result {
	for i := len(h.results) - 1; i >= 0; i-- {
		if h.results[i].Action == picker.ActionConfirm {
			res := h.results[i]
			return &res
		}
	}
	if len(h.results) == 0 {
		return nil
	}
	res := h.results[len(h.results)-1]
	return &res
}

// Results returns the outcome of every closed selection screen.
func (h *HomeScreen) Results() []picker.Result { return h.results }

// Label returns the confirmed path label.
func (h *HomeScreen) Label() *PathLabel { return h.label }

// Update handles the open and quit keys and selection results.
func (h *HomeScreen) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case ResultMsg:
		h.results = append(h.results, picker.Result(msg))
		if h.once {
			return tea.Quit
		}
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, h.keys.Quit):
			return tea.Quit
		case key.Matches(msg, h.keys.Open):
			if err := h.Open(); err != nil {
				h.deps.Logger.Error().Err(err).Msg("failed to open picker")
			}
		}
	}
	return nil
}

// Resize records the width.
func (h *HomeScreen) Resize(width, _ int) { h.width = width }

// View renders the last confirmed path and the key hints.
func (h *HomeScreen) View() string {
	var sb strings.Builder
	sb.WriteString(views.StatusTitleStyle.Render("Last confirmed"))
	sb.WriteString("\n")
	sb.WriteString(h.label.View())

	hints := views.MutedStyle.Render("o open picker • q quit")
	return lipgloss.JoinVertical(lipgloss.Left,
		views.RenderHeader("volpick", h.width),
		"",
		sb.String(),
		"",
		hints,
	)
}

// Unmount does nothing; the base screen is never popped.
func (h *HomeScreen) Unmount() {}
