package picker

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/Cyclone1070/volpick/internal/selection"
)

// Picker lays out the tree panel, the status bar and the action bar
// vertically and owns the focus ring: every tree, then Cancel, then Confirm.
type Picker struct {
	opts       Options
	store      *selection.Store
	panel      *Panel
	status     *StatusBar
	actions    *ActionBar
	dispatcher *Dispatcher
	keys       KeyMap
	help       help.Model
	logger     zerolog.Logger

	focus  int
	width  int
	height int
}

// New enumerates the volumes once and composes the picker.
func New(opts Options, deps Deps) *Picker {
	if deps.Store == nil {
		panic("store is required")
	}
	if deps.Volumes == nil {
		panic("volume source is required")
	}
	if deps.Lister == nil {
		panic("lister is required")
	}

	filter := selection.NewFilter(opts.Filter, opts.Extensions)
	if deps.EnforceFilter {
		filter = filter.WithHook(selection.Strict)
	}

	logger := deps.Logger
	volumes := deps.Volumes.Volumes()
	logger.Debug().
		Int("volumes", len(volumes)).
		Str("filter", string(filter.Mode)).
		Bool("enforced", filter.Enforced()).
		Msg("picker created")

	p := &Picker{
		opts:  opts,
		store: deps.Store,
		panel: NewPanel(volumes, deps.Lister, deps.Store, filter, PanelOptions{
			Tree:   deps.Tree,
			Logger: logger,
		}),
		status:     NewStatusBar(deps.Store),
		actions:    NewActionBar(),
		dispatcher: NewDispatcher(deps.Store, opts, deps.Host),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		logger:     logger,
	}

	switch {
	case p.panel.Len() == 0:
		p.setFocus(p.cancelIndex())
	case p.panel.FocusRootOf(opts.StartingDirectory):
		p.focus = p.panel.FocusIndex()
	default:
		p.setFocus(0)
	}
	return p
}

// Keys returns the picker keybindings.
func (p *Picker) Keys() KeyMap { return p.keys }

// Panel returns the multi-root tree panel.
func (p *Picker) Panel() *Panel { return p.panel }

// Status returns the status bar.
func (p *Picker) Status() *StatusBar { return p.status }

// Actions returns the action bar.
func (p *Picker) Actions() *ActionBar { return p.actions }

// Focus returns the position in the focus ring.
func (p *Picker) Focus() int { return p.focus }

func (p *Picker) cancelIndex() int  { return p.panel.Len() + ButtonCancel }
func (p *Picker) confirmIndex() int { return p.panel.Len() + ButtonConfirm }
func (p *Picker) ringSize() int     { return p.panel.Len() + len(buttonLabels) }

func (p *Picker) setFocus(i int) {
	n := p.ringSize()
	i = ((i % n) + n) % n
	p.focus = i
	if i < p.panel.Len() {
		p.actions.Blur()
		p.panel.Focus(i)
		return
	}
	p.panel.Blur()
	p.actions.Focus(i - p.panel.Len())
}

// Update handles a message. After dispatch it ignores everything.
func (p *Picker) Update(msg tea.Msg) tea.Cmd {
	if p.dispatcher.Dispatched() {
		return nil
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		p.SetSize(msg.Width, msg.Height)
		return nil
	case tea.KeyMsg:
		return p.handleKey(msg)
	}
	return p.panel.Update(msg)
}

func (p *Picker) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, p.keys.Cancel):
		p.Cancel()
		return nil
	case key.Matches(msg, p.keys.Confirm):
		p.Confirm()
		return nil
	case key.Matches(msg, p.keys.Next):
		p.setFocus(p.focus + 1)
		return nil
	case key.Matches(msg, p.keys.Prev):
		p.setFocus(p.focus - 1)
		return nil
	}

	switch p.focus {
	case p.cancelIndex():
		if key.Matches(msg, p.keys.Activate) {
			p.Cancel()
		}
		return nil
	case p.confirmIndex():
		if key.Matches(msg, p.keys.Activate) {
			p.Confirm()
		}
		return nil
	}
	return p.panel.Update(msg)
}

// Cancel dismisses the picker through OnCancel. It reports false if the
// picker was already dismissed.
func (p *Picker) Cancel() bool {
	ok := p.dispatcher.Cancel()
	if ok {
		p.logger.Info().Str("path", p.store.Current()).Msg("selection cancelled")
	}
	return ok
}

// Confirm dismisses the picker through OnConfirm and refreshes the
// registered widgets. It reports false if the picker was already dismissed.
func (p *Picker) Confirm() bool {
	ok := p.dispatcher.Confirm()
	if ok {
		p.logger.Info().Str("path", p.store.Current()).Msg("selection confirmed")
	}
	return ok
}

// Dispatched reports whether Cancel or Confirm ran.
func (p *Picker) Dispatched() bool { return p.dispatcher.Dispatched() }

// Done yields the dispatch Result exactly once.
func (p *Picker) Done() <-chan Result { return p.dispatcher.Done() }

// SetSize lays out the children. The panel takes the space left by the
// status bar, the action bar and the help line.
func (p *Picker) SetSize(width, height int) {
	p.width, p.height = width, height
	p.status.SetWidth(width)
	p.actions.SetWidth(width)
	p.help.Width = width

	rest := lipgloss.Height(p.status.View()) +
		lipgloss.Height(p.actions.View()) +
		lipgloss.Height(p.help.View(p.keys))
	panelHeight := height - rest
	if panelHeight < 1 {
		panelHeight = 1
	}
	p.panel.SetSize(width, panelHeight)
}

// View renders the picker.
func (p *Picker) View() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		p.panel.View(),
		p.status.View(),
		p.actions.View(),
		p.help.View(p.keys),
	)
}

// Close detaches the status bar from the store.
func (p *Picker) Close() {
	p.status.Close()
}
