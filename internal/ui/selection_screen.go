package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Cyclone1070/volpick/internal/picker"
	"github.com/Cyclone1070/volpick/internal/ui/services"
	"github.com/Cyclone1070/volpick/internal/ui/views"
)

// SelectionTitle heads the selection screen.
const SelectionTitle = "Select a file or directory"

// ResultMsg reports the outcome of a selection screen. It is delivered to
// the screen that is on top after the selection screen popped.
type ResultMsg picker.Result

type screenState int

const (
	stateConstructed screenState = iota
	stateMounted
	statePopped
)

// SelectionScreen hosts one Picker. It is single use: a popped screen
// cannot be pushed again.
type SelectionScreen struct {
	opts     picker.Options
	deps     picker.Deps
	renderer services.MarkdownRenderer

	host   ModalHost
	picker *picker.Picker
	state  screenState
	width  int
	height int
}

// NewSelectionScreen creates a screen. deps.Host is replaced by the stack
// the screen is mounted on.
func NewSelectionScreen(opts picker.Options, deps picker.Deps, renderer services.MarkdownRenderer) *SelectionScreen {
	if renderer == nil {
		renderer = services.PlainRenderer{}
	}
	return &SelectionScreen{
		opts:     opts,
		deps:     deps,
		renderer: renderer,
	}
}

// Mount composes the picker with host as its dismisser.
func (s *SelectionScreen) Mount(host ModalHost, width, height int) (tea.Cmd, error) {
	if s.state != stateConstructed {
		return nil, ErrScreenReused
	}
	deps := s.deps
	deps.Host = host
	s.host = host
	s.picker = picker.New(s.opts, deps)
	s.state = stateMounted
	s.Resize(width, height)
	return nil, nil
}

// Picker returns the composed picker, or nil before Mount.
func (s *SelectionScreen) Picker() *picker.Picker { return s.picker }

// Mounted reports whether the screen is on the stack.
func (s *SelectionScreen) Mounted() bool { return s.state == stateMounted }

// Update forwards messages to the picker. Once the picker dispatched it
// returns a command producing ResultMsg.
func (s *SelectionScreen) Update(msg tea.Msg) tea.Cmd {
	if s.state != stateMounted {
		return nil
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, s.picker.Keys().Help) {
		if err := s.host.PushScreen(NewHelpScreen(s.renderer)); err != nil {
			s.deps.Logger.Error().Err(err).Msg("failed to open help")
		}
		return nil
	}

	cmd := s.picker.Update(msg)
	select {
	case res := <-s.picker.Done():
		return tea.Batch(cmd, func() tea.Msg { return ResultMsg(res) })
	default:
		return cmd
	}
}

// Resize lays the picker out below the title, inside the screen border.
func (s *SelectionScreen) Resize(width, height int) {
	s.width, s.height = width, height
	if s.picker == nil {
		return
	}
	inner, innerHeight := s.innerSize()
	header := lipgloss.Height(views.RenderHeader(SelectionTitle, inner))
	s.picker.SetSize(inner, innerHeight-header)
}

func (s *SelectionScreen) innerSize() (int, int) {
	w := max(s.width-views.ScreenStyle.GetHorizontalFrameSize(), 0)
	h := max(s.height-views.ScreenStyle.GetVerticalFrameSize(), 0)
	return w, h
}

// View renders the title and the picker in a bordered frame.
func (s *SelectionScreen) View() string {
	if s.picker == nil {
		return ""
	}
	inner, _ := s.innerSize()
	body := lipgloss.JoinVertical(lipgloss.Left,
		views.RenderHeader(SelectionTitle, inner),
		s.picker.View(),
	)
	return views.ScreenStyle.Width(inner).Render(body)
}

// Unmount detaches the picker from the selection store.
func (s *SelectionScreen) Unmount() {
	if s.picker != nil {
		s.picker.Close()
	}
	s.state = statePopped
}
