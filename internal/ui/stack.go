package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
)

// Stack is the program model. It owns the screen stack and routes every
// message to the topmost screen only.
type Stack struct {
	screens []Screen
	pending []tea.Cmd
	logger  zerolog.Logger

	width  int
	height int
}

// NewStack creates a stack whose base screen is mounted on Init.
func NewStack(base Screen, logger zerolog.Logger) *Stack {
	if base == nil {
		panic("base screen is required")
	}
	return &Stack{
		screens: []Screen{base},
		logger:  logger,
	}
}

// Init mounts the base screen.
func (s *Stack) Init() tea.Cmd {
	cmd, err := s.screens[0].Mount(s, s.width, s.height)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to mount base screen")
		return tea.Quit
	}
	return tea.Batch(cmd, s.flush())
}

// PushScreen mounts sc and places it on top.
func (s *Stack) PushScreen(sc Screen) error {
	cmd, err := sc.Mount(s, s.width, s.height)
	if err != nil {
		return fmt.Errorf("failed to push screen: %w", err)
	}
	s.screens = append(s.screens, sc)
	s.pending = append(s.pending, cmd)
	s.logger.Debug().Int("depth", len(s.screens)).Msg("screen pushed")
	return nil
}

// PopScreen unmounts the top screen. It does nothing when only the base
// screen is left.
func (s *Stack) PopScreen() {
	if len(s.screens) <= 1 {
		return
	}
	top := s.screens[len(s.screens)-1]
	s.screens = s.screens[:len(s.screens)-1]
	top.Unmount()
	s.logger.Debug().Int("depth", len(s.screens)).Msg("screen popped")
}

// Depth returns the number of screens.
func (s *Stack) Depth() int { return len(s.screens) }

// Top returns the topmost screen.
func (s *Stack) Top() Screen { return s.screens[len(s.screens)-1] }

// Update handles messages.
func (s *Stack) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return s, tea.Quit
		}
	case tea.WindowSizeMsg:
		s.width, s.height = msg.Width, msg.Height
		for _, sc := range s.screens {
			sc.Resize(msg.Width, msg.Height)
		}
		return s, s.flush()
	}

	cmd := s.Top().Update(msg)
	return s, tea.Batch(cmd, s.flush())
}

// flush returns the commands of screens mounted since the last call.
func (s *Stack) flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// View renders the topmost screen.
func (s *Stack) View() string {
	return s.Top().View()
}
