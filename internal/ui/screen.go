package ui

import (
	"errors"

	tea "github.com/charmbracelet/bubbletea"
)

// ErrScreenReused is returned when a screen that was already mounted is
// mounted again. Screens are single use.
var ErrScreenReused = errors.New("screen cannot be mounted twice")

// Screen is one layer of the modal stack.
type Screen interface {
	// Mount attaches the screen to its host. The returned command is run
	// by the program.
	Mount(host ModalHost, width, height int) (tea.Cmd, error)
	Update(msg tea.Msg) tea.Cmd
	View() string
	Resize(width, height int)
	// Unmount is called once, when the screen is popped.
	Unmount()
}

// ModalHost pushes and pops screens.
type ModalHost interface {
	PushScreen(s Screen) error
	// PopScreen removes the topmost screen. The base screen is never removed.
	PopScreen()
}
