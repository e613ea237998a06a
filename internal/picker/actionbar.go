package picker

import "github.com/Cyclone1070/volpick/internal/ui/views"

// Button indices, left to right.
const (
	ButtonCancel = iota
	ButtonConfirm
)

var buttonLabels = []string{"Cancel", "Confirm"}

// ActionBar holds the Cancel and Confirm buttons.
type ActionBar struct {
	active int
	width  int
}

// NewActionBar creates an action bar with no focused button.
func NewActionBar() *ActionBar {
	return &ActionBar{active: -1}
}

// Focus highlights a button.
func (a *ActionBar) Focus(button int) {
	if button < 0 || button >= len(buttonLabels) {
		return
	}
	a.active = button
}

// Blur removes the highlight.
func (a *ActionBar) Blur() { a.active = -1 }

// Active returns the focused button, or -1.
func (a *ActionBar) Active() int { return a.active }

// SetWidth sets the rendered width.
func (a *ActionBar) SetWidth(width int) { a.width = width }

// View renders the buttons side by side.
func (a *ActionBar) View() string {
	return views.RenderButtonRow(buttonLabels, a.active, a.width)
}
