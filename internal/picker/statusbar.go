package picker

import (
	"github.com/Cyclone1070/volpick/internal/selection"
	"github.com/Cyclone1070/volpick/internal/ui/views"
)

// StatusBar shows the current selection and follows the store until closed.
type StatusBar struct {
	text        string
	width       int
	unsubscribe func()
}

// NewStatusBar starts from the store's current value, so a reopened picker
// shows the selection left by the previous one.
func NewStatusBar(store *selection.Store) *StatusBar {
	b := &StatusBar{text: store.Current()}
	b.unsubscribe = store.Subscribe(func(path string) {
		b.text = path
	})
	return b
}

// Text returns the displayed path.
func (b *StatusBar) Text() string { return b.text }

// SetWidth sets the rendered width.
func (b *StatusBar) SetWidth(width int) { b.width = width }

// View renders the titled status box.
func (b *StatusBar) View() string {
	return views.RenderStatus(b.text, b.width)
}

// Close stops following the store. Safe to call more than once.
func (b *StatusBar) Close() {
	if b.unsubscribe != nil {
		b.unsubscribe()
		b.unsubscribe = nil
	}
}
