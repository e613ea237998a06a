package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Cyclone1070/volpick/internal/ui/services"
	"github.com/Cyclone1070/volpick/internal/ui/views"
)

// HelpText is the key reference shown by the help screen.
const HelpText = `# Keys

| Key | Action |
|---|---|
| ↑ ↓ / k j | move |
| home end / g G | first, last row |
| enter | select; expand or collapse a directory |
| → / l | expand |
| ← / h | collapse, or go to parent |
| tab / shift+tab | next or previous volume or button |
| ctrl+s | confirm the current selection |
| esc | cancel |
| ? | toggle this help |

The status bar shows the last directory or file you selected on any
volume. Confirm hands it to the application, cancel discards the dialog.
`

// HelpScreen shows the key reference.
type HelpScreen struct {
	renderer services.MarkdownRenderer
	host     ModalHost
	content  string
	mounted  bool
	width    int
}

// NewHelpScreen creates a help screen.
func NewHelpScreen(renderer services.MarkdownRenderer) *HelpScreen {
	if renderer == nil {
		renderer = services.PlainRenderer{}
	}
	return &HelpScreen{renderer: renderer}
}

// Mount renders the key reference.
func (h *HelpScreen) Mount(host ModalHost, width, height int) (tea.Cmd, error) {
	if h.mounted {
		return nil, ErrScreenReused
	}
	h.mounted = true
	h.host = host
	h.Resize(width, height)
	return nil, nil
}

// Update pops the screen on esc, q or ?.
func (h *HelpScreen) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc", "q", "?":
			h.host.PopScreen()
		}
	}
	return nil
}

// Resize re-renders the markdown for the new width.
func (h *HelpScreen) Resize(width, _ int) {
	h.width = width
	wrap := width - 6
	out, err := h.renderer.Render(HelpText, wrap)
	if err != nil {
		out = HelpText
	}
	h.content = out
}

// View renders the help box.
func (h *HelpScreen) View() string {
	style := views.HelpBoxStyle
	if h.width > 2 {
		style = style.Width(h.width - 2)
	}
	return style.Render(h.content)
}

// Unmount does nothing.
func (h *HelpScreen) Unmount() {}
