package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// StatusTitle labels the selection status box.
const StatusTitle = "Current Selection"

// RenderStatus renders the path status bar: a titled box holding the
// current selection. An empty selection renders a muted placeholder.
func RenderStatus(path string, width int) string {
	text := path
	if text == "" {
		text = MutedStyle.Render("nothing selected")
	}

	box := StatusBoxStyle
	if width > 2 {
		// Leave room for the border
		box = box.Width(width - 2)
	}

	return box.Render(StatusTitleStyle.Render(StatusTitle) + "\n" + text)
}

// RenderVolume renders one tree root inside its bordered frame.
func RenderVolume(title, body string, focused bool, width int) string {
	style := VolumeStyle
	if focused {
		style = VolumeFocusStyle
	}
	if width > 2 {
		style = style.Width(width - 2)
	}
	return style.Render(VolumeTitleStyle.Render(title) + "\n" + body)
}

// RenderButton renders an action button. Active marks the focused button.
func RenderButton(label string, active bool, width int) string {
	style := ButtonStyle
	if active {
		style = ButtonActiveStyle
	}
	if width > 2 {
		style = style.Width(width - 2)
	}
	return style.Render(label)
}

// RenderButtonRow lays out buttons side by side, splitting width evenly.
func RenderButtonRow(labels []string, active int, width int) string {
	if len(labels) == 0 {
		return ""
	}
	each := 0
	if width > 0 {
		each = width / len(labels)
	}
	rendered := make([]string, 0, len(labels))
	for i, label := range labels {
		rendered = append(rendered, RenderButton(label, i == active, each))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

// RenderHeader renders a full-width title line.
func RenderHeader(title string, width int) string {
	style := HeaderStyle
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(strings.TrimSpace(title))
}
