package views

import (
	"github.com/Cyclone1070/volpick/internal/config"
	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	ColorPrimary = lipgloss.Color("63")
	ColorBorder  = lipgloss.Color("240")
	ColorMuted   = lipgloss.Color("241")
	ColorError   = lipgloss.Color("203")
)

// Styles. Rebuilt by Configure.
var (
	HeaderStyle lipgloss.Style
	ScreenStyle lipgloss.Style // selection screen frame
	MutedStyle  lipgloss.Style
	ErrorStyle  lipgloss.Style

	// Tree rows
	TreeRootStyle   lipgloss.Style
	TreeDirStyle    lipgloss.Style
	TreeFileStyle   lipgloss.Style
	TreeCursorStyle lipgloss.Style

	// Multi-root panel
	VolumeStyle       lipgloss.Style
	VolumeFocusStyle  lipgloss.Style
	VolumeTitleStyle  lipgloss.Style
	StatusBoxStyle    lipgloss.Style
	StatusTitleStyle  lipgloss.Style
	ButtonStyle       lipgloss.Style
	ButtonActiveStyle lipgloss.Style

	// Help overlay
	HelpBoxStyle lipgloss.Style
)

func init() {
	rebuild()
}

// Configure applies the configured palette and rebuilds every style.
// Call once before the program starts.
func Configure(cfg config.UIConfig) {
	ColorPrimary = lipgloss.Color(cfg.ColorPrimary)
	ColorBorder = lipgloss.Color(cfg.ColorBorder)
	ColorMuted = lipgloss.Color(cfg.ColorMuted)
	rebuild()
}

func rebuild() {
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("230")).
		Background(ColorPrimary).
		Padding(0, 1)
	ScreenStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder)
	MutedStyle = lipgloss.NewStyle().Foreground(ColorMuted)
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorError)

	TreeRootStyle = lipgloss.NewStyle().Bold(true)
	TreeDirStyle = lipgloss.NewStyle().Foreground(ColorPrimary)
	TreeFileStyle = lipgloss.NewStyle()
	TreeCursorStyle = lipgloss.NewStyle().Reverse(true)

	VolumeStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)
	VolumeFocusStyle = VolumeStyle.BorderForeground(ColorPrimary)
	VolumeTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorMuted)

	StatusBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1).
		MarginTop(1)
	StatusTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorMuted)

	ButtonStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Align(lipgloss.Center)
	ButtonActiveStyle = ButtonStyle.
		BorderForeground(ColorPrimary).
		Foreground(ColorPrimary).
		Bold(true)

	HelpBoxStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2)
}
