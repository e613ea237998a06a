package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cyclone1070/volpick/internal/picker"
	"github.com/Cyclone1070/volpick/internal/selection"
)

func newScreenStack(t *testing.T) (*Stack, *MockScreen) {
	t.Helper()
	base := &MockScreen{Name: "base"}
	s := NewStack(base, zerolog.Nop())
	s.Init()
	s.Update(windowSize)
	return s, base
}

func TestSelectionScreen_MountComposesPicker(t *testing.T) {
	store := selection.NewStore()
	s, _ := newScreenStack(t)
	screen := NewSelectionScreen(picker.Options{}, testPickerDeps(store), &MockMarkdownRenderer{})
	assert.Nil(t, screen.Picker())

	require.NoError(t, s.PushScreen(screen))

	require.NotNil(t, screen.Picker())
	assert.True(t, screen.Mounted())
	assert.Equal(t, 1, store.Subscribers())
	view := screen.View()
	assert.Contains(t, view, SelectionTitle)
	assert.Contains(t, view, "Data (")
}

func TestSelectionScreen_ViewIsFramed(t *testing.T) {
	store := selection.NewStore()
	s, _ := newScreenStack(t)
	screen := NewSelectionScreen(picker.Options{}, testPickerDeps(store), nil)
	require.NoError(t, s.PushScreen(screen))

	lines := strings.Split(screen.View(), "\n")

	require.Greater(t, len(lines), 2)
	assert.True(t, strings.HasPrefix(lines[0], "┌"), lines[0])
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "└"), lines[len(lines)-1])
	assert.Contains(t, lines[1], SelectionTitle)
	for _, line := range lines {
		assert.LessOrEqual(t, lipgloss.Width(line), windowSize.Width)
	}
}

func TestSelectionScreen_HelpKeyAfterSelection_KeepsSelection(t *testing.T) {
	store := selection.NewStore()
	s, _ := newScreenStack(t)
	screen := NewSelectionScreen(picker.Options{}, testPickerDeps(store), nil)
	require.NoError(t, s.PushScreen(screen))

	// The help screen takes over before any returned command could run
	s.Update(keyEnter)
	s.Update(runes("?"))

	assert.Equal(t, dataRoot, store.Current())
	assert.IsType(t, &HelpScreen{}, s.Top())
}

func TestSelectionScreen_ConfirmPopsAndReportsResult(t *testing.T) {
	store := selection.NewStore()
	s, base := newScreenStack(t)
	var confirmed string
	screen := NewSelectionScreen(picker.Options{
		OnConfirm: func(path string) { confirmed = path },
	}, testPickerDeps(store), nil)
	require.NoError(t, s.PushScreen(screen))

	drive(s, keyEnter)
	drive(s, keyDown)
	drive(s, keyEnter)
	drive(s, keyCtrlS)

	assert.Equal(t, projects, confirmed)
	assert.Equal(t, 1, s.Depth())
	assert.False(t, screen.Mounted())
	assert.Equal(t, 0, store.Subscribers())
	assert.Contains(t, base.Msgs, ResultMsg{Action: picker.ActionConfirm, Path: projects})
}

func TestSelectionScreen_CancelReportsResult(t *testing.T) {
	store := selection.NewStore()
	s, base := newScreenStack(t)
	require.NoError(t, s.PushScreen(NewSelectionScreen(picker.Options{}, testPickerDeps(store), nil)))

	drive(s, keyEsc)

	assert.Equal(t, 1, s.Depth())
	assert.Contains(t, base.Msgs, ResultMsg{Action: picker.ActionCancel, Path: ""})
}

func TestSelectionScreen_RemountFails(t *testing.T) {
	store := selection.NewStore()
	s, _ := newScreenStack(t)
	screen := NewSelectionScreen(picker.Options{}, testPickerDeps(store), nil)
	require.NoError(t, s.PushScreen(screen))
	drive(s, keyEsc)

	err := s.PushScreen(screen)

	assert.ErrorIs(t, err, ErrScreenReused)
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, 0, store.Subscribers())
}

func TestSelectionScreen_MountedTwiceFails(t *testing.T) {
	store := selection.NewStore()
	s, _ := newScreenStack(t)
	screen := NewSelectionScreen(picker.Options{}, testPickerDeps(store), nil)
	require.NoError(t, s.PushScreen(screen))

	_, err := screen.Mount(s, 10, 10)

	assert.ErrorIs(t, err, ErrScreenReused)
}

func TestSelectionScreen_ReopenShowsPreviousSelection(t *testing.T) {
	store := selection.NewStore()
	s, _ := newScreenStack(t)

	first := NewSelectionScreen(picker.Options{}, testPickerDeps(store), nil)
	require.NoError(t, s.PushScreen(first))
	drive(s, keyEnter)
	drive(s, keyEsc)

	second := NewSelectionScreen(picker.Options{}, testPickerDeps(store), nil)
	require.NoError(t, s.PushScreen(second))

	assert.Equal(t, dataRoot, second.Picker().Status().Text())
	assert.Equal(t, 1, store.Subscribers())
}

func TestSelectionScreen_HelpKeyPushesHelp(t *testing.T) {
	store := selection.NewStore()
	s, _ := newScreenStack(t)
	renderer := &MockMarkdownRenderer{}
	screen := NewSelectionScreen(picker.Options{}, testPickerDeps(store), renderer)
	require.NoError(t, s.PushScreen(screen))

	drive(s, runes("?"))

	require.Equal(t, 3, s.Depth())
	assert.IsType(t, &HelpScreen{}, s.Top())
	assert.Contains(t, s.View(), "rendered:")

	drive(s, runes("?"))
	assert.Equal(t, 2, s.Depth())
	assert.Same(t, screen, s.Top())
	assert.False(t, screen.Picker().Dispatched())
}
