package ui

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/Cyclone1070/volpick/internal/picker"
	"github.com/Cyclone1070/volpick/internal/selection"
	"github.com/Cyclone1070/volpick/internal/volume"
)

// MockScreen records the calls made by the stack.
type MockScreen struct {
	Name      string
	MountErr  error
	MountCmd  tea.Cmd
	Host      ModalHost
	Msgs      []tea.Msg
	Sizes     [][2]int
	Unmounted int
}

func (s *MockScreen) Mount(host ModalHost, width, height int) (tea.Cmd, error) {
	if s.MountErr != nil {
		return nil, s.MountErr
	}
	s.Host = host
	s.Sizes = append(s.Sizes, [2]int{width, height})
	return s.MountCmd, nil
}

func (s *MockScreen) Update(msg tea.Msg) tea.Cmd {
	s.Msgs = append(s.Msgs, msg)
	return nil
}

func (s *MockScreen) View() string { return "screen:" + s.Name }

func (s *MockScreen) Resize(width, height int) {
	s.Sizes = append(s.Sizes, [2]int{width, height})
}

func (s *MockScreen) Unmount() { s.Unmounted++ }

// MockMarkdownRenderer implements services.MarkdownRenderer for testing.
type MockMarkdownRenderer struct {
	Err   error
	Calls int
}

func (m *MockMarkdownRenderer) Render(content string, width int) (string, error) {
	m.Calls++
	if m.Err != nil {
		return "", m.Err
	}
	return "rendered:" + content, nil
}

var errRender = errors.New("render failed")

type fakeInfo struct {
	name string
	dir  bool
}

func (i fakeInfo) Name() string       { return i.name }
func (i fakeInfo) Size() int64        { return 0 }
func (i fakeInfo) Mode() fs.FileMode  { return 0 }
func (i fakeInfo) ModTime() time.Time { return time.Time{} }
func (i fakeInfo) IsDir() bool        { return i.dir }
func (i fakeInfo) Sys() any           { return nil }

// MockLister implements tree.Lister for testing.
type MockLister struct {
	Dirs map[string][]os.FileInfo
}

func (m *MockLister) ListDir(path string) ([]os.FileInfo, error) {
	return m.Dirs[path], nil
}

// MockVolumes implements picker.VolumeSource for testing.
type MockVolumes struct {
	List []volume.Volume
}

func (m *MockVolumes) Volumes() []volume.Volume { return m.List }

var (
	dataRoot = string(filepath.Separator) + "data"
	projects = filepath.Join(dataRoot, "Projects")
)

func testPickerDeps(store *selection.Store) picker.Deps {
	return picker.Deps{
		Store:   store,
		Volumes: &MockVolumes{List: []volume.Volume{{Root: dataRoot, Name: "Data"}}},
		Lister: &MockLister{Dirs: map[string][]os.FileInfo{
			dataRoot: {fakeInfo{name: "Projects", dir: true}},
		}},
		Logger: zerolog.Nop(),
	}
}

// drive delivers msg to the stack and runs every produced command, feeding
// its messages back. Quit is reported instead of delivered.
func drive(s *Stack, msg tea.Msg) (quit bool) {
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		_, cmd := s.Update(next)
		msgs, q := collect(cmd)
		quit = quit || q
		queue = append(queue, msgs...)
	}
	return quit
}

func collect(cmd tea.Cmd) ([]tea.Msg, bool) {
	if cmd == nil {
		return nil, false
	}
	switch msg := cmd().(type) {
	case nil:
		return nil, false
	case tea.QuitMsg:
		return nil, true
	case tea.BatchMsg:
		var out []tea.Msg
		quit := false
		for _, c := range msg {
			msgs, q := collect(c)
			out = append(out, msgs...)
			quit = quit || q
		}
		return out, quit
	default:
		return []tea.Msg{msg}, false
	}
}

var (
	keyEnter = tea.KeyMsg{Type: tea.KeyEnter}
	keyDown  = tea.KeyMsg{Type: tea.KeyDown}
	keyEsc   = tea.KeyMsg{Type: tea.KeyEsc}
	keyCtrlS = tea.KeyMsg{Type: tea.KeyCtrlS}
	keyCtrlC = tea.KeyMsg{Type: tea.KeyCtrlC}
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

var windowSize = tea.WindowSizeMsg{Width: 100, Height: 40}

// MockHost implements ModalHost for testing.
type MockHost struct {
	Pushed []Screen
	Pops   int
}

func (h *MockHost) PushScreen(s Screen) error {
	h.Pushed = append(h.Pushed, s)
	return nil
}

func (h *MockHost) PopScreen() { h.Pops++ }
