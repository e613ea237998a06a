package picker

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Cyclone1070/volpick/internal/selection"
	"github.com/Cyclone1070/volpick/internal/volume"
)

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
	infos, ok := m.Dirs[path]
	if !ok {
		return nil, fmt.Errorf("no such directory: %s", path)
	}
	return infos, nil
}

// MockVolumes implements VolumeSource for testing.
type MockVolumes struct {
	List  []volume.Volume
	Calls int
}

func (m *MockVolumes) Volumes() []volume.Volume {
	m.Calls++
	return m.List
}

// MockHost records PopScreen calls into a shared log.
type MockHost struct {
	Pops int
	Log  *[]string
}

func (h *MockHost) PopScreen() {
	h.Pops++
	if h.Log != nil {
		*h.Log = append(*h.Log, "pop")
	}
}

var sep = string(filepath.Separator)

func root(name string) string { return sep + name }

var (
	dataRoot  = root("data")
	mediaRoot = root("media")
)

func sampleVolumes() *MockVolumes {
	return &MockVolumes{List: []volume.Volume{
		{Root: dataRoot, Name: "Data"},
		{Root: mediaRoot, Name: volume.NoName},
	}}
}

func sampleLister() *MockLister {
	return &MockLister{Dirs: map[string][]os.FileInfo{
		dataRoot: {
			fakeInfo{name: "Projects", dir: true},
			fakeInfo{name: "notes.txt"},
		},
		filepath.Join(dataRoot, "Projects"): {
			fakeInfo{name: "readme.md"},
		},
		mediaRoot: {
			fakeInfo{name: "song.mp3"},
		},
	}}
}

type fixture struct {
	store   *selection.Store
	host    *MockHost
	volumes *MockVolumes
	lister  *MockLister
}

func newFixture() *fixture {
	return &fixture{
		store:   selection.NewStore(),
		host:    &MockHost{},
		volumes: sampleVolumes(),
		lister:  sampleLister(),
	}
}

func (f *fixture) deps() Deps {
	return Deps{
		Store:   f.store,
		Volumes: f.volumes,
		Lister:  f.lister,
		Host:    f.host,
	}
}

// send delivers msg and every message produced by the returned commands.
func send(p *Picker, msg tea.Msg) {
	cmd := p.Update(msg)
	for cmd != nil {
		cmd = p.Update(cmd())
	}
}

var (
	keyUp       = tea.KeyMsg{Type: tea.KeyUp}
	keyDown     = tea.KeyMsg{Type: tea.KeyDown}
	keyEnter    = tea.KeyMsg{Type: tea.KeyEnter}
	keyEnd      = tea.KeyMsg{Type: tea.KeyEnd}
	keyRight    = tea.KeyMsg{Type: tea.KeyRight}
	keyTab      = tea.KeyMsg{Type: tea.KeyTab}
	keyShiftTab = tea.KeyMsg{Type: tea.KeyShiftTab}
	keyEsc      = tea.KeyMsg{Type: tea.KeyEsc}
	keyCtrlS    = tea.KeyMsg{Type: tea.KeyCtrlS}
)
