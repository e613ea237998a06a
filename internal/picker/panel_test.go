package picker

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cyclone1070/volpick/internal/selection"
	"github.com/Cyclone1070/volpick/internal/tree"
	"github.com/Cyclone1070/volpick/internal/volume"
)

func newPanel(store *selection.Store, filter selection.Filter) *Panel {
	return NewPanel(sampleVolumes().List, sampleLister(), store, filter, PanelOptions{})
}

// sendPanel delivers msg and the messages produced by returned commands.
func sendPanel(p *Panel, msg any) {
	cmd := p.Update(msg)
	for cmd != nil {
		cmd = p.Update(cmd())
	}
}

func TestNewPanel_OneTreePerVolume(t *testing.T) {
	p := newPanel(selection.NewStore(), selection.Filter{})

	require.Equal(t, 2, p.Len())
	assert.Equal(t, dataRoot, p.Trees()[0].Root())
	assert.Equal(t, "Data ("+volume.DisplayRoot(dataRoot)+")", p.Trees()[0].Title())
	assert.Equal(t, "No Name ("+volume.DisplayRoot(mediaRoot)+")", p.Trees()[1].Title())
	assert.Equal(t, -1, p.FocusIndex())
}

func TestPanel_SelectKey_RecordsBeforeReturning(t *testing.T) {
	store := selection.NewStore()
	p := newPanel(store, selection.Filter{})
	p.Focus(0)

	cmd := p.Update(keyEnter)

	assert.Nil(t, cmd)
	assert.Equal(t, dataRoot, store.Current())
}

func TestPanel_SelectionMessages_RecordedInStore(t *testing.T) {
	store := selection.NewStore()
	p := newPanel(store, selection.Filter{})

	p.Update(tree.DirectorySelectedMsg{Root: dataRoot, Path: dataRoot})
	assert.Equal(t, dataRoot, store.Current())

	file := filepath.Join(mediaRoot, "song.mp3")
	p.Update(tree.FileSelectedMsg{Root: mediaRoot, Path: file})
	assert.Equal(t, file, store.Current())
}

func TestPanel_FilterIsNoOpByDefault(t *testing.T) {
	store := selection.NewStore()
	p := newPanel(store, selection.NewFilter(selection.ModeDirectory, []string{"txt"}))

	file := filepath.Join(mediaRoot, "song.mp3")
	p.Update(tree.FileSelectedMsg{Root: mediaRoot, Path: file})

	assert.Equal(t, file, store.Current())
}

func TestPanel_StrictFilter_RejectsEvents(t *testing.T) {
	store := selection.NewStore()
	store.Record(dataRoot)
	filter := selection.NewFilter(selection.ModeDirectory, nil).WithHook(selection.Strict)
	p := newPanel(store, filter)

	p.Update(tree.FileSelectedMsg{Root: mediaRoot, Path: filepath.Join(mediaRoot, "song.mp3")})

	assert.Equal(t, dataRoot, store.Current())
}

func TestPanel_KeysGoToFocusedTreeOnly(t *testing.T) {
	store := selection.NewStore()
	p := newPanel(store, selection.Filter{})
	require.True(t, p.Focus(1))

	sendPanel(p, keyEnter)

	assert.Equal(t, mediaRoot, store.Current())
	assert.Equal(t, 1, p.Trees()[0].Len())
	assert.Equal(t, 2, p.Trees()[1].Len())
}

func TestPanel_KeysIgnoredWithoutFocus(t *testing.T) {
	store := selection.NewStore()
	p := newPanel(store, selection.Filter{})

	assert.Nil(t, p.Update(keyEnter))
	assert.Equal(t, "", store.Current())
}

func TestPanel_FocusNextPrev(t *testing.T) {
	p := newPanel(selection.NewStore(), selection.Filter{})
	require.True(t, p.Focus(0))

	assert.True(t, p.FocusNext())
	assert.Equal(t, 1, p.FocusIndex())
	assert.True(t, p.Trees()[1].Focused())
	assert.False(t, p.Trees()[0].Focused())

	assert.False(t, p.FocusNext())
	assert.Equal(t, 1, p.FocusIndex())

	assert.True(t, p.FocusPrev())
	assert.False(t, p.FocusPrev())
	assert.Equal(t, 0, p.FocusIndex())

	p.Blur()
	assert.Equal(t, -1, p.FocusIndex())
	assert.False(t, p.Trees()[0].Focused())
}

func TestPanel_FocusRootOf(t *testing.T) {
	vols := []volume.Volume{
		{Root: sep, Name: "System"},
		{Root: root("mnt"), Name: "Mounts"},
		{Root: filepath.Join(root("mnt"), "data"), Name: "Data"},
	}
	p := NewPanel(vols, sampleLister(), selection.NewStore(), selection.Filter{}, PanelOptions{})

	tests := []struct {
		name string
		path string
		want int
	}{
		{"longest prefix wins", filepath.Join(root("mnt"), "data", "photos"), 2},
		{"exact root", filepath.Join(root("mnt"), "data"), 2},
		{"sibling name is not a prefix", filepath.Join(root("mnt"), "database"), 1},
		{"falls back to system root", filepath.Join(root("home"), "user"), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.True(t, p.FocusRootOf(tt.path))
			assert.Equal(t, tt.want, p.FocusIndex())
		})
	}

	assert.False(t, p.FocusRootOf(""))
}

func TestPanel_ScrollsToKeepCursorVisible(t *testing.T) {
	var infos []os.FileInfo
	for i := 0; i < 40; i++ {
		infos = append(infos, fakeInfo{name: fmt.Sprintf("file%02d.txt", i)})
	}
	lister := &MockLister{Dirs: map[string][]os.FileInfo{dataRoot: infos}}
	vols := []volume.Volume{{Root: dataRoot, Name: "Data"}}
	p := NewPanel(vols, lister, selection.NewStore(), selection.Filter{}, PanelOptions{})
	p.SetSize(60, 10)
	p.Focus(0)

	p.Update(keyRight)
	assert.Equal(t, 0, p.ScrollOffset())

	p.Update(keyEnd)
	assert.Greater(t, p.ScrollOffset(), 0)
	assert.Contains(t, p.View(), "file39.txt")

	for i := 0; i < 41; i++ {
		p.Update(keyUp)
	}
	assert.Equal(t, 0, p.ScrollOffset())
}

func TestPanel_NoVolumes(t *testing.T) {
	p := NewPanel(nil, sampleLister(), selection.NewStore(), selection.Filter{}, PanelOptions{})
	p.SetSize(40, 5)

	assert.Equal(t, 0, p.Len())
	assert.False(t, p.Focus(0))
	assert.Contains(t, p.View(), "No volumes found")
}
