// Package picker composes the volume tree panel, the selection status bar
// and the confirm/cancel action bar into one modal file picker.
package picker

import (
	"github.com/rs/zerolog"

	"github.com/Cyclone1070/volpick/internal/selection"
	"github.com/Cyclone1070/volpick/internal/tree"
	"github.com/Cyclone1070/volpick/internal/volume"
)

// Callback receives the current selection when the picker is dismissed.
// Extra arguments are bound by closure.
type Callback func(path string)

// Refresher is a host widget re-rendered after a confirmed selection.
type Refresher interface {
	Refresh(recompose bool)
}

// RefresherFunc adapts a function to Refresher.
type RefresherFunc func(recompose bool)

// Refresh calls f.
func (f RefresherFunc) Refresh(recompose bool) { f(recompose) }

// Dismisser removes the topmost modal screen.
type Dismisser interface {
	PopScreen()
}

// VolumeSource enumerates the volumes shown as tree roots.
type VolumeSource interface {
	Volumes() []volume.Volume
}

// Options is fixed when the picker is constructed.
type Options struct {
	// StartingDirectory picks the initially focused volume. It does not
	// expand any directory.
	StartingDirectory string
	Extensions        []string
	Filter            selection.Mode

	OnConfirm Callback
	OnCancel  Callback

	// Refresh lists the widgets refreshed, in order, after OnConfirm.
	Refresh []Refresher
}

// Deps holds the collaborators of a Picker.
type Deps struct {
	Store   *selection.Store
	Volumes VolumeSource
	Lister  tree.Lister
	Host    Dismisser
	Logger  zerolog.Logger

	// Tree options applied to every volume tree.
	Tree []tree.Option

	// EnforceFilter installs selection.Strict. Without it Filter and
	// Extensions are carried but never enforced.
	EnforceFilter bool
}
