// Package volume enumerates the local storage volumes shown as picker roots.
package volume

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// Sentinel display names.
const (
	// UnknownName is shown when the label query itself fails.
	UnknownName = "Unknown"
	// NoName is shown when the query succeeds but the volume has no label.
	NoName = "No Name"
)

// Volume is a root storage location and its display name.
type Volume struct {
	Root string
	Name string
}

// Title renders the heading used for the volume's tree, e.g. "System (C:)".
func (v Volume) Title() string {
	return fmt.Sprintf("%s (%s)", v.Name, DisplayRoot(v.Root))
}

// DisplayRoot drops the trailing separator of a root token ("C:\" -> "C:").
// A bare separator such as "/" is returned unchanged.
func DisplayRoot(root string) string {
	trimmed := strings.TrimRight(root, `\/`)
	if trimmed == "" {
		return root
	}
	return trimmed
}

// Prober is the platform volume query interface.
type Prober interface {
	// Candidates returns the fixed candidate space of root tokens, in order.
	Candidates() []string
	// Exists reports whether the root currently resolves to a mounted volume.
	Exists(root string) bool
	// Label queries the volume label. An empty label with a nil error means
	// the volume has no label set.
	Label(root string) (string, error)
}

// Enumerator turns platform queries into volumes. It holds no state.
type Enumerator struct {
	prober Prober
	logger zerolog.Logger
}

// NewEnumerator creates an Enumerator backed by the given prober.
func NewEnumerator(prober Prober, logger zerolog.Logger) *Enumerator {
	if prober == nil {
		panic("prober is required")
	}
	return &Enumerator{
		prober: prober,
		logger: logger,
	}
}

// ListVolumes returns the candidate roots that exist at call time, in candidate order.
func (e *Enumerator) ListVolumes() []string {
	var roots []string
	for _, candidate := range e.prober.Candidates() {
		if e.prober.Exists(candidate) {
			roots = append(roots, candidate)
		}
	}
	return roots
}

// DisplayName resolves the volume label, degrading to UnknownName when the
// query fails and to NoName when no label is set. It never retries.
func (e *Enumerator) DisplayName(root string) string {
	label, err := e.prober.Label(root)
	if err != nil {
		e.logger.Warn().Err(err).Str("root", root).Msg("volume label query failed")
		return UnknownName
	}
	if label == "" {
		return NoName
	}
	return label
}

// Volumes enumerates the existing roots together with their display names.
func (e *Enumerator) Volumes() []Volume {
	roots := e.ListVolumes()
	volumes := make([]Volume, 0, len(roots))
	for _, root := range roots {
		volumes = append(volumes, Volume{Root: root, Name: e.DisplayName(root)})
	}
	e.logger.Debug().Int("count", len(volumes)).Msg("volumes enumerated")
	return volumes
}
