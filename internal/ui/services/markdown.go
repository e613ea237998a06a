// Package services holds rendering services used by the screens.
package services

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// MarkdownRenderer renders markdown for terminal display.
type MarkdownRenderer interface {
	Render(content string, width int) (string, error)
}

// GlamourRenderer renders markdown with glamour, caching one renderer per width.
type GlamourRenderer struct {
	style     string
	renderers map[int]*glamour.TermRenderer
}

// NewGlamourRenderer creates a renderer using the dark style.
func NewGlamourRenderer() *GlamourRenderer {
	return NewGlamourRendererWithStyle("dark")
}

// NewGlamourRendererWithStyle creates a renderer using a named glamour style.
func NewGlamourRendererWithStyle(style string) *GlamourRenderer {
	return &GlamourRenderer{
		style:     style,
		renderers: make(map[int]*glamour.TermRenderer),
	}
}

// Render renders content wrapped at width. A non-positive width disables wrapping.
func (g *GlamourRenderer) Render(content string, width int) (string, error) {
	if width < 0 {
		width = 0
	}
	r, ok := g.renderers[width]
	if !ok {
		var err error
		r, err = glamour.NewTermRenderer(
			glamour.WithStandardStyle(g.style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return "", fmt.Errorf("failed to create markdown renderer: %w", err)
		}
		g.renderers[width] = r
	}

	out, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return out, nil
}

// PlainRenderer returns markdown unchanged.
type PlainRenderer struct{}

// Render returns content as is.
func (PlainRenderer) Render(content string, _ int) (string, error) {
	return content, nil
}
