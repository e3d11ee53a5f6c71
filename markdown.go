package main

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"
)

// mdRenderer caches a glamour terminal renderer for session notes at a
// specific width. Recreates the renderer when the width changes.
type mdRenderer struct {
	hasDarkBg bool
	tty       bool
	renderer  *glamour.TermRenderer
	width     int
}

func newMDRenderer(hasDarkBg, tty bool) *mdRenderer {
	return &mdRenderer{hasDarkBg: hasDarkBg, tty: tty}
}

// style returns the glamour style with Document.Margin zeroed out so the
// detail view controls its own indentation.
func (r *mdRenderer) style() ansi.StyleConfig {
	var style ansi.StyleConfig
	switch {
	case !r.tty:
		style = styles.NoTTYStyleConfig
	case r.hasDarkBg:
		style = styles.DarkStyleConfig
	default:
		style = styles.LightStyleConfig
	}
	style.Document.Margin = uintPtr(0)
	return style
}

func uintPtr(v uint) *uint { return &v }

// render renders markdown notes for terminal display. Returns the original
// text on error.
func (r *mdRenderer) render(notes string, width int) string {
	if width <= 0 || strings.TrimSpace(notes) == "" {
		return notes
	}
	if r.renderer == nil || r.width != width {
		renderer, err := glamour.NewTermRenderer(
			glamour.WithStyles(r.style()),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return notes
		}
		r.renderer = renderer
		r.width = width
	}
	out, err := r.renderer.Render(notes)
	if err != nil {
		return notes
	}
	return strings.Trim(out, "\n")
}
