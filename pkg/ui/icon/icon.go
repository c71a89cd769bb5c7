// Package icon renders single-cell glyph icons.
package icon

import (
	"github.com/charmbracelet/lipgloss"
)

// Renderer draws a named icon at a width and rotation in degrees.
type Renderer interface {
	Render(width, rotate int, name string) string
}

// Glyphs is the default Renderer. Each entry lists the glyph for 0, 90,
// 180 and 270 degrees of clockwise rotation.
type Glyphs map[string][4]string

// DefaultGlyphs covers the icons used by the widgets in this module.
var DefaultGlyphs = Glyphs{
	"dropDown": {"▼", "◀", "▲", "▶"},
	"arrow":    {"↓", "←", "↑", "→"},
	"check":    {"✓", "✓", "✓", "✓"},
}

// Render returns the glyph for name padded to width cells. Unknown names
// render as blank space.
func (g Glyphs) Render(width, rotate int, name string) string {
	glyph := " "
	if set, ok := g[name]; ok {
		glyph = set[quarterTurns(rotate)]
	}
	if width <= 0 {
		return glyph
	}
	return lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(glyph)
}

func quarterTurns(deg int) int {
	return ((deg%360)+360)%360 / 90
}
