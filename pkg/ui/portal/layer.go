package portal

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/marcus/dropdown/pkg/ui/layout"
)

type mount struct {
	key     string
	el      *layout.Element
	content string
}

// Layer collects portal content for one frame and draws it over a base view.
type Layer struct {
	mounts []mount
}

// NewLayer creates an empty layer.
func NewLayer() *Layer {
	return &Layer{}
}

// Mount adds content drawn at el's placement. With an empty key a second
// mount of the same element replaces the first.
func (l *Layer) Mount(key string, el *layout.Element, content string) {
	if key == "" {
		for i := range l.mounts {
			if l.mounts[i].key == "" && l.mounts[i].el == el {
				l.mounts[i].content = content
				return
			}
		}
	}
	l.mounts = append(l.mounts, mount{key: key, el: el, content: content})
}

// Keys returns the mount keys in draw order.
func (l *Layer) Keys() []string {
	keys := make([]string, len(l.mounts))
	for i, m := range l.mounts {
		keys[i] = m.key
	}
	return keys
}

// Len returns the number of mounted entries.
func (l *Layer) Len() int { return len(l.mounts) }

// Reset drops all mounts. Call it at the start of each render pass.
func (l *Layer) Reset() {
	l.mounts = l.mounts[:0]
}

// Composite draws every placed mount over base, padded to the viewport
// height. Mounts without a placement are skipped; later mounts draw on top.
func (l *Layer) Composite(base string, vp layout.Viewport) string {
	if len(l.mounts) == 0 {
		return base
	}

	lines := strings.Split(base, "\n")
	_, height := vp.Size()
	for len(lines) < height {
		lines = append(lines, "")
	}

	for _, m := range l.mounts {
		r, ok := m.el.ScreenRect(vp)
		if !ok {
			continue
		}
		for i, row := range strings.Split(m.content, "\n") {
			y := r.Y + i
			if y < 0 || y >= len(lines) {
				continue
			}
			lines[y] = splice(lines[y], row, r.X)
		}
	}
	return strings.Join(lines, "\n")
}

// splice writes s over line starting at column x.
func splice(line, s string, x int) string {
	if x < 0 {
		s = ansi.TruncateLeft(s, -x, "")
		x = 0
	}
	left := ansi.Truncate(line, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	right := ansi.TruncateLeft(line, x+ansi.StringWidth(s), "")
	return left + s + right
}
