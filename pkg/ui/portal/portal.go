// Package portal draws overlay content into a layer above the normal view,
// so a floating panel is not clipped by the container that owns it.
package portal

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/marcus/dropdown/pkg/ui/env"
	"github.com/marcus/dropdown/pkg/ui/layout"
	"github.com/marcus/dropdown/pkg/ui/mouse"
)

// KeyFunc generates a unique mount key.
type KeyFunc func() string

// DefaultKeyFunc returns random UUIDs.
func DefaultKeyFunc() string {
	return uuid.NewString()
}

// MountKey returns the key a portal should mount under. Static renders get
// a fresh key so several portals sharing a layer stay distinct; interactive
// renders use "" and rely on element identity.
func MountKey(probe env.Probe, gen KeyFunc) string {
	if probe == nil || !probe.IsBackend() {
		return ""
	}
	if gen == nil {
		gen = DefaultKeyFunc
	}
	return gen()
}

// Portal renders content into Target while Show is set.
type Portal struct {
	Show   bool
	Target *Layer
	Key    string
}

// Render mounts content for el and sizes el to it. When the portal is
// hidden el is detached and nothing is drawn. It reports whether el was
// attached or changed size, which means its placement is stale.
func (p Portal) Render(el *layout.Element, content string) bool {
	if !p.Show {
		el.Detach()
		return false
	}

	w, h := lipgloss.Width(content), lipgloss.Height(content)
	prevW, prevH := el.Size()
	stale := !el.Attached() || prevW != w || prevH != h
	if stale {
		el.Resolve(mouse.Rect{W: w, H: h})
	}
	if p.Target != nil {
		p.Target.Mount(p.Key, el, content)
	}
	return stale
}
