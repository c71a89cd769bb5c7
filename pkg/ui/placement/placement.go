// Package placement positions floating overlays under their anchors.
package placement

import "github.com/marcus/dropdown/pkg/ui/layout"

// Service computes overlay placements against a viewport.
type Service struct {
	vp layout.Viewport
}

// New creates a placement service for vp.
func New(vp layout.Viewport) *Service {
	return &Service{vp: vp}
}

// Update places overlay below anchor and stores the result on overlay.
// It does nothing until both elements have been rendered.
//
// The overlay drops below the anchor's bottom edge. When that would run past
// the bottom of the screen and there is room above, it opens upwards
// instead. It is shifted left to stay on screen but never past column 0.
func (s *Service) Update(overlay, anchor *layout.Element, fixed bool) {
	a, ok := anchor.Bounds()
	if !ok || !overlay.Attached() {
		return
	}
	w, h := overlay.Size()
	vw, vh := s.vp.Size()

	top := a.Bottom()
	if top+h > vh && a.Y-h >= 0 {
		top = a.Y - h
	}
	left := a.X
	if vw > 0 && left+w > vw {
		left = max(0, vw-w)
	}

	p := layout.Placement{Top: top, Left: left, Strategy: layout.StrategyFixed}
	if !fixed {
		sx, sy := s.vp.Scroll()
		p.Top += sy
		p.Left += sx
		p.Strategy = layout.StrategyAbsolute
	}
	overlay.SetPlacement(p)
}
