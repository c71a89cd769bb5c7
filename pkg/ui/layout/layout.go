// Package layout holds the geometry shared by overlay components: element
// references resolved after each render and the viewport they live in.
package layout

import "github.com/marcus/dropdown/pkg/ui/mouse"

// Strategy says which coordinate space a placement is expressed in.
type Strategy int

const (
	// StrategyAbsolute places relative to the scrolled document.
	StrategyAbsolute Strategy = iota
	// StrategyFixed places relative to the visible screen.
	StrategyFixed
)

func (s Strategy) String() string {
	if s == StrategyFixed {
		return "fixed"
	}
	return "absolute"
}

// Placement is the computed position of a floating element.
type Placement struct {
	Top      int
	Left     int
	Strategy Strategy
}

// Viewport reports the visible screen size and the document scroll offset.
type Viewport interface {
	Size() (width, height int)
	Scroll() (x, y int)
}

// Screen is a mutable Viewport.
type Screen struct {
	width, height    int
	scrollX, scrollY int
}

// NewScreen creates a screen of the given size.
func NewScreen(width, height int) *Screen {
	return &Screen{width: width, height: height}
}

func (s *Screen) Size() (int, int)   { return s.width, s.height }
func (s *Screen) Scroll() (int, int) { return s.scrollX, s.scrollY }

// SetSize updates the screen dimensions.
func (s *Screen) SetSize(width, height int) {
	s.width, s.height = width, height
}

// SetScroll updates the document scroll offset.
func (s *Screen) SetScroll(x, y int) {
	s.scrollX, s.scrollY = x, y
}

// Element is a handle to a rendered box. Bounds are in screen cells and are
// only valid once the element has been resolved by a render pass.
type Element struct {
	bounds    mouse.Rect
	resolved  bool
	placement Placement
	placed    bool
}

// Resolve records the element's on-screen bounds.
func (e *Element) Resolve(r mouse.Rect) {
	e.bounds = r
	e.resolved = true
}

// Detach marks the element as no longer rendered.
func (e *Element) Detach() {
	*e = Element{}
}

// Attached reports whether the element has been resolved.
func (e *Element) Attached() bool {
	return e != nil && e.resolved
}

// Bounds returns the element's screen bounds.
func (e *Element) Bounds() (mouse.Rect, bool) {
	if !e.Attached() {
		return mouse.Rect{}, false
	}
	return e.bounds, true
}

// Size returns the element's width and height.
func (e *Element) Size() (int, int) {
	if !e.Attached() {
		return 0, 0
	}
	return e.bounds.W, e.bounds.H
}

// SetPlacement stores a computed placement.
func (e *Element) SetPlacement(p Placement) {
	e.placement = p
	e.placed = true
}

// Placement returns the last computed placement.
func (e *Element) Placement() (Placement, bool) {
	if e == nil {
		return Placement{}, false
	}
	return e.placement, e.placed
}

// ScreenRect returns where a placed element appears on screen. Absolute
// placements move with the document scroll; fixed ones do not.
func (e *Element) ScreenRect(vp Viewport) (mouse.Rect, bool) {
	if !e.Attached() || !e.placed {
		return mouse.Rect{}, false
	}
	top, left := e.placement.Top, e.placement.Left
	if e.placement.Strategy == StrategyAbsolute {
		sx, sy := vp.Scroll()
		top -= sy
		left -= sx
	}
	return mouse.Rect{X: left, Y: top, W: e.bounds.W, H: e.bounds.H}, true
}
