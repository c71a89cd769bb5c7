// Package mouse provides hit regions and mouse message classification for
// terminal UIs built on bubbletea.
package mouse

import tea "github.com/charmbracelet/bubbletea"

// Rect is a rectangle in terminal cells. W and H are exclusive.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Right returns the first column past the rectangle.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the first row past the rectangle.
func (r Rect) Bottom() int { return r.Y + r.H }

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Union returns the smallest rectangle covering both r and o.
// Empty rectangles are ignored.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x := min(r.X, o.X)
	y := min(r.Y, o.Y)
	return Rect{
		X: x,
		Y: y,
		W: max(r.Right(), o.Right()) - x,
		H: max(r.Bottom(), o.Bottom()) - y,
	}
}

// Region is a named hit area with optional payload.
type Region struct {
	ID   string
	Rect Rect
	Data any
}

// HitMap holds regions for one rendered frame.
// Regions added later take priority over earlier ones.
type HitMap struct {
	regions []Region
}

// NewHitMap creates an empty hit map.
func NewHitMap() *HitMap {
	return &HitMap{}
}

// AddRect adds a region from its coordinates.
func (hm *HitMap) AddRect(id string, x, y, w, h int, data any) {
	hm.Add(id, Rect{X: x, Y: y, W: w, H: h}, data)
}

// Add adds a region.
func (hm *HitMap) Add(id string, r Rect, data any) {
	hm.regions = append(hm.regions, Region{ID: id, Rect: r, Data: data})
}

// Test returns the topmost region containing (x, y), or nil.
func (hm *HitMap) Test(x, y int) *Region {
	for i := len(hm.regions) - 1; i >= 0; i-- {
		if hm.regions[i].Rect.Contains(x, y) {
			return &hm.regions[i]
		}
	}
	return nil
}

// Regions returns the registered regions in insertion order.
func (hm *HitMap) Regions() []Region {
	return hm.regions
}

// Clear removes all regions.
func (hm *HitMap) Clear() {
	hm.regions = hm.regions[:0]
}

// ActionType classifies a mouse message.
type ActionType int

const (
	ActionNone ActionType = iota
	ActionClick
	ActionRelease
	ActionHover
	ActionScrollUp
	ActionScrollDown
	ActionScrollLeft
	ActionScrollRight
)

func (a ActionType) String() string {
	switch a {
	case ActionClick:
		return "click"
	case ActionRelease:
		return "release"
	case ActionHover:
		return "hover"
	case ActionScrollUp:
		return "scroll-up"
	case ActionScrollDown:
		return "scroll-down"
	case ActionScrollLeft:
		return "scroll-left"
	case ActionScrollRight:
		return "scroll-right"
	default:
		return "none"
	}
}

// Action is the result of classifying a mouse message.
type Action struct {
	Type   ActionType
	Region *Region
	X, Y   int
}

// Handler classifies mouse messages against a hit map.
type Handler struct {
	HitMap *HitMap
}

// NewHandler creates a handler with an empty hit map.
func NewHandler() *Handler {
	return &Handler{HitMap: NewHitMap()}
}

// HandleMouse classifies msg and resolves the region under the pointer.
func (h *Handler) HandleMouse(msg tea.MouseMsg) Action {
	a := Action{X: msg.X, Y: msg.Y, Region: h.HitMap.Test(msg.X, msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			a.Type = ActionScrollUp
			if msg.Shift {
				a.Type = ActionScrollLeft
			}
		case tea.MouseButtonWheelDown:
			a.Type = ActionScrollDown
			if msg.Shift {
				a.Type = ActionScrollRight
			}
		case tea.MouseButtonWheelLeft:
			a.Type = ActionScrollLeft
		case tea.MouseButtonWheelRight:
			a.Type = ActionScrollRight
		case tea.MouseButtonLeft:
			a.Type = ActionClick
		}
	case tea.MouseActionRelease:
		a.Type = ActionRelease
	case tea.MouseActionMotion:
		a.Type = ActionHover
	}
	return a
}

// Clear removes all regions from the handler's hit map.
func (h *Handler) Clear() {
	h.HitMap.Clear()
}

// IsPress reports whether msg is a button press that counts as a click
// anywhere on screen. Wheel events are not clicks.
func IsPress(msg tea.MouseMsg) bool {
	if msg.Action != tea.MouseActionPress {
		return false
	}
	switch msg.Button {
	case tea.MouseButtonLeft, tea.MouseButtonMiddle, tea.MouseButtonRight:
		return true
	}
	return false
}
