package mouse

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRectContains(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 20, H: 10}

	cases := []struct {
		x, y     int
		expected bool
	}{
		{10, 10, true},  // Top-left corner
		{29, 19, true},  // Bottom-right cell
		{9, 10, false},  // Just left
		{30, 10, false}, // Just right (exclusive)
		{10, 9, false},  // Just above
		{10, 20, false}, // Just below (exclusive)
	}

	for _, tc := range cases {
		got := r.Contains(tc.x, tc.y)
		if got != tc.expected {
			t.Errorf("Rect(%+v).Contains(%d, %d) = %v, want %v", r, tc.x, tc.y, got, tc.expected)
		}
	}
}

func TestRectEdges(t *testing.T) {
	r := Rect{X: 2, Y: 3, W: 4, H: 5}
	if r.Right() != 6 || r.Bottom() != 8 {
		t.Errorf("edges = (%d, %d), want (6, 8)", r.Right(), r.Bottom())
	}
	if r.Empty() {
		t.Error("non-zero rect reported empty")
	}
	if !(Rect{W: 3}).Empty() {
		t.Error("zero-height rect should be empty")
	}
}

func TestRectUnion(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 1}
	b := Rect{X: 2, Y: 1, W: 12, H: 4}

	got := a.Union(b)
	want := Rect{X: 0, Y: 0, W: 14, H: 5}
	if got != want {
		t.Errorf("Union = %+v, want %+v", got, want)
	}

	if got := a.Union(Rect{}); got != a {
		t.Errorf("Union with empty = %+v, want %+v", got, a)
	}
	if got := (Rect{}).Union(b); got != b {
		t.Errorf("empty Union = %+v, want %+v", got, b)
	}
}

func TestHitMapPriority(t *testing.T) {
	hm := NewHitMap()

	// Later regions win
	hm.AddRect("page", 0, 0, 100, 100, nil)
	hm.AddRect("anchor", 10, 10, 20, 1, nil)
	hm.Add("overlay", Rect{X: 10, Y: 11, W: 20, H: 5}, 7)

	r := hm.Test(15, 12)
	if r == nil || r.ID != "overlay" || r.Data != 7 {
		t.Errorf("expected hit on overlay, got %v", r)
	}

	r = hm.Test(15, 10)
	if r == nil || r.ID != "anchor" {
		t.Errorf("expected hit on anchor, got %v", r)
	}

	r = hm.Test(5, 5)
	if r == nil || r.ID != "page" {
		t.Errorf("expected hit on page, got %v", r)
	}

	if r := hm.Test(200, 5); r != nil {
		t.Errorf("expected no hit, got %v", r)
	}
}

func TestHitMapClear(t *testing.T) {
	hm := NewHitMap()

	hm.AddRect("region1", 0, 0, 50, 50, nil)
	hm.AddRect("region2", 60, 0, 50, 50, nil)

	if len(hm.Regions()) != 2 {
		t.Errorf("expected 2 regions, got %d", len(hm.Regions()))
	}

	hm.Clear()

	if len(hm.Regions()) != 0 {
		t.Errorf("expected 0 regions after clear, got %d", len(hm.Regions()))
	}
}

func TestHandleMouseActions(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("button", 10, 10, 30, 10, nil)

	tests := []struct {
		name string
		msg  tea.MouseMsg
		want ActionType
	}{
		{"click", tea.MouseMsg{X: 20, Y: 15, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, ActionClick},
		{"release", tea.MouseMsg{X: 20, Y: 15, Action: tea.MouseActionRelease}, ActionRelease},
		{"hover", tea.MouseMsg{X: 25, Y: 15, Action: tea.MouseActionMotion}, ActionHover},
		{"wheel down", tea.MouseMsg{X: 20, Y: 15, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}, ActionScrollDown},
		{"wheel up", tea.MouseMsg{X: 20, Y: 15, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp}, ActionScrollUp},
		{"shift wheel up", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp, Shift: true}, ActionScrollLeft},
		{"shift wheel down", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown, Shift: true}, ActionScrollRight},
		{"right button", tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			action := h.HandleMouse(tt.msg)
			if action.Type != tt.want {
				t.Errorf("HandleMouse() = %v, want %v", action.Type, tt.want)
			}
		})
	}

	action := h.HandleMouse(tea.MouseMsg{X: 20, Y: 15, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if action.Region == nil || action.Region.ID != "button" {
		t.Errorf("expected region 'button', got %v", action.Region)
	}
}

func TestIsPress(t *testing.T) {
	tests := []struct {
		msg  tea.MouseMsg
		want bool
	}{
		{tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}, true},
		{tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonRight}, true},
		{tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonMiddle}, true},
		{tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown}, false},
		{tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}, false},
		{tea.MouseMsg{Action: tea.MouseActionMotion}, false},
	}
	for _, tt := range tests {
		if got := IsPress(tt.msg); got != tt.want {
			t.Errorf("IsPress(%+v) = %v, want %v", tt.msg, got, tt.want)
		}
	}
}

func TestHandlerClear(t *testing.T) {
	h := NewHandler()
	h.HitMap.AddRect("button", 10, 10, 30, 10, nil)

	h.Clear()

	if len(h.HitMap.Regions()) != 0 {
		t.Errorf("expected 0 regions after Clear, got %d", len(h.HitMap.Regions()))
	}
}
