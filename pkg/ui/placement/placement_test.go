package placement

import (
	"testing"

	"github.com/marcus/dropdown/pkg/ui/layout"
	"github.com/marcus/dropdown/pkg/ui/mouse"
)

func element(r mouse.Rect) *layout.Element {
	e := &layout.Element{}
	e.Resolve(r)
	return e
}

func TestUpdate(t *testing.T) {
	tests := []struct {
		name    string
		anchor  mouse.Rect
		overlay mouse.Rect
		scrollY int
		fixed   bool
		want    layout.Placement
	}{
		{
			name:    "below anchor, absolute",
			anchor:  mouse.Rect{X: 4, Y: 2, W: 20, H: 3},
			overlay: mouse.Rect{W: 20, H: 6},
			scrollY: 7,
			want:    layout.Placement{Top: 12, Left: 4, Strategy: layout.StrategyAbsolute},
		},
		{
			name:    "below anchor, fixed",
			anchor:  mouse.Rect{X: 4, Y: 2, W: 20, H: 3},
			overlay: mouse.Rect{W: 20, H: 6},
			scrollY: 7,
			fixed:   true,
			want:    layout.Placement{Top: 5, Left: 4, Strategy: layout.StrategyFixed},
		},
		{
			name:    "flips above when it overflows the bottom",
			anchor:  mouse.Rect{X: 0, Y: 18, W: 10, H: 3},
			overlay: mouse.Rect{W: 10, H: 8},
			fixed:   true,
			want:    layout.Placement{Top: 10, Left: 0, Strategy: layout.StrategyFixed},
		},
		{
			name:    "stays below when there is no room above",
			anchor:  mouse.Rect{X: 0, Y: 3, W: 10, H: 3},
			overlay: mouse.Rect{W: 10, H: 22},
			fixed:   true,
			want:    layout.Placement{Top: 6, Left: 0, Strategy: layout.StrategyFixed},
		},
		{
			name:    "shifts left to stay on screen",
			anchor:  mouse.Rect{X: 70, Y: 0, W: 10, H: 1},
			overlay: mouse.Rect{W: 20, H: 4},
			fixed:   true,
			want:    layout.Placement{Top: 1, Left: 60, Strategy: layout.StrategyFixed},
		},
		{
			name:    "never past column zero",
			anchor:  mouse.Rect{X: 5, Y: 0, W: 10, H: 1},
			overlay: mouse.Rect{W: 100, H: 4},
			fixed:   true,
			want:    layout.Placement{Top: 1, Left: 0, Strategy: layout.StrategyFixed},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			screen := layout.NewScreen(80, 24)
			screen.SetScroll(0, tt.scrollY)
			overlay := element(tt.overlay)

			New(screen).Update(overlay, element(tt.anchor), tt.fixed)

			got, ok := overlay.Placement()
			if !ok {
				t.Fatal("overlay was not placed")
			}
			if got != tt.want {
				t.Errorf("placement = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestUpdateUnresolvedIsNoop(t *testing.T) {
	s := New(layout.NewScreen(80, 24))

	overlay := element(mouse.Rect{W: 10, H: 2})
	s.Update(overlay, &layout.Element{}, false)
	if _, ok := overlay.Placement(); ok {
		t.Error("placed overlay without an anchor")
	}

	// Missing overlay must not panic.
	s.Update(&layout.Element{}, element(mouse.Rect{W: 10, H: 1}), false)
	s.Update(nil, nil, true)
}

func TestUpdateRepeated(t *testing.T) {
	screen := layout.NewScreen(80, 24)
	s := New(screen)
	anchor := element(mouse.Rect{X: 2, Y: 4, W: 10, H: 1})
	overlay := element(mouse.Rect{W: 10, H: 3})

	s.Update(overlay, anchor, true)
	anchor.Resolve(mouse.Rect{X: 2, Y: 9, W: 10, H: 1})
	s.Update(overlay, anchor, true)

	got, _ := overlay.Placement()
	if got.Top != 10 {
		t.Errorf("Top after move = %d, want 10", got.Top)
	}
}
