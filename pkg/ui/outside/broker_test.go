package outside

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/dropdown/pkg/ui/mouse"
)

type rectTarget mouse.Rect

func (r rectTarget) Contains(x, y int) bool { return mouse.Rect(r).Contains(x, y) }

func TestDispatchOutside(t *testing.T) {
	b := NewBroker()
	calls := 0
	b.On(rectTarget{X: 0, Y: 0, W: 10, H: 5}, func() { calls++ })

	if n := b.Dispatch(3, 3); n != 0 || calls != 0 {
		t.Errorf("click inside fired %d callbacks", calls)
	}
	if n := b.Dispatch(20, 3); n != 1 || calls != 1 {
		t.Errorf("click outside: n=%d calls=%d, want 1/1", n, calls)
	}
}

func TestDispatchNestedIsolation(t *testing.T) {
	b := NewBroker()
	var outer, inner int
	// Outer overlay covers a large area; inner overlay sits elsewhere.
	b.On(rectTarget{X: 0, Y: 0, W: 40, H: 20}, func() { outer++ })
	b.On(rectTarget{X: 50, Y: 0, W: 10, H: 5}, func() { inner++ })

	b.Dispatch(5, 5)
	if outer != 0 || inner != 1 {
		t.Errorf("click in outer: outer=%d inner=%d, want 0/1", outer, inner)
	}

	b.Dispatch(55, 2)
	if outer != 1 || inner != 1 {
		t.Errorf("click in inner: outer=%d inner=%d, want 1/1", outer, inner)
	}

	b.Dispatch(70, 30)
	if outer != 2 || inner != 2 {
		t.Errorf("click outside both: outer=%d inner=%d, want 2/2", outer, inner)
	}
}

func TestOffIdempotent(t *testing.T) {
	b := NewBroker()
	calls := 0
	sub := b.On(rectTarget{}, func() { calls++ })

	b.Off(sub)
	b.Off(sub)
	b.Off(Subscription(999))

	if b.Len() != 0 {
		t.Errorf("Len() = %d, want 0", b.Len())
	}
	b.Dispatch(1, 1)
	if calls != 0 {
		t.Errorf("removed callback fired %d times", calls)
	}
}

func TestOffDuringDispatch(t *testing.T) {
	b := NewBroker()
	var second Subscription
	secondCalls := 0

	b.On(rectTarget{}, func() { b.Off(second) })
	second = b.On(rectTarget{}, func() { secondCalls++ })

	if n := b.Dispatch(1, 1); n != 1 {
		t.Errorf("Dispatch() = %d, want 1", n)
	}
	if secondCalls != 0 {
		t.Error("subscriber removed mid-dispatch was still called")
	}
}

func TestOnDuringDispatch(t *testing.T) {
	b := NewBroker()
	added := 0
	b.On(rectTarget{}, func() {
		b.On(rectTarget{}, func() { added++ })
	})

	b.Dispatch(1, 1)
	if added != 0 {
		t.Error("subscriber added mid-dispatch ran in the same dispatch")
	}
	if b.Len() != 2 {
		t.Errorf("Len() = %d, want 2", b.Len())
	}
}

func TestHandleMouseIgnoresWheel(t *testing.T) {
	b := NewBroker()
	calls := 0
	b.On(rectTarget{}, func() { calls++ })

	b.HandleMouse(tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	b.HandleMouse(tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionMotion})
	if calls != 0 {
		t.Errorf("non-press messages fired %d callbacks", calls)
	}

	b.HandleMouse(tea.MouseMsg{X: 5, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	if calls != 1 {
		t.Errorf("press fired %d callbacks, want 1", calls)
	}
}
