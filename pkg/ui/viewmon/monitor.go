// Package viewmon keeps open overlays in step with scrolling and resizing.
package viewmon

import (
	"log/slog"
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/dropdown/pkg/ui/layout"
	"github.com/marcus/dropdown/pkg/ui/mouse"
)

// DefaultGuardBand is how close to the top edge an anchor may scroll before
// its overlay is closed.
const DefaultGuardBand = 32

// ScrollMsg is sent by scroll containers after their offset changes.
type ScrollMsg struct{}

// Watcher is a widget whose overlay follows its anchor.
type Watcher interface {
	IsOpened() bool
	AnchorBounds() (mouse.Rect, bool)
	Close()
	Reposition()
}

// Subscription identifies a registered watcher.
type Subscription uint64

// Monitor routes scroll and resize events to registered watchers.
type Monitor struct {
	mu        sync.Mutex
	nextID    Subscription
	watchers  map[Subscription]Watcher
	screen    *layout.Screen
	guardBand int
	logger    *slog.Logger
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithGuardBand overrides DefaultGuardBand.
func WithGuardBand(n int) Option {
	return func(m *Monitor) {
		m.guardBand = n
	}
}

// WithLogger sets the monitor's logger.
func WithLogger(l *slog.Logger) Option {
	return func(m *Monitor) {
		if l != nil {
			m.logger = l
		}
	}
}

// New creates a monitor for screen.
func New(screen *layout.Screen, opts ...Option) *Monitor {
	m := &Monitor{
		watchers:  make(map[Subscription]Watcher),
		screen:    screen,
		guardBand: DefaultGuardBand,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Register adds a watcher.
func (m *Monitor) Register(w Watcher) Subscription {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.nextID++
	m.watchers[m.nextID] = w
	return m.nextID
}

// Unregister removes a watcher. Unknown subscriptions are ignored.
func (m *Monitor) Unregister(sub Subscription) {
	m.mu.Lock()
	delete(m.watchers, sub)
	m.mu.Unlock()
}

// Active reports whether any watcher is registered.
func (m *Monitor) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.watchers) > 0
}

// GuardBand returns the configured guard band.
func (m *Monitor) GuardBand() int { return m.guardBand }

// Update handles window size and scroll messages.
func (m *Monitor) Update(msg tea.Msg) {
	if !m.Active() {
		return
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Resize(msg.Width, msg.Height)
	case ScrollMsg:
		m.Scroll()
	}
}

// Scroll closes open overlays whose anchor left the screen and repositions
// the rest. Closed overlays and unrendered anchors are skipped.
func (m *Monitor) Scroll() {
	_, height := m.screen.Size()
	m.each(func(sub Subscription, w Watcher) {
		if !w.IsOpened() {
			return
		}
		r, ok := w.AnchorBounds()
		if !ok {
			return
		}
		if r.Bottom() < m.guardBand || r.Y > height {
			m.logger.Debug("anchor left viewport, closing", "sub", uint64(sub), "top", r.Y, "bottom", r.Bottom())
			w.Close()
			return
		}
		w.Reposition()
	})
}

// Resize records the new screen size and repositions every watcher.
func (m *Monitor) Resize(width, height int) {
	m.screen.SetSize(width, height)
	m.each(func(_ Subscription, w Watcher) {
		w.Reposition()
	})
}

// each calls fn for every watcher registered when iteration starts, skipping
// any removed along the way.
func (m *Monitor) each(fn func(Subscription, Watcher)) {
	m.mu.Lock()
	ids := make([]Subscription, 0, len(m.watchers))
	for id := range m.watchers {
		ids = append(ids, id)
	}
	m.mu.Unlock()
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		m.mu.Lock()
		w, ok := m.watchers[id]
		m.mu.Unlock()
		if ok {
			fn(id, w)
		}
	}
}
