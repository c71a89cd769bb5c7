// Package outside detects clicks that land outside open overlays.
//
// A Broker is created once per program and shared by every widget that
// needs outside-click notification. Each subscriber supplies its own
// Target, so nested overlays only hear about clicks outside themselves.
package outside

import (
	"log/slog"
	"sort"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/marcus/dropdown/pkg/ui/mouse"
)

// Target reports whether a screen cell belongs to a subscriber.
type Target interface {
	Contains(x, y int) bool
}

// Subscription identifies a registered callback.
type Subscription uint64

type entry struct {
	target Target
	fn     func()
}

// Broker fans outside clicks out to subscribers.
type Broker struct {
	mu     sync.Mutex
	nextID Subscription
	subs   map[Subscription]entry
	logger *slog.Logger
}

// Option configures a Broker.
type Option func(*Broker)

// WithLogger sets the broker's logger.
func WithLogger(l *slog.Logger) Option {
	return func(b *Broker) {
		if l != nil {
			b.logger = l
		}
	}
}

// NewBroker creates an empty broker.
func NewBroker(opts ...Option) *Broker {
	b := &Broker{
		subs:   make(map[Subscription]entry),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// On registers fn to run when a click lands outside target.
func (b *Broker) On(target Target, fn func()) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nextID++
	b.subs[b.nextID] = entry{target: target, fn: fn}
	return b.nextID
}

// Off removes a subscription. Removing an unknown subscription is a no-op.
func (b *Broker) Off(sub Subscription) {
	b.mu.Lock()
	delete(b.subs, sub)
	b.mu.Unlock()
}

// Len returns the number of live subscriptions.
func (b *Broker) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Dispatch reports a click at (x, y) and returns how many callbacks ran.
// Callbacks run without the lock held, so they may subscribe or unsubscribe;
// a subscriber removed while dispatching is not called.
func (b *Broker) Dispatch(x, y int) int {
	fired := 0
	for _, id := range b.snapshot() {
		e, ok := b.lookup(id)
		if !ok {
			continue
		}
		if e.target != nil && e.target.Contains(x, y) {
			continue
		}
		if e.fn != nil {
			e.fn()
			fired++
		}
	}
	if fired > 0 {
		b.logger.Debug("outside click", "x", x, "y", y, "notified", fired)
	}
	return fired
}

// HandleMouse dispatches button presses. Other mouse messages are ignored.
func (b *Broker) HandleMouse(msg tea.MouseMsg) int {
	if !mouse.IsPress(msg) {
		return 0
	}
	return b.Dispatch(msg.X, msg.Y)
}

func (b *Broker) snapshot() []Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()
	ids := make([]Subscription, 0, len(b.subs))
	for id := range b.subs {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (b *Broker) lookup(id Subscription) (entry, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	e, ok := b.subs[id]
	return e, ok
}
