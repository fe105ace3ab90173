package exports

import (
	"context"
	"sync"
	"time"

	"github.com/leapstack-labs/hookitup/internal/export"
	"github.com/leapstack-labs/hookitup/internal/ui/features/common/components"
	"github.com/leapstack-labs/hookitup/internal/ui/notifier"
)

// DefaultVisitorTTL is how long an inactive visitor keeps its controllers.
const DefaultVisitorTTL = 30 * time.Minute

// Visitor holds one browser session's export controllers and the toasts
// they produced that have not been delivered yet.
type Visitor struct {
	ID          string
	controllers map[export.Kind]*export.Controller

	mu     sync.Mutex
	toasts []export.Notification
}

// Topic is the notifier topic pinged when this visitor's state changes.
func (v *Visitor) Topic() notifier.Topic {
	return notifier.Topic("visitor:" + v.ID)
}

// Controller returns the controller for kind.
func (v *Visitor) Controller(kind export.Kind) *export.Controller {
	return v.controllers[kind]
}

// Signals returns the controller states keyed by their client signal names.
func (v *Visitor) Signals() map[string]any {
	return map[string]any{
		components.SignalExportCopy:     v.controllers[export.KindCopy].State().String(),
		components.SignalExportDownload: v.controllers[export.KindDownload].State().String(),
	}
}

// Notify implements export.Notifier by queueing the toast.
func (v *Visitor) Notify(n export.Notification) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.toasts = append(v.toasts, n)
}

// DrainToasts returns and clears the queued toasts.
func (v *Visitor) DrainToasts() []export.Notification {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := v.toasts
	v.toasts = nil
	return out
}

func (v *Visitor) idle() bool {
	for _, c := range v.controllers {
		if c.State() != export.StateIdle {
			return false
		}
	}
	return true
}

func (v *Visitor) close() {
	for _, c := range v.controllers {
		c.Close()
	}
}

// ControllerFactory builds the controller of one kind for a visitor.
type ControllerFactory func(v *Visitor, kind export.Kind) (*export.Controller, error)

type visitorEntry struct {
	visitor  *Visitor
	lastSeen time.Time
}

// Registry maps visitor ids to their controllers.
type Registry struct {
	factory ControllerFactory
	ttl     time.Duration
	now     func() time.Time

	mu       sync.Mutex
	visitors map[string]*visitorEntry
}

// NewRegistry returns an empty registry. A ttl of zero means DefaultVisitorTTL.
func NewRegistry(factory ControllerFactory, ttl time.Duration) *Registry {
	if ttl <= 0 {
		ttl = DefaultVisitorTTL
	}
	return &Registry{
		factory:  factory,
		ttl:      ttl,
		now:      time.Now,
		visitors: make(map[string]*visitorEntry),
	}
}

// Get returns the visitor for id, creating its controllers on first use.
func (r *Registry) Get(id string) (*Visitor, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if e, ok := r.visitors[id]; ok {
		e.lastSeen = r.now()
		return e.visitor, nil
	}

	v := &Visitor{ID: id, controllers: make(map[export.Kind]*export.Controller, 2)}
	for _, kind := range []export.Kind{export.KindCopy, export.KindDownload} {
		c, err := r.factory(v, kind)
		if err != nil {
			v.close()
			return nil, err
		}
		v.controllers[kind] = c
	}
	r.visitors[id] = &visitorEntry{visitor: v, lastSeen: r.now()}
	return v, nil
}

// Len returns the number of live visitors.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.visitors)
}

// Sweep drops visitors inactive for longer than the ttl whose controllers
// are all idle, and returns how many were dropped.
func (r *Registry) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	cutoff := r.now().Add(-r.ttl)
	removed := 0
	for id, e := range r.visitors {
		if e.lastSeen.After(cutoff) || !e.visitor.idle() {
			continue
		}
		e.visitor.close()
		delete(r.visitors, id)
		removed++
	}
	return removed
}

// Close closes every controller and empties the registry.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, e := range r.visitors {
		e.visitor.close()
		delete(r.visitors, id)
	}
}

// RunSweeper calls sweep every interval until ctx is done.
func RunSweeper(ctx context.Context, interval time.Duration, sweep func()) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			sweep()
		}
	}
}
