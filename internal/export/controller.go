// Package export drives the "copy all" and "download all" actions.
//
// A Controller is a small state machine (idle, loading, done) wrapped around
// one destination. It refuses to start while an export is outstanding,
// reports the outcome through a Notifier, and returns to idle on its own a
// fixed delay after a successful export.
package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// DefaultResetDelay is how long a controller stays in StateDone.
const DefaultResetDelay = 2 * time.Second

var (
	// ErrBusy is returned by Invoke when the controller is not idle.
	ErrBusy = errors.New("export already in progress")

	// ErrClosed is returned by Invoke after Close.
	ErrClosed = errors.New("export controller closed")
)

// TracerName names the tracer that records export spans.
const TracerName = "github.com/leapstack-labs/hookitup/internal/export"

// State is the controller's position in the idle/loading/done cycle.
type State int

// Controller states.
const (
	StateIdle State = iota
	StateLoading
	StateDone
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateLoading:
		return "loading"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Kind identifies which export affordance a controller backs.
type Kind string

// Export kinds.
const (
	KindCopy     Kind = "copy"
	KindDownload Kind = "download"
)

// Messages returns the user-facing success and failure messages for k.
func (k Kind) Messages() (success, failure string) {
	switch k {
	case KindDownload:
		return "Hooks downloaded as Markdown!", "Failed to download Markdown"
	default:
		return "All hooks copied as Markdown!", "Failed to copy to clipboard"
	}
}

// Destination receives the serialized document.
type Destination interface {
	Write(ctx context.Context, payload string) error
}

// DestinationFunc adapts a function to Destination.
type DestinationFunc func(ctx context.Context, payload string) error

// Write calls f.
func (f DestinationFunc) Write(ctx context.Context, payload string) error {
	return f(ctx, payload)
}

// Observer is told about every finished export. It is used for metrics.
type Observer interface {
	ExportFinished(kind Kind, elapsed time.Duration, err error)
}

// Config configures a Controller.
type Config struct {
	Kind        Kind
	Source      func() string
	Destination Destination
	Notifier    Notifier
	Observer    Observer
	Logger      *slog.Logger

	// TracerProvider records one span per Invoke. Defaults to the global
	// provider.
	TracerProvider trace.TracerProvider

	// ResetDelay is the time spent in StateDone. Defaults to DefaultResetDelay.
	ResetDelay time.Duration

	// OnStateChange is called for every transition, in order. It must not
	// call Invoke.
	OnStateChange func(State)
}

// Controller runs one export affordance. It is safe for concurrent use;
// concurrent invocations are serialized by the idle-only entry guard.
type Controller struct {
	kind          Kind
	source        func() string
	dest          Destination
	notifier      Notifier
	observer      Observer
	logger        *slog.Logger
	tracer        trace.Tracer
	resetDelay    time.Duration
	onStateChange func(State)

	mu     sync.Mutex
	state  State
	timer  *time.Timer
	closed bool

	// emitMu keeps OnStateChange calls in transition order without holding mu.
	emitMu sync.Mutex
}

// NewController validates cfg and returns an idle controller.
func NewController(cfg Config) (*Controller, error) {
	if cfg.Source == nil {
		return nil, fmt.Errorf("export: source is required")
	}
	if cfg.Destination == nil {
		return nil, fmt.Errorf("export: destination is required")
	}
	if cfg.Kind == "" {
		cfg.Kind = KindCopy
	}
	if cfg.ResetDelay <= 0 {
		cfg.ResetDelay = DefaultResetDelay
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Notifier == nil {
		cfg.Notifier = NotifierFunc(func(Notification) {})
	}
	if cfg.TracerProvider == nil {
		cfg.TracerProvider = otel.GetTracerProvider()
	}

	return &Controller{
		kind:          cfg.Kind,
		source:        cfg.Source,
		dest:          cfg.Destination,
		notifier:      cfg.Notifier,
		observer:      cfg.Observer,
		logger:        cfg.Logger,
		tracer:        cfg.TracerProvider.Tracer(TracerName),
		resetDelay:    cfg.ResetDelay,
		onStateChange: cfg.OnStateChange,
	}, nil
}

// Kind returns the affordance this controller backs.
func (c *Controller) Kind() Kind {
	return c.kind
}

// State returns the current state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Invoke serializes the source and writes it to the destination.
//
// It returns ErrBusy without side effects unless the controller is idle.
// On success the controller moves to StateDone and schedules the return to
// idle; on failure it returns straight to idle and the write error is
// returned after the failure notification has been sent.
func (c *Controller) Invoke(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.state != StateIdle {
		c.mu.Unlock()
		return ErrBusy
	}
	c.transitionLocked(StateLoading)

	ctx, span := c.tracer.Start(ctx, "export."+string(c.kind))
	defer span.End()

	start := time.Now()
	payload := c.source()
	span.SetAttributes(
		attribute.String("export.kind", string(c.kind)),
		attribute.Int("export.bytes", len(payload)),
	)
	err := c.dest.Write(ctx, payload)
	elapsed := time.Since(start)

	if c.observer != nil {
		c.observer.ExportFinished(c.kind, elapsed, err)
	}

	success, failure := c.kind.Messages()

	c.mu.Lock()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.logger.Error("export failed", "kind", c.kind, "error", err)
		c.transitionLocked(StateIdle)
		c.notifier.Notify(Notification{Kind: c.kind, Level: LevelFailure, Message: failure, Err: err})
		return fmt.Errorf("%s export: %w", c.kind, err)
	}

	// A controller closed mid-export stays done.
	if !c.closed {
		c.timer = time.AfterFunc(c.resetDelay, c.reset)
	}
	c.transitionLocked(StateDone)
	c.logger.Debug("export finished", "kind", c.kind, "bytes", len(payload), "elapsed", elapsed)
	c.notifier.Notify(Notification{Kind: c.kind, Level: LevelSuccess, Message: success})
	return nil
}

// reset is the delayed done -> idle transition.
func (c *Controller) reset() {
	c.mu.Lock()
	if c.state != StateDone {
		c.mu.Unlock()
		return
	}
	c.timer = nil
	c.transitionLocked(StateIdle)
}

// transitionLocked sets the state and reports it. It must be called with mu
// held and returns with mu released.
func (c *Controller) transitionLocked(to State) {
	c.state = to
	c.emitMu.Lock()
	c.mu.Unlock()
	defer c.emitMu.Unlock()
	if c.onStateChange != nil {
		c.onStateChange(to)
	}
}

// Close cancels a pending reset and rejects further invocations.
// A controller closed while done stays done.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
}
