// Package exports serves the "copy all" and "download all" actions.
//
// Every browser session gets its own pair of export controllers. A POST to
// /export/{kind} invokes the controller and streams the outcome back as
// datastar events; a long-lived /export/updates stream keeps the button
// state in sync, including the delayed return to idle.
package exports

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/starfederation/datastar-go/datastar"

	"github.com/leapstack-labs/hookitup/internal/export"
	"github.com/leapstack-labs/hookitup/internal/ui/features/common/components"
	"github.com/leapstack-labs/hookitup/internal/ui/notifier"
)

const (
	sessionName = "hookitup"
	visitorKey  = "visitor_id"

	// DefaultAckTimeout bounds the wait for the browser to confirm delivery.
	DefaultAckTimeout = 15 * time.Second
)

var (
	errNoClient        = errors.New("no client connection")
	errClipboardDenied = errors.New("browser rejected the clipboard write")
)

// Config configures Handlers.
type Config struct {
	Source       func() string
	FileName     string
	ResetDelay   time.Duration
	AckTimeout   time.Duration
	HandoffTTL   time.Duration
	VisitorTTL   time.Duration
	SessionStore sessions.Store
	Notifier     *notifier.Notifier
	Observer     export.Observer
	Logger       *slog.Logger
}

// Handlers provides the export endpoints.
type Handlers struct {
	source       func() string
	fileName     string
	ackTimeout   time.Duration
	sessionStore sessions.Store
	notifier     *notifier.Notifier
	logger       *slog.Logger

	registry *Registry
	handoffs *handoffs
}

// NewHandlers creates the handlers and their visitor registry.
func NewHandlers(cfg Config) *Handlers {
	if cfg.AckTimeout <= 0 {
		cfg.AckTimeout = DefaultAckTimeout
	}
	if cfg.FileName == "" {
		cfg.FileName = export.FileName("")
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Notifier == nil {
		cfg.Notifier = notifier.New()
	}

	h := &Handlers{
		source:       cfg.Source,
		fileName:     cfg.FileName,
		ackTimeout:   cfg.AckTimeout,
		sessionStore: cfg.SessionStore,
		notifier:     cfg.Notifier,
		logger:       cfg.Logger,
		handoffs:     newHandoffs(cfg.HandoffTTL),
	}

	h.registry = NewRegistry(func(v *Visitor, kind export.Kind) (*export.Controller, error) {
		dest := h.clipboardDestination()
		if kind == export.KindDownload {
			dest = h.downloadDestination()
		}
		topic := v.Topic()
		return export.NewController(export.Config{
			Kind:          kind,
			Source:        cfg.Source,
			Destination:   dest,
			Notifier:      v,
			Observer:      cfg.Observer,
			Logger:        cfg.Logger.With("visitor", v.ID),
			ResetDelay:    cfg.ResetDelay,
			OnStateChange: func(export.State) { h.notifier.Broadcast(topic) },
		})
	}, cfg.VisitorTTL)

	return h
}

// Registry returns the visitor registry.
func (h *Handlers) Registry() *Registry {
	return h.registry
}

// Sweep expires idle visitors and unclaimed handoffs.
func (h *Handlers) Sweep() {
	visitors := h.registry.Sweep()
	staged := h.handoffs.Sweep()
	if visitors > 0 || staged > 0 {
		h.logger.Debug("swept export state", "visitors", visitors, "handoffs", staged)
	}
}

// Copy handles POST /export/copy.
func (h *Handlers) Copy(w http.ResponseWriter, r *http.Request) {
	h.invoke(w, r, export.KindCopy)
}

// Download handles POST /export/download.
func (h *Handlers) Download(w http.ResponseWriter, r *http.Request) {
	h.invoke(w, r, export.KindDownload)
}

func (h *Handlers) invoke(w http.ResponseWriter, r *http.Request, kind export.Kind) {
	// The session cookie must be written before the SSE headers.
	visitor, err := h.visitor(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	sse := datastar.NewSSE(w, r)
	ctx := withSSE(r.Context(), sse)

	// Failures are logged by the controller and queued as toasts.
	err = visitor.Controller(kind).Invoke(ctx)
	if errors.Is(err, export.ErrBusy) || errors.Is(err, export.ErrClosed) {
		h.logger.Debug("export ignored", "kind", kind, "visitor", visitor.ID, "reason", err)
	}

	h.flush(sse, visitor)
}

// flush sends queued toasts and the current button state.
func (h *Handlers) flush(sse *datastar.ServerSentEventGenerator, v *Visitor) {
	for _, n := range v.DrainToasts() {
		err := sse.PatchElementTempl(
			components.Toast(n.Level.String(), n.Message),
			datastar.WithSelectorID("toasts"),
			datastar.WithModeAppend(),
		)
		if err != nil {
			h.logger.Debug("failed to send toast", "error", err)
			return
		}
	}
	if err := sse.MarshalAndPatchSignals(v.Signals()); err != nil {
		_ = sse.ConsoleError(err)
	}
}

// Updates is the long-lived SSE stream keeping the export buttons in sync
// with the visitor's controllers. It sends the current state on connect.
func (h *Handlers) Updates(w http.ResponseWriter, r *http.Request) {
	visitor, err := h.visitor(w, r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	topic := visitor.Topic()
	updates := h.notifier.Subscribe(topic)
	defer h.notifier.Unsubscribe(topic, updates)

	sse := datastar.NewSSE(w, r)
	if err := sse.MarshalAndPatchSignals(visitor.Signals()); err != nil {
		return
	}

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case <-updates:
			if err := sse.MarshalAndPatchSignals(visitor.Signals()); err != nil {
				_ = sse.ConsoleError(err)
			}
		}
	}
}

// File serves a staged download exactly once.
func (h *Handlers) File(w http.ResponseWriter, r *http.Request) {
	content, ok := h.handoffs.Take(chi.URLParam(r, "id"))
	if !ok {
		http.NotFound(w, r)
		return
	}
	h.writeMarkdown(w, content)
}

// Ack records the browser's answer to a clipboard write.
func (h *Handlers) Ack(w http.ResponseWriter, r *http.Request) {
	ok, err := strconv.ParseBool(r.URL.Query().Get("ok"))
	if err != nil {
		http.Error(w, "ok must be true or false", http.StatusBadRequest)
		return
	}
	if err := h.handoffs.Resolve(chi.URLParam(r, "id"), ok); err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Markdown serves the full export without going through a controller, for
// clients without JavaScript.
func (h *Handlers) Markdown(w http.ResponseWriter, _ *http.Request) {
	h.writeMarkdown(w, h.source())
}

func (h *Handlers) writeMarkdown(w http.ResponseWriter, content string) {
	w.Header().Set("Content-Type", export.MarkdownContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", h.fileName))
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write([]byte(content))
}

// visitor resolves the session's visitor, issuing a new id when needed.
func (h *Handlers) visitor(w http.ResponseWriter, r *http.Request) (*Visitor, error) {
	// A cookie that fails to decode yields a fresh session.
	sess, _ := h.sessionStore.Get(r, sessionName)
	id, _ := sess.Values[visitorKey].(string)
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
		sess.Values[visitorKey] = id
		if err := sess.Save(r, w); err != nil {
			return nil, fmt.Errorf("failed to save session: %w", err)
		}
	}
	return h.registry.Get(id)
}

// clipboardDestination asks the browser to write the payload to the
// clipboard and waits for it to acknowledge.
func (h *Handlers) clipboardDestination() export.Destination {
	return export.DestinationFunc(func(ctx context.Context, payload string) error {
		sse, ok := sseFrom(ctx)
		if !ok {
			return errNoClient
		}

		id, result := h.handoffs.Open("")
		defer h.handoffs.Discard(id)

		script := "hookitup.copyAck(" + jsString(payload) + ", " + jsString("/export/acks/"+id) + ")"
		if err := sse.ExecuteScript(script); err != nil {
			return fmt.Errorf("failed to send clipboard script: %w", err)
		}

		ok, err := waitHandoff(ctx, result, h.ackTimeout)
		if err != nil {
			return err
		}
		if !ok {
			return errClipboardDenied
		}
		return nil
	})
}

// downloadDestination stages the payload and has the browser fetch it.
// The export completes once the staged file has been served.
func (h *Handlers) downloadDestination() export.Destination {
	return export.DestinationFunc(func(ctx context.Context, payload string) error {
		sse, ok := sseFrom(ctx)
		if !ok {
			return errNoClient
		}

		id, result := h.handoffs.Open(payload)
		defer h.handoffs.Discard(id)

		script := "hookitup.download(" + jsString("/export/files/"+id) + ", " + jsString(h.fileName) + ")"
		if err := sse.ExecuteScript(script); err != nil {
			return fmt.Errorf("failed to send download script: %w", err)
		}

		_, err := waitHandoff(ctx, result, h.ackTimeout)
		return err
	})
}

// jsString quotes s as a JavaScript string literal safe inside <script>.
func jsString(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

type sseKey struct{}

func withSSE(ctx context.Context, sse *datastar.ServerSentEventGenerator) context.Context {
	return context.WithValue(ctx, sseKey{}, sse)
}

func sseFrom(ctx context.Context) (*datastar.ServerSentEventGenerator, bool) {
	sse, ok := ctx.Value(sseKey{}).(*datastar.ServerSentEventGenerator)
	return sse, ok
}
