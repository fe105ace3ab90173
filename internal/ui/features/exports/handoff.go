package exports

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultHandoffTTL bounds how long a staged download or pending clipboard
// acknowledgement stays claimable.
const DefaultHandoffTTL = time.Minute

var (
	errHandoffExpired = errors.New("client did not respond in time")
	errHandoffUnknown = errors.New("unknown or expired handoff")
)

type handoff struct {
	content string
	expires time.Time
	result  chan bool
}

// handoffs tracks one-shot exchanges with the browser: a staged download
// file fetched once, or a clipboard write the client acknowledges.
type handoffs struct {
	ttl time.Duration
	now func() time.Time

	mu    sync.Mutex
	items map[string]*handoff
}

func newHandoffs(ttl time.Duration) *handoffs {
	if ttl <= 0 {
		ttl = DefaultHandoffTTL
	}
	return &handoffs{ttl: ttl, now: time.Now, items: make(map[string]*handoff)}
}

// Open stages content and returns its id and the channel its outcome is
// delivered on.
func (s *handoffs) Open(content string) (string, <-chan bool) {
	id := uuid.NewString()
	h := &handoff{
		content: content,
		expires: s.now().Add(s.ttl),
		result:  make(chan bool, 1),
	}
	s.mu.Lock()
	s.items[id] = h
	s.mu.Unlock()
	return id, h.result
}

// Take removes the handoff and reports success to its waiter.
func (s *handoffs) Take(id string) (string, bool) {
	h, ok := s.remove(id)
	if !ok {
		return "", false
	}
	h.result <- true
	return h.content, true
}

// Resolve removes the handoff and reports ok to its waiter.
func (s *handoffs) Resolve(id string, ok bool) error {
	h, found := s.remove(id)
	if !found {
		return errHandoffUnknown
	}
	h.result <- ok
	return nil
}

// Discard drops the handoff without notifying anyone.
func (s *handoffs) Discard(id string) {
	s.remove(id)
}

// waitHandoff blocks until result delivers, ctx ends, or timeout elapses.
func waitHandoff(ctx context.Context, result <-chan bool, timeout time.Duration) (bool, error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case ok := <-result:
		return ok, nil
	case <-ctx.Done():
		return false, ctx.Err()
	case <-timer.C:
		return false, errHandoffExpired
	}
}

// Sweep drops expired handoffs.
func (s *handoffs) Sweep() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	removed := 0
	for id, h := range s.items {
		if now.After(h.expires) {
			delete(s.items, id)
			removed++
		}
	}
	return removed
}

// Len returns the number of pending handoffs.
func (s *handoffs) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

func (s *handoffs) remove(id string) (*handoff, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.items[id]
	if !ok {
		return nil, false
	}
	delete(s.items, id)
	if s.now().After(h.expires) {
		return nil, false
	}
	return h, true
}
