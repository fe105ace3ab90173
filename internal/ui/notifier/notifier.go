// Package notifier pings SSE listeners when something they render changed.
package notifier

import "sync"

// Topic names a stream of pings. Export state uses one topic per visitor.
type Topic string

// TopicReload is pinged when static assets change in watch mode.
const TopicReload Topic = "reload"

// Notifier delivers pings to the listeners of a topic. A ping carries no
// payload; listeners re-read whatever state they render.
type Notifier struct {
	mu        sync.RWMutex
	listeners map[Topic]map[chan struct{}]struct{}
}

// New creates a Notifier with no listeners.
func New() *Notifier {
	return &Notifier{
		listeners: make(map[Topic]map[chan struct{}]struct{}),
	}
}

// Subscribe returns a channel pinged on every Broadcast to topic.
// Callers must Unsubscribe when done.
func (n *Notifier) Subscribe(topic Topic) chan struct{} {
	ch := make(chan struct{}, 1)
	n.mu.Lock()
	set, ok := n.listeners[topic]
	if !ok {
		set = make(map[chan struct{}]struct{})
		n.listeners[topic] = set
	}
	set[ch] = struct{}{}
	n.mu.Unlock()
	return ch
}

// Unsubscribe removes and closes ch.
func (n *Notifier) Unsubscribe(topic Topic, ch chan struct{}) {
	n.mu.Lock()
	if set, ok := n.listeners[topic]; ok {
		delete(set, ch)
		if len(set) == 0 {
			delete(n.listeners, topic)
		}
	}
	n.mu.Unlock()
	close(ch)
}

// Broadcast pings every listener of topic. A listener that has not drained
// its previous ping is skipped; it will still see one pending ping.
func (n *Notifier) Broadcast(topic Topic) {
	n.mu.RLock()
	defer n.mu.RUnlock()

	for ch := range n.listeners[topic] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Listeners returns the number of listeners subscribed to topic.
func (n *Notifier) Listeners(topic Topic) int {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return len(n.listeners[topic])
}
