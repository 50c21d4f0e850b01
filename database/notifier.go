package database

import "sync"

// Change topics published by the repositories.
const (
	TopicTasks      = "tasks"
	TopicRegistries = "registries"
)

// Notifier is a minimal in-process change signal. Repositories publish after
// every write; live queries subscribe and re-read on each signal. Signals are
// coalesced: a subscriber that has not drained yet gets at most one pending
// tick, never a backlog.
type Notifier struct {
	mu   sync.Mutex
	subs map[string]map[chan struct{}]struct{}
}

func NewNotifier() *Notifier {
	return &Notifier{subs: map[string]map[chan struct{}]struct{}{}}
}

// Subscribe returns a signal channel for topic and a cancel func that must be
// called when the subscriber goes away.
func (n *Notifier) Subscribe(topic string) (<-chan struct{}, func()) {
	ch := make(chan struct{}, 1)
	n.mu.Lock()
	if n.subs[topic] == nil {
		n.subs[topic] = map[chan struct{}]struct{}{}
	}
	n.subs[topic][ch] = struct{}{}
	n.mu.Unlock()

	cancel := func() {
		n.mu.Lock()
		delete(n.subs[topic], ch)
		n.mu.Unlock()
	}
	return ch, cancel
}

// Publish wakes every subscriber of topic without blocking.
func (n *Notifier) Publish(topic string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for ch := range n.subs[topic] {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}
