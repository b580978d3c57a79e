package device

import (
	"context"
	"sync"
)

type topic int

const (
	topicPermissions topic = iota
	topicInputMethods
	topicChosenIme
	topicSounds
	topicShizukuInstalled
	topicShizukuStarted
	topicInputDevices
)

// notifier fans change signals out to per-topic subscribers.
type notifier struct {
	mu   sync.Mutex
	subs map[topic]map[chan struct{}]struct{}
}

func newNotifier() *notifier {
	return &notifier{subs: make(map[topic]map[chan struct{}]struct{})}
}

func (n *notifier) subscribe(ctx context.Context, t topic) <-chan struct{} {
	ch := make(chan struct{}, 1)

	n.mu.Lock()
	if n.subs[t] == nil {
		n.subs[t] = make(map[chan struct{}]struct{})
	}
	n.subs[t][ch] = struct{}{}
	n.mu.Unlock()

	go func() {
		<-ctx.Done()
		n.mu.Lock()
		delete(n.subs[t], ch)
		close(ch)
		n.mu.Unlock()
	}()
	return ch
}

func (n *notifier) publish(topics ...topic) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, t := range topics {
		for ch := range n.subs[t] {
			select {
			case ch <- struct{}{}:
			default:
			}
		}
	}
}
