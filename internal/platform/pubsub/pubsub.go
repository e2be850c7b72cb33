// Package pubsub provides the channel-backed implementation of the ledger's
// notification side-channel. It is owned and wired by main, never by the core: the
// recorder only sees the EventPublisher interface and keeps working if no publisher
// is attached at all.
package pubsub

import (
	"context"
	"log/slog"
	"sync"

	portssvc "github.com/fynbos-apps/bookkeeper/internal/core/ports/services"
)

// Broker fans ledger notifications out to subscriber channels. Publishing never
// blocks the write path: a subscriber whose buffer is full simply misses the
// notification, which is fine because readers can always re-fetch their snapshot.
type Broker struct {
	mu     sync.RWMutex
	subs   map[int]chan portssvc.LedgerNotification
	nextID int
	closed bool
	logger *slog.Logger
}

// NewBroker creates an empty broker.
func NewBroker(logger *slog.Logger) *Broker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Broker{
		subs:   make(map[int]chan portssvc.LedgerNotification),
		logger: logger,
	}
}

var _ portssvc.EventPublisher = (*Broker)(nil)

// Publish delivers the notification to every subscriber with room in its buffer.
func (b *Broker) Publish(_ context.Context, n portssvc.LedgerNotification) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return
	}
	for id, ch := range b.subs {
		select {
		case ch <- n:
		default:
			b.logger.Debug("Subscriber buffer full, notification dropped",
				slog.Int("subscriber", id), slog.String("event_id", n.EventID))
		}
	}
}

// Subscribe registers a buffered subscriber channel and returns it with an
// unsubscribe function. The channel is closed on unsubscribe.
func (b *Broker) Subscribe(buffer int) (<-chan portssvc.LedgerNotification, func()) {
	if buffer < 1 {
		buffer = 1
	}
	ch := make(chan portssvc.LedgerNotification, buffer)

	b.mu.Lock()
	id := b.nextID
	b.nextID++
	b.subs[id] = ch
	b.mu.Unlock()

	var once sync.Once
	unsubscribe := func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(ch)
		})
	}
	return ch, unsubscribe
}

// Close drops all subscribers and closes their channels.
func (b *Broker) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
