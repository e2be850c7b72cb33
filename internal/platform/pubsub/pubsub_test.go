package pubsub_test

import (
	"context"
	"testing"
	"time"

	portssvc "github.com/fynbos-apps/bookkeeper/internal/core/ports/services"
	"github.com/fynbos-apps/bookkeeper/internal/core/domain"
	"github.com/fynbos-apps/bookkeeper/internal/platform/pubsub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func notification(eventID string) portssvc.LedgerNotification {
	return portssvc.LedgerNotification{
		EntityID:   "entity-1",
		EventID:    eventID,
		EventType:  domain.RevenueEarned,
		OccurredAt: time.Now().UTC(),
	}
}

func TestBrokerDeliversToSubscribers(t *testing.T) {
	b := pubsub.NewBroker(nil)
	defer b.Close()

	ch1, unsub1 := b.Subscribe(4)
	ch2, unsub2 := b.Subscribe(4)
	defer unsub1()
	defer unsub2()

	b.Publish(context.Background(), notification("ev-1"))

	for _, ch := range []<-chan portssvc.LedgerNotification{ch1, ch2} {
		select {
		case n := <-ch:
			assert.Equal(t, "ev-1", n.EventID)
		case <-time.After(time.Second):
			t.Fatal("notification not delivered")
		}
	}
}

func TestBrokerNeverBlocksOnFullSubscriber(t *testing.T) {
	b := pubsub.NewBroker(nil)
	defer b.Close()

	ch, unsub := b.Subscribe(1)
	defer unsub()

	done := make(chan struct{})
	go func() {
		// Second publish overflows the buffer; it must drop, not block.
		b.Publish(context.Background(), notification("ev-1"))
		b.Publish(context.Background(), notification("ev-2"))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("publish blocked on a full subscriber")
	}

	n := <-ch
	assert.Equal(t, "ev-1", n.EventID)
}

func TestUnsubscribeClosesChannel(t *testing.T) {
	b := pubsub.NewBroker(nil)
	defer b.Close()

	ch, unsub := b.Subscribe(1)
	unsub()
	unsub() // idempotent

	_, open := <-ch
	require.False(t, open)

	// Publishing after unsubscribe must not panic.
	b.Publish(context.Background(), notification("ev-3"))
}

func TestCloseDropsAllSubscribers(t *testing.T) {
	b := pubsub.NewBroker(nil)
	ch, _ := b.Subscribe(1)
	b.Close()

	_, open := <-ch
	assert.False(t, open)
	b.Publish(context.Background(), notification("ev-4")) // no-op after close
}
