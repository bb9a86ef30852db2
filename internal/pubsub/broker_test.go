package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func receive[T any](t *testing.T, ch <-chan Event[T]) Event[T] {
	t.Helper()
	select {
	case ev, ok := <-ch:
		require.True(t, ok, "channel closed before event arrived")
		return ev
	case <-time.After(time.Second):
		require.FailNow(t, "timeout waiting for event")
	}
	return Event[T]{}
}

func TestBroker_DeliversToEverySubscriber(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	a := broker.Subscribe(ctx)
	b := broker.Subscribe(ctx)
	require.Equal(t, 2, broker.SubscriberCount())

	broker.Publish(ChangedEvent, "dark")

	for _, ch := range []<-chan Event[string]{a, b} {
		ev := receive(t, ch)
		require.Equal(t, ChangedEvent, ev.Type)
		require.Equal(t, "dark", ev.Payload)
		require.False(t, ev.Timestamp.IsZero())
	}
}

func TestBroker_UnsubscribesOnCancel(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := broker.Subscribe(ctx)
	cancel()

	require.Eventually(t, func() bool {
		return broker.SubscriberCount() == 0
	}, time.Second, 5*time.Millisecond)

	_, ok := <-ch
	require.False(t, ok)
}

func TestBroker_FullSubscriberLosesOldest(t *testing.T) {
	broker := NewBrokerWithBuffer[string](2)
	defer broker.Close()

	ch := broker.Subscribe(context.Background())
	broker.Publish(ExportedEvent, "first.png")
	broker.Publish(ExportedEvent, "second.png")

	done := make(chan struct{})
	go func() {
		broker.Publish(ExportedEvent, "third.png")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		require.FailNow(t, "publish blocked on a full subscriber")
	}
	require.Equal(t, "second.png", receive(t, ch).Payload)
	require.Equal(t, "third.png", receive(t, ch).Payload)
	require.Equal(t, uint64(1), broker.Dropped())
}

func TestBroker_SubscribeFiltersTypes(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	failures := broker.Subscribe(ctx, FailedEvent)
	all := broker.Subscribe(ctx)

	broker.Publish(ExportedEvent, "tabs-component.png")
	broker.Publish(FailedEvent, "disk full")

	require.Equal(t, "disk full", receive(t, failures).Payload)
	require.Equal(t, ExportedEvent, receive(t, all).Type)
	require.Equal(t, FailedEvent, receive(t, all).Type)

	select {
	case ev := <-failures:
		require.FailNow(t, "unexpected event", "%v", ev)
	default:
	}
}

func TestBroker_CloseIsIdempotent(t *testing.T) {
	broker := NewBroker[error]()
	ch := broker.Subscribe(context.Background())

	broker.Close()
	broker.Close()

	_, ok := <-ch
	require.False(t, ok)
	require.Zero(t, broker.SubscriberCount())

	late := broker.Subscribe(context.Background())
	_, ok = <-late
	require.False(t, ok, "subscribe after close returns a closed channel")

	require.NotPanics(t, func() { broker.Publish(FailedEvent, nil) })
}
