package pubsub

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestListenCmd_ReturnsEventAsMsg(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch := broker.Subscribe(ctx)
	broker.Publish(LoggedEvent, "entry")

	msg := ListenCmd(ctx, ch)()
	ev, ok := msg.(Event[string])
	require.True(t, ok)
	require.Equal(t, "entry", ev.Payload)
}

func TestListenCmd_NilWhenClosed(t *testing.T) {
	ch := make(chan Event[string])
	close(ch)
	require.Nil(t, ListenCmd(context.Background(), ch)())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.Nil(t, ListenCmd(ctx, make(chan Event[string]))())
}

func TestContinuousListener_KeepsOrder(t *testing.T) {
	broker := NewBroker[int]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener := NewContinuousListener(ctx, broker)
	for i := 1; i <= 3; i++ {
		broker.Publish(ChangedEvent, i)
	}

	for want := 1; want <= 3; want++ {
		ev, ok := listener.Listen()().(Event[int])
		require.True(t, ok)
		require.Equal(t, want, ev.Payload)
	}
}

func TestContinuousListener_Filters(t *testing.T) {
	broker := NewBroker[string]()
	defer broker.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	listener := NewContinuousListener(ctx, broker, ChangedEvent)
	broker.Publish(LoggedEvent, "ignored")
	broker.Publish(ChangedEvent, "light")

	ev, ok := listener.Listen()().(Event[string])
	require.True(t, ok)
	require.Equal(t, "light", ev.Payload)
}
