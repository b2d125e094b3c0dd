package pubsub

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

type greeting struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

var testGreeting = NewEvent[greeting]("test.greeting.sent", "A greeting was sent")

func TestWatermillBridgeDelivers(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	received := make(chan Message, 1)
	err := bridge.Subscribe(ctx, "test.topic", func(ctx context.Context, msg Message) error {
		received <- msg
		return nil
	})
	require.NoError(t, err)

	err = bridge.Publish(ctx, Message{
		Topic:    "test.topic",
		VisitID:  "visit-1",
		Payload:  []byte("hello"),
		Metadata: map[string]string{"request_id": "req-1"},
	})
	require.NoError(t, err)

	select {
	case msg := <-received:
		assert.Equal(t, "test.topic", msg.Topic)
		assert.Equal(t, "visit-1", msg.VisitID)
		assert.Equal(t, []byte("hello"), msg.Payload)
		assert.Equal(t, "req-1", msg.Metadata["request_id"])
		assert.NotContains(t, msg.Metadata, metaKeyTopic)
	case <-time.After(2 * time.Second):
		t.Fatal("message was not delivered")
	}
}

func TestCorrelationIDReachesHandler(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()

	got := make(chan string, 2)
	err := bridge.Subscribe(context.Background(), "test.topic", func(ctx context.Context, msg Message) error {
		got <- CorrelationID(ctx)
		return nil
	})
	require.NoError(t, err)

	ctx := WithCorrelationID(context.Background(), "req-7")
	require.NoError(t, bridge.Publish(ctx, Message{Topic: "test.topic"}))
	require.NoError(t, bridge.Publish(context.Background(), Message{Topic: "test.topic"}))

	var ids []string
	for range 2 {
		select {
		case id := <-got:
			ids = append(ids, id)
		case <-time.After(2 * time.Second):
			t.Fatal("message was not delivered")
		}
	}
	assert.ElementsMatch(t, []string{"req-7", ""}, ids)
}

func TestTypedEventRoundTrip(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()
	ctx := context.Background()

	got := make(chan greeting, 1)
	err := Subscribe(ctx, bridge, testGreeting, func(ctx context.Context, visitID string, g greeting) error {
		assert.Equal(t, "visit-2", visitID)
		got <- g
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, Publish(ctx, bridge, testGreeting, "visit-2", greeting{Text: "hi", Count: 2}))

	select {
	case g := <-got:
		assert.Equal(t, greeting{Text: "hi", Count: 2}, g)
	case <-time.After(2 * time.Second):
		t.Fatal("typed event was not delivered")
	}
	assert.Equal(t, "test.greeting.sent", testGreeting.Name())
	assert.Equal(t, "A greeting was sent", testGreeting.Description())
}

func TestHandlerErrorDoesNotStopDelivery(t *testing.T) {
	bridge := NewWatermillBridge()
	defer bridge.Close()
	ctx := context.Background()

	calls := make(chan int, 2)
	n := 0
	err := bridge.Subscribe(ctx, "test.flaky", func(ctx context.Context, msg Message) error {
		n++
		calls <- n
		if n == 1 {
			return errors.New("boom")
		}
		return nil
	})
	require.NoError(t, err)

	require.NoError(t, bridge.Publish(ctx, Message{Topic: "test.flaky"}))
	require.NoError(t, bridge.Publish(ctx, Message{Topic: "test.flaky"}))

	for want := 1; want <= 2; want++ {
		select {
		case got := <-calls:
			assert.Equal(t, want, got)
		case <-time.After(2 * time.Second):
			t.Fatalf("call %d did not happen", want)
		}
	}
}

func TestCloseStopsSubscriptionLoops(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	bridge := NewWatermillBridge()
	require.NoError(t, bridge.Subscribe(context.Background(), "test.leak", func(ctx context.Context, msg Message) error {
		return nil
	}))

	require.NoError(t, bridge.Close())
	require.NoError(t, bridge.Close())
}
