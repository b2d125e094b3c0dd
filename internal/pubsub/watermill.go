package pubsub

import (
	"context"
	"log/slog"
	"sync"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/message/router/middleware"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// WatermillBridge implements Publisher and Subscriber on top of watermill's
// in-memory GoChannel.
type WatermillBridge struct {
	pub message.Publisher
	sub message.Subscriber

	closeOnce sync.Once
	closeErr  error
	wg        sync.WaitGroup
}

const (
	// Metadata keys used to carry Message fields through watermill.
	metaKeyVisitID = "visit_id"
	metaKeyTopic   = "topic"
)

// NewWatermillBridge initializes an in-memory bus.
func NewWatermillBridge() *WatermillBridge {
	logger := watermill.NewStdLogger(false, false)
	goChannel := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 64},
		logger,
	)

	return &WatermillBridge{
		pub: goChannel,
		sub: goChannel,
	}
}

func mapToWatermillMessage(msg Message) *message.Message {
	wmMsg := message.NewMessage(watermill.NewUUID(), msg.Payload)

	for k, v := range msg.Metadata {
		wmMsg.Metadata.Set(k, v)
	}
	wmMsg.Metadata.Set(metaKeyVisitID, msg.VisitID)
	wmMsg.Metadata.Set(metaKeyTopic, msg.Topic)

	return wmMsg
}

func mapToPubSubMessage(wmMsg *message.Message) Message {
	metadata := make(map[string]string)
	for k, v := range wmMsg.Metadata {
		if k != metaKeyVisitID && k != metaKeyTopic && k != middleware.CorrelationIDMetadataKey {
			metadata[k] = v
		}
	}

	return Message{
		Topic:    wmMsg.Metadata.Get(metaKeyTopic),
		VisitID:  wmMsg.Metadata.Get(metaKeyVisitID),
		Payload:  wmMsg.Payload,
		Metadata: metadata,
	}
}

// Publish implements the Publisher interface.
func (wb *WatermillBridge) Publish(ctx context.Context, msg Message) error {
	wmMsg := mapToWatermillMessage(msg)
	if id := CorrelationID(ctx); id != "" {
		middleware.SetCorrelationID(id, wmMsg)
	}
	wmMsg.SetContext(ctx)
	return wb.pub.Publish(msg.Topic, wmMsg)
}

// Subscribe implements the Subscriber interface. Messages are processed in a
// background goroutine; Close waits for it to finish. The GoChannel hands
// each subscriber a copy carrying the subscription context, so the
// publisher's correlation id travels in metadata and is restored here.
func (wb *WatermillBridge) Subscribe(ctx context.Context, topic string, handler Handler) error {
	messages, err := wb.sub.Subscribe(ctx, topic)
	if err != nil {
		return err
	}

	wb.wg.Add(1)
	go func() {
		defer wb.wg.Done()
		for wmMsg := range messages {
			msg := mapToPubSubMessage(wmMsg)
			msgCtx := wmMsg.Context()
			if id := middleware.MessageCorrelationID(wmMsg); id != "" {
				msgCtx = WithCorrelationID(msgCtx, id)
			}
			if err := handler(msgCtx, msg); err != nil {
				slog.Error("Failed to handle message", "topic", topic, "msg_id", wmMsg.UUID, "error", err)
				// The in-memory bus would redeliver a nacked message forever,
				// so failures are logged and acknowledged.
			}
			wmMsg.Ack()
		}
		slog.Debug("Subscription message loop ended", "topic", topic)
	}()

	return nil
}

// Close shuts the bus down and waits for subscription loops to drain. It is
// safe to call more than once.
func (wb *WatermillBridge) Close() error {
	wb.closeOnce.Do(func() {
		wb.closeErr = wb.sub.Close()
		wb.wg.Wait()
	})
	return wb.closeErr
}

// Shutdown lets the dependency container close the bus.
func (wb *WatermillBridge) Shutdown(ctx context.Context) error {
	return wb.Close()
}
