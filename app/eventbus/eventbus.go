// Package eventbus wraps watermill so modules publish and subscribe without caring
// about the transport. The app runs as a single process, so the in-memory gochannel
// pub/sub is the transport; clients still learn about changes by polling.
package eventbus

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

// EventBus is the publish/subscribe contract modules depend on.
type EventBus interface {
	Publish(topic string, payload any) error
	Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error)
	Close() error
}

type bus struct {
	pubsub *gochannel.GoChannel
	logger *slog.Logger
}

// New creates an in-process EventBus.
func New(logger *slog.Logger) EventBus {
	wmLogger := watermill.NewSlogLogger(logger)
	return &bus{
		pubsub: gochannel.NewGoChannel(gochannel.Config{
			OutputChannelBuffer: 64,
		}, wmLogger),
		logger: logger,
	}
}

// Publish JSON-encodes the payload and publishes it on the topic.
func (b *bus) Publish(topic string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload for topic %s: %w", topic, err)
	}

	msg := message.NewMessage(watermill.NewUUID(), data)
	if err := b.pubsub.Publish(topic, msg); err != nil {
		return fmt.Errorf("failed to publish to topic %s: %w", topic, err)
	}
	return nil
}

func (b *bus) Subscribe(ctx context.Context, topic string) (<-chan *message.Message, error) {
	ch, err := b.pubsub.Subscribe(ctx, topic)
	if err != nil {
		return nil, fmt.Errorf("failed to subscribe to topic %s: %w", topic, err)
	}
	return ch, nil
}

func (b *bus) Close() error {
	return b.pubsub.Close()
}
