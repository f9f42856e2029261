package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// Handler processes one delivered user event. Returning an error leaves the
// message unacknowledged so it will be redelivered; handlers must therefore
// tolerate seeing the same event more than once.
type Handler func(ctx context.Context, event UserEvent) error

// Subscriber reads the user-events stream through a consumer group.
// Instances sharing a group split the stream between them; each instance
// processes its deliveries sequentially in stream order.
type Subscriber struct {
	client        *redis.Client
	group         string
	consumer      string
	handler       Handler
	batchSize     int64
	blockDuration time.Duration
}

type SubscriberConfig struct {
	Group         string
	Consumer      string
	Handler       Handler
	BatchSize     int64
	BlockDuration time.Duration
}

func NewSubscriber(client *redis.Client, config SubscriberConfig) *Subscriber {
	if config.BatchSize == 0 {
		config.BatchSize = 10
	}
	if config.BlockDuration == 0 {
		config.BlockDuration = 5 * time.Second
	}

	return &Subscriber{
		client:        client,
		group:         config.Group,
		consumer:      config.Consumer,
		handler:       config.Handler,
		batchSize:     config.BatchSize,
		blockDuration: config.BlockDuration,
	}
}

// Start creates the consumer group if needed and consumes until the context
// is cancelled.
func (s *Subscriber) Start(ctx context.Context) error {
	err := s.client.XGroupCreateMkStream(ctx, UserEventsStream, s.group, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	log.Printf("Subscriber started: stream=%s group=%s consumer=%s", UserEventsStream, s.group, s.consumer)

	for {
		select {
		case <-ctx.Done():
			log.Printf("Subscriber stopping: %s", UserEventsStream)
			return ctx.Err()
		default:
			if err := s.readMessages(ctx); err != nil {
				log.Printf("Error reading messages: %v", err)
				time.Sleep(time.Second)
			}
		}
	}
}

func (s *Subscriber) readMessages(ctx context.Context) error {
	streams, err := s.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    s.group,
		Consumer: s.consumer,
		Streams:  []string{UserEventsStream, ">"},
		Count:    s.batchSize,
		Block:    s.blockDuration,
	}).Result()

	if err == redis.Nil {
		return nil // No messages
	}
	if err != nil {
		if ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("failed to read from stream: %w", err)
	}

	for _, stream := range streams {
		for _, message := range stream.Messages {
			event, err := decodeMessage(message)
			if err != nil {
				// A payload that cannot be decoded will never become
				// decodable; ack it so it does not loop forever.
				log.Printf("Dropping malformed message %s: %v", message.ID, err)
				s.ack(ctx, message.ID)
				continue
			}

			if err := s.handler(ctx, event); err != nil {
				log.Printf("Failed to process message %s: %v", message.ID, err)
				// Not acked; the message stays pending and is redelivered.
				continue
			}

			s.ack(ctx, message.ID)
		}
	}

	return nil
}

func (s *Subscriber) ack(ctx context.Context, messageID string) {
	if err := s.client.XAck(ctx, UserEventsStream, s.group, messageID).Err(); err != nil {
		log.Printf("Failed to ACK message %s: %v", messageID, err)
	}
}

func decodeMessage(message redis.XMessage) (UserEvent, error) {
	var event UserEvent

	eventData, ok := message.Values["event"].(string)
	if !ok {
		return event, fmt.Errorf("invalid message format")
	}

	if err := json.Unmarshal([]byte(eventData), &event); err != nil {
		return event, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	return event, nil
}
