package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestClient(t *testing.T) *redis.Client {
	t.Helper()
	m, err := miniredis.Run()
	if err != nil {
		t.Fatalf("miniredis: %v", err)
	}
	t.Cleanup(m.Close)
	client := redis.NewClient(&redis.Options{Addr: m.Addr()})
	t.Cleanup(func() { client.Close() })
	return client
}

func TestPublishAppendsEventToStream(t *testing.T) {
	client := newTestClient(t)
	publisher := NewPublisher(client)
	ctx := context.Background()

	event := UserEvent{
		EventType:     UserCreated,
		UserID:        1,
		UserEmail:     "alice@example.com",
		UserName:      "Alice",
		Timestamp:     time.Now().UTC().Truncate(time.Second),
		CorrelationID: "corr-1",
	}
	if err := publisher.Publish(ctx, event); err != nil {
		t.Fatalf("Publish: %v", err)
	}

	messages, err := client.XRange(ctx, UserEventsStream, "-", "+").Result()
	if err != nil {
		t.Fatalf("XRange: %v", err)
	}
	if len(messages) != 1 {
		t.Fatalf("expected 1 message on the stream, got %d", len(messages))
	}

	payload, ok := messages[0].Values["event"].(string)
	if !ok {
		t.Fatalf("expected event payload, got %+v", messages[0].Values)
	}
	var got UserEvent
	if err := json.Unmarshal([]byte(payload), &got); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if got.EventType != event.EventType || got.UserID != event.UserID ||
		got.UserEmail != event.UserEmail || got.UserName != event.UserName ||
		got.CorrelationID != event.CorrelationID {
		t.Errorf("round-tripped event mismatch:\n got %+v\nwant %+v", got, event)
	}
	if !got.Timestamp.Equal(event.Timestamp) {
		t.Errorf("timestamp mismatch: got %v, want %v", got.Timestamp, event.Timestamp)
	}
}

func TestPublishPreservesOrder(t *testing.T) {
	client := newTestClient(t)
	publisher := NewPublisher(client)
	ctx := context.Background()

	for i := int64(1); i <= 3; i++ {
		event := UserEvent{EventType: UserCreated, UserID: i, Timestamp: time.Now().UTC()}
		if err := publisher.Publish(ctx, event); err != nil {
			t.Fatalf("Publish %d: %v", i, err)
		}
	}

	messages, err := client.XRange(ctx, UserEventsStream, "-", "+").Result()
	if err != nil {
		t.Fatalf("XRange: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(messages))
	}
	for i, message := range messages {
		var got UserEvent
		if err := json.Unmarshal([]byte(message.Values["event"].(string)), &got); err != nil {
			t.Fatalf("unmarshal message %d: %v", i, err)
		}
		if got.UserID != int64(i+1) {
			t.Errorf("message %d: expected user id %d, got %d", i, i+1, got.UserID)
		}
	}
}

func TestEventJSONFieldNames(t *testing.T) {
	// The wire schema is shared with external consumers; field names are
	// part of the contract.
	event := UserEvent{
		EventType: UserDeleted,
		UserID:    5,
		UserEmail: "bob@example.com",
		UserName:  "Bob",
		Timestamp: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	data, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, field := range []string{"eventType", "userId", "userEmail", "userName", "timestamp"} {
		if _, ok := raw[field]; !ok {
			t.Errorf("missing wire field %q in %s", field, data)
		}
	}
	if raw["eventType"] != "USER_DELETED" {
		t.Errorf("unexpected eventType: %v", raw["eventType"])
	}
}
