package events

import "time"

// EventType identifies a user lifecycle transition.
type EventType string

const (
	UserCreated EventType = "USER_CREATED"
	UserDeleted EventType = "USER_DELETED"
)

// UserEventsStream is the Redis stream all user lifecycle events are
// published to.
const UserEventsStream = "user-events"

// UserEvent is an immutable fact describing a completed lifecycle transition.
// Email and name are snapshots taken at transition time; for a deletion they
// describe the record as it was just before it was removed.
type UserEvent struct {
	EventType     EventType `json:"eventType"`
	UserID        int64     `json:"userId"`
	UserEmail     string    `json:"userEmail"`
	UserName      string    `json:"userName"`
	Timestamp     time.Time `json:"timestamp"`
	CorrelationID string    `json:"correlationId,omitempty"`
}
