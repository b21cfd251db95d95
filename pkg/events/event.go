package events

import (
	"fmt"
	"time"
)

// Event defines the contract for all change-feed events.
type Event interface {
	// EventType returns the unique code for this event (e.g., "topics.created").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

// NewChangeEvent builds the table-level change event the realtime clients
// subscribe to, e.g. "answers.created" or "topics.deleted".
func NewChangeEvent(table, action string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		Type:       fmt.Sprintf("%s.%s", table, action),
		Data:       data,
		OccurredAt: time.Now(),
	}
}
