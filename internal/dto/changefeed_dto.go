package dto

import (
	"time"

	"github.com/google/uuid"
)

// ChangeFeedMessage travels over the in-process bus from the write path to
// the change-feed bridge.
type ChangeFeedMessage struct {
	Table      string    `json:"table"`
	Action     string    `json:"action"`
	EntityId   uuid.UUID `json:"entityId"`
	TopicId    uuid.UUID `json:"topicId,omitempty"`
	OccurredAt time.Time `json:"occurredAt"`
}
