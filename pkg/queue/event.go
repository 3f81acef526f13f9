package queue

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event types published after successful admin actions.
const (
	EventUserVerified       = "user.verified"
	EventUserStatusChanged  = "user.status_changed"
	EventMovieReviewed      = "movie.reviewed"
	EventDMCAResolved       = "dmca.resolved"
	EventModerationReviewed = "moderation.reviewed"
	EventReportUpdated      = "report.updated"
	EventSnapshotSaved      = "snapshot.saved"
)

// Event is the payload the admin console's notifier receives.
type Event struct {
	ID         string            `json:"id"`
	Type       string            `json:"type"`
	EntityType string            `json:"entity_type"`
	EntityID   int64             `json:"entity_id"`
	ActorID    string            `json:"actor_id,omitempty"`
	Payload    map[string]string `json:"payload,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}

func NewEvent(eventType, entityType string, entityID int64, actorID string) Event {
	return Event{
		ID:         uuid.New().String(),
		Type:       eventType,
		EntityType: entityType,
		EntityID:   entityID,
		ActorID:    actorID,
		Payload:    map[string]string{},
		OccurredAt: time.Now().UTC(),
	}
}

func (e Event) With(key, value string) Event {
	if e.Payload == nil {
		e.Payload = map[string]string{}
	}
	e.Payload[key] = value
	return e
}

type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close() error
}

type Subscriber interface {
	Subscribe(ctx context.Context, handler func(Event) error) error
}

// NopPublisher drops every event. Used when EVENTS_BACKEND=none.
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }

func (NopPublisher) Close() error { return nil }
