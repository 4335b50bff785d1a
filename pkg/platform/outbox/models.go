// Package outbox carries domain events from a committed mutation to Kafka.
//
// Services append events inside the same unit of work as the state change
// they describe, so an event exists iff its mutation committed. The relay
// worker publishes unpublished rows and marks them published.
package outbox

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// EventType names a domain event. It doubles as the Kafka record key prefix.
type EventType string

const (
	EventUserRegistered       EventType = "user_registered"
	EventOrganizationVerified EventType = "organization_verified"
	EventCaseCreated          EventType = "case_created"
	EventCaseStatusChanged    EventType = "case_status_changed"
	EventCaseSolved           EventType = "case_solved"
	EventCaseDeleted          EventType = "case_deleted"
	EventCaseSolverAssigned   EventType = "case_solver_assigned"
	EventCaseBadgeAwarded     EventType = "case_badge_awarded"
	EventParticipationChanged EventType = "participation_changed"
	EventHiringRequested      EventType = "hiring_requested"
	EventHiringStatusChanged  EventType = "hiring_status_changed"
	EventJobPostChanged       EventType = "job_post_changed"
	EventApplicationChanged   EventType = "application_changed"
	EventBadgeAwarded         EventType = "badge_awarded"
	EventBadgeRevoked         EventType = "badge_revoked"
	EventRatingSubmitted      EventType = "rating_submitted"
	EventRatingDeleted        EventType = "rating_deleted"
	EventReputationRecomputed EventType = "reputation_recomputed"
	EventBadgeCatalogChanged  EventType = "badge_catalog_changed"
)

// Event is one outbox row.
type Event struct {
	ID            uuid.UUID       `json:"id"`
	Type          EventType       `json:"type"`
	AggregateType string          `json:"aggregate_type"`
	AggregateID   string          `json:"aggregate_id"`
	ActorID       string          `json:"actor_id,omitempty"`
	RequestID     string          `json:"request_id,omitempty"`
	Payload       json.RawMessage `json:"payload"`
	OccurredAt    time.Time       `json:"occurred_at"`
	PublishedAt   *time.Time      `json:"published_at,omitempty"`
}

// NewEvent marshals payload and stamps a fresh ID.
func NewEvent(eventType EventType, aggregateType, aggregateID string, payload any, now time.Time) (Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{
		ID:            uuid.New(),
		Type:          eventType,
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		Payload:       raw,
		OccurredAt:    now,
	}, nil
}

// Store is the write side used by services.
type Store interface {
	Append(ctx context.Context, event Event) error
}

// Source is the read side used by the relay.
type Source interface {
	// Claim returns up to limit unpublished events, oldest first, and calls
	// publish with them; rows are marked published only when publish succeeds.
	Claim(ctx context.Context, limit int, publish func(ctx context.Context, events []Event) error) (int, error)
}

// Publisher delivers a batch of events to the broker.
type Publisher interface {
	Publish(ctx context.Context, events []Event) error
}
