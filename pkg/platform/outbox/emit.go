package outbox

import (
	"context"
	"fmt"

	"casebook/pkg/requestcontext"
)

// Emit builds an event stamped with the request's actor, request ID and clock
// and appends it to store. A nil store drops the event.
func Emit(ctx context.Context, store Store, eventType EventType, aggregateType, aggregateID string, payload any) error {
	if store == nil {
		return nil
	}
	event, err := NewEvent(eventType, aggregateType, aggregateID, payload, requestcontext.Now(ctx))
	if err != nil {
		return fmt.Errorf("build %s event: %w", eventType, err)
	}
	if actor := requestcontext.UserID(ctx); !actor.IsNil() {
		event.ActorID = actor.String()
	}
	event.RequestID = requestcontext.RequestID(ctx)
	if err := store.Append(ctx, event); err != nil {
		return fmt.Errorf("append %s event: %w", eventType, err)
	}
	return nil
}
