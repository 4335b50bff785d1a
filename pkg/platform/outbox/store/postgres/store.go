package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"casebook/pkg/platform/outbox"
	txcontext "casebook/pkg/platform/tx"
)

// Store implements the transactional outbox on the outbox table.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

type dbExecutor interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

func (s *Store) execer(ctx context.Context) dbExecutor {
	if tx, ok := txcontext.From(ctx); ok {
		return tx
	}
	return s.db
}

// Append writes the event in the caller's transaction when one is attached.
func (s *Store) Append(ctx context.Context, event outbox.Event) error {
	query := `
		INSERT INTO outbox (id, aggregate_type, aggregate_id, event_type, payload, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.execer(ctx).ExecContext(ctx, query,
		event.ID,
		event.AggregateType,
		event.AggregateID,
		string(event.Type),
		[]byte(event.Payload),
		event.OccurredAt,
	)
	if err != nil {
		return fmt.Errorf("insert outbox entry: %w", err)
	}
	return nil
}

// Claim locks a batch with FOR UPDATE SKIP LOCKED so several relays can run
// side by side, publishes it, then marks it published in the same transaction.
func (s *Store) Claim(ctx context.Context, limit int, publish func(ctx context.Context, events []outbox.Event) error) (int, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin outbox claim: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	rows, err := tx.QueryContext(ctx, `
		SELECT id, aggregate_type, aggregate_id, event_type, payload, created_at
		FROM outbox
		WHERE published_at IS NULL
		ORDER BY created_at
		LIMIT $1
		FOR UPDATE SKIP LOCKED
	`, limit)
	if err != nil {
		return 0, fmt.Errorf("select outbox batch: %w", err)
	}
	var (
		batch []outbox.Event
		ids   []uuid.UUID
	)
	for rows.Next() {
		var (
			e         outbox.Event
			eventType string
			payload   []byte
		)
		if err := rows.Scan(&e.ID, &e.AggregateType, &e.AggregateID, &eventType, &payload, &e.OccurredAt); err != nil {
			rows.Close()
			return 0, fmt.Errorf("scan outbox row: %w", err)
		}
		e.Type = outbox.EventType(eventType)
		e.Payload = payload
		batch = append(batch, e)
		ids = append(ids, e.ID)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return 0, fmt.Errorf("iterate outbox batch: %w", err)
	}
	if len(batch) == 0 {
		return 0, nil
	}

	if err := publish(ctx, batch); err != nil {
		return 0, err
	}

	now := time.Now()
	for _, eventID := range ids {
		if _, err := tx.ExecContext(ctx, `UPDATE outbox SET published_at = $2 WHERE id = $1`, eventID, now); err != nil {
			return 0, fmt.Errorf("mark outbox published: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit outbox claim: %w", err)
	}
	return len(batch), nil
}
