package hiringrequest

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"casebook/internal/hiring/models"
	"casebook/internal/storage"
	id "casebook/pkg/domain"
	"casebook/pkg/platform/sentinel"
)

// PostgresStore persists hiring requests. The partial unique index
// hiring_requests_open_triple_idx rejects a second open request on a triple.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const requestColumns = `id, organization_id, investigator_id, case_id, title, description,
	proposed_rate, proposed_duration, requirements, contact_info, investigator_response, status,
	requested_at, responded_at, accepted_at, started_at, completed_at, cancelled_at, updated_at`

func (s *PostgresStore) Create(ctx context.Context, r *models.HiringRequest) error {
	query := `INSERT INTO hiring_requests (` + requestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)`
	_, err := storage.Conn(ctx, s.db).ExecContext(ctx, query,
		uuid.UUID(r.ID),
		uuid.UUID(r.OrganizationID),
		uuid.UUID(r.InvestigatorID),
		uuid.UUID(r.CaseID),
		r.Terms.Title,
		r.Terms.Description,
		r.Terms.ProposedRate,
		r.Terms.ProposedDuration,
		r.Terms.Requirements,
		r.Terms.ContactInfo,
		r.InvestigatorResponse,
		string(r.Status),
		r.RequestedAt,
		r.RespondedAt,
		r.AcceptedAt,
		r.StartedAt,
		r.CompletedAt,
		r.CancelledAt,
		r.UpdatedAt,
	)
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("insert hiring request: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, requestID id.HiringRequestID) (*models.HiringRequest, error) {
	query := `SELECT ` + requestColumns + ` FROM hiring_requests WHERE id = $1`
	r, err := scanRequest(storage.Conn(ctx, s.db).QueryRowContext(ctx, query, uuid.UUID(requestID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find hiring request: %w", err)
	}
	return r, nil
}

func (s *PostgresStore) ListByOrganization(ctx context.Context, orgID id.UserID) ([]*models.HiringRequest, error) {
	return s.query(ctx, `SELECT `+requestColumns+` FROM hiring_requests WHERE organization_id = $1 ORDER BY requested_at DESC, id`, uuid.UUID(orgID))
}

func (s *PostgresStore) ListByInvestigator(ctx context.Context, investigatorID id.UserID) ([]*models.HiringRequest, error) {
	return s.query(ctx, `SELECT `+requestColumns+` FROM hiring_requests WHERE investigator_id = $1 ORDER BY requested_at DESC, id`, uuid.UUID(investigatorID))
}

func (s *PostgresStore) ListByCase(ctx context.Context, caseID id.CaseID) ([]*models.HiringRequest, error) {
	return s.query(ctx, `SELECT `+requestColumns+` FROM hiring_requests WHERE case_id = $1 ORDER BY requested_at DESC, id`, uuid.UUID(caseID))
}

func (s *PostgresStore) Execute(ctx context.Context, requestID id.HiringRequestID, validate func(*models.HiringRequest) error, mutate func(*models.HiringRequest)) (*models.HiringRequest, error) {
	var result *models.HiringRequest
	err := storage.WithLock(ctx, s.db, func(exec storage.Executor) error {
		query := `SELECT ` + requestColumns + ` FROM hiring_requests WHERE id = $1 FOR UPDATE`
		r, err := scanRequest(exec.QueryRowContext(ctx, query, uuid.UUID(requestID)))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return sentinel.ErrNotFound
			}
			return fmt.Errorf("lock hiring request: %w", err)
		}
		if validate != nil {
			if err := validate(r); err != nil {
				return err
			}
		}
		mutate(r)
		update := `
			UPDATE hiring_requests SET
				investigator_response = $2, status = $3, responded_at = $4, accepted_at = $5,
				started_at = $6, completed_at = $7, cancelled_at = $8, updated_at = $9
			WHERE id = $1
		`
		if _, err := exec.ExecContext(ctx, update,
			uuid.UUID(r.ID),
			r.InvestigatorResponse,
			string(r.Status),
			r.RespondedAt,
			r.AcceptedAt,
			r.StartedAt,
			r.CompletedAt,
			r.CancelledAt,
			r.UpdatedAt,
		); err != nil {
			return fmt.Errorf("update hiring request: %w", err)
		}
		result = r
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *PostgresStore) query(ctx context.Context, query string, args ...any) ([]*models.HiringRequest, error) {
	rows, err := storage.Conn(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query hiring requests: %w", err)
	}
	defer rows.Close()
	out := make([]*models.HiringRequest, 0)
	for rows.Next() {
		r, err := scanRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("scan hiring request: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRequest(row rowScanner) (*models.HiringRequest, error) {
	var (
		r                               models.HiringRequest
		requestID, orgID, invID, caseID uuid.UUID
		rate                            sql.NullFloat64
		status                          string
		responded, accepted, started    sql.NullTime
		completed, cancelled            sql.NullTime
	)
	err := row.Scan(
		&requestID, &orgID, &invID, &caseID,
		&r.Terms.Title, &r.Terms.Description, &rate, &r.Terms.ProposedDuration,
		&r.Terms.Requirements, &r.Terms.ContactInfo, &r.InvestigatorResponse, &status,
		&r.RequestedAt, &responded, &accepted, &started, &completed, &cancelled, &r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	r.ID = id.HiringRequestID(requestID)
	r.OrganizationID = id.UserID(orgID)
	r.InvestigatorID = id.UserID(invID)
	r.CaseID = id.CaseID(caseID)
	r.Status = models.Status(status)
	if rate.Valid {
		r.Terms.ProposedRate = &rate.Float64
	}
	r.RespondedAt = nullTime(responded)
	r.AcceptedAt = nullTime(accepted)
	r.StartedAt = nullTime(started)
	r.CompletedAt = nullTime(completed)
	r.CancelledAt = nullTime(cancelled)
	return &r, nil
}

func nullTime(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
