package participation

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"casebook/internal/participation/models"
	"casebook/internal/storage"
	id "casebook/pkg/domain"
	"casebook/pkg/platform/sentinel"
)

// PostgresStore persists participations; UNIQUE (user_id, case_id) backs the
// one-record-per-pair invariant.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const participationColumns = `id, user_id, case_id, role, status, joined_at, last_activity_at`

func (s *PostgresStore) Create(ctx context.Context, p *models.Participation) error {
	query := `INSERT INTO case_participations (` + participationColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := storage.Conn(ctx, s.db).ExecContext(ctx, query,
		uuid.UUID(p.ID),
		uuid.UUID(p.UserID),
		uuid.UUID(p.CaseID),
		string(p.Role),
		string(p.Status),
		p.JoinedAt,
		p.LastActivityAt,
	)
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("insert participation: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByUserAndCase(ctx context.Context, userID id.UserID, caseID id.CaseID) (*models.Participation, error) {
	query := `SELECT ` + participationColumns + ` FROM case_participations WHERE user_id = $1 AND case_id = $2`
	p, err := scanParticipation(storage.Conn(ctx, s.db).QueryRowContext(ctx, query, uuid.UUID(userID), uuid.UUID(caseID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find participation: %w", err)
	}
	return p, nil
}

func (s *PostgresStore) ListByCase(ctx context.Context, caseID id.CaseID) ([]*models.Participation, error) {
	query := `SELECT ` + participationColumns + ` FROM case_participations WHERE case_id = $1 ORDER BY joined_at, id`
	return s.query(ctx, query, uuid.UUID(caseID))
}

func (s *PostgresStore) ListByUser(ctx context.Context, userID id.UserID) ([]*models.Participation, error) {
	query := `SELECT ` + participationColumns + ` FROM case_participations WHERE user_id = $1 ORDER BY joined_at, id`
	return s.query(ctx, query, uuid.UUID(userID))
}

func (s *PostgresStore) CountActiveByUser(ctx context.Context, userID id.UserID) (int, error) {
	var n int
	query := `SELECT COUNT(*) FROM case_participations WHERE user_id = $1 AND status = $2`
	err := storage.Conn(ctx, s.db).QueryRowContext(ctx, query, uuid.UUID(userID), string(models.StatusActive)).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count active participations: %w", err)
	}
	return n, nil
}

func (s *PostgresStore) Execute(ctx context.Context, userID id.UserID, caseID id.CaseID, validate func(*models.Participation) error, mutate func(*models.Participation)) (*models.Participation, error) {
	var result *models.Participation
	err := storage.WithLock(ctx, s.db, func(exec storage.Executor) error {
		query := `SELECT ` + participationColumns + ` FROM case_participations WHERE user_id = $1 AND case_id = $2 FOR UPDATE`
		p, err := scanParticipation(exec.QueryRowContext(ctx, query, uuid.UUID(userID), uuid.UUID(caseID)))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return sentinel.ErrNotFound
			}
			return fmt.Errorf("lock participation: %w", err)
		}
		if validate != nil {
			if err := validate(p); err != nil {
				return err
			}
		}
		mutate(p)
		update := `UPDATE case_participations SET role = $2, status = $3, last_activity_at = $4 WHERE id = $1`
		if _, err := exec.ExecContext(ctx, update, uuid.UUID(p.ID), string(p.Role), string(p.Status), p.LastActivityAt); err != nil {
			return fmt.Errorf("update participation: %w", err)
		}
		result = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *PostgresStore) DeactivateCase(ctx context.Context, caseID id.CaseID, now time.Time) ([]id.UserID, error) {
	query := `
		UPDATE case_participations SET status = $3, last_activity_at = $4
		WHERE case_id = $1 AND status = $2
		RETURNING user_id
	`
	rows, err := storage.Conn(ctx, s.db).QueryContext(ctx, query,
		uuid.UUID(caseID), string(models.StatusActive), string(models.StatusInactive), now)
	if err != nil {
		return nil, fmt.Errorf("deactivate case participations: %w", err)
	}
	defer rows.Close()
	var users []id.UserID
	for rows.Next() {
		var userID uuid.UUID
		if err := rows.Scan(&userID); err != nil {
			return nil, fmt.Errorf("scan user id: %w", err)
		}
		users = append(users, id.UserID(userID))
	}
	return users, rows.Err()
}

func (s *PostgresStore) query(ctx context.Context, query string, args ...any) ([]*models.Participation, error) {
	rows, err := storage.Conn(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query participations: %w", err)
	}
	defer rows.Close()
	out := make([]*models.Participation, 0)
	for rows.Next() {
		p, err := scanParticipation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan participation: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanParticipation(row rowScanner) (*models.Participation, error) {
	var (
		p                   models.Participation
		pID, userID, caseID uuid.UUID
		role, status        string
	)
	if err := row.Scan(&pID, &userID, &caseID, &role, &status, &p.JoinedAt, &p.LastActivityAt); err != nil {
		return nil, err
	}
	p.ID = id.ParticipationID(pID)
	p.UserID = id.UserID(userID)
	p.CaseID = id.CaseID(caseID)
	p.Role = models.Role(role)
	p.Status = models.Status(status)
	return &p, nil
}
