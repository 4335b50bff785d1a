package award

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"casebook/internal/reputation/models"
	"casebook/internal/storage"
	id "casebook/pkg/domain"
	"casebook/pkg/platform/sentinel"
)

// PostgresStore persists awards; UNIQUE (user_id, badge_id) backs the
// one-award-per-pair invariant.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const awardColumns = `id, user_id, badge_id, badge_name, case_id, awarded_by, reason, awarded_at`

// Create inserts a, returning sentinel.ErrAlreadyUsed when the user already
// holds the badge. The pair conflict is resolved by ON CONFLICT DO NOTHING so
// it never aborts the surrounding transaction.
func (s *PostgresStore) Create(ctx context.Context, a *models.BadgeAward) error {
	query := `INSERT INTO badge_awards (` + awardColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (user_id, badge_id) DO NOTHING`
	res, err := storage.Conn(ctx, s.db).ExecContext(ctx, query,
		uuid.UUID(a.ID),
		uuid.UUID(a.UserID),
		uuid.UUID(a.BadgeID),
		a.BadgeName,
		nullCase(a.CaseID),
		nullUser(a.AwardedBy),
		a.Reason,
		a.AwardedAt,
	)
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("insert badge award: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert badge award: %w", err)
	}
	if n == 0 {
		return sentinel.ErrAlreadyUsed
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, awardID id.BadgeAwardID) (*models.BadgeAward, error) {
	return s.findOne(ctx, `SELECT `+awardColumns+` FROM badge_awards WHERE id = $1`, uuid.UUID(awardID))
}

func (s *PostgresStore) FindByUserAndBadge(ctx context.Context, userID id.UserID, badgeID id.BadgeID) (*models.BadgeAward, error) {
	return s.findOne(ctx, `SELECT `+awardColumns+` FROM badge_awards WHERE user_id = $1 AND badge_id = $2`, uuid.UUID(userID), uuid.UUID(badgeID))
}

func (s *PostgresStore) ListByUser(ctx context.Context, userID id.UserID) ([]*models.BadgeAward, error) {
	return s.query(ctx, `SELECT `+awardColumns+` FROM badge_awards WHERE user_id = $1 ORDER BY awarded_at, badge_name`, uuid.UUID(userID))
}

func (s *PostgresStore) ListByAwarder(ctx context.Context, awarderID id.UserID) ([]*models.BadgeAward, error) {
	return s.query(ctx, `SELECT `+awardColumns+` FROM badge_awards WHERE awarded_by = $1 ORDER BY awarded_at, badge_name`, uuid.UUID(awarderID))
}

func (s *PostgresStore) Delete(ctx context.Context, awardID id.BadgeAwardID) error {
	res, err := storage.Conn(ctx, s.db).ExecContext(ctx, `DELETE FROM badge_awards WHERE id = $1`, uuid.UUID(awardID))
	if err != nil {
		return fmt.Errorf("delete badge award: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete badge award: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) findOne(ctx context.Context, query string, args ...any) (*models.BadgeAward, error) {
	a, err := scanAward(storage.Conn(ctx, s.db).QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find badge award: %w", err)
	}
	return a, nil
}

func (s *PostgresStore) query(ctx context.Context, query string, args ...any) ([]*models.BadgeAward, error) {
	rows, err := storage.Conn(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query badge awards: %w", err)
	}
	defer rows.Close()
	out := make([]*models.BadgeAward, 0)
	for rows.Next() {
		a, err := scanAward(rows)
		if err != nil {
			return nil, fmt.Errorf("scan badge award: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAward(row rowScanner) (*models.BadgeAward, error) {
	var (
		a                        models.BadgeAward
		awardID, userID, badgeID uuid.UUID
		caseID, awardedBy        uuid.NullUUID
	)
	if err := row.Scan(&awardID, &userID, &badgeID, &a.BadgeName, &caseID, &awardedBy, &a.Reason, &a.AwardedAt); err != nil {
		return nil, err
	}
	a.ID = id.BadgeAwardID(awardID)
	a.UserID = id.UserID(userID)
	a.BadgeID = id.BadgeID(badgeID)
	if caseID.Valid {
		c := id.CaseID(caseID.UUID)
		a.CaseID = &c
	}
	if awardedBy.Valid {
		u := id.UserID(awardedBy.UUID)
		a.AwardedBy = &u
	}
	return &a, nil
}

func nullCase(c *id.CaseID) uuid.NullUUID {
	if c == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: uuid.UUID(*c), Valid: true}
}

func nullUser(u *id.UserID) uuid.NullUUID {
	if u == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: uuid.UUID(*u), Valid: true}
}
