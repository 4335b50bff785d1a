package badge

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

type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const badgeColumns = `id, name, display_name, description, icon, color, type, tier, required_cases,
	required_rating, required_case_type, required_specialization, active, created_at, updated_at`

func (s *PostgresStore) Create(ctx context.Context, b *models.Badge) error {
	query := `INSERT INTO badges (` + badgeColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	_, err := storage.Conn(ctx, s.db).ExecContext(ctx, query,
		uuid.UUID(b.ID),
		b.Name,
		b.DisplayName,
		b.Description,
		b.Icon,
		b.Color,
		string(b.Type),
		string(b.Tier),
		b.RequiredCases,
		b.RequiredRating,
		nullString(b.RequiredCaseType),
		nullString(b.RequiredSpecialization),
		b.Active,
		b.CreatedAt,
		b.UpdatedAt,
	)
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("insert badge: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, badgeID id.BadgeID) (*models.Badge, error) {
	return s.findOne(ctx, `SELECT `+badgeColumns+` FROM badges WHERE id = $1`, uuid.UUID(badgeID))
}

func (s *PostgresStore) FindByName(ctx context.Context, name string) (*models.Badge, error) {
	return s.findOne(ctx, `SELECT `+badgeColumns+` FROM badges WHERE name = $1`, name)
}

func (s *PostgresStore) List(ctx context.Context) ([]*models.Badge, error) {
	rows, err := storage.Conn(ctx, s.db).QueryContext(ctx, `SELECT `+badgeColumns+` FROM badges ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("query badges: %w", err)
	}
	defer rows.Close()
	out := make([]*models.Badge, 0)
	for rows.Next() {
		b, err := scanBadge(rows)
		if err != nil {
			return nil, fmt.Errorf("scan badge: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Execute(ctx context.Context, badgeID id.BadgeID, validate func(*models.Badge) error, mutate func(*models.Badge)) (*models.Badge, error) {
	var result *models.Badge
	err := storage.WithLock(ctx, s.db, func(exec storage.Executor) error {
		b, err := scanBadge(exec.QueryRowContext(ctx, `SELECT `+badgeColumns+` FROM badges WHERE id = $1 FOR UPDATE`, uuid.UUID(badgeID)))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return sentinel.ErrNotFound
			}
			return fmt.Errorf("lock badge: %w", err)
		}
		if validate != nil {
			if err := validate(b); err != nil {
				return err
			}
		}
		mutate(b)
		update := `
			UPDATE badges SET
				name = $2, display_name = $3, description = $4, icon = $5, color = $6, type = $7,
				tier = $8, required_cases = $9, required_rating = $10, required_case_type = $11,
				required_specialization = $12, active = $13, updated_at = $14
			WHERE id = $1
		`
		_, err = exec.ExecContext(ctx, update,
			uuid.UUID(b.ID),
			b.Name,
			b.DisplayName,
			b.Description,
			b.Icon,
			b.Color,
			string(b.Type),
			string(b.Tier),
			b.RequiredCases,
			b.RequiredRating,
			nullString(b.RequiredCaseType),
			nullString(b.RequiredSpecialization),
			b.Active,
			b.UpdatedAt,
		)
		if err != nil {
			if storage.IsUniqueViolation(err) {
				return sentinel.ErrAlreadyUsed
			}
			return fmt.Errorf("update badge: %w", err)
		}
		result = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *PostgresStore) findOne(ctx context.Context, query string, arg any) (*models.Badge, error) {
	b, err := scanBadge(storage.Conn(ctx, s.db).QueryRowContext(ctx, query, arg))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find badge: %w", err)
	}
	return b, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBadge(row rowScanner) (*models.Badge, error) {
	var (
		b                        models.Badge
		badgeID                  uuid.UUID
		badgeType, tier          string
		requiredCases            sql.NullInt64
		requiredRating           sql.NullFloat64
		caseType, specialization sql.NullString
	)
	err := row.Scan(&badgeID, &b.Name, &b.DisplayName, &b.Description, &b.Icon, &b.Color, &badgeType, &tier,
		&requiredCases, &requiredRating, &caseType, &specialization, &b.Active, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}
	b.ID = id.BadgeID(badgeID)
	b.Type = models.BadgeType(badgeType)
	b.Tier = models.BadgeTier(tier)
	if requiredCases.Valid {
		n := int(requiredCases.Int64)
		b.RequiredCases = &n
	}
	if requiredRating.Valid {
		b.RequiredRating = &requiredRating.Float64
	}
	b.RequiredCaseType = caseType.String
	b.RequiredSpecialization = specialization.String
	return &b, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
