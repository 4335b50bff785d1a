package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"casebook/internal/identity/models"
	"casebook/internal/storage"
	id "casebook/pkg/domain"
	"casebook/pkg/platform/sentinel"
)

// PostgresStore persists users in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const userColumns = `id, username, email, password_hash, role, organization_verified, available_for_hire,
	hourly_rate, specializations, average_rating, total_ratings, solved_cases_count,
	active_cases_count, badges, created_at, updated_at`

func (s *PostgresStore) Create(ctx context.Context, u *models.User) error {
	query := `
		INSERT INTO users (` + userColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err := storage.Conn(ctx, s.db).ExecContext(ctx, query, userArgs(u)...)
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("insert user: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, userID id.UserID) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	u, err := scanUser(storage.Conn(ctx, s.db).QueryRowContext(ctx, query, uuid.UUID(userID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	return u, nil
}

func (s *PostgresStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(username) = lower($1)`
	u, err := scanUser(storage.Conn(ctx, s.db).QueryRowContext(ctx, query, username))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return u, nil
}

func (s *PostgresStore) ListByRole(ctx context.Context, role models.Role) ([]*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE role = $1 ORDER BY username`
	rows, err := storage.Conn(ctx, s.db).QueryContext(ctx, query, string(role))
	if err != nil {
		return nil, fmt.Errorf("list users by role: %w", err)
	}
	defer rows.Close()
	var out []*models.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

// Execute locks the user row with SELECT ... FOR UPDATE, validates, mutates
// and writes back in the caller's transaction (or a private one).
func (s *PostgresStore) Execute(ctx context.Context, userID id.UserID, validate func(*models.User) error, mutate func(*models.User)) (*models.User, error) {
	var result *models.User
	err := storage.WithLock(ctx, s.db, func(exec storage.Executor) error {
		query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 FOR UPDATE`
		u, err := scanUser(exec.QueryRowContext(ctx, query, uuid.UUID(userID)))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return sentinel.ErrNotFound
			}
			return fmt.Errorf("lock user: %w", err)
		}
		if validate != nil {
			if err := validate(u); err != nil {
				return err
			}
		}
		mutate(u)
		update := `
			UPDATE users SET
				email = $2, role = $3, organization_verified = $4, available_for_hire = $5,
				hourly_rate = $6, specializations = $7, average_rating = $8, total_ratings = $9,
				solved_cases_count = $10, active_cases_count = $11, badges = $12, updated_at = $13
			WHERE id = $1
		`
		_, err = exec.ExecContext(ctx, update,
			uuid.UUID(u.ID),
			u.Email,
			string(u.Role),
			u.OrganizationVerified,
			u.AvailableForHire,
			u.HourlyRate,
			pq.Array(u.Specializations),
			u.AverageRating,
			u.TotalRatings,
			u.SolvedCasesCount,
			u.ActiveCasesCount,
			pq.Array(u.Badges),
			u.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		result = u
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func userArgs(u *models.User) []any {
	return []any{
		uuid.UUID(u.ID),
		u.Username,
		u.Email,
		u.PasswordHash,
		string(u.Role),
		u.OrganizationVerified,
		u.AvailableForHire,
		u.HourlyRate,
		pq.Array(u.Specializations),
		u.AverageRating,
		u.TotalRatings,
		u.SolvedCasesCount,
		u.ActiveCasesCount,
		pq.Array(u.Badges),
		u.CreatedAt,
		u.UpdatedAt,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var (
		u               models.User
		userID          uuid.UUID
		role            string
		hourlyRate      sql.NullFloat64
		specializations pq.StringArray
		badges          pq.StringArray
	)
	if err := row.Scan(
		&userID,
		&u.Username,
		&u.Email,
		&u.PasswordHash,
		&role,
		&u.OrganizationVerified,
		&u.AvailableForHire,
		&hourlyRate,
		&specializations,
		&u.AverageRating,
		&u.TotalRatings,
		&u.SolvedCasesCount,
		&u.ActiveCasesCount,
		&badges,
		&u.CreatedAt,
		&u.UpdatedAt,
	); err != nil {
		return nil, err
	}
	u.ID = id.UserID(userID)
	u.Role = models.Role(role)
	if hourlyRate.Valid {
		rate := hourlyRate.Float64
		u.HourlyRate = &rate
	}
	u.Specializations = []string(specializations)
	u.Badges = []string(badges)
	if u.Badges == nil {
		u.Badges = []string{}
	}
	return &u, nil
}
