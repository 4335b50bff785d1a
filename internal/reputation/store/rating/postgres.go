package rating

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

// PostgresStore persists ratings; UNIQUE (rater_id, rated_user_id) makes
// re-rating an in-place update.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const ratingColumns = `id, rater_id, rated_user_id, related_case_id, score, comment, category, created_at, updated_at`

// Upsert relies on xmax = 0 to tell a fresh insert from a conflict update.
func (s *PostgresStore) Upsert(ctx context.Context, r *models.Rating) (*models.Rating, bool, error) {
	query := `
		INSERT INTO ratings (` + ratingColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (rater_id, rated_user_id) DO UPDATE SET
			related_case_id = EXCLUDED.related_case_id,
			score = EXCLUDED.score,
			comment = EXCLUDED.comment,
			category = EXCLUDED.category,
			updated_at = EXCLUDED.updated_at
		RETURNING ` + ratingColumns + `, (xmax = 0) AS inserted
	`
	var caseID uuid.NullUUID
	if r.RelatedCaseID != nil {
		caseID = uuid.NullUUID{UUID: uuid.UUID(*r.RelatedCaseID), Valid: true}
	}
	row := storage.Conn(ctx, s.db).QueryRowContext(ctx, query,
		uuid.UUID(r.ID),
		uuid.UUID(r.RaterID),
		uuid.UUID(r.RatedUserID),
		caseID,
		r.Score,
		r.Comment,
		r.Category,
		r.CreatedAt,
		r.UpdatedAt,
	)
	var inserted bool
	stored, err := scanRating(row, &inserted)
	if err != nil {
		return nil, false, fmt.Errorf("upsert rating: %w", err)
	}
	return stored, inserted, nil
}

func (s *PostgresStore) FindByID(ctx context.Context, ratingID id.RatingID) (*models.Rating, error) {
	query := `SELECT ` + ratingColumns + ` FROM ratings WHERE id = $1`
	r, err := scanRating(storage.Conn(ctx, s.db).QueryRowContext(ctx, query, uuid.UUID(ratingID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find rating: %w", err)
	}
	return r, nil
}

func (s *PostgresStore) ListByRatedUser(ctx context.Context, userID id.UserID) ([]*models.Rating, error) {
	return s.query(ctx, `SELECT `+ratingColumns+` FROM ratings WHERE rated_user_id = $1 ORDER BY updated_at DESC, id`, uuid.UUID(userID))
}

func (s *PostgresStore) ListByRater(ctx context.Context, raterID id.UserID) ([]*models.Rating, error) {
	return s.query(ctx, `SELECT `+ratingColumns+` FROM ratings WHERE rater_id = $1 ORDER BY updated_at DESC, id`, uuid.UUID(raterID))
}

func (s *PostgresStore) Aggregate(ctx context.Context, userID id.UserID) (models.Aggregate, error) {
	var agg models.Aggregate
	query := `SELECT COALESCE(AVG(score), 0)::float8, COUNT(*) FROM ratings WHERE rated_user_id = $1`
	if err := storage.Conn(ctx, s.db).QueryRowContext(ctx, query, uuid.UUID(userID)).Scan(&agg.Average, &agg.Count); err != nil {
		return models.Aggregate{}, fmt.Errorf("aggregate ratings: %w", err)
	}
	return agg, nil
}

// CategoryTallies groups userID's received ratings by category in one pass.
func (s *PostgresStore) CategoryTallies(ctx context.Context, userID id.UserID) ([]models.CategoryTally, error) {
	query := `
		SELECT category, COUNT(*), COALESCE(SUM(score), 0),
			COUNT(*) FILTER (WHERE score >= $2), COUNT(*) FILTER (WHERE score = $3)
		FROM ratings
		WHERE rated_user_id = $1
		GROUP BY category
		ORDER BY category
	`
	rows, err := storage.Conn(ctx, s.db).QueryContext(ctx, query, uuid.UUID(userID), models.HighScore, models.MaxScore)
	if err != nil {
		return nil, fmt.Errorf("tally ratings: %w", err)
	}
	defer rows.Close()
	out := make([]models.CategoryTally, 0)
	for rows.Next() {
		var t models.CategoryTally
		if err := rows.Scan(&t.Category, &t.Count, &t.Sum, &t.High, &t.Perfect); err != nil {
			return nil, fmt.Errorf("scan rating tally: %w", err)
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Delete(ctx context.Context, ratingID id.RatingID) error {
	res, err := storage.Conn(ctx, s.db).ExecContext(ctx, `DELETE FROM ratings WHERE id = $1`, uuid.UUID(ratingID))
	if err != nil {
		return fmt.Errorf("delete rating: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete rating: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func (s *PostgresStore) query(ctx context.Context, query string, args ...any) ([]*models.Rating, error) {
	rows, err := storage.Conn(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query ratings: %w", err)
	}
	defer rows.Close()
	out := make([]*models.Rating, 0)
	for rows.Next() {
		r, err := scanRating(rows)
		if err != nil {
			return nil, fmt.Errorf("scan rating: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanRating reads ratingColumns followed by any extra destinations.
func scanRating(row rowScanner, extra ...any) (*models.Rating, error) {
	var (
		r                          models.Rating
		ratingID, raterID, ratedID uuid.UUID
		caseID                     uuid.NullUUID
	)
	dest := append([]any{&ratingID, &raterID, &ratedID, &caseID, &r.Score, &r.Comment, &r.Category, &r.CreatedAt, &r.UpdatedAt}, extra...)
	if err := row.Scan(dest...); err != nil {
		return nil, err
	}
	r.ID = id.RatingID(ratingID)
	r.RaterID = id.UserID(raterID)
	r.RatedUserID = id.UserID(ratedID)
	if caseID.Valid {
		c := id.CaseID(caseID.UUID)
		r.RelatedCaseID = &c
	}
	return &r, nil
}
