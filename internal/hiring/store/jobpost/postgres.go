package jobpost

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"casebook/internal/hiring/models"
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

const postColumns = `id, recruiter_id, hourly_rate, case_type, overview, location, status, created_at, updated_at`

func (s *PostgresStore) Create(ctx context.Context, p *models.JobPost) error {
	query := `INSERT INTO job_posts (` + postColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := storage.Conn(ctx, s.db).ExecContext(ctx, query,
		uuid.UUID(p.ID),
		uuid.UUID(p.RecruiterID),
		p.HourlyRate,
		p.CaseType,
		p.Overview,
		p.Location,
		string(p.Status),
		p.CreatedAt,
		p.UpdatedAt,
	)
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("insert job post: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, postID id.JobPostID) (*models.JobPost, error) {
	query := `SELECT ` + postColumns + ` FROM job_posts WHERE id = $1`
	p, err := scanPost(storage.Conn(ctx, s.db).QueryRowContext(ctx, query, uuid.UUID(postID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find job post: %w", err)
	}
	return p, nil
}

// List builds its WHERE clause from the non-zero filter fields.
func (s *PostgresStore) List(ctx context.Context, filter models.PostFilter) ([]*models.JobPost, error) {
	var (
		clauses []string
		args    []any
	)
	add := func(clause string, arg any) {
		args = append(args, arg)
		clauses = append(clauses, strings.ReplaceAll(clause, "?", "$"+strconv.Itoa(len(args))))
	}
	if filter.Status != "" {
		add("status = ?", string(filter.Status))
	}
	if filter.CaseType != "" {
		add("lower(case_type) = lower(?)", filter.CaseType)
	}
	if filter.Location != "" {
		add("lower(location) = lower(?)", filter.Location)
	}
	if filter.RecruiterID != nil {
		add("recruiter_id = ?", uuid.UUID(*filter.RecruiterID))
	}
	query := `SELECT ` + postColumns + ` FROM job_posts`
	if len(clauses) > 0 {
		query += ` WHERE ` + strings.Join(clauses, " AND ")
	}
	query += ` ORDER BY created_at DESC, id`

	rows, err := storage.Conn(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query job posts: %w", err)
	}
	defer rows.Close()
	out := make([]*models.JobPost, 0)
	for rows.Next() {
		p, err := scanPost(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job post: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (s *PostgresStore) Execute(ctx context.Context, postID id.JobPostID, validate func(*models.JobPost) error, mutate func(*models.JobPost)) (*models.JobPost, error) {
	var result *models.JobPost
	err := storage.WithLock(ctx, s.db, func(exec storage.Executor) error {
		query := `SELECT ` + postColumns + ` FROM job_posts WHERE id = $1 FOR UPDATE`
		p, err := scanPost(exec.QueryRowContext(ctx, query, uuid.UUID(postID)))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return sentinel.ErrNotFound
			}
			return fmt.Errorf("lock job post: %w", err)
		}
		if validate != nil {
			if err := validate(p); err != nil {
				return err
			}
		}
		mutate(p)
		update := `UPDATE job_posts SET hourly_rate = $2, case_type = $3, overview = $4, location = $5, status = $6, updated_at = $7 WHERE id = $1`
		if _, err := exec.ExecContext(ctx, update,
			uuid.UUID(p.ID),
			p.HourlyRate,
			p.CaseType,
			p.Overview,
			p.Location,
			string(p.Status),
			p.UpdatedAt,
		); err != nil {
			return fmt.Errorf("update job post: %w", err)
		}
		result = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *PostgresStore) Delete(ctx context.Context, postID id.JobPostID) error {
	res, err := storage.Conn(ctx, s.db).ExecContext(ctx, `DELETE FROM job_posts WHERE id = $1`, uuid.UUID(postID))
	if err != nil {
		return fmt.Errorf("delete job post: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete job post: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPost(row rowScanner) (*models.JobPost, error) {
	var (
		p                   models.JobPost
		postID, recruiterID uuid.UUID
		rate                sql.NullFloat64
		status              string
	)
	if err := row.Scan(&postID, &recruiterID, &rate, &p.CaseType, &p.Overview, &p.Location, &status, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return nil, err
	}
	p.ID = id.JobPostID(postID)
	p.RecruiterID = id.UserID(recruiterID)
	p.Status = models.PostStatus(status)
	if rate.Valid {
		p.HourlyRate = &rate.Float64
	}
	return &p, nil
}
