package application

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"casebook/internal/hiring/models"
	"casebook/internal/storage"
	id "casebook/pkg/domain"
	"casebook/pkg/platform/sentinel"
)

// PostgresStore persists applications. UNIQUE (post_id, applicant_id)
// enforces one application per solver and post.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const applicationColumns = `id, post_id, applicant_id, cover_letter, status, created_at, updated_at`

func (s *PostgresStore) Create(ctx context.Context, a *models.Application) error {
	query := `INSERT INTO job_applications (` + applicationColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (post_id, applicant_id) DO NOTHING`
	res, err := storage.Conn(ctx, s.db).ExecContext(ctx, query,
		uuid.UUID(a.ID),
		uuid.UUID(a.PostID),
		uuid.UUID(a.ApplicantID),
		a.CoverLetter,
		string(a.Status),
		a.CreatedAt,
		a.UpdatedAt,
	)
	if err != nil {
		if storage.IsUniqueViolation(err) {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("insert job application: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("insert job application: %w", err)
	}
	if n == 0 {
		return sentinel.ErrAlreadyUsed
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, applicationID id.ApplicationID) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM job_applications WHERE id = $1`
	a, err := scanApplication(storage.Conn(ctx, s.db).QueryRowContext(ctx, query, uuid.UUID(applicationID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find job application: %w", err)
	}
	return a, nil
}

func (s *PostgresStore) ListByPost(ctx context.Context, postID id.JobPostID) ([]*models.Application, error) {
	return s.query(ctx, `SELECT `+applicationColumns+` FROM job_applications WHERE post_id = $1 ORDER BY created_at DESC, id`, uuid.UUID(postID))
}

func (s *PostgresStore) ListByApplicant(ctx context.Context, applicantID id.UserID) ([]*models.Application, error) {
	return s.query(ctx, `SELECT `+applicationColumns+` FROM job_applications WHERE applicant_id = $1 ORDER BY created_at DESC, id`, uuid.UUID(applicantID))
}

func (s *PostgresStore) Execute(ctx context.Context, applicationID id.ApplicationID, validate func(*models.Application) error, mutate func(*models.Application)) (*models.Application, error) {
	var result *models.Application
	err := storage.WithLock(ctx, s.db, func(exec storage.Executor) error {
		query := `SELECT ` + applicationColumns + ` FROM job_applications WHERE id = $1 FOR UPDATE`
		a, err := scanApplication(exec.QueryRowContext(ctx, query, uuid.UUID(applicationID)))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return sentinel.ErrNotFound
			}
			return fmt.Errorf("lock job application: %w", err)
		}
		if validate != nil {
			if err := validate(a); err != nil {
				return err
			}
		}
		mutate(a)
		if _, err := exec.ExecContext(ctx,
			`UPDATE job_applications SET status = $2, updated_at = $3 WHERE id = $1`,
			uuid.UUID(a.ID), string(a.Status), a.UpdatedAt,
		); err != nil {
			return fmt.Errorf("update job application: %w", err)
		}
		result = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *PostgresStore) DeleteByPost(ctx context.Context, postID id.JobPostID) error {
	if _, err := storage.Conn(ctx, s.db).ExecContext(ctx, `DELETE FROM job_applications WHERE post_id = $1`, uuid.UUID(postID)); err != nil {
		return fmt.Errorf("delete job applications: %w", err)
	}
	return nil
}

func (s *PostgresStore) query(ctx context.Context, query string, args ...any) ([]*models.Application, error) {
	rows, err := storage.Conn(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query job applications: %w", err)
	}
	defer rows.Close()
	out := make([]*models.Application, 0)
	for rows.Next() {
		a, err := scanApplication(rows)
		if err != nil {
			return nil, fmt.Errorf("scan job application: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApplication(row rowScanner) (*models.Application, error) {
	var (
		a                              models.Application
		applicationID, postID, applier uuid.UUID
		status                         string
	)
	if err := row.Scan(&applicationID, &postID, &applier, &a.CoverLetter, &status, &a.CreatedAt, &a.UpdatedAt); err != nil {
		return nil, err
	}
	a.ID = id.ApplicationID(applicationID)
	a.PostID = id.JobPostID(postID)
	a.ApplicantID = id.UserID(applier)
	a.Status = models.ApplicationStatus(status)
	return &a, nil
}
