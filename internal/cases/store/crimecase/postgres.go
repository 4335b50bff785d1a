package crimecase

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"casebook/internal/cases/models"
	"casebook/internal/storage"
	id "casebook/pkg/domain"
	"casebook/pkg/platform/sentinel"
)

// PostgresStore persists cases in PostgreSQL.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgres(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

const caseColumns = `id, title, description, location, case_type, difficulty, status, privacy,
	posted_by, primary_solver, assigned_solvers, solved_by, solution, solution_notes,
	badge_awarded, awarded_badge, badge_awarded_at, tags, incident_date,
	posted_at, updated_at, solved_at, closed_at`

func (s *PostgresStore) Create(ctx context.Context, c *models.CrimeCase) error {
	query := `
		INSERT INTO crime_cases (` + caseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23)
	`
	if _, err := storage.Conn(ctx, s.db).ExecContext(ctx, query, caseArgs(c)...); err != nil {
		if storage.IsUniqueViolation(err) {
			return sentinel.ErrAlreadyUsed
		}
		return fmt.Errorf("insert case: %w", err)
	}
	return nil
}

func (s *PostgresStore) FindByID(ctx context.Context, caseID id.CaseID) (*models.CrimeCase, error) {
	query := `SELECT ` + caseColumns + ` FROM crime_cases WHERE id = $1`
	c, err := scanCase(storage.Conn(ctx, s.db).QueryRowContext(ctx, query, uuid.UUID(caseID)))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, fmt.Errorf("find case by id: %w", err)
	}
	return c, nil
}

func (s *PostgresStore) List(ctx context.Context, filter models.Filter) ([]*models.CrimeCase, error) {
	var (
		clauses []string
		args    []any
	)
	add := func(column string, value any) {
		args = append(args, value)
		clauses = append(clauses, fmt.Sprintf("%s = $%d", column, len(args)))
	}
	if filter.Status != "" {
		add("status", string(filter.Status))
	}
	if filter.CaseType != "" {
		add("case_type", string(filter.CaseType))
	}
	if filter.Difficulty != "" {
		add("difficulty", string(filter.Difficulty))
	}
	if filter.Privacy != "" {
		add("privacy", string(filter.Privacy))
	}
	if filter.PostedBy != nil {
		add("posted_by", uuid.UUID(*filter.PostedBy))
	}
	if filter.SolvedBy != nil {
		add("solved_by", uuid.UUID(*filter.SolvedBy))
	}
	query := `SELECT ` + caseColumns + ` FROM crime_cases`
	if len(clauses) > 0 {
		query += ` WHERE ` + strings.Join(clauses, " AND ")
	}
	query += ` ORDER BY posted_at DESC, id`
	return s.query(ctx, query, args...)
}

func (s *PostgresStore) ListSolvedWithoutBadge(ctx context.Context) ([]*models.CrimeCase, error) {
	query := `SELECT ` + caseColumns + ` FROM crime_cases
		WHERE status = $1 AND badge_awarded = FALSE
		ORDER BY posted_at DESC, id`
	return s.query(ctx, query, string(models.StatusSolved))
}

func (s *PostgresStore) query(ctx context.Context, query string, args ...any) ([]*models.CrimeCase, error) {
	rows, err := storage.Conn(ctx, s.db).QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cases: %w", err)
	}
	defer rows.Close()
	out := make([]*models.CrimeCase, 0)
	for rows.Next() {
		c, err := scanCase(rows)
		if err != nil {
			return nil, fmt.Errorf("scan case: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Execute locks the case row with SELECT ... FOR UPDATE; the status check in
// validate therefore sees the last committed transition.
func (s *PostgresStore) Execute(ctx context.Context, caseID id.CaseID, validate func(*models.CrimeCase) error, mutate func(*models.CrimeCase)) (*models.CrimeCase, error) {
	var result *models.CrimeCase
	err := storage.WithLock(ctx, s.db, func(exec storage.Executor) error {
		query := `SELECT ` + caseColumns + ` FROM crime_cases WHERE id = $1 FOR UPDATE`
		c, err := scanCase(exec.QueryRowContext(ctx, query, uuid.UUID(caseID)))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return sentinel.ErrNotFound
			}
			return fmt.Errorf("lock case: %w", err)
		}
		if validate != nil {
			if err := validate(c); err != nil {
				return err
			}
		}
		mutate(c)
		update := `
			UPDATE crime_cases SET
				title = $2, description = $3, location = $4, case_type = $5, difficulty = $6,
				status = $7, privacy = $8, posted_by = $9, primary_solver = $10, assigned_solvers = $11,
				solved_by = $12, solution = $13, solution_notes = $14, badge_awarded = $15,
				awarded_badge = $16, badge_awarded_at = $17, tags = $18, incident_date = $19,
				posted_at = $20, updated_at = $21, solved_at = $22, closed_at = $23
			WHERE id = $1
		`
		if _, err := exec.ExecContext(ctx, update, caseArgs(c)...); err != nil {
			return fmt.Errorf("update case: %w", err)
		}
		result = c
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *PostgresStore) Delete(ctx context.Context, caseID id.CaseID) error {
	res, err := storage.Conn(ctx, s.db).ExecContext(ctx, `DELETE FROM crime_cases WHERE id = $1`, uuid.UUID(caseID))
	if err != nil {
		return fmt.Errorf("delete case: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete case rows affected: %w", err)
	}
	if n == 0 {
		return sentinel.ErrNotFound
	}
	return nil
}

func caseArgs(c *models.CrimeCase) []any {
	return []any{
		uuid.UUID(c.ID),
		c.Title,
		c.Description,
		c.Location,
		string(c.CaseType),
		string(c.Difficulty),
		string(c.Status),
		string(c.Privacy),
		uuid.UUID(c.PostedBy),
		nullableUserID(c.PrimarySolver),
		pq.Array(userIDStrings(c.AssignedSolvers)),
		nullableUserID(c.SolvedBy),
		nullableString(c.Solution),
		nullableString(c.SolutionNotes),
		c.BadgeAwarded,
		nullableString(c.AwardedBadge),
		c.BadgeAwardedAt,
		pq.Array(c.Tags),
		c.IncidentDate,
		c.PostedAt,
		c.UpdatedAt,
		c.SolvedAt,
		c.ClosedAt,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCase(row rowScanner) (*models.CrimeCase, error) {
	var (
		c                                     models.CrimeCase
		caseID, postedBy                      uuid.UUID
		primarySolver, solvedBy               uuid.NullUUID
		caseType, difficulty, status, privacy string
		solution, solutionNotes, awardedBadge sql.NullString
		assigned, tags                        pq.StringArray
		badgeAwardedAt, incidentDate          sql.NullTime
		solvedAt, closedAt                    sql.NullTime
	)
	if err := row.Scan(
		&caseID,
		&c.Title,
		&c.Description,
		&c.Location,
		&caseType,
		&difficulty,
		&status,
		&privacy,
		&postedBy,
		&primarySolver,
		&assigned,
		&solvedBy,
		&solution,
		&solutionNotes,
		&c.BadgeAwarded,
		&awardedBadge,
		&badgeAwardedAt,
		&tags,
		&incidentDate,
		&c.PostedAt,
		&c.UpdatedAt,
		&solvedAt,
		&closedAt,
	); err != nil {
		return nil, err
	}
	c.ID = id.CaseID(caseID)
	c.PostedBy = id.UserID(postedBy)
	c.CaseType = models.CaseType(caseType)
	c.Difficulty = models.Difficulty(difficulty)
	c.Status = models.Status(status)
	c.Privacy = models.Privacy(privacy)
	c.PrimarySolver = userIDPtr(primarySolver)
	c.SolvedBy = userIDPtr(solvedBy)
	c.Solution = solution.String
	c.SolutionNotes = solutionNotes.String
	c.AwardedBadge = awardedBadge.String
	c.BadgeAwardedAt = timePtr(badgeAwardedAt)
	c.IncidentDate = timePtr(incidentDate)
	c.SolvedAt = timePtr(solvedAt)
	c.ClosedAt = timePtr(closedAt)
	c.Tags = []string(tags)
	c.AssignedSolvers = make([]id.UserID, 0, len(assigned))
	for _, raw := range assigned {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("parse assigned solver: %w", err)
		}
		c.AssignedSolvers = append(c.AssignedSolvers, id.UserID(parsed))
	}
	return &c, nil
}

func userIDStrings(ids []id.UserID) []string {
	out := make([]string, 0, len(ids))
	for _, v := range ids {
		out = append(out, v.String())
	}
	return out
}

func nullableUserID(v *id.UserID) uuid.NullUUID {
	if v == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: uuid.UUID(*v), Valid: true}
}

func userIDPtr(v uuid.NullUUID) *id.UserID {
	if !v.Valid {
		return nil
	}
	out := id.UserID(v.UUID)
	return &out
}

func nullableString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
