//go:build integration

package user_test

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"casebook/internal/identity/models"
	"casebook/internal/identity/store/user"
	id "casebook/pkg/domain"
	"casebook/pkg/platform/sentinel"
	"casebook/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *user.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = user.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateAll(context.Background()))
}

func newTestUser(username string, role models.Role) *models.User {
	u, err := models.NewUser(id.UserID(uuid.New()), username, username+"@example.com", role, time.Now().UTC().Truncate(time.Microsecond))
	if err != nil {
		panic(err)
	}
	u.PasswordHash = "$2a$04$hash"
	return u
}

func (s *PostgresStoreSuite) TestRoundTrip() {
	ctx := context.Background()
	u := newTestUser("holmes", models.RoleSolver)
	rate := 95.5
	u.HourlyRate = &rate
	u.Specializations = []string{"MURDER", "THEFT"}
	s.Require().NoError(s.store.Create(ctx, u))

	found, err := s.store.FindByID(ctx, u.ID)
	s.Require().NoError(err)
	s.Equal(u.Username, found.Username)
	s.Equal(u.PasswordHash, found.PasswordHash)
	s.Equal(u.Specializations, found.Specializations)
	s.Require().NotNil(found.HourlyRate)
	s.Equal(rate, *found.HourlyRate)
	s.Empty(found.Badges)

	byName, err := s.store.FindByUsername(ctx, "HOLMES")
	s.Require().NoError(err)
	s.Equal(u.ID, byName.ID)

	_, err = s.store.FindByID(ctx, id.UserID(uuid.New()))
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *PostgresStoreSuite) TestUsernameUniqueness() {
	ctx := context.Background()
	s.Require().NoError(s.store.Create(ctx, newTestUser("watson", models.RoleSolver)))
	err := s.store.Create(ctx, newTestUser("Watson", models.RoleRecruiter))
	s.ErrorIs(err, sentinel.ErrAlreadyUsed)
}

// TestConcurrentExecute verifies row locking serializes read-modify-write.
func (s *PostgresStoreSuite) TestConcurrentExecute() {
	ctx := context.Background()
	u := newTestUser("holmes", models.RoleSolver)
	s.Require().NoError(s.store.Create(ctx, u))

	const goroutines = 20
	var wg sync.WaitGroup
	var failures atomic.Int32
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.store.Execute(ctx, u.ID,
				func(*models.User) error { return nil },
				func(u *models.User) { u.IncrementSolvedCases(time.Now()) },
			)
			if err != nil {
				failures.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Zero(failures.Load())
	found, err := s.store.FindByID(ctx, u.ID)
	s.Require().NoError(err)
	s.Equal(goroutines, found.SolvedCasesCount)
}

func (s *PostgresStoreSuite) TestListByRole() {
	ctx := context.Background()
	s.Require().NoError(s.store.Create(ctx, newTestUser("holmes", models.RoleSolver)))
	s.Require().NoError(s.store.Create(ctx, newTestUser("poirot", models.RoleSolver)))
	s.Require().NoError(s.store.Create(ctx, newTestUser("yard", models.RoleOrganization)))

	solvers, err := s.store.ListByRole(ctx, models.RoleSolver)
	s.Require().NoError(err)
	s.Len(solvers, 2)
}
