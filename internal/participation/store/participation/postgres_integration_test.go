//go:build integration

package participation_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	idmodels "casebook/internal/identity/models"
	"casebook/internal/identity/store/user"
	"casebook/internal/participation/models"
	"casebook/internal/participation/store/participation"
	id "casebook/pkg/domain"
	"casebook/pkg/platform/sentinel"
	"casebook/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *participation.PostgresStore
	users    *user.PostgresStore
}

func TestPostgresStoreSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(PostgresStoreSuite))
}

func (s *PostgresStoreSuite) SetupSuite() {
	s.postgres = containers.GetManager().GetPostgres(s.T())
	s.store = participation.NewPostgres(s.postgres.DB)
	s.users = user.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateAll(context.Background()))
}

func (s *PostgresStoreSuite) newUser() id.UserID {
	u, err := idmodels.NewUser(id.UserID(uuid.New()), "u-"+uuid.NewString()[:8], "u@example.com", idmodels.RoleSolver, time.Now())
	s.Require().NoError(err)
	s.Require().NoError(s.users.Create(context.Background(), u))
	return u.ID
}

func (s *PostgresStoreSuite) TestPairUniquenessAndReactivation() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	userID, caseID := s.newUser(), id.CaseID(uuid.New())

	p, err := models.NewParticipation(id.ParticipationID(uuid.New()), userID, caseID, models.RoleSolver, now)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Create(ctx, p))

	dup, err := models.NewParticipation(id.ParticipationID(uuid.New()), userID, caseID, models.RoleFollower, now)
	s.Require().NoError(err)
	s.ErrorIs(s.store.Create(ctx, dup), sentinel.ErrAlreadyUsed)

	_, err = s.store.Execute(ctx, userID, caseID, nil, func(p *models.Participation) { p.ApplyStatus(models.StatusInactive, now) })
	s.Require().NoError(err)
	n, err := s.store.CountActiveByUser(ctx, userID)
	s.Require().NoError(err)
	s.Zero(n)

	back, err := s.store.Execute(ctx, userID, caseID,
		func(p *models.Participation) error { return p.CanReactivate() },
		func(p *models.Participation) { p.Reactivate(models.RoleLeader, now.Add(time.Minute)) },
	)
	s.Require().NoError(err)
	s.Equal(p.ID, back.ID)
	s.Equal(models.RoleLeader, back.Role)

	list, err := s.store.ListByCase(ctx, caseID)
	s.Require().NoError(err)
	s.Len(list, 1)
}

func (s *PostgresStoreSuite) TestDeactivateCase() {
	ctx := context.Background()
	now := time.Now().UTC()
	caseID := id.CaseID(uuid.New())
	a, b := s.newUser(), s.newUser()
	for _, userID := range []id.UserID{a, b} {
		p, err := models.NewParticipation(id.ParticipationID(uuid.New()), userID, caseID, models.RoleSolver, now)
		s.Require().NoError(err)
		s.Require().NoError(s.store.Create(ctx, p))
	}

	users, err := s.store.DeactivateCase(ctx, caseID, now)
	s.Require().NoError(err)
	s.ElementsMatch([]id.UserID{a, b}, users)

	active, err := s.store.CountActiveByUser(ctx, a)
	s.Require().NoError(err)
	s.Zero(active)
}
