//go:build integration

package hiringrequest_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"casebook/internal/hiring/models"
	"casebook/internal/hiring/store/hiringrequest"
	idmodels "casebook/internal/identity/models"
	"casebook/internal/identity/store/user"
	id "casebook/pkg/domain"
	"casebook/pkg/platform/sentinel"
	"casebook/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	store    *hiringrequest.PostgresStore
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
	s.store = hiringrequest.NewPostgres(s.postgres.DB)
	s.users = user.NewPostgres(s.postgres.DB)
}

func (s *PostgresStoreSuite) SetupTest() {
	s.Require().NoError(s.postgres.TruncateAll(context.Background()))
}

func (s *PostgresStoreSuite) newUser(role idmodels.Role) id.UserID {
	u, err := idmodels.NewUser(id.UserID(uuid.New()), "u-"+uuid.NewString()[:8], "u@example.com", role, time.Now())
	s.Require().NoError(err)
	s.Require().NoError(s.users.Create(context.Background(), u))
	return u.ID
}

func (s *PostgresStoreSuite) TestRoundTripAndOpenTriple() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	org, inv, caseID := s.newUser(idmodels.RoleOrganization), s.newUser(idmodels.RoleSolver), id.CaseID(uuid.New())
	rate := 120.5

	r, err := models.NewHiringRequest(id.HiringRequestID(uuid.New()), org, inv, caseID,
		models.Terms{Title: "Surveillance", ProposedRate: &rate, ContactInfo: "desk@agency.test"}, now)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Create(ctx, r))

	got, err := s.store.FindByID(ctx, r.ID)
	s.Require().NoError(err)
	s.Equal(r.Terms, got.Terms)
	s.Equal(models.StatusPending, got.Status)

	dup, err := models.NewHiringRequest(id.HiringRequestID(uuid.New()), org, inv, caseID, models.Terms{Title: "Again"}, now)
	s.Require().NoError(err)
	s.ErrorIs(s.store.Create(ctx, dup), sentinel.ErrAlreadyUsed)

	accepted, err := s.store.Execute(ctx, r.ID,
		func(r *models.HiringRequest) error { return r.CanRespond("accept") },
		func(r *models.HiringRequest) { r.ApplyAccept("yes", now) })
	s.Require().NoError(err)
	s.Require().NotNil(accepted.AcceptedAt)

	_, err = s.store.Execute(ctx, r.ID, nil, func(r *models.HiringRequest) { r.ApplyComplete(now) })
	s.Require().NoError(err)
	s.NoError(s.store.Create(ctx, dup))

	byInv, err := s.store.ListByInvestigator(ctx, inv)
	s.Require().NoError(err)
	s.Len(byInv, 2)
}
