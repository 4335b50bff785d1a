//go:build integration

package rating_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	idmodels "casebook/internal/identity/models"
	"casebook/internal/identity/store/user"
	"casebook/internal/reputation/models"
	"casebook/internal/reputation/store/rating"
	id "casebook/pkg/domain"
	"casebook/pkg/platform/sentinel"
	"casebook/pkg/testutil/containers"
)

type PostgresStoreSuite struct {
	suite.Suite
	postgres *containers.PostgresContainer
	ratings  *rating.PostgresStore
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
	s.ratings = rating.NewPostgres(s.postgres.DB)
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

func (s *PostgresStoreSuite) TestRatingUpsertAndAggregate() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	recruiter, solver := s.newUser(idmodels.RoleRecruiter), s.newUser(idmodels.RoleSolver)

	for i, score := range []int{5, 5, 5} {
		r, err := models.NewRating(id.RatingID(uuid.New()), recruiter, solver, score, "", "", nil, now.Add(time.Duration(i)*time.Second))
		s.Require().NoError(err)
		_, created, err := s.ratings.Upsert(ctx, r)
		s.Require().NoError(err)
		s.Equal(i == 0, created)
	}

	agg, err := s.ratings.Aggregate(ctx, solver)
	s.Require().NoError(err)
	s.Equal(1, agg.Count)
	s.InDelta(5.0, agg.Average, 0.0001)

	none, err := s.ratings.Aggregate(ctx, recruiter)
	s.Require().NoError(err)
	s.Equal(models.Aggregate{}, none)
}

func (s *PostgresStoreSuite) TestCategoryTallies() {
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)
	solver := s.newUser(idmodels.RoleSolver)
	for _, r := range []struct {
		score    int
		category string
	}{{5, "communication"}, {4, "communication"}, {2, "expertise"}, {5, ""}} {
		rating, err := models.NewRating(id.RatingID(uuid.New()), s.newUser(idmodels.RoleRecruiter), solver, r.score, "", r.category, nil, now)
		s.Require().NoError(err)
		_, _, err = s.ratings.Upsert(ctx, rating)
		s.Require().NoError(err)
	}

	tallies, err := s.ratings.CategoryTallies(ctx, solver)
	s.Require().NoError(err)
	s.Equal([]models.CategoryTally{
		{Category: "", Count: 1, Sum: 5, High: 1, Perfect: 1},
		{Category: "communication", Count: 2, Sum: 9, High: 2, Perfect: 1},
		{Category: "expertise", Count: 1, Sum: 2},
	}, tallies)

	st := models.BuildStatistics(solver, tallies)
	s.Equal(4, st.TotalRatings)
	s.InDelta(4.0, st.OverallAverage, 0.0001)

	none, err := s.ratings.CategoryTallies(ctx, s.newUser(idmodels.RoleSolver))
	s.Require().NoError(err)
	s.Empty(none)
}

func (s *PostgresStoreSuite) TestDelete() {
	ctx := context.Background()
	recruiter, solver := s.newUser(idmodels.RoleRecruiter), s.newUser(idmodels.RoleSolver)
	r, err := models.NewRating(id.RatingID(uuid.New()), recruiter, solver, 3, "", "", nil, time.Now().UTC())
	s.Require().NoError(err)
	_, _, err = s.ratings.Upsert(ctx, r)
	s.Require().NoError(err)

	s.Require().NoError(s.ratings.Delete(ctx, r.ID))
	s.ErrorIs(s.ratings.Delete(ctx, r.ID), sentinel.ErrNotFound)
}
