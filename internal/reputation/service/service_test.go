package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	idmodels "casebook/internal/identity/models"
	"casebook/internal/identity/store/user"
	"casebook/internal/reputation/catalog"
	"casebook/internal/reputation/leaderboard"
	"casebook/internal/reputation/models"
	"casebook/internal/reputation/service/mocks"
	"casebook/internal/reputation/store/award"
	"casebook/internal/reputation/store/badge"
	"casebook/internal/reputation/store/rating"
	"casebook/internal/storage"
	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
	"casebook/pkg/platform/outbox"
	outboxmemory "casebook/pkg/platform/outbox/store/memory"
	"casebook/pkg/platform/sentinel"
	"casebook/pkg/requestcontext"
)

type ServiceSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockParticipations *mocks.MockParticipationCounter
	mockCases          *mocks.MockCaseReader
	mockBoard          *mocks.MockLeaderboard
	users              *user.InMemory
	badges             *badge.InMemory
	awards             *award.InMemory
	ratings            *rating.InMemory
	events             *outboxmemory.Store
	tx                 *storage.MemoryTx
	service            *Service

	ctx       context.Context
	now       time.Time
	admin     *idmodels.User
	org       *idmodels.User
	recruiter *idmodels.User
	solver    *idmodels.User
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockParticipations = mocks.NewMockParticipationCounter(s.ctrl)
	s.mockCases = mocks.NewMockCaseReader(s.ctrl)
	s.mockBoard = mocks.NewMockLeaderboard(s.ctrl)
	s.mockBoard.EXPECT().Record(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	s.users = user.NewInMemory()
	s.badges = badge.NewInMemory()
	s.awards = award.NewInMemory()
	s.ratings = rating.NewInMemory()
	s.events = outboxmemory.New()
	s.tx = storage.NewMemoryTx(s.users, s.badges, s.awards, s.ratings, s.events)
	s.service = New(s.users, s.badges, s.awards, s.ratings, s.mockParticipations, s.mockCases, s.tx,
		WithOutbox(s.events),
		WithLeaderboard(s.mockBoard),
	)

	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
	s.admin = s.newUser("lestrade", idmodels.RoleAdmin)
	s.org = s.newUser("scotland-yard", idmodels.RoleOrganization)
	s.recruiter = s.newUser("mycroft", idmodels.RoleRecruiter)
	s.solver = s.newUser("holmes", idmodels.RoleSolver)

	defs, err := catalog.Builtin()
	s.Require().NoError(err)
	added, err := s.service.SeedCatalog(s.ctx, defs)
	s.Require().NoError(err)
	s.Equal(len(defs), added)
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceSuite) newUser(name string, role idmodels.Role) *idmodels.User {
	u, err := idmodels.NewUser(id.UserID(uuid.New()), name, name+"@example.com", role, s.now)
	s.Require().NoError(err)
	s.Require().NoError(s.users.Create(s.ctx, u))
	return u
}

func (s *ServiceSuite) reload(userID id.UserID) *idmodels.User {
	u, err := s.users.FindByID(s.ctx, userID)
	s.Require().NoError(err)
	return u
}

func (s *ServiceSuite) badgeNamed(name string) *models.Badge {
	b, err := s.badges.FindByName(s.ctx, name)
	s.Require().NoError(err)
	return b
}

func (s *ServiceSuite) TestSeedCatalogIsIdempotent() {
	defs, err := catalog.Builtin()
	s.Require().NoError(err)
	added, err := s.service.SeedCatalog(s.ctx, defs)
	s.Require().NoError(err)
	s.Zero(added)
}

func (s *ServiceSuite) TestOnCaseSolved() {
	s.Run("first solve awards First Case Solver", func() {
		s.Require().NoError(s.service.OnCaseSolved(s.ctx, s.solver.ID))
		u := s.reload(s.solver.ID)
		s.Equal(1, u.SolvedCasesCount)
		s.Equal([]string{"First Case Solver"}, u.Badges)
		s.Len(s.events.EventsOfType(outbox.EventBadgeAwarded), 1)
		s.Len(s.events.EventsOfType(outbox.EventReputationRecomputed), 1)
	})

	s.Run("awards are granted at most once", func() {
		for range 4 {
			s.Require().NoError(s.service.OnCaseSolved(s.ctx, s.solver.ID))
		}
		u := s.reload(s.solver.ID)
		s.Equal(5, u.SolvedCasesCount)
		s.ElementsMatch([]string{"First Case Solver", "Case Solver"}, u.Badges)

		awards, err := s.service.AwardsForUser(s.ctx, s.solver.ID)
		s.Require().NoError(err)
		s.Len(awards, 2)
		for _, a := range awards {
			s.True(a.IsSystem())
		}
	})

	s.Run("non-solvers do not earn badges", func() {
		s.Require().NoError(s.service.OnCaseSolved(s.ctx, s.org.ID))
		u := s.reload(s.org.ID)
		s.Equal(1, u.SolvedCasesCount)
		s.Empty(u.Badges)
	})

	s.Run("unknown user", func() {
		err := s.service.OnCaseSolved(s.ctx, id.UserID(uuid.New()))
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestInactiveBadgeIsNotAutoAwarded() {
	first := s.badgeNamed("First Case Solver")
	_, err := s.service.DeactivateBadge(s.ctx, s.admin.ID, first.ID)
	s.Require().NoError(err)

	s.Require().NoError(s.service.OnCaseSolved(s.ctx, s.solver.ID))
	s.Empty(s.reload(s.solver.ID).Badges)
}

func (s *ServiceSuite) TestOnParticipationChanged() {
	s.mockParticipations.EXPECT().CountActiveByUser(gomock.Any(), s.solver.ID).Return(3, nil)
	s.Require().NoError(s.service.OnParticipationChanged(s.ctx, s.solver.ID))
	u := s.reload(s.solver.ID)
	s.Equal(3, u.ActiveCasesCount)
	s.Equal([]string{"Active Participant"}, u.Badges)

	s.mockParticipations.EXPECT().CountActiveByUser(gomock.Any(), s.solver.ID).Return(0, nil)
	s.Require().NoError(s.service.OnParticipationChanged(s.ctx, s.solver.ID))
	u = s.reload(s.solver.ID)
	s.Zero(u.ActiveCasesCount)
	s.Equal([]string{"Active Participant"}, u.Badges, "earned badges survive a drop below threshold")

	s.mockParticipations.EXPECT().CountActiveByUser(gomock.Any(), s.solver.ID).Return(0, errors.New("db down"))
	err := s.service.OnParticipationChanged(s.ctx, s.solver.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
}

func (s *ServiceSuite) TestRate() {
	s.Run("re-rating revises the existing rating", func() {
		for _, score := range []int{2, 4, 5} {
			_, err := s.service.Rate(s.ctx, s.recruiter.ID, s.solver.ID, score, "", "", nil)
			s.Require().NoError(err)
		}
		u := s.reload(s.solver.ID)
		s.Equal(1, u.TotalRatings)
		s.InDelta(5.0, u.AverageRating, 0.0001)
		s.Len(s.events.EventsOfType(outbox.EventRatingSubmitted), 3)
	})

	s.Run("average is the mean of every rater's score", func() {
		_, err := s.service.Rate(s.ctx, s.org.ID, s.solver.ID, 2, "slow to report", "communication", nil)
		s.Require().NoError(err)
		u := s.reload(s.solver.ID)
		s.Equal(2, u.TotalRatings)
		s.InDelta(3.5, u.AverageRating, 0.0001)

		ratings, err := s.service.RatingsForUser(s.ctx, s.solver.ID)
		s.Require().NoError(err)
		s.Len(ratings, 2)
	})
}

func (s *ServiceSuite) TestRatingStatistics() {
	_, err := s.service.Rate(s.ctx, s.recruiter.ID, s.solver.ID, 5, "", "communication", nil)
	s.Require().NoError(err)
	_, err = s.service.Rate(s.ctx, s.org.ID, s.solver.ID, 3, "", "expertise", nil)
	s.Require().NoError(err)
	watson := s.newUser("watson", idmodels.RoleRecruiter)
	_, err = s.service.Rate(s.ctx, watson.ID, s.solver.ID, 4, "", "communication", nil)
	s.Require().NoError(err)

	st, err := s.service.RatingStatistics(s.ctx, s.solver.ID)
	s.Require().NoError(err)
	s.Equal(3, st.TotalRatings)
	s.InDelta(4.0, st.OverallAverage, 0.0001)
	s.Equal(2, st.HighRatings)
	s.Equal(1, st.PerfectRatings)
	s.InDelta(200.0/3, st.HighRatingPercentage, 0.0001)
	s.Require().Len(st.Categories, 2)
	s.Equal("communication", st.Categories[0].Category)
	s.InDelta(4.5, st.Categories[0].Average, 0.0001)
	s.Equal(2, st.Categories[0].Count)

	s.Run("matches the stored aggregate", func() {
		u := s.reload(s.solver.ID)
		s.Equal(u.TotalRatings, st.TotalRatings)
		s.InDelta(u.AverageRating, st.OverallAverage, 0.0001)
	})

	s.Run("unknown user", func() {
		_, err := s.service.RatingStatistics(s.ctx, id.UserID(uuid.New()))
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestRateRejections() {
	missingCase := id.CaseID(uuid.New())
	s.mockCases.EXPECT().FindByID(gomock.Any(), missingCase).Return(nil, sentinel.ErrNotFound)

	tests := []struct {
		name    string
		raterID id.UserID
		ratedID id.UserID
		score   int
		caseID  *id.CaseID
		code    dErrors.Code
	}{
		{"solvers cannot rate", s.solver.ID, s.recruiter.ID, 4, nil, dErrors.CodeForbidden},
		{"self rating", s.recruiter.ID, s.recruiter.ID, 4, nil, dErrors.CodeSelfRating},
		{"score below range", s.recruiter.ID, s.solver.ID, 0, nil, dErrors.CodeInvalidScore},
		{"score above range", s.recruiter.ID, s.solver.ID, 6, nil, dErrors.CodeInvalidScore},
		{"unknown rated user", s.recruiter.ID, id.UserID(uuid.New()), 4, nil, dErrors.CodeNotFound},
		{"unknown case", s.recruiter.ID, s.solver.ID, 4, &missingCase, dErrors.CodeNotFound},
	}
	for _, tt := range tests {
		s.Run(tt.name, func() {
			_, err := s.service.Rate(s.ctx, tt.raterID, tt.ratedID, tt.score, "", "", tt.caseID)
			s.True(dErrors.HasCode(err, tt.code), "got %v", err)
		})
	}
	s.Zero(s.reload(s.solver.ID).TotalRatings)
}

func (s *ServiceSuite) TestRatingThresholdBadges() {
	raters := make([]*idmodels.User, 0, 5)
	for _, name := range []string{"adler", "hudson", "watson", "gregson", "hopkins"} {
		raters = append(raters, s.newUser(name, idmodels.RoleRecruiter))
	}
	for _, r := range raters {
		_, err := s.service.Rate(s.ctx, r.ID, s.solver.ID, 5, "", "", nil)
		s.Require().NoError(err)
	}
	u := s.reload(s.solver.ID)
	s.Equal(5, u.TotalRatings)
	s.ElementsMatch([]string{"Highly Rated", "Perfect Score"}, u.Badges)
}

func (s *ServiceSuite) TestDeleteRating() {
	r, err := s.service.Rate(s.ctx, s.recruiter.ID, s.solver.ID, 4, "", "", nil)
	s.Require().NoError(err)
	other := s.newUser("moriarty", idmodels.RoleRecruiter)

	err = s.service.DeleteRating(s.ctx, r.ID, other.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))

	s.Require().NoError(s.service.DeleteRating(s.ctx, r.ID, s.recruiter.ID))
	u := s.reload(s.solver.ID)
	s.Zero(u.TotalRatings)
	s.Zero(u.AverageRating)
	s.Len(s.events.EventsOfType(outbox.EventRatingDeleted), 1)

	err = s.service.DeleteRating(s.ctx, r.ID, s.recruiter.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestAwardManually() {
	expert := s.badgeNamed("Case Closed")

	s.Run("recruiter awards a badge", func() {
		a, err := s.service.AwardManually(s.ctx, s.recruiter.ID, s.solver.ID, expert.ID, "cracked the cipher", nil)
		s.Require().NoError(err)
		s.Require().NotNil(a.AwardedBy)
		s.Equal(s.recruiter.ID, *a.AwardedBy)
		s.Equal([]string{"Case Closed"}, s.reload(s.solver.ID).Badges)

		given, err := s.service.AwardsByAwarder(s.ctx, s.recruiter.ID)
		s.Require().NoError(err)
		s.Len(given, 1)
	})

	s.Run("second award of the same badge fails", func() {
		_, err := s.service.AwardManually(s.ctx, s.org.ID, s.solver.ID, expert.ID, "", nil)
		s.True(dErrors.HasCode(err, dErrors.CodeAlreadyAwarded))
	})

	s.Run("rejections", func() {
		tests := []struct {
			name      string
			awarderID id.UserID
			userID    id.UserID
			badgeID   id.BadgeID
			code      dErrors.Code
		}{
			{"solver cannot award", s.solver.ID, s.recruiter.ID, expert.ID, dErrors.CodeForbidden},
			{"self award", s.recruiter.ID, s.recruiter.ID, expert.ID, dErrors.CodeSelfAward},
			{"unknown user", s.recruiter.ID, id.UserID(uuid.New()), expert.ID, dErrors.CodeNotFound},
			{"unknown badge", s.recruiter.ID, s.solver.ID, id.BadgeID(uuid.New()), dErrors.CodeNotFound},
		}
		for _, tt := range tests {
			s.Run(tt.name, func() {
				_, err := s.service.AwardManually(s.ctx, tt.awarderID, tt.userID, tt.badgeID, "", nil)
				s.True(dErrors.HasCode(err, tt.code), "got %v", err)
			})
		}
	})
}

func (s *ServiceSuite) TestRevoke() {
	expert := s.badgeNamed("Case Closed")
	a, err := s.service.AwardManually(s.ctx, s.recruiter.ID, s.solver.ID, expert.ID, "", nil)
	s.Require().NoError(err)

	other := s.newUser("moriarty", idmodels.RoleRecruiter)
	err = s.service.Revoke(s.ctx, a.ID, other.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))

	s.Require().NoError(s.service.Revoke(s.ctx, a.ID, s.recruiter.ID))
	s.Empty(s.reload(s.solver.ID).Badges)
	s.Len(s.events.EventsOfType(outbox.EventBadgeRevoked), 1)

	err = s.service.Revoke(s.ctx, a.ID, s.recruiter.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

	s.Run("organizations revoke system awards", func() {
		s.Require().NoError(s.service.OnCaseSolved(s.ctx, s.solver.ID))
		awards, err := s.service.AwardsForUser(s.ctx, s.solver.ID)
		s.Require().NoError(err)
		s.Require().Len(awards, 1)

		err = s.service.Revoke(s.ctx, awards[0].ID, s.recruiter.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
		s.Require().NoError(s.service.Revoke(s.ctx, awards[0].ID, s.org.ID))
		s.Empty(s.reload(s.solver.ID).Badges)
	})
}

func (s *ServiceSuite) TestAwardCaseBadge() {
	caseID := id.CaseID(uuid.New())
	s.Require().NoError(s.service.AwardCaseBadge(s.ctx, s.solver.ID, caseID, "Case Closed"))
	s.Require().NoError(s.service.AwardCaseBadge(s.ctx, s.solver.ID, caseID, "Case Closed"))

	awards, err := s.service.AwardsForUser(s.ctx, s.solver.ID)
	s.Require().NoError(err)
	s.Require().Len(awards, 1)
	s.Require().NotNil(awards[0].CaseID)
	s.Equal(caseID, *awards[0].CaseID)
	s.Equal([]string{"Case Closed"}, s.reload(s.solver.ID).Badges)

	err = s.service.AwardCaseBadge(s.ctx, s.solver.ID, caseID, "No Such Badge")
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestFailureRollsBackCallerTransaction() {
	err := s.tx.RunInTx(s.ctx, func(txCtx context.Context) error {
		if _, err := s.service.Rate(txCtx, s.recruiter.ID, s.solver.ID, 5, "", "", nil); err != nil {
			return err
		}
		return errors.New("caller failed")
	})
	s.Require().Error(err)

	u := s.reload(s.solver.ID)
	s.Zero(u.TotalRatings)
	ratings, err := s.service.RatingsForUser(s.ctx, s.solver.ID)
	s.Require().NoError(err)
	s.Empty(ratings)
	s.Empty(s.events.Events())
}

func (s *ServiceSuite) TestLeaderboardFailureDoesNotFail() {
	board := mocks.NewMockLeaderboard(s.ctrl)
	board.EXPECT().Record(gomock.Any(), s.solver.ID, 1, 0.0).Return(errors.New("redis down"))
	svc := New(s.users, s.badges, s.awards, s.ratings, s.mockParticipations, s.mockCases, s.tx,
		WithOutbox(s.events),
		WithLeaderboard(board),
	)
	s.Require().NoError(svc.OnCaseSolved(s.ctx, s.solver.ID))
	s.Equal(1, s.reload(s.solver.ID).SolvedCasesCount)
}

func (s *ServiceSuite) TestCatalog() {
	req := models.BadgeRequest{Name: "Cold Case", Description: "Solved a case older than ten years", Type: "achievement"}

	s.Run("only admins manage the catalog", func() {
		_, err := s.service.CreateBadge(s.ctx, s.org.ID, req)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	var created *models.Badge
	s.Run("create", func() {
		var err error
		created, err = s.service.CreateBadge(s.ctx, s.admin.ID, req)
		s.Require().NoError(err)
		s.Equal(models.BadgeTypeAchievement, created.Type)
		s.Equal(models.TierBronze, created.Tier)
		s.True(created.Active)
		s.Len(s.events.EventsOfType(outbox.EventBadgeCatalogChanged), 1)
	})

	s.Run("duplicate name conflicts", func() {
		_, err := s.service.CreateBadge(s.ctx, s.admin.ID, req)
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	})

	s.Run("rename onto an existing name conflicts", func() {
		_, err := s.service.UpdateBadge(s.ctx, s.admin.ID, created.ID, models.BadgeRequest{Name: "Veteran Solver", Type: "ACHIEVEMENT"})
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	})

	s.Run("update", func() {
		updated, err := s.service.UpdateBadge(s.ctx, s.admin.ID, created.ID, models.BadgeRequest{Name: "Cold Case", DisplayName: "Cold Case Cracker", Type: "ACHIEVEMENT", Tier: "gold"})
		s.Require().NoError(err)
		s.Equal("Cold Case Cracker", updated.DisplayName)
		s.Equal(models.TierGold, updated.Tier)
	})

	s.Run("deactivate hides the badge from active listings", func() {
		_, err := s.service.DeactivateBadge(s.ctx, s.admin.ID, created.ID)
		s.Require().NoError(err)
		active, err := s.service.ListBadges(s.ctx, true)
		s.Require().NoError(err)
		for _, b := range active {
			s.NotEqual(created.ID, b.ID)
		}
		all, err := s.service.ListBadges(s.ctx, false)
		s.Require().NoError(err)
		s.Len(all, len(active)+1)
	})

	s.Run("unknown badge", func() {
		_, err := s.service.DeactivateBadge(s.ctx, s.admin.ID, id.BadgeID(uuid.New()))
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestProgressAndEligibility() {
	veteran := s.badgeNamed("Veteran Solver")
	for range 5 {
		s.Require().NoError(s.service.OnCaseSolved(s.ctx, s.solver.ID))
	}

	p, err := s.service.Progress(s.ctx, s.solver.ID, veteran.ID)
	s.Require().NoError(err)
	s.Equal(5, p.Current)
	s.Equal(25, p.Required)
	s.InDelta(20.0, p.Percentage, 0.0001)
	s.False(p.Completed)

	eligible, err := s.service.EligibleBadges(s.ctx, s.solver.ID)
	s.Require().NoError(err)
	s.Empty(eligible, "everything the solver qualifies for was awarded automatically")

	_, err = s.service.Progress(s.ctx, s.solver.ID, id.BadgeID(uuid.New()))
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *ServiceSuite) TestTopSolvers() {
	s.mockBoard.EXPECT().TopSolvers(gomock.Any(), 3).Return([]leaderboard.Entry{{UserID: s.solver.ID, SolvedCases: 7}}, nil)
	top, err := s.service.TopSolvers(s.ctx, 3)
	s.Require().NoError(err)
	s.Len(top, 1)

	_, err = s.service.TopSolvers(s.ctx, 0)
	s.True(dErrors.HasCode(err, dErrors.CodeValidation))
}
