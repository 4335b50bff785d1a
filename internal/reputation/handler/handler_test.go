package handler

//go:generate mockgen -source=handler.go -destination=mocks/mocks.go -package=mocks Service

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"casebook/internal/reputation/handler/mocks"
	"casebook/internal/reputation/leaderboard"
	"casebook/internal/reputation/models"
	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
	"casebook/pkg/testutil"
)

type HandlerSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	service *mocks.MockService
	router  chi.Router
	caller  id.UserID
	target  id.UserID
	badgeID id.BadgeID
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(HandlerSuite))
}

func (s *HandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.service = mocks.NewMockService(s.ctrl)
	s.router = chi.NewRouter()
	New(s.service, slog.New(slog.NewTextHandler(io.Discard, nil)), nil, testutil.NewTokenValidator()).Register(s.router)
	s.caller = id.UserID(uuid.New())
	s.target = id.UserID(uuid.New())
	s.badgeID = id.BadgeID(uuid.New())
}

func (s *HandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *HandlerSuite) TestListBadges() {
	s.Run("active only by default", func() {
		s.service.EXPECT().ListBadges(gomock.Any(), true).Return([]*models.Badge{{ID: s.badgeID, Name: "Veteran"}}, nil)
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewRequest(s.T(), http.MethodGet, "/badges"), s.caller))
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		body := testutil.UnmarshalResponse[struct {
			Badges []models.Badge `json:"badges"`
		}](s.T(), rr)
		s.Require().Len(body.Badges, 1)
		s.Equal("Veteran", body.Badges[0].Name)
	})

	s.Run("all includes deactivated", func() {
		s.service.EXPECT().ListBadges(gomock.Any(), false).Return([]*models.Badge{}, nil)
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewRequest(s.T(), http.MethodGet, "/badges?all=true"), s.caller))
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
	})

	s.Run("internal failure", func() {
		s.service.EXPECT().ListBadges(gomock.Any(), true).Return(nil, dErrors.Wrap(errors.New("db down"), dErrors.CodeInternal, "failed to list badges"))
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewRequest(s.T(), http.MethodGet, "/badges"), s.caller))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusInternalServerError, "internal_error")
	})
}

func (s *HandlerSuite) TestCreateBadge() {
	body := models.BadgeRequest{Name: "Cold Case", Type: models.BadgeTypeAchievement}

	s.Run("admin creates", func() {
		s.service.EXPECT().CreateBadge(gomock.Any(), s.caller, body).Return(&models.Badge{ID: s.badgeID, Name: "Cold Case", Active: true}, nil)
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewJSONRequest(s.T(), http.MethodPost, "/badges", body), s.caller))
		testutil.AssertStatus(s.T(), rr, http.StatusCreated)
		testutil.AssertJSONContains(s.T(), rr, "name", "Cold Case")
	})

	s.Run("non-admin forbidden", func() {
		s.service.EXPECT().CreateBadge(gomock.Any(), s.caller, body).Return(nil, dErrors.New(dErrors.CodeForbidden, "only administrators can manage the badge catalog"))
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewJSONRequest(s.T(), http.MethodPost, "/badges", body), s.caller))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusForbidden, "forbidden")
	})

	s.Run("name clash", func() {
		s.service.EXPECT().CreateBadge(gomock.Any(), s.caller, body).Return(nil, dErrors.New(dErrors.CodeConflict, "a badge with this name already exists"))
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewJSONRequest(s.T(), http.MethodPost, "/badges", body), s.caller))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusConflict, "conflict")
	})
}

func (s *HandlerSuite) TestBadgeByID() {
	s.Run("get", func() {
		s.service.EXPECT().GetBadge(gomock.Any(), s.badgeID).Return(&models.Badge{ID: s.badgeID, Name: "Veteran"}, nil)
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewRequest(s.T(), http.MethodGet, "/badges/"+s.badgeID.String()), s.caller))
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
	})

	s.Run("malformed id", func() {
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewRequest(s.T(), http.MethodGet, "/badges/gold-star"), s.caller))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})

	s.Run("deactivate", func() {
		s.service.EXPECT().DeactivateBadge(gomock.Any(), s.caller, s.badgeID).Return(&models.Badge{ID: s.badgeID, Active: false}, nil)
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewRequest(s.T(), http.MethodPost, "/badges/"+s.badgeID.String()+"/deactivate"), s.caller))
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		testutil.AssertJSONContains(s.T(), rr, "active", false)
	})
}

func (s *HandlerSuite) TestAward() {
	body := models.AwardRequest{UserID: s.target.String(), BadgeID: s.badgeID.String(), Reason: "cracked the cipher"}

	s.Run("awarded", func() {
		s.service.EXPECT().AwardManually(gomock.Any(), s.caller, s.target, s.badgeID, "cracked the cipher", nil).
			Return(&models.BadgeAward{ID: id.BadgeAwardID(uuid.New()), UserID: s.target, BadgeName: "Case Closed"}, nil)
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewJSONRequest(s.T(), http.MethodPost, "/badge-awards", body), s.caller))
		testutil.AssertStatus(s.T(), rr, http.StatusCreated)
		testutil.AssertJSONContains(s.T(), rr, "badge_name", "Case Closed")
	})

	s.Run("already awarded", func() {
		s.service.EXPECT().AwardManually(gomock.Any(), s.caller, s.target, s.badgeID, gomock.Any(), nil).
			Return(nil, dErrors.New(dErrors.CodeAlreadyAwarded, "user already has this badge"))
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewJSONRequest(s.T(), http.MethodPost, "/badge-awards", body), s.caller))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusConflict, "already_awarded")
	})

	s.Run("self award", func() {
		self := body
		self.UserID = s.caller.String()
		s.service.EXPECT().AwardManually(gomock.Any(), s.caller, s.caller, s.badgeID, gomock.Any(), nil).
			Return(nil, dErrors.New(dErrors.CodeSelfAward, "users cannot award badges to themselves"))
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewJSONRequest(s.T(), http.MethodPost, "/badge-awards", self), s.caller))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusForbidden, "self_award")
	})

	s.Run("malformed case id", func() {
		bad := body
		bad.CaseID = "baker-street"
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewJSONRequest(s.T(), http.MethodPost, "/badge-awards", bad), s.caller))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "validation_error")
	})
}

func (s *HandlerSuite) TestRevoke() {
	awardID := id.BadgeAwardID(uuid.New())

	s.Run("revoked", func() {
		s.service.EXPECT().Revoke(gomock.Any(), awardID, s.caller).Return(nil)
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewRequest(s.T(), http.MethodDelete, "/badge-awards/"+awardID.String()), s.caller))
		testutil.AssertStatus(s.T(), rr, http.StatusNoContent)
	})

	s.Run("not the awarder", func() {
		s.service.EXPECT().Revoke(gomock.Any(), awardID, s.caller).Return(dErrors.New(dErrors.CodeForbidden, "only the original awarder or an organization can revoke this badge"))
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewRequest(s.T(), http.MethodDelete, "/badge-awards/"+awardID.String()), s.caller))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusForbidden, "forbidden")
	})
}

func (s *HandlerSuite) TestRate() {
	path := "/users/" + s.target.String() + "/ratings"

	s.Run("rated", func() {
		s.service.EXPECT().Rate(gomock.Any(), s.caller, s.target, 5, "thorough", "", nil).
			Return(&models.Rating{ID: id.RatingID(uuid.New()), RaterID: s.caller, RatedUserID: s.target, Score: 5}, nil)
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewJSONRequest(s.T(), http.MethodPost, path, models.RateRequest{Score: 5, Comment: "thorough"}), s.caller))
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		testutil.AssertJSONContains(s.T(), rr, "score", float64(5))
	})

	s.Run("score out of range", func() {
		s.service.EXPECT().Rate(gomock.Any(), s.caller, s.target, 9, "", "", nil).
			Return(nil, dErrors.New(dErrors.CodeInvalidScore, "score must be between 1 and 5"))
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewJSONRequest(s.T(), http.MethodPost, path, models.RateRequest{Score: 9}), s.caller))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "invalid_score")
	})

	s.Run("self rating", func() {
		self := "/users/" + s.caller.String() + "/ratings"
		s.service.EXPECT().Rate(gomock.Any(), s.caller, s.caller, 4, "", "", nil).
			Return(nil, dErrors.New(dErrors.CodeSelfRating, "users cannot rate themselves"))
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewJSONRequest(s.T(), http.MethodPost, self, models.RateRequest{Score: 4}), s.caller))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusForbidden, "self_rating")
	})

	s.Run("list", func() {
		s.service.EXPECT().RatingsForUser(gomock.Any(), s.target).Return([]*models.Rating{{Score: 5}, {Score: 3}}, nil)
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewRequest(s.T(), http.MethodGet, path), s.caller))
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		body := testutil.UnmarshalResponse[struct {
			Ratings []models.Rating `json:"ratings"`
		}](s.T(), rr)
		s.Len(body.Ratings, 2)
	})
}

func (s *HandlerSuite) TestDeleteRating() {
	ratingID := id.RatingID(uuid.New())
	s.service.EXPECT().DeleteRating(gomock.Any(), ratingID, s.caller).Return(nil)
	rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewRequest(s.T(), http.MethodDelete, "/ratings/"+ratingID.String()), s.caller))
	testutil.AssertStatus(s.T(), rr, http.StatusNoContent)
}

func (s *HandlerSuite) TestProgress() {
	s.service.EXPECT().Progress(gomock.Any(), s.target, s.badgeID).
		Return(models.Progress{Current: 5, Required: 25, Percentage: 20}, nil)
	rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewRequest(s.T(), http.MethodGet, "/users/"+s.target.String()+"/badge-progress/"+s.badgeID.String()), s.caller))
	testutil.AssertStatus(s.T(), rr, http.StatusOK)
	testutil.AssertJSONContains(s.T(), rr, "percentage", float64(20))
}

func (s *HandlerSuite) TestRatingStats() {
	path := "/users/" + s.target.String() + "/rating-stats"

	s.Run("summary", func() {
		s.service.EXPECT().RatingStatistics(gomock.Any(), s.target).Return(models.Statistics{
			UserID:         s.target,
			OverallAverage: 4.5,
			TotalRatings:   2,
			Categories:     []models.CategoryStatistics{{Category: "communication", Average: 4.5, Count: 2}},
			HighRatings:    2,
			PerfectRatings: 1,
		}, nil)
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewRequest(s.T(), http.MethodGet, path), s.caller))
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		body := testutil.UnmarshalResponse[models.Statistics](s.T(), rr)
		s.Equal(2, body.TotalRatings)
		s.Equal(1, body.PerfectRatings)
		s.Require().Len(body.Categories, 1)
		s.Equal("communication", body.Categories[0].Category)
	})

	s.Run("unknown user", func() {
		s.service.EXPECT().RatingStatistics(gomock.Any(), s.target).Return(models.Statistics{}, dErrors.New(dErrors.CodeNotFound, "user not found"))
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewRequest(s.T(), http.MethodGet, path), s.caller))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")
	})

	s.Run("malformed user id", func() {
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewRequest(s.T(), http.MethodGet, "/users/holmes/rating-stats"), s.caller))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})
}

func (s *HandlerSuite) TestLeaderboard() {
	s.Run("default size", func() {
		s.service.EXPECT().TopSolvers(gomock.Any(), 10).Return([]leaderboard.Entry{{UserID: s.target, SolvedCases: 12}}, nil)
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewRequest(s.T(), http.MethodGet, "/leaderboard"), s.caller))
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
	})

	s.Run("malformed limit", func() {
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewRequest(s.T(), http.MethodGet, "/leaderboard?limit=many"), s.caller))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})

	s.Run("unauthenticated", func() {
		rr := testutil.DoRequest(s.router, testutil.NewRequest(s.T(), http.MethodGet, "/leaderboard"))
		testutil.AssertStatus(s.T(), rr, http.StatusUnauthorized)
	})
}
