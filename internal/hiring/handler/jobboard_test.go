package handler

import (
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"casebook/internal/hiring/handler/mocks"
	"casebook/internal/hiring/models"
	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
	"casebook/pkg/testutil"
)

type JobBoardHandlerSuite struct {
	suite.Suite
	ctrl   *gomock.Controller
	board  *mocks.MockJobBoardService
	router chi.Router
	caller id.UserID
	postID id.JobPostID
}

func TestJobBoardHandlerSuite(t *testing.T) {
	suite.Run(t, new(JobBoardHandlerSuite))
}

func (s *JobBoardHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.board = mocks.NewMockJobBoardService(s.ctrl)
	s.router = chi.NewRouter()
	NewJobBoard(s.board, slog.New(slog.NewTextHandler(io.Discard, nil)), nil, testutil.NewTokenValidator()).Register(s.router)
	s.caller = id.UserID(uuid.New())
	s.postID = id.JobPostID(uuid.New())
}

func (s *JobBoardHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *JobBoardHandlerSuite) TestCreatePost() {
	details := models.PostDetails{Overview: "Trace a stolen painting", Location: "Rome"}

	s.Run("created", func() {
		s.board.EXPECT().CreatePost(gomock.Any(), s.caller, details).
			Return(&models.JobPost{ID: s.postID, RecruiterID: s.caller, Status: models.PostOpen}, nil)
		req := testutil.AsUser(testutil.NewJSONRequest(s.T(), http.MethodPost, "/job-posts", details), s.caller)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(s.T(), rr, http.StatusCreated)
		testutil.AssertJSONContains(s.T(), rr, "status", "OPEN")
	})

	s.Run("non-recruiter", func() {
		s.board.EXPECT().CreatePost(gomock.Any(), s.caller, details).
			Return(nil, dErrors.New(dErrors.CodeForbidden, "only recruiters can post jobs"))
		req := testutil.AsUser(testutil.NewJSONRequest(s.T(), http.MethodPost, "/job-posts", details), s.caller)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatusAndError(s.T(), rr, http.StatusForbidden, "forbidden")
	})

	s.Run("unauthenticated", func() {
		rr := testutil.DoRequest(s.router, testutil.NewJSONRequest(s.T(), http.MethodPost, "/job-posts", details))
		testutil.AssertStatus(s.T(), rr, http.StatusUnauthorized)
	})
}

func (s *JobBoardHandlerSuite) TestListPosts() {
	s.Run("query becomes a filter", func() {
		recruiter := id.UserID(uuid.New())
		s.board.EXPECT().ListPosts(gomock.Any(), models.PostFilter{
			Status:      models.PostOpen,
			CaseType:    "Fraud",
			Location:    "Rome",
			RecruiterID: &recruiter,
		}).Return([]*models.JobPost{{ID: s.postID}}, nil)
		path := "/job-posts?status=open&case_type=Fraud&location=Rome&recruiter_id=" + recruiter.String()
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewRequest(s.T(), http.MethodGet, path), s.caller))
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		body := testutil.UnmarshalResponse[struct {
			JobPosts []models.JobPost `json:"job_posts"`
		}](s.T(), rr)
		s.Len(body.JobPosts, 1)
	})

	s.Run("unknown status", func() {
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewRequest(s.T(), http.MethodGet, "/job-posts?status=archived"), s.caller))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})

	s.Run("malformed recruiter id", func() {
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewRequest(s.T(), http.MethodGet, "/job-posts?recruiter_id=bob"), s.caller))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})
}

func (s *JobBoardHandlerSuite) TestPostLifecycle() {
	path := "/job-posts/" + s.postID.String()

	s.Run("close", func() {
		s.board.EXPECT().ClosePost(gomock.Any(), s.postID, s.caller).
			Return(&models.JobPost{ID: s.postID, Status: models.PostClosed}, nil)
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewRequest(s.T(), http.MethodPost, path+"/close"), s.caller))
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
		testutil.AssertJSONContains(s.T(), rr, "status", "CLOSED")
	})

	s.Run("delete", func() {
		s.board.EXPECT().DeletePost(gomock.Any(), s.postID, s.caller).Return(nil)
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewRequest(s.T(), http.MethodDelete, path), s.caller))
		testutil.AssertStatus(s.T(), rr, http.StatusNoContent)
	})

	s.Run("missing post", func() {
		s.board.EXPECT().GetPost(gomock.Any(), s.postID).
			Return(nil, dErrors.New(dErrors.CodeNotFound, "job post not found"))
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewRequest(s.T(), http.MethodGet, path), s.caller))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusNotFound, "not_found")
	})

	s.Run("malformed post id", func() {
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewRequest(s.T(), http.MethodGet, "/job-posts/latest"), s.caller))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})
}

func (s *JobBoardHandlerSuite) TestApplications() {
	applicationID := id.ApplicationID(uuid.New())
	postPath := "/job-posts/" + s.postID.String() + "/applications"

	s.Run("apply", func() {
		s.board.EXPECT().Apply(gomock.Any(), s.postID, s.caller, "I speak Italian").
			Return(&models.Application{ID: applicationID, PostID: s.postID, Status: models.ApplicationApplied}, nil)
		req := testutil.AsUser(testutil.NewJSONRequest(s.T(), http.MethodPost, postPath, models.ApplyRequest{CoverLetter: "I speak Italian"}), s.caller)
		rr := testutil.DoRequest(s.router, req)
		testutil.AssertStatus(s.T(), rr, http.StatusCreated)
		testutil.AssertJSONContains(s.T(), rr, "status", "APPLIED")
	})

	s.Run("second application conflicts", func() {
		s.board.EXPECT().Apply(gomock.Any(), s.postID, s.caller, "").
			Return(nil, dErrors.New(dErrors.CodeConflict, "already applied to this job post"))
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewRequest(s.T(), http.MethodPost, postPath), s.caller))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusConflict, "conflict")
	})

	s.Run("non-owner cannot list a post's applications", func() {
		s.board.EXPECT().ApplicationsForPost(gomock.Any(), s.postID, s.caller).
			Return(nil, dErrors.New(dErrors.CodeForbidden, "only the posting recruiter can view applications"))
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewRequest(s.T(), http.MethodGet, postPath), s.caller))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusForbidden, "forbidden")
	})

	s.Run("own applications", func() {
		s.board.EXPECT().ApplicationsByApplicant(gomock.Any(), s.caller).
			Return([]*models.Application{{ID: applicationID}}, nil)
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewRequest(s.T(), http.MethodGet, "/applications"), s.caller))
		testutil.AssertStatus(s.T(), rr, http.StatusOK)
	})

	s.Run("decisions", func() {
		for suffix, status := range map[string]models.ApplicationStatus{
			"/accept":   models.ApplicationAccepted,
			"/reject":   models.ApplicationRejected,
			"/withdraw": models.ApplicationWithdrawn,
		} {
			updated := &models.Application{ID: applicationID, Status: status}
			switch suffix {
			case "/accept":
				s.board.EXPECT().AcceptApplication(gomock.Any(), applicationID, s.caller).Return(updated, nil)
			case "/reject":
				s.board.EXPECT().RejectApplication(gomock.Any(), applicationID, s.caller).Return(updated, nil)
			default:
				s.board.EXPECT().WithdrawApplication(gomock.Any(), applicationID, s.caller).Return(updated, nil)
			}
			path := "/applications/" + applicationID.String() + suffix
			rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewRequest(s.T(), http.MethodPost, path), s.caller))
			testutil.AssertStatus(s.T(), rr, http.StatusOK)
			testutil.AssertJSONContains(s.T(), rr, "status", string(status))
		}
	})

	s.Run("decided application is final", func() {
		s.board.EXPECT().WithdrawApplication(gomock.Any(), applicationID, s.caller).
			Return(nil, dErrors.New(dErrors.CodeInvalidState, "cannot withdraw a accepted application"))
		path := "/applications/" + applicationID.String() + "/withdraw"
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewRequest(s.T(), http.MethodPost, path), s.caller))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusConflict, "invalid_state")
	})

	s.Run("malformed application id", func() {
		rr := testutil.DoRequest(s.router, testutil.AsUser(testutil.NewRequest(s.T(), http.MethodPost, "/applications/x/accept"), s.caller))
		testutil.AssertStatusAndError(s.T(), rr, http.StatusBadRequest, "bad_request")
	})
}
