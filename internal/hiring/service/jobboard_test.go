package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"casebook/internal/hiring/models"
	"casebook/internal/hiring/service/mocks"
	"casebook/internal/hiring/store/application"
	"casebook/internal/hiring/store/jobpost"
	idmodels "casebook/internal/identity/models"
	"casebook/internal/storage"
	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
	"casebook/pkg/platform/outbox"
	outboxmemory "casebook/pkg/platform/outbox/store/memory"
	"casebook/pkg/requestcontext"
)

type JobBoardSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockUsers    *mocks.MockUserStore
	posts        *jobpost.InMemory
	applications *application.InMemory
	events       *outboxmemory.Store
	board        *JobBoard

	ctx       context.Context
	now       time.Time
	recruiter *idmodels.User
	rival     *idmodels.User
	solver    *idmodels.User
	admin     *idmodels.User
}

func TestJobBoardSuite(t *testing.T) {
	suite.Run(t, new(JobBoardSuite))
}

func (s *JobBoardSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockUsers = mocks.NewMockUserStore(s.ctrl)
	s.posts = jobpost.NewInMemory()
	s.applications = application.NewInMemory()
	s.events = outboxmemory.New()
	tx := storage.NewMemoryTx(s.posts, s.applications, s.events)
	s.board = NewJobBoard(s.posts, s.applications, s.mockUsers, tx, WithOutbox(s.events))

	s.now = time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
	s.recruiter = s.user(idmodels.RoleRecruiter)
	s.rival = s.user(idmodels.RoleRecruiter)
	s.solver = s.user(idmodels.RoleSolver)
	s.admin = s.user(idmodels.RoleAdmin)
}

func (s *JobBoardSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *JobBoardSuite) user(role idmodels.Role) *idmodels.User {
	u := &idmodels.User{ID: id.UserID(uuid.New()), Role: role}
	s.mockUsers.EXPECT().FindByID(gomock.Any(), u.ID).Return(u, nil).AnyTimes()
	return u
}

func (s *JobBoardSuite) post(caseType, location string) *models.JobPost {
	p, err := s.board.CreatePost(s.ctx, s.recruiter.ID, models.PostDetails{
		Overview: "Background checks for a merger",
		CaseType: caseType,
		Location: location,
	})
	s.Require().NoError(err)
	return p
}

func (s *JobBoardSuite) TestCreatePost() {
	s.Run("recruiter posts", func() {
		p := s.post("Fraud", "London")
		s.Equal(models.PostOpen, p.Status)
		s.Equal(s.now, p.CreatedAt)
		s.Len(s.events.EventsOfType(outbox.EventJobPostChanged), 1)
	})

	s.Run("solver cannot post", func() {
		_, err := s.board.CreatePost(s.ctx, s.solver.ID, models.PostDetails{Overview: "x"})
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("overview is required", func() {
		_, err := s.board.CreatePost(s.ctx, s.recruiter.ID, models.PostDetails{})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *JobBoardSuite) TestListPostsFilters() {
	fraud := s.post("Fraud", "London")
	s.post("Homicide", "Paris")
	_, err := s.board.ClosePost(s.ctx, fraud.ID, s.recruiter.ID)
	s.Require().NoError(err)

	all, err := s.board.ListPosts(s.ctx, models.PostFilter{})
	s.Require().NoError(err)
	s.Len(all, 2)

	open, err := s.board.ListPosts(s.ctx, models.PostFilter{Status: models.PostOpen})
	s.Require().NoError(err)
	s.Require().Len(open, 1)
	s.Equal("Homicide", open[0].CaseType)

	london, err := s.board.ListPosts(s.ctx, models.PostFilter{Location: "london"})
	s.Require().NoError(err)
	s.Require().Len(london, 1)
	s.Equal(fraud.ID, london[0].ID)

	mine, err := s.board.ListPosts(s.ctx, models.PostFilter{RecruiterID: &s.rival.ID})
	s.Require().NoError(err)
	s.Empty(mine)
}

func (s *JobBoardSuite) TestClosePost() {
	p := s.post("Fraud", "")

	_, err := s.board.ClosePost(s.ctx, p.ID, s.rival.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeForbidden))

	closed, err := s.board.ClosePost(s.ctx, p.ID, s.admin.ID)
	s.Require().NoError(err)
	s.Equal(models.PostClosed, closed.Status)

	_, err = s.board.ClosePost(s.ctx, p.ID, s.recruiter.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))

	_, err = s.board.ClosePost(s.ctx, id.JobPostID(uuid.New()), s.recruiter.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
}

func (s *JobBoardSuite) TestApply() {
	p := s.post("Fraud", "")

	s.Run("solver applies once", func() {
		a, err := s.board.Apply(s.ctx, p.ID, s.solver.ID, "I audit ledgers")
		s.Require().NoError(err)
		s.Equal(models.ApplicationApplied, a.Status)
		s.Len(s.events.EventsOfType(outbox.EventApplicationChanged), 1)

		_, err = s.board.Apply(s.ctx, p.ID, s.solver.ID, "again")
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	})

	s.Run("recruiters cannot apply", func() {
		_, err := s.board.Apply(s.ctx, p.ID, s.rival.ID, "")
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("closed posts take no applications", func() {
		closed := s.post("Theft", "")
		_, err := s.board.ClosePost(s.ctx, closed.ID, s.recruiter.ID)
		s.Require().NoError(err)
		_, err = s.board.Apply(s.ctx, closed.ID, s.solver.ID, "")
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
	})

	s.Run("unknown post", func() {
		_, err := s.board.Apply(s.ctx, id.JobPostID(uuid.New()), s.solver.ID, "")
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *JobBoardSuite) TestApplicationDecisions() {
	p := s.post("Fraud", "")
	a, err := s.board.Apply(s.ctx, p.ID, s.solver.ID, "")
	s.Require().NoError(err)

	s.Run("only the post recruiter sees applications", func() {
		list, err := s.board.ApplicationsForPost(s.ctx, p.ID, s.recruiter.ID)
		s.Require().NoError(err)
		s.Len(list, 1)

		_, err = s.board.ApplicationsForPost(s.ctx, p.ID, s.rival.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("only the post recruiter decides", func() {
		_, err := s.board.AcceptApplication(s.ctx, a.ID, s.rival.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
		_, err = s.board.AcceptApplication(s.ctx, a.ID, s.solver.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("only the applicant withdraws", func() {
		_, err := s.board.WithdrawApplication(s.ctx, a.ID, s.recruiter.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("accepted applications are final", func() {
		accepted, err := s.board.AcceptApplication(s.ctx, a.ID, s.recruiter.ID)
		s.Require().NoError(err)
		s.Equal(models.ApplicationAccepted, accepted.Status)

		_, err = s.board.WithdrawApplication(s.ctx, a.ID, s.solver.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
		_, err = s.board.RejectApplication(s.ctx, a.ID, s.recruiter.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
	})

	s.Run("applicant lists own applications", func() {
		other := s.post("Theft", "")
		b, err := s.board.Apply(s.ctx, other.ID, s.solver.ID, "")
		s.Require().NoError(err)
		withdrawn, err := s.board.WithdrawApplication(s.ctx, b.ID, s.solver.ID)
		s.Require().NoError(err)
		s.Equal(models.ApplicationWithdrawn, withdrawn.Status)

		mine, err := s.board.ApplicationsByApplicant(s.ctx, s.solver.ID)
		s.Require().NoError(err)
		s.Len(mine, 2)
	})

	s.Run("unknown application", func() {
		_, err := s.board.RejectApplication(s.ctx, id.ApplicationID(uuid.New()), s.recruiter.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *JobBoardSuite) TestDeletePostRemovesApplications() {
	p := s.post("Fraud", "")
	_, err := s.board.Apply(s.ctx, p.ID, s.solver.ID, "")
	s.Require().NoError(err)

	s.True(dErrors.HasCode(s.board.DeletePost(s.ctx, p.ID, s.rival.ID), dErrors.CodeForbidden))
	s.Require().NoError(s.board.DeletePost(s.ctx, p.ID, s.recruiter.ID))

	_, err = s.board.GetPost(s.ctx, p.ID)
	s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	mine, err := s.board.ApplicationsByApplicant(s.ctx, s.solver.ID)
	s.Require().NoError(err)
	s.Empty(mine)
}

func (s *JobBoardSuite) TestFailedApplyLeavesNoTrace() {
	posts := mocks.NewMockPostStore(s.ctrl)
	applications := mocks.NewMockApplicationStore(s.ctrl)
	board := NewJobBoard(posts, applications, s.mockUsers, storage.NewMemoryTx(), WithOutbox(s.events))

	open := &models.JobPost{ID: id.JobPostID(uuid.New()), RecruiterID: s.recruiter.ID, Status: models.PostOpen}
	posts.EXPECT().FindByID(gomock.Any(), open.ID).Return(open, nil)
	applications.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err := board.Apply(s.ctx, open.ID, s.solver.ID, "")
	s.True(dErrors.HasCode(err, dErrors.CodeInternal))
	s.Empty(s.events.EventsOfType(outbox.EventApplicationChanged))
}
