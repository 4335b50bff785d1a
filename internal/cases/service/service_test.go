package service

//go:generate mockgen -source=service.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"casebook/internal/cases/models"
	"casebook/internal/cases/service/mocks"
	"casebook/internal/cases/store/crimecase"
	idmodels "casebook/internal/identity/models"
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
	ctrl              *gomock.Controller
	mockUsers         *mocks.MockUserStore
	mockParticipation *mocks.MockParticipationLedger
	mockReputation    *mocks.MockReputationEngine
	cases             *crimecase.InMemory
	events            *outboxmemory.Store
	service           *Service

	ctx    context.Context
	now    time.Time
	org    *idmodels.User
	solver *idmodels.User
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockUsers = mocks.NewMockUserStore(s.ctrl)
	s.mockParticipation = mocks.NewMockParticipationLedger(s.ctrl)
	s.mockReputation = mocks.NewMockReputationEngine(s.ctrl)
	s.cases = crimecase.NewInMemory()
	s.events = outboxmemory.New()
	tx := storage.NewMemoryTx(s.cases, s.events)
	s.service = New(s.cases, s.mockUsers, s.mockParticipation, s.mockReputation, tx, WithOutbox(s.events))

	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithTime(context.Background(), s.now)
	s.org = &idmodels.User{ID: id.UserID(uuid.New()), Username: "scotland-yard", Role: idmodels.RoleOrganization, OrganizationVerified: true}
	s.solver = &idmodels.User{ID: id.UserID(uuid.New()), Username: "holmes", Role: idmodels.RoleSolver}
}

func (s *ServiceSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ServiceSuite) expectUser(u *idmodels.User) {
	s.mockUsers.EXPECT().FindByID(gomock.Any(), u.ID).Return(u, nil).AnyTimes()
}

// seedCase stores a case directly, bypassing Create.
func (s *ServiceSuite) seedCase(mutate ...func(*models.CrimeCase)) *models.CrimeCase {
	c, err := models.NewCase(id.CaseID(uuid.New()), s.org.ID, models.NewCaseRequest{Title: "The Hound"}, s.now)
	s.Require().NoError(err)
	for _, m := range mutate {
		m(c)
	}
	s.Require().NoError(s.cases.Create(context.Background(), c))
	return c
}

func (s *ServiceSuite) TestCreate() {
	s.Run("verified organization posts an OPEN case and is enrolled as owner", func() {
		s.expectUser(s.org)
		s.mockParticipation.EXPECT().EnrollOwner(gomock.Any(), s.org.ID, gomock.Any()).Return(nil)

		c, err := s.service.Create(s.ctx, s.org.ID, models.NewCaseRequest{Title: "A Study in Scarlet", CaseType: "murder"})
		s.Require().NoError(err)
		s.Equal(models.StatusOpen, c.Status)
		s.Equal(models.CaseTypeMurder, c.CaseType)
		s.Equal(models.PrivacyPublic, c.Privacy)
		s.Equal(s.now, c.PostedAt)
		s.Equal(s.org.ID, c.PostedBy)

		stored, err := s.cases.FindByID(context.Background(), c.ID)
		s.Require().NoError(err)
		s.Equal(c.ID, stored.ID)
		s.Len(s.events.EventsOfType(outbox.EventCaseCreated), 1)
	})

	s.Run("unverified organization is forbidden", func() {
		unverified := &idmodels.User{ID: id.UserID(uuid.New()), Role: idmodels.RoleOrganization}
		s.expectUser(unverified)

		_, err := s.service.Create(s.ctx, unverified.ID, models.NewCaseRequest{Title: "x"})
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("solver is forbidden", func() {
		s.expectUser(s.solver)

		_, err := s.service.Create(s.ctx, s.solver.ID, models.NewCaseRequest{Title: "x"})
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("enrollment failure rolls back the case", func() {
		s.expectUser(s.org)
		s.mockParticipation.EXPECT().EnrollOwner(gomock.Any(), s.org.ID, gomock.Any()).
			Return(dErrors.New(dErrors.CodeInternal, "ledger down"))
		before, err := s.cases.List(context.Background(), models.Filter{})
		s.Require().NoError(err)

		_, err = s.service.Create(s.ctx, s.org.ID, models.NewCaseRequest{Title: "Lost"})
		s.Require().Error(err)

		after, err := s.cases.List(context.Background(), models.Filter{})
		s.Require().NoError(err)
		s.Len(after, len(before))
	})

	s.Run("missing title is a validation error", func() {
		s.expectUser(s.org)

		_, err := s.service.Create(s.ctx, s.org.ID, models.NewCaseRequest{Title: "  "})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *ServiceSuite) TestSolve() {
	s.Run("active solver solves and reputation is notified", func() {
		c := s.seedCase()
		s.expectUser(s.solver)
		s.mockParticipation.EXPECT().IsActiveParticipant(gomock.Any(), s.solver.ID, c.ID).Return(true, nil)
		s.mockReputation.EXPECT().OnCaseSolved(gomock.Any(), s.solver.ID).Return(nil)

		solved, err := s.service.Solve(s.ctx, c.ID, s.solver.ID, "killer was the butler", "motive: inheritance")
		s.Require().NoError(err)
		s.Equal(models.StatusSolved, solved.Status)
		s.Equal(s.solver.ID, *solved.SolvedBy)
		s.Equal("killer was the butler", solved.Solution)
		s.Equal(s.now, *solved.SolvedAt)
		s.Len(s.events.EventsOfType(outbox.EventCaseSolved), 1)
	})

	s.Run("missing case is not found", func() {
		_, err := s.service.Solve(s.ctx, id.CaseID(uuid.New()), s.solver.ID, "x", "")
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	s.Run("solver without active participation is forbidden", func() {
		c := s.seedCase()
		s.expectUser(s.solver)
		s.mockParticipation.EXPECT().IsActiveParticipant(gomock.Any(), s.solver.ID, c.ID).Return(false, nil)

		_, err := s.service.Solve(s.ctx, c.ID, s.solver.ID, "x", "")
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("non-solver role is forbidden", func() {
		c := s.seedCase()
		s.expectUser(s.org)

		_, err := s.service.Solve(s.ctx, c.ID, s.org.ID, "x", "")
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("closed case cannot be solved", func() {
		c := s.seedCase(func(c *models.CrimeCase) { c.ApplyClose(s.now) })
		s.expectUser(s.solver)
		s.mockParticipation.EXPECT().IsActiveParticipant(gomock.Any(), s.solver.ID, c.ID).Return(true, nil)

		_, err := s.service.Solve(s.ctx, c.ID, s.solver.ID, "x", "")
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
	})

	s.Run("second solve fails with invalid state", func() {
		c := s.seedCase()
		s.expectUser(s.solver)
		s.mockParticipation.EXPECT().IsActiveParticipant(gomock.Any(), s.solver.ID, c.ID).Return(true, nil).Times(2)
		s.mockReputation.EXPECT().OnCaseSolved(gomock.Any(), s.solver.ID).Return(nil).Times(1)

		_, err := s.service.Solve(s.ctx, c.ID, s.solver.ID, "first", "")
		s.Require().NoError(err)
		_, err = s.service.Solve(s.ctx, c.ID, s.solver.ID, "second", "")
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))

		stored, err := s.cases.FindByID(context.Background(), c.ID)
		s.Require().NoError(err)
		s.Equal("first", stored.Solution)
	})

	s.Run("reputation failure rolls back the solve", func() {
		c := s.seedCase()
		s.expectUser(s.solver)
		s.mockParticipation.EXPECT().IsActiveParticipant(gomock.Any(), s.solver.ID, c.ID).Return(true, nil)
		s.mockReputation.EXPECT().OnCaseSolved(gomock.Any(), s.solver.ID).Return(errors.New("user row locked"))

		_, err := s.service.Solve(s.ctx, c.ID, s.solver.ID, "x", "")
		s.Require().Error(err)

		stored, err := s.cases.FindByID(context.Background(), c.ID)
		s.Require().NoError(err)
		s.Equal(models.StatusOpen, stored.Status)
		s.Nil(stored.SolvedBy)
	})
}

func (s *ServiceSuite) TestConcurrentSolve() {
	c := s.seedCase()
	s.expectUser(s.solver)
	s.mockParticipation.EXPECT().IsActiveParticipant(gomock.Any(), s.solver.ID, c.ID).Return(true, nil).AnyTimes()
	s.mockReputation.EXPECT().OnCaseSolved(gomock.Any(), s.solver.ID).Return(nil).Times(1)

	const workers = 8
	var (
		wg           sync.WaitGroup
		successes    atomic.Int32
		invalidState atomic.Int32
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.service.Solve(s.ctx, c.ID, s.solver.ID, "race", "")
			switch {
			case err == nil:
				successes.Add(1)
			case dErrors.HasCode(err, dErrors.CodeInvalidState):
				invalidState.Add(1)
			}
		}()
	}
	wg.Wait()

	s.Equal(int32(1), successes.Load())
	s.Equal(int32(workers-1), invalidState.Load())
}

func (s *ServiceSuite) TestLifecycleTransitions() {
	s.Run("start then pause returns to OPEN", func() {
		c := s.seedCase()

		started, err := s.service.Start(s.ctx, c.ID)
		s.Require().NoError(err)
		s.Equal(models.StatusInProgress, started.Status)

		paused, err := s.service.Pause(s.ctx, c.ID)
		s.Require().NoError(err)
		s.Equal(models.StatusOpen, paused.Status)
	})

	s.Run("pause requires IN_PROGRESS", func() {
		c := s.seedCase()
		_, err := s.service.Pause(s.ctx, c.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
	})

	s.Run("close stamps closedAt and reopen clears it", func() {
		c := s.seedCase()

		closed, err := s.service.Close(s.ctx, c.ID)
		s.Require().NoError(err)
		s.Equal(models.StatusClosed, closed.Status)
		s.Require().NotNil(closed.ClosedAt)

		reopened, err := s.service.Reopen(s.ctx, c.ID)
		s.Require().NoError(err)
		s.Equal(models.StatusOpen, reopened.Status)
		s.Nil(reopened.ClosedAt)
	})

	s.Run("solved case cannot be closed or reopened", func() {
		c := s.seedCase(func(c *models.CrimeCase) { c.ApplySolution(s.solver.ID, "x", "", s.now) })

		_, err := s.service.Close(s.ctx, c.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
		_, err = s.service.Reopen(s.ctx, c.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
	})

	s.Run("unknown case is not found", func() {
		_, err := s.service.Close(s.ctx, id.CaseID(uuid.New()))
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestAssignment() {
	s.Run("primary solver is also assigned", func() {
		c := s.seedCase()
		s.expectUser(s.solver)

		updated, err := s.service.AssignPrimarySolver(s.ctx, c.ID, s.solver.ID)
		s.Require().NoError(err)
		s.Equal(s.solver.ID, *updated.PrimarySolver)
		s.Equal([]id.UserID{s.solver.ID}, updated.AssignedSolvers)
	})

	s.Run("adding an assigned solver twice is a no-op", func() {
		c := s.seedCase()
		s.expectUser(s.solver)

		_, err := s.service.AddAssignedSolver(s.ctx, c.ID, s.solver.ID)
		s.Require().NoError(err)
		events := len(s.events.EventsOfType(outbox.EventCaseSolverAssigned))

		updated, err := s.service.AddAssignedSolver(s.ctx, c.ID, s.solver.ID)
		s.Require().NoError(err)
		s.Len(updated.AssignedSolvers, 1)
		s.Len(s.events.EventsOfType(outbox.EventCaseSolverAssigned), events)
	})

	s.Run("non-solver target is an invalid role", func() {
		c := s.seedCase()
		s.expectUser(s.org)

		_, err := s.service.AddAssignedSolver(s.ctx, c.ID, s.org.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidRole))
		_, err = s.service.AssignPrimarySolver(s.ctx, c.ID, s.org.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidRole))
	})

	s.Run("unknown target user is not found", func() {
		c := s.seedCase()
		ghost := id.UserID(uuid.New())
		s.mockUsers.EXPECT().FindByID(gomock.Any(), ghost).Return(nil, sentinel.ErrNotFound)

		_, err := s.service.AddAssignedSolver(s.ctx, c.ID, ghost)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func (s *ServiceSuite) TestAwardCaseBadge() {
	s.Run("unsolved case cannot carry a badge", func() {
		c := s.seedCase()

		_, err := s.service.AwardCaseBadge(s.ctx, c.ID, "Sharp Eye")
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))
	})

	s.Run("solved case carries exactly one badge", func() {
		c := s.seedCase(func(c *models.CrimeCase) { c.ApplySolution(s.solver.ID, "x", "", s.now) })
		s.mockReputation.EXPECT().AwardCaseBadge(gomock.Any(), s.solver.ID, c.ID, "Sharp Eye").Return(nil)

		updated, err := s.service.AwardCaseBadge(s.ctx, c.ID, "Sharp Eye")
		s.Require().NoError(err)
		s.True(updated.BadgeAwarded)
		s.Equal("Sharp Eye", updated.AwardedBadge)

		_, err = s.service.AwardCaseBadge(s.ctx, c.ID, "Another")
		s.True(dErrors.HasCode(err, dErrors.CodeInvalidState))

		stored, err := s.cases.FindByID(context.Background(), c.ID)
		s.Require().NoError(err)
		s.Equal("Sharp Eye", stored.AwardedBadge)
	})

	s.Run("reputation failure leaves the case without a badge", func() {
		c := s.seedCase(func(c *models.CrimeCase) { c.ApplySolution(s.solver.ID, "x", "", s.now) })
		s.mockReputation.EXPECT().AwardCaseBadge(gomock.Any(), s.solver.ID, c.ID, "Missing").
			Return(dErrors.New(dErrors.CodeNotFound, "badge not found"))

		_, err := s.service.AwardCaseBadge(s.ctx, c.ID, "Missing")
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

		stored, err := s.cases.FindByID(context.Background(), c.ID)
		s.Require().NoError(err)
		s.False(stored.BadgeAwarded)
	})

	s.Run("solved cases without a badge are listed", func() {
		c := s.seedCase(func(c *models.CrimeCase) { c.ApplySolution(s.solver.ID, "x", "", s.now) })

		pending, err := s.service.ListSolvedWithoutBadge(s.ctx)
		s.Require().NoError(err)
		ids := make([]id.CaseID, 0, len(pending))
		for _, p := range pending {
			ids = append(ids, p.ID)
		}
		s.Contains(ids, c.ID)
	})
}

func (s *ServiceSuite) TestDelete() {
	s.Run("owner deletes and participations are released", func() {
		c := s.seedCase()
		s.expectUser(s.org)
		s.mockParticipation.EXPECT().ReleaseCase(gomock.Any(), c.ID).Return(nil)

		s.Require().NoError(s.service.Delete(s.ctx, c.ID, s.org.ID))

		_, err := s.service.Get(s.ctx, c.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
		s.NotEmpty(s.events.EventsOfType(outbox.EventCaseDeleted))
	})

	s.Run("other users are forbidden", func() {
		c := s.seedCase()
		s.expectUser(s.solver)

		err := s.service.Delete(s.ctx, c.ID, s.solver.ID)
		s.True(dErrors.HasCode(err, dErrors.CodeForbidden))
	})

	s.Run("admin deletes any case", func() {
		c := s.seedCase()
		admin := &idmodels.User{ID: id.UserID(uuid.New()), Role: idmodels.RoleAdmin}
		s.expectUser(admin)
		s.mockParticipation.EXPECT().ReleaseCase(gomock.Any(), c.ID).Return(nil)

		s.Require().NoError(s.service.Delete(s.ctx, c.ID, admin.ID))
	})
}

func (s *ServiceSuite) TestListAndAuthorize() {
	s.Run("filter by status", func() {
		open := s.seedCase()
		closed := s.seedCase(func(c *models.CrimeCase) { c.ApplyClose(s.now) })

		got, err := s.service.List(s.ctx, models.Filter{Status: models.StatusClosed})
		s.Require().NoError(err)
		ids := make(map[id.CaseID]bool)
		for _, c := range got {
			ids[c.ID] = true
		}
		s.True(ids[closed.ID])
		s.False(ids[open.ID])
	})

	s.Run("manager check", func() {
		c := s.seedCase()
		s.expectUser(s.org)
		s.expectUser(s.solver)

		s.NoError(s.service.AuthorizeManager(s.ctx, c.ID, s.org.ID))
		s.True(dErrors.HasCode(s.service.AuthorizeManager(s.ctx, c.ID, s.solver.ID), dErrors.CodeForbidden))
	})
}
