package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"

	"casebook/internal/hiring/models"
	id "casebook/pkg/domain"
	"casebook/pkg/platform/sentinel"
)

type InMemoryStoreSuite struct {
	suite.Suite
	store *InMemory
	ctx   context.Context
	now   time.Time
}

func TestInMemoryStoreSuite(t *testing.T) {
	suite.Run(t, new(InMemoryStoreSuite))
}

func (s *InMemoryStoreSuite) SetupTest() {
	s.store = NewInMemory()
	s.ctx = context.Background()
	s.now = time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
}

func (s *InMemoryStoreSuite) application(postID id.JobPostID, applicant id.UserID) *models.Application {
	a, err := models.NewApplication(id.ApplicationID(uuid.New()), postID, applicant, "", s.now)
	s.Require().NoError(err)
	return a
}

func (s *InMemoryStoreSuite) TestOnePerApplicantAndPost() {
	postID, applicant := id.JobPostID(uuid.New()), id.UserID(uuid.New())
	s.Require().NoError(s.store.Create(s.ctx, s.application(postID, applicant)))
	s.ErrorIs(s.store.Create(s.ctx, s.application(postID, applicant)), sentinel.ErrAlreadyUsed)

	s.NoError(s.store.Create(s.ctx, s.application(id.JobPostID(uuid.New()), applicant)))
	s.NoError(s.store.Create(s.ctx, s.application(postID, id.UserID(uuid.New()))))
}

func (s *InMemoryStoreSuite) TestConcurrentApplyAdmitsOne() {
	postID, applicant := id.JobPostID(uuid.New()), id.UserID(uuid.New())
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		admitted int
	)
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.store.Create(s.ctx, s.application(postID, applicant)); err == nil {
				mu.Lock()
				admitted++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	s.Equal(1, admitted)
}

func (s *InMemoryStoreSuite) TestExecuteAndDeleteByPost() {
	postID := id.JobPostID(uuid.New())
	a := s.application(postID, id.UserID(uuid.New()))
	s.Require().NoError(s.store.Create(s.ctx, a))
	s.Require().NoError(s.store.Create(s.ctx, s.application(id.JobPostID(uuid.New()), a.ApplicantID)))

	updated, err := s.store.Execute(s.ctx, a.ID,
		func(a *models.Application) error { return a.CanDecide("accept") },
		func(a *models.Application) { a.ApplyStatus(models.ApplicationAccepted, s.now) })
	s.Require().NoError(err)
	s.Equal(models.ApplicationAccepted, updated.Status)

	_, err = s.store.Execute(s.ctx, id.ApplicationID(uuid.New()), nil, func(*models.Application) {})
	s.ErrorIs(err, sentinel.ErrNotFound)

	s.Require().NoError(s.store.DeleteByPost(s.ctx, postID))
	byPost, err := s.store.ListByPost(s.ctx, postID)
	s.Require().NoError(err)
	s.Empty(byPost)
	mine, err := s.store.ListByApplicant(s.ctx, a.ApplicantID)
	s.Require().NoError(err)
	s.Len(mine, 1)
}

func (s *InMemoryStoreSuite) TestSnapshotRestores() {
	a := s.application(id.JobPostID(uuid.New()), id.UserID(uuid.New()))
	restore := s.store.Snapshot()
	s.Require().NoError(s.store.Create(s.ctx, a))
	restore()

	_, err := s.store.FindByID(s.ctx, a.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
}
