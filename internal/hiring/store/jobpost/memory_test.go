package jobpost

import (
	"context"
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

func (s *InMemoryStoreSuite) post(recruiter id.UserID, caseType string, at time.Time) *models.JobPost {
	p, err := models.NewJobPost(id.JobPostID(uuid.New()), recruiter, models.PostDetails{Overview: "Find the ledger", CaseType: caseType}, at)
	s.Require().NoError(err)
	s.Require().NoError(s.store.Create(s.ctx, p))
	return p
}

func (s *InMemoryStoreSuite) TestListNewestFirstWithFilter() {
	recruiter := id.UserID(uuid.New())
	older := s.post(recruiter, "Fraud", s.now)
	newer := s.post(recruiter, "fraud", s.now.Add(time.Hour))
	s.post(id.UserID(uuid.New()), "Theft", s.now)

	got, err := s.store.List(s.ctx, models.PostFilter{CaseType: "FRAUD"})
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	s.Equal(newer.ID, got[0].ID)
	s.Equal(older.ID, got[1].ID)

	all, err := s.store.List(s.ctx, models.PostFilter{})
	s.Require().NoError(err)
	s.Len(all, 3)
}

func (s *InMemoryStoreSuite) TestExecuteValidatesBeforeWriting() {
	p := s.post(id.UserID(uuid.New()), "", s.now)
	_, err := s.store.Execute(s.ctx, p.ID, (*models.JobPost).CanClose, func(p *models.JobPost) { p.ApplyClose(s.now) })
	s.Require().NoError(err)

	_, err = s.store.Execute(s.ctx, p.ID, (*models.JobPost).CanClose, func(p *models.JobPost) { p.ApplyClose(s.now) })
	s.Error(err)

	got, err := s.store.FindByID(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal(models.PostClosed, got.Status)
}

func (s *InMemoryStoreSuite) TestDelete() {
	p := s.post(id.UserID(uuid.New()), "", s.now)
	s.Require().NoError(s.store.Delete(s.ctx, p.ID))
	s.ErrorIs(s.store.Delete(s.ctx, p.ID), sentinel.ErrNotFound)
	_, err := s.store.FindByID(s.ctx, p.ID)
	s.ErrorIs(err, sentinel.ErrNotFound)
}
