package hiringrequest

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
	s.now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
}

func (s *InMemoryStoreSuite) request(org, inv id.UserID, caseID id.CaseID) *models.HiringRequest {
	r, err := models.NewHiringRequest(id.HiringRequestID(uuid.New()), org, inv, caseID, models.Terms{Title: "Stakeout"}, s.now)
	s.Require().NoError(err)
	return r
}

func (s *InMemoryStoreSuite) TestOpenTripleIsUnique() {
	org, inv, caseID := id.UserID(uuid.New()), id.UserID(uuid.New()), id.CaseID(uuid.New())
	first := s.request(org, inv, caseID)
	s.Require().NoError(s.store.Create(s.ctx, first))

	s.ErrorIs(s.store.Create(s.ctx, s.request(org, inv, caseID)), sentinel.ErrAlreadyUsed)

	s.Run("another organization may ask for the same investigator", func() {
		s.NoError(s.store.Create(s.ctx, s.request(id.UserID(uuid.New()), inv, caseID)))
	})

	s.Run("terminal request frees the triple", func() {
		_, err := s.store.Execute(s.ctx, first.ID, nil, func(r *models.HiringRequest) { r.ApplyReject("", s.now) })
		s.Require().NoError(err)
		s.NoError(s.store.Create(s.ctx, s.request(org, inv, caseID)))
	})
}

func (s *InMemoryStoreSuite) TestConcurrentCreateAdmitsOne() {
	org, inv, caseID := id.UserID(uuid.New()), id.UserID(uuid.New()), id.CaseID(uuid.New())
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.store.Create(s.ctx, s.request(org, inv, caseID)); err == nil {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	s.Equal(1, created)
}

func (s *InMemoryStoreSuite) TestListsAndExecute() {
	org, inv := id.UserID(uuid.New()), id.UserID(uuid.New())
	older := s.request(org, inv, id.CaseID(uuid.New()))
	s.Require().NoError(s.store.Create(s.ctx, older))
	newer := s.request(org, id.UserID(uuid.New()), older.CaseID)
	newer.RequestedAt = s.now.Add(time.Minute)
	s.Require().NoError(s.store.Create(s.ctx, newer))

	byOrg, err := s.store.ListByOrganization(s.ctx, org)
	s.Require().NoError(err)
	s.Require().Len(byOrg, 2)
	s.Equal(newer.ID, byOrg[0].ID)

	byInv, err := s.store.ListByInvestigator(s.ctx, inv)
	s.Require().NoError(err)
	s.Len(byInv, 1)

	byCase, err := s.store.ListByCase(s.ctx, older.CaseID)
	s.Require().NoError(err)
	s.Len(byCase, 2)

	_, err = s.store.Execute(s.ctx, older.ID, (*models.HiringRequest).CanStart, func(r *models.HiringRequest) { r.ApplyStart(s.now) })
	s.Error(err)

	_, err = s.store.Execute(s.ctx, id.HiringRequestID(uuid.New()), nil, func(*models.HiringRequest) {})
	s.ErrorIs(err, sentinel.ErrNotFound)
}

func (s *InMemoryStoreSuite) TestSnapshotRestores() {
	r := s.request(id.UserID(uuid.New()), id.UserID(uuid.New()), id.CaseID(uuid.New()))
	s.Require().NoError(s.store.Create(s.ctx, r))
	restore := s.store.Snapshot()
	_, err := s.store.Execute(s.ctx, r.ID, nil, func(r *models.HiringRequest) { r.ApplyCancel(s.now) })
	s.Require().NoError(err)

	restore()
	got, err := s.store.FindByID(s.ctx, r.ID)
	s.Require().NoError(err)
	s.Equal(models.StatusPending, got.Status)
}
