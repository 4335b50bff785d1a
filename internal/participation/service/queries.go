package service

import (
	"context"
	"errors"

	"casebook/internal/participation/models"
	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
	"casebook/pkg/platform/sentinel"
)

// ActiveParticipants lists the ACTIVE records on a case.
func (s *Service) ActiveParticipants(ctx context.Context, caseID id.CaseID) ([]*models.Participation, error) {
	all, err := s.ListByCase(ctx, caseID)
	if err != nil {
		return nil, err
	}
	return onlyActive(all), nil
}

// ActiveCases lists the user's ACTIVE records.
func (s *Service) ActiveCases(ctx context.Context, userID id.UserID) ([]*models.Participation, error) {
	all, err := s.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return onlyActive(all), nil
}

func (s *Service) IsActiveParticipant(ctx context.Context, userID id.UserID, caseID id.CaseID) (bool, error) {
	p, err := s.participations.FindByUserAndCase(ctx, userID, caseID)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return false, nil
		}
		return false, dErrors.Wrap(err, dErrors.CodeInternal, "failed to load participation")
	}
	return p.IsActive(), nil
}

func (s *Service) CountActiveByUser(ctx context.Context, userID id.UserID) (int, error) {
	n, err := s.participations.CountActiveByUser(ctx, userID)
	if err != nil {
		return 0, dErrors.Wrap(err, dErrors.CodeInternal, "failed to count active participations")
	}
	return n, nil
}

func (s *Service) ListByCase(ctx context.Context, caseID id.CaseID) ([]*models.Participation, error) {
	out, err := s.participations.ListByCase(ctx, caseID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list case participants")
	}
	return out, nil
}

func (s *Service) ListByUser(ctx context.Context, userID id.UserID) ([]*models.Participation, error) {
	out, err := s.participations.ListByUser(ctx, userID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list user participations")
	}
	return out, nil
}

// RoleOf returns the user's role on a case, or NotParticipating.
func (s *Service) RoleOf(ctx context.Context, userID id.UserID, caseID id.CaseID) (models.Role, error) {
	p, err := s.participations.FindByUserAndCase(ctx, userID, caseID)
	if err != nil {
		return "", translateParticipationErr(err, "failed to load participation")
	}
	return p.Role, nil
}

func onlyActive(in []*models.Participation) []*models.Participation {
	out := make([]*models.Participation, 0, len(in))
	for _, p := range in {
		if p.IsActive() {
			out = append(out, p)
		}
	}
	return out
}
