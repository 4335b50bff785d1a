package service

import (
	"context"

	"casebook/internal/hiring/models"
	idmodels "casebook/internal/identity/models"
	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
)

func (s *Service) Get(ctx context.Context, requestID id.HiringRequestID) (*models.HiringRequest, error) {
	r, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, translateRequestErr(err, "failed to load hiring request")
	}
	return r, nil
}

func (s *Service) ListByOrganization(ctx context.Context, orgID id.UserID) ([]*models.HiringRequest, error) {
	out, err := s.requests.ListByOrganization(ctx, orgID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list hiring requests")
	}
	return out, nil
}

func (s *Service) ListByInvestigator(ctx context.Context, investigatorID id.UserID) ([]*models.HiringRequest, error) {
	out, err := s.requests.ListByInvestigator(ctx, investigatorID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list hiring requests")
	}
	return out, nil
}

func (s *Service) ListByCase(ctx context.Context, caseID id.CaseID) ([]*models.HiringRequest, error) {
	out, err := s.requests.ListByCase(ctx, caseID)
	if err != nil {
		return nil, dErrors.Wrap(err, dErrors.CodeInternal, "failed to list hiring requests")
	}
	return out, nil
}

func (s *Service) PendingForInvestigator(ctx context.Context, investigatorID id.UserID) ([]*models.HiringRequest, error) {
	all, err := s.ListByInvestigator(ctx, investigatorID)
	if err != nil {
		return nil, err
	}
	return filter(all, func(r *models.HiringRequest) bool { return r.Status == models.StatusPending }), nil
}

// ActiveContracts returns the user's ACCEPTED or IN_PROGRESS requests, seen
// from the organization or investigator side according to the user's role.
func (s *Service) ActiveContracts(ctx context.Context, userID id.UserID) ([]*models.HiringRequest, error) {
	all, err := s.forUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return filter(all, func(r *models.HiringRequest) bool { return r.Status.IsContract() }), nil
}

func (s *Service) CompletedContracts(ctx context.Context, userID id.UserID) ([]*models.HiringRequest, error) {
	all, err := s.forUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return filter(all, func(r *models.HiringRequest) bool { return r.Status == models.StatusCompleted }), nil
}

// SuccessRate is the percentage of the user's requests that reached
// COMPLETED. Users without requests, or outside the two hiring roles, score 0.
func (s *Service) SuccessRate(ctx context.Context, userID id.UserID) (float64, error) {
	all, err := s.forUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	if len(all) == 0 {
		return 0, nil
	}
	completed := len(filter(all, func(r *models.HiringRequest) bool { return r.Status == models.StatusCompleted }))
	return float64(completed) / float64(len(all)) * 100, nil
}

func (s *Service) forUser(ctx context.Context, userID id.UserID) ([]*models.HiringRequest, error) {
	u, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	switch u.Role {
	case idmodels.RoleOrganization:
		return s.ListByOrganization(ctx, userID)
	case idmodels.RoleSolver:
		return s.ListByInvestigator(ctx, userID)
	default:
		return []*models.HiringRequest{}, nil
	}
}

func filter(in []*models.HiringRequest, keep func(*models.HiringRequest) bool) []*models.HiringRequest {
	out := make([]*models.HiringRequest, 0, len(in))
	for _, r := range in {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
