package service

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"casebook/internal/policy"
	"casebook/internal/reputation/models"
	id "casebook/pkg/domain"
	dErrors "casebook/pkg/domain-errors"
	"casebook/pkg/platform/outbox"
	"casebook/pkg/platform/sentinel"
	"casebook/pkg/requestcontext"
)

func (s *Service) CreateBadge(ctx context.Context, actorID id.UserID, req models.BadgeRequest) (*models.Badge, error) {
	var created *models.Badge
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.authorizeCatalog(txCtx, actorID); err != nil {
			return err
		}
		b, err := models.NewBadge(id.BadgeID(uuid.New()), req, requestcontext.Now(txCtx))
		if err != nil {
			return err
		}
		if err := s.badges.Create(txCtx, b); err != nil {
			return translateBadgeWrite(err)
		}
		created = b
		return s.emitCatalog(txCtx, b, "created")
	})
	if err != nil {
		return nil, err
	}
	s.logAudit(ctx, "badge_created", "badge", created.Name, "actor_id", actorID.String())
	return created, nil
}

func (s *Service) UpdateBadge(ctx context.Context, actorID id.UserID, badgeID id.BadgeID, req models.BadgeRequest) (*models.Badge, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.changeBadge(ctx, actorID, badgeID, "updated", func(b *models.Badge) {
		b.ApplyUpdate(req, requestcontext.Now(ctx))
	})
}

// DeactivateBadge hides a badge from automatic awards. Existing awards stay.
func (s *Service) DeactivateBadge(ctx context.Context, actorID id.UserID, badgeID id.BadgeID) (*models.Badge, error) {
	return s.changeBadge(ctx, actorID, badgeID, "deactivated", func(b *models.Badge) {
		b.Deactivate(requestcontext.Now(ctx))
	})
}

func (s *Service) changeBadge(ctx context.Context, actorID id.UserID, badgeID id.BadgeID, change string, mutate func(*models.Badge)) (*models.Badge, error) {
	var updated *models.Badge
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.authorizeCatalog(txCtx, actorID); err != nil {
			return err
		}
		b, err := s.badges.Execute(txCtx, badgeID, nil, mutate)
		if err != nil {
			if errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.New(dErrors.CodeNotFound, "badge not found")
			}
			return translateBadgeWrite(err)
		}
		updated = b
		return s.emitCatalog(txCtx, b, change)
	})
	if err != nil {
		return nil, err
	}
	s.logAudit(ctx, "badge_"+change, "badge", updated.Name, "actor_id", actorID.String())
	return updated, nil
}

// SeedCatalog creates every definition whose name is not in the catalog yet
// and returns how many were added. Existing entries are never overwritten.
func (s *Service) SeedCatalog(ctx context.Context, defs []models.BadgeRequest) (int, error) {
	added := 0
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		for _, def := range defs {
			if _, err := s.badges.FindByName(txCtx, def.Name); err == nil {
				continue
			} else if !errors.Is(err, sentinel.ErrNotFound) {
				return dErrors.Wrap(err, dErrors.CodeInternal, "failed to load badge")
			}
			b, err := models.NewBadge(id.BadgeID(uuid.New()), def, requestcontext.Now(txCtx))
			if err != nil {
				return err
			}
			if err := s.badges.Create(txCtx, b); err != nil {
				return translateBadgeWrite(err)
			}
			added++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return added, nil
}

func (s *Service) authorizeCatalog(ctx context.Context, actorID id.UserID) error {
	actor, err := s.loadUser(ctx, actorID)
	if err != nil {
		return err
	}
	if !policy.CanManageCatalog(actor) {
		return dErrors.New(dErrors.CodeForbidden, "only administrators can manage the badge catalog")
	}
	return nil
}

func translateBadgeWrite(err error) error {
	if errors.Is(err, sentinel.ErrAlreadyUsed) {
		return dErrors.New(dErrors.CodeConflict, "a badge with this name already exists")
	}
	if dErrors.IsDomain(err) {
		return err
	}
	return dErrors.Wrap(err, dErrors.CodeInternal, "failed to save badge")
}

func (s *Service) emitCatalog(ctx context.Context, b *models.Badge, change string) error {
	return s.emit(ctx, outbox.EventBadgeCatalogChanged, "badge", b.ID.String(), map[string]any{
		"badge_id": b.ID.String(),
		"name":     b.Name,
		"active":   b.Active,
		"change":   change,
	})
}
