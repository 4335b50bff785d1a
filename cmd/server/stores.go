package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	casesservice "casebook/internal/cases/service"
	"casebook/internal/cases/store/crimecase"
	hiringservice "casebook/internal/hiring/service"
	"casebook/internal/hiring/store/application"
	"casebook/internal/hiring/store/hiringrequest"
	"casebook/internal/hiring/store/jobpost"
	identityservice "casebook/internal/identity/service"
	"casebook/internal/identity/store/user"
	participationservice "casebook/internal/participation/service"
	"casebook/internal/participation/store/participation"
	"casebook/internal/platform/config"
	"casebook/internal/platform/database"
	reputationservice "casebook/internal/reputation/service"
	"casebook/internal/reputation/store/award"
	"casebook/internal/reputation/store/badge"
	"casebook/internal/reputation/store/rating"
	"casebook/internal/storage"
	"casebook/pkg/platform/outbox"
	outboxmemory "casebook/pkg/platform/outbox/store/memory"
	outboxpostgres "casebook/pkg/platform/outbox/store/postgres"
)

// userStore is the directory's store as every bounded context sees it.
type userStore interface {
	identityservice.UserStore
	reputationservice.UserStore
}

type outboxStore interface {
	outbox.Store
	outbox.Source
}

type unitOfWork interface {
	RunInTx(ctx context.Context, fn func(txCtx context.Context) error) error
}

// stores is one storage backend for the whole process. Every store shares tx
// so cross-context hooks commit or roll back together.
type stores struct {
	users          userStore
	cases          casesservice.CaseStore
	participations participationservice.ParticipationStore
	requests       hiringservice.RequestStore
	posts          hiringservice.PostStore
	applications   hiringservice.ApplicationStore
	badges         reputationservice.BadgeStore
	awards         reputationservice.AwardStore
	ratings        reputationservice.RatingStore
	events         outboxStore
	tx             unitOfWork
	db             *sql.DB
}

func (s *stores) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

func openStores(ctx context.Context, cfg config.Config, logger *slog.Logger) (*stores, error) {
	if cfg.Server.Storage == "postgres" {
		return openPostgres(ctx, cfg.Database, logger)
	}
	return openMemory(), nil
}

func openMemory() *stores {
	users := user.NewInMemory()
	cases := crimecase.NewInMemory()
	participations := participation.NewInMemory()
	requests := hiringrequest.NewInMemory()
	posts := jobpost.NewInMemory()
	applications := application.NewInMemory()
	badges := badge.NewInMemory()
	awards := award.NewInMemory()
	ratings := rating.NewInMemory()
	events := outboxmemory.New()
	return &stores{
		users:          users,
		cases:          cases,
		participations: participations,
		requests:       requests,
		posts:          posts,
		applications:   applications,
		badges:         badges,
		awards:         awards,
		ratings:        ratings,
		events:         events,
		tx:             storage.NewMemoryTx(users, cases, participations, requests, posts, applications, badges, awards, ratings, events),
	}
}

func openPostgres(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*stores, error) {
	db, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := database.Migrate(ctx, db, logger); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &stores{
		users:          user.NewPostgres(db),
		cases:          crimecase.NewPostgres(db),
		participations: participation.NewPostgres(db),
		requests:       hiringrequest.NewPostgres(db),
		posts:          jobpost.NewPostgres(db),
		applications:   application.NewPostgres(db),
		badges:         badge.NewPostgres(db),
		awards:         award.NewPostgres(db),
		ratings:        rating.NewPostgres(db),
		events:         outboxpostgres.New(db),
		tx:             storage.NewPostgresTx(db),
		db:             db,
	}, nil
}
