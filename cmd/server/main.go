package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	caseshandler "casebook/internal/cases/handler"
	casesmetrics "casebook/internal/cases/metrics"
	casesservice "casebook/internal/cases/service"
	hiringhandler "casebook/internal/hiring/handler"
	hiringmetrics "casebook/internal/hiring/metrics"
	hiringservice "casebook/internal/hiring/service"
	identityhandler "casebook/internal/identity/handler"
	identityservice "casebook/internal/identity/service"
	jwttoken "casebook/internal/jwt_token"
	participationhandler "casebook/internal/participation/handler"
	participationmetrics "casebook/internal/participation/metrics"
	participationservice "casebook/internal/participation/service"
	"casebook/internal/platform/config"
	"casebook/internal/platform/httpserver"
	"casebook/internal/platform/logger"
	"casebook/internal/platform/metrics"
	platformredis "casebook/internal/platform/redis"
	ratelimitmetrics "casebook/internal/ratelimit/metrics"
	ratelimitmw "casebook/internal/ratelimit/middleware"
	ratelimitmodels "casebook/internal/ratelimit/models"
	"casebook/internal/ratelimit/store/bucket"
	"casebook/internal/reputation/catalog"
	reputationhandler "casebook/internal/reputation/handler"
	"casebook/internal/reputation/leaderboard"
	reputationmetrics "casebook/internal/reputation/metrics"
	"casebook/internal/reputation/models"
	reputationservice "casebook/internal/reputation/service"
	httptransport "casebook/internal/transport/http"
	"casebook/pkg/platform/circuit"
	"casebook/pkg/platform/outbox/kafka"
	"casebook/pkg/platform/outbox/relay"
)

// main wires the bounded contexts onto one storage backend and runs the HTTP
// server and the outbox relay until SIGINT or SIGTERM.
func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, log); err != nil {
		log.Error("casebook stopped", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, log *slog.Logger) error {
	st, err := openStores(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer st.Close()

	redisClient, err := platformredis.New(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("connect redis: %w", err)
	}
	var (
		board   reputationservice.Leaderboard = leaderboard.Noop{}
		buckets ratelimitmw.Store
	)
	if redisClient != nil {
		defer redisClient.Close()
		board = leaderboard.NewRedis(redisClient.Client, leaderboard.WithKeyPrefix(cfg.Reputation.LeaderboardKey))
		buckets = bucket.NewRedis(redisClient.Client)
	}
	limiter := ratelimitmw.New(buckets, log,
		ratelimitmw.WithDisabled(cfg.RateLimit.Disabled),
		ratelimitmw.WithMetrics(ratelimitmetrics.New()),
		ratelimitmw.WithLimit(ratelimitmodels.ClassAuth, ratelimitmodels.Limit{
			RequestsPerWindow: cfg.RateLimit.AuthRequests,
			Window:            cfg.RateLimit.AuthWindow,
		}),
		ratelimitmw.WithLimit(ratelimitmodels.ClassWrite, ratelimitmodels.Limit{
			RequestsPerWindow: cfg.RateLimit.WriteRequests,
			Window:            cfg.RateLimit.WriteWindow,
		}),
		ratelimitmw.WithBreaker(circuit.New("ratelimit",
			circuit.WithFailureThreshold(cfg.RateLimit.BreakerFailures),
			circuit.WithSuccessThreshold(cfg.RateLimit.BreakerRecoveries),
		)),
	)

	m := metrics.New()
	jwtService := jwttoken.NewJWTService(cfg.Auth.SigningKey, cfg.Auth.Issuer, cfg.Auth.Audience)
	validator := jwttoken.NewValidator(jwtService)

	identity := identityservice.New(st.users, st.tx,
		identityservice.WithLogger(log),
		identityservice.WithMetrics(m),
		identityservice.WithOutbox(st.events),
		identityservice.WithTokenIssuer(jwtService, cfg.Auth.TokenTTL),
	)
	reputation := reputationservice.New(st.users, st.badges, st.awards, st.ratings, st.participations, st.cases, st.tx,
		reputationservice.WithLogger(log),
		reputationservice.WithMetrics(reputationmetrics.New()),
		reputationservice.WithOutbox(st.events),
		reputationservice.WithLeaderboard(board),
	)
	participation := participationservice.New(st.participations, st.cases, st.users, reputation, st.tx,
		participationservice.WithLogger(log),
		participationservice.WithMetrics(participationmetrics.New()),
		participationservice.WithOutbox(st.events),
	)
	cases := casesservice.New(st.cases, st.users, participation, reputation, st.tx,
		casesservice.WithLogger(log),
		casesservice.WithMetrics(casesmetrics.New()),
		casesservice.WithOutbox(st.events),
	)
	hiringOpts := []hiringservice.Option{
		hiringservice.WithLogger(log),
		hiringservice.WithMetrics(hiringmetrics.New()),
		hiringservice.WithOutbox(st.events),
	}
	hiring := hiringservice.New(st.requests, st.cases, st.users, st.tx, hiringOpts...)
	jobBoard := hiringservice.NewJobBoard(st.posts, st.applications, st.users, st.tx, hiringOpts...)

	if err := bootstrap(ctx, cfg, log, identity, reputation); err != nil {
		return err
	}

	routerOpts := []httptransport.Option{
		httptransport.WithMiddleware(limiter.Mutations(ratelimitmodels.ClassWrite)),
		httptransport.WithRegistrars(
			identityhandler.New(identity, log, m, validator,
				identityhandler.WithAuthRateLimit(limiter.RateLimit(ratelimitmodels.ClassAuth))),
			caseshandler.New(cases, log, m, validator),
			participationhandler.New(participation, log, m, validator),
			hiringhandler.New(hiring, log, m, validator),
			hiringhandler.NewJobBoard(jobBoard, log, m, validator),
			reputationhandler.New(reputation, log, m, validator),
		),
	}
	if st.db != nil {
		routerOpts = append(routerOpts, httptransport.WithHealthCheck("postgres", st.db.PingContext))
	}
	if redisClient != nil {
		routerOpts = append(routerOpts, httptransport.WithHealthCheck("redis", redisClient.Health))
	}
	srv := httpserver.New(cfg.Server, httptransport.NewRouter(log, routerOpts...))

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("starting casebook", "addr", cfg.Server.Addr, "storage", cfg.Server.Storage)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	if cfg.KafkaEnabled() {
		worker, closeRelay, err := newRelay(gctx, cfg.Kafka, st, log, m)
		if err != nil {
			return err
		}
		defer closeRelay()
		g.Go(func() error {
			if err := worker.Run(gctx); err != nil && !errors.Is(err, context.Canceled) {
				return fmt.Errorf("outbox relay: %w", err)
			}
			return nil
		})
	}
	return g.Wait()
}

// bootstrap seeds the badge catalog and the first administrator.
func bootstrap(ctx context.Context, cfg config.Config, log *slog.Logger, identity *identityservice.Service, reputation *reputationservice.Service) error {
	defs, err := loadCatalog(cfg.Reputation.CatalogFile)
	if err != nil {
		return fmt.Errorf("load badge catalog: %w", err)
	}
	added, err := reputation.SeedCatalog(ctx, defs)
	if err != nil {
		return fmt.Errorf("seed badge catalog: %w", err)
	}
	log.Info("badge catalog ready", "added", added, "defined", len(defs))

	if cfg.Bootstrap.Username == "" {
		return nil
	}
	admin, err := identity.EnsureAdmin(ctx, cfg.Bootstrap.Username, cfg.Bootstrap.Email, cfg.Bootstrap.Password)
	if err != nil {
		return fmt.Errorf("bootstrap admin: %w", err)
	}
	log.Info("admin account ready", "user_id", admin.ID.String(), "username", admin.Username)
	return nil
}

func loadCatalog(path string) ([]models.BadgeRequest, error) {
	if path == "" {
		return catalog.Builtin()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return catalog.Parse(data)
}

func newRelay(ctx context.Context, cfg config.KafkaConfig, st *stores, log *slog.Logger, m *metrics.Metrics) (*relay.Worker, func(), error) {
	client, err := kafka.NewClient(cfg.Brokers)
	if err != nil {
		return nil, nil, fmt.Errorf("kafka client: %w", err)
	}
	if err := kafka.EnsureTopic(ctx, client, cfg.Topic, cfg.Partitions, cfg.Replication); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("ensure topic %s: %w", cfg.Topic, err)
	}
	worker := relay.New(st.events, kafka.NewPublisher(client, cfg.Topic),
		relay.WithInterval(cfg.PollInterval),
		relay.WithBatchSize(cfg.BatchSize),
		relay.WithLogger(log),
		relay.WithMetrics(m),
	)
	return worker, client.Close, nil
}
