// Package middleware enforces per-IP request budgets on HTTP routes.
package middleware

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"casebook/internal/ratelimit/metrics"
	"casebook/internal/ratelimit/models"
	"casebook/internal/ratelimit/store/bucket"
	"casebook/pkg/platform/circuit"
	"casebook/pkg/platform/middleware/metadata"
	request "casebook/pkg/platform/middleware/request"
)

// Store is a sliding-window bucket store.
type Store interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (*models.Result, error)
	Reset(ctx context.Context, key string) error
}

// Middleware checks the primary store and switches to a process-local
// fallback while the primary keeps failing.
type Middleware struct {
	primary  Store
	fallback *bucket.InMemory
	breaker  *circuit.Breaker
	limits   map[models.EndpointClass]models.Limit
	logger   *slog.Logger
	metrics  *metrics.Metrics
	disabled bool
}

type Option func(*Middleware)

func WithLimit(class models.EndpointClass, limit models.Limit) Option {
	return func(m *Middleware) {
		m.limits[class] = limit
	}
}

func WithMetrics(mt *metrics.Metrics) Option {
	return func(m *Middleware) {
		m.metrics = mt
	}
}

// WithDisabled turns every check into a pass-through.
func WithDisabled(disabled bool) Option {
	return func(m *Middleware) {
		m.disabled = disabled
	}
}

// WithBreaker replaces the default breaker guarding the primary store.
func WithBreaker(b *circuit.Breaker) Option {
	return func(m *Middleware) {
		m.breaker = b
	}
}

// New builds the middleware. A nil primary uses the in-memory store only.
func New(primary Store, logger *slog.Logger, opts ...Option) *Middleware {
	m := &Middleware{
		primary:  primary,
		fallback: bucket.NewInMemory(),
		breaker:  circuit.New("ratelimit"),
		limits: map[models.EndpointClass]models.Limit{
			models.ClassAuth:  {RequestsPerWindow: 10, Window: time.Minute},
			models.ClassWrite: {RequestsPerWindow: 60, Window: time.Minute},
		},
		logger: logger,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Mutations applies the class budget to state-changing requests only. Safe
// methods pass through unchecked.
func (m *Middleware) Mutations(class models.EndpointClass) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		limited := m.RateLimit(class)(next)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(w, r)
			default:
				limited.ServeHTTP(w, r)
			}
		})
	}
}

// RateLimit limits requests per client IP for the given class.
func (m *Middleware) RateLimit(class models.EndpointClass) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if m.disabled {
				next.ServeHTTP(w, r)
				return
			}
			ctx := r.Context()
			limit, ok := m.limits[class]
			if !ok {
				next.ServeHTTP(w, r)
				return
			}

			key := models.KeyForIP(class, metadata.ClientIPFromRequest(r))
			result, degraded, err := m.check(ctx, key, limit)
			if err != nil {
				// Both stores failed; fail open.
				m.logger.ErrorContext(ctx, "rate limit check failed",
					"error", err,
					"class", class,
					"request_id", request.GetRequestID(ctx),
				)
				next.ServeHTTP(w, r)
				return
			}
			if m.metrics != nil {
				m.metrics.ObserveCheck(string(class), result.Allowed)
			}

			writeHeaders(w, result)
			if degraded {
				w.Header().Set("X-RateLimit-Status", "degraded")
			}
			if !result.Allowed {
				m.logger.WarnContext(ctx, "rate limit exceeded",
					"class", class,
					"retry_after", result.RetryAfter,
					"request_id", request.GetRequestID(ctx),
				)
				writeExceeded(w, result)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (m *Middleware) check(ctx context.Context, key string, limit models.Limit) (*models.Result, bool, error) {
	if m.primary == nil {
		res, err := m.fallback.Allow(ctx, key, limit.RequestsPerWindow, limit.Window)
		return res, false, err
	}
	if m.breaker.IsOpen() {
		m.retryPrimary(ctx, key, limit)
		return m.useFallback(ctx, key, limit)
	}

	res, err := m.primary.Allow(ctx, key, limit.RequestsPerWindow, limit.Window)
	if err != nil {
		if _, change := m.breaker.RecordFailure(); change.Opened {
			m.logger.WarnContext(ctx, "rate limit store unavailable, using in-memory fallback", "error", err)
			m.setCircuit(true)
		}
		return m.useFallback(ctx, key, limit)
	}
	if _, change := m.breaker.RecordSuccess(); change.Closed {
		m.logger.InfoContext(ctx, "rate limit store recovered")
		m.setCircuit(false)
	}
	return res, false, nil
}

// retryPrimary sends the request to the primary while the circuit is open so the
// breaker can close once it recovers. The fallback still decides.
func (m *Middleware) retryPrimary(ctx context.Context, key string, limit models.Limit) {
	if _, err := m.primary.Allow(ctx, key, limit.RequestsPerWindow, limit.Window); err != nil {
		m.breaker.RecordFailure()
		return
	}
	if _, change := m.breaker.RecordSuccess(); change.Closed {
		m.logger.InfoContext(ctx, "rate limit store recovered")
		m.setCircuit(false)
	}
}

func (m *Middleware) useFallback(ctx context.Context, key string, limit models.Limit) (*models.Result, bool, error) {
	if m.metrics != nil {
		m.metrics.IncrementFallback()
	}
	res, err := m.fallback.Allow(ctx, key, limit.RequestsPerWindow, limit.Window)
	return res, true, err
}

func (m *Middleware) setCircuit(open bool) {
	if m.metrics != nil {
		m.metrics.SetCircuitOpen(open)
	}
}

func writeHeaders(w http.ResponseWriter, result *models.Result) {
	w.Header().Set("X-RateLimit-Limit", strconv.Itoa(result.Limit))
	w.Header().Set("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
	w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(result.ResetAt.Unix(), 10))
}

func writeExceeded(w http.ResponseWriter, result *models.Result) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Retry-After", strconv.Itoa(result.RetryAfter))
	w.WriteHeader(http.StatusTooManyRequests)
	_ = json.NewEncoder(w).Encode(models.ExceededResponse{
		Error:      "rate_limit_exceeded",
		Message:    "Too many requests. Please try again later.",
		RetryAfter: result.RetryAfter,
	})
}
