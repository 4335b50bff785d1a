// Package httptransport assembles the process router from each bounded
// context's handler.
package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"casebook/pkg/platform/httputil"
	"casebook/pkg/platform/middleware/metadata"
	"casebook/pkg/platform/middleware/request"
	"casebook/pkg/platform/middleware/requesttime"
)

const healthTimeout = 2 * time.Second

// Registrar mounts a bounded context's routes.
type Registrar interface {
	Register(r chi.Router)
}

// HealthCheck reports whether one backing dependency is reachable.
type HealthCheck func(ctx context.Context) error

type Router struct {
	logger     *slog.Logger
	checks     map[string]HealthCheck
	registrars []Registrar
	middleware []func(http.Handler) http.Handler
}

type Option func(*Router)

// WithHealthCheck adds a named dependency to /health.
func WithHealthCheck(name string, check HealthCheck) Option {
	return func(r *Router) {
		if check != nil {
			r.checks[name] = check
		}
	}
}

func WithRegistrars(registrars ...Registrar) Option {
	return func(r *Router) {
		r.registrars = append(r.registrars, registrars...)
	}
}

// WithMiddleware runs mw on every route, after client metadata is resolved.
func WithMiddleware(mw ...func(http.Handler) http.Handler) Option {
	return func(r *Router) {
		r.middleware = append(r.middleware, mw...)
	}
}

// NewRouter mounts /health, /metrics and every registrar's routes.
func NewRouter(logger *slog.Logger, opts ...Option) http.Handler {
	rt := &Router{logger: logger, checks: map[string]HealthCheck{}}
	for _, opt := range opts {
		opt(rt)
	}

	r := chi.NewRouter()
	r.Use(requesttime.Middleware(nil))
	r.Use(metadata.ClientMetadata)
	r.Use(rt.middleware...)
	r.With(request.Recovery(logger)).Get("/health", rt.handleHealth)
	r.Handle("/metrics", promhttp.Handler())
	for _, reg := range rt.registrars {
		reg.Register(r)
	}
	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		httputil.WriteJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "error_description": "route not found"})
	})
	return r
}

func (rt *Router) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	status := http.StatusOK
	deps := make(map[string]string, len(rt.checks))
	for name, check := range rt.checks {
		if err := check(ctx); err != nil {
			rt.logger.WarnContext(ctx, "health check failed", "dependency", name, "error", err)
			deps[name] = "unavailable"
			status = http.StatusServiceUnavailable
			continue
		}
		deps[name] = "ok"
	}
	state := "ok"
	if status != http.StatusOK {
		state = "degraded"
	}
	httputil.WriteJSON(w, status, map[string]any{"status": state, "dependencies": deps})
}
