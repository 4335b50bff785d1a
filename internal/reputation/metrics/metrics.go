package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the reputation engine.
type Metrics struct {
	BadgesAwarded    *prometheus.CounterVec
	BadgesRevoked    prometheus.Counter
	RatingsSubmitted *prometheus.CounterVec
	Recomputes       *prometheus.CounterVec
	LeaderboardFails prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		BadgesAwarded: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "casebook_badges_awarded_total",
			Help: "Badge awards by source (auto, manual, case)",
		}, []string{"source"}),
		BadgesRevoked: promauto.NewCounter(prometheus.CounterOpts{
			Name: "casebook_badges_revoked_total",
			Help: "Badge awards revoked",
		}),
		RatingsSubmitted: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "casebook_ratings_submitted_total",
			Help: "Ratings written, split into new rows and revisions",
		}, []string{"kind"}),
		Recomputes: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "casebook_reputation_recomputes_total",
			Help: "Aggregate recomputations by trigger",
		}, []string{"trigger"}),
		LeaderboardFails: promauto.NewCounter(prometheus.CounterOpts{
			Name: "casebook_leaderboard_write_failures_total",
			Help: "Leaderboard mirror writes that failed",
		}),
	}
}

func (m *Metrics) IncrementBadgeAwarded(source string) {
	m.BadgesAwarded.WithLabelValues(source).Inc()
}

func (m *Metrics) IncrementBadgeRevoked() {
	m.BadgesRevoked.Inc()
}

func (m *Metrics) IncrementRating(created bool) {
	kind := "revised"
	if created {
		kind = "new"
	}
	m.RatingsSubmitted.WithLabelValues(kind).Inc()
}

func (m *Metrics) IncrementRecompute(trigger string) {
	m.Recomputes.WithLabelValues(trigger).Inc()
}

func (m *Metrics) IncrementLeaderboardFailure() {
	m.LeaderboardFails.Inc()
}
