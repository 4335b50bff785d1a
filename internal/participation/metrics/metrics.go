package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the participation ledger.
type Metrics struct {
	Joins         *prometheus.CounterVec
	Transitions   *prometheus.CounterVec
	RoleChanges   *prometheus.CounterVec
	ReleasedCases prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		Joins: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "casebook_participation_joins_total",
			Help: "Successful joins, split into first joins and reactivations",
		}, []string{"kind"}),
		Transitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "casebook_participation_transitions_total",
			Help: "Participation status changes by target status",
		}, []string{"status"}),
		RoleChanges: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "casebook_participation_role_changes_total",
			Help: "Participation role changes by new role",
		}, []string{"role"}),
		ReleasedCases: promauto.NewCounter(prometheus.CounterOpts{
			Name: "casebook_participation_released_cases_total",
			Help: "Deleted cases whose participants were released",
		}),
	}
}

func (m *Metrics) IncrementJoin(reactivated bool) {
	kind := "new"
	if reactivated {
		kind = "reactivated"
	}
	m.Joins.WithLabelValues(kind).Inc()
}

func (m *Metrics) IncrementTransition(status string) {
	m.Transitions.WithLabelValues(status).Inc()
}

func (m *Metrics) IncrementRoleChange(role string) {
	m.RoleChanges.WithLabelValues(role).Inc()
}

func (m *Metrics) IncrementReleasedCase() {
	m.ReleasedCases.Inc()
}
