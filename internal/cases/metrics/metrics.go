package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the case registry.
type Metrics struct {
	CasesCreated   prometheus.Counter
	CasesSolved    prometheus.Counter
	CasesDeleted   prometheus.Counter
	StatusChanges  *prometheus.CounterVec
	SolveConflicts prometheus.Counter
	CaseBadges     prometheus.Counter
	SolveDuration  prometheus.Histogram
}

// New creates a new Metrics instance with all case metrics registered.
func New() *Metrics {
	return &Metrics{
		CasesCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "casebook_cases_created_total",
			Help: "Total number of cases posted",
		}),
		CasesSolved: promauto.NewCounter(prometheus.CounterOpts{
			Name: "casebook_cases_solved_total",
			Help: "Total number of cases solved",
		}),
		CasesDeleted: promauto.NewCounter(prometheus.CounterOpts{
			Name: "casebook_cases_deleted_total",
			Help: "Total number of cases hard-deleted",
		}),
		StatusChanges: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "casebook_case_status_changes_total",
			Help: "Case lifecycle transitions by target status",
		}, []string{"status"}),
		SolveConflicts: promauto.NewCounter(prometheus.CounterOpts{
			Name: "casebook_case_solve_conflicts_total",
			Help: "Solve attempts rejected because the case was no longer workable",
		}),
		CaseBadges: promauto.NewCounter(prometheus.CounterOpts{
			Name: "casebook_case_badges_awarded_total",
			Help: "Badges awarded through a solved case",
		}),
		SolveDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "casebook_case_solve_duration_seconds",
			Help:    "Duration of Solve including reputation recompute",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
		}),
	}
}

func (m *Metrics) IncrementCreated() { m.CasesCreated.Inc() }

func (m *Metrics) IncrementSolved() { m.CasesSolved.Inc() }

func (m *Metrics) IncrementDeleted() { m.CasesDeleted.Inc() }

func (m *Metrics) IncrementStatusChange(status string) {
	m.StatusChanges.WithLabelValues(status).Inc()
}

func (m *Metrics) IncrementSolveConflict() { m.SolveConflicts.Inc() }

func (m *Metrics) IncrementCaseBadge() { m.CaseBadges.Inc() }

// ObserveSolve records the duration of a Solve call.
// Call with time.Now() at the start of the operation.
func (m *Metrics) ObserveSolve(start time.Time) {
	m.SolveDuration.Observe(time.Since(start).Seconds())
}
