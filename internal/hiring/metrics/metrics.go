package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for hiring negotiation.
type Metrics struct {
	RequestsCreated   prometheus.Counter
	DuplicateRequests prometheus.Counter
	Transitions       *prometheus.CounterVec
	JobBoardActions   *prometheus.CounterVec
}

func New() *Metrics {
	return &Metrics{
		RequestsCreated: promauto.NewCounter(prometheus.CounterOpts{
			Name: "casebook_hiring_requests_created_total",
			Help: "Hiring requests sent by organizations",
		}),
		DuplicateRequests: promauto.NewCounter(prometheus.CounterOpts{
			Name: "casebook_hiring_duplicate_requests_total",
			Help: "Hiring requests rejected because an open request already exists for the triple",
		}),
		Transitions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "casebook_hiring_transitions_total",
			Help: "Hiring request status changes by target status",
		}, []string{"status"}),
		JobBoardActions: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "casebook_hiring_job_board_actions_total",
			Help: "Job post and application changes by action",
		}, []string{"action"}),
	}
}

func (m *Metrics) IncrementRequestsCreated() {
	m.RequestsCreated.Inc()
}

func (m *Metrics) IncrementDuplicateRequests() {
	m.DuplicateRequests.Inc()
}

func (m *Metrics) IncrementTransition(status string) {
	m.Transitions.WithLabelValues(status).Inc()
}

func (m *Metrics) IncrementJobBoardAction(action string) {
	m.JobBoardActions.WithLabelValues(action).Inc()
}
