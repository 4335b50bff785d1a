package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the process-wide HTTP and outbox metrics.
// Bounded contexts register their own metrics in their metrics packages.
type Metrics struct {
	RequestLatency   *prometheus.HistogramVec
	RequestsTotal    *prometheus.CounterVec
	UsersRegistered  prometheus.Counter
	OutboxPublished  prometheus.Counter
	OutboxFailures   prometheus.Counter
	OutboxRelayBatch prometheus.Histogram
}

// New creates and registers all Prometheus metrics
func New() *Metrics {
	return &Metrics{
		RequestLatency: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "casebook_http_request_duration_seconds",
			Help:    "HTTP request latency by route and status",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "casebook_http_requests_total",
			Help: "HTTP requests by route and status",
		}, []string{"method", "route", "status"}),
		UsersRegistered: promauto.NewCounter(prometheus.CounterOpts{
			Name: "casebook_users_registered_total",
			Help: "Total number of users registered in the directory",
		}),
		OutboxPublished: promauto.NewCounter(prometheus.CounterOpts{
			Name: "casebook_outbox_published_total",
			Help: "Outbox events relayed to Kafka",
		}),
		OutboxFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name: "casebook_outbox_relay_failures_total",
			Help: "Outbox relay batches that failed to publish",
		}),
		OutboxRelayBatch: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "casebook_outbox_relay_batch_size",
			Help:    "Events published per relay poll",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100},
		}),
	}
}

// IncrementUsersRegistered increments the users registered counter by 1
func (m *Metrics) IncrementUsersRegistered() {
	m.UsersRegistered.Inc()
}

// ObserveRequest records latency and count for one HTTP request.
func (m *Metrics) ObserveRequest(method, route, status string, start time.Time) {
	m.RequestLatency.WithLabelValues(method, route, status).Observe(time.Since(start).Seconds())
	m.RequestsTotal.WithLabelValues(method, route, status).Inc()
}

func (m *Metrics) ObserveRelayBatch(published int) {
	m.OutboxRelayBatch.Observe(float64(published))
	m.OutboxPublished.Add(float64(published))
}

func (m *Metrics) IncrementRelayFailures() {
	m.OutboxFailures.Inc()
}
