package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Checks       *prometheus.CounterVec
	Fallbacks    prometheus.Counter
	CircuitState prometheus.Gauge
}

func New() *Metrics {
	return &Metrics{
		Checks: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "casebook_ratelimit_checks_total",
			Help: "Rate limit checks by endpoint class and outcome",
		}, []string{"class", "outcome"}),
		Fallbacks: promauto.NewCounter(prometheus.CounterOpts{
			Name: "casebook_ratelimit_fallback_checks_total",
			Help: "Rate limit checks served by the in-memory fallback",
		}),
		CircuitState: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "casebook_ratelimit_circuit_open",
			Help: "1 while the rate limit store circuit is open",
		}),
	}
}

func (m *Metrics) ObserveCheck(class string, allowed bool) {
	outcome := "allowed"
	if !allowed {
		outcome = "limited"
	}
	m.Checks.WithLabelValues(class, outcome).Inc()
}

func (m *Metrics) IncrementFallback() {
	m.Fallbacks.Inc()
}

func (m *Metrics) SetCircuitOpen(open bool) {
	if open {
		m.CircuitState.Set(1)
		return
	}
	m.CircuitState.Set(0)
}
