package prometheus

import (
	"github.com/koykov/rngcompat"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusMetrics is a Prometheus implementation of rngcompat.MetricsWriter.
type PrometheusMetrics struct {
	name string
}

var (
	promErrorTranslate, promFatalEscalation *prometheus.CounterVec
)

func init() {
	promErrorTranslate = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rngcompat_error_translate",
		Help: "How many errors were converted between generations.",
	}, []string{"name", "from", "to", "tier"})
	promFatalEscalation = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "rngcompat_fatal_escalation",
		Help: "How many source failures escalated to panic due to interface without error channel.",
	}, []string{"name", "generation"})

	prometheus.MustRegister(promErrorTranslate, promFatalEscalation)
}

func NewPrometheusMetrics(name string) *PrometheusMetrics {
	m := &PrometheusMetrics{
		name: name,
	}
	return m
}

func (m PrometheusMetrics) ErrorTranslate(from, to rngcompat.Generation, tier rngcompat.Tier) {
	promErrorTranslate.WithLabelValues(m.name, from.String(), to.String(), tier.String()).Inc()
}

func (m PrometheusMetrics) FatalEscalation(gen rngcompat.Generation) {
	promFatalEscalation.WithLabelValues(m.name, gen.String()).Inc()
}

var _ rngcompat.MetricsWriter = PrometheusMetrics{}
