package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors for the voice pipeline. A private
// registry keeps repeated construction (tests, embedding) from clashing.
type Metrics struct {
	Commands *prometheus.CounterVec
	Errors   *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates and registers the collectors under the given namespace.
func New(namespace string) *Metrics {
	m := &Metrics{
		Commands: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "voice_commands_total",
			Help:      "Voice commands processed, labelled by resolved intent.",
		}, []string{"intent"}),
		Errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "Pipeline errors, labelled by stage.",
		}, []string{"stage"}),
		registry: prometheus.NewRegistry(),
	}
	m.registry.MustRegister(m.Commands, m.Errors)
	return m
}

// Handler exposes the registry for the /metrics endpoint.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
