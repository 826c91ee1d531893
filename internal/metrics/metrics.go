// internal/metrics/metrics.go
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the server's Prometheus collectors. All methods are
// nil-receiver safe so metrics stay optional in tests and tooling.
type Metrics struct {
	ActiveRooms      prometheus.Gauge
	ConnectedClients prometheus.Gauge
	ActionsApplied   *prometheus.CounterVec
	ActionsRejected  prometheus.Counter
}

// New registers and returns the collectors under the given namespace.
func New(namespace string) *Metrics {
	m := &Metrics{
		ActiveRooms: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_rooms",
			Help:      "Number of live game rooms",
		}),
		ConnectedClients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "connected_clients",
			Help:      "Number of open websocket connections",
		}),
		ActionsApplied: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_applied_total",
			Help:      "Game actions accepted by the engine",
		}, []string{"action"}),
		ActionsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "actions_rejected_total",
			Help:      "Game actions rejected by the engine",
		}),
	}

	prometheus.MustRegister(
		m.ActiveRooms,
		m.ConnectedClients,
		m.ActionsApplied,
		m.ActionsRejected,
	)
	return m
}

// Handler exposes the registered collectors for scraping.
func Handler() http.Handler {
	return promhttp.Handler()
}

func (m *Metrics) SetActiveRooms(n int) {
	if m != nil {
		m.ActiveRooms.Set(float64(n))
	}
}

func (m *Metrics) IncConnectedClients() {
	if m != nil {
		m.ConnectedClients.Inc()
	}
}

func (m *Metrics) DecConnectedClients() {
	if m != nil {
		m.ConnectedClients.Dec()
	}
}

func (m *Metrics) IncActionApplied(action string) {
	if m != nil {
		m.ActionsApplied.WithLabelValues(action).Inc()
	}
}

func (m *Metrics) IncActionRejected() {
	if m != nil {
		m.ActionsRejected.Inc()
	}
}
