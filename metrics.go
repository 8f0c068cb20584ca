package ecs

// metrics.go is a thin abstraction over Prometheus so the World can be used
// with or without metrics. When the caller passes a *prometheus.Registry
// via WithMetrics, a labeled Prometheus implementation is installed;
// otherwise a no-op sink is used and structural mutations do not pay for
// metric updates.
//
// Metrics:
//
//	ecs_entities_live                 Gauge
//	ecs_pool_size{component}          Gauge
//	ecs_view_rebuilds_total{view}     Counter
//	ecs_entity_destructions_total     Counter

import (
	"github.com/prometheus/client_golang/prometheus"
)

// metricsSink is the internal interface abstracting the concrete backend
// (Prometheus vs noop). World only ever talks to this.
type metricsSink interface {
	setLiveEntities(v float64)
	setPoolSize(component string, v float64)
	incViewRebuild(view string)
	incEntityDestruction()
}

type noopMetrics struct{}

func (noopMetrics) setLiveEntities(float64)     {}
func (noopMetrics) setPoolSize(string, float64) {}
func (noopMetrics) incViewRebuild(string)       {}
func (noopMetrics) incEntityDestruction()       {}

type promMetrics struct {
	liveEntities      prometheus.Gauge
	poolSize          *prometheus.GaugeVec
	viewRebuilds      *prometheus.CounterVec
	entityDestruction prometheus.Counter
}

func newPromMetrics(reg *prometheus.Registry) *promMetrics {
	pm := &promMetrics{
		liveEntities: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "ecs",
			Name:      "entities_live",
			Help:      "Number of currently alive entities.",
		}),
		poolSize: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "ecs",
			Name:      "pool_size",
			Help:      "Number of components currently stored per pool.",
		}, []string{"component"}),
		viewRebuilds: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ecs",
			Name:      "view_rebuilds_total",
			Help:      "Number of times a view's cache was rebuilt.",
		}, []string{"view"}),
		entityDestruction: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "ecs",
			Name:      "entity_destructions_total",
			Help:      "Number of entities destroyed.",
		}),
	}
	reg.MustRegister(pm.liveEntities, pm.poolSize, pm.viewRebuilds, pm.entityDestruction)
	return pm
}

func (m *promMetrics) setLiveEntities(v float64) {
	m.liveEntities.Set(v)
}

func (m *promMetrics) setPoolSize(component string, v float64) {
	m.poolSize.WithLabelValues(component).Set(v)
}

func (m *promMetrics) incViewRebuild(view string) {
	m.viewRebuilds.WithLabelValues(view).Inc()
}

func (m *promMetrics) incEntityDestruction() {
	m.entityDestruction.Inc()
}
