// Package telemetry exports Runner metrics to Prometheus.
package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/born-ml/adjoint/internal/autodiff"
	"github.com/born-ml/adjoint/internal/functional"
)

var _ functional.Observer = (*PrometheusObserver)(nil)

// PrometheusObserver implements functional.Observer with Prometheus
// collectors.
type PrometheusObserver struct {
	latency     *prometheus.HistogramVec
	evaluations *prometheus.CounterVec
	peakNodes   *prometheus.GaugeVec
	arenaPeak   *prometheus.GaugeVec
	arenaBlocks *prometheus.GaugeVec
}

// NewPrometheusObserver creates the collectors and registers them with reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewPrometheusObserver(reg prometheus.Registerer) (*PrometheusObserver, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	o := &PrometheusObserver{
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "adjoint_evaluation_duration_seconds",
			Help:    "Latency of derivative evaluations",
			Buckets: prometheus.ExponentialBuckets(1e-6, 4, 12),
		}, []string{"op", "status"}),
		evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "adjoint_evaluations_total",
			Help: "Total derivative evaluations",
		}, []string{"op", "status"}),
		peakNodes: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "adjoint_tape_peak_nodes",
			Help: "Largest node count reached by the last worker tape",
		}, []string{"op"}),
		arenaPeak: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "adjoint_arena_peak_bytes",
			Help: "High-water mark of arena bytes in use on the last worker tape",
		}, []string{"op"}),
		arenaBlocks: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "adjoint_arena_blocks",
			Help: "Number of arena blocks held by the last worker tape",
		}, []string{"op"}),
	}

	for _, c := range []prometheus.Collector{o.latency, o.evaluations, o.peakNodes, o.arenaPeak, o.arenaBlocks} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// ObserveEvaluation implements functional.Observer.
func (o *PrometheusObserver) ObserveEvaluation(op string, _ int, d time.Duration, err error) {
	status := "success"
	if err != nil {
		status = "error"
	}
	o.latency.WithLabelValues(op, status).Observe(d.Seconds())
	o.evaluations.WithLabelValues(op, status).Inc()
}

// ObserveTape implements functional.Observer.
func (o *PrometheusObserver) ObserveTape(op string, stats autodiff.Stats) {
	o.peakNodes.WithLabelValues(op).Set(float64(stats.PeakNodes))
	o.arenaPeak.WithLabelValues(op).Set(float64(stats.Arena.Peak))
	o.arenaBlocks.WithLabelValues(op).Set(float64(stats.Arena.NumBlocks))
}
