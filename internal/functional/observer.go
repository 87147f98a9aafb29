package functional

import (
	"sync/atomic"
	"time"

	"github.com/born-ml/adjoint/internal/autodiff"
)

// Observer receives operational metrics from a Runner. Implement it to
// integrate with a monitoring system; see the telemetry package for a
// Prometheus implementation. Methods are called concurrently.
type Observer interface {
	// ObserveEvaluation is called after each point is evaluated. op names
	// the driver ("gradient", "hessian", ...), dim is len(x), and err is nil
	// on success.
	ObserveEvaluation(op string, dim int, duration time.Duration, err error)

	// ObserveTape is called with the worker tape usage after each point.
	ObserveTape(op string, stats autodiff.Stats)
}

// NoopObserver discards all metrics.
type NoopObserver struct{}

func (NoopObserver) ObserveEvaluation(string, int, time.Duration, error) {}
func (NoopObserver) ObserveTape(string, autodiff.Stats)                  {}

// BasicObserver keeps in-memory counters. Useful for debugging and tests.
type BasicObserver struct {
	Evaluations atomic.Int64
	Errors      atomic.Int64
	TotalNanos  atomic.Int64
	PeakNodes   atomic.Int64
	PeakBytes   atomic.Int64
}

// ObserveEvaluation implements Observer.
func (b *BasicObserver) ObserveEvaluation(_ string, _ int, duration time.Duration, err error) {
	b.Evaluations.Add(1)
	b.TotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.Errors.Add(1)
	}
}

// ObserveTape implements Observer.
func (b *BasicObserver) ObserveTape(_ string, stats autodiff.Stats) {
	storeMax(&b.PeakNodes, int64(stats.PeakNodes))
	storeMax(&b.PeakBytes, int64(stats.Arena.Peak))
}

// Stats returns a snapshot of the counters.
func (b *BasicObserver) Stats() BasicStats {
	s := BasicStats{
		Evaluations: b.Evaluations.Load(),
		Errors:      b.Errors.Load(),
		PeakNodes:   b.PeakNodes.Load(),
		PeakBytes:   b.PeakBytes.Load(),
	}
	if s.Evaluations > 0 {
		s.AvgNanos = b.TotalNanos.Load() / s.Evaluations
	}
	return s
}

// BasicStats is a snapshot of BasicObserver state.
type BasicStats struct {
	Evaluations int64
	Errors      int64
	AvgNanos    int64
	PeakNodes   int64
	PeakBytes   int64
}

func storeMax(v *atomic.Int64, x int64) {
	for {
		cur := v.Load()
		if x <= cur || v.CompareAndSwap(cur, x) {
			return
		}
	}
}
