package functional

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/born-ml/adjoint/internal/autodiff"
	"github.com/born-ml/adjoint/internal/parallel"
)

// RunnerConfig configures a Runner.
type RunnerConfig struct {
	Parallel parallel.Config // Worker count and sequential threshold
	Tape     autodiff.Config // Configuration of every worker tape
	Logger   *slog.Logger    // Defaults to a logger that discards output
	Observer Observer        // Defaults to NoopObserver
}

// DefaultRunnerConfig returns the default Runner configuration.
func DefaultRunnerConfig() RunnerConfig {
	return RunnerConfig{
		Parallel: parallel.DefaultConfig(),
		Tape:     autodiff.DefaultConfig(),
		Logger:   slog.New(slog.DiscardHandler),
		Observer: NoopObserver{},
	}
}

// Result is the outcome of one evaluation point.
type Result struct {
	Value    float64
	Gradient []float64
	Hessian  [][]float64 // nil for gradient-only runs
}

// Runner evaluates a driver at many independent points concurrently. A tape
// is confined to one goroutine, so every job borrows its own tape from a
// pool; tapes (and their arena blocks) are reused across jobs and calls.
//
// A Runner is safe for concurrent use.
type Runner struct {
	cfg   RunnerConfig
	tapes sync.Pool
}

// NewRunner creates a Runner.
func NewRunner(cfg RunnerConfig) *Runner {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.Observer == nil {
		cfg.Observer = NoopObserver{}
	}
	r := &Runner{cfg: cfg}
	r.tapes.New = func() any { return autodiff.NewTape(cfg.Tape) }
	return r
}

// Gradients computes the value and gradient of f at every point of xs.
// Results are in the order of xs. On the first failure the remaining points
// are abandoned and the error, annotated with the point index, is returned.
func (r *Runner) Gradients(ctx context.Context, f Func[autodiff.Var], xs [][]float64) ([]Result, error) {
	return r.run(ctx, "gradient", xs, func(t *autodiff.Tape, x []float64) (Result, error) {
		fx, g, err := Gradient(t, f, x)
		return Result{Value: fx, Gradient: g}, err
	})
}

// Hessians computes the value, gradient and Hessian of f at every point of
// xs, with the semantics of Gradients.
func (r *Runner) Hessians(ctx context.Context, f Func[MixedVar], xs [][]float64) ([]Result, error) {
	return r.run(ctx, "hessian", xs, func(t *autodiff.Tape, x []float64) (Result, error) {
		fx, g, h, err := Hessian(t, f, x)
		return Result{Value: fx, Gradient: g, Hessian: h}, err
	})
}

func (r *Runner) run(ctx context.Context, op string, xs [][]float64,
	eval func(*autodiff.Tape, []float64) (Result, error)) ([]Result, error) {
	log := r.cfg.Logger.With("op", op)
	start := time.Now()
	results := make([]Result, len(xs))

	err := parallel.For(ctx, len(xs), r.cfg.Parallel, func(_ context.Context, i int) error {
		res, err := r.evalPoint(op, xs[i], eval)
		if err != nil {
			log.Warn("evaluation failed", "index", i, "error", err)
			return fmt.Errorf("functional: point %d: %w", i, err)
		}
		results[i] = res
		log.Debug("evaluated", "index", i, "value", res.Value)
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("batch complete",
		"points", len(xs),
		"workers", r.cfg.Parallel.Workers(len(xs)),
		"duration", time.Since(start))
	return results, nil
}

// evalPoint runs eval on a pooled tape. A panic in the user function is
// turned into an error; the nested scope has already been recovered by then,
// so the tape goes back to the pool clean.
func (r *Runner) evalPoint(op string, x []float64,
	eval func(*autodiff.Tape, []float64) (Result, error)) (res Result, err error) {
	t := r.tapes.Get().(*autodiff.Tape)
	start := time.Now()
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic: %v", p)
		}
		r.cfg.Observer.ObserveEvaluation(op, len(x), time.Since(start), err)
		r.cfg.Observer.ObserveTape(op, t.Stats())
		if t.NestedDepth() == 0 {
			r.tapes.Put(t)
		}
	}()
	return eval(t, x)
}
