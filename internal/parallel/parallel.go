// Package parallel runs independent index-addressed jobs on a bounded set of
// goroutines.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Maximum number of concurrent goroutines.
	MinItems   int  // Below this many items, run sequentially.
}

// DefaultConfig returns sensible defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
		MinItems:   2,
	}
}

// Workers returns the number of goroutines For would use for n items.
func (c Config) Workers(n int) int {
	if !c.Enabled || n < c.MinItems || c.NumWorkers <= 1 {
		return 1
	}
	return min(c.NumWorkers, n)
}

// For calls f(ctx, i) for every i in [0, n). Falls back to sequential
// execution if parallelism is disabled or n is too small.
//
// The first error cancels the context passed to the remaining calls and is
// returned; calls that have not started yet are skipped. A panic in f is not
// recovered.
func For(ctx context.Context, n int, cfg Config, f func(ctx context.Context, i int) error) error {
	if cfg.Workers(n) == 1 {
		for i := range n {
			if err := ctx.Err(); err != nil {
				return err
			}
			if err := f(ctx, i); err != nil {
				return err
			}
		}
		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers(n))
	for i := range n {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return f(gctx, i)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}
