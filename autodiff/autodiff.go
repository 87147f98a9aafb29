// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package autodiff provides reverse-mode automatic differentiation over
// scalars.
//
// Operations on Var handles record nodes on a Tape during a forward
// evaluation; Grad runs the reverse (adjoint) sweep.
//
// Example:
//
//	import "github.com/born-ml/adjoint/autodiff"
//
//	func main() {
//	    t := autodiff.New()
//	    x, y := t.NewVar(3), t.NewVar(2)
//	    f := x.Mul(x).Mul(y).Add(y.Sin())
//
//	    t.Grad(f)
//	    fmt.Println(f.Val(), x.Adj(), y.Adj()) // 18.909 12 8.584
//	}
//
// Nested scopes reclaim the nodes of a sub-computation without touching the
// rest of the tape:
//
//	err := t.Nested(func() error {
//	    // nodes created here are discarded on return
//	    return nil
//	})
package autodiff

import "github.com/born-ml/adjoint/internal/autodiff"

// Tape is the execution stack of a reverse-mode computation.
type Tape = autodiff.Tape

// Var is a differentiable scalar recorded on a Tape.
type Var = autodiff.Var

// Config controls tape allocation.
type Config = autodiff.Config

// Stats is a snapshot of tape usage.
type Stats = autodiff.Stats

// Chainer is a node with a user-defined reverse step.
type Chainer = autodiff.Chainer

// New creates a tape with the default configuration.
func New() *Tape {
	return autodiff.New()
}

// NewTape creates a tape with the given configuration.
func NewTape(cfg Config) *Tape {
	return autodiff.NewTape(cfg)
}

// DefaultConfig returns the default tape configuration.
func DefaultConfig() Config {
	return autodiff.DefaultConfig()
}

// Values returns the values of vs.
func Values(vs []Var) []float64 {
	return autodiff.Values(vs)
}

// Adjoints returns the adjoints of vs.
func Adjoints(vs []Var) []float64 {
	return autodiff.Adjoints(vs)
}
