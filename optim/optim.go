// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides first-order optimizers driven by reverse-mode
// gradients.
//
// # Basic Usage
//
//	func loss[T scalar.Scalar[T]](x []T) (T, error) {
//	    return x[0].SubScalar(3).Square(), nil
//	}
//
//	tape := autodiff.New()
//	opt := optim.NewAdam(optim.AdamConfig{LR: 0.1})
//	res, err := optim.Minimize(tape, loss[autodiff.Var], []float64{0}, opt, optim.DefaultMinimizeConfig())
//
// # Optimizers
//
// SGD (gradient descent with momentum):
//
//	opt := optim.NewSGD(optim.SGDConfig{LR: 0.01, Momentum: 0.9})
//
// Adam (adaptive moment estimation):
//
//	opt := optim.NewAdam(optim.AdamConfig{LR: 0.001, Betas: [2]float64{0.9, 0.999}})
package optim

import (
	"github.com/born-ml/adjoint/internal/autodiff"
	"github.com/born-ml/adjoint/internal/functional"
	"github.com/born-ml/adjoint/internal/optim"
)

// Optimizer updates a parameter vector in place from its gradient.
type Optimizer = optim.Optimizer

// SGD is gradient descent with optional momentum.
type SGD = optim.SGD

// SGDConfig holds configuration for SGD.
type SGDConfig = optim.SGDConfig

// Adam is the Adam optimizer.
type Adam = optim.Adam

// AdamConfig holds configuration for Adam.
type AdamConfig = optim.AdamConfig

// MinimizeConfig controls the Minimize loop.
type MinimizeConfig = optim.MinimizeConfig

// Result is the outcome of Minimize.
type Result = optim.Result

// NewSGD creates a new SGD optimizer.
func NewSGD(config SGDConfig) *SGD {
	return optim.NewSGD(config)
}

// NewAdam creates a new Adam optimizer.
func NewAdam(config AdamConfig) *Adam {
	return optim.NewAdam(config)
}

// DefaultMinimizeConfig returns the default loop configuration.
func DefaultMinimizeConfig() MinimizeConfig {
	return optim.DefaultMinimizeConfig()
}

// Minimize runs opt on f from x0 until the gradient norm is below
// cfg.GradTol or cfg.MaxIter steps have been taken.
func Minimize(t *autodiff.Tape, f functional.Func[autodiff.Var], x0 []float64, opt Optimizer, cfg MinimizeConfig) (Result, error) {
	return optim.Minimize(t, f, x0, opt, cfg)
}
