// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package metrics exports derivative-evaluation metrics to Prometheus.
//
// Example:
//
//	obs, err := metrics.NewPrometheusObserver(prometheus.DefaultRegisterer)
//	cfg := functional.DefaultRunnerConfig()
//	cfg.Observer = obs
//	r := functional.NewRunner(cfg)
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/born-ml/adjoint/internal/telemetry"
)

// PrometheusObserver implements functional.Observer with Prometheus
// collectors.
type PrometheusObserver = telemetry.PrometheusObserver

// NewPrometheusObserver creates the collectors and registers them with reg
// (prometheus.DefaultRegisterer if nil).
func NewPrometheusObserver(reg prometheus.Registerer) (*PrometheusObserver, error) {
	return telemetry.NewPrometheusObserver(reg)
}
