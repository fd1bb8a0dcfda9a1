// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package observability provides Prometheus metrics for the dashboard.
//
// # Description
//
// Metrics cover the action pipeline: intent counts by action kind and
// outcome, intent latency, and audit-write failures (which never surface
// to callers and are therefore invisible without a counter).
//
// # Integration
//
// Metrics are exposed via the /metrics endpoint. All operations are
// thread-safe via Prometheus's internal locking.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	metricsNamespace  = "creatordeck"
	pipelineSubsystem = "pipeline"
)

// Metrics holds all Prometheus metrics for the action pipeline.
type Metrics struct {
	// ActionsTotal counts pipeline intents by action kind and outcome.
	// Labels: action (video_updated, comment_added, ...), status
	// (success, failed)
	ActionsTotal *prometheus.CounterVec

	// ActionDurationSeconds measures end-to-end intent latency,
	// gateway/store call included, audit write excluded.
	// Labels: action
	ActionDurationSeconds *prometheus.HistogramVec

	// AuditAppendFailuresTotal counts swallowed audit-write failures.
	// Audit writes are best-effort by contract; this counter is the only
	// place those failures accumulate.
	AuditAppendFailuresTotal prometheus.Counter
}

// NewMetrics creates and registers all pipeline metrics on the given
// registerer. Call once per process; registering the same metrics twice
// on one registerer panics.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ActionsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: pipelineSubsystem,
				Name:      "actions_total",
				Help:      "Pipeline intents by action kind and outcome",
			},
			[]string{"action", "status"},
		),
		ActionDurationSeconds: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Subsystem: pipelineSubsystem,
				Name:      "action_duration_seconds",
				Help:      "End-to-end intent latency",
				Buckets:   []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30},
			},
			[]string{"action"},
		),
		AuditAppendFailuresTotal: factory.NewCounter(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Subsystem: pipelineSubsystem,
				Name:      "audit_append_failures_total",
				Help:      "Audit-write failures swallowed by the pipeline",
			},
		),
	}
}
