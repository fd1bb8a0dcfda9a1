// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_RegistersOnGivenRegistry(t *testing.T) {
	registry := prometheus.NewRegistry()
	metrics := NewMetrics(registry)

	metrics.ActionsTotal.WithLabelValues("video_updated", "success").Inc()
	metrics.ActionsTotal.WithLabelValues("video_updated", "failed").Inc()
	metrics.ActionDurationSeconds.WithLabelValues("video_updated").Observe(0.05)
	metrics.AuditAppendFailuresTotal.Inc()

	families, err := registry.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["creatordeck_pipeline_actions_total"])
	assert.True(t, names["creatordeck_pipeline_action_duration_seconds"])
	assert.True(t, names["creatordeck_pipeline_audit_append_failures_total"])

	assert.Equal(t, float64(1), testutil.ToFloat64(
		metrics.ActionsTotal.WithLabelValues("video_updated", "success")))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.AuditAppendFailuresTotal))
}

func TestNewMetrics_IndependentRegistries(t *testing.T) {
	// Separate registries must not collide; tests construct metrics per
	// pipeline instance.
	assert.NotPanics(t, func() {
		NewMetrics(prometheus.NewRegistry())
		NewMetrics(prometheus.NewRegistry())
	})
}
