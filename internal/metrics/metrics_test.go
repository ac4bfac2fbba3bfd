// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObserveWithStatus(t *testing.T) {
	vec := prometheus.NewHistogramVec(prometheus.HistogramOpts{Name: "test_duration_seconds"}, []string{"family", "status"})

	ObserveWithStatus(vec, time.Now(), nil, "resume")
	ObserveWithStatus(vec, time.Now(), errors.New("boom"), "resume")
	ObserveWithStatus(vec, time.Now(), errors.New("boom"), "report")

	assert.Equal(t, 3, testutil.CollectAndCount(vec))
}

func TestMustRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NotPanics(t, func() { MustRegister(reg) })
	assert.Panics(t, func() { MustRegister(reg) })

	before := testutil.ToFloat64(SpliceFallbacks.WithLabelValues("resume", "education"))
	SpliceFallbacks.WithLabelValues("resume", "education").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(SpliceFallbacks.WithLabelValues("resume", "education")))
}
