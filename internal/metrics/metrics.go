// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metrics defines the Prometheus collectors for document
// generation.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "writer"

// UnknownFamily labels documents whose family name did not resolve.
const UnknownFamily = "unknown"

var (
	// RenderDuration observes each Generate call by family and status.
	RenderDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "render_duration_seconds",
		Help:      "Time in seconds taken to render and compile a document, labeled by family and success/failure status.",
		Buckets:   prometheus.ExponentialBuckets(0.008, 2, 15),
	}, []string{"family", "status"})

	// CompilePasses counts LaTeX compiler passes across all documents.
	CompilePasses = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "compile_passes_total",
		Help:      "Total number of LaTeX compiler passes run.",
	})

	// SpliceFallbacks counts sections inserted at their fallback anchor.
	SpliceFallbacks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "splice_fallback_total",
		Help:      "Sections placed by fallback insertion because their template anchor was missing.",
	}, []string{"family", "section"})
)

// MustRegister registers the writer metrics.
func MustRegister(registerer prometheus.Registerer) {
	registerer.MustRegister(
		RenderDuration,
		CompilePasses,
		SpliceFallbacks,
	)
}

// ObserveWithStatus records the time since start in vec, appending a
// "success" or "error" status label derived from err.
func ObserveWithStatus(vec *prometheus.HistogramVec, start time.Time, err error, labels ...string) {
	status := "success"
	if err != nil {
		status = "error"
	}
	labels = append(labels, status)
	vec.WithLabelValues(labels...).Observe(time.Since(start).Seconds())
}
