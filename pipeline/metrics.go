// SPDX-License-Identifier: MIT

package pipeline

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

const metricsNamespace = "lvrank"

// Metrics holds the Prometheus collectors of a batch in a private registry.
// All methods are safe for concurrent use.
type Metrics struct {
	registry  *prometheus.Registry
	processed prometheus.Counter
	failed    *prometheus.CounterVec
	ranks     prometheus.Histogram
	duration  prometheus.Histogram
}

// NewMetrics creates and registers the batch collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		processed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "images_processed_total",
			Help:      "Images attempted, including failures.",
		}),
		failed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Name:      "images_failed_total",
			Help:      "Images skipped, by failure reason.",
		}, []string{"reason"}),
		ranks: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "image_rank",
			Help:      "Estimated numerical rank per image.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 12),
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Name:      "image_duration_seconds",
			Help:      "Time spent decoding and ranking one image.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	m.registry.MustRegister(m.processed, m.failed, m.ranks, m.duration)

	return m
}

// Registry exposes the private registry, e.g. for promhttp.HandlerFor.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile writes all collectors to path in the text exposition
// format read by the node exporter textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("pipeline: write metrics %s: %w", path, err)
	}

	return nil
}

func (m *Metrics) observe(res Result) {
	if m == nil {
		return
	}
	m.processed.Inc()
	m.duration.Observe(res.Elapsed.Seconds())
	if res.Err != nil {
		m.failed.WithLabelValues(reasonOf(res.Err)).Inc()
		return
	}
	m.ranks.Observe(float64(res.Rank))
}
