// Package metrics exposes report-generation counters and timings for
// Prometheus scraping.
package metrics

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector aggregates the engine's Prometheus metrics. Construct once and
// pass by reference into the pipeline.
type Collector struct {
	registry *prometheus.Registry

	reportsTotal    *prometheus.CounterVec
	uploadFailures  prometheus.Counter
	cleanupFailures prometheus.Counter
	stageSeconds    *prometheus.HistogramVec
}

// NewCollector registers the engine metrics on a fresh registry.
func NewCollector() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		reportsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "report_generations_total",
			Help: "Report generations by outcome (ok, degraded, failed).",
		}, []string{"outcome"}),
		uploadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "report_upload_failures_total",
			Help: "Artifact uploads that failed.",
		}),
		cleanupFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "report_cleanup_failures_total",
			Help: "Transient file deletions that failed.",
		}),
		stageSeconds: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "report_stage_duration_seconds",
			Help:    "Duration of each pipeline stage.",
			Buckets: prometheus.DefBuckets,
		}, []string{"stage"}),
	}
	c.registry.MustRegister(c.reportsTotal, c.uploadFailures, c.cleanupFailures, c.stageSeconds)
	return c
}

// ReportOutcome records one finished generation: "ok", "degraded" or
// "failed".
func (c *Collector) ReportOutcome(outcome string) {
	c.reportsTotal.WithLabelValues(outcome).Inc()
}

// UploadFailure counts one failed artifact upload.
func (c *Collector) UploadFailure() { c.uploadFailures.Inc() }

// CleanupFailure counts one failed transient deletion.
func (c *Collector) CleanupFailure() { c.cleanupFailures.Inc() }

// ObserveStage records the duration of one pipeline stage.
func (c *Collector) ObserveStage(stage string, d time.Duration) {
	c.stageSeconds.WithLabelValues(stage).Observe(d.Seconds())
}

// Serve exposes /metrics on addr until the context ends. Blocks.
func (c *Collector) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{}))

	srv := &http.Server{
		Addr:         addr,
		Handler:      mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errc:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server: %w", err)
	}
}
