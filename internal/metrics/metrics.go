// Package metrics exposes Prometheus collectors for joke fetches and the
// favorites collection.
package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Fetch outcome label values.
const (
	OutcomeSuccess      = "success"
	OutcomeProtocol     = "protocol"
	OutcomeConnectivity = "connectivity"
	OutcomeUnexpected   = "unexpected"
)

// Metrics groups the collectors recorded by the repository and controller.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry      *prometheus.Registry
	fetches       *prometheus.CounterVec
	fetchDuration prometheus.Histogram
	stale         prometheus.Counter
	favorites     prometheus.Gauge
}

// New registers the chuckle collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		fetches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "chuckle",
				Name:      "fetch_total",
				Help:      "Total number of joke fetches by outcome.",
			},
			[]string{"outcome"},
		),
		fetchDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: "chuckle",
				Name:      "fetch_duration_seconds",
				Help:      "Duration of joke fetches.",
				Buckets:   prometheus.ExponentialBuckets(0.01, 2, 10), // 10ms to ~5s
			},
		),
		stale: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "chuckle",
				Name:      "fetch_stale_total",
				Help:      "Fetch results discarded because a newer request was issued.",
			},
		),
		favorites: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "chuckle",
				Name:      "favorites",
				Help:      "Number of jokes in the session favorites.",
			},
		),
	}
	m.registry.MustRegister(
		m.fetches,
		m.fetchDuration,
		m.stale,
		m.favorites,
		prometheus.NewGoCollector(),
	)
	return m
}

// ObserveFetch records one completed provider call.
func (m *Metrics) ObserveFetch(outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	if outcome == "" {
		outcome = OutcomeUnexpected
	}
	m.fetches.WithLabelValues(outcome).Inc()
	m.fetchDuration.Observe(elapsed.Seconds())
}

// IncStale counts a fetch result that was dropped.
func (m *Metrics) IncStale() {
	if m == nil {
		return
	}
	m.stale.Inc()
}

// SetFavorites records the current favorites count.
func (m *Metrics) SetFavorites(n int) {
	if m == nil {
		return
	}
	m.favorites.Set(float64(n))
}

// Gatherer returns the registry backing m.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.registry
}

// Handler returns an HTTP handler exposing the registered collectors.
func (m *Metrics) Handler() http.Handler {
	if m == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Serve exposes /metrics on addr until ctx is cancelled.
func (m *Metrics) Serve(ctx context.Context, addr string, logger zerolog.Logger) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", m.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	logger.Info().Str("addr", addr).Msg("metrics listening")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	logger.Info().Str("addr", addr).Msg("metrics stopped")
	return nil
}
