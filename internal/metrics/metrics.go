// Package metrics exposes Prometheus counters and gauges for the search's
// attempts, matches, and current rate. Registered unconditionally; only
// exposed over HTTP when the caller supplies an address (cmd/grind's
// --metrics-addr flag).
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Recorder holds the registered metrics for one search run.
type Recorder struct {
	Attempts prometheus.Counter
	Matches  prometheus.Counter
	Rate     prometheus.Gauge
}

// NewRecorder registers attempts/matches/rate metrics against a private
// registry, so multiple searches in the same test process don't collide
// on the default global registry.
func NewRecorder() (*Recorder, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		Attempts: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "grind_attempts_total",
			Help: "Total search attempts performed across all dispatches.",
		}),
		Matches: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "grind_matches_total",
			Help: "Total pattern matches found.",
		}),
		Rate: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "grind_attempts_per_second",
			Help: "Most recently measured attempts-per-second rate.",
		}),
	}
	return r, reg
}

// ServeHTTP starts a background HTTP server exposing reg on addr until ctx
// is cancelled. Errors other than server shutdown are not logged here: it
// returns them on a channel (nil after a clean shutdown) for the caller to
// log or act on, rather than panicking or calling log.Fatal.
func ServeHTTP(ctx context.Context, addr string, reg *prometheus.Registry, log zerolog.Logger) <-chan error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))

	srv := &http.Server{Addr: addr, Handler: mux}
	errCh := make(chan error, 1)

	go func() {
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	return errCh
}
