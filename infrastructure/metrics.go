package infrastructure

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

// Metrics holds the Prometheus instruments for the service
type Metrics struct {
	DrawsImported      *prometheus.CounterVec
	TicketsChecked     *prometheus.CounterVec
	AnalysisRequests   *prometheus.CounterVec
	AnalysisCacheHits  prometheus.Counter
	AnalysisDuration   prometheus.Histogram
	DataQualityEvents  *prometheus.CounterVec
	HTTPRequestsTotal  *prometheus.CounterVec
	HTTPRequestSeconds *prometheus.HistogramVec
}

// NewMetrics creates and registers all Prometheus instruments on the
// default registry
func NewMetrics() *Metrics {
	return &Metrics{
		DrawsImported: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lotto_draws_imported_total",
			Help: "Official draws imported, by game variant",
		}, []string{"game_type"}),
		TicketsChecked: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lotto_tickets_checked_total",
			Help: "Scanned tickets evaluated, by outcome",
		}, []string{"outcome"}),
		AnalysisRequests: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lotto_analysis_requests_total",
			Help: "Analysis snapshot requests, by game variant",
		}, []string{"game_type"}),
		AnalysisCacheHits: promauto.NewCounter(prometheus.CounterOpts{
			Name: "lotto_analysis_cache_hits_total",
			Help: "Analysis requests served from the snapshot cache",
		}),
		AnalysisDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "lotto_analysis_build_seconds",
			Help:    "Time to build a full analysis snapshot",
			Buckets: prometheus.DefBuckets,
		}),
		DataQualityEvents: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lotto_data_quality_findings_total",
			Help: "Soft data-quality findings during ingestion, by game variant",
		}, []string{"game_type"}),
		HTTPRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "lotto_http_requests_total",
			Help: "HTTP requests, by route and status code",
		}, []string{"route", "status"}),
		HTTPRequestSeconds: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "lotto_http_request_seconds",
			Help:    "HTTP request latency, by route",
			Buckets: prometheus.DefBuckets,
		}, []string{"route"}),
	}
}

// HealthFunc reports the health of a downstream dependency
type HealthFunc func(ctx context.Context) error

// StartMetricsServer starts a lightweight HTTP server exposing /metrics and
// /healthz. Runs in its own goroutine; the returned server is shut down by
// the caller.
func StartMetricsServer(port string, healthFn HealthFunc) *http.Server {
	mux := http.NewServeMux()

	mux.Handle("/metrics", promhttp.Handler())

	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()

		if err := healthFn(ctx); err != nil {
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = w.Write([]byte(fmt.Sprintf("unhealthy: %v", err)))
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: mux,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.WithError(err).Error("Metrics server stopped")
		}
	}()

	return srv
}
