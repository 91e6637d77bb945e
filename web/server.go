package web

import (
	"context"
	"net/http"
	"time"

	"github.com/MrMafora/Snap-Lotto-sub006/charts"
	"github.com/MrMafora/Snap-Lotto-sub006/domain/interfaces"
	"github.com/MrMafora/Snap-Lotto-sub006/infrastructure"

	"github.com/go-chi/chi/v5"
	chimid "github.com/go-chi/chi/v5/middleware"
	log "github.com/sirupsen/logrus"
)

// Server exposes the draw, ticket and analysis API over HTTP
type Server struct {
	router chi.Router
	server *http.Server

	drawRepo  interfaces.LotteryDrawRepository
	ingestion interfaces.IngestionService
	prize     interfaces.PrizeService
	analysis  interfaces.AnalysisService
	cache     *infrastructure.AnalysisCache
	metrics   *infrastructure.Metrics
	chartGen  *charts.FrequencyChartGenerator
}

// ServerOptions carries the collaborators the server delegates to. Cache and
// Metrics may be nil; the server degrades to uncached, unmetered operation.
type ServerOptions struct {
	DrawRepo  interfaces.LotteryDrawRepository
	Ingestion interfaces.IngestionService
	Prize     interfaces.PrizeService
	Analysis  interfaces.AnalysisService
	Cache     *infrastructure.AnalysisCache
	Metrics   *infrastructure.Metrics
}

// NewServer creates a new API server listening on the given port
func NewServer(port string, opts ServerOptions) *Server {
	router := chi.NewRouter()

	s := &Server{
		router:    router,
		drawRepo:  opts.DrawRepo,
		ingestion: opts.Ingestion,
		prize:     opts.Prize,
		analysis:  opts.Analysis,
		cache:     opts.Cache,
		metrics:   opts.Metrics,
		chartGen:  charts.NewFrequencyChartGenerator(),
		server: &http.Server{
			Addr:         ":" + port,
			Handler:      router,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 30 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
	}

	router.Use(chimid.RequestID)
	router.Use(requestLogger)
	router.Use(requestMetrics(opts.Metrics))
	router.Use(chimid.Recoverer)

	router.Route("/api/v1", func(r chi.Router) {
		r.Post("/draws", s.handleImportDraw)
		r.Get("/draws", s.handleListDraws)
		r.Post("/tickets/check", s.handleCheckTicket)
		r.Get("/analysis", s.handleAnalysis)
		r.Get("/analysis/frequency/chart.png", s.handleFrequencyChart)
	})

	return s
}

// Router returns the HTTP handler, used directly by handler tests
func (s *Server) Router() http.Handler {
	return s.router
}

// Start begins serving requests and blocks until the server stops
func (s *Server) Start() error {
	log.WithField("addr", s.server.Addr).Info("API server listening")
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
