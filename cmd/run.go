package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/MrMafora/Snap-Lotto-sub006/config"
	"github.com/MrMafora/Snap-Lotto-sub006/database"
	"github.com/MrMafora/Snap-Lotto-sub006/domain/services"
	"github.com/MrMafora/Snap-Lotto-sub006/events"
	"github.com/MrMafora/Snap-Lotto-sub006/infrastructure"
	"github.com/MrMafora/Snap-Lotto-sub006/repository"
	"github.com/MrMafora/Snap-Lotto-sub006/web"

	log "github.com/sirupsen/logrus"
)

// Run initializes and starts the application
func Run(ctx context.Context) error {
	log.Info("Starting snap-lotto service...")

	cfg := config.Get()

	log.Info("Connecting to database...")
	db, err := database.NewConnection(ctx, cfg.GetDatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	log.Info("Database connection established")

	drawRepo := repository.NewLotteryDrawRepository(db.Pool)
	divisionRepo := repository.NewDivisionRepository(db.Pool)

	// Event publishing goes to NATS when configured, otherwise stays
	// in-process on the bus
	var publisher events.Publisher
	var natsClient *infrastructure.NATSClient
	if cfg.NATSServers != "" {
		log.WithField("servers", cfg.NATSServers).Info("Connecting to NATS...")
		natsClient = infrastructure.NewNATSClient(cfg.NATSServers)
		if err := natsClient.Connect(ctx); err != nil {
			return fmt.Errorf("failed to connect to NATS: %w", err)
		}
		natsPublisher := infrastructure.NewNATSEventPublisher(natsClient, infrastructure.NewEventSubjectMapper())
		if err := natsPublisher.EnsureEventStream(); err != nil {
			return fmt.Errorf("failed to ensure event stream: %w", err)
		}
		publisher = natsPublisher
	} else {
		log.Info("NATS not configured, using in-process event bus")
		publisher = events.NewBus()
	}

	var cache *infrastructure.AnalysisCache
	if cfg.RedisAddr != "" {
		log.WithField("addr", cfg.RedisAddr).Info("Connecting to Redis...")
		rdb, err := infrastructure.ConnectRedis(ctx, cfg.RedisAddr)
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer rdb.Close()
		cache = infrastructure.NewAnalysisCache(rdb, cfg.AnalysisCacheTTL)
	} else {
		log.Info("Redis not configured, analysis snapshots are uncached")
	}

	metrics := infrastructure.NewMetrics()

	ingestionService := services.NewIngestionService(drawRepo, divisionRepo, publisher)
	prizeService := services.NewPrizeService(drawRepo, divisionRepo, publisher)
	analysisService := services.NewAnalysisService(drawRepo, cfg.AnalysisMinDraws)

	metricsServer := infrastructure.StartMetricsServer(cfg.MetricsPort, func(ctx context.Context) error {
		return db.Ping(ctx)
	})
	log.WithField("port", cfg.MetricsPort).Info("Metrics server started")

	apiServer := web.NewServer(cfg.HTTPPort, web.ServerOptions{
		DrawRepo:  drawRepo,
		Ingestion: ingestionService,
		Prize:     prizeService,
		Analysis:  analysisService,
		Cache:     cache,
		Metrics:   metrics,
	})

	serverErr := make(chan error, 1)
	go func() {
		if err := apiServer.Start(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	log.WithField("environment", cfg.Environment).Info("Service is running")

	select {
	case err := <-serverErr:
		return fmt.Errorf("API server failed: %w", err)
	case <-ctx.Done():
	}

	log.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Error shutting down API server")
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Error shutting down metrics server")
	}
	if natsClient != nil {
		if err := natsClient.Close(); err != nil {
			log.WithError(err).Error("Error closing NATS connection")
		}
	}

	log.Info("Closing database connection...")
	db.Close()

	log.Info("Shutdown completed")
	return nil
}
