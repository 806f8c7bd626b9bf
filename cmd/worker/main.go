package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"document-hub/internal/adapters/eventbroker/nats"
	"document-hub/internal/adapters/repository/postgres"
	"document-hub/internal/adapters/storage/minio"
	"document-hub/internal/config"
	"document-hub/internal/core/port"
	"document-hub/internal/core/service/processing"
	"document-hub/internal/core/service/reconcile"
	"document-hub/internal/extractor"

	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {

	ctx, stop := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer stop()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load config
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	// Initialize database
	db, err := initDB(cfg.Database)
	if err != nil {
		logger.Error("failed to init database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()
	logger.Info("db connection established")

	minioAdapter, err := minio.NewAdapter(ctx, cfg.Minio, logger)
	if err != nil {
		logger.Error("failed to init minio", "error", err)
		os.Exit(1)
	}
	logger.Info("minio adapter initialized")

	// Initialize repositories
	documentRepo := postgres.NewSqlDocumentRepository(db)

	// Publisher feeds requeued documents back onto the processing subject
	publisher, err := nats.NewPublisher(ctx, cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to init NATS publisher", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := publisher.Close(); err != nil {
			logger.Error("failed to close NATS publisher", "error", err)
		}
	}()

	// Initialize services
	metadataExtractor := extractor.New(minioAdapter, logger)
	processingService := processing.NewProcessingService(documentRepo, metadataExtractor, logger)
	reconcileService := reconcile.NewReconcileService(
		documentRepo,
		minioAdapter,
		publisher,
		cfg.Minio.BucketName,
		cfg.Reconcile.StuckPendingAfter,
		cfg.Reconcile.OrphanGrace,
		logger,
	)

	// Initialize NATS consumer
	natsConsumer, err := nats.NewNATSConsumer(cfg.NATS, logger)
	if err != nil {
		logger.Error("failed to create NATS consumer", "error", err)
		os.Exit(1)
	}
	logger.Info("NATS consumer initialized")

	// Subscribe to NATS
	if err := natsConsumer.Subscribe(ctx, processingService); err != nil {
		logger.Error("failed to subscribe to NATS", "error", err)
		os.Exit(1)
	}
	logger.Info("NATS subscription active")

	var wg sync.WaitGroup

	// init reconcile task
	wg.Add(1)
	go func() {
		defer wg.Done()
		initReconcileTask(ctx, reconcileService, cfg.Reconcile.Every, logger)
	}()

	// metrics endpoint
	metricsServer := &http.Server{
		Addr:    cfg.Metrics.Addr,
		Handler: promhttp.Handler(),
	}
	wg.Add(1)
	go func() {
		defer wg.Done()
		logger.Info("starting metrics server", "addr", cfg.Metrics.Addr)
		servErr := metricsServer.ListenAndServe()
		if servErr != nil && !errors.Is(servErr, http.ErrServerClosed) {
			logger.Error("failed to start metrics server", "error", servErr)
			stop()
		}
	}()

	// Wait for termination signal
	<-ctx.Done()
	logger.Info("gracefully shutting down worker")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := natsConsumer.Close(); err != nil {
		logger.Error("failed to close NATS consumer during shutdown", "error", err)
	}
	if err := metricsServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("failed to shutdown metrics server", "error", err)
	}

	wg.Wait()
	logger.Info("worker shutdown complete")
}

func initDB(cfg config.DatabaseConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.Name,
		cfg.SSLMode,
	)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenCons)
	db.SetMaxIdleConns(cfg.MaxIdleCons)
	db.SetConnMaxLifetime(cfg.ConMaxLifeTime)

	return db, nil
}

func initReconcileTask(ctx context.Context, service port.ReconcileService, every time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(every)
	defer ticker.Stop()

	logger.Info("reconcile task initialized", "interval", every)

	for {
		select {
		case <-ticker.C:
			now := time.Now().UTC()
			logger.Info("reconcile task starting")
			if err := service.RequeueStuckPending(ctx, now); err != nil {
				logger.Error("failed to requeue stuck pending documents", "error", err)
			}
			if err := service.SweepOrphanedObjects(ctx, now); err != nil {
				logger.Error("failed to sweep orphaned objects", "error", err)
			}
			logger.Info("reconcile task completed")
		case <-ctx.Done():
			logger.Info("reconcile task stopped")
			return
		}
	}

}
