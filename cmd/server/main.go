package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"launch-control-service/internal/infrastructure/config"
	"launch-control-service/internal/infrastructure/oauth"
	"launch-control-service/internal/infrastructure/persistence"
	"launch-control-service/internal/interface/handler"
	"launch-control-service/internal/interface/repository"
	"launch-control-service/internal/usecase"
	"launch-control-service/pkg/logger"
	"launch-control-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger().Fatal("Failed to load config", "error", err)
	}

	log := logger.NewLoggerWithLevel(cfg.LogLevel)
	defer log.Sync()
	log.Info("Starting Launch Control Service", "version", cfg.AppVersion)

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up MongoDB connection
	log.Info("Connecting to MongoDB")
	mongoClient, err := persistence.NewMongoClient(ctx, persistence.MongoConfig{
		URI:            cfg.MongoURI,
		Username:       cfg.MongoUser,
		Password:       cfg.MongoPassword,
		AppName:        "launch-control-service",
		ConnectTimeout: cfg.MongoConnectTimeout,
	})
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	db := persistence.GetDatabase(mongoClient, cfg.MongoDB)

	if err := repository.EnsureLaunchIndexes(ctx, db); err != nil {
		log.Fatal("Failed to create launch indexes", "error", err)
	}

	// Set up PostgreSQL connection for the planet catalog
	log.Info("Connecting to PostgreSQL")
	gormDB, err := persistence.NewPostgresDB(cfg.PostgresURI)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", "error", err)
	}

	appMetrics := metrics.NewMetrics(cfg.MetricsNamespace)

	// Set up repositories
	launchRepo := repository.NewMongoLaunchRepository(db)
	planetRepo := repository.NewGormPlanetRepository(gormDB)

	providerAuth := oauth.NewProviderOAuth(
		cfg.LaunchProviderToken,
		cfg.LaunchProviderClientID,
		cfg.LaunchProviderClientSecret,
		cfg.LaunchProviderTokenURL,
		log,
	)
	launchProvider := repository.NewSpaceXRepository(
		providerAuth.HTTPClient(ctx, cfg.LaunchProviderTimeout),
		cfg.LaunchProviderURL,
		log.With("component", "spacex"),
	)

	// Set up use cases
	ingestor := usecase.NewLaunchIngestor(launchRepo, launchProvider, appMetrics, log.With("component", "ingestor"))
	launchManager := usecase.NewLaunchManager(launchRepo, planetRepo, appMetrics, log.With("component", "launches"))

	// Never serve requests against an incomplete launch history
	if err := ingestor.LoadIfEmpty(ctx); err != nil {
		log.Fatal("Failed to load launch data", "error", err)
	}

	// Set up HTTP server
	mux := http.NewServeMux()
	handler.NewLaunchHandler(launchManager, log).Register(mux)
	handler.NewPlanetHandler(planetRepo, log).Register(mux)
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("Healthy"))
	})

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel()

	persistence.DisconnectMongo(shutdownCtx, mongoClient, log)

	if sqlDB, err := gormDB.DB(); err == nil {
		sqlDB.Close()
	}

	log.Info("Launch Control Service stopped")
}
