// Command ingest re-downloads the full launch history and upserts it into the
// launch store. Safe to run repeatedly; it repairs a partially loaded store.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"launch-control-service/internal/infrastructure/config"
	"launch-control-service/internal/infrastructure/oauth"
	"launch-control-service/internal/infrastructure/persistence"
	"launch-control-service/internal/interface/repository"
	"launch-control-service/internal/usecase"
	"launch-control-service/pkg/logger"
	"launch-control-service/pkg/metrics"
)

func main() {
	onlyIfEmpty := flag.Bool("if-empty", false, "skip ingestion when flight number 1 is already stored")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewLogger().Fatal("Failed to load config", "error", err)
	}

	log := logger.NewLoggerWithLevel(cfg.LogLevel)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

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
	defer persistence.DisconnectMongo(context.Background(), mongoClient, log)

	db := persistence.GetDatabase(mongoClient, cfg.MongoDB)
	if err := repository.EnsureLaunchIndexes(ctx, db); err != nil {
		log.Fatal("Failed to create launch indexes", "error", err)
	}

	providerAuth := oauth.NewProviderOAuth(
		cfg.LaunchProviderToken,
		cfg.LaunchProviderClientID,
		cfg.LaunchProviderClientSecret,
		cfg.LaunchProviderTokenURL,
		log,
	)
	ingestor := usecase.NewLaunchIngestor(
		repository.NewMongoLaunchRepository(db),
		repository.NewSpaceXRepository(providerAuth.HTTPClient(ctx, cfg.LaunchProviderTimeout), cfg.LaunchProviderURL, log),
		metrics.NewMetrics(cfg.MetricsNamespace),
		log,
	)

	if *onlyIfEmpty {
		if err := ingestor.LoadIfEmpty(ctx); err != nil {
			log.Fatal("Launch ingestion failed", "error", err)
		}
		return
	}

	count, err := ingestor.Populate(ctx)
	if err != nil {
		log.Fatal("Launch ingestion failed", "saved", count, "error", err)
	}
	log.Info("Launch ingestion finished", "saved", count)
}
