package usecase

import (
	"context"
	"time"

	"launch-control-service/internal/domain/repository"
	"launch-control-service/pkg/logger"
	"launch-control-service/pkg/metrics"
)

// firstFlightNumber marks historical data as loaded when present
const firstFlightNumber = 1

// LaunchIngestor loads launch history from the launch provider into the launch store
type LaunchIngestor struct {
	launchRepo repository.LaunchRepository
	provider   repository.LaunchProvider
	metrics    *metrics.Metrics
	logger     logger.Logger
}

// NewLaunchIngestor creates a new launch ingestor
func NewLaunchIngestor(
	launchRepo repository.LaunchRepository,
	provider repository.LaunchProvider,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *LaunchIngestor {
	return &LaunchIngestor{
		launchRepo: launchRepo,
		provider:   provider,
		metrics:    metrics,
		logger:     logger,
	}
}

// LoadIfEmpty populates the store unless flight number 1 is already present.
// It is meant to run once during startup, never concurrently.
func (li *LaunchIngestor) LoadIfEmpty(ctx context.Context) error {
	firstLaunch, err := li.launchRepo.FindByFlightNumber(ctx, firstFlightNumber)
	if err != nil {
		li.logger.Error("Failed to check for existing launch data", "error", err)
		li.metrics.ErrorsCount.WithLabelValues("load_launches").Inc()
		return err
	}

	if firstLaunch != nil {
		li.logger.Info("Launch data already loaded")
		return nil
	}

	_, err = li.Populate(ctx)
	return err
}

// Populate downloads the full launch history and upserts every launch by flight
// number. Each upsert commits on its own, so a failed run leaves earlier launches
// in place and a later run repairs the rest.
func (li *LaunchIngestor) Populate(ctx context.Context) (int, error) {
	start := time.Now()
	defer func() {
		li.metrics.IngestionTime.Observe(time.Since(start).Seconds())
	}()

	providerLaunches, err := li.provider.FetchLaunches(ctx)
	if err != nil {
		li.logger.Error("Problem downloading launch data", "error", err)
		li.metrics.ErrorsCount.WithLabelValues("populate_launches").Inc()
		return 0, &IngestionError{Op: "fetch launches", Err: err}
	}

	saved := 0
	for _, providerLaunch := range providerLaunches {
		launch := providerLaunch.ToLaunch()

		if err := li.launchRepo.UpsertByFlightNumber(ctx, launch); err != nil {
			li.logger.Error("Failed to save launch",
				"flightNumber", launch.FlightNumber,
				"saved", saved,
				"error", err)
			li.metrics.ErrorsCount.WithLabelValues("populate_launches").Inc()
			return saved, err
		}

		li.logger.Debug("Launch saved",
			"flightNumber", launch.FlightNumber,
			"mission", launch.Mission)
		li.metrics.LaunchesIngested.Inc()
		saved++
	}

	li.logger.Info("Launch data loaded", "count", saved, "duration", time.Since(start).String())
	return saved, nil
}
