package usecase

import (
	"context"
	"fmt"

	"launch-control-service/internal/domain/entity"
	"launch-control-service/internal/domain/repository"
	"launch-control-service/pkg/logger"
	"launch-control-service/pkg/metrics"
)

// DefaultFlightNumber is the baseline when the store holds no launches
const DefaultFlightNumber = 100

// DefaultCustomers is assigned to every scheduled launch
var DefaultCustomers = []string{"NASA"}

// LaunchManager handles the launch lifecycle: scheduling, aborting and listing
type LaunchManager struct {
	launchRepo repository.LaunchRepository
	planetRepo repository.PlanetRepository
	metrics    *metrics.Metrics
	logger     logger.Logger
}

// NewLaunchManager creates a new launch manager
func NewLaunchManager(
	launchRepo repository.LaunchRepository,
	planetRepo repository.PlanetRepository,
	metrics *metrics.Metrics,
	logger logger.Logger,
) *LaunchManager {
	return &LaunchManager{
		launchRepo: launchRepo,
		planetRepo: planetRepo,
		metrics:    metrics,
		logger:     logger,
	}
}

// ExistsLaunch reports whether a launch with the flight number is stored
func (lm *LaunchManager) ExistsLaunch(ctx context.Context, flightNumber int) (bool, error) {
	launch, err := lm.launchRepo.FindByFlightNumber(ctx, flightNumber)
	if err != nil {
		return false, err
	}
	return launch != nil, nil
}

// ListLaunches returns stored launches without storage bookkeeping fields
func (lm *LaunchManager) ListLaunches(ctx context.Context, query entity.LaunchQuery) ([]*entity.Launch, error) {
	launches, err := lm.launchRepo.FindAll(ctx, query)
	if err != nil {
		lm.metrics.ErrorsCount.WithLabelValues("list_launches").Inc()
		return nil, err
	}
	return launches, nil
}

// ScheduleLaunch validates the target planet and stores a new upcoming launch
// under the next flight number. Two concurrent calls may pick the same flight
// number, in which case the later write wins.
func (lm *LaunchManager) ScheduleLaunch(ctx context.Context, input entity.LaunchInput) (*entity.Launch, error) {
	planet, err := lm.planetRepo.FindByName(ctx, input.Target)
	if err != nil {
		lm.metrics.ErrorsCount.WithLabelValues("schedule_launch").Inc()
		return nil, err
	}
	if planet == nil {
		lm.logger.Warn("Launch target not in planet catalog", "target", input.Target)
		return nil, fmt.Errorf("%w: %s", ErrTargetNotFound, input.Target)
	}

	flightNumber, err := lm.nextFlightNumber(ctx)
	if err != nil {
		lm.metrics.ErrorsCount.WithLabelValues("schedule_launch").Inc()
		return nil, err
	}

	launch := &entity.Launch{
		FlightNumber: flightNumber,
		Mission:      input.Mission,
		Rocket:       input.Rocket,
		LaunchDate:   input.LaunchDate,
		Target:       input.Target,
		Customers:    append([]string(nil), DefaultCustomers...),
		Upcoming:     true,
		Success:      entity.Bool(true),
	}

	if err := lm.launchRepo.UpsertByFlightNumber(ctx, launch); err != nil {
		lm.metrics.ErrorsCount.WithLabelValues("schedule_launch").Inc()
		return nil, err
	}

	lm.metrics.LaunchesScheduled.Inc()
	lm.logger.Info("Launch scheduled",
		"flightNumber", launch.FlightNumber,
		"mission", launch.Mission,
		"target", launch.Target)

	return launch, nil
}

// AbortLaunch marks the launch as no longer upcoming and unsuccessful. It returns
// false when no launch was modified.
func (lm *LaunchManager) AbortLaunch(ctx context.Context, flightNumber int) (bool, error) {
	aborted, err := lm.launchRepo.UpdateByFlightNumber(ctx, flightNumber, entity.LaunchPatch{
		Upcoming: entity.Bool(false),
		Success:  entity.Bool(false),
	})
	if err != nil {
		lm.metrics.ErrorsCount.WithLabelValues("abort_launch").Inc()
		return false, err
	}

	if aborted {
		lm.metrics.LaunchesAborted.Inc()
		lm.logger.Info("Launch aborted", "flightNumber", flightNumber)
	} else {
		lm.logger.Warn("Launch not aborted", "flightNumber", flightNumber)
	}

	return aborted, nil
}

func (lm *LaunchManager) nextFlightNumber(ctx context.Context) (int, error) {
	latest, err := lm.launchRepo.FindLatestByFlightNumber(ctx)
	if err != nil {
		return 0, err
	}
	if latest == nil {
		return DefaultFlightNumber + 1, nil
	}
	return latest.FlightNumber + 1, nil
}
