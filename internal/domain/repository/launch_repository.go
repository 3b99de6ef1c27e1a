package repository

import (
	"context"

	"launch-control-service/internal/domain/entity"
)

// LaunchRepository defines the interface for launch record storage.
// Flight number is the unique business key; lookups return nil, nil when nothing matches.
type LaunchRepository interface {
	FindByFlightNumber(ctx context.Context, flightNumber int) (*entity.Launch, error)
	FindAll(ctx context.Context, query entity.LaunchQuery) ([]*entity.Launch, error)
	FindLatestByFlightNumber(ctx context.Context) (*entity.Launch, error)
	UpsertByFlightNumber(ctx context.Context, launch *entity.Launch) error
	UpdateByFlightNumber(ctx context.Context, flightNumber int, patch entity.LaunchPatch) (bool, error)
}
