package repository

import (
	"context"

	"launch-control-service/internal/domain/entity"
)

// LaunchProvider defines the interface for the external launch data source
type LaunchProvider interface {
	FetchLaunches(ctx context.Context) ([]*entity.ProviderLaunch, error)
}
