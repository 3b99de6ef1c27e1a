package repository

import (
	"context"

	"launch-control-service/internal/domain/entity"
)

// PlanetRepository defines the interface for the planet catalog
type PlanetRepository interface {
	FindByName(ctx context.Context, name string) (*entity.Planet, error)
	FindAll(ctx context.Context) ([]*entity.Planet, error)
}
