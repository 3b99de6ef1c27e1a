package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"launch-control-service/internal/domain/entity"
	"launch-control-service/internal/domain/repository"

	"gorm.io/gorm"
)

// GormPlanetRepository implements the PlanetRepository interface
type GormPlanetRepository struct {
	db *gorm.DB
}

// NewGormPlanetRepository creates a new GORM planet repository
func NewGormPlanetRepository(db *gorm.DB) repository.PlanetRepository {
	return &GormPlanetRepository{
		db: db,
	}
}

// Planets GORM model for database mapping
type Planets struct {
	ID         uint           `gorm:"primaryKey"`
	KeplerName string         `gorm:"column:kepler_name;unique"`
	DeletedAt  gorm.DeletedAt `gorm:"index"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName overrides the default table name
func (Planets) TableName() string {
	return "planets"
}

// FindByName finds a planet by its exact Kepler name
func (r *GormPlanetRepository) FindByName(ctx context.Context, name string) (*entity.Planet, error) {
	var planet Planets
	result := r.db.WithContext(ctx).Where("kepler_name = ?", name).First(&planet)

	if errors.Is(result.Error, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if result.Error != nil {
		return nil, fmt.Errorf("failed to find planet %q: %w", name, result.Error)
	}

	return toPlanetEntity(planet), nil
}

// FindAll returns the whole catalog ordered by name
func (r *GormPlanetRepository) FindAll(ctx context.Context) ([]*entity.Planet, error) {
	var planets []Planets
	result := r.db.WithContext(ctx).Order("kepler_name").Find(&planets)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to list planets: %w", result.Error)
	}

	entities := make([]*entity.Planet, 0, len(planets))
	for _, planet := range planets {
		entities = append(entities, toPlanetEntity(planet))
	}
	return entities, nil
}

// Convert GORM model to domain entity
func toPlanetEntity(planet Planets) *entity.Planet {
	return &entity.Planet{
		ID:         planet.ID,
		KeplerName: planet.KeplerName,
		CreatedAt:  planet.CreatedAt,
		UpdatedAt:  planet.UpdatedAt,
		DeletedAt:  planet.DeletedAt,
	}
}
