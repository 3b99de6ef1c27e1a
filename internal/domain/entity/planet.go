package entity

import (
	"time"

	"gorm.io/gorm"
)

// Planet represents a habitable planet a launch can target
type Planet struct {
	ID         uint
	KeplerName string
	CreatedAt  time.Time
	UpdatedAt  time.Time
	DeletedAt  gorm.DeletedAt
}
