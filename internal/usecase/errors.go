package usecase

import (
	"errors"
	"fmt"
)

var (
	// ErrTargetNotFound is returned when a launch targets a planet missing from the catalog
	ErrTargetNotFound = errors.New("no matching planet found")

	// ErrIngestionFailed matches every IngestionError; store errors are never wrapped in one
	ErrIngestionFailed = errors.New("launch data download failed")
)

// IngestionError reports an ingestion run aborted by the launch provider
type IngestionError struct {
	Op  string
	Err error
}

func (e *IngestionError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrIngestionFailed, e.Op, e.Err)
}

func (e *IngestionError) Unwrap() error {
	return e.Err
}

func (e *IngestionError) Is(target error) bool {
	return target == ErrIngestionFailed
}
