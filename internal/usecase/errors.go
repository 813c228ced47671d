package usecase

import "errors"

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternal           = errors.New("internal error")
	ErrNoTargetJobs       = errors.New("at least one target job is required for analysis")
	ErrCatalogUnavailable = errors.New("job catalog is not configured")
)
