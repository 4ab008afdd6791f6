package models

import "errors"

// Custom errors
var (
	ErrMatchRequired    = errors.New("match fixture is required")
	ErrNotFound         = errors.New("record not found")
	ErrInvalidDateRange = errors.New("start date must not be after end date")
	ErrInvalidOdds      = errors.New("odds must be greater than 1.0")
)
