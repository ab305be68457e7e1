package domain

import "errors"

// Domain errors as sentinel values
var (
	ErrCategoryNotFound = errors.New("category not found")

	ErrInvalidReductionRate  = errors.New("reduction rate must be between 0 and 1")
	ErrInvalidReductionPrice = errors.New("amount reduction requires a reduced price")
)
