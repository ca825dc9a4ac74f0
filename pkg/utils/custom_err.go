package utils

import "errors"

var (
	ErrPackageNotFound    = errors.New("package not found")
	ErrSessionNotFound    = errors.New("quiz session not found or expired")
	ErrInvalidBudgetTier  = errors.New("invalid budget tier")
	ErrUnknownDestination = errors.New("unknown destination")
	ErrQuizIncomplete     = errors.New("quiz answers not submitted yet")
	ErrCatalogError       = errors.New("catalog error")
)
