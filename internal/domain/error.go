package domain

import "errors"

var (
	// Common domain errors
	ErrNotFound         = errors.New("entity not found")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrProductNotFound  = errors.New("product not found")
	ErrLookupFailed     = errors.New("product lookup failed")
	ErrOneTimeFrequency = errors.New("one-time frequency cannot be subscribed")
	ErrInvalidTheme     = errors.New("invalid theme value")
)
