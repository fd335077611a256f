package apperrors

import "errors"

var (
	// ErrInvalidArgument marks caller input that is rejected before any computation starts.
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidConfig   = errors.New("invalid config")
	ErrNotFound        = errors.New("not found")
)
