package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrAmbiguous             = errors.New("ambiguous match")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
