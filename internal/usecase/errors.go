package usecase

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

// unavailable tags a repository failure so the transport reports it as a
// data outage instead of an internal error.
func unavailable(op string, err error) error {
	if errors.Is(err, ErrDependencyUnavailable) {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrDependencyUnavailable, op, err)
}
