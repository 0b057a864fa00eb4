package usecase

import (
	"errors"
	"fmt"
)

// Error kinds returned by the services. Callers classify with errors.Is;
// the wrapped message carries the detail.
var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidDateRange = errors.New("check-out must be after check-in")
	ErrForbidden        = errors.New("forbidden")
	ErrUnauthenticated  = errors.New("authentication required")
	ErrStoreFailure     = errors.New("store failure")

	ErrInvalidInput       = errors.New("invalid input")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

func storeFailure(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStoreFailure, err)
}

func notFound(what, id string) error {
	return fmt.Errorf("%s %s: %w", what, id, ErrNotFound)
}

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
