package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrValidation       = errors.New("validation failed")
	ErrPermissionDenied = errors.New("permission denied")
	ErrConflictOrStale  = errors.New("order status changed concurrently")
	ErrTransientIO      = errors.New("transient i/o failure")

	ErrUserUnknown     = fmt.Errorf("user profile missing: %w", ErrNotFound)
	ErrItemUnavailable = fmt.Errorf("food is missing or inactive: %w", ErrNotFound)
	ErrEmptyCart       = errors.New("cart is empty")
	ErrAddressMissing  = fmt.Errorf("delivery address missing: %w", ErrNotFound)
	ErrNotifyFailed    = fmt.Errorf("notification not delivered: %w", ErrTransientIO)
)

// OutOfZoneError reports a point beyond the serviceable radius.
type OutOfZoneError struct {
	DistanceKm float64
	MaxKm      float64
}

func (e *OutOfZoneError) Error() string {
	return fmt.Sprintf("location is %.1f km from the city centre, limit is %.1f km", e.DistanceKm, e.MaxKm)
}

func (e *OutOfZoneError) Unwrap() error { return ErrValidation }
