package domain

import (
	"errors"
	"fmt"
)

var (
	ErrForbidden          = errors.New("forbidden")
	ErrInvalidState       = errors.New("invalid booking state")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrInsufficientPoints = errors.New("insufficient points")
	ErrTooLate            = errors.New("refund window has closed")
	ErrNotFound           = errors.New("not found")
	ErrValidation         = errors.New("validation error")

	ErrRewardsNotFound = fmt.Errorf("rewards: %w", ErrNotFound)
)

// Validationf builds an ErrValidation carrying a message for the caller.
func Validationf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
