package fixedpoint

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAmount is returned when a user-entered amount can not be staked.
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrDenominationMismatch is the panic message prefix when amounts of different
	// denominations are combined.
	ErrDenominationMismatch = errors.New("denomination mismatch")

	// ErrInvalidRate is returned when an exchange rate is not strictly positive.
	ErrInvalidRate = errors.New("invalid exchange rate")
)

// InvalidAmountError describes why an input string was rejected.
type InvalidAmountError struct {
	Input  string
	Reason string
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("%s %q: %s", ErrInvalidAmount, e.Input, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidAmount).
func (e *InvalidAmountError) Unwrap() error {
	return ErrInvalidAmount
}

// NewInvalidAmountError creates a new InvalidAmountError.
func NewInvalidAmountError(input, reason string) *InvalidAmountError {
	return &InvalidAmountError{Input: input, Reason: reason}
}
