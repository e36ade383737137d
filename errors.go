package stakeflow

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"

	"github.com/lstlabs/stakeflow/fixedpoint"
	sdkerrors "github.com/lstlabs/stakeflow/sdk/errors"
	"github.com/lstlabs/stakeflow/types"
)

var (
	// ErrInvalidAmount is returned when the entered amount cannot be staked.
	ErrInvalidAmount = fixedpoint.ErrInvalidAmount

	// ErrUserRejected is returned when the user declined to sign the transaction.
	ErrUserRejected = sdkerrors.ErrUserRejected

	// ErrUnknownPlatform is returned for a lending platform tag that is not supported.
	ErrUnknownPlatform = types.ErrUnknownPlatform

	ErrNoWalletConnected   = errors.New("no wallet connected")
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrPreviewUnavailable  = errors.New("preview deposit unavailable")
	ErrSubmissionFailed    = errors.New("submission failed")
	ErrSubmissionInFlight  = errors.New("a submission is already in flight")
	ErrMarketNotConfigured = errors.New("lending market not configured")
	ErrAmountRequired      = errors.New("a stake amount is required to select a lending platform")
	ErrInvalidPercentage   = errors.New("quick amount percentage must be 25, 50, 75 or 100")
)

// InsufficientBalanceError is returned when the requested amount exceeds the wallet balance.
type InsufficientBalanceError struct {
	Requested fixedpoint.Amount
	Available fixedpoint.Amount
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("%s: requested %s %s, available %s %s", ErrInsufficientBalance,
		e.Requested, e.Requested.Denomination().Symbol, e.Available, e.Available.Denomination().Symbol)
}

func (e *InsufficientBalanceError) Unwrap() error {
	return ErrInsufficientBalance
}

func NewInsufficientBalanceError(requested, available fixedpoint.Amount) *InsufficientBalanceError {
	return &InsufficientBalanceError{Requested: requested, Available: available}
}

// PreviewUnavailableError is returned when the vault preview could not be read or returned an
// unusable amount. No call sequence is produced.
type PreviewUnavailableError struct {
	Vault common.Address
	Cause error
}

func (e *PreviewUnavailableError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("%s for vault %s", ErrPreviewUnavailable, e.Vault.Hex())
	}

	return fmt.Sprintf("%s for vault %s: %v", ErrPreviewUnavailable, e.Vault.Hex(), e.Cause)
}

func (e *PreviewUnavailableError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrPreviewUnavailable}
	}

	return []error{ErrPreviewUnavailable, e.Cause}
}

func NewPreviewUnavailableError(vault common.Address, cause error) *PreviewUnavailableError {
	return &PreviewUnavailableError{Vault: vault, Cause: cause}
}

// SubmissionFailedError is returned when the transaction could not be submitted for any reason
// other than the user declining it.
type SubmissionFailedError struct {
	Kind  string
	Cause error
}

func (e *SubmissionFailedError) Error() string {
	return fmt.Sprintf("%s (%s): %v", ErrSubmissionFailed, e.Kind, e.Cause)
}

func (e *SubmissionFailedError) Unwrap() []error {
	return []error{ErrSubmissionFailed, e.Cause}
}

func NewSubmissionFailedError(kind string, cause error) *SubmissionFailedError {
	return &SubmissionFailedError{Kind: kind, Cause: cause}
}

// MarketNotConfiguredError is returned when a lending platform is selected but no market address
// is configured for it.
type MarketNotConfiguredError struct {
	Platform types.Platform
}

func (e *MarketNotConfiguredError) Error() string {
	return fmt.Sprintf("%s for platform %s", ErrMarketNotConfigured, e.Platform.Name())
}

func (e *MarketNotConfiguredError) Unwrap() error {
	return ErrMarketNotConfigured
}

func NewMarketNotConfiguredError(p types.Platform) *MarketNotConfiguredError {
	return &MarketNotConfiguredError{Platform: p}
}
