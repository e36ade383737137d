package evm

import (
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
)

var (
	// ErrEmptySequence is returned when there is nothing to submit.
	ErrEmptySequence = errors.New("empty call sequence")

	// ErrUnknownContractType is returned when a call names a contract type without a known ABI.
	ErrUnknownContractType = errors.New("unknown contract type")

	// ErrUnknownToken is returned when a balance is requested for a token that is neither the base
	// asset nor the derivative token.
	ErrUnknownToken = errors.New("unknown token")

	// ErrAccountNotDelegated is returned when the depositor's account does not delegate to the
	// batch executor.
	ErrAccountNotDelegated = errors.New("account is not delegated to the batch executor")
)

// AccountNotDelegatedError is returned when an account's code is not the EIP-7702 designator of
// the expected delegate.
type AccountNotDelegatedError struct {
	Account  common.Address
	Delegate common.Address
	Code     []byte
}

func NewAccountNotDelegatedError(account, delegate common.Address, code []byte) *AccountNotDelegatedError {
	return &AccountNotDelegatedError{Account: account, Delegate: delegate, Code: code}
}

func (e *AccountNotDelegatedError) Error() string {
	if got, ok := gethtypes.ParseDelegation(e.Code); ok {
		return fmt.Sprintf("%s: %s delegates to %s, want %s", ErrAccountNotDelegated, e.Account.Hex(), got.Hex(), e.Delegate.Hex())
	}
	if len(e.Code) == 0 {
		return fmt.Sprintf("%s: %s has no code, want delegation to %s", ErrAccountNotDelegated, e.Account.Hex(), e.Delegate.Hex())
	}

	return fmt.Sprintf("%s: %s carries contract code", ErrAccountNotDelegated, e.Account.Hex())
}

func (e *AccountNotDelegatedError) Unwrap() error {
	return ErrAccountNotDelegated
}
