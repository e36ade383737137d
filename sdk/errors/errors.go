package sdkerrors

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/rpc"

	"github.com/lstlabs/stakeflow/types"
)

// UserRejectedCode is the EIP-1193 provider error code for a request the user declined.
const UserRejectedCode = 4001

var (
	// ErrUserRejected is returned by signers when the user declined to sign.
	ErrUserRejected = errors.New("user rejected request")

	// ErrTransactionReverted is returned when a transaction was included but reverted.
	ErrTransactionReverted = errors.New("transaction reverted")
)

type InvalidChainIDError struct {
	ReceivedChainID types.ChainSelector
}

func (e *InvalidChainIDError) Error() string {
	return fmt.Sprintf("invalid chain ID: %v", e.ReceivedChainID)
}

func NewInvalidChainIDError(receivedChainID types.ChainSelector) *InvalidChainIDError {
	return &InvalidChainIDError{ReceivedChainID: receivedChainID}
}

// TransactionRevertedError carries the hash of a reverted transaction.
type TransactionRevertedError struct {
	Hash string
}

func (e *TransactionRevertedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrTransactionReverted, e.Hash)
}

func (e *TransactionRevertedError) Unwrap() error {
	return ErrTransactionReverted
}

func NewTransactionRevertedError(hash string) *TransactionRevertedError {
	return &TransactionRevertedError{Hash: hash}
}

// IsUserRejection reports whether err means the user declined the signature request, as opposed
// to any other submission failure.
func IsUserRejection(err error) bool {
	if err == nil {
		return false
	}

	if errors.Is(err, ErrUserRejected) {
		return true
	}

	var rpcErr rpc.Error
	if errors.As(err, &rpcErr) && rpcErr.ErrorCode() == UserRejectedCode {
		return true
	}

	// Browser wallets relayed over JSON-RPC bridges only keep the error name.
	return strings.Contains(err.Error(), "UserRejectedRequestError")
}

// Kind returns a short classification of a submission error for analytics.
func Kind(err error) string {
	var rpcErr rpc.Error

	switch {
	case err == nil:
		return ""
	case IsUserRejection(err):
		return "UserRejectedRequestError"
	case errors.Is(err, ErrTransactionReverted):
		return "TransactionRevertedError"
	case errors.As(err, &rpcErr):
		return fmt.Sprintf("RPCError(%d)", rpcErr.ErrorCode())
	default:
		return "SubmissionError"
	}
}
