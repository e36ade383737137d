package sdk

import (
	"context"

	"github.com/lstlabs/stakeflow/types"
)

// Submitter signs and broadcasts a call sequence as one atomic transaction.
//
// This must be implemented by any chain. A declined signature request is reported through the
// handle's Err with UserRejection set, not through the returned error; the returned error is
// reserved for failures before the wallet was reached.
type Submitter interface {
	Submit(ctx context.Context, calls types.CallSequence) (types.TransactionHandle, error)
}

// FinalityOracle reports whether a broadcast transaction has been included and accepted.
type FinalityOracle interface {
	// IsFinalized returns false while the transaction is unknown or unconfirmed. A transaction that
	// was included but reverted returns an error wrapping sdkerrors.ErrTransactionReverted.
	IsFinalized(ctx context.Context, hash string) (bool, error)
}
