package evm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	gethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/lstlabs/stakeflow/sdk"
	sdkerrors "github.com/lstlabs/stakeflow/sdk/errors"
)

var _ sdk.FinalityOracle = (*FinalityOracle)(nil)

// txIndexingMessage is what geth answers for a receipt while its transaction index is catching up,
// which includes transactions that are not mined yet.
const txIndexingMessage = "transaction indexing is in progress"

// FinalityOracle reports a transaction as finalized once its receipt exists with a successful
// status.
type FinalityOracle struct {
	client ReceiptReader
}

// NewFinalityOracle creates a new FinalityOracle.
func NewFinalityOracle(client ReceiptReader) *FinalityOracle {
	return &FinalityOracle{client: client}
}

func (o *FinalityOracle) IsFinalized(ctx context.Context, hash string) (bool, error) {
	raw, err := hexutil.Decode(hash)
	if err != nil || len(raw) != common.HashLength {
		return false, fmt.Errorf("invalid transaction hash %q", hash)
	}

	receipt, err := o.client.TransactionReceipt(ctx, common.BytesToHash(raw))
	if errors.Is(err, ethereum.NotFound) || isTxIndexing(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if receipt.Status != gethtypes.ReceiptStatusSuccessful {
		return false, sdkerrors.NewTransactionRevertedError(hash)
	}

	return true, nil
}

func isTxIndexing(err error) bool {
	return err != nil && strings.Contains(err.Error(), txIndexingMessage)
}
