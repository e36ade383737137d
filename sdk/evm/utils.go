package evm

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"

	chainsel "github.com/smartcontractkit/chain-selectors"

	sdkerrors "github.com/lstlabs/stakeflow/sdk/errors"
	"github.com/lstlabs/stakeflow/types"
)

const (
	// SimulatedEVMChainID is the chain ID used for simulated chains.
	SimulatedEVMChainID = 1337

	// gasLimitBufferPct is added on top of the estimated gas of a batch.
	gasLimitBufferPct = 20
)

// ContractCaller is the read side of an RPC client. *ethclient.Client satisfies it.
type ContractCaller interface {
	CallContract(ctx context.Context, call ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// TransactorBackend is what the executor needs to price, sign and broadcast a transaction.
// *ethclient.Client satisfies it.
type TransactorBackend interface {
	CodeAt(ctx context.Context, account common.Address, blockNumber *big.Int) ([]byte, error)
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasTipCap(ctx context.Context) (*big.Int, error)
	HeaderByNumber(ctx context.Context, number *big.Int) (*gethtypes.Header, error)
	EstimateGas(ctx context.Context, call ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *gethtypes.Transaction) error
}

// ReceiptReader reads transaction receipts. *ethclient.Client satisfies it.
type ReceiptReader interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*gethtypes.Receipt, error)
}

// GetEVMChainID returns the EVM chain ID for the given chain selector.
//
// To support simulated chains in testing, the isSim flag can be set to true. Simulated chains
// always have EVM chain ID of 1337.
func GetEVMChainID(sel types.ChainSelector, isSim bool) (uint64, error) {
	if isSim {
		return SimulatedEVMChainID, nil
	}

	if _, err := types.GetChainSelectorFamily(sel); err != nil {
		return 0, err
	}

	chainID, err := chainsel.ChainIdFromSelector(uint64(sel))
	if err != nil {
		return 0, sdkerrors.NewInvalidChainIDError(sel)
	}

	return chainID, nil
}

// withGasBuffer adds gasLimitBufferPct percent on top of an estimate.
func withGasBuffer(gas uint64) uint64 {
	return gas + gas*gasLimitBufferPct/100
}
