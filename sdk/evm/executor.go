package evm

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"

	"github.com/lstlabs/stakeflow/sdk"
	sdkerrors "github.com/lstlabs/stakeflow/sdk/errors"
	"github.com/lstlabs/stakeflow/types"
)

var _ sdk.Submitter = (*Executor)(nil)

// Executor submits a call sequence as a single EIP-7702 transaction: the depositor's account,
// delegated to a batch executor, calls executeBatch on itself so every call runs with the
// depositor as msg.sender and the batch reverts as a whole.
//
// The account must already delegate to the batch executor at delegate. An undelegated account
// would accept the self call as a no-op, so Submit refuses to sign in that case.
type Executor struct {
	*Encoder
	client   TransactorBackend
	auth     *bind.TransactOpts
	chainID  *big.Int
	delegate common.Address
}

// NewExecutor creates a new Executor for EVM chains
func NewExecutor(
	encoder *Encoder, client TransactorBackend, auth *bind.TransactOpts, chainID uint64, delegate common.Address,
) *Executor {
	return &Executor{
		Encoder:  encoder,
		client:   client,
		auth:     auth,
		chainID:  new(big.Int).SetUint64(chainID),
		delegate: delegate,
	}
}

// Submit signs and broadcasts the batch. Errors before the signer is reached are returned;
// signing and broadcast failures are reported on the handle.
func (e *Executor) Submit(ctx context.Context, calls types.CallSequence) (types.TransactionHandle, error) {
	if e.Encoder == nil {
		return types.TransactionHandle{}, errors.New("Executor was created without an encoder")
	}

	data, err := e.EncodeBatch(calls)
	if err != nil {
		return types.TransactionHandle{}, err
	}

	from := e.auth.From
	if err = e.checkDelegation(ctx, from); err != nil {
		return types.TransactionHandle{}, err
	}

	nonce, err := e.client.PendingNonceAt(ctx, from)
	if err != nil {
		return types.TransactionHandle{}, fmt.Errorf("failed to get nonce: %w", err)
	}

	tip, err := e.client.SuggestGasTipCap(ctx)
	if err != nil {
		return types.TransactionHandle{}, fmt.Errorf("failed to suggest gas tip: %w", err)
	}

	head, err := e.client.HeaderByNumber(ctx, nil)
	if err != nil {
		return types.TransactionHandle{}, fmt.Errorf("failed to get latest header: %w", err)
	}

	feeCap := new(big.Int).Set(tip)
	if head.BaseFee != nil {
		feeCap.Add(feeCap, new(big.Int).Mul(head.BaseFee, big.NewInt(2)))
	}

	gas, err := e.client.EstimateGas(ctx, ethereum.CallMsg{From: from, To: &from, Data: data})
	if err != nil {
		return types.TransactionHandle{}, fmt.Errorf("failed to estimate gas: %w", err)
	}

	tx := gethtypes.NewTx(&gethtypes.DynamicFeeTx{
		ChainID:   e.chainID,
		Nonce:     nonce,
		GasTipCap: tip,
		GasFeeCap: feeCap,
		Gas:       withGasBuffer(gas),
		To:        &from,
		Value:     big.NewInt(0),
		Data:      data,
	})

	signed, err := e.auth.Signer(from, tx)
	if err != nil {
		return failedHandle("", err), nil
	}

	if err := e.client.SendTransaction(ctx, signed); err != nil {
		return failedHandle(signed.Hash().Hex(), err), nil
	}

	return types.TransactionHandle{
		Hash:           signed.Hash().Hex(),
		Pending:        true,
		RawTransaction: signed,
	}, nil
}

// checkDelegation requires the code of account to be the EIP-7702 designator of e.delegate.
func (e *Executor) checkDelegation(ctx context.Context, account common.Address) error {
	code, err := e.client.CodeAt(ctx, account, nil)
	if err != nil {
		return fmt.Errorf("failed to get code of %s: %w", account.Hex(), err)
	}

	if got, ok := gethtypes.ParseDelegation(code); !ok || got != e.delegate {
		return NewAccountNotDelegatedError(account, e.delegate, code)
	}

	return nil
}

func failedHandle(hash string, err error) types.TransactionHandle {
	return types.TransactionHandle{
		Hash: hash,
		Err: &types.SubmissionError{
			Kind:          sdkerrors.Kind(err),
			UserRejection: sdkerrors.IsUserRejection(err),
			Cause:         err,
		},
	}
}
