package evm_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/lstlabs/stakeflow/internal/testutils"
	"github.com/lstlabs/stakeflow/internal/testutils/chaintest"
	"github.com/lstlabs/stakeflow/sdk/evm"
	evm_mocks "github.com/lstlabs/stakeflow/sdk/evm/mocks"
	"github.com/lstlabs/stakeflow/types"
)

func depositCalls(owner common.Address) types.CallSequence {
	amount := big.NewInt(1_000_000)

	return types.CallSequence{
		{
			Target:       chaintest.BaseToken,
			ContractType: types.ContractERC20,
			Entrypoint:   types.EntrypointApprove,
			Args:         []any{chaintest.Vault, amount},
		},
		{
			Target:       chaintest.Vault,
			ContractType: types.ContractVault,
			Entrypoint:   types.EntrypointDeposit,
			Args:         []any{amount, owner},
		},
	}
}

func mockDelegated(m *evm_mocks.TransactorBackend) {
	m.EXPECT().CodeAt(mock.Anything, mock.Anything, (*big.Int)(nil)).
		Return(gethtypes.AddressToDelegation(chaintest.BatchDelegate), nil)
}

func mockPricing(m *evm_mocks.TransactorBackend) {
	mockDelegated(m)
	m.EXPECT().PendingNonceAt(mock.Anything, mock.Anything).Return(uint64(7), nil)
	m.EXPECT().SuggestGasTipCap(mock.Anything).Return(big.NewInt(2), nil)
	m.EXPECT().HeaderByNumber(mock.Anything, mock.Anything).Return(&gethtypes.Header{BaseFee: big.NewInt(10)}, nil)
	m.EXPECT().EstimateGas(mock.Anything, mock.Anything).Return(uint64(50_000), nil)
}

func TestNewExecutor(t *testing.T) {
	t.Parallel()

	encoder := evm.NewEncoder()
	client := evm_mocks.NewTransactorBackend(t)
	auth := &bind.TransactOpts{}

	executor := evm.NewExecutor(encoder, client, auth, chaintest.Chain1EVMID, chaintest.BatchDelegate)

	assert.Equal(t, encoder, executor.Encoder, "expected Encoder to be set correctly")
}

func TestExecutor_Submit(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	signer := testutils.NewECDSASigner()
	from := signer.Address()
	chainID := new(big.Int).SetUint64(chaintest.Chain1EVMID)

	client := evm_mocks.NewTransactorBackend(t)
	mockPricing(client)

	var sent *gethtypes.Transaction
	client.EXPECT().SendTransaction(mock.Anything, mock.Anything).
		Run(func(_ context.Context, tx *gethtypes.Transaction) { sent = tx }).
		Return(nil)

	executor := evm.NewExecutor(evm.NewEncoder(), client, signer.TransactOpts(chainID), chaintest.Chain1EVMID, chaintest.BatchDelegate)
	handle, err := executor.Submit(ctx, depositCalls(from))
	require.NoError(t, err)

	require.NotNil(t, sent)
	assert.Nil(t, handle.Err)
	assert.True(t, handle.Pending)
	assert.Equal(t, sent.Hash().Hex(), handle.Hash)
	assert.Equal(t, sent, handle.RawTransaction)

	// The batch is a self call from the delegated account.
	assert.Equal(t, from, *sent.To())
	assert.Equal(t, uint8(gethtypes.DynamicFeeTxType), sent.Type())
	assert.Equal(t, uint64(7), sent.Nonce())
	assert.Equal(t, uint64(60_000), sent.Gas())
	assert.Equal(t, big.NewInt(2), sent.GasTipCap())
	assert.Equal(t, big.NewInt(22), sent.GasFeeCap())
	assert.Zero(t, sent.Value().Sign())

	sender, err := gethtypes.Sender(gethtypes.LatestSignerForChainID(chainID), sent)
	require.NoError(t, err)
	assert.Equal(t, from, sender)
}

func TestExecutor_Submit_UserRejected(t *testing.T) {
	t.Parallel()

	from := chaintest.Depositor
	client := evm_mocks.NewTransactorBackend(t)
	mockPricing(client)

	executor := evm.NewExecutor(evm.NewEncoder(), client, testutils.RejectingTransactOpts(from), chaintest.Chain1EVMID, chaintest.BatchDelegate)
	handle, err := executor.Submit(context.Background(), depositCalls(from))
	require.NoError(t, err)

	require.NotNil(t, handle.Err)
	assert.True(t, handle.Err.UserRejection)
	assert.Equal(t, "UserRejectedRequestError", handle.Err.Kind)
	assert.False(t, handle.HasHash())
	assert.False(t, handle.Pending)
}

func TestExecutor_Submit_SendFailure(t *testing.T) {
	t.Parallel()

	signer := testutils.NewECDSASigner()
	chainID := new(big.Int).SetUint64(chaintest.Chain1EVMID)

	client := evm_mocks.NewTransactorBackend(t)
	mockPricing(client)
	client.EXPECT().SendTransaction(mock.Anything, mock.Anything).Return(errors.New("insufficient funds for gas"))

	executor := evm.NewExecutor(evm.NewEncoder(), client, signer.TransactOpts(chainID), chaintest.Chain1EVMID, chaintest.BatchDelegate)
	handle, err := executor.Submit(context.Background(), depositCalls(signer.Address()))
	require.NoError(t, err)

	require.NotNil(t, handle.Err)
	assert.False(t, handle.Err.UserRejection)
	assert.Equal(t, "SubmissionError", handle.Err.Kind)
	assert.ErrorContains(t, handle.Err, "insufficient funds")
	assert.True(t, handle.HasHash())
	assert.False(t, handle.Pending)
}

func TestExecutor_Submit_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		encoder   *evm.Encoder
		calls     types.CallSequence
		mockSetup func(m *evm_mocks.TransactorBackend)
		wantErr   string
	}{
		{
			name:      "failure: nil encoder",
			calls:     depositCalls(chaintest.Depositor),
			mockSetup: func(*evm_mocks.TransactorBackend) {},
			wantErr:   "Executor was created without an encoder",
		},
		{
			name:      "failure: empty sequence",
			encoder:   evm.NewEncoder(),
			mockSetup: func(*evm_mocks.TransactorBackend) {},
			wantErr:   "empty call sequence",
		},
		{
			name:    "failure: nonce",
			encoder: evm.NewEncoder(),
			calls:   depositCalls(chaintest.Depositor),
			mockSetup: func(m *evm_mocks.TransactorBackend) {
				mockDelegated(m)
				m.EXPECT().PendingNonceAt(mock.Anything, mock.Anything).Return(uint64(0), errors.New("timeout"))
			},
			wantErr: "failed to get nonce: timeout",
		},
		{
			name:    "failure: gas estimation",
			encoder: evm.NewEncoder(),
			calls:   depositCalls(chaintest.Depositor),
			mockSetup: func(m *evm_mocks.TransactorBackend) {
				mockDelegated(m)
				m.EXPECT().PendingNonceAt(mock.Anything, mock.Anything).Return(uint64(0), nil)
				m.EXPECT().SuggestGasTipCap(mock.Anything).Return(big.NewInt(1), nil)
				m.EXPECT().HeaderByNumber(mock.Anything, mock.Anything).Return(&gethtypes.Header{}, nil)
				m.EXPECT().EstimateGas(mock.Anything, mock.Anything).Return(uint64(0), errors.New("execution reverted"))
			},
			wantErr: "failed to estimate gas: execution reverted",
		},
		{
			name:    "failure: code lookup",
			encoder: evm.NewEncoder(),
			calls:   depositCalls(chaintest.Depositor),
			mockSetup: func(m *evm_mocks.TransactorBackend) {
				m.EXPECT().CodeAt(mock.Anything, chaintest.Depositor, (*big.Int)(nil)).Return(nil, errors.New("timeout"))
			},
			wantErr: "failed to get code of " + chaintest.Depositor.Hex() + ": timeout",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := evm_mocks.NewTransactorBackend(t)
			tt.mockSetup(client)

			executor := evm.NewExecutor(tt.encoder, client, &bind.TransactOpts{From: chaintest.Depositor}, chaintest.Chain1EVMID, chaintest.BatchDelegate)
			_, err := executor.Submit(context.Background(), tt.calls)
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestExecutor_Submit_NotDelegated(t *testing.T) {
	t.Parallel()

	other := common.HexToAddress("0x00000000000000000000000000000000000000ff")

	tests := []struct {
		name    string
		code    []byte
		wantErr string
	}{
		{
			name:    "no code",
			code:    nil,
			wantErr: "has no code",
		},
		{
			name:    "delegated elsewhere",
			code:    gethtypes.AddressToDelegation(other),
			wantErr: "delegates to " + other.Hex(),
		},
		{
			name:    "contract code",
			code:    common.FromHex("0x6080604052"),
			wantErr: "carries contract code",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client := evm_mocks.NewTransactorBackend(t)
			client.EXPECT().CodeAt(mock.Anything, chaintest.Depositor, (*big.Int)(nil)).Return(tt.code, nil)

			signed := false
			auth := testutils.RejectingTransactOpts(chaintest.Depositor)
			auth.Signer = func(common.Address, *gethtypes.Transaction) (*gethtypes.Transaction, error) {
				signed = true
				return nil, errors.New("unexpected signature request")
			}

			executor := evm.NewExecutor(evm.NewEncoder(), client, auth, chaintest.Chain1EVMID, chaintest.BatchDelegate)
			handle, err := executor.Submit(context.Background(), depositCalls(chaintest.Depositor))

			require.ErrorIs(t, err, evm.ErrAccountNotDelegated)
			assert.ErrorContains(t, err, tt.wantErr)

			var notDelegated *evm.AccountNotDelegatedError
			require.ErrorAs(t, err, &notDelegated)
			assert.Equal(t, chaintest.Depositor, notDelegated.Account)
			assert.Equal(t, chaintest.BatchDelegate, notDelegated.Delegate)

			assert.False(t, signed, "nothing is signed for an undelegated account")
			assert.False(t, handle.HasHash())
		})
	}
}
