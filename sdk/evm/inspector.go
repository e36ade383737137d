package evm

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	"github.com/lstlabs/stakeflow/fixedpoint"
	"github.com/lstlabs/stakeflow/sdk"
	"github.com/lstlabs/stakeflow/types"
)

var (
	_ sdk.BalanceFeed = (*Inspector)(nil)
	_ sdk.RateFeed    = (*Inspector)(nil)
	_ sdk.Previewer   = (*Inspector)(nil)
)

// Inspector reads balances, the vault exchange rate and deposit previews from EVM state.
type Inspector struct {
	client    ContractCaller
	contracts types.Contracts
}

// NewInspector creates a new Inspector for evm chains.
func NewInspector(client ContractCaller, contracts types.Contracts) *Inspector {
	return &Inspector{
		client:    client,
		contracts: contracts,
	}
}

// GetBalance returns the balance of owner in the base asset or the derivative token.
func (i *Inspector) GetBalance(ctx context.Context, owner common.Address, token common.Address) (fixedpoint.Amount, error) {
	var denom fixedpoint.Denomination
	switch token {
	case i.contracts.BaseToken:
		denom = i.contracts.Base
	case i.contracts.DerivativeToken:
		denom = i.contracts.Derivative
	default:
		return fixedpoint.Amount{}, fmt.Errorf("%w: %s", ErrUnknownToken, token.Hex())
	}

	balance, err := i.callUint(ctx, token, types.ContractERC20, "balanceOf", owner)
	if err != nil {
		return fixedpoint.Amount{}, err
	}

	return fixedpoint.NewAmount(balance, denom), nil
}

// GetRate returns how much base asset one whole derivative token is worth, from the vault's
// convertToAssets.
func (i *Inspector) GetRate(ctx context.Context) (fixedpoint.ExchangeRate, error) {
	assets, err := i.callUint(ctx, i.contracts.Vault, types.ContractVault, "convertToAssets", i.contracts.Derivative.Unit())
	if err != nil {
		return fixedpoint.ExchangeRate{}, err
	}

	return fixedpoint.NewExchangeRate(assets, i.contracts.Base.Decimals, i.contracts.Base, i.contracts.Derivative)
}

// PreviewDeposit returns the derivative token amount the vault would mint for assets.
func (i *Inspector) PreviewDeposit(ctx context.Context, vault common.Address, assets *big.Int) (*big.Int, error) {
	return i.callUint(ctx, vault, types.ContractVault, types.EntrypointPreviewDeposit, assets)
}

func (i *Inspector) callUint(
	ctx context.Context, to common.Address, ct types.ContractType, method string, args ...any,
) (*big.Int, error) {
	parsed, err := abiFor(ct)
	if err != nil {
		return nil, err
	}

	data, err := parsed.Pack(method, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s: %w", method, err)
	}

	out, err := i.client.CallContract(ctx, ethereum.CallMsg{To: &to, Data: data}, nil)
	if err != nil {
		return nil, fmt.Errorf("%s call to %s failed: %w", method, to.Hex(), err)
	}

	values, err := parsed.Unpack(method, out)
	if err != nil {
		return nil, fmt.Errorf("failed to unpack %s: %w", method, err)
	}

	if len(values) != 1 {
		return nil, fmt.Errorf("unexpected %s output length %d", method, len(values))
	}

	v, ok := values[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected %s output type %T", method, values[0])
	}

	return v, nil
}
