package sdk

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"

	"github.com/lstlabs/stakeflow/fixedpoint"
	"github.com/lstlabs/stakeflow/types"
)

// BalanceFeed reads token balances. Values may be stale within a polling interval.
type BalanceFeed interface {
	GetBalance(ctx context.Context, owner common.Address, token common.Address) (fixedpoint.Amount, error)
}

// RateFeed reads the current vault exchange rate.
type RateFeed interface {
	GetRate(ctx context.Context) (fixedpoint.ExchangeRate, error)
}

// YieldFeed reads the lending yield of a platform.
type YieldFeed interface {
	GetYield(ctx context.Context, platform types.Platform) (types.Yield, error)
}

// Previewer estimates vault output against current on-chain state without mutating it.
type Previewer interface {
	// PreviewDeposit returns the derivative token amount a deposit of assets would mint.
	PreviewDeposit(ctx context.Context, vault common.Address, assets *big.Int) (*big.Int, error)
}
