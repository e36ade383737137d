package stakeflow

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"

	"github.com/lstlabs/stakeflow/fixedpoint"
	"github.com/lstlabs/stakeflow/sdk"
	"github.com/lstlabs/stakeflow/types"
)

// lendingRoute is how a lending market takes the derivative token. The markets disagree on both
// the entrypoint name and the argument order.
type lendingRoute struct {
	contractType types.ContractType
	entrypoint   string
	args         func(amount *big.Int, depositor common.Address) []any
}

var lendingRoutes = map[types.Platform]lendingRoute{
	types.PlatformVesu: {
		contractType: types.ContractVesu,
		entrypoint:   types.EntrypointDeposit,
		args: func(amount *big.Int, depositor common.Address) []any {
			return []any{amount, depositor}
		},
	},
	types.PlatformNostra: {
		contractType: types.ContractNostra,
		entrypoint:   types.EntrypointMint,
		args: func(amount *big.Int, depositor common.Address) []any {
			return []any{depositor, amount}
		},
	},
}

// DepositRequest is the input of BuildDeposit.
type DepositRequest struct {
	Amount    fixedpoint.Amount
	Depositor common.Address `validate:"required"`
	// Referral is passed through to the vault untouched. Any non-empty value selects
	// depositWithReferral.
	Referral string
	Lending  types.Platform
}

// Validate checks the request against the deployment it will be built for.
func (r DepositRequest) Validate(contracts types.Contracts) error {
	validate := validator.New()
	if err := validate.Struct(contracts); err != nil {
		return fmt.Errorf("invalid contracts: %w", err)
	}

	if err := validate.Struct(r); err != nil {
		return fmt.Errorf("invalid deposit request: %w", err)
	}

	if r.Amount.IsZero() {
		return fixedpoint.NewInvalidAmountError(r.Amount.String(), "must be greater than zero")
	}

	if r.Amount.Denomination() != contracts.Base {
		return fmt.Errorf("%w: amount is in %s, vault takes %s",
			fixedpoint.ErrDenominationMismatch, r.Amount.Denomination(), contracts.Base)
	}

	if !r.Lending.Valid() {
		return fmt.Errorf("%w: %s", ErrUnknownPlatform, r.Lending)
	}

	if r.Lending.IsLending() {
		if _, ok := lendingRoutes[r.Lending]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownPlatform, r.Lending)
		}

		if _, ok := contracts.Market(r.Lending); !ok {
			return NewMarketNotConfiguredError(r.Lending)
		}
	}

	return nil
}

// BuildDeposit returns the ordered calls of a deposit:
//
//	approve(vault, amount)                on the base token
//	deposit | depositWithReferral         on the vault
//	approve(market, derivativeAmount)     on the derivative token, when lending
//	deposit | mint                        on the market, when lending
//
// When lending, derivativeAmount is whatever the vault's previewDeposit returns for amount. If
// the preview fails or returns a non-positive amount no sequence is returned.
func BuildDeposit(
	ctx context.Context, contracts types.Contracts, previewer sdk.Previewer, req DepositRequest,
) (types.CallSequence, error) {
	if err := req.Validate(contracts); err != nil {
		return nil, err
	}

	amount := req.Amount.Value()
	calls := types.CallSequence{
		{
			Target:       contracts.BaseToken,
			ContractType: types.ContractERC20,
			Entrypoint:   types.EntrypointApprove,
			Args:         []any{contracts.Vault, amount},
		},
		depositCall(contracts.Vault, amount, req.Depositor, req.Referral),
	}

	if !req.Lending.IsLending() {
		return calls.Clone(), nil
	}

	if previewer == nil {
		return nil, NewPreviewUnavailableError(contracts.Vault, errors.New("no previewer configured"))
	}

	shares, err := previewer.PreviewDeposit(ctx, contracts.Vault, amount)
	if err != nil {
		return nil, NewPreviewUnavailableError(contracts.Vault, err)
	}
	if shares == nil || shares.Sign() <= 0 {
		return nil, NewPreviewUnavailableError(contracts.Vault, fmt.Errorf("preview returned %v", shares))
	}

	market, _ := contracts.Market(req.Lending)
	route := lendingRoutes[req.Lending]

	calls = append(calls,
		types.Call{
			Target:       contracts.DerivativeToken,
			ContractType: types.ContractERC20,
			Entrypoint:   types.EntrypointApprove,
			Args:         []any{market, shares},
		},
		types.Call{
			Target:       market,
			ContractType: route.contractType,
			Entrypoint:   route.entrypoint,
			Args:         route.args(shares, req.Depositor),
		},
	)

	sdk.LoggerFrom(ctx).Debugw("built deposit with lending",
		"platform", req.Lending.Tag(), "amount", amount.String(), "derivativeAmount", shares.String())

	return calls.Clone(), nil
}

func depositCall(vault common.Address, amount *big.Int, depositor common.Address, referral string) types.Call {
	if referral != "" {
		return types.Call{
			Target:       vault,
			ContractType: types.ContractVault,
			Entrypoint:   types.EntrypointDepositWithReferral,
			Args:         []any{amount, depositor, referral},
		}
	}

	return types.Call{
		Target:       vault,
		ContractType: types.ContractVault,
		Entrypoint:   types.EntrypointDeposit,
		Args:         []any{amount, depositor},
	}
}

// DepositBuilder is a fluent builder for a deposit call sequence.
type DepositBuilder struct {
	contracts types.Contracts
	previewer sdk.Previewer
	request   DepositRequest
}

// NewDepositBuilder creates a new DepositBuilder.
func NewDepositBuilder(contracts types.Contracts, previewer sdk.Previewer) *DepositBuilder {
	return &DepositBuilder{
		contracts: contracts,
		previewer: previewer,
	}
}

// SetAmount sets the amount of base asset to deposit.
func (b *DepositBuilder) SetAmount(amount fixedpoint.Amount) *DepositBuilder {
	b.request.Amount = amount
	return b
}

// SetDepositor sets the receiver of the derivative token.
func (b *DepositBuilder) SetDepositor(depositor common.Address) *DepositBuilder {
	b.request.Depositor = depositor
	return b
}

// SetReferral sets the referral code.
func (b *DepositBuilder) SetReferral(referral string) *DepositBuilder {
	b.request.Referral = referral
	return b
}

// SetLending sets the lending platform the derivative token is supplied to.
func (b *DepositBuilder) SetLending(platform types.Platform) *DepositBuilder {
	b.request.Lending = platform
	return b
}

// Request returns the request as configured so far.
func (b *DepositBuilder) Request() DepositRequest {
	return b.request
}

// Build validates the request and returns the call sequence.
func (b *DepositBuilder) Build(ctx context.Context) (types.CallSequence, error) {
	return BuildDeposit(ctx, b.contracts, b.previewer, b.request)
}
