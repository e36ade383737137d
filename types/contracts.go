package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"github.com/ethereum/go-ethereum/common"

	"github.com/lstlabs/stakeflow/fixedpoint"
)

// Contracts holds the addresses and denominations a deposit is composed against.
//
// For ERC-4626 vaults the derivative token is the vault itself; DerivativeToken is then equal to
// Vault.
type Contracts struct {
	BaseToken       common.Address              `validate:"required"`
	Vault           common.Address              `validate:"required"`
	DerivativeToken common.Address              `validate:"required"`
	Markets         map[Platform]common.Address `validate:"omitempty"`
	Base            fixedpoint.Denomination
	Derivative      fixedpoint.Denomination
}

// Market returns the lending market address of the platform, if configured.
func (c Contracts) Market(p Platform) (common.Address, bool) {
	addr, ok := c.Markets[p]
	if !ok || addr == (common.Address{}) {
		return common.Address{}, false
	}

	return addr, true
}
