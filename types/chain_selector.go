package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"errors"
	"fmt"

	chainsel "github.com/smartcontractkit/chain-selectors"
)

// ChainSelector is a unique identifier for a chain.
//
// These values are defined in the chain-selectors dependency.
// https://github.com/smartcontractkit/chain-selectors
type ChainSelector uint64

var (
	// ErrChainFamilyNotFound is returned when the chain family is not found for a selector
	ErrChainFamilyNotFound = errors.New("chain family not found")

	// ErrUnsupportedChainFamily is returned when the chain family has no stake backend
	ErrUnsupportedChainFamily = errors.New("unsupported chain family")
)

// GetChainSelectorFamily returns the family of the chain selector. Only EVM chains host the
// vault and lending markets this module composes calls for.
func GetChainSelectorFamily(sel ChainSelector) (string, error) {
	family, err := chainsel.GetSelectorFamily(uint64(sel))
	if err != nil {
		return "", fmt.Errorf("%w for selector %d", ErrChainFamilyNotFound, sel)
	}

	if family != chainsel.FamilyEVM {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedChainFamily, family)
	}

	return family, nil
}
