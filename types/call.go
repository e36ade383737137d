package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"math/big"
	"slices"

	"github.com/ethereum/go-ethereum/common"
)

// ContractType names the ABI a call is encoded against.
type ContractType string

const (
	ContractERC20  ContractType = "ERC20"
	ContractVault  ContractType = "LiquidStakingVault"
	ContractVesu   ContractType = "VesuVToken"
	ContractNostra ContractType = "NostraIToken"
)

// Entrypoint names. These match the third party ABIs exactly.
const (
	EntrypointApprove             = "approve"
	EntrypointDeposit             = "deposit"
	EntrypointDepositWithReferral = "depositWithReferral"
	EntrypointPreviewDeposit      = "previewDeposit"
	EntrypointMint                = "mint"
)

// Call describes one contract invocation inside a CallSequence. Args are in ABI order.
type Call struct {
	Target       common.Address `json:"target"`
	ContractType ContractType   `json:"contractType"`
	Entrypoint   string         `json:"entrypoint"`
	Args         []any          `json:"args"`
}

// Clone returns a deep copy of the call. *big.Int arguments are copied.
func (c Call) Clone() Call {
	args := make([]any, len(c.Args))
	for i, a := range c.Args {
		if v, ok := a.(*big.Int); ok && v != nil {
			a = new(big.Int).Set(v)
		}
		args[i] = a
	}
	c.Args = args

	return c
}

// CallSequence is an ordered list of calls submitted together as one atomic transaction.
// Order matters: each approve precedes the call that spends the allowance.
type CallSequence []Call

// Clone returns a deep copy of the sequence.
func (s CallSequence) Clone() CallSequence {
	out := make(CallSequence, 0, len(s))
	for _, c := range s {
		out = append(out, c.Clone())
	}

	return out
}

// Entrypoints returns the entrypoint of every call, in order.
func (s CallSequence) Entrypoints() []string {
	out := make([]string, 0, len(s))
	for _, c := range s {
		out = append(out, c.Entrypoint)
	}

	return out
}

// Targets returns the distinct targets of the sequence in first-seen order.
func (s CallSequence) Targets() []common.Address {
	out := make([]common.Address, 0, len(s))
	for _, c := range s {
		if !slices.Contains(out, c.Target) {
			out = append(out, c.Target)
		}
	}

	return out
}
