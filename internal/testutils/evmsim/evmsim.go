// Package evmsim implements a simulated EVM chain for testing purposes.
package evmsim

import (
	"crypto/ecdsa"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/stretchr/testify/require"
)

const (
	// DefaultGasLimit is the block gas limit of the simulated chain
	DefaultGasLimit = uint64(8000000)

	// DefaultBalance is the native balance every depositor starts with, enough to pay for gas
	DefaultBalance = 1e18

	// SimulatedChainID is the chain ID used for the simulated chain. EVM Simulated chains always use 1337
	//
	// https://pkg.go.dev/github.com/ethereum/go-ethereum/ethclient/simulated#NewBackend
	SimulatedChainID = 1337
)

// SimulatedChain represents a simulated chain with a backend and a list of funded depositors.
type SimulatedChain struct {
	Backend    *simulated.Backend
	Depositors []*Depositor
}

// Depositor is a funded account that signs its own batches.
type Depositor struct {
	PrivateKey *ecdsa.PrivateKey
}

// NewTransactOpts returns transact options signing with the depositor's key.
func (d *Depositor) NewTransactOpts(t *testing.T) *bind.TransactOpts {
	t.Helper()

	auth, err := bind.NewKeyedTransactorWithChainID(d.PrivateKey, big.NewInt(SimulatedChainID))
	require.NoError(t, err)

	return auth
}

// Address extracts the address from the depositor's private key.
func (d *Depositor) Address() common.Address {
	return crypto.PubkeyToAddress(d.PrivateKey.PublicKey)
}

// NewSimulatedChain creates a new simulated chain with the given number of funded depositors. The
// backend is closed when the test ends.
func NewSimulatedChain(t *testing.T, numDepositors uint64) SimulatedChain {
	t.Helper()

	return newSimulatedChain(t, numDepositors, nil)
}

// NewDelegatedSimulatedChain is like NewSimulatedChain but every depositor starts with the
// EIP-7702 designator of delegate as its code.
func NewDelegatedSimulatedChain(t *testing.T, numDepositors uint64, delegate common.Address) SimulatedChain {
	t.Helper()

	return newSimulatedChain(t, numDepositors, gethtypes.AddressToDelegation(delegate))
}

func newSimulatedChain(t *testing.T, numDepositors uint64, code []byte) SimulatedChain {
	t.Helper()

	depositors := make([]*Depositor, 0, numDepositors)
	for range numDepositors {
		key, err := crypto.GenerateKey()
		require.NoError(t, err)

		depositors = append(depositors, &Depositor{PrivateKey: key})
	}

	genesisAlloc := gethtypes.GenesisAlloc{}
	for _, d := range depositors {
		genesisAlloc[d.Address()] = gethtypes.Account{
			Balance: big.NewInt(DefaultBalance),
			Code:    code,
		}
	}

	sim := simulated.NewBackend(genesisAlloc,
		simulated.WithBlockGasLimit(DefaultGasLimit),
	)
	t.Cleanup(func() {
		_ = sim.Close()
	})

	return SimulatedChain{
		Backend:    sim,
		Depositors: depositors,
	}
}
