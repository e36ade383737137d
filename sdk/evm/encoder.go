package evm

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"

	"github.com/lstlabs/stakeflow/sdk/evm/bindings"
	"github.com/lstlabs/stakeflow/types"
)

var contractMetaData = map[types.ContractType]*bind.MetaData{
	types.ContractERC20:  bindings.ERC20MetaData,
	types.ContractVault:  bindings.LiquidStakingVaultMetaData,
	types.ContractVesu:   bindings.VesuVTokenMetaData,
	types.ContractNostra: bindings.NostraITokenMetaData,
}

// BatchCall is one element of the executeBatch argument.
type BatchCall struct {
	Target common.Address
	Value  *big.Int
	Data   []byte
}

// Encoder encodes calls into EVM calldata.
type Encoder struct{}

// NewEncoder returns a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// EncodeCall packs a single call against the ABI of its contract type.
func (e *Encoder) EncodeCall(call types.Call) ([]byte, error) {
	parsed, err := abiFor(call.ContractType)
	if err != nil {
		return nil, err
	}

	data, err := parsed.Pack(call.Entrypoint, call.Args...)
	if err != nil {
		return nil, fmt.Errorf("failed to pack %s.%s: %w", call.ContractType, call.Entrypoint, err)
	}

	return data, nil
}

// EncodeSequence packs every call of the sequence, preserving order.
func (e *Encoder) EncodeSequence(calls types.CallSequence) ([]BatchCall, error) {
	batch := make([]BatchCall, 0, len(calls))
	for i, call := range calls {
		data, err := e.EncodeCall(call)
		if err != nil {
			return nil, fmt.Errorf("call %d: %w", i, err)
		}

		batch = append(batch, BatchCall{
			Target: call.Target,
			Value:  big.NewInt(0),
			Data:   data,
		})
	}

	return batch, nil
}

// EncodeBatch returns the executeBatch calldata for the whole sequence.
func (e *Encoder) EncodeBatch(calls types.CallSequence) ([]byte, error) {
	if len(calls) == 0 {
		return nil, ErrEmptySequence
	}

	batch, err := e.EncodeSequence(calls)
	if err != nil {
		return nil, err
	}

	parsed, err := bindings.BatchExecutorMetaData.GetAbi()
	if err != nil {
		return nil, err
	}

	return parsed.Pack("executeBatch", batch)
}

func abiFor(ct types.ContractType) (*abi.ABI, error) {
	md, ok := contractMetaData[ct]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownContractType, ct)
	}

	return md.GetAbi()
}
