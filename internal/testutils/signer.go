package testutils

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	gethtypes "github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	sdkerrors "github.com/lstlabs/stakeflow/sdk/errors"
)

// Note: should only be used for testing purposes
type ECDSASigner struct {
	Key *ecdsa.PrivateKey
}

func NewECDSASigner() *ECDSASigner {
	key, _ := crypto.GenerateKey()
	return &ECDSASigner{Key: key}
}

func (s *ECDSASigner) Address() common.Address {
	return crypto.PubkeyToAddress(s.Key.PublicKey)
}

// TransactOpts returns keyed transact opts for the signer on chainID.
func (s *ECDSASigner) TransactOpts(chainID *big.Int) *bind.TransactOpts {
	opts, err := bind.NewKeyedTransactorWithChainID(s.Key, chainID)
	if err != nil {
		panic(err)
	}

	return opts
}

// RejectingTransactOpts returns transact opts whose signer behaves like a wallet where the user
// declined the request.
func RejectingTransactOpts(from common.Address) *bind.TransactOpts {
	return &bind.TransactOpts{
		From: from,
		Signer: func(common.Address, *gethtypes.Transaction) (*gethtypes.Transaction, error) {
			return nil, sdkerrors.ErrUserRejected
		},
	}
}
