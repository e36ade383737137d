// Package bindings holds the ABIs of the contracts a stake is composed against. Only the
// entrypoints this module calls are declared.
package bindings

import (
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
)

// ERC20MetaData contains the token functions used for allowances and balances.
var ERC20MetaData = &bind.MetaData{
	ABI: `[
  {"type":"function","name":"approve","stateMutability":"nonpayable",
   "inputs":[{"name":"spender","type":"address"},{"name":"amount","type":"uint256"}],
   "outputs":[{"name":"","type":"bool"}]},
  {"type":"function","name":"allowance","stateMutability":"view",
   "inputs":[{"name":"owner","type":"address"},{"name":"spender","type":"address"}],
   "outputs":[{"name":"","type":"uint256"}]},
  {"type":"function","name":"balanceOf","stateMutability":"view",
   "inputs":[{"name":"account","type":"address"}],
   "outputs":[{"name":"","type":"uint256"}]}
]`,
}

// LiquidStakingVaultMetaData contains the ERC-4626 vault functions plus the referral deposit.
var LiquidStakingVaultMetaData = &bind.MetaData{
	ABI: `[
  {"type":"function","name":"deposit","stateMutability":"nonpayable",
   "inputs":[{"name":"assets","type":"uint256"},{"name":"receiver","type":"address"}],
   "outputs":[{"name":"shares","type":"uint256"}]},
  {"type":"function","name":"depositWithReferral","stateMutability":"nonpayable",
   "inputs":[{"name":"assets","type":"uint256"},{"name":"receiver","type":"address"},{"name":"referral","type":"string"}],
   "outputs":[{"name":"shares","type":"uint256"}]},
  {"type":"function","name":"previewDeposit","stateMutability":"view",
   "inputs":[{"name":"assets","type":"uint256"}],
   "outputs":[{"name":"shares","type":"uint256"}]},
  {"type":"function","name":"convertToAssets","stateMutability":"view",
   "inputs":[{"name":"shares","type":"uint256"}],
   "outputs":[{"name":"assets","type":"uint256"}]}
]`,
}

// VesuVTokenMetaData is the ERC-4626 supply entrypoint of a Vesu vToken.
var VesuVTokenMetaData = &bind.MetaData{
	ABI: `[
  {"type":"function","name":"deposit","stateMutability":"nonpayable",
   "inputs":[{"name":"assets","type":"uint256"},{"name":"receiver","type":"address"}],
   "outputs":[{"name":"shares","type":"uint256"}]}
]`,
}

// NostraITokenMetaData is the supply entrypoint of a Nostra iToken.
var NostraITokenMetaData = &bind.MetaData{
	ABI: `[
  {"type":"function","name":"mint","stateMutability":"nonpayable",
   "inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],
   "outputs":[{"name":"","type":"uint256"}]}
]`,
}

// BatchExecutorMetaData is the entrypoint of the EIP-7702 delegate installed on the depositor's
// account. executeBatch runs every call with the account as msg.sender and reverts all of them if
// any one reverts.
var BatchExecutorMetaData = &bind.MetaData{
	ABI: `[
  {"type":"function","name":"executeBatch","stateMutability":"payable",
   "inputs":[{"name":"calls","type":"tuple[]","components":[
     {"name":"target","type":"address"},
     {"name":"value","type":"uint256"},
     {"name":"data","type":"bytes"}]}],
   "outputs":[]}
]`,
}
