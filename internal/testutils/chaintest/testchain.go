package chaintest

import (
	"github.com/ethereum/go-ethereum/common"
	cselectors "github.com/smartcontractkit/chain-selectors"

	"github.com/lstlabs/stakeflow/fixedpoint"
	"github.com/lstlabs/stakeflow/types"
)

var (
	Chain1RawSelector = cselectors.GETH_TESTNET.Selector       // 3379446385462418246
	Chain1Selector    = types.ChainSelector(Chain1RawSelector) // 3379446385462418246
	Chain1EVMID       = cselectors.GETH_TESTNET.EvmChainID     // 1337

	Chain2RawSelector = cselectors.ETHEREUM_TESTNET_SEPOLIA.Selector   // 16015286601757825753
	Chain2Selector    = types.ChainSelector(Chain2RawSelector)         // 16015286601757825753
	Chain2EVMID       = cselectors.ETHEREUM_TESTNET_SEPOLIA.EvmChainID // 11155111

	// SolanaSelector is a valid selector of a family the stake backend does not support.
	SolanaSelector = types.ChainSelector(cselectors.SOLANA_DEVNET.Selector)

	// TestInvalidChainSelector is a chain selector that doesn't exist.
	TestInvalidChainSelector = types.ChainSelector(0)
)

var (
	BaseToken = common.HexToAddress("0x04718f5a0Fc34cC1AF16A1cdee98fFB20C31f5cD")
	Vault     = common.HexToAddress("0x028d709c875c0ceAC3dce7065bec5328186Dc89f")
	Vesu      = common.HexToAddress("0x37ff012710c5175004687Bc4d9e4C6E86d6cE5C0")
	Nostra    = common.HexToAddress("0x205Fd8586F6be6C16f4aA65cc1034ecFF96D9648")
	Depositor = common.HexToAddress("0x0000000000000000000000000000000000000abc")

	// BatchDelegate is the batch executor depositors delegate to.
	BatchDelegate = common.HexToAddress("0x63c0c19a282a1B52b07dD5a65b58948A07DAE32B")

	STRK  = fixedpoint.Denomination{Symbol: "STRK", Decimals: 18}
	XSTRK = fixedpoint.Denomination{Symbol: "xSTRK", Decimals: 18}
)

// Contracts returns a deployment where the vault is its own derivative token and both lending
// markets are configured.
func Contracts() types.Contracts {
	return types.Contracts{
		BaseToken:       BaseToken,
		Vault:           Vault,
		DerivativeToken: Vault,
		Markets: map[types.Platform]common.Address{
			types.PlatformVesu:   Vesu,
			types.PlatformNostra: Nostra,
		},
		Base:       STRK,
		Derivative: XSTRK,
	}
}
