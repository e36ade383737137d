package evm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lstlabs/stakeflow/internal/testutils/chaintest"
	"github.com/lstlabs/stakeflow/types"
)

func TestGetEVMChainID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		sel     types.ChainSelector
		isSim   bool
		want    uint64
		wantErr string
	}{
		{name: "sepolia", sel: chaintest.Chain2Selector, want: chaintest.Chain2EVMID},
		{name: "simulated", sel: chaintest.Chain2Selector, isSim: true, want: SimulatedEVMChainID},
		{name: "unknown selector", sel: chaintest.TestInvalidChainSelector, wantErr: "chain family not found"},
		{name: "non evm selector", sel: chaintest.SolanaSelector, wantErr: "unsupported chain family"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := GetEVMChainID(tt.sel, tt.isSim)
			if tt.wantErr != "" {
				require.ErrorContains(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWithGasBuffer(t *testing.T) {
	t.Parallel()

	assert.Equal(t, uint64(120000), withGasBuffer(100000))
	assert.Equal(t, uint64(0), withGasBuffer(0))
}
