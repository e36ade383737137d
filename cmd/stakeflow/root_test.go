package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lstlabs/stakeflow"
	"github.com/lstlabs/stakeflow/config"
	"github.com/lstlabs/stakeflow/types"
)

func TestBuildRootCmd(t *testing.T) {
	t.Parallel()

	cmd := buildRootCmd()

	names := make([]string, 0, len(cmd.Commands()))
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"quote", "preview", "quick", "deposit"}, names)

	for _, flag := range []string{"config", "env-file", "verbose", "places"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}
}

// Argument errors are reported before any config is loaded or RPC dialed.
func TestCommands_ArgumentErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		args    []string
		wantErr error
		wantMsg string
	}{
		{
			name:    "quick with unsupported percentage",
			args:    []string{"quick", "30"},
			wantErr: stakeflow.ErrInvalidPercentage,
		},
		{
			name:    "quick with non numeric percentage",
			args:    []string{"quick", "half"},
			wantMsg: "invalid percentage",
		},
		{
			name:    "preview with unknown platform",
			args:    []string{"preview", "10", "--platform", "aave"},
			wantErr: types.ErrUnknownPlatform,
		},
		{
			name:    "deposit with unknown platform",
			args:    []string{"deposit", "10", "--platform", "aave"},
			wantErr: types.ErrUnknownPlatform,
		},
		{
			name:    "negative places",
			args:    []string{"quote", "10", "--places", "-1"},
			wantMsg: "invalid --places",
		},
		{
			name:    "quote without amount",
			args:    []string{"quote"},
			wantMsg: "accepts 1 arg(s)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd := buildRootCmd()
			cmd.SetArgs(tt.args)
			cmd.SetOut(&bytes.Buffer{})
			cmd.SetErr(&bytes.Buffer{})

			err := cmd.Execute()
			require.Error(t, err)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			}
			if tt.wantMsg != "" {
				assert.Contains(t, err.Error(), tt.wantMsg)
			}
		})
	}
}

func TestResolveDepositor(t *testing.T) {
	t.Setenv(config.PrivateKeyEnv, "")

	addr := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	missingEnv := filepath.Join(t.TempDir(), ".env")

	got, err := resolveDepositor(addr.Hex(), missingEnv)
	require.NoError(t, err)
	assert.Equal(t, addr, got)

	_, err = resolveDepositor("not-an-address", missingEnv)
	require.Error(t, err)

	_, err = resolveDepositor("", missingEnv)
	require.ErrorIs(t, err, config.ErrMissingPrivateKey)

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	t.Setenv(config.PrivateKeyEnv, common.Bytes2Hex(crypto.FromECDSA(key)))

	got, err = resolveDepositor("", missingEnv)
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), got)
}
