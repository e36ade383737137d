package stakeflow

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lstlabs/stakeflow/fixedpoint"
	"github.com/lstlabs/stakeflow/internal/testutils/chaintest"
	"github.com/lstlabs/stakeflow/types"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	cause := errors.New("connection reset")

	tests := []struct {
		err      error
		expected string
	}{
		{
			NewInsufficientBalanceError(fixedpoint.Whole(12, chaintest.STRK), fixedpoint.Whole(10, chaintest.STRK)),
			"insufficient balance: requested 12 STRK, available 10 STRK",
		},
		{
			NewPreviewUnavailableError(chaintest.Vault, nil),
			"preview deposit unavailable for vault " + chaintest.Vault.Hex(),
		},
		{
			NewPreviewUnavailableError(chaintest.Vault, cause),
			"preview deposit unavailable for vault " + chaintest.Vault.Hex() + ": connection reset",
		},
		{NewSubmissionFailedError("RPCError(-32000)", cause), "submission failed (RPCError(-32000)): connection reset"},
		{NewMarketNotConfiguredError(types.PlatformNostra), "lending market not configured for platform Nostra"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, test.err.Error())
	}
}

func TestErrorUnwrap(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")

	assert.ErrorIs(t, NewInsufficientBalanceError(fixedpoint.Zero(chaintest.STRK), fixedpoint.Zero(chaintest.STRK)), ErrInsufficientBalance)
	assert.ErrorIs(t, NewPreviewUnavailableError(chaintest.Vault, cause), ErrPreviewUnavailable)
	assert.ErrorIs(t, NewPreviewUnavailableError(chaintest.Vault, cause), cause)
	assert.ErrorIs(t, NewPreviewUnavailableError(chaintest.Vault, nil), ErrPreviewUnavailable)
	assert.ErrorIs(t, NewSubmissionFailedError("SubmissionError", cause), ErrSubmissionFailed)
	assert.ErrorIs(t, NewSubmissionFailedError("SubmissionError", cause), cause)
	assert.ErrorIs(t, NewMarketNotConfiguredError(types.PlatformVesu), ErrMarketNotConfigured)
}
