package fixedpoint_test

import (
	"math/big"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"

	"github.com/lstlabs/stakeflow/fixedpoint"
)

func mustRate(t *testing.T, raw string, base, derivative fixedpoint.Denomination) fixedpoint.ExchangeRate {
	t.Helper()

	rate, err := fixedpoint.NewExchangeRate(wei(raw), 18, base, derivative)
	assert.NilError(t, err)

	return rate
}

func TestNewExchangeRate(t *testing.T) {
	t.Parallel()

	_, err := fixedpoint.NewExchangeRate(big.NewInt(0), 18, strk, xstrk)
	assert.ErrorIs(t, err, fixedpoint.ErrInvalidRate)

	_, err = fixedpoint.NewExchangeRate(nil, 18, strk, xstrk)
	assert.ErrorIs(t, err, fixedpoint.ErrInvalidRate)

	rate := mustRate(t, "1050000000000000000", strk, xstrk)
	assert.Equal(t, "1.05", rate.Display(2))
	assert.Equal(t, "1.0500", rate.Display(4))
}

func TestConvert(t *testing.T) {
	t.Parallel()

	rate := mustRate(t, "1050000000000000000", strk, xstrk)

	got := fixedpoint.Convert(fixedpoint.Whole(105, strk), rate, fixedpoint.ToDerivative)
	assert.Equal(t, "100", got.String())
	assert.Equal(t, xstrk, got.Denomination())

	back := fixedpoint.Convert(got, rate, fixedpoint.ToBase)
	assert.Equal(t, "105", back.String())
	assert.Equal(t, strk, back.Denomination())
}

func TestConvert_DifferentDecimals(t *testing.T) {
	t.Parallel()

	rate := mustRate(t, "2000000000000000000", usdc, xstrk)

	got := fixedpoint.Convert(fixedpoint.Whole(10, usdc), rate, fixedpoint.ToDerivative)
	assert.Check(t, is.Equal(wei("5000000000000000000").String(), got.Value().String()))

	back := fixedpoint.Convert(got, rate, fixedpoint.ToBase)
	assert.Check(t, is.Equal("10000000", back.Value().String()))
}

func TestConvert_ZeroAndInvalid(t *testing.T) {
	t.Parallel()

	rate := mustRate(t, "1050000000000000000", strk, xstrk)

	got := fixedpoint.Convert(fixedpoint.Zero(strk), rate, fixedpoint.ToDerivative)
	assert.Check(t, got.IsZero())
	assert.Equal(t, xstrk, got.Denomination())

	got = fixedpoint.Convert(fixedpoint.Amount{}, rate, fixedpoint.ToDerivative)
	assert.Check(t, got.IsZero())

	got = fixedpoint.Convert(fixedpoint.Whole(1, strk), fixedpoint.ExchangeRate{Base: strk, Derivative: xstrk}, fixedpoint.ToDerivative)
	assert.Check(t, got.IsZero())
}

func TestConvert_MonotonicAndNeverOverstates(t *testing.T) {
	t.Parallel()

	// An awkward rate so that every conversion truncates.
	rate := mustRate(t, "1033333333333333337", strk, xstrk)

	var prev fixedpoint.Amount
	for _, raw := range []string{"1", "2", "3", "999", "1000000000000000000", "1000000000000000001", "123456789012345678901", "900719925474099000000000000000000"} {
		a := fixedpoint.NewAmount(wei(raw), strk)

		derivative := fixedpoint.Convert(a, rate, fixedpoint.ToDerivative)
		back := fixedpoint.Convert(derivative, rate, fixedpoint.ToBase)
		assert.Check(t, back.Cmp(a) <= 0, "round trip of %s overstated: %s", raw, back.Value())

		if !prev.IsZero() {
			assert.Check(t, derivative.Cmp(prev) >= 0, "not monotonic at %s", raw)
		}
		prev = derivative
	}
}

func TestConvert_MismatchPanics(t *testing.T) {
	t.Parallel()

	rate := mustRate(t, "1050000000000000000", strk, xstrk)

	defer func() {
		assert.Check(t, recover() != nil)
	}()
	fixedpoint.Convert(fixedpoint.Whole(1, usdc), rate, fixedpoint.ToDerivative)
}

func TestEstimateDisplay(t *testing.T) {
	t.Parallel()

	rate := mustRate(t, "1050000000000000000", strk, xstrk)

	assert.Equal(t, "100.00", fixedpoint.EstimateDisplay("105", rate, 2))
	assert.Equal(t, "0", fixedpoint.EstimateDisplay("abc", rate, 2))
	assert.Equal(t, "0", fixedpoint.EstimateDisplay("", rate, 2))
	assert.Equal(t, "0", fixedpoint.EstimateDisplay("-3", rate, 2))
	assert.Equal(t, "1,000.00", fixedpoint.EstimateDisplay("1050", rate, 2))
}
