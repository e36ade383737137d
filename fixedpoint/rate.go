package fixedpoint

import (
	"fmt"
	"math/big"

	"github.com/shopspring/decimal"
)

// Direction selects which way Convert moves an amount.
type Direction int

const (
	// ToDerivative converts a base asset amount into derivative tokens.
	ToDerivative Direction = iota
	// ToBase converts a derivative token amount into the base asset.
	ToBase
)

// ExchangeRate is the amount of base asset one whole derivative token is worth, held as the
// integer Raw scaled by 10^Decimals.
//
// A rate is a snapshot: it is read once from the rate feed and used unchanged for a whole build.
type ExchangeRate struct {
	Raw        *big.Int
	Decimals   uint8
	Base       Denomination
	Derivative Denomination
}

// NewExchangeRate validates and returns a rate. raw is copied.
func NewExchangeRate(raw *big.Int, decimals uint8, base, derivative Denomination) (ExchangeRate, error) {
	if raw == nil || raw.Sign() <= 0 {
		return ExchangeRate{}, fmt.Errorf("%w: %v", ErrInvalidRate, raw)
	}

	return ExchangeRate{
		Raw:        new(big.Int).Set(raw),
		Decimals:   decimals,
		Base:       base,
		Derivative: derivative,
	}, nil
}

// Valid reports whether the rate is strictly positive.
func (r ExchangeRate) Valid() bool {
	return r.Raw != nil && r.Raw.Sign() > 0
}

// Decimal returns the rate as an exact decimal.
func (r ExchangeRate) Decimal() decimal.Decimal {
	if r.Raw == nil {
		return decimal.Zero
	}

	return decimal.NewFromBigInt(r.Raw, -int32(r.Decimals))
}

// Display returns the rate rounded to places fractional digits.
func (r ExchangeRate) Display(places int32) string {
	return r.Decimal().StringFixed(places)
}

// Convert moves amount across denominations using rate.
//
//	ToDerivative: v * 10^rate.Decimals * 10^derivative.Decimals / (rate.Raw * 10^base.Decimals)
//	ToBase:       v * rate.Raw * 10^base.Decimals / (10^rate.Decimals * 10^derivative.Decimals)
//
// There is exactly one division, so the result is the floor of the true value. A zero amount or
// an invalid rate yields zero of the target denomination.
func Convert(amount Amount, rate ExchangeRate, dir Direction) Amount {
	from, to := rate.Base, rate.Derivative
	if dir == ToBase {
		from, to = to, from
	}

	if amount.IsZero() || !rate.Valid() {
		return Zero(to)
	}

	if amount.denom != from {
		panic(fmt.Sprintf("fixedpoint: %v: converting %s with a %s rate", ErrDenominationMismatch, amount.denom, from))
	}

	rateUnit := pow10(int(rate.Decimals))

	var num, den *big.Int
	switch dir {
	case ToBase:
		num = new(big.Int).Mul(rate.Raw, rate.Base.Unit())
		den = new(big.Int).Mul(rateUnit, rate.Derivative.Unit())
	default:
		num = new(big.Int).Mul(rateUnit, rate.Derivative.Unit())
		den = new(big.Int).Mul(rate.Raw, rate.Base.Unit())
	}

	return NewAmount(MulDiv(amount.Value(), num, den), to)
}

// EstimateDisplay parses input as a base asset amount and renders its derivative equivalent.
// Unparseable or non-positive input renders as "0".
func EstimateDisplay(input string, rate ExchangeRate, places int32) string {
	amount, err := ParseDecimal(input, rate.Base)
	if err != nil {
		return "0"
	}

	return Convert(amount, rate, ToDerivative).Display(places)
}
