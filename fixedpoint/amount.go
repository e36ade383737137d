// Package fixedpoint converts user-entered decimal strings into exact integer token amounts and
// moves those amounts between the base asset and derivative token denominations.
//
// All arithmetic is done on big.Int. Floating point is never used, and every division truncates
// toward zero so that an equivalent value is never reported above the true entitlement.
package fixedpoint

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// Denomination identifies a token and the number of fractional digits of its smallest unit.
type Denomination struct {
	Symbol   string `json:"symbol" mapstructure:"symbol" validate:"required"`
	Decimals uint8  `json:"decimals" mapstructure:"decimals" validate:"lte=36"`
}

// Unit returns the number of smallest units in one whole token, 10^Decimals.
func (d Denomination) Unit() *big.Int {
	return pow10(int(d.Decimals))
}

func (d Denomination) String() string {
	return fmt.Sprintf("%s(%d)", d.Symbol, d.Decimals)
}

// Amount is an exact non-negative quantity of a single denomination, held in smallest units.
//
// Amounts of different denominations can not be combined directly. Add, Sub and Cmp panic when
// the denominations differ; the only way across is Convert.
type Amount struct {
	value *big.Int
	denom Denomination
}

// NewAmount creates an Amount of v smallest units. v is copied; a nil or negative v yields zero.
func NewAmount(v *big.Int, denom Denomination) Amount {
	if v == nil || v.Sign() < 0 {
		return Zero(denom)
	}

	return Amount{value: new(big.Int).Set(v), denom: denom}
}

// Zero returns the additive identity for the denomination.
func Zero(denom Denomination) Amount {
	return Amount{value: new(big.Int), denom: denom}
}

// Whole returns n whole tokens of the denomination.
func Whole(n int64, denom Denomination) Amount {
	if n < 0 {
		return Zero(denom)
	}

	return Amount{value: new(big.Int).Mul(big.NewInt(n), denom.Unit()), denom: denom}
}

// Value returns a copy of the amount in smallest units.
func (a Amount) Value() *big.Int {
	if a.value == nil {
		return new(big.Int)
	}

	return new(big.Int).Set(a.value)
}

// Denomination returns the denomination of the amount.
func (a Amount) Denomination() Denomination {
	return a.denom
}

// IsZero reports whether the amount is zero. The zero value of Amount is zero.
func (a Amount) IsZero() bool {
	return a.value == nil || a.value.Sign() == 0
}

// Cmp compares two amounts of the same denomination.
func (a Amount) Cmp(o Amount) int {
	a.mustMatch(o)

	return a.Value().Cmp(o.Value())
}

// Add returns a+o.
func (a Amount) Add(o Amount) Amount {
	a.mustMatch(o)

	return Amount{value: new(big.Int).Add(a.Value(), o.Value()), denom: a.denom}
}

// Sub returns a-o. It panics if o is greater than a, amounts are never negative.
func (a Amount) Sub(o Amount) Amount {
	a.mustMatch(o)

	diff := new(big.Int).Sub(a.Value(), o.Value())
	if diff.Sign() < 0 {
		panic(fmt.Sprintf("fixedpoint: %s - %s is negative", a, o))
	}

	return Amount{value: diff, denom: a.denom}
}

// Scale returns a * num / den, truncated. den must be positive.
func (a Amount) Scale(num, den int64) Amount {
	return NewAmount(MulDiv(a.Value(), big.NewInt(num), big.NewInt(den)), a.denom)
}

// Decimal returns the amount in whole tokens as an exact decimal.
func (a Amount) Decimal() decimal.Decimal {
	return decimal.NewFromBigInt(a.Value(), -int32(a.denom.Decimals))
}

// String returns the exact value in whole tokens with trailing zeros trimmed.
func (a Amount) String() string {
	return a.Decimal().String()
}

// Display renders the amount with thousands separators and exactly places fractional digits.
// Digits past places are dropped, never rounded, so the rendered value never overstates the
// holding.
func (a Amount) Display(places int32) string {
	if places < 0 {
		places = 0
	}

	return groupThousands(a.Decimal().Truncate(places).StringFixed(places))
}

func (a Amount) mustMatch(o Amount) {
	if a.denom != o.denom {
		panic(fmt.Sprintf("fixedpoint: %v: %s and %s", ErrDenominationMismatch, a.denom, o.denom))
	}
}

// MulDiv returns v * mul / div with full intermediate precision, truncated toward zero.
// A zero or nil div yields zero.
func MulDiv(v, mul, div *big.Int) *big.Int {
	if v == nil || mul == nil || div == nil || div.Sign() == 0 {
		return new(big.Int)
	}

	out := new(big.Int).Mul(v, mul)

	return out.Quo(out, div)
}

func pow10(n int) *big.Int {
	return new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
}

func groupThousands(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}

	return b.String()
}
