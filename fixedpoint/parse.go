package fixedpoint

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MaxSafeWhole is the largest whole-token magnitude accepted from user input, 2^53-1.
const MaxSafeWhole int64 = 1<<53 - 1

// maxSafeDigits is the number of integer digits in MaxSafeWhole.
const maxSafeDigits = 16

var maxSafe = decimal.NewFromInt(MaxSafeWhole)

// ParseDecimal converts a user-entered decimal string into an exact amount of denom.
//
// Fractional digits beyond denom.Decimals are truncated. Empty, non-numeric, non-positive and
// out-of-range inputs fail with an *InvalidAmountError, as do inputs that truncate to zero
// smallest units.
func ParseDecimal(input string, denom Denomination) (Amount, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return Amount{}, NewInvalidAmountError(input, "empty")
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, NewInvalidAmountError(input, "not a number")
	}

	if d.Sign() <= 0 {
		return Amount{}, NewInvalidAmountError(input, "must be greater than zero")
	}

	// Bound the exponent before anything rescales the coefficient by it.
	exp := int64(d.Exponent())
	if int64(d.NumDigits())+exp > maxSafeDigits {
		return Amount{}, NewInvalidAmountError(input, "exceeds maximum amount")
	}
	if int64(d.NumDigits())+exp <= -int64(denom.Decimals) {
		return Amount{}, NewInvalidAmountError(input, "below smallest unit")
	}

	if d.GreaterThanOrEqual(maxSafe) {
		return Amount{}, NewInvalidAmountError(input, "exceeds maximum amount")
	}

	units := d.Truncate(int32(denom.Decimals)).Shift(int32(denom.Decimals)).Truncate(0).BigInt()
	if units.Sign() == 0 {
		return Amount{}, NewInvalidAmountError(input, "below smallest unit")
	}

	return Amount{value: units, denom: denom}, nil
}
