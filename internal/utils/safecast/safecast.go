// Package safecast implements functions to safely narrow integer types without silent wraparound
package safecast

import (
	"fmt"
	"math"

	"github.com/spf13/cast"
)

// IntToUint8 safely converts an int to uint8, used for token decimals read from configuration
func IntToUint8(value int) (uint8, error) {
	if value < 0 || value > math.MaxUint8 {
		return 0, fmt.Errorf("value %d exceeds uint8 range", value)
	}

	return cast.ToUint8E(value)
}

// IntToInt32 safely converts an int to int32, used for display precision
func IntToInt32(value int) (int32, error) {
	if value < math.MinInt32 || value > math.MaxInt32 {
		return 0, fmt.Errorf("value %d exceeds int32 range", value)
	}

	return cast.ToInt32E(value)
}
