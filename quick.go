package stakeflow

import (
	"fmt"
	"slices"

	"github.com/ethereum/go-ethereum/common"

	"github.com/lstlabs/stakeflow/fixedpoint"
)

// Percentage is a quick amount selector.
type Percentage int64

const (
	Percent25  Percentage = 25
	Percent50  Percentage = 50
	Percent75  Percentage = 75
	Percent100 Percentage = 100
)

// Percentages lists the selectors in display order.
func Percentages() []Percentage {
	return []Percentage{Percent25, Percent50, Percent75, Percent100}
}

// ParsePercentage returns the selector for n.
func ParsePercentage(n int) (Percentage, error) {
	p := Percentage(n)
	if !p.Valid() {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidPercentage, n)
	}

	return p, nil
}

// Valid reports whether p is one of the supported selectors.
func (p Percentage) Valid() bool {
	return slices.Contains(Percentages(), p)
}

// QuickAmount returns the share of balance selected by pct.
//
// At 100% one whole unit of the balance is kept back to pay network fees. A balance below one
// whole unit yields zero. Other percentages are a truncated proportion of the balance with
// nothing reserved.
func QuickAmount(identity *common.Address, balance fixedpoint.Amount, pct Percentage) (fixedpoint.Amount, error) {
	if identity == nil || *identity == (common.Address{}) {
		return fixedpoint.Amount{}, ErrNoWalletConnected
	}

	if !pct.Valid() {
		return fixedpoint.Amount{}, fmt.Errorf("%w: got %d", ErrInvalidPercentage, pct)
	}

	denom := balance.Denomination()
	if pct == Percent100 {
		reserve := fixedpoint.Whole(1, denom)
		if balance.Cmp(reserve) < 0 {
			return fixedpoint.Zero(denom), nil
		}

		return balance.Sub(reserve), nil
	}

	return balance.Scale(int64(pct), 100), nil
}
