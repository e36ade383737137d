package stakeflow

import (
	"errors"
	"strings"
	"sync"

	"github.com/lstlabs/stakeflow/fixedpoint"
	"github.com/lstlabs/stakeflow/types"
)

// FormState is a copy of the form fields.
type FormState struct {
	Amount      string
	AmountErr   error
	Platform    types.Platform
	LendingOpen bool
}

// Form holds the stake input. It is safe for concurrent use.
type Form struct {
	mu    sync.Mutex
	denom fixedpoint.Denomination
	state FormState
}

// NewForm returns an empty form for amounts of denom.
func NewForm(denom fixedpoint.Denomination) *Form {
	return &Form{denom: denom}
}

// State returns a copy of the form fields.
func (f *Form) State() FormState {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state
}

// Amount returns the raw amount input.
func (f *Form) Amount() string {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state.Amount
}

// SetAmount replaces the amount input. An existing validation error is kept until the amount is
// validated again.
func (f *Form) SetAmount(input string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.Amount = input
}

// ApplyQuickAmount writes a computed amount into the field and clears its validation error.
func (f *Form) ApplyQuickAmount(amount fixedpoint.Amount) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.Amount = amount.String()
	f.state.AmountErr = nil
}

// SetError records a validation error on the amount field.
func (f *Form) SetError(err error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.AmountErr = err
}

// ParseAmount validates the amount input and records the outcome on the field.
func (f *Form) ParseAmount() (fixedpoint.Amount, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	amount, err := fixedpoint.ParseDecimal(f.state.Amount, f.denom)
	f.state.AmountErr = err

	return amount, err
}

// Platform returns the selected lending platform.
func (f *Form) Platform() types.Platform {
	f.mu.Lock()
	defer f.mu.Unlock()

	return f.state.Platform
}

// SelectPlatform selects a lending platform and opens the lending panel. Selecting anything other
// than PlatformNone requires a valid, non-zero amount.
func (f *Form) SelectPlatform(p types.Platform) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if !p.Valid() {
		return ErrUnknownPlatform
	}

	if p.IsLending() {
		if strings.TrimSpace(f.state.Amount) == "" {
			return ErrAmountRequired
		}

		if _, err := fixedpoint.ParseDecimal(f.state.Amount, f.denom); err != nil {
			return errors.Join(ErrAmountRequired, err)
		}
	}

	f.state.Platform = p
	f.state.LendingOpen = p.IsLending()

	return nil
}

// CloseLending closes the lending panel and resets the selection to PlatformNone.
func (f *Form) CloseLending() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.Platform = types.PlatformNone
	f.state.LendingOpen = false
}

// Reset empties the amount field after a successful stake. The lending selection is kept.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.state.Amount = ""
	f.state.AmountErr = nil
}
