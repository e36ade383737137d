package stakeflow

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"github.com/lstlabs/stakeflow/fixedpoint"
	"github.com/lstlabs/stakeflow/sdk"
	sdkerrors "github.com/lstlabs/stakeflow/sdk/errors"
	"github.com/lstlabs/stakeflow/types"
)

const (
	// NotificationID is the stable key of every stake notification, so a new one replaces the
	// previous instead of stacking.
	NotificationID = "stake"

	EventStakeClick      = "stake_click"
	EventTxInit          = "stake_tx_init"
	EventTxRejected      = "stake_tx_rejected"
	EventTxFailed        = "stake_tx_failed"
	EventTxSuccessful    = "stake_tx_successful"
	DefaultPollInterval  = 2 * time.Second
	SuccessNotifyTimeout = 3 * time.Second
)

// ErrNoTransactionHash is returned when finality is awaited before a hash is known.
var ErrNoTransactionHash = errors.New("no transaction hash to await")

// Attempt is the lifecycle record of one submission.
type Attempt struct {
	ID        string
	Amount    fixedpoint.Amount
	Depositor common.Address
	Hash      string
	State     types.LifecycleState
	Err       *types.SubmissionError
}

type guardKey struct {
	attempt string
	hash    string
	state   types.LifecycleState
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithPollInterval sets how often the finality oracle is polled.
func WithPollInterval(d time.Duration) TrackerOption {
	return func(t *Tracker) {
		if d > 0 {
			t.pollInterval = d
		}
	}
}

// WithOnAccepted registers a hook that runs once per accepted attempt.
func WithOnAccepted(fn func(Attempt)) TrackerOption {
	return func(t *Tracker) {
		t.onAccepted = fn
	}
}

// Tracker drives one submission attempt at a time through
// Idle → Submitting → Pending → {Accepted | RejectedByUser | Failed}
// and emits each notification and analytics event exactly once per transition, however often
// the same handle is observed.
type Tracker struct {
	mu           sync.Mutex
	notifier     sdk.NotificationSink
	analytics    sdk.AnalyticsSink
	oracle       sdk.FinalityOracle
	pollInterval time.Duration
	onAccepted   func(Attempt)

	attempt Attempt
	emitted map[guardKey]struct{}
}

// NewTracker creates a new Tracker in the Idle state.
func NewTracker(
	notifier sdk.NotificationSink, analytics sdk.AnalyticsSink, oracle sdk.FinalityOracle, opts ...TrackerOption,
) *Tracker {
	t := &Tracker{
		notifier:     notifier,
		analytics:    analytics,
		oracle:       oracle,
		pollInterval: DefaultPollInterval,
		emitted:      make(map[guardKey]struct{}),
	}
	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Attempt returns a copy of the current attempt.
func (t *Tracker) Attempt() Attempt {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.attempt
}

// State returns the state of the current attempt.
func (t *Tracker) State() types.LifecycleState {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.attempt.State
}

// Begin starts a fresh attempt in the Submitting state.
func (t *Tracker) Begin(amount fixedpoint.Amount, depositor common.Address) Attempt {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.attempt = Attempt{
		ID:        uuid.NewString(),
		Amount:    amount,
		Depositor: depositor,
		State:     types.StateSubmitting,
	}
	t.emitted = make(map[guardKey]struct{})

	return t.attempt
}

// Observe folds a submission handle into the current attempt and returns the resulting state.
// Observing the same handle again has no further effect, and terminal attempts ignore every
// observation.
func (t *Tracker) Observe(ctx context.Context, handle types.TransactionHandle) types.LifecycleState {
	var effects []func()

	t.mu.Lock()
	a := &t.attempt
	if a.State == types.StateIdle || a.State.IsTerminal() {
		state := a.State
		t.mu.Unlock()

		return state
	}

	if handle.HasHash() {
		a.Hash = handle.Hash
	}

	switch {
	case handle.Err != nil && handle.Err.UserRejection:
		a.State = types.StateRejectedByUser
		a.Err = handle.Err
		if t.once(types.StateRejectedByUser) {
			payload := t.payload(*a)
			payload["type"] = handle.Err.Kind
			effects = append(effects,
				func() { t.notifier.Dismiss(ctx, NotificationID) },
				func() { t.analytics.Record(ctx, EventTxRejected, payload) },
			)
		}

	case handle.Err != nil:
		a.State = types.StateFailed
		a.Err = handle.Err
		if t.once(types.StateFailed) {
			effects = append(effects, t.failureEffects(ctx, *a)...)
		}

	case handle.HasHash() || handle.Pending:
		a.State = types.StatePending
		if t.onceFor("", types.StatePending) {
			n := types.Notification{
				ID:      NotificationID,
				Variant: types.VariantPending,
				Title:   "In Progress..",
				Message: fmt.Sprintf("Staking %s %s", a.Amount, a.Amount.Denomination().Symbol),
			}
			effects = append(effects, func() { t.notifier.Show(ctx, n) })
		}
		// stake_tx_init is emitted once per hash, keyed on the state that produced the hash.
		if a.Hash != "" && t.onceFor(a.Hash, types.StateSubmitting) {
			payload := t.payload(*a)
			effects = append(effects, func() { t.analytics.Record(ctx, EventTxInit, payload) })
		}
	}

	state := a.State
	t.mu.Unlock()

	for _, fn := range effects {
		fn()
	}

	return state
}

// AwaitFinality polls the finality oracle for the current attempt's hash until it is accepted,
// reverted, or ctx is done. A cancelled context leaves the attempt Pending. Oracle errors other
// than a revert are logged and polled again.
func (t *Tracker) AwaitFinality(ctx context.Context) (Attempt, error) {
	lggr := sdk.LoggerFrom(ctx)

	a := t.Attempt()
	if a.State.IsTerminal() {
		return a, nil
	}
	if a.Hash == "" {
		return a, ErrNoTransactionHash
	}

	ticker := time.NewTicker(t.pollInterval)
	defer ticker.Stop()

	for {
		finalized, err := t.oracle.IsFinalized(ctx, a.Hash)
		switch {
		case errors.Is(err, sdkerrors.ErrTransactionReverted):
			return t.finish(ctx, a.ID, types.StateFailed, &types.SubmissionError{
				Kind:  sdkerrors.Kind(err),
				Cause: err,
			}), nil
		case err != nil:
			lggr.Warnw("finality check failed, retrying", "hash", a.Hash, "error", err)
		case finalized:
			return t.finish(ctx, a.ID, types.StateAccepted, nil), nil
		}

		select {
		case <-ctx.Done():
			return t.Attempt(), ctx.Err()
		case <-ticker.C:
		}
	}
}

func (t *Tracker) finish(ctx context.Context, attemptID string, state types.LifecycleState, cause *types.SubmissionError) Attempt {
	var effects []func()

	t.mu.Lock()
	a := &t.attempt
	if a.ID != attemptID || a.State.IsTerminal() {
		out := *a
		t.mu.Unlock()

		return out
	}

	a.State = state
	a.Err = cause
	snapshot := *a

	if t.once(state) {
		switch state {
		case types.StateAccepted:
			n := types.Notification{
				ID:       NotificationID,
				Variant:  types.VariantComplete,
				Title:    "Success",
				Message:  fmt.Sprintf("Staked %s %s", a.Amount, a.Amount.Denomination().Symbol),
				Duration: SuccessNotifyTimeout,
			}
			payload := t.payload(snapshot)
			effects = append(effects,
				func() { t.notifier.Show(ctx, n) },
				func() { t.analytics.Record(ctx, EventTxSuccessful, payload) },
			)
			if t.onAccepted != nil {
				effects = append(effects, func() { t.onAccepted(snapshot) })
			}
		case types.StateFailed:
			effects = append(effects, t.failureEffects(ctx, snapshot)...)
		}
	}
	t.mu.Unlock()

	for _, fn := range effects {
		fn()
	}

	return snapshot
}

func (t *Tracker) failureEffects(ctx context.Context, a Attempt) []func() {
	n := types.Notification{
		ID:      NotificationID,
		Variant: types.VariantError,
		Title:   "Something went wrong",
		Message: "Please try again",
	}
	payload := t.payload(a)
	if a.Err != nil {
		payload["type"] = a.Err.Kind
	}

	return []func(){
		func() { t.notifier.Show(ctx, n) },
		func() { t.analytics.Record(ctx, EventTxFailed, payload) },
	}
}

// once must be called with mu held.
func (t *Tracker) once(state types.LifecycleState) bool {
	return t.onceFor(t.attempt.Hash, state)
}

// onceFor must be called with mu held.
func (t *Tracker) onceFor(hash string, state types.LifecycleState) bool {
	key := guardKey{attempt: t.attempt.ID, hash: hash, state: state}
	if _, ok := t.emitted[key]; ok {
		return false
	}
	t.emitted[key] = struct{}{}

	return true
}

func (t *Tracker) payload(a Attempt) map[string]any {
	p := map[string]any{
		"attempt": a.ID,
		"address": a.Depositor.Hex(),
		"amount":  a.Amount.String(),
	}
	if a.Hash != "" {
		p["txHash"] = a.Hash
	}

	return p
}
