package stakeflow

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-playground/validator/v10"

	"github.com/lstlabs/stakeflow/fixedpoint"
	"github.com/lstlabs/stakeflow/sdk"
	sdkerrors "github.com/lstlabs/stakeflow/sdk/errors"
	"github.com/lstlabs/stakeflow/types"
)

// DefaultLockTTL bounds how long a distributed submission lock is held if the holder never
// releases it.
const DefaultLockTTL = 10 * time.Minute

// Snapshot is the chain state a build reads from. It is taken once and never re-read mid-build.
type Snapshot struct {
	Balance fixedpoint.Amount
	Rate    fixedpoint.ExchangeRate
	Yields  map[types.Platform]types.Yield
}

// StakingAPY returns the staking APY in percent.
func (s Snapshot) StakingAPY() float64 {
	return s.Yields[types.PlatformNone].APY
}

// SessionConfig holds the static settings of a session.
type SessionConfig struct {
	Contracts    types.Contracts
	Referral     string
	PollInterval time.Duration
	LockTTL      time.Duration
}

// SessionDeps are the collaborators of a session. Rates, Yields and Lock are optional.
type SessionDeps struct {
	Balances  sdk.BalanceFeed      `validate:"required"`
	Previewer sdk.Previewer        `validate:"required"`
	Submitter sdk.Submitter        `validate:"required"`
	Oracle    sdk.FinalityOracle   `validate:"required"`
	Analytics sdk.AnalyticsSink    `validate:"required"`
	Notifier  sdk.NotificationSink `validate:"required"`
	Rates     sdk.RateFeed
	Yields    sdk.YieldFeed
	Lock      sdk.SubmissionLock
}

// Session runs the stake flow for one form: validation, the double submission guard, building,
// submission and lifecycle tracking. It is safe for concurrent use.
type Session struct {
	cfg     SessionConfig
	deps    SessionDeps
	form    *Form
	tracker *Tracker

	mu       sync.Mutex
	identity *common.Address
	snapshot Snapshot
	inFlight bool
	lockKey  string
	share    string
}

// NewSession creates a new Session.
func NewSession(cfg SessionConfig, deps SessionDeps) (*Session, error) {
	validate := validator.New()
	if err := validate.Struct(cfg.Contracts); err != nil {
		return nil, fmt.Errorf("invalid contracts: %w", err)
	}
	if err := validate.Struct(deps); err != nil {
		return nil, fmt.Errorf("invalid session dependencies: %w", err)
	}

	if cfg.LockTTL <= 0 {
		cfg.LockTTL = DefaultLockTTL
	}

	s := &Session{
		cfg:  cfg,
		deps: deps,
		form: NewForm(cfg.Contracts.Base),
		snapshot: Snapshot{
			Balance: fixedpoint.Zero(cfg.Contracts.Base),
			Yields:  map[types.Platform]types.Yield{},
		},
	}
	s.tracker = NewTracker(deps.Notifier, deps.Analytics, deps.Oracle,
		WithPollInterval(cfg.PollInterval),
		WithOnAccepted(s.accepted),
	)

	return s, nil
}

// Form returns the form the session submits.
func (s *Session) Form() *Form {
	return s.form
}

// Tracker returns the lifecycle tracker of the session.
func (s *Session) Tracker() *Tracker {
	return s.tracker
}

// Connect sets the depositor identity.
func (s *Session) Connect(addr common.Address) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = &addr
}

// Disconnect clears the depositor identity.
func (s *Session) Disconnect() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = nil
}

// Identity returns the connected depositor, or nil.
func (s *Session) Identity() *common.Address {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.identity == nil {
		return nil
	}
	addr := *s.identity

	return &addr
}

// Snapshot returns the last snapshot taken by Refresh.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot
}

// Refresh reads the balance of the connected depositor, the exchange rate and the yields, and
// replaces the snapshot. Feeds that are not configured keep their previous value.
func (s *Session) Refresh(ctx context.Context) (Snapshot, error) {
	prev := s.Snapshot()
	next := prev
	next.Yields = make(map[types.Platform]types.Yield, len(prev.Yields))
	for p, y := range prev.Yields {
		next.Yields[p] = y
	}

	if id := s.Identity(); id != nil {
		balance, err := s.deps.Balances.GetBalance(ctx, *id, s.cfg.Contracts.BaseToken)
		if err != nil {
			return Snapshot{}, fmt.Errorf("failed to read balance: %w", err)
		}
		next.Balance = balance
	}

	if s.deps.Rates != nil {
		rate, err := s.deps.Rates.GetRate(ctx)
		if err != nil {
			return Snapshot{}, fmt.Errorf("failed to read exchange rate: %w", err)
		}
		next.Rate = rate
	}

	if s.deps.Yields != nil {
		for _, p := range append([]types.Platform{types.PlatformNone}, types.LendingPlatforms()...) {
			y, err := s.deps.Yields.GetYield(ctx, p)
			if err != nil {
				sdk.LoggerFrom(ctx).Warnw("failed to read yield", "platform", p.Tag(), "error", err)
				continue
			}
			next.Yields[p] = y
		}
	}

	s.mu.Lock()
	s.snapshot = next
	s.mu.Unlock()

	return next, nil
}

// Estimate returns the derivative tokens the current amount converts to at the snapshot rate.
// Unparseable input estimates to zero.
func (s *Session) Estimate() fixedpoint.Amount {
	snap := s.Snapshot()

	amount, err := fixedpoint.ParseDecimal(s.form.Amount(), s.cfg.Contracts.Base)
	if err != nil {
		return fixedpoint.Zero(s.cfg.Contracts.Derivative)
	}

	return fixedpoint.Convert(amount, snap.Rate, fixedpoint.ToDerivative)
}

// QuickFill writes pct of the snapshot balance into the form.
func (s *Session) QuickFill(pct Percentage) (fixedpoint.Amount, error) {
	amount, err := QuickAmount(s.Identity(), s.Snapshot().Balance, pct)
	if err != nil {
		return fixedpoint.Amount{}, err
	}
	s.form.ApplyQuickAmount(amount)

	return amount, nil
}

// SharePrompt returns the share message opened by the last accepted stake, if any.
func (s *Session) SharePrompt() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.share, s.share != ""
}

// DismissShare closes the share prompt.
func (s *Session) DismissShare() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.share = ""
}

// Submit validates the form, builds the deposit and hands it to the submitter. Local validation
// fails before any network call. A user rejection is returned as ErrUserRejected and any other
// submission error as SubmissionFailedError; both leave the session free to submit again.
func (s *Session) Submit(ctx context.Context) (types.TransactionHandle, error) {
	lggr := sdk.LoggerFrom(ctx)

	amount, err := s.form.ParseAmount()
	if err != nil {
		return types.TransactionHandle{}, err
	}

	id := s.Identity()
	if id == nil {
		return types.TransactionHandle{}, ErrNoWalletConnected
	}
	depositor := *id

	balance, err := s.deps.Balances.GetBalance(ctx, depositor, s.cfg.Contracts.BaseToken)
	if err != nil {
		return types.TransactionHandle{}, fmt.Errorf("failed to read balance: %w", err)
	}
	if amount.Cmp(balance) > 0 {
		err = NewInsufficientBalanceError(amount, balance)
		s.form.SetError(err)

		return types.TransactionHandle{}, err
	}

	if err = s.acquire(ctx, depositor); err != nil {
		return types.TransactionHandle{}, err
	}

	s.deps.Analytics.Record(ctx, EventStakeClick, map[string]any{
		"address": depositor.Hex(),
		"amount":  amount.String(),
	})

	calls, err := NewDepositBuilder(s.cfg.Contracts, s.deps.Previewer).
		SetAmount(amount).
		SetDepositor(depositor).
		SetReferral(s.cfg.Referral).
		SetLending(s.form.Platform()).
		Build(ctx)
	if err != nil {
		s.release(ctx)
		return types.TransactionHandle{}, err
	}

	attempt := s.tracker.Begin(amount, depositor)
	lggr.Infow("submitting deposit", "attempt", attempt.ID, "calls", len(calls), "amount", amount.String())

	handle, err := s.deps.Submitter.Submit(ctx, calls)
	if err != nil {
		handle = types.TransactionHandle{Err: &types.SubmissionError{
			Kind:          sdkerrors.Kind(err),
			UserRejection: sdkerrors.IsUserRejection(err),
			Cause:         err,
		}}
	}
	if handle.Err == nil && !handle.HasHash() && !handle.Pending {
		// Nothing to await. Left as is the attempt would stay Submitting and hold the session.
		handle.Err = &types.SubmissionError{Kind: "SubmissionError", Cause: ErrNoTransactionHash}
	}

	switch state := s.tracker.Observe(ctx, handle); state {
	case types.StateRejectedByUser:
		s.release(ctx)
		return handle, fmt.Errorf("%w: %w", ErrUserRejected, handle.Err)
	case types.StateFailed:
		s.release(ctx)
		lggr.Errorw("deposit submission failed", "attempt", attempt.ID, "error", handle.Err)

		return handle, NewSubmissionFailedError(handle.Err.Kind, handle.Err.Cause)
	default:
		lggr.Infow("deposit submitted", "attempt", attempt.ID, "hash", handle.Hash, "state", state.String())
	}

	return handle, nil
}

// Track waits until the submitted transaction reaches a terminal state or ctx is done, and frees
// the session for the next submission once it is terminal.
func (s *Session) Track(ctx context.Context) (Attempt, error) {
	attempt, err := s.tracker.AwaitFinality(ctx)
	if attempt.State.IsTerminal() || errors.Is(err, ErrNoTransactionHash) {
		s.release(ctx)
	}

	return attempt, err
}

func (s *Session) accepted(a Attempt) {
	s.form.Reset()

	snap := s.Snapshot()
	platform := s.form.Platform()
	msg := ShareMessage(snap.StakingAPY(), platform, PlatformYield(snap.Yields, platform))

	s.mu.Lock()
	s.share = msg
	s.mu.Unlock()
}

func (s *Session) acquire(ctx context.Context, depositor common.Address) error {
	s.mu.Lock()
	if s.inFlight {
		s.mu.Unlock()
		return ErrSubmissionInFlight
	}
	s.inFlight = true
	s.mu.Unlock()

	if s.deps.Lock == nil {
		return nil
	}

	key := "stakeflow:submit:" + depositor.Hex()
	ok, err := s.deps.Lock.Acquire(ctx, key, s.cfg.LockTTL)
	if err != nil || !ok {
		s.mu.Lock()
		s.inFlight = false
		s.mu.Unlock()

		if err != nil {
			return fmt.Errorf("failed to acquire submission lock: %w", err)
		}

		return ErrSubmissionInFlight
	}

	s.mu.Lock()
	s.lockKey = key
	s.mu.Unlock()

	return nil
}

func (s *Session) release(ctx context.Context) {
	s.mu.Lock()
	key := s.lockKey
	s.lockKey = ""
	s.inFlight = false
	s.mu.Unlock()

	if key == "" || s.deps.Lock == nil {
		return
	}

	// Released even when the caller's context is already cancelled.
	if err := s.deps.Lock.Release(context.WithoutCancel(ctx), key); err != nil {
		sdk.LoggerFrom(ctx).Warnw("failed to release submission lock", "key", key, "error", err)
	}
}
