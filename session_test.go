package stakeflow_test

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/lstlabs/stakeflow"
	"github.com/lstlabs/stakeflow/fixedpoint"
	"github.com/lstlabs/stakeflow/internal/testutils/chaintest"
	sdkerrors "github.com/lstlabs/stakeflow/sdk/errors"
	"github.com/lstlabs/stakeflow/sdk/mocks"
	"github.com/lstlabs/stakeflow/types"
)

type SessionTestSuite struct {
	suite.Suite

	balances  *mocks.BalanceFeed
	rates     *mocks.RateFeed
	yields    *mocks.YieldFeed
	previewer *mocks.Previewer
	submitter *mocks.Submitter
	oracle    *mocks.FinalityOracle
	lock      *mocks.SubmissionLock
	analytics *fakeAnalytics
	notifier  *fakeNotifier

	session *stakeflow.Session
}

func TestSessionTestSuite(t *testing.T) {
	t.Parallel()

	suite.Run(t, new(SessionTestSuite))
}

func (s *SessionTestSuite) SetupTest() {
	t := s.T()

	s.balances = mocks.NewBalanceFeed(t)
	s.rates = mocks.NewRateFeed(t)
	s.yields = mocks.NewYieldFeed(t)
	s.previewer = mocks.NewPreviewer(t)
	s.submitter = mocks.NewSubmitter(t)
	s.oracle = mocks.NewFinalityOracle(t)
	s.lock = mocks.NewSubmissionLock(t)
	s.analytics = newFakeAnalytics()
	s.notifier = newFakeNotifier()

	session, err := stakeflow.NewSession(stakeflow.SessionConfig{
		Contracts:    chaintest.Contracts(),
		PollInterval: time.Millisecond,
		LockTTL:      time.Minute,
	}, stakeflow.SessionDeps{
		Balances:  s.balances,
		Rates:     s.rates,
		Yields:    s.yields,
		Previewer: s.previewer,
		Submitter: s.submitter,
		Oracle:    s.oracle,
		Analytics: s.analytics,
		Notifier:  s.notifier,
		Lock:      s.lock,
	})
	s.Require().NoError(err)
	s.session = session
}

func (s *SessionTestSuite) expectBalance(whole int64) {
	s.balances.EXPECT().GetBalance(mock.Anything, chaintest.Depositor, chaintest.BaseToken).
		Return(fixedpoint.Whole(whole, chaintest.STRK), nil)
}

func (s *SessionTestSuite) expectAcquire() {
	key := "stakeflow:submit:" + chaintest.Depositor.Hex()
	s.lock.EXPECT().Acquire(mock.Anything, key, time.Minute).Return(true, nil).Once()
}

// expectLock expects the lock to be taken and released once.
func (s *SessionTestSuite) expectLock() {
	s.expectAcquire()
	s.lock.EXPECT().Release(mock.Anything, "stakeflow:submit:"+chaintest.Depositor.Hex()).Return(nil).Once()
}

func (s *SessionTestSuite) Test_Submit_AcceptedResetsFormAndOpensShare() {
	ctx := context.Background()

	s.expectBalance(100)
	s.expectLock()
	s.submitter.EXPECT().Submit(mock.Anything, mock.MatchedBy(func(calls types.CallSequence) bool {
		return len(calls) == 2
	})).Return(types.TransactionHandle{Hash: hash1, Pending: true}, nil)
	s.oracle.EXPECT().IsFinalized(mock.Anything, hash1).Return(false, nil).Once()
	s.oracle.EXPECT().IsFinalized(mock.Anything, hash1).Return(true, nil).Once()

	s.session.Connect(chaintest.Depositor)
	s.session.Form().SetAmount("10")

	handle, err := s.session.Submit(ctx)
	s.Require().NoError(err)
	s.Equal(hash1, handle.Hash)
	s.Equal(types.StatePending, s.session.Tracker().State())

	attempt, err := s.session.Track(ctx)
	s.Require().NoError(err)
	s.Equal(types.StateAccepted, attempt.State)

	s.Empty(s.session.Form().Amount(), "form is reset after acceptance")
	msg, ok := s.session.SharePrompt()
	s.True(ok)
	s.Contains(msg, "APY")

	s.Equal(1, s.notifier.Shown(types.VariantPending))
	s.Equal(1, s.notifier.Shown(types.VariantComplete))
	s.Equal([]string{
		stakeflow.EventStakeClick,
		stakeflow.EventTxInit,
		stakeflow.EventTxSuccessful,
	}, s.analytics.Names())

	s.session.DismissShare()
	_, ok = s.session.SharePrompt()
	s.False(ok)
}

func (s *SessionTestSuite) Test_Submit_WithLending() {
	ctx := context.Background()

	s.expectBalance(100)
	s.expectAcquire()
	s.previewer.EXPECT().PreviewDeposit(mock.Anything, chaintest.Vault, mock.Anything).Return(big.NewInt(42), nil)
	s.submitter.EXPECT().Submit(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, calls types.CallSequence) (types.TransactionHandle, error) {
			s.Equal([]string{"approve", "deposit", "approve", "mint"}, calls.Entrypoints())
			return types.TransactionHandle{Hash: hash1, Pending: true}, nil
		})

	s.session.Connect(chaintest.Depositor)
	s.session.Form().SetAmount("10")
	s.Require().NoError(s.session.Form().SelectPlatform(types.PlatformNostra))

	_, err := s.session.Submit(ctx)
	s.Require().NoError(err)
}

func (s *SessionTestSuite) Test_Submit_ValidationOrder() {
	ctx := context.Background()

	// Invalid amount fails before anything else, even without a wallet.
	s.session.Form().SetAmount("not a number")
	_, err := s.session.Submit(ctx)
	s.Require().ErrorIs(err, stakeflow.ErrInvalidAmount)

	s.session.Form().SetAmount("5")
	_, err = s.session.Submit(ctx)
	s.Require().ErrorIs(err, stakeflow.ErrNoWalletConnected)

	s.expectBalance(1)
	s.session.Connect(chaintest.Depositor)
	_, err = s.session.Submit(ctx)

	var insufficient *stakeflow.InsufficientBalanceError
	s.Require().ErrorAs(err, &insufficient)
	s.Equal("5", insufficient.Requested.String())
	s.Equal("1", insufficient.Available.String())
	s.Require().ErrorIs(s.session.Form().State().AmountErr, stakeflow.ErrInsufficientBalance)

	s.Empty(s.analytics.Names(), "local validation emits nothing")
}

func (s *SessionTestSuite) Test_Submit_UserRejectedFreesGuard() {
	ctx := context.Background()

	s.balances.EXPECT().GetBalance(mock.Anything, mock.Anything, mock.Anything).
		Return(fixedpoint.Whole(100, chaintest.STRK), nil)
	key := "stakeflow:submit:" + chaintest.Depositor.Hex()
	s.lock.EXPECT().Acquire(mock.Anything, key, mock.Anything).Return(true, nil).Twice()
	s.lock.EXPECT().Release(mock.Anything, key).Return(nil).Once()
	s.submitter.EXPECT().Submit(mock.Anything, mock.Anything).
		Return(types.TransactionHandle{}, sdkerrors.ErrUserRejected).Once()
	s.submitter.EXPECT().Submit(mock.Anything, mock.Anything).
		Return(types.TransactionHandle{Hash: hash2, Pending: true}, nil).Once()

	s.session.Connect(chaintest.Depositor)
	s.session.Form().SetAmount("1")

	handle, err := s.session.Submit(ctx)
	s.Require().ErrorIs(err, stakeflow.ErrUserRejected)
	s.Require().NotNil(handle.Err)
	s.True(handle.Err.UserRejection)
	s.Equal(types.StateRejectedByUser, s.session.Tracker().State())
	s.Equal(0, s.notifier.Shown(types.VariantError))
	s.Equal([]string{stakeflow.NotificationID}, s.notifier.Dismissed())

	// The user can try again straight away.
	handle, err = s.session.Submit(ctx)
	s.Require().NoError(err)
	s.Equal(hash2, handle.Hash)
}

func (s *SessionTestSuite) Test_Submit_Failure() {
	ctx := context.Background()

	s.expectBalance(100)
	s.expectLock()
	s.submitter.EXPECT().Submit(mock.Anything, mock.Anything).Return(types.TransactionHandle{
		Hash: hash1,
		Err:  &types.SubmissionError{Kind: "SubmissionError", Cause: errors.New("insufficient funds for gas")},
	}, nil)

	s.session.Connect(chaintest.Depositor)
	s.session.Form().SetAmount("1")

	_, err := s.session.Submit(ctx)

	var failed *stakeflow.SubmissionFailedError
	s.Require().ErrorAs(err, &failed)
	s.Equal("SubmissionError", failed.Kind)
	s.Require().ErrorIs(err, stakeflow.ErrSubmissionFailed)
	s.Equal(1, s.notifier.Shown(types.VariantError))
	s.Equal(1, s.analytics.Count(stakeflow.EventTxFailed))
}

func (s *SessionTestSuite) Test_Submit_EmptyHandleFreesGuard() {
	ctx := context.Background()

	s.expectBalance(100)
	s.expectLock()
	s.expectAcquire()
	s.submitter.EXPECT().Submit(mock.Anything, mock.Anything).Return(types.TransactionHandle{}, nil).Once()
	s.submitter.EXPECT().Submit(mock.Anything, mock.Anything).
		Return(types.TransactionHandle{Hash: hash2, Pending: true}, nil).Once()

	s.session.Connect(chaintest.Depositor)
	s.session.Form().SetAmount("1")

	_, err := s.session.Submit(ctx)

	var failed *stakeflow.SubmissionFailedError
	s.Require().ErrorAs(err, &failed)
	s.Equal("SubmissionError", failed.Kind)
	s.Require().ErrorIs(err, stakeflow.ErrNoTransactionHash)
	s.Equal(types.StateFailed, s.session.Tracker().State())

	handle, err := s.session.Submit(ctx)
	s.Require().NoError(err, "the session is free for the next submission")
	s.Equal(hash2, handle.Hash)
}

func (s *SessionTestSuite) Test_Track_PendingWithoutHashFreesGuard() {
	ctx := context.Background()

	s.expectBalance(100)
	s.expectLock()
	s.expectAcquire()
	s.submitter.EXPECT().Submit(mock.Anything, mock.Anything).
		Return(types.TransactionHandle{Pending: true}, nil).Once()
	s.submitter.EXPECT().Submit(mock.Anything, mock.Anything).
		Return(types.TransactionHandle{Hash: hash2, Pending: true}, nil).Once()

	s.session.Connect(chaintest.Depositor)
	s.session.Form().SetAmount("1")

	_, err := s.session.Submit(ctx)
	s.Require().NoError(err)

	_, err = s.session.Track(ctx)
	s.Require().ErrorIs(err, stakeflow.ErrNoTransactionHash)

	_, err = s.session.Submit(ctx)
	s.Require().NoError(err)
}

func (s *SessionTestSuite) Test_Submit_PreviewUnavailableSubmitsNothing() {
	ctx := context.Background()

	s.expectBalance(100)
	s.expectLock()
	s.previewer.EXPECT().PreviewDeposit(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("rpc down"))

	s.session.Connect(chaintest.Depositor)
	s.session.Form().SetAmount("1")
	s.Require().NoError(s.session.Form().SelectPlatform(types.PlatformVesu))

	_, err := s.session.Submit(ctx)
	s.Require().ErrorIs(err, stakeflow.ErrPreviewUnavailable)
	s.Equal(types.StateIdle, s.session.Tracker().State())
}

func (s *SessionTestSuite) Test_Submit_InFlightGuard() {
	ctx := context.Background()

	s.balances.EXPECT().GetBalance(mock.Anything, mock.Anything, mock.Anything).
		Return(fixedpoint.Whole(100, chaintest.STRK), nil)
	s.lock.EXPECT().Acquire(mock.Anything, mock.Anything, mock.Anything).Return(true, nil).Once()
	s.submitter.EXPECT().Submit(mock.Anything, mock.Anything).
		Return(types.TransactionHandle{Hash: hash1, Pending: true}, nil).Once()

	s.session.Connect(chaintest.Depositor)
	s.session.Form().SetAmount("1")

	_, err := s.session.Submit(ctx)
	s.Require().NoError(err)

	_, err = s.session.Submit(ctx)
	s.Require().ErrorIs(err, stakeflow.ErrSubmissionInFlight)
	s.Equal(1, s.analytics.Count(stakeflow.EventStakeClick))
}

func (s *SessionTestSuite) Test_Submit_DistributedLockHeld() {
	ctx := context.Background()

	s.expectBalance(100)
	s.lock.EXPECT().Acquire(mock.Anything, mock.Anything, mock.Anything).Return(false, nil)

	s.session.Connect(chaintest.Depositor)
	s.session.Form().SetAmount("1")

	_, err := s.session.Submit(ctx)
	s.Require().ErrorIs(err, stakeflow.ErrSubmissionInFlight)
	s.Empty(s.analytics.Names())
}

func (s *SessionTestSuite) Test_RefreshEstimateAndQuickFill() {
	ctx := context.Background()

	rate, err := fixedpoint.NewExchangeRate(big.NewInt(1_050_000_000_000_000_000), 18, chaintest.STRK, chaintest.XSTRK)
	s.Require().NoError(err)

	s.expectBalance(10)
	s.rates.EXPECT().GetRate(mock.Anything).Return(rate, nil)
	s.yields.EXPECT().GetYield(mock.Anything, types.PlatformNone).Return(types.Yield{APY: 9.1}, nil)
	s.yields.EXPECT().GetYield(mock.Anything, types.PlatformVesu).Return(types.Yield{APY: 2, TotalSupplied: 10}, nil)
	s.yields.EXPECT().GetYield(mock.Anything, types.PlatformNostra).Return(types.Yield{}, errors.New("feed down"))

	_, err = s.session.QuickFill(stakeflow.Percent100)
	s.Require().ErrorIs(err, stakeflow.ErrNoWalletConnected)

	s.session.Connect(chaintest.Depositor)
	snap, err := s.session.Refresh(ctx)
	s.Require().NoError(err)
	s.Equal("10", snap.Balance.String())
	s.InDelta(9.1, snap.StakingAPY(), 1e-9)
	s.NotContains(snap.Yields, types.PlatformNostra)

	amount, err := s.session.QuickFill(stakeflow.Percent100)
	s.Require().NoError(err)
	s.Equal("9", amount.String())
	s.Equal("9", s.session.Form().Amount())

	s.session.Form().SetAmount("105")
	est := s.session.Estimate()
	s.Equal("100", est.String())
	s.Equal(chaintest.XSTRK, est.Denomination())

	s.session.Form().SetAmount("garbage")
	s.True(s.session.Estimate().IsZero())
}

func TestNewSession_Validation(t *testing.T) {
	t.Parallel()

	_, err := stakeflow.NewSession(stakeflow.SessionConfig{Contracts: chaintest.Contracts()}, stakeflow.SessionDeps{})
	require.ErrorContains(t, err, "invalid session dependencies")

	_, err = stakeflow.NewSession(stakeflow.SessionConfig{}, stakeflow.SessionDeps{})
	require.ErrorContains(t, err, "invalid contracts")
}

func TestSession_TrackContextDoneKeepsGuard(t *testing.T) {
	t.Parallel()

	balances := mocks.NewBalanceFeed(t)
	submitter := mocks.NewSubmitter(t)
	oracle := mocks.NewFinalityOracle(t)

	session, err := stakeflow.NewSession(stakeflow.SessionConfig{
		Contracts:    chaintest.Contracts(),
		PollInterval: time.Millisecond,
	}, stakeflow.SessionDeps{
		Balances:  balances,
		Previewer: mocks.NewPreviewer(t),
		Submitter: submitter,
		Oracle:    oracle,
		Analytics: newFakeAnalytics(),
		Notifier:  newFakeNotifier(),
	})
	require.NoError(t, err)

	balances.EXPECT().GetBalance(mock.Anything, mock.Anything, mock.Anything).Return(fixedpoint.Whole(5, chaintest.STRK), nil)
	submitter.EXPECT().Submit(mock.Anything, mock.Anything).Return(types.TransactionHandle{Hash: hash1, Pending: true}, nil)
	oracle.EXPECT().IsFinalized(mock.Anything, hash1).Return(false, nil)

	session.Connect(chaintest.Depositor)
	session.Form().SetAmount("1")
	_, err = session.Submit(context.Background())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	attempt, err := session.Track(ctx)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, types.StatePending, attempt.State)

	_, err = session.Submit(context.Background())
	require.ErrorIs(t, err, stakeflow.ErrSubmissionInFlight)
}
