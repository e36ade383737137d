package main

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/lstlabs/stakeflow"
	"github.com/lstlabs/stakeflow/analytics"
	"github.com/lstlabs/stakeflow/config"
	"github.com/lstlabs/stakeflow/internal/utils/safecast"
	"github.com/lstlabs/stakeflow/lock"
	"github.com/lstlabs/stakeflow/notify"
	"github.com/lstlabs/stakeflow/sdk"
	"github.com/lstlabs/stakeflow/sdk/evm"
	"github.com/lstlabs/stakeflow/types"
)

// env is what every command runs against: the loaded config, an RPC client and the sinks.
type env struct {
	cfg       *config.Config
	contracts types.Contracts
	chainID   uint64
	client    *ethclient.Client
	inspector *evm.Inspector
	places    int32
	lggr      *zap.SugaredLogger
	registry  *prometheus.Registry
	redis     *redis.Client
	closers   []func() error
}

func newLogger(verbose bool) (*zap.SugaredLogger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if !verbose {
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	}

	lggr, err := zcfg.Build()
	if err != nil {
		return nil, err
	}

	return lggr.Sugar(), nil
}

func setup(ctx context.Context, opts *rootOptions) (context.Context, *env, error) {
	places, err := safecast.IntToInt32(opts.places)
	if err != nil || places < 0 {
		return ctx, nil, fmt.Errorf("invalid --places %d", opts.places)
	}

	lggr, err := newLogger(opts.verbose)
	if err != nil {
		return ctx, nil, fmt.Errorf("failed to build logger: %w", err)
	}
	ctx = sdk.WithLogger(ctx, lggr)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return ctx, nil, err
	}

	contracts, err := cfg.ContractSet()
	if err != nil {
		return ctx, nil, err
	}

	chainID, err := cfg.ChainID()
	if err != nil {
		return ctx, nil, err
	}

	client, err := ethclient.DialContext(ctx, cfg.Chain.RPCURL)
	if err != nil {
		return ctx, nil, fmt.Errorf("failed to dial %s: %w", cfg.Chain.RPCURL, err)
	}

	e := &env{
		cfg:       cfg,
		contracts: contracts,
		chainID:   chainID,
		places:    places,
		client:    client,
		inspector: evm.NewInspector(client, contracts),
		lggr:      lggr,
		registry:  prometheus.NewRegistry(),
	}
	e.closers = append(e.closers, func() error {
		client.Close()
		return nil
	})

	if cfg.Redis.Enabled() {
		e.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err = e.redis.Ping(ctx).Err(); err != nil {
			e.Close()
			return ctx, nil, fmt.Errorf("failed to connect to redis: %w", err)
		}
		e.closers = append(e.closers, e.redis.Close)
	}

	if cfg.Metrics.Enabled {
		e.serveMetrics(cfg.Metrics.Addr)
	}

	return ctx, e, nil
}

func (e *env) serveMetrics(addr string) {
	srv := &http.Server{
		Addr:              addr,
		Handler:           promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{}),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.lggr.Warnw("metrics server stopped", "addr", addr, "error", err)
		}
	}()
	e.closers = append(e.closers, srv.Close)
}

// Close releases everything setup opened, in reverse order.
func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i](); err != nil {
			e.lggr.Warnw("failed to close", "error", err)
		}
	}
	_ = e.lggr.Sync()
}

func (e *env) analyticsSink() sdk.AnalyticsSink {
	sinks := analytics.Multi{
		analytics.NewLogger(e.lggr),
		analytics.NewPrometheus(e.registry),
	}

	if e.cfg.Kafka.Enabled() {
		k := analytics.NewKafka(analytics.NewKafkaWriter(e.cfg.Kafka.Brokers, e.cfg.Kafka.Topic), e.lggr)
		sinks = append(sinks, k)
		e.closers = append(e.closers, k.Close)
	}

	return sinks
}

func (e *env) notificationSink() sdk.NotificationSink {
	if e.redis != nil {
		return notify.NewRedis(e.redis, e.lggr)
	}

	return notify.NewLogger(e.lggr)
}

func (e *env) submissionLock() sdk.SubmissionLock {
	if e.redis != nil {
		return lock.NewRedis(e.redis)
	}

	return lock.NewLocal()
}

// newSession wires a session that signs with key and connects the key's address.
func (e *env) newSession(key *ecdsa.PrivateKey) (*stakeflow.Session, error) {
	auth, err := bind.NewKeyedTransactorWithChainID(key, new(big.Int).SetUint64(e.chainID))
	if err != nil {
		return nil, err
	}

	session, err := stakeflow.NewSession(stakeflow.SessionConfig{
		Contracts:    e.contracts,
		Referral:     e.cfg.Session.Referral,
		PollInterval: e.cfg.Session.PollInterval,
		LockTTL:      e.cfg.Session.LockTTL,
	}, stakeflow.SessionDeps{
		Balances:  e.inspector,
		Previewer: e.inspector,
		Submitter: evm.NewExecutor(evm.NewEncoder(), e.client, auth, e.chainID, e.cfg.BatchDelegate()),
		Oracle:    evm.NewFinalityOracle(e.client),
		Analytics: e.analyticsSink(),
		Notifier:  e.notificationSink(),
		Rates:     e.inspector,
		Yields:    e.cfg.YieldFeed(),
		Lock:      e.submissionLock(),
	})
	if err != nil {
		return nil, err
	}
	session.Connect(crypto.PubkeyToAddress(key.PublicKey))

	return session, nil
}

// resolveDepositor returns the --from address, or the address of the configured key.
func resolveDepositor(from string, envFile string) (common.Address, error) {
	if from != "" {
		if !common.IsHexAddress(from) {
			return common.Address{}, fmt.Errorf("invalid address %q", from)
		}

		return common.HexToAddress(from), nil
	}

	key, err := config.LoadPrivateKey(envFile)
	if err != nil {
		return common.Address{}, fmt.Errorf("no --from address given: %w", err)
	}

	return crypto.PubkeyToAddress(key.PublicKey), nil
}
