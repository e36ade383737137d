// Package config loads the settings of the stakeflow CLI from a YAML file and STAKEFLOW_*
// environment variables.
package config

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/lstlabs/stakeflow/fixedpoint"
	"github.com/lstlabs/stakeflow/internal/utils/safecast"
	"github.com/lstlabs/stakeflow/sdk/evm"
	"github.com/lstlabs/stakeflow/types"
)

const (
	// EnvPrefix prefixes every environment override, e.g. STAKEFLOW_CHAIN_RPC_URL.
	EnvPrefix = "STAKEFLOW"

	// PrivateKeyEnv holds the hex encoded signing key. It is read from the environment or .env.
	PrivateKeyEnv = "PRIVATE_KEY"

	defaultConfigName = "stakeflow"
)

var (
	// ErrMissingPrivateKey is returned when no signing key is configured.
	ErrMissingPrivateKey = errors.New("PRIVATE_KEY environment variable not set")

	// ErrUnknownYield is returned by the static yield feed for a platform with no configured yield.
	ErrUnknownYield = errors.New("no yield configured for platform")
)

type Config struct {
	Chain     ChainConfig            `mapstructure:"chain"`
	Contracts ContractsConfig        `mapstructure:"contracts"`
	Session   SessionConfig          `mapstructure:"session"`
	Redis     RedisConfig            `mapstructure:"redis"`
	Kafka     KafkaConfig            `mapstructure:"kafka"`
	Metrics   MetricsConfig          `mapstructure:"metrics"`
	Yields    map[string]types.Yield `mapstructure:"yields"`
}

type ChainConfig struct {
	Selector  uint64 `mapstructure:"selector" validate:"required"`
	RPCURL    string `mapstructure:"rpc_url" validate:"required,url"`
	Simulated bool   `mapstructure:"simulated"`
}

// ContractsConfig holds hex addresses. DerivativeToken defaults to Vault for ERC-4626 vaults.
// BatchDelegate is the EIP-7702 batch executor the depositor's account must delegate to.
type ContractsConfig struct {
	BaseToken       string             `mapstructure:"base_token" validate:"required,eth_addr"`
	Vault           string             `mapstructure:"vault" validate:"required,eth_addr"`
	DerivativeToken string             `mapstructure:"derivative_token" validate:"omitempty,eth_addr"`
	BatchDelegate   string             `mapstructure:"batch_delegate" validate:"required,eth_addr"`
	Markets         map[string]string  `mapstructure:"markets" validate:"dive,keys,oneof=vesu nostra-lend,endkeys,eth_addr"`
	Base            DenominationConfig `mapstructure:"base"`
	Derivative      DenominationConfig `mapstructure:"derivative"`
}

type DenominationConfig struct {
	Symbol   string `mapstructure:"symbol" validate:"required"`
	Decimals int    `mapstructure:"decimals" validate:"gte=0,lte=36"`
}

func (c DenominationConfig) Denomination() (fixedpoint.Denomination, error) {
	decimals, err := safecast.IntToUint8(c.Decimals)
	if err != nil {
		return fixedpoint.Denomination{}, fmt.Errorf("decimals of %s: %w", c.Symbol, err)
	}

	return fixedpoint.Denomination{Symbol: c.Symbol, Decimals: decimals}, nil
}

type SessionConfig struct {
	Referral     string        `mapstructure:"referral"`
	PollInterval time.Duration `mapstructure:"poll_interval" validate:"gt=0"`
	LockTTL      time.Duration `mapstructure:"lock_ttl" validate:"gt=0"`
}

// RedisConfig enables the Redis notification sink and submission lock when Addr is set.
type RedisConfig struct {
	Addr     string `mapstructure:"addr" validate:"omitempty,hostname_port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db" validate:"gte=0"`
}

func (c RedisConfig) Enabled() bool {
	return c.Addr != ""
}

// KafkaConfig enables the Kafka analytics publisher when Brokers is non-empty.
type KafkaConfig struct {
	Brokers []string `mapstructure:"brokers" validate:"dive,hostname_port"`
	Topic   string   `mapstructure:"topic" validate:"required_with=Brokers"`
}

func (c KafkaConfig) Enabled() bool {
	return len(c.Brokers) > 0
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr" validate:"required_if=Enabled true"`
}

// Load reads the configuration. An explicit path must exist; with an empty path a stakeflow.yaml
// in the working directory is used if present, otherwise defaults and environment variables.
func Load(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	} else {
		v.SetConfigName(defaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("chain.selector", 0)
	v.SetDefault("chain.rpc_url", "")
	v.SetDefault("chain.simulated", false)

	v.SetDefault("contracts.base_token", "")
	v.SetDefault("contracts.vault", "")
	v.SetDefault("contracts.derivative_token", "")
	v.SetDefault("contracts.batch_delegate", "")
	v.SetDefault("contracts.base.symbol", "STRK")
	v.SetDefault("contracts.base.decimals", 18)
	v.SetDefault("contracts.derivative.symbol", "xSTRK")
	v.SetDefault("contracts.derivative.decimals", 18)

	v.SetDefault("session.referral", "")
	v.SetDefault("session.poll_interval", 2*time.Second)
	v.SetDefault("session.lock_ttl", 10*time.Minute)

	v.SetDefault("redis.addr", "")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("kafka.brokers", []string{})
	v.SetDefault("kafka.topic", "stakeflow-events")

	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.addr", ":9102")
}

// Validate checks the struct tags and that the chain selector resolves to an EVM chain.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if _, err := c.ChainID(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	for tag := range c.Yields {
		if _, err := types.ParsePlatform(tag); err != nil {
			return fmt.Errorf("invalid config: yields: %w", err)
		}
	}

	return nil
}

// ChainID resolves the EVM chain id of the configured selector.
func (c *Config) ChainID() (uint64, error) {
	return evm.GetEVMChainID(types.ChainSelector(c.Chain.Selector), c.Chain.Simulated)
}

// ContractSet converts the configured addresses into the form the builder composes against.
func (c *Config) ContractSet() (types.Contracts, error) {
	vault := common.HexToAddress(c.Contracts.Vault)
	derivative := vault
	if c.Contracts.DerivativeToken != "" {
		derivative = common.HexToAddress(c.Contracts.DerivativeToken)
	}

	base, err := c.Contracts.Base.Denomination()
	if err != nil {
		return types.Contracts{}, err
	}
	derivativeDenom, err := c.Contracts.Derivative.Denomination()
	if err != nil {
		return types.Contracts{}, err
	}

	markets := make(map[types.Platform]common.Address, len(c.Contracts.Markets))
	for tag, addr := range c.Contracts.Markets {
		p, err := types.ParsePlatform(tag)
		if err != nil {
			return types.Contracts{}, fmt.Errorf("contracts.markets: %w", err)
		}
		markets[p] = common.HexToAddress(addr)
	}

	return types.Contracts{
		BaseToken:       common.HexToAddress(c.Contracts.BaseToken),
		Vault:           vault,
		DerivativeToken: derivative,
		Markets:         markets,
		Base:            base,
		Derivative:      derivativeDenom,
	}, nil
}

// BatchDelegate returns the address of the batch executor accounts delegate to.
func (c *Config) BatchDelegate() common.Address {
	return common.HexToAddress(c.Contracts.BatchDelegate)
}

// YieldFeed returns a feed serving the configured yields.
func (c *Config) YieldFeed() *StaticYieldFeed {
	yields := make(map[types.Platform]types.Yield, len(c.Yields))
	for tag, y := range c.Yields {
		// tags are checked in Validate
		if p, err := types.ParsePlatform(tag); err == nil {
			yields[p] = y
		}
	}

	return &StaticYieldFeed{yields: yields}
}

// StaticYieldFeed serves fixed yields read from configuration.
type StaticYieldFeed struct {
	yields map[types.Platform]types.Yield
}

func (f *StaticYieldFeed) GetYield(_ context.Context, platform types.Platform) (types.Yield, error) {
	y, ok := f.yields[platform]
	if !ok {
		return types.Yield{}, fmt.Errorf("%w: %s", ErrUnknownYield, platform)
	}

	return y, nil
}

// All returns a copy of every configured yield.
func (f *StaticYieldFeed) All() map[types.Platform]types.Yield {
	out := make(map[types.Platform]types.Yield, len(f.yields))
	for p, y := range f.yields {
		out[p] = y
	}

	return out
}

// LoadPrivateKey loads the signing key from the environment, reading envFile first if it exists.
func LoadPrivateKey(envFile string) (*ecdsa.PrivateKey, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("error loading %s file: %w", envFile, err)
		}
	}

	hexKey := os.Getenv(PrivateKeyEnv)
	if hexKey == "" {
		return nil, ErrMissingPrivateKey
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("invalid private key: %w", err)
	}

	return key, nil
}
