package types //nolint:revive,nolintlint // allow pkg name 'types'

// Yield is the yield of a platform as reported by the yield feed. APY is a percentage,
// TotalSupplied is in derivative tokens. The yield of PlatformNone is the staking APY.
type Yield struct {
	APY           float64 `json:"apy" mapstructure:"apy"`
	TotalSupplied float64 `json:"totalSupplied" mapstructure:"total_supplied"`
}
