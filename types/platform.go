package types //nolint:revive,nolintlint // allow pkg name 'types'

import (
	"errors"
	"fmt"
)

// ErrUnknownPlatform is returned when a lending platform tag is not recognised.
var ErrUnknownPlatform = errors.New("unknown lending platform")

// Platform is the lending market the derivative token is supplied to after the deposit.
// PlatformNone means the derivative token stays in the depositor's wallet.
type Platform int

const (
	PlatformNone Platform = iota
	PlatformVesu
	PlatformNostra
)

var platformTags = map[Platform]string{
	PlatformNone:   "none",
	PlatformVesu:   "vesu",
	PlatformNostra: "nostra-lend",
}

var platformNames = map[Platform]string{
	PlatformNone:   "None",
	PlatformVesu:   "Vesu",
	PlatformNostra: "Nostra",
}

// LendingPlatforms lists every platform a deposit can be supplied to.
func LendingPlatforms() []Platform {
	return []Platform{PlatformVesu, PlatformNostra}
}

// ParsePlatform maps a tag such as "vesu" or "nostra-lend" to a Platform. An empty tag is
// PlatformNone.
func ParsePlatform(tag string) (Platform, error) {
	if tag == "" {
		return PlatformNone, nil
	}

	for p, t := range platformTags {
		if t == tag {
			return p, nil
		}
	}

	return PlatformNone, fmt.Errorf("%w: %q", ErrUnknownPlatform, tag)
}

// Tag returns the machine tag of the platform.
func (p Platform) Tag() string {
	if t, ok := platformTags[p]; ok {
		return t
	}

	return fmt.Sprintf("platform(%d)", int(p))
}

// Name returns the display name of the platform.
func (p Platform) Name() string {
	if n, ok := platformNames[p]; ok {
		return n
	}

	return p.Tag()
}

func (p Platform) String() string {
	return p.Tag()
}

// Valid reports whether p is a known platform, including PlatformNone.
func (p Platform) Valid() bool {
	_, ok := platformTags[p]
	return ok
}

// IsLending reports whether p supplies the derivative token to a market.
func (p Platform) IsLending() bool {
	return p != PlatformNone && p.Valid()
}
