package stakeflow

import (
	"fmt"
	"sort"
	"strings"

	"github.com/lstlabs/stakeflow/types"
)

// ShareMessage composes the prompt offered after a successful stake. apy is the staking APY and
// platformYield the lending yield of platform, both in percent. platformYield is ignored when
// platform is PlatformNone.
func ShareMessage(apy float64, platform types.Platform, platformYield float64) string {
	lending := platform.IsLending()

	total := apy
	if lending {
		total += platformYield
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Just staked with liquid staking, earning %.2f%% APY! 🚀\n\n", total)
	if lending {
		fmt.Fprintf(&b, "My liquid staking tokens are now earning an additional %.2f%% yield on %s! 📈\n\n",
			platformYield, platform.Name())
	}
	b.WriteString("Be part of the journey!\n\n")

	return b.String()
}

// PlatformYield returns the lending yield of platform, or zero when it is not a lending platform
// or has no reported yield.
func PlatformYield(yields map[types.Platform]types.Yield, platform types.Platform) float64 {
	if !platform.IsLending() {
		return 0
	}

	return yields[platform].APY
}

// SortPlatforms returns the lending platforms ordered by total supplied, largest first. Platforms
// without a reported yield count as zero and keep their default order on ties.
func SortPlatforms(yields map[types.Platform]types.Yield) []types.Platform {
	platforms := types.LendingPlatforms()
	sort.SliceStable(platforms, func(i, j int) bool {
		return yields[platforms[i]].TotalSupplied > yields[platforms[j]].TotalSupplied
	})

	return platforms
}
