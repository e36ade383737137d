package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lstlabs/stakeflow"
	"github.com/lstlabs/stakeflow/fixedpoint"
	"github.com/lstlabs/stakeflow/types"
)

func buildQuoteCmd(opts *rootOptions) *cobra.Command {
	cmd := cobra.Command{
		Use:   "quote AMOUNT",
		Short: "Estimate the derivative tokens minted for an amount and list platform yields",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, e, err := setup(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer e.Close()

			if _, err = fixedpoint.ParseDecimal(args[0], e.contracts.Base); err != nil {
				return err
			}

			rate, err := e.inspector.GetRate(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Exchange rate: 1 %s = %s %s\n",
				e.contracts.Derivative.Symbol, rate.Display(e.places), e.contracts.Base.Symbol)
			fmt.Fprintf(out, "You will get: %s %s\n",
				fixedpoint.EstimateDisplay(args[0], rate, e.places), e.contracts.Derivative.Symbol)

			yields := e.cfg.YieldFeed().All()
			if staking, ok := yields[types.PlatformNone]; ok {
				fmt.Fprintf(out, "Staking APY: %.2f%%\n", staking.APY)
			}
			for _, p := range stakeflow.SortPlatforms(yields) {
				y := yields[p]
				fmt.Fprintf(out, "%-8s APY %.2f%%  supplied %.2f %s\n",
					p.Name(), y.APY, y.TotalSupplied, e.contracts.Derivative.Symbol)
			}

			return nil
		},
	}

	return &cmd
}
