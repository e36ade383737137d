package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/lstlabs/stakeflow"
	"github.com/lstlabs/stakeflow/fixedpoint"
)

func buildQuickCmd(opts *rootOptions) *cobra.Command {
	var from string

	cmd := cobra.Command{
		Use:   "quick PERCENT",
		Short: "Compute a quick amount (25, 50, 75 or 100 percent) of the depositor balance",
		Long:  `At 100 percent one whole token is kept back for fees.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid percentage %q: %w", args[0], err)
			}
			pct, err := stakeflow.ParsePercentage(n)
			if err != nil {
				return err
			}

			ctx, e, err := setup(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer e.Close()

			depositor, err := resolveDepositor(from, opts.envFile)
			if err != nil {
				return err
			}

			balance, err := e.inspector.GetBalance(ctx, depositor, e.contracts.BaseToken)
			if err != nil {
				return err
			}

			amount, err := stakeflow.QuickAmount(&depositor, balance, pct)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Balance: %s %s\n", balance.Display(e.places), e.contracts.Base.Symbol)
			fmt.Fprintf(out, "%d%%: %s %s\n", n, amount.String(), e.contracts.Base.Symbol)

			rate, err := e.inspector.GetRate(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "You will get: %s %s\n",
				fixedpoint.Convert(amount, rate, fixedpoint.ToDerivative).Display(e.places), e.contracts.Derivative.Symbol)

			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Depositor address (defaults to the PRIVATE_KEY address)")

	return &cmd
}
