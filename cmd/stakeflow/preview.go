package main

import (
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/spf13/cobra"

	"github.com/lstlabs/stakeflow"
	"github.com/lstlabs/stakeflow/fixedpoint"
	"github.com/lstlabs/stakeflow/sdk/evm"
	"github.com/lstlabs/stakeflow/types"
)

func buildPreviewCmd(opts *rootOptions) *cobra.Command {
	var (
		from     string
		platform string
		referral string
		calldata bool
	)

	cmd := cobra.Command{
		Use:   "preview AMOUNT",
		Short: "Print the call sequence a deposit of AMOUNT would submit",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lending, err := types.ParsePlatform(platform)
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

			amount, err := fixedpoint.ParseDecimal(args[0], e.contracts.Base)
			if err != nil {
				return err
			}

			if !cmd.Flags().Changed("referral") {
				referral = e.cfg.Session.Referral
			}

			calls, err := stakeflow.NewDepositBuilder(e.contracts, e.inspector).
				SetAmount(amount).
				SetDepositor(depositor).
				SetReferral(referral).
				SetLending(lending).
				Build(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, call := range calls {
				fmt.Fprintf(out, "%d. %s.%s on %s %v\n", i+1, call.ContractType, call.Entrypoint, call.Target.Hex(), call.Args)
			}

			if calldata {
				data, err := evm.NewEncoder().EncodeBatch(calls)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "calldata: %s\n", hexutil.Encode(data))
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&from, "from", "", "Depositor address (defaults to the PRIVATE_KEY address)")
	cmd.Flags().StringVar(&platform, "platform", "", "Lending platform to supply the derivative token to (vesu, nostra-lend)")
	cmd.Flags().StringVar(&referral, "referral", "", "Referral code (defaults to the configured one)")
	cmd.Flags().BoolVar(&calldata, "calldata", false, "Also print the encoded batch calldata")

	return &cmd
}
