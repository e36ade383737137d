package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lstlabs/stakeflow"
	"github.com/lstlabs/stakeflow/config"
	"github.com/lstlabs/stakeflow/types"
)

func buildDepositCmd(opts *rootOptions) *cobra.Command {
	var (
		platform string
		wait     bool
		timeout  time.Duration
	)

	cmd := cobra.Command{
		Use:   "deposit AMOUNT",
		Short: "Stake AMOUNT of the base asset, optionally supplying the derivative to a lending platform",
		Long:  `Configure a private key in a .env file (using the PRIVATE_KEY var) and submit a deposit signed with it.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			lending, err := types.ParsePlatform(platform)
			if err != nil {
				return err
			}

			key, err := config.LoadPrivateKey(opts.envFile)
			if err != nil {
				return fmt.Errorf("error loading private key: %w", err)
			}

			ctx, e, err := setup(cmd.Context(), opts)
			if err != nil {
				return err
			}
			defer e.Close()

			session, err := e.newSession(key)
			if err != nil {
				return err
			}

			if _, err = session.Refresh(ctx); err != nil {
				return err
			}

			form := session.Form()
			form.SetAmount(args[0])
			if lending != types.PlatformNone {
				if err = form.SelectPlatform(lending); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "You will get: %s %s\n",
				session.Estimate().Display(e.places), e.contracts.Derivative.Symbol)

			handle, err := session.Submit(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Transaction sent: %s\n", handle.Hash)

			if !wait {
				return nil
			}

			waitCtx, cancel := context.WithTimeout(ctx, timeout)
			defer cancel()

			attempt, err := session.Track(waitCtx)
			if err != nil {
				if errors.Is(err, context.DeadlineExceeded) {
					return fmt.Errorf("transaction %s still pending after %s", handle.Hash, timeout)
				}

				return err
			}

			fmt.Fprintf(out, "Transaction %s: %s\n", attempt.Hash, attempt.State)
			if attempt.State != types.StateAccepted && attempt.Err != nil {
				return stakeflow.NewSubmissionFailedError(attempt.Err.Kind, attempt.Err.Cause)
			}

			if msg, ok := session.SharePrompt(); ok {
				fmt.Fprintln(out, msg)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&platform, "platform", "", "Lending platform to supply the derivative token to (vesu, nostra-lend)")
	cmd.Flags().BoolVar(&wait, "wait", true, "Wait for the transaction to be finalized")
	cmd.Flags().DurationVar(&timeout, "timeout", 5*time.Minute, "How long to wait for finality")

	return &cmd
}
