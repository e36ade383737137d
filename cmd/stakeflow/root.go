package main

import (
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	envFile    string
	verbose    bool
	places     int
}

func buildRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := cobra.Command{
		Use:           "stakeflow",
		Short:         "Stake the base asset into the liquid staking vault",
		Long:          `Quote, preview and submit liquid staking deposits, optionally supplying the minted derivative token to a lending market in the same transaction.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to the config file (defaults to ./stakeflow.yaml if present)")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "File holding the PRIVATE_KEY var")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().IntVar(&opts.places, "places", 4, "Fractional digits shown for amounts")

	cmd.AddCommand(buildQuoteCmd(opts))
	cmd.AddCommand(buildPreviewCmd(opts))
	cmd.AddCommand(buildQuickCmd(opts))
	cmd.AddCommand(buildDepositCmd(opts))

	return &cmd
}
