package main

import (
	"github.com/spf13/cobra"

	"github.com/solmint/solmint/internal/solana"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "solmint",
		Short:         "SolMint creates Solana SPL tokens from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, open the creator
			return runCreate(cmd, flags)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Config file (default: $XDG_CONFIG_HOME/solmint/config.yaml)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	pf.String("cluster", "", "Solana cluster: "+solana.ClusterNames())
	pf.String("rpc", "", "Custom RPC endpoint URL")
	pf.String("keypair", "", "Path to a Solana CLI keypair file")
	pf.String("ideas-endpoint", "", "Token idea generator endpoint")

	cmd.AddCommand(newCreateCmd(flags))
	cmd.AddCommand(newQuoteCmd())
	cmd.AddCommand(newIdeasCmd(flags))
	cmd.AddCommand(newWalletCmd(flags))
	cmd.AddCommand(newConfigCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
