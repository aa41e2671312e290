package main

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/solmint/solmint/internal/solana"
	"github.com/solmint/solmint/internal/token"
	"github.com/solmint/solmint/internal/wallet"
)

func newWalletCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "wallet",
		Short: "Connect the configured wallet and show its status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, flags, false)
			if err != nil {
				return err
			}
			defer app.Close()

			return runWallet(cmd, app.Wallet, app.RPC)
		},
	}

	return cmd
}

func runWallet(cmd *cobra.Command, provider *wallet.Provider, rpc solana.RPCClient) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	pk, err := provider.Connect(ctx)
	if err != nil {
		return err
	}

	health := "ok"
	if err := rpc.GetHealth(ctx); err != nil {
		health = "unavailable"
	}
	balance := "unavailable"
	if lamports, err := rpc.GetBalance(ctx, pk.String()); err == nil {
		balance = token.FormatSOL(lamports) + " SOL"
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(writer, "Adapter\t%s\n", provider.Selected())
	fmt.Fprintf(writer, "Public key\t%s\n", pk.String())
	fmt.Fprintf(writer, "Cluster\t%s\n", provider.Cluster())
	fmt.Fprintf(writer, "RPC endpoint\t%s\n", provider.Endpoint())
	fmt.Fprintf(writer, "RPC health\t%s\n", health)
	fmt.Fprintf(writer, "Balance\t%s\n", balance)
	return writer.Flush()
}
