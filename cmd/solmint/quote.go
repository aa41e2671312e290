package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/solmint/solmint/internal/token"
)

type quoteOptions struct {
	revokeFreeze bool
	revokeMint   bool
	revokeUpdate bool
	creatorInfo  bool
	jsonOutput   bool
}

type quoteJSON struct {
	RevokeFreeze bool   `json:"revoke_freeze"`
	RevokeMint   bool   `json:"revoke_mint"`
	RevokeUpdate bool   `json:"revoke_update"`
	CreatorInfo  bool   `json:"creator_info"`
	Options      int    `json:"options"`
	Lamports     uint64 `json:"lamports"`
	SOL          string `json:"sol"`
}

func newQuoteCmd() *cobra.Command {
	opts := &quoteOptions{}
	defaults := token.DefaultAuthorities()

	cmd := &cobra.Command{
		Use:   "quote",
		Short: "Print the creation cost for a set of options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuote(cmd, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.revokeFreeze, "revoke-freeze", defaults.Freeze, "Revoke the freeze authority")
	cmd.Flags().BoolVar(&opts.revokeMint, "revoke-mint", defaults.Mint, "Revoke the mint authority")
	cmd.Flags().BoolVar(&opts.revokeUpdate, "revoke-update", defaults.Update, "Revoke the metadata update authority")
	cmd.Flags().BoolVar(&opts.creatorInfo, "creator-info", false, "Set custom creator info")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runQuote(cmd *cobra.Command, opts *quoteOptions) error {
	auth := token.Authorities{
		Freeze: opts.revokeFreeze,
		Mint:   opts.revokeMint,
		Update: opts.revokeUpdate,
	}
	quote := token.ComputeQuote(auth, token.CreatorInfo{Enabled: opts.creatorInfo})

	if opts.jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(quoteJSON{
			RevokeFreeze: auth.Freeze,
			RevokeMint:   auth.Mint,
			RevokeUpdate: auth.Update,
			CreatorInfo:  opts.creatorInfo,
			Options:      quote.Options,
			Lamports:     quote.Lamports,
			SOL:          quote.SOL(),
		})
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintf(writer, "Service fee\t%s SOL\n", token.FormatSOL(token.ServiceFee))
	fmt.Fprintf(writer, "Network fee\t%s SOL\n", token.FormatSOL(token.NetworkFee))
	for _, line := range []struct {
		label string
		on    bool
	}{
		{"Revoke Freeze", auth.Freeze},
		{"Revoke Mint", auth.Mint},
		{"Revoke Metadata Update", auth.Update},
		{"Custom Creator Info", opts.creatorInfo},
	} {
		if line.on {
			fmt.Fprintf(writer, "%s\t%s SOL\n", line.label, token.FormatSOL(token.OptionFee))
		}
	}
	fmt.Fprintf(writer, "Creation Cost\t%s SOL\n", quote.SOL())
	return writer.Flush()
}
