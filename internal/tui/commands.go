package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/solmint/solmint/internal/solana"
	"github.com/solmint/solmint/internal/wallet"
)

// connectCmd connects the selected wallet adapter
func connectCmd(ctx context.Context, provider *wallet.Provider) tea.Cmd {
	return func() tea.Msg {
		pk, err := provider.Connect(ctx)
		return WalletConnectedMsg{PublicKey: pk, Err: err}
	}
}

// balanceCmd fetches the connected account's balance
func balanceCmd(ctx context.Context, rpc solana.RPCClient, pubkey string) tea.Cmd {
	return func() tea.Msg {
		lamports, err := rpc.GetBalance(ctx, pubkey)
		return BalanceLoadedMsg{PublicKey: pubkey, Lamports: lamports, Err: err}
	}
}
