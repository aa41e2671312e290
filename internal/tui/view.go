package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/solmint/solmint/internal/token"
)

const shellHelp = "ctrl+w wallet • f2 adapter • pgup/pgdn scroll • ctrl+c quit"

// View renders the current state of the model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderNav(),
		m.viewport.View(),
		m.renderFooter(),
	)
}

func (m Model) renderNav() string {
	left := brandStyle.Render("◎ SolMint")
	right := m.walletStatus()

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 2 {
		gap = 2
	}
	return navStyle.Render(left + strings.Repeat(" ", gap) + right)
}

func (m Model) walletStatus() string {
	if m.wallet == nil {
		return disconnectedStyle.Render("no wallet configured")
	}

	cluster := clusterStyle.Render(string(m.wallet.Cluster()))
	adapter := disconnectedStyle.Render(m.wallet.Selected())

	pk, ok := m.wallet.PublicKey()
	switch {
	case m.connecting:
		return pendingStyle.Render("connecting…") + "  " + adapter + "  " + cluster
	case ok:
		parts := []string{connectedStyle.Render("● " + pk.Short())}
		if b := m.balanceText(); b != "" {
			parts = append(parts, b)
		}
		parts = append(parts, adapter, cluster)
		return strings.Join(parts, "  ")
	case m.walletErr != "":
		return failureStyle.Render("✗ "+m.walletErr) + "  " + adapter + "  " + cluster
	default:
		return disconnectedStyle.Render("○ not connected") + "  " + adapter + "  " + cluster
	}
}

func (m Model) balanceText() string {
	switch m.balanceState {
	case balanceLoading:
		return disconnectedStyle.Render("balance…")
	case balanceKnown:
		return token.FormatSOL(m.balance) + " SOL"
	case balanceUnavailable:
		return disconnectedStyle.Render("balance unavailable")
	default:
		return ""
	}
}

func (m Model) renderFooter() string {
	copyright := fmt.Sprintf("© %d SolMint. All Rights Reserved.", m.year)
	help := m.creator.Help() + " • " + shellHelp
	return footerStyle.Render(copyright + "\n" + help)
}
