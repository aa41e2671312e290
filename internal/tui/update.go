package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles Bubbletea messages and updates model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m.syncViewport()
	return m, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()

		var cmd tea.Cmd
		m.creator, cmd = m.creator.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "ctrl+w":
			return m.toggleWallet()
		case "f2":
			return m.cycleAdapter()
		case "pgup":
			m.viewport.SetYOffset(m.viewport.YOffset - m.viewport.Height/2)
			return m, nil
		case "pgdown":
			m.viewport.SetYOffset(m.viewport.YOffset + m.viewport.Height/2)
			return m, nil
		}

	case WalletConnectedMsg:
		m.connecting = false
		if msg.Err != nil {
			m.walletErr = msg.Err.Error()
			m.creator = m.creator.SetPayer("")
			return m, nil
		}
		m.walletErr = ""
		m.creator = m.creator.SetPayer(msg.PublicKey.String())
		cmd := m.refreshBalance(msg.PublicKey.String())
		return m, cmd

	case BalanceLoadedMsg:
		pk, ok := m.connectedKey()
		if !ok || pk.String() != msg.PublicKey {
			return m, nil
		}
		if msg.Err != nil {
			m.log.With("public_key", msg.PublicKey).Error(msg.Err, "balance lookup failed")
			m.balanceState = balanceUnavailable
			return m, nil
		}
		m.balance = msg.Lamports
		m.balanceState = balanceKnown
		return m, nil
	}

	var cmd tea.Cmd
	m.creator, cmd = m.creator.Update(msg)
	return m, cmd
}

// toggleWallet connects when disconnected and disconnects otherwise.
func (m Model) toggleWallet() (Model, tea.Cmd) {
	if m.wallet == nil || m.connecting {
		return m, nil
	}
	if _, ok := m.wallet.PublicKey(); ok {
		m.wallet.Disconnect()
		m.creator = m.creator.SetPayer("")
		m.balanceState = balanceNone
		return m, nil
	}
	m.connecting = true
	m.walletErr = ""
	return m, connectCmd(m.ctx, m.wallet)
}

// cycleAdapter selects the next configured wallet adapter. Switching drops
// the current connection.
func (m Model) cycleAdapter() (Model, tea.Cmd) {
	if m.wallet == nil || m.connecting {
		return m, nil
	}
	names := m.wallet.Adapters()
	if len(names) < 2 {
		return m, nil
	}
	next := names[0]
	for i, name := range names {
		if name == m.wallet.Selected() {
			next = names[(i+1)%len(names)]
			break
		}
	}
	if err := m.wallet.Select(next); err != nil {
		m.walletErr = err.Error()
		return m, nil
	}
	m.walletErr = ""
	m.balanceState = balanceNone
	m.creator = m.creator.SetPayer("")
	return m, nil
}

func (m *Model) refreshBalance(pubkey string) tea.Cmd {
	if m.rpc == nil {
		m.balanceState = balanceNone
		return nil
	}
	m.balanceState = balanceLoading
	return balanceCmd(m.ctx, m.rpc, pubkey)
}
