package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/solmint/solmint/internal/logger"
	"github.com/solmint/solmint/internal/solana"
	"github.com/solmint/solmint/internal/tui/creator"
	"github.com/solmint/solmint/internal/wallet"
)

// WalletConnectedMsg reports the outcome of a wallet connection attempt.
type WalletConnectedMsg struct {
	PublicKey wallet.PublicKey
	Err       error
}

// BalanceLoadedMsg carries the balance of the given account.
type BalanceLoadedMsg struct {
	PublicKey string
	Lamports  uint64
	Err       error
}

type balanceState int

const (
	balanceNone balanceState = iota
	balanceLoading
	balanceKnown
	balanceUnavailable
)

// Options configures the application shell.
type Options struct {
	Wallet  *wallet.Provider
	RPC     solana.RPCClient
	Creator creator.Options
	Log     *logger.Logger
	Context context.Context
	Now     func() time.Time
}

// Model is the SolMint application shell: the nav bar with wallet status,
// the scrolling creator form and the footer.
type Model struct {
	ctx    context.Context
	wallet *wallet.Provider
	rpc    solana.RPCClient
	log    *logger.Logger

	creator  creator.Model
	viewport viewport.Model

	// Wallet state
	connecting   bool
	walletErr    string
	balance      uint64
	balanceState balanceState

	year     int
	width    int
	height   int
	quitting bool
}

// NewModel constructs the shell. When the provider is configured to
// auto-connect, Init starts the connection.
func NewModel(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	creatorOpts := opts.Creator
	if creatorOpts.Context == nil {
		creatorOpts.Context = ctx
	}
	if creatorOpts.Log == nil {
		creatorOpts.Log = opts.Log
	}

	m := Model{
		ctx:      ctx,
		wallet:   opts.Wallet,
		rpc:      opts.RPC,
		log:      opts.Log,
		creator:  creator.NewModel(creatorOpts),
		viewport: viewport.New(80, 24-chromeHeight),
		year:     now().Year(),
		width:    80,
		height:   24,
	}
	m.connecting = m.wallet != nil && m.wallet.AutoConnect()
	m.syncViewport()

	return m
}

// Init starts the creator and, when configured, the wallet connection.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.creator.Init()}
	if m.connecting {
		cmds = append(cmds, connectCmd(m.ctx, m.wallet))
	}
	return tea.Batch(cmds...)
}

// Creator returns the embedded form.
func (m Model) Creator() creator.Model {
	return m.creator
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

// connectedKey returns the wallet's public key, if connected.
func (m Model) connectedKey() (wallet.PublicKey, bool) {
	if m.wallet == nil {
		return wallet.PublicKey{}, false
	}
	return m.wallet.PublicKey()
}

// syncViewport re-renders the form into the viewport and scrolls so the
// focused control stays visible.
func (m *Model) syncViewport() {
	content, row := m.creator.Render()
	m.viewport.SetContent(content)

	const lead = 3
	switch {
	case row < m.viewport.YOffset:
		m.viewport.SetYOffset(row)
	case row+lead > m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(row + lead - m.viewport.Height)
	}
}

func (m *Model) layout() {
	m.viewport.Width = m.width
	h := m.height - chromeHeight
	if h < 5 {
		h = 5
	}
	m.viewport.Height = h
}
