package tui

import "github.com/charmbracelet/lipgloss"

// chromeHeight is the number of lines reserved for the nav bar and footer.
const chromeHeight = 6

var (
	primaryColor = lipgloss.Color("135")
	mutedColor   = lipgloss.Color("245")

	brandStyle = lipgloss.NewStyle().Bold(true).Foreground(primaryColor)

	navStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(lipgloss.Color("238"))

	connectedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	disconnectedStyle = lipgloss.NewStyle().Foreground(mutedColor)
	pendingStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	failureStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	clusterStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(lipgloss.Color("238"))
)
