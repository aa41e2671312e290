package components

import "github.com/charmbracelet/lipgloss"

var (
	accentColor = lipgloss.Color("135") // Solana purple
	mutedColor  = lipgloss.Color("245")
	dimColor    = lipgloss.Color("240")
	textColor   = lipgloss.Color("252")
	focusColor  = lipgloss.Color("212")

	switchOnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(accentColor).Bold(true)
	switchOffStyle = lipgloss.NewStyle().Foreground(textColor).Background(dimColor)

	feeStyle         = lipgloss.NewStyle().Foreground(accentColor).Bold(true)
	descriptionStyle = lipgloss.NewStyle().Foreground(mutedColor)
	badgeStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("231")).Background(lipgloss.Color("160")).Padding(0, 1)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(dimColor).
			Padding(0, 1)

	checkedCardStyle = cardStyle.BorderForeground(accentColor)
	focusedCardStyle = cardStyle.BorderForeground(focusColor)
)
