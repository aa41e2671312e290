package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// OptionIcon is one of the closed set of revoke-authority icons.
type OptionIcon string

const (
	IconFreeze OptionIcon = "freeze"
	IconMint   OptionIcon = "mint"
	IconUpdate OptionIcon = "update"
)

var optionGlyphs = map[OptionIcon]string{
	IconFreeze: "❄",
	IconMint:   "◎",
	IconUpdate: "✎",
}

// Glyph returns the icon's symbol, or "?" outside the closed set.
func (i OptionIcon) Glyph() string {
	if g, ok := optionGlyphs[i]; ok {
		return g
	}
	return "?"
}

// OptionCard is a selectable card. The whole card is the hit target: when it
// has focus, any activation toggles it.
type OptionCard struct {
	Icon        OptionIcon
	Title       string
	Description string
	Fee         string
	Checked     bool
	Focused     bool
	Width       int
}

// Press returns the value the card should take after activation.
func (c OptionCard) Press() bool {
	return !c.Checked
}

// View renders the card.
func (c OptionCard) View() string {
	style := cardStyle
	switch {
	case c.Focused:
		style = focusedCardStyle
	case c.Checked:
		style = checkedCardStyle
	}
	if c.Width > 0 {
		style = style.Width(c.Width)
	}

	iconStyle := lipgloss.NewStyle().Foreground(dimColor)
	titleStyle := lipgloss.NewStyle().Foreground(mutedColor)
	if c.Checked {
		iconStyle = iconStyle.Foreground(accentColor)
		titleStyle = titleStyle.Foreground(lipgloss.Color("231")).Bold(true)
	}

	lines := []string{
		iconStyle.Render(c.Icon.Glyph()) + " " + Toggle{On: c.Checked}.View(),
		titleStyle.Render(c.Title),
	}
	if strings.TrimSpace(c.Description) != "" {
		lines = append(lines, descriptionStyle.Render(c.Description))
	}
	if c.Fee != "" {
		lines = append(lines, feeStyle.Render(c.Fee))
	}
	return style.Render(strings.Join(lines, "\n"))
}
