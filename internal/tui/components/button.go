package components

import "github.com/charmbracelet/lipgloss"

// ButtonVariant selects a button's colour scheme.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantSecondary
)

// ButtonOptions defines the configuration options for a button
type ButtonOptions struct {
	Variant  ButtonVariant
	Disabled bool
	Focus    bool
}

// Button is a single-line action label. A focused button is marked with a
// leading cursor so focus stays visible when the button is disabled.
type Button struct {
	label   string
	options ButtonOptions
}

// NewButton creates a new button with the given label and options
func NewButton(label string, opts ButtonOptions) Button {
	return Button{label: label, options: opts}
}

// WithDisabled sets the button disabled state
func (b Button) WithDisabled(disabled bool) Button {
	b.options.Disabled = disabled
	return b
}

// WithFocus sets the button focus state
func (b Button) WithFocus(focus bool) Button {
	b.options.Focus = focus
	return b
}

// Enabled reports whether pressing the button does anything.
func (b Button) Enabled() bool {
	return !b.options.Disabled
}

// View renders the button
func (b Button) View() string {
	marker := "  "
	if b.options.Focus {
		marker = "▸ "
	}
	return marker + b.buildStyle().Render(b.label)
}

func (b Button) buildStyle() lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true).Padding(0, 2)
	switch {
	case b.options.Disabled:
		return style.Bold(false).Foreground(lipgloss.Color("250")).Background(dimColor)
	case b.options.Variant == ButtonVariantSecondary:
		style = style.Padding(0, 1).Foreground(accentColor).Background(lipgloss.Color("236"))
	default:
		style = style.Foreground(lipgloss.Color("231")).Background(accentColor)
	}
	if b.options.Focus {
		style = style.Foreground(lipgloss.Color("231")).Background(focusColor)
	}
	return style
}
