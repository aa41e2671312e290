package components

import "github.com/charmbracelet/lipgloss"

// AlertVariant selects the tone of an inline message.
type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantSuccess
	AlertVariantWarning
	AlertVariantError
)

var alertIcons = map[AlertVariant]string{
	AlertVariantInfo:    "ℹ",
	AlertVariantSuccess: "✓",
	AlertVariantWarning: "!",
	AlertVariantError:   "✗",
}

var alertColors = map[AlertVariant]lipgloss.Color{
	AlertVariantInfo:    lipgloss.Color("39"),
	AlertVariantSuccess: lipgloss.Color("42"),
	AlertVariantWarning: lipgloss.Color("226"),
	AlertVariantError:   lipgloss.Color("196"),
}

// Alert is an inline status message.
type Alert struct {
	Variant AlertVariant
	Message string
}

// ErrorAlert creates an error alert
func ErrorAlert(message string) Alert {
	return Alert{Variant: AlertVariantError, Message: message}
}

// SuccessAlert creates a success alert
func SuccessAlert(message string) Alert {
	return Alert{Variant: AlertVariantSuccess, Message: message}
}

// WarningAlert creates a warning alert
func WarningAlert(message string) Alert {
	return Alert{Variant: AlertVariantWarning, Message: message}
}

// View renders the alert, or "" when there is no message.
func (a Alert) View() string {
	if a.Message == "" {
		return ""
	}
	style := lipgloss.NewStyle().Foreground(alertColors[a.Variant])
	return style.Render(alertIcons[a.Variant] + " " + a.Message)
}
