package components

// Toggle is a binary switch. It holds no state of its own: the parent passes
// the current value in and applies the value Press returns.
type Toggle struct {
	On      bool
	Focused bool
}

// Press returns the value the switch should take after activation.
func (t Toggle) Press() bool {
	return !t.On
}

// View renders the switch.
func (t Toggle) View() string {
	var s string
	if t.On {
		s = switchOnStyle.Render("  ● ")
	} else {
		s = switchOffStyle.Render(" ●  ")
	}
	if t.Focused {
		return "▸" + s
	}
	return " " + s
}

// ToggleRow is the "custom creator info" line: a switch with a title,
// description and fee.
type ToggleRow struct {
	Toggle
	Title       string
	Description string
	Fee         string
	New         bool
}

// View renders the row.
func (r ToggleRow) View() string {
	title := r.Title
	if r.New {
		title += " " + badgeStyle.Render("🔥 New")
	}
	head := r.Toggle.View() + "  " + title
	if r.Fee != "" {
		head += "   " + feeStyle.Render("Fee: "+r.Fee)
	}
	if r.Description == "" {
		return head
	}
	return head + "\n      " + descriptionStyle.Render(r.Description)
}
