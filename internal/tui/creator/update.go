package creator

import (
	"errors"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/solmint/solmint/internal/ideas"
	"github.com/solmint/solmint/internal/token"
)

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()

		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.picking {
			return m.handlePickerKeys(msg)
		}
		return m.handleKeyPress(msg)

	// Spinner only runs while something is outstanding
	case spinner.TickMsg:
		if !m.Busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case IdeasSettledMsg:
		if !m.gen.Settle(msg.Ticket, msg.Suggestion, msg.Err) {
			m.log.With("ticket", msg.Ticket).Debug("dropping stale idea result")
			return m, nil
		}
		if msg.Err != nil {
			m.log.Error(msg.Err, "idea generation failed")
		}
		cmd := m.ensureFocusVisible()
		return m, cmd

	case ImageLoadedMsg:
		switch {
		case errors.Is(msg.Err, token.ErrNotImage):
			m.log.With("path", msg.Path).Debug("ignoring non-image file")
			return m, nil
		case msg.Err != nil:
			m.imageErr = msg.Err.Error()
			return m, nil
		}
		m.imageErr = ""
		m.form.AcceptImage(msg.Image)
		return m, nil

	case SubmitSettledMsg:
		m.form.FinishSubmit(msg.Result, msg.Err)
		log := m.log.With("correlation_id", msg.CorrelationID)
		if msg.Err != nil {
			log.Error(msg.Err, "token creation failed")
		} else {
			log.Info("token creation finished")
		}
		return m, nil
	}

	// Directory listings and other picker internals
	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

// handleKeyPress routes keyboard input by focused control
func (m Model) handleKeyPress(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "tab":
		cmd := m.moveFocus(1)
		return m, cmd

	case "shift+tab":
		cmd := m.moveFocus(-1)
		return m, cmd

	case "ctrl+o":
		m.picking = true
		return m, m.picker.Init()

	case "ctrl+g":
		return m.generate()

	case "ctrl+s":
		return m.submit()

	case "enter":
		switch m.focus {
		case fieldPrompt:
			return m.generate()
		case fieldImage:
			return m.loadImage()
		case fieldDescription:
			return m.updateFocused(msg)
		case fieldName, fieldSymbol, fieldDecimals, fieldSupply, fieldCreatorName, fieldCreatorWebsite:
			cmd := m.moveFocus(1)
			return m, cmd
		default:
			return m.activate()
		}

	case " ":
		if m.isButton(m.focus) {
			return m.activate()
		}
	}

	return m.updateFocused(msg)
}

// handlePickerKeys drives the file picker until a file is chosen or it is
// dismissed.
func (m Model) handlePickerKeys(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+o":
		m.picking = false
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.picking = false
		m.setInput(fieldImage, path)
		return m, tea.Batch(cmd, loadImageCmd(path))
	}

	return m, cmd
}

// isButton reports whether f is a press-only control.
func (m Model) isButton(f field) bool {
	switch f {
	case fieldGenerate, fieldUseName, fieldUseSymbol, fieldUseDescription,
		fieldCreatorToggle, fieldRevokeFreeze, fieldRevokeMint, fieldRevokeUpdate, fieldSubmit:
		return true
	}
	return false
}

// activate presses the focused button, toggle or card.
func (m Model) activate() (Model, tea.Cmd) {
	switch m.focus {
	case fieldGenerate:
		return m.generate()

	case fieldUseName:
		m.gen.AdoptName(func(v string) { m.setInput(fieldName, v) })
	case fieldUseSymbol:
		m.gen.AdoptSymbol(func(v string) { m.setInput(fieldSymbol, v) })
	case fieldUseDescription:
		m.gen.AdoptDescription(func(v string) { m.setInput(fieldDescription, v) })

	case fieldCreatorToggle:
		m.form.SetCreatorEnabled(m.creatorRow().Press())

	case fieldRevokeFreeze, fieldRevokeMint, fieldRevokeUpdate:
		kind := revokeFields[m.focus]
		m.form.SetRevoke(kind, m.optionCard(kind).Press())

	case fieldSubmit:
		return m.submit()
	}
	return m, nil
}

// updateFocused forwards a key to the focused text control.
func (m Model) updateFocused(msg tea.KeyMsg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.focus == fieldDescription {
		m.description, cmd = m.description.Update(msg)
		m.sync(fieldDescription)
		return m, cmd
	}

	ti, ok := m.inputs[m.focus]
	if !ok {
		return m, nil
	}
	ti, cmd = ti.Update(msg)
	m.inputs[m.focus] = ti
	m.sync(m.focus)
	return m, cmd
}

// generate starts an idea request for the current prompt
func (m Model) generate() (Model, tea.Cmd) {
	ticket, err := m.gen.Begin()
	if err != nil {
		if !errors.Is(err, ideas.ErrInFlight) {
			m.log.Debug(err.Error())
		}
		return m, nil
	}

	m.log.With("ticket", ticket).Debug("requesting token ideas")
	focusCmd := m.ensureFocusVisible()
	return m, tea.Batch(
		generateCmd(m.ctx, m.ideas, ticket, m.gen.Prompt()),
		m.spinner.Tick,
		focusCmd,
	)
}

// loadImage reads the path typed or pasted into the image field
func (m Model) loadImage() (Model, tea.Cmd) {
	path := m.inputs[fieldImage].Value()
	if path == "" {
		return m, nil
	}
	return m, loadImageCmd(path)
}

// submit composes the request and hands it to the submitter
func (m Model) submit() (Model, tea.Cmd) {
	req, err := m.form.BeginSubmit(uuid.NewString())
	if err != nil {
		return m, nil
	}

	m.log.WithFields(req.Fields()).Debug("submitting token draft")
	return m, tea.Batch(
		submitCmd(m.ctx, m.submitter, req),
		m.spinner.Tick,
	)
}
