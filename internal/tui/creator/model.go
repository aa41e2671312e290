package creator

import (
	"context"
	"strconv"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/solmint/solmint/internal/ideas"
	"github.com/solmint/solmint/internal/logger"
	"github.com/solmint/solmint/internal/token"
)

// field identifies a focusable control, in tab order.
type field int

const (
	fieldPrompt field = iota
	fieldGenerate
	fieldUseName
	fieldUseSymbol
	fieldUseDescription
	fieldName
	fieldSymbol
	fieldDecimals
	fieldSupply
	fieldImage
	fieldDescription
	fieldCreatorToggle
	fieldCreatorName
	fieldCreatorWebsite
	fieldRevokeFreeze
	fieldRevokeMint
	fieldRevokeUpdate
	fieldSubmit

	fieldCount
)

// textFields are the single-line inputs.
var textFields = []field{
	fieldPrompt,
	fieldName,
	fieldSymbol,
	fieldDecimals,
	fieldSupply,
	fieldImage,
	fieldCreatorName,
	fieldCreatorWebsite,
}

var revokeFields = map[field]token.AuthorityKind{
	fieldRevokeFreeze: token.AuthorityFreeze,
	fieldRevokeMint:   token.AuthorityMint,
	fieldRevokeUpdate: token.AuthorityUpdate,
}

// imageExtensions limits what the file picker offers. Content sniffing still
// decides whether a file is accepted.
var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif", ".webp", ".bmp", ".svg"}

// Options configures a creator Model.
type Options struct {
	Ideas     ideas.Service
	Submitter token.Submitter
	Log       *logger.Logger
	// Context bounds the asynchronous commands the form starts.
	Context context.Context
	// StartDir is where the file picker opens.
	StartDir string
}

// Model is the token creation form
type Model struct {
	// Collaborators
	ctx       context.Context
	ideas     ideas.Service
	submitter token.Submitter
	log       *logger.Logger

	// Core state
	form *token.Form
	gen  *ideas.Generator

	// Component state
	inputs      map[field]textinput.Model
	description textarea.Model
	picker      filepicker.Model
	spinner     spinner.Model

	// UI state
	focus    field
	picking  bool
	imageErr string

	// Dimensions
	width  int
	height int
}

// NewModel creates a form with the default draft.
func NewModel(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	svc := opts.Ideas
	if svc == nil {
		svc = ideas.NewClient(ideas.DefaultEndpoint, ideas.WithLogger(opts.Log))
	}
	submitter := opts.Submitter
	if submitter == nil {
		submitter = token.LogSubmitter{Log: opts.Log}
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = spinnerStyle

	picker := filepicker.New()
	picker.AllowedTypes = imageExtensions
	if opts.StartDir != "" {
		picker.CurrentDirectory = opts.StartDir
	}

	desc := textarea.New()
	desc.Placeholder = "A brief description of your token."
	desc.ShowLineNumbers = false
	desc.SetHeight(4)

	m := Model{
		ctx:         ctx,
		ideas:       svc,
		submitter:   submitter,
		log:         opts.Log,
		form:        token.NewForm(),
		gen:         ideas.NewGenerator(),
		inputs:      make(map[field]textinput.Model, len(textFields)),
		description: desc,
		picker:      picker,
		spinner:     s,
		focus:       fieldPrompt,
		width:       80,
		height:      24,
	}

	placeholders := map[field]string{
		fieldPrompt:         "e.g., A token for a decentralized network of solar-powered microgrids.",
		fieldName:           "e.g., SolMint Coin",
		fieldSymbol:         "e.g., SMC",
		fieldImage:          "path to a PNG, JPG or GIF (paste or drop here)",
		fieldCreatorName:    "e.g., SolMint",
		fieldCreatorWebsite: "https://solmint.io",
	}
	for _, f := range textFields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = placeholders[f]
		m.inputs[f] = ti
	}

	draft := m.form.Draft()
	m.setInput(fieldDecimals, strconv.FormatUint(draft.Decimals, 10))
	m.setInput(fieldSupply, strconv.FormatUint(draft.Supply, 10))
	m.resize()
	m.setFocus(fieldPrompt)

	return m
}

// Init starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Form exposes the underlying form state.
func (m Model) Form() *token.Form {
	return m.form
}

// Generator exposes the idea generator state.
func (m Model) Generator() *ideas.Generator {
	return m.gen
}

// SetPayer updates the connected wallet. An empty key disables submission.
func (m Model) SetPayer(publicKey string) Model {
	m.form.SetPayer(publicKey)
	return m
}

// Picking reports whether the file picker owns the keyboard.
func (m Model) Picking() bool {
	return m.picking
}

// Busy reports whether an idea request or a submission is outstanding.
func (m Model) Busy() bool {
	return m.gen.Loading() || m.form.Status() == token.StatusCreating
}

// focusable reports whether f is currently shown.
func (m Model) focusable(f field) bool {
	switch f {
	case fieldUseName, fieldUseSymbol, fieldUseDescription:
		_, ok := m.gen.Suggestion()
		return ok
	case fieldCreatorName, fieldCreatorWebsite:
		return m.form.Creator().Enabled
	default:
		return f >= 0 && f < fieldCount
	}
}

// moveFocus steps through focusable fields, wrapping at both ends.
func (m *Model) moveFocus(delta int) tea.Cmd {
	next := m.focus
	for i := 0; i < int(fieldCount); i++ {
		next = field((int(next) + delta + int(fieldCount)) % int(fieldCount))
		if m.focusable(next) {
			return m.setFocus(next)
		}
	}
	return nil
}

// ensureFocusVisible moves focus back when the focused field was hidden.
func (m *Model) ensureFocusVisible() tea.Cmd {
	if m.focusable(m.focus) {
		return nil
	}
	return m.moveFocus(-1)
}

func (m *Model) setFocus(f field) tea.Cmd {
	if ti, ok := m.inputs[m.focus]; ok {
		ti.Blur()
		m.inputs[m.focus] = ti
	}
	if m.focus == fieldDescription {
		m.description.Blur()
	}

	m.focus = f

	if ti, ok := m.inputs[f]; ok {
		cmd := ti.Focus()
		m.inputs[f] = ti
		return cmd
	}
	if f == fieldDescription {
		return m.description.Focus()
	}
	return nil
}

// setInput replaces a control's text and pushes it into the form.
func (m *Model) setInput(f field, value string) {
	if f == fieldDescription {
		m.description.SetValue(value)
	} else if ti, ok := m.inputs[f]; ok {
		ti.SetValue(value)
		m.inputs[f] = ti
	}
	m.sync(f)
}

// sync copies a control's text into the form or generator.
func (m *Model) sync(f field) {
	switch f {
	case fieldPrompt:
		m.gen.SetPrompt(m.inputs[f].Value())
	case fieldName:
		m.form.SetName(m.inputs[f].Value())
	case fieldSymbol:
		m.form.SetSymbol(m.inputs[f].Value())
	case fieldDecimals:
		m.form.SetDecimals(m.numericInput(f))
	case fieldSupply:
		m.form.SetSupply(m.numericInput(f))
	case fieldDescription:
		m.form.SetDescription(m.description.Value())
	case fieldCreatorName:
		m.form.SetCreatorName(m.inputs[f].Value())
	case fieldCreatorWebsite:
		m.form.SetCreatorWebsite(m.inputs[f].Value())
	}
}

// numericInput strips non-digits from a numeric field and parses it. An empty
// or overflowing field reads as zero.
func (m *Model) numericInput(f field) uint64 {
	ti := m.inputs[f]
	digits := keepDigits(ti.Value())
	if digits != ti.Value() {
		ti.SetValue(digits)
		m.inputs[f] = ti
	}
	n, err := strconv.ParseUint(digits, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

func keepDigits(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			out = append(out, r)
		}
	}
	return string(out)
}

// resize fits inputs to the terminal width.
func (m *Model) resize() {
	w := contentWidth(m.width)
	for f, ti := range m.inputs {
		ti.Width = w - 2
		m.inputs[f] = ti
	}
	m.description.SetWidth(w)
}

func contentWidth(termWidth int) int {
	w := termWidth - 6
	if w > 96 {
		w = 96
	}
	if w < 30 {
		w = 30
	}
	return w
}
