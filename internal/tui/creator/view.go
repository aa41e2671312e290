package creator

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/solmint/solmint/internal/token"
	"github.com/solmint/solmint/internal/tui/components"
)

// KeyHelp is the key summary shown in the footer.
const KeyHelp = "tab/shift+tab move • enter/space select • ctrl+g generate • ctrl+o browse image • ctrl+s create"

// pickerHelp replaces KeyHelp while the file picker is open.
const pickerHelp = "↑/↓ navigate • enter open/select • esc cancel"

// View renders the form
func (m Model) View() string {
	s, _ := m.Render()
	return s
}

// Help returns the key summary for the current mode.
func (m Model) Help() string {
	if m.picking {
		return pickerHelp
	}
	return KeyHelp
}

// Render draws the form and reports the line on which the focused control
// starts, so a scrolling parent can keep it in view.
func (m Model) Render() (string, int) {
	if m.picking {
		return m.renderPicker(), 0
	}

	var b blockWriter
	b.add(titleStyle.Render("Create your Solana Token"), -1)
	b.add(subtitleStyle.Render("Launch your own cryptocurrency on the Solana blockchain in just a few clicks. No coding required."), -1)

	m.renderIdeas(&b)
	m.renderDetails(&b)
	m.renderCreator(&b)
	m.renderRevoke(&b)
	m.renderSubmit(&b)

	return b.String(), b.row(m.focus)
}

func (m Model) renderIdeas(b *blockWriter) {
	b.add(sectionTitleStyle.Render("Need an Idea? ✨"), -1)
	b.add(hintStyle.Render("Describe your token concept and let AI brainstorm for you."), -1)
	b.add(m.renderInput(fieldPrompt, ""), fieldPrompt)

	label := "Generate Ideas"
	if m.gen.Loading() {
		label = m.spinner.View() + " Brainstorming..."
	}
	b.add(m.renderButton(fieldGenerate, label, !m.gen.Loading()), fieldGenerate)

	if msg := m.gen.Err(); msg != "" {
		b.add(components.ErrorAlert(msg).View(), -1)
	}

	suggestion, ok := m.gen.Suggestion()
	if !ok {
		b.add("", -1)
		return
	}
	b.add(m.renderSuggestion(fieldUseName, "Name", suggestion.Name), fieldUseName)
	b.add(m.renderSuggestion(fieldUseSymbol, "Symbol", suggestion.Symbol), fieldUseSymbol)
	b.add(m.renderSuggestion(fieldUseDescription, "Description", suggestion.Description), fieldUseDescription)
	b.add("", -1)
}

func (m Model) renderSuggestion(f field, label, value string) string {
	return m.renderSecondary(f, "Use") + "  " + labelStyle.Render(label+":") + " " + value
}

func (m Model) renderDetails(b *blockWriter) {
	b.add(sectionTitleStyle.Render("Token Details"), -1)
	b.add(m.renderInput(fieldName, "Token Name"), fieldName)
	b.add(m.renderInput(fieldSymbol, "Token Symbol"), fieldSymbol)
	b.add(m.renderInput(fieldDecimals, "Decimals"), fieldDecimals)
	b.add(m.renderInput(fieldSupply, "Total Supply"), fieldSupply)
	b.add(m.renderImage(), fieldImage)

	label := labelStyle
	if m.focus == fieldDescription {
		label = focusedLabelStyle
	}
	b.add(label.Render("Description")+"\n"+m.description.View(), fieldDescription)
	b.add("", -1)
}

func (m Model) renderImage() string {
	lines := []string{
		m.renderInput(fieldImage, "Token Image"),
		hintStyle.Render(fmt.Sprintf("PNG, JPG, GIF up to %s • enter to load • ctrl+o to browse", formatBytes(token.ImageSizeHint))),
	}

	if img := m.form.Draft().Image; img != nil {
		preview := fmt.Sprintf("%s (%s, %s)", img.Name, img.MIME, formatBytes(img.Size()))
		lines = append(lines, components.SuccessAlert(preview).View())
		if img.OverSizeHint() {
			lines = append(lines, components.WarningAlert("Image is larger than the recommended "+formatBytes(token.ImageSizeHint)).View())
		}
	}
	if m.imageErr != "" {
		lines = append(lines, components.ErrorAlert(m.imageErr).View())
	}
	return strings.Join(lines, "\n")
}

// creatorRow is the creator-info switch as currently shown. Activation
// applies its Press value.
func (m Model) creatorRow() components.ToggleRow {
	return components.ToggleRow{
		Toggle:      components.Toggle{On: m.form.Creator().Enabled, Focused: m.focus == fieldCreatorToggle},
		Title:       "Custom Creator Info",
		Description: "Change information about token creator in token metadata",
		Fee:         optionFeeSOL() + " SOL",
		New:         true,
	}
}

func (m Model) renderCreator(b *blockWriter) {
	b.add(m.creatorRow().View(), fieldCreatorToggle)

	if m.form.Creator().Enabled {
		b.add(m.renderInput(fieldCreatorName, "Creator Name"), fieldCreatorName)
		b.add(m.renderInput(fieldCreatorWebsite, "Creator Website"), fieldCreatorWebsite)
	}
	b.add("", -1)
}

type revokeCard struct {
	field       field
	icon        components.OptionIcon
	title       string
	description string
}

var revokeCards = map[token.AuthorityKind]revokeCard{
	token.AuthorityFreeze: {fieldRevokeFreeze, components.IconFreeze, "Revoke Freeze", "No one will be able to freeze token accounts."},
	token.AuthorityMint:   {fieldRevokeMint, components.IconMint, "Revoke Mint", "No one will be able to create more tokens."},
	token.AuthorityUpdate: {fieldRevokeUpdate, components.IconUpdate, "Revoke Metadata Update", "No one can modify token metadata anymore."},
}

// optionCard is the card for kind as currently shown. Activation applies its
// Press value.
func (m Model) optionCard(kind token.AuthorityKind) components.OptionCard {
	c := revokeCards[kind]
	return components.OptionCard{
		Icon:        c.icon,
		Title:       c.title,
		Description: c.description,
		Fee:         "+" + optionFeeSOL() + " SOL",
		Checked:     m.form.Authorities().Get(kind),
		Focused:     m.focus == c.field,
		Width:       contentWidth(m.width)/len(token.AuthorityKinds) - 2,
	}
}

func (m Model) renderRevoke(b *blockWriter) {
	b.add(sectionTitleStyle.Render("Revoke Authorities"), -1)
	b.add(hintStyle.Render("Permanently revoke authorities to attract more investors."), -1)

	cards := make([]string, 0, len(token.AuthorityKinds))
	fields := make([]field, 0, len(token.AuthorityKinds))
	for _, kind := range token.AuthorityKinds {
		cards = append(cards, m.optionCard(kind).View())
		fields = append(fields, revokeCards[kind].field)
	}
	b.add(lipgloss.JoinHorizontal(lipgloss.Top, cards...), fields...)
	b.add("", -1)
}

func (m Model) renderSubmit(b *blockWriter) {
	b.add(labelStyle.Render("Creation Cost: ")+costStyle.Render(m.form.Quote().SOL()+" SOL"), -1)

	var label string
	switch {
	case m.form.Status() == token.StatusCreating:
		label = m.spinner.View() + " Creating..."
	case m.form.Payer() != "":
		label = "Create Token"
	default:
		label = "Connect Wallet to Create"
	}
	b.add(m.renderButton(fieldSubmit, label, m.form.CanSubmit()), fieldSubmit)

	if res, ok := m.form.Result(); ok {
		if res.Failed() {
			b.add(components.ErrorAlert(res.Err).View(), -1)
		} else {
			line := res.Message
			if res.Signature != "" {
				line += " (" + res.Signature + ")"
			}
			b.add(components.SuccessAlert(line).View(), -1)
		}
	}
}

func (m Model) renderPicker() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		sectionTitleStyle.Render("Select token image"),
		hintStyle.Render(m.picker.CurrentDirectory),
		"",
		m.picker.View(),
	)
}

func (m Model) renderInput(f field, label string) string {
	ti := m.inputs[f]
	style := labelStyle
	marker := "  "
	if m.focus == f {
		style = focusedLabelStyle
		marker = "▸ "
	}
	if label == "" {
		return marker + ti.View()
	}
	return style.Render(label) + "\n" + marker + ti.View()
}

func (m Model) renderButton(f field, label string, enabled bool) string {
	return components.NewButton(label, components.ButtonOptions{
		Disabled: !enabled,
		Focus:    m.focus == f,
	}).View()
}

func (m Model) renderSecondary(f field, label string) string {
	return components.NewButton(label, components.ButtonOptions{
		Variant: components.ButtonVariantSecondary,
		Focus:   m.focus == f,
	}).View()
}

// optionFeeSOL renders token.OptionFee without trailing zeros.
func optionFeeSOL() string {
	return strings.TrimRight(strings.TrimRight(token.FormatSOL(token.OptionFee), "0"), ".")
}

func formatBytes(n int) string {
	switch {
	case n >= 1<<20 && n%(1<<20) == 0:
		return fmt.Sprintf("%dMB", n>>20)
	case n >= 1<<20:
		return fmt.Sprintf("%.1fMB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1fKB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%dB", n)
	}
}

// blockWriter joins rendered blocks and remembers where each field starts.
type blockWriter struct {
	blocks []string
	lines  int
	rows   map[field]int
}

func (b *blockWriter) add(block string, fields ...field) {
	if b.rows == nil {
		b.rows = make(map[field]int)
	}
	for _, f := range fields {
		if f >= 0 {
			b.rows[f] = b.lines
		}
	}
	b.blocks = append(b.blocks, block)
	b.lines += lipgloss.Height(block)
}

func (b *blockWriter) row(f field) int {
	return b.rows[f]
}

func (b *blockWriter) String() string {
	return strings.Join(b.blocks, "\n")
}
