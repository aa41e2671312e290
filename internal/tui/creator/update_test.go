package creator

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solmint/solmint/internal/ideas"
	"github.com/solmint/solmint/internal/logger"
	"github.com/solmint/solmint/internal/token"
)

type fakeIdeas struct {
	suggestion ideas.Suggestion
	err        error
	prompts    []string
}

func (f *fakeIdeas) Generate(_ context.Context, prompt string) (ideas.Suggestion, error) {
	f.prompts = append(f.prompts, prompt)
	return f.suggestion, f.err
}

type fakeSubmitter struct {
	requests []token.CreateRequest
	result   token.Result
	err      error
}

func (f *fakeSubmitter) Submit(_ context.Context, req token.CreateRequest) (token.Result, error) {
	f.requests = append(f.requests, req)
	return f.result, f.err
}

func newTestModel(t *testing.T, svc ideas.Service, sub token.Submitter) Model {
	t.Helper()
	return NewModel(Options{
		Ideas:     svc,
		Submitter: sub,
		Log:       logger.Nop(),
		StartDir:  t.TempDir(),
	})
}

func key(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

func typeText(m Model, s string) Model {
	for _, r := range s {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func pngBytes(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 2, 2))))
	return buf.Bytes()
}

func TestNewModel_Defaults(t *testing.T) {
	m := newTestModel(t, &fakeIdeas{}, &fakeSubmitter{})

	assert.Equal(t, fieldPrompt, m.focus)
	assert.Equal(t, "9", m.inputs[fieldDecimals].Value())
	assert.Equal(t, "1000000", m.inputs[fieldSupply].Value())
	assert.Equal(t, uint64(token.DefaultDecimals), m.Form().Draft().Decimals)
	assert.Equal(t, "0.202", m.Form().Quote().SOL())
	assert.False(t, m.Busy())
}

func TestUpdate_WindowSizeMsg(t *testing.T) {
	m := newTestModel(t, &fakeIdeas{}, &fakeSubmitter{})

	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
	assert.Equal(t, contentWidth(120)-2, m.inputs[fieldName].Width)
}

func TestUpdate_TabSkipsHiddenFields(t *testing.T) {
	m := newTestModel(t, &fakeIdeas{}, &fakeSubmitter{})

	m, _ = m.Update(key(tea.KeyTab))
	assert.Equal(t, fieldGenerate, m.focus)

	// no suggestion yet, so the adopt buttons are skipped
	m, _ = m.Update(key(tea.KeyTab))
	assert.Equal(t, fieldName, m.focus)

	m, _ = m.Update(key(tea.KeyShiftTab))
	m, _ = m.Update(key(tea.KeyShiftTab))
	assert.Equal(t, fieldPrompt, m.focus)

	// wraps backwards to the submit button
	m, _ = m.Update(key(tea.KeyShiftTab))
	assert.Equal(t, fieldSubmit, m.focus)
}

func TestUpdate_TypingSyncsForm(t *testing.T) {
	m := newTestModel(t, &fakeIdeas{}, &fakeSubmitter{})
	m.setFocus(fieldName)

	m = typeText(m, "Moon Coin")
	assert.Equal(t, "Moon Coin", m.Form().Draft().Name)

	m, _ = m.Update(key(tea.KeyEnter))
	assert.Equal(t, fieldSymbol, m.focus)

	m = typeText(m, "MOON")
	assert.Equal(t, "MOON", m.Form().Draft().Symbol)
}

func TestUpdate_NumericFieldsKeepDigitsOnly(t *testing.T) {
	m := newTestModel(t, &fakeIdeas{}, &fakeSubmitter{})
	m.setFocus(fieldDecimals)

	m, _ = m.Update(key(tea.KeyBackspace))
	m = typeText(m, "6x")

	assert.Equal(t, "6", m.inputs[fieldDecimals].Value())
	assert.Equal(t, uint64(6), m.Form().Draft().Decimals)

	m, _ = m.Update(key(tea.KeyBackspace))
	assert.Equal(t, uint64(0), m.Form().Draft().Decimals)
}

func TestUpdate_DescriptionAcceptsNewlines(t *testing.T) {
	m := newTestModel(t, &fakeIdeas{}, &fakeSubmitter{})
	m.setFocus(fieldDescription)

	m = typeText(m, "line one")
	m, _ = m.Update(key(tea.KeyEnter))
	m = typeText(m, "line two")

	assert.Equal(t, fieldDescription, m.focus)
	assert.Equal(t, "line one\nline two", m.Form().Draft().Description)
}

func TestGenerate_EmptyPromptFailsLocally(t *testing.T) {
	svc := &fakeIdeas{}
	m := newTestModel(t, svc, &fakeSubmitter{})

	m = typeText(m, "   ")
	m, cmd := m.Update(key(tea.KeyCtrlG))

	assert.Nil(t, cmd)
	assert.Equal(t, ideas.StateFailed, m.Generator().State())
	assert.Equal(t, ideas.EmptyPromptMessage, m.Generator().Err())
	assert.Empty(t, svc.prompts)
	assert.Contains(t, m.View(), ideas.EmptyPromptMessage)
}

func TestGenerate_SuccessAndAdopt(t *testing.T) {
	svc := &fakeIdeas{suggestion: ideas.Suggestion{
		Name:        "Solar Grid",
		Symbol:      "SGRID",
		Description: "Power to the people.",
	}}
	m := newTestModel(t, svc, &fakeSubmitter{})

	m = typeText(m, "solar microgrids")
	m, cmd := m.Update(key(tea.KeyEnter))
	require.NotNil(t, cmd)
	require.True(t, m.Generator().Loading())
	assert.Contains(t, m.View(), "Brainstorming...")

	// a second trigger while in flight is refused
	_, again := m.Update(key(tea.KeyCtrlG))
	assert.Nil(t, again)

	msg := generateCmd(context.Background(), svc, 1, m.Generator().Prompt())()
	m, _ = m.Update(msg)

	require.Equal(t, ideas.StateSucceeded, m.Generator().State())
	assert.Equal(t, []string{"solar microgrids"}, svc.prompts)
	assert.True(t, m.focusable(fieldUseName))

	m.setFocus(fieldUseName)
	m, _ = m.Update(key(tea.KeyEnter))
	m.setFocus(fieldUseSymbol)
	m, _ = m.Update(key(tea.KeySpace))

	assert.Equal(t, "Solar Grid", m.Form().Draft().Name)
	assert.Equal(t, "Solar Grid", m.inputs[fieldName].Value())
	assert.Equal(t, "SGRID", m.Form().Draft().Symbol)
	assert.Empty(t, m.Form().Draft().Description)

	m.setFocus(fieldUseDescription)
	m, _ = m.Update(key(tea.KeyEnter))
	assert.Equal(t, "Power to the people.", m.Form().Draft().Description)
	assert.Equal(t, "Power to the people.", m.description.Value())
}

func TestGenerate_FailureShowsMessage(t *testing.T) {
	m := newTestModel(t, &fakeIdeas{}, &fakeSubmitter{})

	m = typeText(m, "cats")
	m, _ = m.Update(key(tea.KeyCtrlG))
	m, _ = m.Update(IdeasSettledMsg{Ticket: 1, Err: errors.New("connection refused")})

	assert.Equal(t, ideas.StateFailed, m.Generator().State())
	assert.Equal(t, ideas.FallbackMessage, m.Generator().Err())
	assert.False(t, m.Busy())
}

func TestIdeasSettled_StaleTicketDropped(t *testing.T) {
	m := newTestModel(t, &fakeIdeas{}, &fakeSubmitter{})

	m = typeText(m, "cats")
	m, _ = m.Update(key(tea.KeyCtrlG))
	m, _ = m.Update(IdeasSettledMsg{Ticket: 7, Suggestion: ideas.Suggestion{Name: "Old"}})

	assert.True(t, m.Generator().Loading())
	_, ok := m.Generator().Suggestion()
	assert.False(t, ok)
}

func TestGenerate_HidesAdoptButtonsWhenFocused(t *testing.T) {
	svc := &fakeIdeas{suggestion: ideas.Suggestion{Name: "A", Symbol: "B", Description: "C"}}
	m := newTestModel(t, svc, &fakeSubmitter{})

	m = typeText(m, "cats")
	m, _ = m.Update(key(tea.KeyCtrlG))
	m, _ = m.Update(IdeasSettledMsg{Ticket: 1, Suggestion: svc.suggestion})

	m.setFocus(fieldUseSymbol)
	m, _ = m.Update(key(tea.KeyCtrlG))

	assert.True(t, m.Generator().Loading())
	assert.Equal(t, fieldGenerate, m.focus)
}

func TestUpdate_RevokeCardsToggle(t *testing.T) {
	m := newTestModel(t, &fakeIdeas{}, &fakeSubmitter{})

	m.setFocus(fieldRevokeMint)
	require.False(t, m.optionCard(token.AuthorityMint).Checked)
	m, _ = m.Update(key(tea.KeySpace))
	assert.True(t, m.Form().Authorities().Mint)
	assert.True(t, m.optionCard(token.AuthorityMint).Checked)
	assert.False(t, m.optionCard(token.AuthorityMint).Press())
	assert.Equal(t, "0.302", m.Form().Quote().SOL())

	m, _ = m.Update(key(tea.KeySpace))
	assert.False(t, m.Form().Authorities().Mint)
	assert.False(t, m.optionCard(token.AuthorityMint).Checked)

	m, _ = m.Update(key(tea.KeySpace))
	require.True(t, m.Form().Authorities().Mint)

	m.setFocus(fieldRevokeUpdate)
	m, _ = m.Update(key(tea.KeyEnter))
	assert.False(t, m.Form().Authorities().Update)
	assert.Equal(t, "0.202", m.Form().Quote().SOL())
}

func TestUpdate_CreatorToggleRevealsFields(t *testing.T) {
	m := newTestModel(t, &fakeIdeas{}, &fakeSubmitter{})
	m.setFocus(fieldCreatorToggle)

	m, _ = m.Update(key(tea.KeyTab))
	assert.Equal(t, fieldRevokeFreeze, m.focus)

	m.setFocus(fieldCreatorToggle)
	require.True(t, m.creatorRow().Press())
	m, _ = m.Update(key(tea.KeyEnter))
	require.True(t, m.Form().Creator().Enabled)
	assert.True(t, m.creatorRow().On)
	assert.True(t, m.creatorRow().Focused)
	assert.False(t, m.creatorRow().Press())
	assert.Equal(t, "0.302", m.Form().Quote().SOL())

	m, _ = m.Update(key(tea.KeyTab))
	assert.Equal(t, fieldCreatorName, m.focus)
	m = typeText(m, "SolMint")
	m, _ = m.Update(key(tea.KeyTab))
	m = typeText(m, "https://solmint.io")

	assert.Equal(t, "SolMint", m.Form().Creator().Name)
	assert.Equal(t, "https://solmint.io", m.Form().Creator().Website)
	assert.Contains(t, m.View(), "Creator Website")
}

func TestSubmit_RequiresWallet(t *testing.T) {
	sub := &fakeSubmitter{}
	m := newTestModel(t, &fakeIdeas{}, sub)

	m, cmd := m.Update(key(tea.KeyCtrlS))

	assert.Nil(t, cmd)
	assert.Equal(t, token.StatusIdle, m.Form().Status())
	assert.Contains(t, m.View(), "Connect Wallet to Create")
}

func TestSubmit_Flow(t *testing.T) {
	sub := &fakeSubmitter{result: token.Result{Message: "minted", Signature: "5sig"}}
	m := newTestModel(t, &fakeIdeas{}, sub)
	m = m.SetPayer("9xQeWvG816bUx9EPjHmaT23yvVM2ZWbrrpZb9PusVFin")
	assert.Contains(t, m.View(), "Create Token")

	m.setFocus(fieldSubmit)
	m, cmd := m.Update(key(tea.KeyEnter))
	require.NotNil(t, cmd)
	require.Equal(t, token.StatusCreating, m.Form().Status())
	assert.True(t, m.Busy())
	assert.Contains(t, m.View(), "Creating...")

	// a second submit while creating is refused
	_, again := m.Update(key(tea.KeyCtrlS))
	assert.Nil(t, again)

	req := token.CreateRequest{CorrelationID: "corr-1", Payer: m.Form().Payer()}
	msg := submitCmd(context.Background(), sub, req)()
	m, _ = m.Update(msg)

	assert.Equal(t, token.StatusIdle, m.Form().Status())
	res, ok := m.Form().Result()
	require.True(t, ok)
	assert.Equal(t, "minted", res.Message)
	assert.Contains(t, m.View(), "5sig")
}

func TestSubmit_FailureRecorded(t *testing.T) {
	m := newTestModel(t, &fakeIdeas{}, &fakeSubmitter{})
	m = m.SetPayer("payer")
	m, _ = m.Update(key(tea.KeyCtrlS))
	m, _ = m.Update(SubmitSettledMsg{CorrelationID: "c", Err: errors.New("rejected by wallet")})

	res, ok := m.Form().Result()
	require.True(t, ok)
	assert.True(t, res.Failed())
	assert.Contains(t, m.View(), "rejected by wallet")
	assert.True(t, m.Form().CanSubmit())
}

func TestImageLoaded(t *testing.T) {
	m := newTestModel(t, &fakeIdeas{}, &fakeSubmitter{})

	img, err := token.NewImage("logo.png", pngBytes(t))
	require.NoError(t, err)

	m, _ = m.Update(ImageLoadedMsg{Path: "logo.png", Image: img})
	require.NotNil(t, m.Form().Draft().Image)
	assert.Contains(t, m.View(), "logo.png")

	// rejected types leave the current image alone and show nothing
	m, _ = m.Update(ImageLoadedMsg{Path: "notes.txt", Err: token.ErrNotImage})
	assert.Equal(t, "logo.png", m.Form().Draft().Image.Name)
	assert.Empty(t, m.imageErr)

	m, _ = m.Update(ImageLoadedMsg{Path: "missing.png", Err: os.ErrNotExist})
	assert.NotEmpty(t, m.imageErr)
	assert.Equal(t, "logo.png", m.Form().Draft().Image.Name)
}

func TestLoadImageCmd(t *testing.T) {
	dir := t.TempDir()
	imgPath := filepath.Join(dir, "logo.png")
	txtPath := filepath.Join(dir, "notes.png")
	require.NoError(t, os.WriteFile(imgPath, pngBytes(t), 0o600))
	require.NoError(t, os.WriteFile(txtPath, []byte("plain text"), 0o600))

	msg, ok := loadImageCmd(imgPath)().(ImageLoadedMsg)
	require.True(t, ok)
	require.NoError(t, msg.Err)
	assert.Equal(t, "image/png", msg.Image.MIME)

	msg, ok = loadImageCmd(txtPath)().(ImageLoadedMsg)
	require.True(t, ok)
	assert.ErrorIs(t, msg.Err, token.ErrNotImage)
}

func TestUpdate_ImagePathEnterLoads(t *testing.T) {
	m := newTestModel(t, &fakeIdeas{}, &fakeSubmitter{})
	m.setFocus(fieldImage)

	_, cmd := m.Update(key(tea.KeyEnter))
	assert.Nil(t, cmd, "empty path loads nothing")

	m = typeText(m, "logo.png")
	_, cmd = m.Update(key(tea.KeyEnter))
	assert.NotNil(t, cmd)
}

func TestUpdate_PickerOpensAndCloses(t *testing.T) {
	m := newTestModel(t, &fakeIdeas{}, &fakeSubmitter{})

	m, cmd := m.Update(key(tea.KeyCtrlO))
	assert.True(t, m.Picking())
	assert.NotNil(t, cmd)
	assert.Contains(t, m.View(), "Select token image")
	assert.Equal(t, pickerHelp, m.Help())

	m, _ = m.Update(key(tea.KeyEsc))
	assert.False(t, m.Picking())
	assert.Equal(t, KeyHelp, m.Help())
}
