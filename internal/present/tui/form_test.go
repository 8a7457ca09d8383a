package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mithrel/boolq/internal/catalog"
	"github.com/mithrel/boolq/internal/session"
	"github.com/mithrel/boolq/pkg/api"
)

type memClipboard struct {
	text string
	err  error
}

func (c *memClipboard) WriteAll(text string) error {
	if c.err != nil {
		return c.err
	}
	c.text = text
	return nil
}

func newTestModel(t *testing.T, clip *memClipboard) model {
	t.Helper()
	c := catalog.New()
	c.Set("marketing", "CMO", "Head of Marketing")
	c.Set("sales", "Head of Sales", "VP Sales")
	return newModel(session.NewForm(c, 10), Options{Clipboard: clip})
}

func send(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(model)
	require.True(t, ok)
	return nm, cmd
}

func typeText(t *testing.T, m model, s string) model {
	t.Helper()
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return m
}

func key(k tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: k} }

func TestTypingUpdatesSuggestionsAndQuery(t *testing.T) {
	m := newTestModel(t, &memClipboard{})
	m = typeText(t, m, "head")

	assert.Equal(t, "head", m.form.Input)
	assert.Equal(t, []string{"Head of Marketing", "Head of Sales"}, m.suggestions)
	assert.Equal(t, `"head"`, m.form.Query())
	assert.Contains(t, m.View(), "Head of Sales")
}

func TestToggleSuggestionAndCommitInput(t *testing.T) {
	m := newTestModel(t, &memClipboard{})
	m = typeText(t, m, "head")

	m, _ = send(t, m, key(tea.KeyDown))
	m, _ = send(t, m, key(tea.KeyDown))
	assert.Equal(t, 1, m.cursor)
	m, _ = send(t, m, key(tea.KeyEnter))
	assert.Equal(t, []string{"Head of Sales"}, m.form.Selected)

	// back to the input, enter commits it as a custom title
	m, _ = send(t, m, key(tea.KeyUp))
	m, _ = send(t, m, key(tea.KeyUp))
	assert.Equal(t, -1, m.cursor)
	m, _ = send(t, m, key(tea.KeyEnter))
	assert.Equal(t, []string{"head"}, m.form.Custom)
	assert.Equal(t, "", m.form.Input)
	assert.Equal(t, "", m.input.Value())
	assert.Empty(t, m.suggestions)
	assert.Equal(t, `"head" OR "Head of Sales"`, m.form.Query())

	m, _ = send(t, m, key(tea.KeyCtrlD))
	assert.Empty(t, m.form.Custom)
	assert.Equal(t, "Removed head", m.status)
}

func TestCategoryMode(t *testing.T) {
	m := newTestModel(t, &memClipboard{})
	m, _ = send(t, m, key(tea.KeyTab))
	assert.Equal(t, api.ModeCategory, m.form.Mode)

	m, _ = send(t, m, key(tea.KeyDown))
	m, _ = send(t, m, key(tea.KeyEnter))
	assert.Equal(t, "sales", m.form.Category)
	assert.Equal(t, `"Head of Sales" OR "VP Sales"`, m.form.Query())
	assert.Contains(t, m.View(), "Categories")

	m, _ = send(t, m, key(tea.KeyTab))
	assert.Equal(t, api.ModeFree, m.form.Mode)
	assert.Equal(t, "", m.form.Query())
}

func TestCopyToClipboard(t *testing.T) {
	clip := &memClipboard{}
	m := newTestModel(t, clip)

	// empty query: nothing to copy
	_, cmd := send(t, m, key(tea.KeyCtrlY))
	assert.Nil(t, cmd)

	m = typeText(t, m, "CMO")
	m, cmd = send(t, m, key(tea.KeyCtrlY))
	require.NotNil(t, cmd)
	msg := cmd()
	assert.Equal(t, `"CMO"`, clip.text)

	m, _ = send(t, m, msg)
	assert.Equal(t, "Copied!", m.status)
}

func TestCopyFailureShowsStatus(t *testing.T) {
	clip := &memClipboard{err: errors.New("no display")}
	m := newTestModel(t, clip)
	m = typeText(t, m, "CMO")

	m, cmd := send(t, m, key(tea.KeyCtrlY))
	require.NotNil(t, cmd)
	m, _ = send(t, m, cmd())
	assert.True(t, strings.HasPrefix(m.status, "Copy failed"), m.status)
}

func TestStatusClearsOnlyLatest(t *testing.T) {
	m := newTestModel(t, &memClipboard{})
	m.setStatus("first")
	m.setStatus("second")
	m, _ = send(t, m, clearStatusMsg{id: 1})
	assert.Equal(t, "second", m.status)
	m, _ = send(t, m, clearStatusMsg{id: 2})
	assert.Equal(t, "", m.status)
}

func TestHelpAndQuit(t *testing.T) {
	m := newTestModel(t, &memClipboard{})
	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	m, _ = send(t, m, key(tea.KeyF1))
	require.NotNil(t, m.help)
	assert.Contains(t, m.View(), "ctrl+y")

	m, cmd := send(t, m, key(tea.KeyEsc))
	assert.Nil(t, m.help)
	assert.Nil(t, cmd)

	_, cmd = send(t, m, key(tea.KeyEsc))
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	assert.True(t, ok)
}
