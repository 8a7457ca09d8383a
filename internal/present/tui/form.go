package tui

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mithrel/boolq/internal/clipboard"
	"github.com/mithrel/boolq/internal/session"
	"github.com/mithrel/boolq/pkg/api"
)

// Options configures the interactive form.
type Options struct {
	Clipboard clipboard.Writer
	// StatusTTL is how long status messages stay visible; 0 keeps them.
	StatusTTL time.Duration
	Log       *log.Logger
}

// RunForm opens the interactive query form over form. When the user quits,
// the final query (if any) is written to out.
func RunForm(ctx context.Context, out io.Writer, form *session.Form, opts Options) error {
	m := newModel(form, opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return err
	}
	if fm, ok := final.(model); ok {
		if q := fm.form.Query(); q != "" {
			_, err = fmt.Fprintln(out, q)
		}
	}
	return err
}

type model struct {
	form        *session.Form
	input       textinput.Model
	cats        table.Model
	catNames    []string
	suggestions []string
	// cursor is the highlighted suggestion, -1 when the input has focus
	cursor   int
	width    int
	height   int
	status   string
	statusID int
	help     *helpModal
	clip     clipboard.Writer
	ttl      time.Duration
	log      *log.Logger
}

func newModel(form *session.Form, opts Options) model {
	clip := opts.Clipboard
	if clip == nil {
		clip = clipboard.System()
	}
	logger := opts.Log
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	m := model{
		form:   form,
		cursor: -1,
		clip:   clip,
		ttl:    opts.StatusTTL,
		log:    logger,
	}
	m.input = textinput.New()
	m.input.Prompt = "title: "
	m.input.Placeholder = "CMO, Directeur Marketing, Head of Sales..."
	m.input.SetValue(form.Input)
	m.initCategories()
	m.applyFocus()
	m.refreshSuggestions()
	return m
}

func (m *model) initCategories() {
	sums := m.form.Catalog().Summaries()
	m.catNames = make([]string, len(sums))
	for i, s := range sums {
		m.catNames[i] = s.Name
	}
	m.cats = table.New(
		table.WithColumns(categoryColumns(40)),
		table.WithHeight(min(12, len(sums)+1)),
	)
	m.updateCategoryRows()
	m.applyTableStyles()
}

func (m *model) updateCategoryRows() {
	sums := m.form.Catalog().Summaries()
	rows := make([]table.Row, 0, len(sums))
	for _, s := range sums {
		mark := ""
		if s.Name == m.form.Category {
			mark = "●"
		}
		rows = append(rows, table.Row{mark, s.Name, fmt.Sprintf("%d titles", s.Count)})
	}
	m.cats.SetRows(rows)
}

func (m *model) applyFocus() {
	if m.form.Mode == api.ModeCategory {
		m.input.Blur()
		m.cats.Focus()
		return
	}
	m.cats.Blur()
	m.input.Focus()
}

func (m *model) refreshSuggestions() {
	m.suggestions = m.form.Suggestions()
	if m.cursor >= len(m.suggestions) {
		m.cursor = len(m.suggestions) - 1
	}
}

// setStatus shows msg and schedules its removal.
func (m *model) setStatus(msg string) tea.Cmd {
	m.status = msg
	m.statusID++
	return clearStatusCmd(m.statusID, m.ttl)
}

func (m model) Init() tea.Cmd { return textinput.Blink }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.cats.SetColumns(categoryColumns(m.width))
		m.input.Width = max(20, m.width-len(m.input.Prompt)-4)
		if m.help != nil {
			m.help.resizeForTerm(m.width, m.height)
		}
		return m, nil
	case copyResultMsg:
		if msg.err != nil {
			m.log.Printf("clipboard: %v", msg.err)
			return m, m.setStatus("Copy failed: " + msg.err.Error())
		}
		return m, m.setStatus("Copied!")
	case clearStatusMsg:
		if msg.id == m.statusID {
			m.status = ""
		}
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m.forward(msg)
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.help != nil {
		switch msg.String() {
		case "esc", "f1", "q":
			m.help = nil
		case "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c", "esc":
		return m, tea.Quit
	case "f1":
		m.help = newHelpModal(m.width, m.height)
		return m, nil
	case "tab", "shift+tab":
		m.form.ToggleMode()
		m.applyFocus()
		return m, nil
	case "ctrl+y":
		q := m.form.Query()
		if q == "" {
			return m, nil
		}
		return m, copyCmd(m.clip, q)
	}

	if m.form.Mode == api.ModeCategory {
		if msg.String() == "enter" {
			if i := m.cats.Cursor(); i >= 0 && i < len(m.catNames) {
				m.form.SelectCategory(m.catNames[i])
				m.updateCategoryRows()
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.cats, cmd = m.cats.Update(msg)
		return m, cmd
	}

	switch msg.String() {
	case "up":
		if m.cursor >= 0 {
			m.cursor--
		}
		return m, nil
	case "down":
		if m.cursor < len(m.suggestions)-1 {
			m.cursor++
		}
		return m, nil
	case "enter":
		if m.cursor >= 0 && m.cursor < len(m.suggestions) {
			m.form.ToggleSelected(m.suggestions[m.cursor])
			return m, nil
		}
		if m.form.CommitInput() {
			m.input.SetValue("")
			m.refreshSuggestions()
		}
		return m, nil
	case "ctrl+d":
		if title, ok := m.form.RemoveLastCustom(); ok {
			return m, m.setStatus("Removed " + title)
		}
		return m, nil
	}
	return m.forward(msg)
}

// forward hands msg to the focused widget and resyncs the form input.
func (m model) forward(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	if m.form.Mode == api.ModeCategory {
		m.cats, cmd = m.cats.Update(msg)
		return m, cmd
	}
	m.input, cmd = m.input.Update(msg)
	if v := m.input.Value(); v != m.form.Input {
		m.form.Input = v
		m.cursor = -1
		m.refreshSuggestions()
	}
	return m, cmd
}
