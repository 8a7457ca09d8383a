package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	lipglossv2 "github.com/charmbracelet/lipgloss/v2"
)

var helpKeys = [][2]string{
	{"tab", "switch between free text and categories"},
	{"↑/↓", "move through suggestions or categories"},
	{"enter", "free text: add the title, or toggle the highlighted suggestion"},
	{"enter", "categories: use the highlighted category"},
	{"ctrl+d", "remove the last added title"},
	{"ctrl+y", "copy the query to the clipboard"},
	{"esc", "exit and print the query"},
}

// helpModal is a foreground box listing key bindings.
type helpModal struct {
	width  int
	height int
	padX   int
	padY   int
	box    lipglossv2.Style
}

func newHelpModal(termW, termH int) *helpModal {
	m := &helpModal{padX: 2, padY: 1}
	m.resizeForTerm(termW, termH)
	return m
}

func (m *helpModal) resizeForTerm(termW, termH int) {
	if termW <= 0 || termH <= 0 {
		termW, termH = 80, 24
	}
	w := int(float64(termW) * 0.7)
	if termW < 80 {
		w = termW - 4
	}
	w = min(max(w, 40), 90)
	h := len(helpKeys) + 4 + m.padY*2 + 2
	if h > termH {
		h = max(6, termH-1)
	}
	m.width, m.height = w, h
	m.box = lipglossv2.NewStyle().
		Width(w).
		Height(h).
		Padding(m.padY, m.padX).
		Border(lipglossv2.RoundedBorder()).
		BorderForeground(lipglossv2.Color("63"))
}

func (m *helpModal) View() string {
	keyStyle := lipgloss.NewStyle().Bold(true).Width(8)
	lines := []string{lipgloss.NewStyle().Bold(true).Render("Keys"), ""}
	for _, kv := range helpKeys {
		lines = append(lines, keyStyle.Render(kv[0])+" "+kv[1])
	}
	lines = append(lines, "", faintStyle.Render("esc/f1=close"))
	return m.box.Render(strings.Join(lines, "\n"))
}
