package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	lipglossv2 "github.com/charmbracelet/lipgloss/v2"

	"github.com/mithrel/boolq/pkg/api"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63"))
	activeTab     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1)
	inactiveTab   = lipgloss.NewStyle().Faint(true).Padding(0, 1)
	labelStyle    = lipgloss.NewStyle().Bold(true)
	cursorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57"))
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	badgeStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Background(lipgloss.Color("238")).Padding(0, 1)
	faintStyle    = lipgloss.NewStyle().Faint(true)
)

func categoryColumns(width int) []table.Column {
	nameW := max(16, width-24)
	if nameW > 40 {
		nameW = 40
	}
	return []table.Column{
		{Title: "", Width: 2},
		{Title: "Category", Width: nameW},
		{Title: "Size", Width: 12},
	}
}

func (m *model) applyTableStyles() {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	m.cats.SetStyles(s)
}

func (m model) View() string {
	sections := []string{
		titleStyle.Render("boolq · boolean query builder"),
		m.renderTabs(),
		"",
	}
	if m.form.Mode == api.ModeCategory {
		sections = append(sections, m.renderCategoryMode())
	} else {
		sections = append(sections, m.renderFreeMode())
	}
	sections = append(sections, "", m.renderQuery(), m.renderFooter())
	base := strings.Join(sections, "\n")

	if m.help != nil {
		return m.renderOverlay(base, m.help.View(), m.help.width, m.help.height)
	}
	return base
}

func (m model) renderTabs() string {
	free, cat := inactiveTab, inactiveTab
	if m.form.Mode == api.ModeCategory {
		cat = activeTab
	} else {
		free = activeTab
	}
	return free.Render("Free text") + " " + cat.Render("Categories")
}

func (m model) renderFreeMode() string {
	lines := []string{m.input.View()}

	if len(m.suggestions) > 0 {
		lines = append(lines, "", labelStyle.Render("Suggestions")+faintStyle.Render(" (↓ then enter to toggle)"))
		for i, s := range m.suggestions {
			box := "[ ]"
			if m.form.IsSelected(s) {
				box = selectedStyle.Render("[x]")
			}
			line := box + " " + s
			if i == m.cursor {
				line = cursorStyle.Render("›") + " " + line
			} else {
				line = "  " + line
			}
			lines = append(lines, line)
		}
	}

	if len(m.form.Custom) > 0 {
		badges := make([]string, len(m.form.Custom))
		for i, c := range m.form.Custom {
			badges[i] = badgeStyle.Render(c)
		}
		lines = append(lines, "", labelStyle.Render("Added titles")+faintStyle.Render(" (ctrl+d removes the last)"), strings.Join(badges, " "))
	}
	return strings.Join(lines, "\n")
}

func (m model) renderCategoryMode() string {
	if len(m.catNames) == 0 {
		return faintStyle.Render("(catalog is empty)")
	}
	return m.cats.View()
}

func (m model) renderQuery() string {
	q := m.form.Query()
	body := q
	if q == "" {
		body = faintStyle.Render("Enter a job title or pick a category to generate a query")
	}
	w := m.width - 2
	if w <= 0 {
		w = 78
	}
	box := lipglossv2.NewStyle().
		Width(w).
		Padding(0, 1).
		Border(lipglossv2.RoundedBorder()).
		BorderForeground(lipglossv2.Color("63"))
	header := labelStyle.Render(fmt.Sprintf("Boolean query (%d titles)", len(m.form.Titles())))
	return box.Render(header + "\n" + body)
}

func (m model) renderFooter() string {
	left := "tab=mode • enter=add/toggle • ctrl+y=copy • f1=help • esc=exit"
	if m.status == "" {
		return faintStyle.Render(left)
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	right := m.status
	space := width - lipgloss.Width(left) - lipgloss.Width(right)
	if space < 1 {
		space = 1
	}
	return faintStyle.Render(left) + strings.Repeat(" ", space) + right
}
