package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mithrel/boolq/internal/clipboard"
)

// copyResultMsg conveys the outcome of a clipboard write back to Update.
type copyResultMsg struct {
	err error
}

// clearStatusMsg removes the status line if it is still the one with id.
type clearStatusMsg struct {
	id int
}

// copyCmd writes text to the clipboard off the event loop.
func copyCmd(w clipboard.Writer, text string) tea.Cmd {
	return func() tea.Msg {
		_, err := clipboard.Copy(w, text)
		return copyResultMsg{err: err}
	}
}

func clearStatusCmd(id int, ttl time.Duration) tea.Cmd {
	if ttl <= 0 {
		return nil
	}
	return tea.Tick(ttl, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}
