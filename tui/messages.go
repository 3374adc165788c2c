package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lukemcguire/zombiemd/checker"
	"github.com/lukemcguire/zombiemd/result"
)

// CheckProgressMsg reports progress for a single resolved link.
type CheckProgressMsg struct {
	Checked int
	Broken  int
	Total   int
	URL     string
}

// CheckDoneMsg signals that every link has been checked.
type CheckDoneMsg struct {
	Result *result.Result
}

// waitForProgress returns a tea.Cmd that reads one event from the progress
// channel. A closed channel yields no message; completion is reported by
// startCheck alone.
func waitForProgress(ch <-chan checker.CheckEvent) tea.Cmd {
	return func() tea.Msg {
		evt, ok := <-ch
		if !ok {
			return nil
		}
		return CheckProgressMsg{
			Checked: evt.Checked,
			Broken:  evt.Broken,
			Total:   evt.Total,
			URL:     evt.URL,
		}
	}
}
