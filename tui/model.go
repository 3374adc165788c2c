// Package tui provides the Bubble Tea terminal UI for zombiemd,
// displaying live link-check progress and a styled summary of results.
package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lukemcguire/zombiemd/checker"
	"github.com/lukemcguire/zombiemd/result"
)

// Model is the Bubble Tea model for the link-check TUI.
type Model struct {
	ctx        context.Context
	cancel     context.CancelFunc
	checker    *checker.Checker
	targets    *checker.TargetSet
	spinner    spinner.Model
	progressCh chan checker.CheckEvent

	total    int
	checked  int
	broken   int
	current  string
	quitting bool
	done     bool
	result   *result.Result
	width    int
}

// NewModel creates a TUI model that checks targets with c. Progress events
// travel over progressCh, which the model closes once the run finishes.
func NewModel(ctx context.Context, cancel context.CancelFunc, c *checker.Checker, targets *checker.TargetSet, progressCh chan checker.CheckEvent) Model {
	spin := spinner.New()
	spin.Spinner = spinner.Dot
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return Model{
		ctx:        ctx,
		cancel:     cancel,
		checker:    c,
		targets:    targets,
		spinner:    spin,
		progressCh: progressCh,
		total:      targets.Len(),
	}
}

// Init starts the spinner, the check run, and the progress listener concurrently.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.startCheck(), waitForProgress(m.progressCh))
}

// startCheck returns a tea.Cmd that runs the checker and sends CheckDoneMsg.
func (m Model) startCheck() tea.Cmd {
	return func() tea.Msg {
		notify := checker.ProgressNotifier(m.ctx, m.progressCh, m.total)
		res := m.checker.Run(m.ctx, m.targets, notify)
		close(m.progressCh)
		return CheckDoneMsg{Result: res}
	}
}

// Update handles messages from the Bubble Tea runtime.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			m.quitting = true
			m.cancel()
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width

	case CheckProgressMsg:
		m.checked = msg.Checked
		m.broken = msg.Broken
		m.total = msg.Total
		m.current = msg.URL
		return m, waitForProgress(m.progressCh)

	case CheckDoneMsg:
		m.done = true
		m.result = msg.Result
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

// View renders the current TUI state.
func (m Model) View() string {
	if m.done && m.result != nil {
		return RenderSummary(m.result)
	}
	if m.quitting {
		return errorStyle.Render("Interrupted.") + "\n"
	}
	return fmt.Sprintf("%s Checking... checked %d/%d, broken %d\n%s\n",
		m.spinner.View(), m.checked, m.total, m.broken,
		dimStyle.Render("  "+m.current))
}

// HasBrokenLinks reports whether the run found any broken links.
func (m Model) HasBrokenLinks() bool {
	return len(m.result.BrokenLinks()) > 0
}

// Interrupted reports whether the user quit before the run completed.
func (m Model) Interrupted() bool {
	return m.quitting && !m.done
}

// GetResult returns the run result for output formatting.
func (m Model) GetResult() *result.Result {
	return m.result
}
