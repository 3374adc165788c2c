package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/lukemcguire/zombiemd/result"
)

var (
	titleStyle       = lipgloss.NewStyle().Bold(true)
	successStyle     = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	errorStyle       = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	headerStyle      = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	categoryStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	dimStyle         = lipgloss.NewStyle().Faint(true)
	cellStyle        = lipgloss.NewStyle()
	outcomeCellStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

// categoryOrder lists error categories from most to least actionable.
// HTTP answers come first since the fix is usually in the document itself.
var categoryOrder = []result.ErrorCategory{
	result.Category4xx,
	result.Category5xx,
	result.Category3xx,
	result.CategoryTimeout,
	result.CategoryDNSFailure,
	result.CategoryConnectionRefused,
	result.CategoryCanceled,
	result.CategoryUnknown,
}

// Table columns.
const (
	colURL = iota
	colOutcome
	colSource
)
