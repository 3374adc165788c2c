package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/lukemcguire/zombiemd/result"
)

// RenderSummary produces a Lip Gloss styled summary of link-check results:
// one table per error category, followed by a totals line.
func RenderSummary(res *result.Result) string {
	if res == nil {
		return errorStyle.Render("No results available.")
	}

	var b strings.Builder
	broken := res.BrokenLinks()
	if len(broken) == 0 {
		b.WriteString(successStyle.Render("No broken links found!"))
		b.WriteString("\n")
		b.WriteString(dimStyle.Render(fmt.Sprintf("Checked %d links in %s",
			res.Stats.TotalChecked, roundMS(res.Stats.Duration))))
		b.WriteString("\n")
		return b.String()
	}

	grouped := groupByCategory(broken)
	for _, cat := range categoryOrder {
		links := grouped[cat]
		if len(links) == 0 {
			continue
		}
		b.WriteString(categoryStyle.Render(fmt.Sprintf("## %s (%d)", result.FormatCategory(cat), len(links))))
		b.WriteString("\n")
		b.WriteString(categoryTable(links))
		b.WriteString("\n\n")
	}

	b.WriteString(titleStyle.Render(fmt.Sprintf("Found %d broken links out of %d links checked (%s)",
		res.Stats.BrokenCount, res.Stats.TotalChecked, roundMS(res.Stats.Duration))))
	b.WriteString("\n")
	return b.String()
}

// groupByCategory buckets links by error category, keeping resolution order
// within each bucket. Links without a category land in CategoryUnknown.
func groupByCategory(links []result.LinkResult) map[result.ErrorCategory][]result.LinkResult {
	grouped := make(map[result.ErrorCategory][]result.LinkResult)
	for _, link := range links {
		cat := link.ErrorCategory
		if cat == "" {
			cat = result.CategoryUnknown
		}
		grouped[cat] = append(grouped[cat], link)
	}
	return grouped
}

func categoryTable(links []result.LinkResult) string {
	rows := make([][]string, 0, len(links))
	for _, link := range links {
		source := link.SourceDocument
		if link.IsExternal {
			source += " (external)"
		}
		rows = append(rows, []string{link.URL, link.Outcome.String(), source})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		Headers("URL", "Outcome", "Found In").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == colOutcome:
				return outcomeCellStyle
			default:
				return cellStyle
			}
		}).
		Rows(rows...).
		Render()
}

func roundMS(d time.Duration) time.Duration {
	return d.Round(time.Millisecond)
}
