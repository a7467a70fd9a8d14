package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"typr/internal/engine"
	"typr/internal/metrics"
)

const sparklineWidth = 40

func (m *Model) viewResults() string {
	rep := m.session.Metrics()
	counters := m.session.Counters()

	var title string
	if m.session.Phase() == engine.PhaseFailed {
		title = failTitleStyle.Render(fmt.Sprintf("Test failed on %q", m.session.FailedWord()))
	} else {
		title = doneTitleStyle.Render("Test complete")
	}

	parts := []string{title, "", renderResultsTable(rep, counters)}
	if spark := metrics.Sparkline(metrics.Resample(m.samples, sparklineWidth)); spark != "" {
		parts = append(parts, "", headerStyle.Render("wpm "+spark))
	}
	parts = append(parts, "", footerStyle.Render("tab/esc restart  ctrl+c quit"))
	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func renderResultsTable(rep metrics.Report, counters engine.Counters) string {
	columns := []table.Column{
		{Title: "Metric", Width: 12},
		{Title: "Value", Width: 9},
	}
	rows := []table.Row{
		{"Net WPM", fmt.Sprintf("%.0f", rep.WPM)},
		{"Gross WPM", fmt.Sprintf("%.0f", rep.GrossWPM)},
		{"Accuracy", fmt.Sprintf("%.0f%%", rep.Accuracy)},
		{"Correct", strconv.Itoa(rep.CorrectChars)},
		{"Incorrect", strconv.Itoa(rep.IncorrectChars)},
		{"Total", strconv.Itoa(rep.TotalChars)},
		{"Words", fmt.Sprintf("%d/%d", counters.CorrectWords, counters.CorrectWords+counters.IncorrectWords)},
		{"Grade", rep.Grade},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(len(rows)),
	)
	t.SetStyles(resultsTableStyles())
	return strings.TrimRight(t.View(), "\n")
}

func resultsTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	// Static table; no cursor row highlight.
	styles.Selected = styles.Cell
	return styles
}
