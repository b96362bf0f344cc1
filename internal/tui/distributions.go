package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jcdavis/running-wrapped/internal/analysis"
	"github.com/jcdavis/running-wrapped/internal/selection"
	"github.com/jcdavis/running-wrapped/internal/service"
	"github.com/jcdavis/running-wrapped/internal/units"
)

const maxBarWidth = 30

// DistributionsModel shows pace and heart-rate histograms for the
// currently selected range.
type DistributionsModel struct {
	queryService *service.QueryService
	selector     *selection.Selector
	unit         units.Unit
}

// NewDistributionsModel creates a new distributions model.
func NewDistributionsModel(qs *service.QueryService, sel *selection.Selector, unit units.Unit) DistributionsModel {
	return DistributionsModel{
		queryService: qs,
		selector:     sel,
		unit:         unit,
	}
}

// Init initializes the distributions screen
func (m DistributionsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m DistributionsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the distributions screen
func (m DistributionsModel) View() string {
	h := m.queryService.Histograms(m.selector.Active(), m.unit)
	if h == nil {
		return "\n  No range selected. Pick one on the calendar (1) first."
	}

	totals := m.queryService.Aggregate(m.selector.Active())
	title := cardTitleStyle.Render(fmt.Sprintf("Distributions  %s .. %s", totals.Start, totals.End))

	paceCard := m.renderHistogram(
		fmt.Sprintf("Pace (%s)", m.unit.PaceLabel()),
		h.PaceBins,
		func(i int) string { return analysis.PaceBinLabel(i, m.unit) },
	)
	hrCard := m.renderHistogram(
		"Heart Rate (bpm)",
		h.HeartrateBins,
		analysis.HeartrateBinLabel,
	)

	body := lipgloss.JoinHorizontal(lipgloss.Top, paceCard, "  ", hrCard)
	help := statusStyle.Render("  u: units  1: back to calendar")

	return lipgloss.JoinVertical(lipgloss.Left, title, body, help)
}

func (m DistributionsModel) renderHistogram(title string, bins []int, label func(int) string) string {
	maxCount := 0
	total := 0
	for _, b := range bins {
		if b > maxCount {
			maxCount = b
		}
		total += b
	}

	var rows []string
	rows = append(rows, cardTitleStyle.Render(title))

	if total == 0 {
		rows = append(rows, statusStyle.Render("No samples in range"))
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
	}

	for i, count := range bins {
		width := 0
		if maxCount > 0 {
			width = count * maxBarWidth / maxCount
		}
		if count > 0 && width == 0 {
			width = 1
		}

		row := fmt.Sprintf("%s %s %s",
			barLabelStyle.Render(fmt.Sprintf("%5s", label(i))),
			barStyle.Render(strings.Repeat("█", width)),
			barLabelStyle.Render(fmt.Sprintf("%d", count)),
		)
		rows = append(rows, row)
	}

	rows = append(rows, "")
	rows = append(rows, statusStyle.Render(fmt.Sprintf("%d samples", total)))

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
