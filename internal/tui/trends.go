package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/jcdavis/running-wrapped/internal/service"
	"github.com/jcdavis/running-wrapped/internal/units"
)

// TrendsModel plots weekly distance across the year.
type TrendsModel struct {
	queryService *service.QueryService
	unit         units.Unit
}

// NewTrendsModel creates a new trends model.
func NewTrendsModel(qs *service.QueryService, unit units.Unit) TrendsModel {
	return TrendsModel{queryService: qs, unit: unit}
}

// Init initializes the trends screen
func (m TrendsModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m TrendsModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the trends screen
func (m TrendsModel) View() string {
	weekly := m.queryService.WeeklyDistance()

	converted := make([]float64, len(weekly))
	var yearTotal float64
	for i, meters := range weekly {
		converted[i] = meters / m.unit.DistanceMeters()
		yearTotal += meters
	}

	title := cardTitleStyle.Render(fmt.Sprintf("Weekly Distance (%s)", m.unit.DistanceLabel()))

	graph := asciigraph.Plot(converted,
		asciigraph.Height(10),
		asciigraph.Width(80),
		asciigraph.Precision(1),
	)
	chart := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))

	summary := RenderMetric("Year total", units.FormatDistance(yearTotal, m.unit))
	help := statusStyle.Render("  u: units")

	return lipgloss.JoinVertical(lipgloss.Left, chart, summary, help)
}
