package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jcdavis/running-wrapped/internal/feed"
	"github.com/jcdavis/running-wrapped/internal/selection"
	"github.com/jcdavis/running-wrapped/internal/service"
	"github.com/jcdavis/running-wrapped/internal/units"
)

// ActivitiesModel lists activities in the selected range (or the whole
// year when nothing is selected) in a scrollable viewport.
type ActivitiesModel struct {
	queryService *service.QueryService
	selector     *selection.Selector
	unit         units.Unit

	viewport viewport.Model
	ready    bool
	width    int
	height   int
}

// NewActivitiesModel creates a new activities model.
func NewActivitiesModel(qs *service.QueryService, sel *selection.Selector, unit units.Unit) ActivitiesModel {
	return ActivitiesModel{
		queryService: qs,
		selector:     sel,
		unit:         unit,
	}
}

// Init initializes the activities screen
func (m ActivitiesModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m ActivitiesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "esc" {
		m.selector.Clear()
		m.refresh()
		return m, nil
	}

	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
		if !m.ready {
			m.viewport = viewport.New(size.Width, size.Height-8) // Reserve space for chrome
			m.ready = true
		} else {
			m.viewport.Width = size.Width
			m.viewport.Height = size.Height - 8
		}
		m.viewport.SetContent(m.renderContent())
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// refresh re-renders the list; called when the selection or unit changed.
func (m *ActivitiesModel) refresh() {
	if m.ready {
		m.viewport.SetContent(m.renderContent())
	}
}

func (m ActivitiesModel) listed() ([]feed.Activity, string) {
	if rng := m.selector.Active(); rng != nil {
		start, end := rng.Normalize()
		return m.queryService.ActivitiesInRange(rng), fmt.Sprintf("%s .. %s", start, end)
	}
	return m.queryService.Activities(), fmt.Sprintf("all of %d", m.queryService.Year())
}

// View renders the activities screen
func (m ActivitiesModel) View() string {
	activities, scope := m.listed()
	title := cardTitleStyle.Render(fmt.Sprintf("Activities (%s) - %d runs", scope, len(activities)))

	if !m.ready {
		return lipgloss.JoinVertical(lipgloss.Left, title, "\n  Loading...")
	}

	help := statusStyle.Render("  j/k: scroll  u: units  esc: clear selection")
	return lipgloss.JoinVertical(lipgloss.Left, title, m.viewport.View(), help)
}

func (m ActivitiesModel) renderContent() string {
	activities, _ := m.listed()
	if len(activities) == 0 {
		return "\n  No activities in range."
	}

	header := tableHeaderStyle.Render(fmt.Sprintf("%-10s  %10s  %9s  %7s",
		"Date", "Distance", "Time", "Pace"))

	rows := []string{header}
	for _, a := range activities {
		rows = append(rows, tableRowStyle.Render(fmt.Sprintf("%-10s  %10s  %9s  %7s",
			a.Day(),
			units.FormatDistance(a.Distance, m.unit),
			units.FormatDuration(a.Duration),
			units.FormatPaceFromSpeed(a.AvgSpeed(), m.unit),
		)))
	}

	return strings.Join(rows, "\n")
}
