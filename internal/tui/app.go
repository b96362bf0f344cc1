package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jcdavis/running-wrapped/internal/selection"
	"github.com/jcdavis/running-wrapped/internal/service"
	"github.com/jcdavis/running-wrapped/internal/units"
)

// Screen identifiers
type Screen int

const (
	ScreenCalendar Screen = iota
	ScreenDistributions
	ScreenTrends
	ScreenActivities
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	calendar      CalendarModel
	distributions DistributionsModel
	trends        TrendsModel
	activities    ActivitiesModel
	help          HelpModel

	// Shared state: one selection, one unit, for every screen
	queryService *service.QueryService
	selector     *selection.Selector
	unit         units.Unit

	// Load state: the feed fetch is the only async operation
	loading bool
	loadErr error

	// Window dimensions
	width  int
	height int
}

// NewApp creates a new App with all dependencies
func NewApp(queryService *service.QueryService, unit units.Unit) *App {
	return &App{
		screen:       ScreenCalendar,
		queryService: queryService,
		selector:     &selection.Selector{},
		unit:         unit,
		help:         NewHelpModel(),
		loading:      true,
	}
}

type loadDoneMsg struct {
	err error
}

func (a *App) loadCmd(refresh bool) tea.Cmd {
	return func() tea.Msg {
		return loadDoneMsg{err: a.queryService.Load(context.Background(), refresh)}
	}
}

// Init starts the initial feed load
func (a *App) Init() tea.Cmd {
	return a.loadCmd(false)
}

// buildScreens constructs the screen models once data is available.
func (a *App) buildScreens() {
	a.calendar = NewCalendarModel(a.queryService, a.selector, a.unit)
	a.distributions = NewDistributionsModel(a.queryService, a.selector, a.unit)
	a.trends = NewTrendsModel(a.queryService, a.unit)
	a.activities = NewActivitiesModel(a.queryService, a.selector, a.unit)
}

// setUnit pushes a unit change into every screen. Stored data is
// untouched; only formatting and histogram boundaries follow the unit.
func (a *App) setUnit(u units.Unit) {
	a.unit = u
	a.calendar.unit = u
	a.distributions.unit = u
	a.trends.unit = u
	a.activities.unit = u
	a.activities.refresh()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadDoneMsg:
		a.loading = false
		a.loadErr = msg.err
		if msg.err == nil {
			a.buildScreens()
			if a.width > 0 {
				// Replay the window size so the viewport screens size up
				var cmd tea.Cmd
				var m tea.Model
				m, cmd = a.activities.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
				a.activities = m.(ActivitiesModel)
				return a, cmd
			}
		}
		return a, nil

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		// The activities viewport tracks the window even while hidden
		if !a.loading && a.loadErr == nil {
			var m tea.Model
			m, _ = a.activities.Update(msg)
			a.activities = m.(ActivitiesModel)
		}
		return a, nil

	case tea.KeyMsg:
		if a.loading {
			if s := msg.String(); s == "q" || s == "ctrl+c" {
				return a, tea.Quit
			}
			return a, nil
		}
		if a.loadErr != nil {
			switch msg.String() {
			case "q", "ctrl+c":
				return a, tea.Quit
			case "R", "r":
				a.loading = true
				a.loadErr = nil
				return a, a.loadCmd(false)
			}
			return a, nil
		}

		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "1":
			a.screen = ScreenCalendar
			return a, nil
		case "2":
			a.screen = ScreenDistributions
			return a, nil
		case "3":
			a.screen = ScreenTrends
			return a, nil
		case "4":
			a.screen = ScreenActivities
			a.activities.refresh()
			return a, a.activities.Init()
		case "u":
			a.setUnit(a.unit.Toggle())
			return a, nil
		case "R":
			a.loading = true
			return a, a.loadCmd(true)
		case "?":
			if a.screen != ScreenHelp {
				a.prevScreen = a.screen
				a.screen = ScreenHelp
			}
			return a, nil
		case "esc":
			if a.screen == ScreenHelp {
				a.screen = a.prevScreen
				return a, nil
			}
		}
	}

	if a.loading || a.loadErr != nil {
		return a, nil
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenCalendar:
		var m tea.Model
		m, cmd = a.calendar.Update(msg)
		a.calendar = m.(CalendarModel)
	case ScreenDistributions:
		var m tea.Model
		m, cmd = a.distributions.Update(msg)
		a.distributions = m.(DistributionsModel)
	case ScreenTrends:
		var m tea.Model
		m, cmd = a.trends.Update(msg)
		a.trends = m.(TrendsModel)
	case ScreenActivities:
		var m tea.Model
		m, cmd = a.activities.Update(msg)
		a.activities = m.(ActivitiesModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := headerStyle.Render(fmt.Sprintf("Running Wrapped %d", a.queryService.Year()))

	if a.loading {
		return lipgloss.JoinVertical(lipgloss.Left, header, "\n  Loading activities...")
	}
	if a.loadErr != nil {
		body := errorStyle.Render(fmt.Sprintf("\n  Error loading activities: %v", a.loadErr))
		hint := statusStyle.Render("\n  Press r to retry, q to quit")
		return lipgloss.JoinVertical(lipgloss.Left, header, body, hint)
	}

	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenCalendar:
		content = a.calendar.View()
	case ScreenDistributions:
		content = a.distributions.View()
	case ScreenTrends:
		content = a.trends.View()
	case ScreenActivities:
		content = a.activities.View()
	case ScreenHelp:
		content = a.help.View()
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content)
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Calendar", ScreenCalendar},
		{"2", "Distributions", ScreenDistributions},
		{"3", "Trends", ScreenTrends},
		{"4", "Activities", ScreenActivities},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("["+a.unit.DistanceLabel()+"]")
	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}
