package tui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jcdavis/running-wrapped/internal/calendar"
	"github.com/jcdavis/running-wrapped/internal/selection"
	"github.com/jcdavis/running-wrapped/internal/service"
	"github.com/jcdavis/running-wrapped/internal/units"
)

// CalendarModel is the year heatmap screen: cursor navigation over the
// grid plus drag-style range selection.
type CalendarModel struct {
	queryService *service.QueryService
	selector     *selection.Selector
	unit         units.Unit

	cursorWeek int
	cursorDay  int
}

// NewCalendarModel creates a new calendar model sharing the app's selector.
func NewCalendarModel(qs *service.QueryService, sel *selection.Selector, unit units.Unit) CalendarModel {
	m := CalendarModel{
		queryService: qs,
		selector:     sel,
		unit:         unit,
	}
	m.cursorWeek, m.cursorDay = m.initialCursor()
	return m
}

// initialCursor places the cursor on January 1.
func (m CalendarModel) initialCursor() (week, day int) {
	target := strconv.Itoa(m.queryService.Year()) + "-01-01"
	for w, weekCells := range m.queryService.Grid() {
		for d, cell := range weekCells {
			if cell.Date == target {
				return w, d
			}
		}
	}
	return 0, 0
}

// Init initializes the calendar screen
func (m CalendarModel) Init() tea.Cmd {
	return nil
}

func (m CalendarModel) cursorDate() string {
	return m.queryService.Grid()[m.cursorWeek][m.cursorDay].Date
}

// Update handles messages
func (m CalendarModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "left", "h":
		if m.cursorWeek > 0 {
			m.cursorWeek--
		}
	case "right", "l":
		if m.cursorWeek < calendar.WeeksPerYear-1 {
			m.cursorWeek++
		}
	case "up", "k":
		if m.cursorDay > 0 {
			m.cursorDay--
		}
	case "down", "j":
		if m.cursorDay < calendar.DaysPerWeek-1 {
			m.cursorDay++
		}
	case "v", " ":
		if m.selector.Dragging() {
			m.selector.End()
		} else {
			m.selector.Begin(m.cursorDate())
		}
		return m, nil
	case "enter":
		if m.selector.Dragging() {
			m.selector.End()
		}
		return m, nil
	case "esc":
		m.selector.Clear()
		return m, nil
	default:
		return m, nil
	}

	// Cursor moved: a live drag follows it.
	if m.selector.Dragging() {
		m.selector.Extend(m.cursorDate())
	}
	return m, nil
}

// View renders the calendar screen
func (m CalendarModel) View() string {
	var sections []string

	title := cardTitleStyle.Render(fmt.Sprintf("%d Running Calendar", m.queryService.Year()))
	sections = append(sections, title)

	sections = append(sections, m.renderHeatmap())
	sections = append(sections, m.renderSelectionCard())

	help := statusStyle.Render("  hjkl/arrows: move  v/space: select  esc: clear  u: units  R: refetch")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

const cellWidth = 2

func (m CalendarModel) renderHeatmap() string {
	grid := m.queryService.Grid()
	yearPrefix := strconv.Itoa(m.queryService.Year()) + "-"
	rng := m.selector.Active()

	var rows []string
	rows = append(rows, "     "+m.renderMonthHeader())

	dayNames := []string{"", "Mon", "", "Wed", "", "Fri", ""}
	for d := 0; d < calendar.DaysPerWeek; d++ {
		var row strings.Builder
		row.WriteString(dayLabelStyle.Render(fmt.Sprintf("%-4s ", dayNames[d])))
		for w := 0; w < calendar.WeeksPerYear; w++ {
			row.WriteString(m.renderCell(grid[w][d], w, d, yearPrefix, rng))
		}
		rows = append(rows, row.String())
	}

	return strings.Join(rows, "\n")
}

func (m CalendarModel) renderMonthHeader() string {
	header := make([]rune, calendar.WeeksPerYear*cellWidth)
	for i := range header {
		header[i] = ' '
	}
	for _, label := range m.queryService.MonthLabels() {
		pos := label.WeekIndex * cellWidth
		for i, r := range label.Month {
			if pos+i < len(header) {
				header[pos+i] = r
			}
		}
	}
	return monthLabelStyle.Render(string(header))
}

func (m CalendarModel) renderCell(cell calendar.DayCell, w, d int, yearPrefix string, rng *selection.Range) string {
	glyph := "▪ "
	if cell.ActivityCount > 0 {
		glyph = "■ "
	}

	switch {
	case w == m.cursorWeek && d == m.cursorDay:
		return cursorCellStyle.Render(glyph)
	case rng != nil && rng.Contains(cell.Date):
		return selectedCellStyle.Render(glyph)
	case !strings.HasPrefix(cell.Date, yearPrefix):
		return paddingCellStyle.Render(glyph)
	default:
		return heatStyle(cell.TotalDistance).Render(glyph)
	}
}

func (m CalendarModel) renderSelectionCard() string {
	grid := m.queryService.Grid()
	cell := grid[m.cursorWeek][m.cursorDay]

	dayLines := []string{
		RenderMetric("Date", cell.Date),
		RenderMetric("Runs", fmt.Sprintf("%d", cell.ActivityCount)),
		RenderMetric("Distance", units.FormatDistance(cell.TotalDistance, m.unit)),
	}
	dayCard := cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		cardTitleStyle.Render("Day"),
		lipgloss.JoinVertical(lipgloss.Left, dayLines...)))

	totals := m.queryService.Aggregate(m.selector.Active())
	var rangeCard string
	if totals == nil {
		rangeCard = cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			cardTitleStyle.Render("Selection"),
			statusStyle.Render("No range selected.\nPress v and move to select.")))
	} else {
		rangeLines := []string{
			RenderMetric("Range", totals.Start+" .. "+totals.End),
			RenderMetric("Runs", fmt.Sprintf("%d", totals.TotalRuns)),
			RenderMetric("Distance", units.FormatDistance(totals.TotalDistance, m.unit)),
		}
		rangeCard = cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
			cardTitleStyle.Render("Selection"),
			lipgloss.JoinVertical(lipgloss.Left, rangeLines...)))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, dayCard, "  ", rangeCard)
}
