package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	navSection := m.renderSection("Navigation", []keyHelp{
		{"1", "Calendar"},
		{"2", "Distributions"},
		{"3", "Trends"},
		{"4", "Activities"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	})
	sections = append(sections, navSection)

	calSection := m.renderSection("Calendar", []keyHelp{
		{"h/j/k/l or arrows", "Move the day cursor"},
		{"v or space", "Start / finish a range selection"},
		{"enter", "Finish a range selection"},
		{"esc", "Clear the selection"},
		{"R", "Re-download the feed"},
	})
	sections = append(sections, calSection)

	globalSection := m.renderSection("Anywhere", []keyHelp{
		{"u", "Toggle km / mi"},
	})
	sections = append(sections, globalSection)

	screensSection := m.renderScreensHelp()
	sections = append(sections, screensSection)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderScreensHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render("Screens"))
	lines = append(lines, "")

	screens := []struct {
		name string
		desc string
	}{
		{"Calendar", "Year heatmap. Select a date range to analyze."},
		{"Distributions", "Pace and heart-rate histograms for the selected range."},
		{"Trends", "Weekly distance across the year."},
		{"Activities", "Every run in the selected range."},
	}

	mutedStyle := lipgloss.NewStyle().Foreground(mutedColor)

	for _, s := range screens {
		lines = append(lines, "  "+helpKeyStyle.Render(s.name))
		lines = append(lines, "  "+mutedStyle.Render(s.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
