package tui

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	primaryColor = lipgloss.Color("#7C3AED") // Purple
	accentColor  = lipgloss.Color("#10B981") // Green
	errorColor   = lipgloss.Color("#EF4444") // Red
	mutedColor   = lipgloss.Color("#6B7280") // Gray
	textColor    = lipgloss.Color("#F9FAFB") // Light gray

	// Heatmap intensity ramp, low to high
	heatColors = []lipgloss.Color{
		lipgloss.Color("#064E3B"),
		lipgloss.Color("#047857"),
		lipgloss.Color("#10B981"),
		lipgloss.Color("#6EE7B7"),
	}
)

// Styles
var (
	// App chrome
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(textColor).
			Background(primaryColor).
			Padding(0, 1).
			MarginBottom(1)

	// Navigation
	navStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginBottom(1)

	navActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	navInactiveStyle = lipgloss.NewStyle().
				Foreground(mutedColor)

	// Cards and boxes
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor).
			Padding(1, 2)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	// Metrics
	metricLabelStyle = lipgloss.NewStyle().
				Foreground(mutedColor).
				Width(14)

	metricValueStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(textColor)

	// Heatmap cells
	emptyCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#374151"))

	paddingCellStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#1F2937"))

	selectedCellStyle = lipgloss.NewStyle().
				Background(primaryColor).
				Foreground(textColor)

	cursorCellStyle = lipgloss.NewStyle().
			Background(textColor).
			Foreground(lipgloss.Color("#111827"))

	monthLabelStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	dayLabelStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// Histogram bars
	barStyle = lipgloss.NewStyle().
			Foreground(accentColor)

	barLabelStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// Table
	tableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(primaryColor).
				Padding(0, 1)

	tableRowStyle = lipgloss.NewStyle().
			Padding(0, 1)

	// Status
	statusStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	// Help
	helpKeyStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true)

	helpDescStyle = lipgloss.NewStyle().
			Foreground(mutedColor)
)

// RenderMetric renders a label/value pair for a card row
func RenderMetric(label, value string) string {
	return lipgloss.JoinHorizontal(
		lipgloss.Left,
		metricLabelStyle.Render(label),
		metricValueStyle.Render(value),
	)
}

// RenderKeyHelp renders a key binding help item
func RenderKeyHelp(key, desc string) string {
	return helpKeyStyle.Render(key) + " " + helpDescStyle.Render(desc)
}

// heatStyle picks the intensity style for a day's total distance in meters
func heatStyle(meters float64) lipgloss.Style {
	switch {
	case meters <= 0:
		return emptyCellStyle
	case meters < 5000:
		return lipgloss.NewStyle().Foreground(heatColors[0])
	case meters < 10000:
		return lipgloss.NewStyle().Foreground(heatColors[1])
	case meters < 20000:
		return lipgloss.NewStyle().Foreground(heatColors[2])
	default:
		return lipgloss.NewStyle().Foreground(heatColors[3])
	}
}
