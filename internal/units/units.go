package units

import "fmt"

const (
	MetersPerMile = 1609.34
	MetersPerKm   = 1000.0
)

// Unit selects metric or imperial display. It only affects formatting and
// histogram bin boundaries; stored values stay in meters and seconds.
type Unit int

const (
	Metric Unit = iota
	Imperial
)

// Parse maps a config distance unit ("km" or "mi") to a Unit.
// Anything unrecognized falls back to metric.
func Parse(s string) Unit {
	if s == "mi" {
		return Imperial
	}
	return Metric
}

// Toggle returns the other unit.
func (u Unit) Toggle() Unit {
	if u == Metric {
		return Imperial
	}
	return Metric
}

// DistanceMeters returns the meters in one unit of distance (km or mile).
func (u Unit) DistanceMeters() float64 {
	if u == Imperial {
		return MetersPerMile
	}
	return MetersPerKm
}

// DistanceLabel returns the short unit label ("km" or "mi").
func (u Unit) DistanceLabel() string {
	if u == Imperial {
		return "mi"
	}
	return "km"
}

// PaceLabel returns the pace unit label ("min/km" or "min/mi").
func (u Unit) PaceLabel() string {
	if u == Imperial {
		return "min/mi"
	}
	return "min/km"
}

// FormatDistance formats a distance in meters as a 2-decimal value in the
// active unit, with label.
func FormatDistance(meters float64, u Unit) string {
	return fmt.Sprintf("%.2f %s", meters/u.DistanceMeters(), u.DistanceLabel())
}

// FormatDistanceValue is FormatDistance without the unit label.
func FormatDistanceValue(meters float64, u Unit) string {
	return fmt.Sprintf("%.2f", meters/u.DistanceMeters())
}

// FormatDuration formats seconds as H:MM:SS when at least an hour,
// otherwise M:SS.
func FormatDuration(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// FormatPaceFromSpeed formats an average speed in m/s as M:SS pace per
// unit distance. Returns "-" when the speed is zero or negative (no speed
// samples recorded).
func FormatPaceFromSpeed(metersPerSecond float64, u Unit) string {
	if metersPerSecond <= 0 {
		return "-"
	}
	paceSeconds := u.DistanceMeters() / metersPerSecond
	mins := int(paceSeconds) / 60
	secs := int(paceSeconds) % 60
	return fmt.Sprintf("%d:%02d", mins, secs)
}

// FormatPaceFromSpeedWithUnit appends the pace unit label.
func FormatPaceFromSpeedWithUnit(metersPerSecond float64, u Unit) string {
	pace := FormatPaceFromSpeed(metersPerSecond, u)
	if pace == "-" {
		return pace
	}
	return pace + " " + u.PaceLabel()
}
