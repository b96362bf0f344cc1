// Package analysis computes aggregate totals and sample distributions for
// a selected date range over the year grid.
package analysis

import (
	"github.com/jcdavis/running-wrapped/internal/calendar"
	"github.com/jcdavis/running-wrapped/internal/selection"
)

// RangeTotals holds the summed distance and run count for a selection,
// along with its normalized bounds.
type RangeTotals struct {
	Start         string
	End           string
	TotalDistance float64 // meters
	TotalRuns     int
}

// Aggregate sums distance and run counts over every grid cell inside the
// range, padding cells included, so totals match exactly what is
// selectable on screen. Returns nil when no range is active.
func Aggregate(grid calendar.Grid, rng *selection.Range) *RangeTotals {
	if rng == nil {
		return nil
	}

	start, end := rng.Normalize()
	totals := &RangeTotals{Start: start, End: end}

	for _, week := range grid {
		for _, cell := range week {
			if start <= cell.Date && cell.Date <= end {
				totals.TotalDistance += cell.TotalDistance
				totals.TotalRuns += cell.ActivityCount
			}
		}
	}

	return totals
}
