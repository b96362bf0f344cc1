// Package calendar buckets activities by calendar day and lays them out on
// a fixed 53x7 year grid, the way contribution heatmaps do: weeks are
// columns, days run Sunday through Saturday.
package calendar

import (
	"time"

	"github.com/jcdavis/running-wrapped/internal/feed"
)

const (
	// WeeksPerYear is the number of week columns in a year grid. 53*7 = 371
	// cells, enough to cover a leap year from any starting weekday.
	WeeksPerYear = 53
	// DaysPerWeek is the number of day rows, Sunday first.
	DaysPerWeek = 7
)

// DayCell is one day on the grid with its bucketed activity totals.
// Zero-activity days get a cell too, with empty Activities.
type DayCell struct {
	Date          string // YYYY-MM-DD
	TotalDistance float64
	ActivityCount int
	Activities    []feed.Activity
}

// Grid is the full year layout: WeeksPerYear weeks of DaysPerWeek cells.
// Week 0 may start with padding days from the previous year, and the tail
// of week 52 may run past the year end; padding cells are real cells and
// carry data when activities exist for those dates.
type Grid [][]DayCell

// MonthLabel anchors a month name to the week column containing the first
// day of that month that falls inside the target year.
type MonthLabel struct {
	Month     string // short form, e.g. "Jan"
	WeekIndex int
}

// BuildYear buckets activities by day and lays out the grid for the given
// year, returning it along with the month label anchors.
func BuildYear(activities []feed.Activity, year int) (Grid, []MonthLabel) {
	buckets := bucketByDay(activities)

	jan1 := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	startDayOfWeek := int(jan1.Weekday()) // 0 = Sunday

	grid := make(Grid, WeeksPerYear)
	for w := 0; w < WeeksPerYear; w++ {
		week := make([]DayCell, DaysPerWeek)
		for d := 0; d < DaysPerWeek; d++ {
			date := jan1.AddDate(0, 0, w*DaysPerWeek+d-startDayOfWeek).Format("2006-01-02")
			cell := DayCell{Date: date}
			if b, ok := buckets[date]; ok {
				cell.TotalDistance = b.distance
				cell.ActivityCount = b.count
				cell.Activities = b.activities
			}
			week[d] = cell
		}
		grid[w] = week
	}

	// Month labels: walk the week-start dates, skip padding before Jan 1,
	// record each month the first time its first in-year day shows up.
	var labels []MonthLabel
	seen := make(map[time.Month]bool)
	for w := 0; w < WeeksPerYear; w++ {
		weekStart := jan1.AddDate(0, 0, w*DaysPerWeek-startDayOfWeek)
		if weekStart.Before(jan1) {
			continue
		}
		if m := weekStart.Month(); !seen[m] {
			seen[m] = true
			labels = append(labels, MonthLabel{Month: weekStart.Format("Jan"), WeekIndex: w})
		}
	}

	return grid, labels
}

type dayBucket struct {
	distance   float64
	count      int
	activities []feed.Activity
}

// bucketByDay groups activities by the date portion of their datetime,
// preserving feed order within each day.
func bucketByDay(activities []feed.Activity) map[string]*dayBucket {
	buckets := make(map[string]*dayBucket)
	for _, a := range activities {
		day := a.Day()
		if day == "" {
			continue
		}
		b, ok := buckets[day]
		if !ok {
			b = &dayBucket{}
			buckets[day] = b
		}
		b.distance += a.Distance
		b.count++
		b.activities = append(b.activities, a)
	}
	return buckets
}
