// Package service wires the feed, the cache, and the analytics together
// for the TUI. All queries are pure reads over the activity slice loaded
// by Load; nothing mutates state afterwards.
package service

import (
	"context"
	"fmt"

	"github.com/jcdavis/running-wrapped/internal/analysis"
	"github.com/jcdavis/running-wrapped/internal/calendar"
	"github.com/jcdavis/running-wrapped/internal/feed"
	"github.com/jcdavis/running-wrapped/internal/selection"
	"github.com/jcdavis/running-wrapped/internal/store"
	"github.com/jcdavis/running-wrapped/internal/units"
)

// Fetcher downloads the activity feed. Satisfied by *feed.Client.
type Fetcher interface {
	Fetch(ctx context.Context) ([]feed.Activity, error)
}

// QueryService loads the year's activities once and answers grid,
// selection, and histogram queries for the TUI.
type QueryService struct {
	fetcher Fetcher
	db      *store.DB
	year    int

	activities []feed.Activity
	grid       calendar.Grid
	labels     []calendar.MonthLabel
}

// NewQueryService creates a query service for the given year.
func NewQueryService(fetcher Fetcher, db *store.DB, year int) *QueryService {
	return &QueryService{fetcher: fetcher, db: db, year: year}
}

// Load populates the service: from the local cache when it has data, or
// by fetching the feed once (no retry) and caching it. With refresh set,
// the cache is bypassed and replaced. A failed fetch leaves any prior
// state untouched.
func (q *QueryService) Load(ctx context.Context, refresh bool) error {
	if !refresh {
		n, err := q.db.CountActivities()
		if err != nil {
			return fmt.Errorf("checking cache: %w", err)
		}
		if n > 0 {
			cached, err := q.db.LoadActivities()
			if err != nil {
				return fmt.Errorf("loading cached activities: %w", err)
			}
			q.install(cached)
			return nil
		}
	}

	fetched, err := q.fetcher.Fetch(ctx)
	if err != nil {
		return err
	}
	if err := q.db.ReplaceActivities(fetched); err != nil {
		return fmt.Errorf("caching activities: %w", err)
	}

	q.install(fetched)
	return nil
}

func (q *QueryService) install(activities []feed.Activity) {
	q.activities = activities
	q.grid, q.labels = calendar.BuildYear(activities, q.year)
}

// Loaded reports whether Load has completed successfully.
func (q *QueryService) Loaded() bool {
	return q.grid != nil
}

// Year returns the target year.
func (q *QueryService) Year() int {
	return q.year
}

// Activities returns the full activity slice in feed order.
func (q *QueryService) Activities() []feed.Activity {
	return q.activities
}

// Grid returns the year grid.
func (q *QueryService) Grid() calendar.Grid {
	return q.grid
}

// MonthLabels returns the month label anchors for the grid.
func (q *QueryService) MonthLabels() []calendar.MonthLabel {
	return q.labels
}

// Aggregate returns totals for the range, or nil when no range is active.
func (q *QueryService) Aggregate(rng *selection.Range) *analysis.RangeTotals {
	return analysis.Aggregate(q.grid, rng)
}

// Histograms returns binned pace and heart-rate distributions for the
// range, or nil when no range is active.
func (q *QueryService) Histograms(rng *selection.Range, unit units.Unit) *analysis.RangeHistograms {
	return analysis.Histograms(q.activities, rng, unit)
}

// ActivitiesInRange returns the activities whose day falls inside the
// range, in feed order. Nil range means no selection: returns nil.
func (q *QueryService) ActivitiesInRange(rng *selection.Range) []feed.Activity {
	if rng == nil {
		return nil
	}
	var out []feed.Activity
	for _, a := range q.activities {
		if rng.Contains(a.Day()) {
			out = append(out, a)
		}
	}
	return out
}

// WeeklyDistance returns one total (meters) per grid week, for the trend
// chart.
func (q *QueryService) WeeklyDistance() []float64 {
	weekly := make([]float64, len(q.grid))
	for w, week := range q.grid {
		for _, cell := range week {
			weekly[w] += cell.TotalDistance
		}
	}
	return weekly
}
