package service

import (
	"context"
	"errors"
	"testing"

	"github.com/jcdavis/running-wrapped/internal/calendar"
	"github.com/jcdavis/running-wrapped/internal/feed"
	"github.com/jcdavis/running-wrapped/internal/selection"
	"github.com/jcdavis/running-wrapped/internal/store"
	"github.com/jcdavis/running-wrapped/internal/units"
)

type fakeFetcher struct {
	activities []feed.Activity
	err        error
	calls      int
}

func (f *fakeFetcher) Fetch(ctx context.Context) ([]feed.Activity, error) {
	f.calls++
	return f.activities, f.err
}

func testActivities() []feed.Activity {
	return []feed.Activity{
		{
			ID: "a1", DateTime: "2025-03-10T06:00:00", Duration: 1800, Distance: 5000,
			Heartrate: []int{150}, VelocitySmooth: []float64{3.33},
		},
		{
			ID: "a2", DateTime: "2025-03-12T07:00:00", Duration: 3600, Distance: 10000,
			Heartrate: []int{140}, VelocitySmooth: []float64{2.9},
		},
		{ID: "a3", DateTime: "2025-05-01T07:00:00", Duration: 1200, Distance: 3000},
	}
}

func newLoadedService(t *testing.T) (*QueryService, *fakeFetcher) {
	t.Helper()
	fetcher := &fakeFetcher{activities: testActivities()}
	svc := NewQueryService(fetcher, store.NewTestDB(t), 2025)
	if err := svc.Load(context.Background(), false); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	return svc, fetcher
}

func TestLoadFetchesAndCaches(t *testing.T) {
	svc, fetcher := newLoadedService(t)

	if fetcher.calls != 1 {
		t.Errorf("fetcher called %d times, want 1", fetcher.calls)
	}
	if !svc.Loaded() {
		t.Error("service should be loaded")
	}
	if len(svc.Activities()) != 3 {
		t.Errorf("got %d activities, want 3", len(svc.Activities()))
	}
	if len(svc.Grid()) != calendar.WeeksPerYear {
		t.Errorf("grid has %d weeks, want %d", len(svc.Grid()), calendar.WeeksPerYear)
	}
	if len(svc.MonthLabels()) != 12 {
		t.Errorf("got %d month labels, want 12", len(svc.MonthLabels()))
	}
}

func TestLoadUsesCacheOnSecondCall(t *testing.T) {
	fetcher := &fakeFetcher{activities: testActivities()}
	db := store.NewTestDB(t)

	first := NewQueryService(fetcher, db, 2025)
	if err := first.Load(context.Background(), false); err != nil {
		t.Fatalf("first Load failed: %v", err)
	}

	// A fresh service over the same db should not hit the feed again.
	second := NewQueryService(fetcher, db, 2025)
	if err := second.Load(context.Background(), false); err != nil {
		t.Fatalf("second Load failed: %v", err)
	}

	if fetcher.calls != 1 {
		t.Errorf("fetcher called %d times, want 1 (cache hit expected)", fetcher.calls)
	}
	if len(second.Activities()) != 3 {
		t.Errorf("cache load got %d activities, want 3", len(second.Activities()))
	}
}

func TestLoadRefreshBypassesCache(t *testing.T) {
	fetcher := &fakeFetcher{activities: testActivities()}
	db := store.NewTestDB(t)
	svc := NewQueryService(fetcher, db, 2025)

	if err := svc.Load(context.Background(), false); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if err := svc.Load(context.Background(), true); err != nil {
		t.Fatalf("refresh Load failed: %v", err)
	}

	if fetcher.calls != 2 {
		t.Errorf("fetcher called %d times, want 2", fetcher.calls)
	}
}

func TestLoadFetchErrorSurfaces(t *testing.T) {
	fetchErr := errors.New("feed unreachable")
	fetcher := &fakeFetcher{err: fetchErr}
	svc := NewQueryService(fetcher, store.NewTestDB(t), 2025)

	err := svc.Load(context.Background(), false)
	if !errors.Is(err, fetchErr) {
		t.Errorf("Load error = %v, want %v", err, fetchErr)
	}
	if svc.Loaded() {
		t.Error("service should not be loaded after a failed fetch")
	}
}

func TestAggregateThroughService(t *testing.T) {
	svc, _ := newLoadedService(t)

	rng := &selection.Range{Anchor: "2025-03-12", Cursor: "2025-03-10"}
	totals := svc.Aggregate(rng)
	if totals == nil {
		t.Fatal("Aggregate returned nil for active range")
	}
	if totals.TotalDistance != 15000 || totals.TotalRuns != 2 {
		t.Errorf("totals = %v/%d, want 15000/2", totals.TotalDistance, totals.TotalRuns)
	}

	if svc.Aggregate(nil) != nil {
		t.Error("Aggregate(nil) should be nil")
	}
}

func TestHistogramsThroughService(t *testing.T) {
	svc, _ := newLoadedService(t)

	rng := &selection.Range{Anchor: "2025-03-01", Cursor: "2025-03-31"}
	h := svc.Histograms(rng, units.Metric)
	if h == nil {
		t.Fatal("Histograms returned nil for active range")
	}

	var pace, hr int
	for _, b := range h.PaceBins {
		pace += b
	}
	for _, b := range h.HeartrateBins {
		hr += b
	}
	if pace != 2 || hr != 2 {
		t.Errorf("binned %d pace / %d hr samples, want 2/2", pace, hr)
	}

	if svc.Histograms(nil, units.Metric) != nil {
		t.Error("Histograms(nil) should be nil")
	}
}

func TestActivitiesInRange(t *testing.T) {
	svc, _ := newLoadedService(t)

	rng := &selection.Range{Anchor: "2025-03-01", Cursor: "2025-03-31"}
	in := svc.ActivitiesInRange(rng)
	if len(in) != 2 || in[0].ID != "a1" || in[1].ID != "a2" {
		t.Errorf("ActivitiesInRange = %+v, want a1 and a2", in)
	}

	if svc.ActivitiesInRange(nil) != nil {
		t.Error("ActivitiesInRange(nil) should be nil")
	}
}

func TestWeeklyDistance(t *testing.T) {
	svc, _ := newLoadedService(t)

	weekly := svc.WeeklyDistance()
	if len(weekly) != calendar.WeeksPerYear {
		t.Fatalf("got %d weeks, want %d", len(weekly), calendar.WeeksPerYear)
	}

	var total float64
	for _, w := range weekly {
		total += w
	}
	if total != 18000 {
		t.Errorf("weekly totals sum to %v, want 18000", total)
	}
}
