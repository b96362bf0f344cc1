package analysis

import (
	"testing"

	"github.com/jcdavis/running-wrapped/internal/feed"
	"github.com/jcdavis/running-wrapped/internal/selection"
	"github.com/jcdavis/running-wrapped/internal/units"
)

func wholeYear() *selection.Range {
	return &selection.Range{Anchor: "2025-01-01", Cursor: "2025-12-31"}
}

func TestHistogramsNilRange(t *testing.T) {
	activities := []feed.Activity{
		{ID: "a", DateTime: "2025-03-10T06:00:00", VelocitySmooth: []float64{3.33}},
	}
	if got := Histograms(activities, nil, units.Metric); got != nil {
		t.Errorf("Histograms with no range = %+v, want nil", got)
	}
}

func TestHistogramsBinSizes(t *testing.T) {
	h := Histograms(nil, wholeYear(), units.Metric)
	if len(h.PaceBins) != PaceBinCount {
		t.Errorf("len(PaceBins) = %d, want %d", len(h.PaceBins), PaceBinCount)
	}
	if len(h.HeartrateBins) != HeartrateBinCount {
		t.Errorf("len(HeartrateBins) = %d, want %d", len(h.HeartrateBins), HeartrateBinCount)
	}
}

func TestPaceBinMetricExample(t *testing.T) {
	// 3.33 m/s is roughly 5:00 min/km, which lands in bin 8.
	activities := []feed.Activity{
		{ID: "a", DateTime: "2025-03-10T06:00:00", VelocitySmooth: []float64{3.33}},
	}

	h := Histograms(activities, wholeYear(), units.Metric)
	if h.PaceBins[8] != 1 {
		t.Errorf("PaceBins[8] = %d, want 1 (bins: %v)", h.PaceBins[8], h.PaceBins)
	}
	if sum(h.PaceBins) != 1 {
		t.Errorf("pace bin sum = %d, want 1", sum(h.PaceBins))
	}
}

func TestPaceBinImperial(t *testing.T) {
	// 1609.34/360 m/s is a 6:00 min/mi pace: (6-5)/0.375 = 2.67 -> bin 2.
	activities := []feed.Activity{
		{ID: "a", DateTime: "2025-03-10T06:00:00", VelocitySmooth: []float64{units.MetersPerMile / 360.0}},
	}

	h := Histograms(activities, wholeYear(), units.Imperial)
	if h.PaceBins[2] != 1 {
		t.Errorf("PaceBins[2] = %d, want 1 (bins: %v)", h.PaceBins[2], h.PaceBins)
	}
}

func TestHeartrateBinExample(t *testing.T) {
	activities := []feed.Activity{
		{ID: "a", DateTime: "2025-03-10T06:00:00", Heartrate: []int{150}},
	}

	h := Histograms(activities, wholeYear(), units.Metric)
	if h.HeartrateBins[11] != 1 {
		t.Errorf("HeartrateBins[11] = %d, want 1 (bins: %v)", h.HeartrateBins[11], h.HeartrateBins)
	}
}

func TestHistogramDropsZeroAndOutOfRange(t *testing.T) {
	activities := []feed.Activity{
		{
			ID:       "a",
			DateTime: "2025-03-10T06:00:00",
			// 0 dropped; 10 m/s is 1:40 min/km (below band); 1.5 m/s is
			// 11:06 min/km (above band); 3.33 in band.
			VelocitySmooth: []float64{0, 10, 1.5, 3.33},
			// 0 dropped; 94 below floor; 200 is past the top [195,200)
			// bin; 150 and 199 in band.
			Heartrate: []int{0, 94, 200, 150, 199},
		},
	}

	h := Histograms(activities, wholeYear(), units.Metric)
	if got := sum(h.PaceBins); got != 1 {
		t.Errorf("pace bin sum = %d, want 1 (bins: %v)", got, h.PaceBins)
	}
	if got := sum(h.HeartrateBins); got != 2 {
		t.Errorf("heartrate bin sum = %d, want 2 (bins: %v)", got, h.HeartrateBins)
	}
	if h.HeartrateBins[20] != 1 {
		t.Errorf("HeartrateBins[20] = %d, want 1 for hr 199", h.HeartrateBins[20])
	}
}

func TestHistogramBinBoundaries(t *testing.T) {
	// 3:06 min/km -> bin 0; 6:59 -> bin 15; 7:06 and 2:54 are outside
	// the [3:00, 7:00) band.
	speedFor := func(minPerKm float64) float64 { return units.MetersPerKm / (minPerKm * 60) }

	activities := []feed.Activity{
		{
			ID:             "a",
			DateTime:       "2025-03-10T06:00:00",
			VelocitySmooth: []float64{speedFor(3.1), speedFor(6.99), speedFor(7.1), speedFor(2.9)},
		},
	}

	h := Histograms(activities, wholeYear(), units.Metric)
	if h.PaceBins[0] != 1 {
		t.Errorf("PaceBins[0] = %d, want 1 for 3:06 pace", h.PaceBins[0])
	}
	if h.PaceBins[15] != 1 {
		t.Errorf("PaceBins[15] = %d, want 1 for 6:59 pace", h.PaceBins[15])
	}
	if got := sum(h.PaceBins); got != 2 {
		t.Errorf("pace bin sum = %d, want 2 (bins: %v)", got, h.PaceBins)
	}
}

func TestHistogramRangeFiltering(t *testing.T) {
	activities := []feed.Activity{
		{ID: "in", DateTime: "2025-03-10T06:00:00", VelocitySmooth: []float64{3.33}, Heartrate: []int{150}},
		{ID: "out", DateTime: "2025-04-10T06:00:00", VelocitySmooth: []float64{3.33}, Heartrate: []int{150}},
	}

	rng := &selection.Range{Anchor: "2025-03-01", Cursor: "2025-03-31"}
	h := Histograms(activities, rng, units.Metric)

	if got := sum(h.PaceBins); got != 1 {
		t.Errorf("pace samples counted = %d, want 1", got)
	}
	if got := sum(h.HeartrateBins); got != 1 {
		t.Errorf("heartrate samples counted = %d, want 1", got)
	}
}

func TestHistogramUnitChangesBoundariesOnly(t *testing.T) {
	// A 3.2 m/s sample is 5:12 min/km (metric bin 8) and 8:23 min/mi
	// (imperial bin 9). The underlying samples are untouched either way;
	// only the bin boundaries move.
	activities := []feed.Activity{
		{ID: "a", DateTime: "2025-03-10T06:00:00", VelocitySmooth: []float64{3.2}},
	}

	metric := Histograms(activities, wholeYear(), units.Metric)
	imperial := Histograms(activities, wholeYear(), units.Imperial)

	if sum(metric.PaceBins) != 1 || sum(imperial.PaceBins) != 1 {
		t.Errorf("sample count changed with unit: metric=%d imperial=%d",
			sum(metric.PaceBins), sum(imperial.PaceBins))
	}
	if metric.PaceBins[8] != 1 {
		t.Errorf("metric bins for 5:12 min/km = %v, want bin 8", metric.PaceBins)
	}
	if imperial.PaceBins[9] != 1 {
		t.Errorf("imperial bins for 8:23 min/mi = %v, want bin 9", imperial.PaceBins)
	}
}

func TestPaceBinLabel(t *testing.T) {
	tests := []struct {
		bin      int
		unit     units.Unit
		expected string
	}{
		{0, units.Metric, "3:00"},
		{1, units.Metric, "3:15"},
		{8, units.Metric, "5:00"},
		{15, units.Metric, "6:45"},
		{0, units.Imperial, "5:00"},
		{1, units.Imperial, "5:23"}, // 22.5s step rounds up
		{2, units.Imperial, "5:45"},
		{15, units.Imperial, "10:38"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := PaceBinLabel(tt.bin, tt.unit); got != tt.expected {
				t.Errorf("PaceBinLabel(%d, %v) = %q, want %q", tt.bin, tt.unit, got, tt.expected)
			}
		})
	}
}

func TestHeartrateBinLabel(t *testing.T) {
	if got := HeartrateBinLabel(0); got != "95" {
		t.Errorf("HeartrateBinLabel(0) = %q, want 95", got)
	}
	if got := HeartrateBinLabel(11); got != "150" {
		t.Errorf("HeartrateBinLabel(11) = %q, want 150", got)
	}
	if got := HeartrateBinLabel(20); got != "195" {
		t.Errorf("HeartrateBinLabel(20) = %q, want 195", got)
	}
}

func sum(bins []int) int {
	var total int
	for _, b := range bins {
		total += b
	}
	return total
}
