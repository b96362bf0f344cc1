package analysis

import (
	"fmt"
	"math"

	"github.com/jcdavis/running-wrapped/internal/feed"
	"github.com/jcdavis/running-wrapped/internal/selection"
	"github.com/jcdavis/running-wrapped/internal/units"
)

// Fixed histogram bands. Pace covers [3:00, 7:00) min/km in 15s steps, or
// [5:00, 11:00) min/mi in 22.5s steps; heart rate covers [95, 200) bpm in
// 5 bpm steps. Samples outside a band are dropped rather than clamped into
// the edge bins, so outliers don't distort the shape.
const (
	PaceBinCount = 16

	paceFloorMetric   = 3.0   // min/km
	paceStepMetric    = 0.25  // 15s
	paceFloorImperial = 5.0   // min/mi
	paceStepImperial  = 0.375 // 22.5s

	HeartrateBinCount = 21

	heartrateFloor = 95
	heartrateStep  = 5
)

// RangeHistograms holds binned pace and heart-rate sample counts for a
// selection. PaceBins has PaceBinCount entries, HeartrateBins
// HeartrateBinCount.
type RangeHistograms struct {
	PaceBins      []int
	HeartrateBins []int
}

// Histograms bins every speed and heart-rate sample of the activities
// whose day falls inside the range. Zero samples are dropped, never
// binned; samples landing outside the configured bands are discarded.
// Returns nil when no range is active.
func Histograms(activities []feed.Activity, rng *selection.Range, unit units.Unit) *RangeHistograms {
	if rng == nil {
		return nil
	}

	h := &RangeHistograms{
		PaceBins:      make([]int, PaceBinCount),
		HeartrateBins: make([]int, HeartrateBinCount),
	}

	for _, a := range activities {
		if !rng.Contains(a.Day()) {
			continue
		}

		for _, v := range a.VelocitySmooth {
			if v <= 0 {
				continue
			}
			if bin, ok := paceBin(v, unit); ok {
				h.PaceBins[bin]++
			}
		}

		for _, hr := range a.Heartrate {
			if hr <= 0 {
				continue
			}
			bin := (hr - heartrateFloor) / heartrateStep
			if hr >= heartrateFloor && bin < HeartrateBinCount {
				h.HeartrateBins[bin]++
			}
		}
	}

	return h
}

// paceBin converts a speed sample in m/s to its pace bin for the unit.
// The second return is false when the pace falls outside the band.
func paceBin(metersPerSecond float64, unit units.Unit) (int, bool) {
	var pace, floor, step float64
	if unit == units.Imperial {
		pace = units.MetersPerMile / (metersPerSecond * 60) // min/mi
		floor, step = paceFloorImperial, paceStepImperial
	} else {
		pace = units.MetersPerKm / (metersPerSecond * 60) // min/km
		floor, step = paceFloorMetric, paceStepMetric
	}

	bin := int(math.Floor((pace - floor) / step))
	if bin < 0 || bin >= PaceBinCount {
		return 0, false
	}
	return bin, true
}

// PaceBinLabel returns the lower bound of a pace bin as M:SS display text.
func PaceBinLabel(bin int, unit units.Unit) string {
	var floor, step float64
	if unit == units.Imperial {
		floor, step = paceFloorImperial, paceStepImperial
	} else {
		floor, step = paceFloorMetric, paceStepMetric
	}

	totalSeconds := int(math.Round((floor + float64(bin)*step) * 60))
	return fmt.Sprintf("%d:%02d", totalSeconds/60, totalSeconds%60)
}

// HeartrateBinLabel returns the lower bound of a heart-rate bin in bpm.
func HeartrateBinLabel(bin int) string {
	return fmt.Sprintf("%d", heartrateFloor+bin*heartrateStep)
}
