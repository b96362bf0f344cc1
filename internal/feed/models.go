package feed

// Activity is a single processed run as emitted by the activity feed.
// Distances are meters, durations seconds; the sample slices come from the
// heartrate and velocity_smooth streams and carry no per-sample timestamps.
type Activity struct {
	ID             string    `json:"id"`
	DateTime       string    `json:"datetime"` // ISO-8601, local time
	Duration       int       `json:"duration"` // seconds
	Distance       float64   `json:"distance"` // meters
	Heartrate      []int     `json:"heartrate"`
	VelocitySmooth []float64 `json:"velocity_smooth"` // m/s
}

// Day returns the calendar date (YYYY-MM-DD) the activity is bucketed
// under: the date portion of DateTime, in whatever offset it carries.
// No timezone conversion happens here or anywhere downstream.
func (a Activity) Day() string {
	if len(a.DateTime) < 10 {
		return ""
	}
	return a.DateTime[:10]
}

// AvgSpeed returns the mean of the recorded speed samples in m/s, or 0
// when the activity has no samples.
func (a Activity) AvgSpeed() float64 {
	if len(a.VelocitySmooth) == 0 {
		return 0
	}
	var sum float64
	for _, v := range a.VelocitySmooth {
		sum += v
	}
	return sum / float64(len(a.VelocitySmooth))
}
