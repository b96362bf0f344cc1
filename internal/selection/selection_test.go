package selection

import "testing"

func TestNormalize(t *testing.T) {
	tests := []struct {
		name       string
		rng        Range
		start, end string
	}{
		{"ordered", Range{Anchor: "2025-03-05", Cursor: "2025-03-10"}, "2025-03-05", "2025-03-10"},
		{"reversed", Range{Anchor: "2025-03-10", Cursor: "2025-03-05"}, "2025-03-05", "2025-03-10"},
		{"single day", Range{Anchor: "2025-03-05", Cursor: "2025-03-05"}, "2025-03-05", "2025-03-05"},
		{"across months", Range{Anchor: "2025-04-01", Cursor: "2025-03-28"}, "2025-03-28", "2025-04-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := tt.rng.Normalize()
			if start != tt.start || end != tt.end {
				t.Errorf("Normalize() = (%s, %s), want (%s, %s)", start, end, tt.start, tt.end)
			}
		})
	}
}

func TestContains(t *testing.T) {
	rng := Range{Anchor: "2025-03-10", Cursor: "2025-03-05"}

	tests := []struct {
		date     string
		expected bool
	}{
		{"2025-03-04", false},
		{"2025-03-05", true}, // inclusive start
		{"2025-03-07", true},
		{"2025-03-10", true}, // inclusive end
		{"2025-03-11", false},
		{"2024-03-07", false},
	}

	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			if got := rng.Contains(tt.date); got != tt.expected {
				t.Errorf("Contains(%s) = %v, want %v", tt.date, got, tt.expected)
			}
		})
	}
}

func TestContainsSymmetry(t *testing.T) {
	var a, b Selector

	a.Begin("2025-03-10")
	a.Extend("2025-03-05")
	a.End()

	b.Begin("2025-03-05")
	b.Extend("2025-03-10")
	b.End()

	aStart, aEnd := a.Active().Normalize()
	bStart, bEnd := b.Active().Normalize()
	if aStart != bStart || aEnd != bEnd {
		t.Errorf("normalized ranges differ: (%s,%s) vs (%s,%s)", aStart, aEnd, bStart, bEnd)
	}
}

func TestSelectorLifecycle(t *testing.T) {
	var s Selector

	if s.Active() != nil {
		t.Fatal("new selector should have no range")
	}
	if s.Dragging() {
		t.Fatal("new selector should not be dragging")
	}

	s.Begin("2025-06-01")
	if !s.Dragging() {
		t.Error("Begin should enter dragging state")
	}
	if r := s.Active(); r == nil || r.Anchor != "2025-06-01" || r.Cursor != "2025-06-01" {
		t.Errorf("after Begin, range = %+v, want anchor=cursor=2025-06-01", r)
	}

	s.Extend("2025-06-08")
	if r := s.Active(); r.Anchor != "2025-06-01" || r.Cursor != "2025-06-08" {
		t.Errorf("after Extend, range = %+v", r)
	}

	s.End()
	if s.Dragging() {
		t.Error("End should exit dragging state")
	}
	if r := s.Active(); r == nil || r.Cursor != "2025-06-08" {
		t.Errorf("End should freeze the range, got %+v", r)
	}

	// Extend after End is a no-op.
	s.Extend("2025-06-20")
	if r := s.Active(); r.Cursor != "2025-06-08" {
		t.Errorf("Extend while idle moved the cursor to %s", r.Cursor)
	}

	s.Clear()
	if s.Active() != nil || s.Dragging() {
		t.Error("Clear should return to idle with no range")
	}
}

func TestExtendBeforeBegin(t *testing.T) {
	var s Selector
	s.Extend("2025-06-01")
	if s.Active() != nil {
		t.Error("Extend without Begin should not create a range")
	}
}

func TestClearWhileDragging(t *testing.T) {
	var s Selector
	s.Begin("2025-06-01")
	s.Extend("2025-06-03")
	s.Clear()

	if s.Active() != nil || s.Dragging() {
		t.Error("Clear during a drag should return to idle with no range")
	}
}

func TestActiveReturnsCopy(t *testing.T) {
	var s Selector
	s.Begin("2025-06-01")

	r := s.Active()
	r.Cursor = "2025-07-01"

	if got := s.Active().Cursor; got != "2025-06-01" {
		t.Errorf("mutating the returned range leaked into the selector: %s", got)
	}
}
