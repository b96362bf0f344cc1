// Package selection tracks a contiguous date-range selection over the
// calendar grid. Picks arrive in any order; the range is normalized on
// read. Dates are YYYY-MM-DD strings, so lexical order is date order.
package selection

// Range is a raw anchor/cursor pair as picked.
type Range struct {
	Anchor string
	Cursor string
}

// Normalize returns the range bounds with start <= end.
func (r Range) Normalize() (start, end string) {
	if r.Cursor < r.Anchor {
		return r.Cursor, r.Anchor
	}
	return r.Anchor, r.Cursor
}

// Contains reports whether the date falls inside the normalized range,
// inclusive on both ends.
func (r Range) Contains(date string) bool {
	start, end := r.Normalize()
	return start <= date && date <= end
}

// Selector is a two-state drag machine: idle (no range, or a frozen one)
// and dragging. Begin enters dragging, End exits it, Clear drops the range
// from either state.
type Selector struct {
	rng      *Range
	dragging bool
}

// Begin starts a new drag with anchor and cursor both at date.
func (s *Selector) Begin(date string) {
	s.rng = &Range{Anchor: date, Cursor: date}
	s.dragging = true
}

// Extend moves the cursor while a drag is active. No-op otherwise.
func (s *Selector) Extend(date string) {
	if !s.dragging || s.rng == nil {
		return
	}
	s.rng.Cursor = date
}

// End freezes the current range, leaving anchor and cursor untouched.
func (s *Selector) End() {
	s.dragging = false
}

// Clear discards the range entirely and returns to idle.
func (s *Selector) Clear() {
	s.rng = nil
	s.dragging = false
}

// Dragging reports whether a drag is in progress.
func (s *Selector) Dragging() bool {
	return s.dragging
}

// Active returns the current range, or nil when nothing is selected.
// The returned value is a copy; mutating it does not affect the selector.
func (s *Selector) Active() *Range {
	if s.rng == nil {
		return nil
	}
	r := *s.rng
	return &r
}
