package iterator

import "time"

const (
	// Day is the fixed stride of the day iterator
	Day = 24 * time.Hour
	// Week is the fixed stride of the week iterator
	Week = 7 * Day
)

// Bounds limits a date iterator. A zero Min or Max leaves that side open.
// Both bounds are inclusive.
type Bounds struct {
	Min time.Time
	Max time.Time
}

func (b Bounds) allows(t time.Time) bool {
	if !b.Max.IsZero() && t.After(b.Max) {
		return false
	}
	if !b.Min.IsZero() && t.Before(b.Min) {
		return false
	}
	return true
}

// Stride steps dates by a fixed duration. It does not compensate for
// daylight saving transitions: a step is always exactly Step long.
type Stride struct {
	Step   time.Duration
	Bounds Bounds
}

// NewDay creates a day iterator clipped to bounds
func NewDay(bounds Bounds) Stride {
	return Stride{Step: Day, Bounds: bounds}
}

// NewWeek creates a week iterator clipped to bounds
func NewWeek(bounds Bounds) Stride {
	return Stride{Step: Week, Bounds: bounds}
}

// After returns id+Step if it does not pass Bounds.Max
func (s Stride) After(id time.Time) (time.Time, bool) {
	next := id.Add(s.Step)
	if !s.Bounds.allows(next) {
		return time.Time{}, false
	}
	return next, true
}

// Before returns id-Step if it does not pass Bounds.Min
func (s Stride) Before(id time.Time) (time.Time, bool) {
	prev := id.Add(-s.Step)
	if !s.Bounds.allows(prev) {
		return time.Time{}, false
	}
	return prev, true
}

// Month steps by calendar months, so it follows the calendar across
// daylight saving changes. Day-of-month overflow normalises the way
// time.AddDate does (Jan 31 + 1 month = Mar 2 or 3).
type Month struct {
	Bounds Bounds
}

// After returns the same instant one calendar month later
func (m Month) After(id time.Time) (time.Time, bool) {
	next := id.AddDate(0, 1, 0)
	if !m.Bounds.allows(next) {
		return time.Time{}, false
	}
	return next, true
}

// Before returns the same instant one calendar month earlier
func (m Month) Before(id time.Time) (time.Time, bool) {
	prev := id.AddDate(0, -1, 0)
	if !m.Bounds.allows(prev) {
		return time.Time{}, false
	}
	return prev, true
}

// DateIteratorType selects a preset day iterator
type DateIteratorType int

const (
	// DateDefault pages over days without bounds
	DateDefault DateIteratorType = iota
	// DateHistoric pages over days up to the present moment
	DateHistoric
)

// String returns the preset name
func (t DateIteratorType) String() string {
	switch t {
	case DateHistoric:
		return "historic"
	default:
		return "default"
	}
}

// Iterator builds the day iterator for the preset. now supplies the
// historic cap and is read once, when the iterator is built.
func (t DateIteratorType) Iterator(now func() time.Time) Stride {
	switch t {
	case DateHistoric:
		if now == nil {
			now = time.Now
		}
		return NewDay(Bounds{Max: now()})
	default:
		return NewDay(Bounds{})
	}
}
