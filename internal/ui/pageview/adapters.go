package pageview

import (
	"time"

	"pageview/internal/iterator"
	"pageview/internal/pager"
)

// NewInt pages over 0, 1, 2, ... without an upper bound
func NewInt(selected pager.Binding[int], content ContentFunc[int]) Model[int] {
	return New[int](selected, iterator.NewInt(), content)
}

// NewBoundedInt pages over 0..count-1
func NewBoundedInt(selected pager.Binding[int], count int, content ContentFunc[int]) Model[int] {
	return New[int](selected, iterator.NewBoundedInt(count), content)
}

// NewDate pages over days. DateHistoric stops at now() as read when
// the view is created; a nil now means time.Now.
func NewDate(selected pager.Binding[time.Time], typ iterator.DateIteratorType, now func() time.Time, content ContentFunc[time.Time]) Model[time.Time] {
	if now == nil {
		now = time.Now
	}
	return New[time.Time](selected, typ.Iterator(now), content)
}

// NewWeek pages over weeks within bounds
func NewWeek(selected pager.Binding[time.Time], bounds iterator.Bounds, content ContentFunc[time.Time]) Model[time.Time] {
	return New[time.Time](selected, iterator.NewWeek(bounds), content)
}

// NewMonth pages over calendar months within bounds
func NewMonth(selected pager.Binding[time.Time], bounds iterator.Bounds, content ContentFunc[time.Time]) Model[time.Time] {
	return New[time.Time](selected, iterator.Month{Bounds: bounds}, content)
}
