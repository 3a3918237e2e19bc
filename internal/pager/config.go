package pager

import (
	"time"

	"github.com/samber/lo"
)

const (
	MinThreshold = 0.05
	MaxThreshold = 0.75

	DefaultThreshold         = 0.25
	DefaultThresholdCap      = 300.0
	DefaultVerticalTolerance = 10.0
	DefaultResizeDebounce    = 50 * time.Millisecond
)

// Config holds the tunables of one engine. Start from DefaultConfig;
// out-of-range values are clamped when the engine is built.
type Config[T comparable] struct {
	// Threshold is the commit distance as a fraction of page width
	Threshold float64
	// ThresholdCap bounds the commit distance on wide layouts
	ThresholdCap float64
	// MinDistance is the horizontal travel needed before a drag starts
	MinDistance float64
	// VerticalTolerance is how far a gesture may move vertically before
	// it is treated as a scroll and ignored
	VerticalTolerance float64
	// SmoothDrag animates the offset toward the pointer instead of snapping
	SmoothDrag bool
	// AdjustOnSwipe lets neighbour page heights drive the container
	// height while the threshold is crossed
	AdjustOnSwipe bool
	// Impacts selects which milestones call Feedback
	Impacts ImpactSet
	// ResizeDebounce is how long hosts wait before applying a resize
	ResizeDebounce time.Duration

	// OnThresholdCrossed receives the prospective selection when the
	// commit distance is crossed and ok=false when it is un-crossed
	OnThresholdCrossed func(id T, ok bool)
	// IsDragging mirrors the drag flag to the caller
	IsDragging Binding[bool]
	// Feedback performs the side effect for a milestone
	Feedback func(Impact)
}

// DefaultConfig returns the default engine configuration
func DefaultConfig[T comparable]() Config[T] {
	return Config[T]{
		Threshold:         DefaultThreshold,
		ThresholdCap:      DefaultThresholdCap,
		VerticalTolerance: DefaultVerticalTolerance,
		ResizeDebounce:    DefaultResizeDebounce,
	}
}

// Normalize clamps every field into its valid range
func (c Config[T]) Normalize() Config[T] {
	c.Threshold = lo.Clamp(c.Threshold, MinThreshold, MaxThreshold)
	if c.ThresholdCap <= 0 {
		c.ThresholdCap = DefaultThresholdCap
	}
	c.MinDistance = max(c.MinDistance, 0)
	c.VerticalTolerance = max(c.VerticalTolerance, 0)
	c.ResizeDebounce = max(c.ResizeDebounce, 0)
	return c
}
