package pager

import "math"

const (
	// FPS is the frame rate Step assumes
	FPS = 60

	springFrequency = 9.0
	springDamping   = 1.0

	// settleEpsilon is how close, in layout units, an animated value must
	// be to its target before it snaps
	settleEpsilon = 0.5
)

// Step advances the offset and container height animations by one
// frame. It returns true while either is still moving.
func (e *Engine[T]) Step() bool {
	offsetMoving := e.stepValue(&e.offset, &e.velocity, e.target)
	heightMoving := e.stepValue(&e.sizes.height, &e.sizes.velocity, e.sizes.target)
	return offsetMoving || heightMoving
}

// Animating reports whether the host should keep delivering frames
func (e *Engine[T]) Animating() bool {
	if e.pending != nil || !e.AtTarget() {
		return true
	}
	return e.sizes.height != e.sizes.target || e.sizes.velocity != 0
}

func (e *Engine[T]) stepValue(pos, vel *float64, target float64) bool {
	if *pos == target && *vel == 0 {
		return false
	}
	*pos, *vel = e.spring.Update(*pos, *vel, target)
	if math.Abs(*pos-target) < settleEpsilon && math.Abs(*vel) < settleEpsilon {
		*pos, *vel = target, 0
		return false
	}
	return true
}
