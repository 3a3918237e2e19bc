package pager

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"pageview/internal/iterator"
)

// Phase is the state of the drag/settle machine
type Phase int

const (
	PhaseResting Phase = iota
	PhaseDragging
	PhaseSettling
)

func (p Phase) String() string {
	switch p {
	case PhaseDragging:
		return "dragging"
	case PhaseSettling:
		return "settling"
	default:
		return "resting"
	}
}

// Direction is the paging direction of a drag. Forward moves toward
// higher identifiers (content slides left and the next page appears).
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Role is a page's position in the rendered strip
type Role int

const (
	RolePrevious Role = iota
	RoleCurrent
	RoleNext
)

func (r Role) String() string {
	switch r {
	case RolePrevious:
		return "previous"
	case RoleNext:
		return "next"
	default:
		return "current"
	}
}

// Page is one entry of the rendered strip. X is the horizontal
// translation of the page's left edge relative to the container.
type Page[T comparable] struct {
	Role Role
	ID   T
	X    float64
}

// Settlement describes a settle animation the host must run. Once the
// animation finishes the host passes it back to Complete.
type Settlement[T comparable] struct {
	Generation uint64
	Direction  Direction
	// Commit is true when the settle ends on the neighbour
	Commit bool
	// Target is the neighbour that becomes selected on commit
	Target T
}

// Engine is the paging state machine: Resting -> Dragging -> Settling
// -> Resting. It is not safe for concurrent use; hosts drive it from
// their single event loop.
type Engine[T comparable] struct {
	selected Binding[T]
	it       iterator.ElementIterator[T]
	cfg      Config[T]

	phase     Phase
	direction Direction
	dragging  bool
	rejected  bool

	offset   float64
	velocity float64
	target   float64

	crossed    bool
	crossedDir Direction

	// gen identifies the current drag session; completions carrying an
	// older generation are ignored
	gen     uint64
	pending *Settlement[T]

	width float64
	sizes sizeState

	spring harmonica.Spring
}

// New creates an engine paging over it. The selection stays owned by
// the caller and is written only when a settle commits.
func New[T comparable](selected Binding[T], it iterator.ElementIterator[T], cfg Config[T]) *Engine[T] {
	return &Engine[T]{
		selected: selected,
		it:       it,
		cfg:      cfg.Normalize(),
		spring:   harmonica.NewSpring(harmonica.FPS(FPS), springFrequency, springDamping),
	}
}

// Config returns the normalised configuration
func (e *Engine[T]) Config() Config[T] { return e.cfg }

// Selected returns the caller's current selection
func (e *Engine[T]) Selected() T { return e.selected.Get() }

// Phase returns the machine state
func (e *Engine[T]) Phase() Phase { return e.phase }

// Direction returns the last observed drag direction
func (e *Engine[T]) Direction() Direction { return e.direction }

// Offset returns the current horizontal translation of the strip
func (e *Engine[T]) Offset() float64 { return e.offset }

// IsDragging is true from drag start until the settle completes
func (e *Engine[T]) IsDragging() bool { return e.dragging }

// ThresholdCrossed reports whether the drag is past the commit distance
func (e *Engine[T]) ThresholdCrossed() bool { return e.crossed }

// Width returns the measured page width
func (e *Engine[T]) Width() float64 { return e.width }

// SetWidth records the measured page width
func (e *Engine[T]) SetWidth(w float64) {
	e.width = max(w, 0)
	if e.phase == PhaseSettling && e.pending != nil && e.pending.Commit {
		e.target = e.pageShift(e.pending.Direction)
	}
}

// ThresholdDistance is the commit distance: the smaller of the width
// fraction and the cap
func (e *Engine[T]) ThresholdDistance() float64 {
	return math.Min(e.width*e.cfg.Threshold, e.cfg.ThresholdCap)
}

// Neighbor returns the neighbour of the selection in direction d
func (e *Engine[T]) Neighbor(d Direction) (T, bool) {
	if d == Backward {
		return e.it.Before(e.selected.Get())
	}
	return e.it.After(e.selected.Get())
}

// DragChanged handles a pointer move. dx and dy are the cumulative
// translation since the gesture began.
func (e *Engine[T]) DragChanged(dx, dy float64) {
	if e.rejected {
		return
	}

	if e.phase != PhaseDragging {
		if math.Abs(dy) > e.cfg.VerticalTolerance {
			e.rejected = true
			return
		}
		if dx == 0 || math.Abs(dx) < e.cfg.MinDistance {
			return
		}
		if e.phase == PhaseSettling {
			// A new drag overtook the previous settle: land it now so
			// its late completion is a no-op.
			e.finish()
		}
		e.begin()
	}

	e.track(dx)
}

// DragEnded handles the pointer release and starts the settle. It
// returns false when no settle animation is needed: either the gesture
// never became a drag or the strip is already at rest.
func (e *Engine[T]) DragEnded(dx, dy float64) (Settlement[T], bool) {
	e.rejected = false
	if e.phase != PhaseDragging {
		return Settlement[T]{}, false
	}

	e.track(dx)

	s := Settlement[T]{Generation: e.gen, Direction: e.direction}
	if id, ok := e.Neighbor(e.direction); ok && math.Abs(dx) > e.ThresholdDistance() {
		s.Commit = true
		s.Target = id
		e.target = e.pageShift(e.direction)
	} else {
		e.target = 0
	}

	e.phase = PhaseSettling
	e.pending = &s

	if !s.Commit && e.offset == 0 && e.velocity == 0 {
		e.finish()
		return s, false
	}
	return s, true
}

// Advance turns the page programmatically with the same settle a
// committed drag would run. It is a no-op while a drag is in progress
// or at an edge.
func (e *Engine[T]) Advance(d Direction) (Settlement[T], bool) {
	if e.phase == PhaseDragging {
		return Settlement[T]{}, false
	}
	if e.phase == PhaseSettling {
		e.finish()
	}

	id, ok := e.Neighbor(d)
	if !ok {
		return Settlement[T]{}, false
	}

	e.begin()
	e.direction = d
	e.setCrossed(true, id)

	s := Settlement[T]{Generation: e.gen, Direction: d, Commit: true, Target: id}
	e.phase = PhaseSettling
	e.target = e.pageShift(d)
	e.pending = &s
	return s, true
}

// Pending returns the settlement awaiting completion
func (e *Engine[T]) Pending() (Settlement[T], bool) {
	if e.pending == nil {
		return Settlement[T]{}, false
	}
	return *e.pending, true
}

// AtTarget reports whether the offset animation has reached its target
func (e *Engine[T]) AtTarget() bool {
	return e.offset == e.target && e.velocity == 0
}

// Complete finishes the settle described by s. Stale settlements, from
// a drag session that has since been replaced, are ignored.
func (e *Engine[T]) Complete(s Settlement[T]) {
	if e.phase != PhaseSettling || e.pending == nil {
		return
	}
	if s.Generation != e.pending.Generation {
		return
	}
	e.finish()
}

// Pages lists the pages to render, in left-to-right order. At rest it
// is only the current page; during a drag or settle the neighbour in
// the drag direction is included when it exists.
func (e *Engine[T]) Pages() []Page[T] {
	current := Page[T]{Role: RoleCurrent, ID: e.selected.Get(), X: e.offset}
	if !e.dragging {
		return []Page[T]{current}
	}

	if e.direction == Backward {
		if id, ok := e.it.Before(current.ID); ok {
			return []Page[T]{{Role: RolePrevious, ID: id, X: e.offset - e.width}, current}
		}
		return []Page[T]{current}
	}
	if id, ok := e.it.After(current.ID); ok {
		return []Page[T]{current, {Role: RoleNext, ID: id, X: e.offset + e.width}}
	}
	return []Page[T]{current}
}

func (e *Engine[T]) begin() {
	e.gen++
	e.phase = PhaseDragging
	e.setDragging(true)
	e.impact(ImpactStart)
}

func (e *Engine[T]) track(dx float64) {
	if dx < 0 {
		e.direction = Forward
	} else if dx > 0 {
		e.direction = Backward
	}

	e.target = dx
	if !e.cfg.SmoothDrag {
		e.offset = dx
		e.velocity = 0
	}

	id, ok := e.Neighbor(e.direction)
	e.setCrossed(ok && math.Abs(dx) > e.ThresholdDistance(), id)
}

// setCrossed fires the crossing callback on edges only: entering,
// leaving, or switching to the other neighbour while past the threshold.
func (e *Engine[T]) setCrossed(crossed bool, id T) {
	if crossed == e.crossed && (!crossed || e.crossedDir == e.direction) {
		return
	}
	e.crossed = crossed
	e.crossedDir = e.direction
	e.impact(ImpactThreshold)

	if crossed {
		e.notifyCrossed(id, true)
		e.setNewHeight(e.neighborRole(e.direction))
		return
	}
	var zero T
	e.notifyCrossed(zero, false)
	e.setOldHeight()
}

func (e *Engine[T]) finish() {
	s := e.pending
	e.pending = nil

	if s != nil && s.Commit {
		e.selected.Set(s.Target)
		e.sizes.promote(e.neighborRole(s.Direction))
		e.impact(ImpactEnd)
	}
	e.sizes.forgetNeighbors()

	e.offset, e.velocity, e.target = 0, 0, 0
	e.phase = PhaseResting
	e.direction = Forward
	e.setDragging(false)

	if e.crossed {
		e.crossed = false
		var zero T
		e.notifyCrossed(zero, false)
	}
}

func (e *Engine[T]) pageShift(d Direction) float64 {
	if d == Backward {
		return e.width
	}
	return -e.width
}

func (e *Engine[T]) neighborRole(d Direction) Role {
	if d == Backward {
		return RolePrevious
	}
	return RoleNext
}

func (e *Engine[T]) setDragging(v bool) {
	if e.dragging == v {
		return
	}
	e.dragging = v
	if e.cfg.IsDragging != nil {
		e.cfg.IsDragging.Set(v)
	}
}

func (e *Engine[T]) notifyCrossed(id T, ok bool) {
	if e.cfg.OnThresholdCrossed != nil {
		e.cfg.OnThresholdCrossed(id, ok)
	}
}

func (e *Engine[T]) impact(i Impact) {
	if e.cfg.Feedback != nil && e.cfg.Impacts.Has(i) {
		e.cfg.Feedback(i)
	}
}
