package pager

import "time"

// Size is a measured layout size
type Size struct {
	Width  float64
	Height float64
}

// Measurement is the natural size of one rendered page
type Measurement struct {
	Role Role
	Size Size
}

// ResizeRequest asks the host to call ApplyResize after Delay. Only the
// most recent request is honoured.
type ResizeRequest struct {
	Seq    uint64
	Height float64
	Delay  time.Duration
}

type sizeState struct {
	// measured is the natural height of the current page
	measured float64
	// reported is the last single-page height seen
	reported    float64
	initialized bool
	seq         uint64

	heights [3]float64
	known   [3]bool

	// container height animation
	height   float64
	velocity float64
	target   float64
}

func (s *sizeState) promote(r Role) {
	if !s.known[r] {
		return
	}
	s.heights[RoleCurrent] = s.heights[r]
	s.known[RoleCurrent] = true
	s.measured = s.heights[r]
}

func (s *sizeState) forgetNeighbors() {
	s.known[RolePrevious] = false
	s.known[RoleNext] = false
}

// Height returns the animated container height
func (e *Engine[T]) Height() float64 { return e.sizes.height }

// MeasuredHeight returns the stored natural height of the current page
func (e *Engine[T]) MeasuredHeight() float64 { return e.sizes.measured }

// ReportSizes receives the natural sizes of the rendered pages. When a
// single current page reports a new height the returned request must be
// applied after its delay; multi-page reports during a drag only feed
// the anticipatory resize. The very first report is applied at once.
func (e *Engine[T]) ReportSizes(ms []Measurement) (ResizeRequest, bool) {
	for _, m := range ms {
		e.sizes.heights[m.Role] = m.Size.Height
		e.sizes.known[m.Role] = true
	}
	if len(ms) != 1 || ms[0].Role != RoleCurrent {
		return ResizeRequest{}, false
	}

	h := ms[0].Size.Height
	if !e.sizes.initialized {
		e.sizes.initialized = true
		e.sizes.reported = h
		e.sizes.measured = h
		e.sizes.height, e.sizes.target, e.sizes.velocity = h, h, 0
		return ResizeRequest{}, false
	}
	if h == e.sizes.reported {
		return ResizeRequest{}, false
	}

	e.sizes.reported = h
	e.sizes.seq++
	return ResizeRequest{Seq: e.sizes.seq, Height: h, Delay: e.cfg.ResizeDebounce}, true
}

// ApplyResize starts animating the container to r's height unless a
// newer request has been issued since. While a drag past the threshold
// holds the anticipatory height only the measurement is recorded; the
// container returns to it if the drag falls back.
func (e *Engine[T]) ApplyResize(r ResizeRequest) {
	if r.Seq != e.sizes.seq {
		return
	}
	e.sizes.measured = r.Height
	if e.cfg.AdjustOnSwipe && e.crossed {
		return
	}
	e.sizes.target = r.Height
}

func (e *Engine[T]) setNewHeight(r Role) {
	if !e.cfg.AdjustOnSwipe || !e.sizes.known[r] {
		return
	}
	e.sizes.target = e.sizes.heights[r]
}

func (e *Engine[T]) setOldHeight() {
	if !e.cfg.AdjustOnSwipe || !e.sizes.initialized {
		return
	}
	e.sizes.target = e.sizes.measured
}
