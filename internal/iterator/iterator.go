package iterator

// ElementIterator computes the neighbours of a page identifier.
// A false second return value means the identifier sits on an edge and
// there is nothing further in that direction. Implementations must be
// stateless so one value can be shared by any number of page views.
type ElementIterator[T comparable] interface {
	After(id T) (T, bool)
	Before(id T) (T, bool)
}

// Funcs adapts a pair of plain functions to an ElementIterator.
// A nil function reports no neighbour.
type Funcs[T comparable] struct {
	AfterFunc  func(T) (T, bool)
	BeforeFunc func(T) (T, bool)
}

// After returns the identifier following id
func (f Funcs[T]) After(id T) (T, bool) {
	if f.AfterFunc == nil {
		var zero T
		return zero, false
	}
	return f.AfterFunc(id)
}

// Before returns the identifier preceding id
func (f Funcs[T]) Before(id T) (T, bool) {
	if f.BeforeFunc == nil {
		var zero T
		return zero, false
	}
	return f.BeforeFunc(id)
}
