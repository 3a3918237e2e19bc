package pager

// Binding is read/write access to a value owned by someone else.
// The engine reads the selection through it and writes only on commit.
type Binding[T any] interface {
	Get() T
	Set(T)
}

type pointerBinding[T any] struct {
	p *T
}

func (b pointerBinding[T]) Get() T  { return *b.p }
func (b pointerBinding[T]) Set(v T) { *b.p = v }

// Bind creates a binding backed by the variable p points to
func Bind[T any](p *T) Binding[T] {
	return pointerBinding[T]{p: p}
}

// FuncBinding adapts getter and setter functions to a Binding.
// A nil SetFunc makes the binding read-only.
type FuncBinding[T any] struct {
	GetFunc func() T
	SetFunc func(T)
}

// Get reads the bound value
func (b FuncBinding[T]) Get() T {
	return b.GetFunc()
}

// Set writes the bound value
func (b FuncBinding[T]) Set(v T) {
	if b.SetFunc != nil {
		b.SetFunc(v)
	}
}
