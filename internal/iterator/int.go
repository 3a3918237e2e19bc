package iterator

// Int steps through non-negative integers. When Bounded is set the valid
// identifiers are 0..Count-1, so a bound of zero or less has no pages
// after any id. The lower bound is always zero.
type Int struct {
	Bounded bool
	Count   int
}

// NewInt creates an unbounded integer iterator
func NewInt() Int {
	return Int{}
}

// NewBoundedInt creates an integer iterator over 0..count-1
func NewBoundedInt(count int) Int {
	return Int{Bounded: true, Count: count}
}

// After returns id+1 unless it would reach Count
func (it Int) After(id int) (int, bool) {
	next := id + 1
	if it.Bounded && next >= it.Count {
		return 0, false
	}
	return next, true
}

// Before returns id-1 unless it would drop below zero
func (it Int) Before(id int) (int, bool) {
	prev := id - 1
	if prev < 0 {
		return 0, false
	}
	return prev, true
}
