package finder

// tupleIter enumerates all tuples over per-position bounds clamped to the
// candidate size: position i ranges over 1..min(bounds[i], size). The
// last position increments fastest, which fixes the deterministic
// enumeration order the encoder and the tests rely on.
//
// The zero-length tuple is yielded exactly once. The tuple returned by
// values is reused between iterations; callers keeping it must copy.
type tupleIter struct {
	mins    []int
	cur     []int
	started bool
}

func newTupleIter(bounds []int, size int) *tupleIter {
	mins := make([]int, len(bounds))
	for i, b := range bounds {
		if b < size {
			mins[i] = b
		} else {
			mins[i] = size
		}
	}
	return &tupleIter{mins: mins, cur: make([]int, len(bounds))}
}

// next advances to the following tuple, reporting false once exhausted.
func (it *tupleIter) next() bool {
	if !it.started {
		it.started = true
		for i, m := range it.mins {
			if m < 1 {
				return false
			}
			it.cur[i] = 1
		}
		return true
	}
	for i := len(it.cur) - 1; i >= 0; i-- {
		if it.cur[i] == it.mins[i] {
			it.cur[i] = 1
		} else {
			it.cur[i]++
			return true
		}
	}
	return false
}

// values exposes the current tuple.
func (it *tupleIter) values() []int {
	return it.cur
}

// count returns the total number of tuples the iterator yields.
func (it *tupleIter) count() int {
	n := 1
	for _, m := range it.mins {
		n *= m
	}
	return n
}
