package finder

// encode maps a symbol grounding to a signed DIMACS literal. For a
// function, grounding holds the argument values followed by the result
// value; for a predicate, the argument values. The variable id is
// offset + sum(mult_i * (grounding_i - 1)) with mult accumulating powers
// of size in tuple order, so distinct groundings of a symbol get distinct
// ids and re-encoding the same grounding within one size is stable.
//
// Every clause and axiom generator goes through this function; it is the
// single definition of the fact-to-variable bijection.
func (f *Finder) encode(sym int, grounding []int, positive, isFunction bool, size int) int {
	var v int
	if isFunction {
		v = f.fOffsets[sym]
	} else {
		v = f.pOffsets[sym]
	}
	mult := 1
	for _, g := range grounding {
		v += mult * (g - 1)
		mult *= size
	}
	if positive {
		return v
	}
	return -v
}
