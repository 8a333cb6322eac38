package finder

// addFunctionality emits, for every live function and every in-bound
// argument tuple, the clauses forbidding two distinct result values:
// ~f(args, y) | ~f(args, z) for all y < z within the result bound.
func (f *Finder) addFunctionality(size int) {
	for fi, fn := range f.prb.Sig.Funcs {
		if f.delF[fi] {
			continue
		}
		bounds := f.prb.Sorted.FuncBounds[fi]
		resMax := size
		if bounds[0] < resMax {
			resMax = bounds[0]
		}
		it := newTupleIter(bounds[1:], size)
		for it.next() {
			args := it.values()
			use := make([]int, fn.Arity+1)
			copy(use, args)
			for y := 1; y < resMax; y++ {
				for z := y + 1; z <= resMax; z++ {
					use[fn.Arity] = y
					ly := f.encode(fi, use, false, true, size)
					use[fn.Arity] = z
					lz := f.encode(fi, use, false, true, size)
					f.addClause([]int{ly, lz})
				}
			}
		}
	}
}

// addTotality emits, for every live function and every in-bound argument
// tuple, the clause requiring some result value:
// f(args, 1) | ... | f(args, b) with b the result bound clamped to the
// size. Zero-arity functions get the single clause over the empty
// argument tuple. Using the result-sort bound instead of the full size is
// what lets a small pre-known sort shrink the instance.
func (f *Finder) addTotality(size int) {
	for fi, fn := range f.prb.Sig.Funcs {
		if f.delF[fi] {
			continue
		}
		bounds := f.prb.Sorted.FuncBounds[fi]
		resMax := size
		if bounds[0] < resMax {
			resMax = bounds[0]
		}
		it := newTupleIter(bounds[1:], size)
		for it.next() {
			args := it.values()
			lits := make([]int, 0, resMax)
			use := make([]int, fn.Arity+1)
			copy(use, args)
			for v := 1; v <= resMax; v++ {
				use[fn.Arity] = v
				lits = append(lits, f.encode(fi, use, true, true, size))
			}
			f.addClause(lits)
		}
	}
}
