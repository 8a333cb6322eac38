package finder

import "github.com/pkg/errors"

// errVarSpace reports that the boolean variable space of an attempt would
// exceed the configured cap. The attempt is abandoned cleanly; nothing
// has been submitted to a backend when it is returned.
var errVarSpace = errors.New("variable space exhausted")

// allocOffsets assigns every live symbol a contiguous block of boolean
// variables for the given candidate size and returns the total count. A
// function of arity a owns size^(a+1) variables (argument tuples times
// result values), a predicate of arity a owns size^a. Blocks are laid out
// in signature order, functions first, skipping deleted symbols; the
// first variable is 1.
func (f *Finder) allocOffsets(size int) (int, error) {
	cap := uint64(f.opts.MaxVars)
	next := uint64(1)
	for fi, fn := range f.prb.Sig.Funcs {
		if f.delF[fi] {
			continue
		}
		block, ok := powCapped(uint64(size), fn.Arity+1, cap)
		if !ok || cap-block < next-1 {
			return 0, errors.Wrapf(errVarSpace, "function %s at size %d", fn.Name, size)
		}
		f.fOffsets[fi] = int(next)
		next += block
	}
	for pi, pred := range f.prb.Sig.Preds {
		if pi == 0 || f.delP[pi] {
			continue
		}
		block, ok := powCapped(uint64(size), pred.Arity, cap)
		if !ok || cap-block < next-1 {
			return 0, errors.Wrapf(errVarSpace, "predicate %s at size %d", pred.Name, size)
		}
		f.pOffsets[pi] = int(next)
		next += block
	}
	return int(next - 1), nil
}

// powCapped computes base^exp, reporting failure as soon as the result
// exceeds cap.
func powCapped(base uint64, exp int, cap uint64) (uint64, bool) {
	result := uint64(1)
	for i := 0; i < exp; i++ {
		if base != 0 && result > cap/base {
			return 0, false
		}
		result *= base
	}
	return result, true
}
