package finder

import "github.com/crillab/gophermodel/logic"

// extract decodes the backend's satisfying assignment into an explicit
// model of the given size, then backfills the symbols eliminated before
// encoding by evaluating their retained definitions against the decoded
// tables. Gaps are tolerated in two places: a function tuple whose sort
// bound excluded full coverage may have no true result literal, and a
// definition may fail to evaluate because it depends on an entry that is
// itself unset. Both leave the entry absent instead of aborting.
func (f *Finder) extract(size int) *logic.Model {
	m := logic.NewModel(f.prb.Sig, size)

	for fi, fn := range f.prb.Sig.Funcs {
		if fn.Arity != 0 || f.delF[fi] {
			continue
		}
		for c := 1; c <= size; c++ {
			if f.assignedTrue(fi, []int{c}, true, size) {
				m.SetFunc(fi, nil, c)
				break
			}
		}
	}

	for fi, fn := range f.prb.Sig.Funcs {
		if fn.Arity == 0 || f.delF[fi] {
			continue
		}
		it := newTupleIter(fullBounds(fn.Arity), size)
		use := make([]int, fn.Arity+1)
		for it.next() {
			args := it.values()
			copy(use, args)
			for c := 1; c <= size; c++ {
				use[fn.Arity] = c
				if f.assignedTrue(fi, use, true, size) {
					m.SetFunc(fi, args, c)
					break
				}
			}
		}
	}

	for pi, pred := range f.prb.Sig.Preds {
		if pi == 0 || f.delP[pi] {
			continue
		}
		if _, partial := f.prb.PartialPreds[pi]; partial {
			continue
		}
		trivial, isTrivial := f.prb.TrivialPreds[pi]
		if pred.Arity == 0 {
			val := trivial
			if !isTrivial {
				val = f.assignedTrue(pi, nil, false, size)
			}
			m.SetPred(pi, nil, val)
			continue
		}
		it := newTupleIter(fullBounds(pred.Arity), size)
		for it.next() {
			args := it.values()
			val := trivial
			if !isTrivial {
				val = f.assignedTrue(pi, args, false, size)
			}
			m.SetPred(pi, args, val)
		}
	}

	f.backfillFuncs(m, size)
	f.backfillPreds(m, size)
	return m
}

// assignedTrue reads the assignment of one fact variable.
func (f *Finder) assignedTrue(sym int, grounding []int, isFunction bool, size int) bool {
	return f.backend.Value(f.encode(sym, grounding, true, isFunction, size))
}

func fullBounds(n int) []int {
	b := make([]int, n)
	for i := range b {
		b[i] = logic.NoBound
	}
	return b
}

// backfillFuncs evaluates the retained definitions of eliminated
// functions, latest symbol first so that definitions referring to earlier
// eliminated symbols see their tables already filled.
func (f *Finder) backfillFuncs(m *logic.Model, size int) {
	for fi := len(f.prb.Sig.Funcs) - 1; fi >= 0; fi-- {
		def, ok := f.prb.DeletedFuncs[fi]
		if !ok {
			continue
		}
		it := newTupleIter(fullBounds(f.prb.Sig.Funcs[fi].Arity), size)
		for it.next() {
			args := it.values()
			env := make(map[int]int, len(def.Args))
			for j, v := range def.Args {
				env[v] = args[j]
			}
			if val, err := m.EvalTerm(def.Rhs, env); err == nil {
				m.SetFunc(fi, args, val)
			}
		}
	}
}

// backfillPreds evaluates the retained definitions of eliminated and
// partially eliminated predicates.
func (f *Finder) backfillPreds(m *logic.Model, size int) {
	for pi := len(f.prb.Sig.Preds) - 1; pi >= 1; pi-- {
		def, ok := f.prb.DeletedPreds[pi]
		if !ok {
			def, ok = f.prb.PartialPreds[pi]
		}
		if !ok {
			continue
		}
		pd, ok := destructurePredDef(def, pi)
		if !ok {
			continue
		}
		it := newTupleIter(fullBounds(f.prb.Sig.Preds[pi].Arity), size)
		for it.next() {
			args := it.values()
			if pd.pure {
				m.SetPred(pi, args, pd.pureVal)
				continue
			}
			env := make(map[int]int, len(pd.args))
			for j, v := range pd.args {
				env[v] = args[j]
			}
			res, err := m.EvalFormula(pd.body, env)
			if err != nil {
				continue
			}
			if !pd.polarity {
				res = !res
			}
			m.SetPred(pi, args, res)
		}
	}
}

// predDef is a destructured predicate definition.
type predDef struct {
	pure     bool
	pureVal  bool
	polarity bool
	args     []int
	body     *logic.Formula
}

// destructurePredDef takes a retained definition of the shape
// forall (p(X...) <=> phi) — possibly with negations around either side
// — or a truth constant for pure symbols, and splits it into the
// predicate application and the defining body. Definitions of any other
// shape are skipped rather than guessed at.
func destructurePredDef(def *logic.Formula, pred int) (predDef, bool) {
	switch def.Conn {
	case logic.ConnTrue:
		return predDef{pure: true, pureVal: true}, true
	case logic.ConnFalse:
		return predDef{pure: true, pureVal: false}, true
	case logic.ConnForall:
	default:
		return predDef{}, false
	}
	inner := def.Sub[0]
	if inner.Conn != logic.ConnIff {
		return predDef{}, false
	}
	left, right := inner.Sub[0], inner.Sub[1]
	polarity := true
	if left.Conn == logic.ConnNot {
		polarity = !polarity
		left = left.Sub[0]
	}
	if right.Conn == logic.ConnNot {
		polarity = !polarity
		right = right.Sub[0]
	}
	var app, body *logic.Formula
	switch {
	case left.Conn == logic.ConnAtom && left.Pred == pred:
		app, body = left, right
	case right.Conn == logic.ConnAtom && right.Pred == pred:
		app, body = right, left
	default:
		return predDef{}, false
	}
	args := make([]int, len(app.Args))
	for i, t := range app.Args {
		if !t.IsVar() {
			return predDef{}, false
		}
		args[i] = t.V
	}
	return predDef{polarity: polarity, args: args, body: body}, true
}
