package finder

import "github.com/crillab/gophermodel/logic"

// addClause removes duplicate literals and submits the clause to the
// current backend. Empty clauses are submitted too: an instance whose
// literals all evaluated to false is genuine evidence that the candidate
// size admits no model.
func (f *Finder) addClause(lits []int) {
	if len(lits) > 1 {
		seen := make(map[int]struct{}, len(lits))
		kept := lits[:0]
		for _, l := range lits {
			if _, dup := seen[l]; dup {
				continue
			}
			seen[l] = struct{}{}
			kept = append(kept, l)
		}
		lits = kept
	}
	f.backend.AddClause(lits)
	f.nbClauses++
}

// addGroundClauses emits the variable-free clauses. By flatness these
// consist of 0-arity predicate literals, so each literal maps directly to
// its encoded variable.
func (f *Finder) addGroundClauses(size int) {
	for _, c := range f.prb.Ground {
		lits := make([]int, 0, len(c.Lits))
		for _, l := range c.Lits {
			lits = append(lits, f.encode(l.Sym, nil, l.Positive, false, size))
		}
		f.addClause(lits)
	}
}

// addInstances grounds every non-ground clause: one SAT clause per
// assignment of domain values to the clause variables, within the
// clause's bound table clamped to the candidate size.
//
// Two-variable equalities short-circuit instead of encoding: a literal
// made true by the assignment turns the whole instance into a tautology
// (skipped), a literal made false is dropped and the rest of the
// instance is kept.
func (f *Finder) addInstances(size int) {
	for ci, c := range f.prb.Clauses {
		it := newTupleIter(f.clauseBounds[ci], size)
	instance:
		for it.next() {
			g := it.values()
			lits := make([]int, 0, len(c.Lits))
			for _, l := range c.Lits {
				switch l.Kind {
				case logic.EqLit:
					if (g[l.X] == g[l.Y]) == l.Positive {
						continue instance
					}
					// Literal is false under g: drop it.
				case logic.FuncLit:
					use := make([]int, len(l.Args)+1)
					for j, v := range l.Args {
						use[j] = g[v]
					}
					use[len(l.Args)] = g[l.Res]
					lits = append(lits, f.encode(l.Sym, use, l.Positive, true, size))
				default:
					use := make([]int, len(l.Args))
					for j, v := range l.Args {
						use[j] = g[v]
					}
					lits = append(lits, f.encode(l.Sym, use, l.Positive, false, size))
				}
			}
			f.addClause(lits)
		}
	}
}

// clauseBoundTable computes the bound table of one clause: for every
// clause variable, the tightest sort bound implied by the positions the
// variable occupies. Variables occurring only in two-variable equalities
// carry no bound and default to NoBound (clamped to the candidate size
// during grounding).
func clauseBoundTable(c *logic.Clause, sorted *logic.SortedSignature) []int {
	bounds := make([]int, c.NbVars)
	tighten := func(v, b int) {
		if bounds[v] == 0 || b < bounds[v] {
			bounds[v] = b
		}
	}
	for _, l := range c.Lits {
		switch l.Kind {
		case logic.FuncLit:
			fb := sorted.FuncBounds[l.Sym]
			tighten(l.Res, fb[0])
			for j, v := range l.Args {
				tighten(v, fb[j+1])
			}
		case logic.PredLit:
			pb := sorted.PredBounds[l.Sym]
			for j, v := range l.Args {
				tighten(v, pb[j])
			}
		}
	}
	for i, b := range bounds {
		if b == 0 {
			bounds[i] = logic.NoBound
		}
	}
	return bounds
}
