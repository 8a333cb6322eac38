package finder

// A widget is a grounded term anchoring symmetry breaking: a function
// symbol with every argument fixed to one value (0 for constants). It is
// not part of the logical theory; it only names a cell of a function
// table whose value the symmetry axioms constrain.
type widget struct {
	fn  int
	arg int
}

// buildWidgets lays out, per sort, the ordered grounded-term sequence for
// the given candidate size: the sort's constants first, then groundings
// of its functions in the configured widget order. Terms whose result
// bound is below the size, or whose argument bounds are below the fixed
// argument value, cannot introduce new elements and are skipped.
func (f *Finder) buildWidgets(size int) {
	f.widgets = make([][]widget, f.prb.Sorted.Sorts)
	for s := 0; s < f.prb.Sorted.Sorts; s++ {
		var gts []widget
		for _, c := range f.sortedConstants[s] {
			gts = append(gts, widget{fn: c})
		}
		fns := f.sortedFunctions[s]
		switch f.opts.WidgetOrder {
		case ArgumentFirst, Diagonal:
			for m := 1; m <= size; m++ {
				for i, fn := range fns {
					arg := m
					if f.opts.WidgetOrder == Diagonal {
						arg = 1 + (m+i)%size
					}
					gts = f.appendWidget(gts, fn, arg, size)
				}
			}
		default:
			for _, fn := range fns {
				for m := 1; m <= size; m++ {
					gts = f.appendWidget(gts, fn, m, size)
				}
			}
		}
		f.widgets[s] = gts
	}
}

func (f *Finder) appendWidget(gts []widget, fn, arg, size int) []widget {
	// The fixed argument must already be introducible by the earlier
	// terms of the sequence, otherwise constraining this term's value
	// would not be a pure renaming of the domain. With at least one
	// constant in the sort this never skips anything.
	if arg > len(gts) {
		return gts
	}
	bounds := f.prb.Sorted.FuncBounds[fn]
	if bounds[0] < size {
		return gts
	}
	for i := 0; i < f.prb.Sig.Funcs[fn].Arity; i++ {
		if bounds[i+1] < arg {
			return gts
		}
	}
	return append(gts, widget{fn: fn, arg: arg})
}

// widgetLit encodes "widget takes the value val".
func (f *Finder) widgetLit(gt widget, val int, positive bool, size int) int {
	arity := f.prb.Sig.Funcs[gt.fn].Arity
	grounding := make([]int, arity+1)
	for i := 0; i < arity; i++ {
		grounding[i] = gt.arg
	}
	grounding[arity] = val
	return f.encode(gt.fn, grounding, positive, true, size)
}

// addSymmetry emits the ordering and canonicity axioms for every value up
// to the candidate size. The instance is rebuilt from scratch each size,
// so the axioms that an incremental construction would have accumulated
// one value at a time are all emitted here.
func (f *Finder) addSymmetry(size int) {
	for s := range f.widgets {
		gts := f.widgets[s]
		for m := 1; m <= size; m++ {
			f.addOrdering(m, gts, size)
			f.addCanonicity(m, gts, size)
		}
	}
}

// addOrdering restricts the m-th grounded term of the sequence to the
// values 1..m: the first term names element 1, the second at most a
// second element, and so on. This is a restricted totality clause; it
// cuts the automorphism group as new elements are introduced.
func (f *Finder) addOrdering(m int, gts []widget, size int) {
	if len(gts) < m {
		return
	}
	gt := gts[m-1]
	lits := make([]int, 0, m)
	for v := 1; v <= m; v++ {
		lits = append(lits, f.widgetLit(gt, v, true, size))
	}
	f.addClause(lits)
}

// addCanonicity emits, over the symmetry-ratio prefix of the sequence,
// the clauses stating that if term i takes the newly available value m,
// some earlier term j < i takes m-1: two elements cannot be "new" out of
// canonical order.
func (f *Finder) addCanonicity(m int, gts []widget, size int) {
	if m <= 1 {
		return
	}
	w := int(f.opts.SymmetryRatio * float64(size))
	if w > len(gts) {
		w = len(gts)
	}
	for i := 1; i < w; i++ {
		lits := make([]int, 0, i+1)
		lits = append(lits, f.widgetLit(gts[i], m, false, size))
		for j := 0; j < i; j++ {
			lits = append(lits, f.widgetLit(gts[j], m-1, true, size))
		}
		f.addClause(lits)
	}
}

// addUseModelSize asserts in one clause that some grounded term takes the
// maximal domain value, i.e. that the candidate size is actually used.
// It is only sound to state over full function tables, so it is limited
// to signatures whose functions have arity at most 1; for unary functions
// every argument value participates.
func (f *Finder) addUseModelSize(size int) {
	if f.maxArity > 1 {
		return
	}
	var lits []int
	for s := range f.widgets {
		for _, gt := range f.widgets[s] {
			if f.prb.Sig.Funcs[gt.fn].Arity == 0 {
				lits = append(lits, f.encode(gt.fn, []int{size}, true, true, size))
				continue
			}
			for m := 1; m <= size; m++ {
				lits = append(lits, f.encode(gt.fn, []int{m, size}, true, true, size))
			}
		}
	}
	if len(lits) > 0 {
		f.addClause(lits)
	}
}
