package finder

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/crillab/gophermodel/logic"
	"github.com/crillab/gophermodel/sat"
)

// Outcome classifies a finished run.
type Outcome byte

const (
	// Unknown means the run was inconclusive: the variable space
	// overflowed or the SAT engine gave up.
	Unknown = Outcome(iota)
	// Satisfiable means a finite model was found.
	Satisfiable
	// Refuted means the soundness ceiling was reached without a model:
	// no finite model of any size exists.
	Refuted
	// TimeLimit means the deadline expired between attempts.
	TimeLimit
)

func (o Outcome) String() string {
	switch o {
	case Satisfiable:
		return "SATISFIABLE"
	case Refuted:
		return "REFUTED"
	case TimeLimit:
		return "TIME-LIMIT"
	default:
		return "UNKNOWN"
	}
}

// A Result is the outcome of a run. Model is non-nil exactly when Outcome
// is Satisfiable; Size is the last candidate size attempted.
type Result struct {
	Outcome Outcome
	Size    int
	Model   *logic.Model
}

// A Finder searches for a finite model of one Problem. Create it with
// New and run it once with Run; the per-size state (offsets, backend,
// widget sequences) is rebuilt from scratch on every size change, while
// the precomputed clause bound tables are shared by all attempts.
type Finder struct {
	opts Options
	prb  *Problem
	log  *logrus.Logger

	delF, delP         []bool
	fOffsets, pOffsets []int
	clauseBounds       [][]int
	sortedConstants    [][]int
	sortedFunctions    [][]int

	maxModelSize  int
	constantCount int
	maxArity      int

	// per-size state
	widgets   [][]widget
	backend   sat.Backend
	nbVars    int
	nbClauses int

	newBackend func() (sat.Backend, error)
}

// New validates the problem and precomputes everything the size loop
// shares: deletion masks, clause bound tables, the soundness ceiling and
// the symbol orderings used by symmetry breaking.
func New(prb *Problem, opts Options) (*Finder, error) {
	if prb == nil || prb.Sig == nil || prb.Sorted == nil {
		return nil, errors.New("problem needs a signature and a sorted signature")
	}
	opts = opts.withDefaults()
	if _, err := sat.New(opts.Backend); err != nil {
		return nil, err
	}
	f := &Finder{
		opts:         opts,
		prb:          prb,
		log:          opts.Logger,
		delF:         make([]bool, len(prb.Sig.Funcs)),
		delP:         make([]bool, len(prb.Sig.Preds)),
		fOffsets:     make([]int, len(prb.Sig.Funcs)),
		pOffsets:     make([]int, len(prb.Sig.Preds)),
		maxModelSize: math.MaxInt32,
		newBackend:   func() (sat.Backend, error) { return sat.New(opts.Backend) },
	}
	for fi := range prb.Sig.Funcs {
		f.delF[fi] = prb.deletedFunc(fi)
	}
	for pi := range prb.Sig.Preds {
		f.delP[pi] = prb.deletedPred(pi)
	}
	for _, c := range prb.Ground {
		for _, l := range c.Lits {
			if l.Kind != logic.PredLit || len(l.Args) != 0 {
				return nil, errors.Errorf("ground clause %s is not propositional", c.Format(prb.Sig))
			}
		}
	}
	for _, fn := range prb.Sig.Funcs {
		if fn.Arity > f.maxArity {
			f.maxArity = fn.Arity
		}
	}
	for fi, fn := range prb.Sig.Funcs {
		if fn.Arity == 0 && !f.delF[fi] {
			f.constantCount++
		}
	}

	f.clauseBounds = make([][]int, len(prb.Clauses))
	for ci, c := range prb.Clauses {
		f.clauseBounds[ci] = clauseBoundTable(c, prb.Sorted)
		f.tightenCeiling(c)
	}
	f.constantCensusCeiling()
	f.orderSymbols()
	return f, nil
}

// tightenCeiling lowers the soundness ceiling from clauses made solely of
// positive two-variable equalities over distinct variables: such a clause
// forces any model to identify elements once the domain outgrows the
// clause's variable count.
func (f *Finder) tightenCeiling(c *logic.Clause) {
	for _, l := range c.Lits {
		if l.Kind != logic.EqLit || !l.Positive || l.X == l.Y {
			return
		}
	}
	if c.NbVars < f.maxModelSize {
		f.maxModelSize = c.NbVars
	}
}

// constantCensusCeiling bounds the model size for EPR and function-free
// problems: no model needs more elements than the most populated sort's
// constant count.
func (f *Finder) constantCensusCeiling() {
	if !f.prb.EPR && f.maxArity != 0 {
		return
	}
	max := 1
	for s := 0; s < f.prb.Sorted.Sorts; s++ {
		if c := len(f.prb.Sorted.Constants[s]); c > max {
			max = c
		}
	}
	if max < f.maxModelSize {
		f.maxModelSize = max
	}
}

// orderSymbols fixes the per-sort symbol sequences used when widget
// sequences are built. Usage counts are recomputed from the input
// clauses unless the preprocessed counts were requested; under
// occurrence order the signature order is kept as is.
func (f *Finder) orderSymbols() {
	f.sortedConstants = make([][]int, f.prb.Sorted.Sorts)
	f.sortedFunctions = make([][]int, f.prb.Sorted.Sorts)
	live := func(seq []int) []int {
		kept := make([]int, 0, len(seq))
		for _, fi := range seq {
			if !f.delF[fi] {
				kept = append(kept, fi)
			}
		}
		return kept
	}
	for s := 0; s < f.prb.Sorted.Sorts; s++ {
		f.sortedConstants[s] = live(f.prb.Sorted.Constants[s])
		f.sortedFunctions[s] = live(f.prb.Sorted.Functions[s])
	}
	if f.opts.SymbolOrder == OccurrenceOrder {
		return
	}
	usage := make([]int, len(f.prb.Sig.Funcs))
	if f.opts.SymbolOrder == PreprocessedUsageOrder {
		for fi, fn := range f.prb.Sig.Funcs {
			usage[fi] = fn.Usage
		}
	} else {
		for _, c := range f.prb.Clauses {
			for _, l := range c.Lits {
				if l.Kind == logic.FuncLit {
					usage[l.Sym]++
				}
			}
		}
	}
	for s := 0; s < f.prb.Sorted.Sorts; s++ {
		for _, seq := range [][]int{f.sortedConstants[s], f.sortedFunctions[s]} {
			seq := seq
			sort.SliceStable(seq, func(i, j int) bool {
				return usage[seq[i]] > usage[seq[j]]
			})
		}
	}
}

// reset rebuilds the per-size state: a fresh backend, a fresh offset
// table and fresh widget sequences. On a variable-space overflow the
// previous backend is left in place untouched and the error is returned;
// nothing partial escapes.
func (f *Finder) reset(size int) error {
	b, err := f.newBackend()
	if err != nil {
		return err
	}
	total, err := f.allocOffsets(size)
	if err != nil {
		return err
	}
	f.backend = b
	f.backend.EnsureVars(total)
	f.buildWidgets(size)
	f.nbVars = total
	f.nbClauses = 0
	return nil
}

// Run drives the search: starting from the configured size, each
// candidate size gets a fresh propositional instance which is solved in
// one blocking call. The context deadline is polled once per size, never
// inside an attempt.
func (f *Finder) Run(ctx context.Context) Result {
	size := f.opts.StartSize
	if f.opts.StartWithConstants && f.constantCount > 0 {
		size = f.constantCount
	}
	if f.maxModelSize < math.MaxInt32 {
		f.log.WithField("ceiling", f.maxModelSize).Info("detected maximum model size")
	}
	if err := f.reset(size); err != nil {
		f.log.WithError(err).Warn("cannot represent all propositional literals")
		return Result{Outcome: Unknown, Size: size}
	}
	for {
		if ctx.Err() != nil {
			return Result{Outcome: TimeLimit, Size: size}
		}
		f.addGroundClauses(size)
		f.addInstances(size)
		f.addFunctionality(size)
		f.addSymmetry(size)
		f.addTotality(size)
		if f.opts.UseModelSizeAxiom {
			f.addUseModelSize(size)
		}
		f.log.WithFields(logrus.Fields{
			"size":    size,
			"vars":    f.nbVars,
			"clauses": f.nbClauses,
		}).Info("trying candidate size")
		start := time.Now()
		status := f.backend.Solve()
		f.log.WithFields(logrus.Fields{
			"size":     size,
			"status":   status.String(),
			"duration": time.Since(start),
		}).Info("attempt finished")

		switch status {
		case sat.Sat:
			return Result{Outcome: Satisfiable, Size: size, Model: f.extract(size)}
		case sat.Unknown:
			return Result{Outcome: Unknown, Size: size}
		}

		if size >= f.maxModelSize {
			f.log.WithField("size", size).Info("soundness ceiling reached, no larger model can exist")
			return Result{Outcome: Refuted, Size: size}
		}
		size++
		if err := f.reset(size); err != nil {
			f.log.WithError(err).Warn("cannot represent all propositional literals")
			return Result{Outcome: Unknown, Size: size}
		}
	}
}
