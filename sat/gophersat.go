package sat

import "github.com/crillab/gophersat/solver"

// gophersatBackend buffers clauses and hands them to gophersat as one
// problem when Solve is called.
type gophersatBackend struct {
	nbVars  int
	clauses [][]int
	model   []bool
}

func (b *gophersatBackend) EnsureVars(n int) {
	if n > b.nbVars {
		b.nbVars = n
	}
}

func (b *gophersatBackend) AddClause(lits []int) {
	b.clauses = append(b.clauses, lits)
}

func (b *gophersatBackend) Solve() Status {
	pb := solver.ParseSlice(b.clauses)
	if pb.Status == solver.Unsat {
		return Unsat
	}
	s := solver.New(pb)
	switch s.Solve() {
	case solver.Sat:
		b.model = s.Model()
		return Sat
	case solver.Unsat:
		return Unsat
	default:
		return Unknown
	}
}

func (b *gophersatBackend) Value(v int) bool {
	// Variables above the highest one occurring in a clause are absent
	// from the model; they are unconstrained and read as false.
	if b.model == nil || v < 1 || v > len(b.model) {
		return false
	}
	return b.model[v-1]
}
