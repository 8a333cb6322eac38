package sat

import (
	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

// giniBackend streams clauses straight into a gini solver.
type giniBackend struct {
	g      *gini.Gini
	solved Status
}

func newGini() *giniBackend {
	return &giniBackend{g: gini.New()}
}

func (b *giniBackend) EnsureVars(n int) {
	for int(b.g.MaxVar()) < n {
		b.g.Lit()
	}
}

func (b *giniBackend) AddClause(lits []int) {
	for _, l := range lits {
		b.g.Add(z.Dimacs2Lit(l))
	}
	b.g.Add(z.LitNull)
}

func (b *giniBackend) Solve() Status {
	switch b.g.Solve() {
	case 1:
		b.solved = Sat
	case -1:
		b.solved = Unsat
	default:
		b.solved = Unknown
	}
	return b.solved
}

func (b *giniBackend) Value(v int) bool {
	if b.solved != Sat || v < 1 || v > int(b.g.MaxVar()) {
		return false
	}
	return b.g.Value(z.Dimacs2Lit(v))
}
