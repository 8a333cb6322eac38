package finder

import (
	"testing"

	"github.com/crillab/gophermodel/logic"
	"github.com/crillab/gophermodel/sat"
)

// recordingBackend captures submitted clauses and answers Solve from a
// canned status and assignment. Tests plug it in through the finder's
// backend factory to inspect what the generators emit.
type recordingBackend struct {
	nbVars  int
	clauses [][]int
	status  sat.Status
	vals    map[int]bool
}

func (b *recordingBackend) EnsureVars(n int) {
	if n > b.nbVars {
		b.nbVars = n
	}
}

func (b *recordingBackend) AddClause(lits []int) {
	b.clauses = append(b.clauses, append([]int(nil), lits...))
}

func (b *recordingBackend) Solve() sat.Status { return b.status }

func (b *recordingBackend) Value(v int) bool { return b.vals[v] }

func singleSortProblem(sig *logic.Signature, clauses ...*logic.Clause) *Problem {
	return NewProblem(sig, logic.SingleSort(sig), clauses)
}

func mustFinder(t *testing.T, prb *Problem, opts Options) *Finder {
	t.Helper()
	f, err := New(prb, opts)
	if err != nil {
		t.Fatalf("could not create finder: %v", err)
	}
	return f
}

// recordedFinder builds a finder whose attempts run against a
// recordingBackend and resets it for the given size.
func recordedFinder(t *testing.T, prb *Problem, opts Options, size int) (*Finder, *recordingBackend) {
	t.Helper()
	f := mustFinder(t, prb, opts)
	rb := &recordingBackend{}
	f.newBackend = func() (sat.Backend, error) { return rb, nil }
	if err := f.reset(size); err != nil {
		t.Fatalf("could not reset at size %d: %v", size, err)
	}
	return f, rb
}
