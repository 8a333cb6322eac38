package finder

import "github.com/crillab/gophermodel/logic"

// A FuncDef is the retained definition of an eliminated function:
// f(Args...) = Rhs, with Args the variable ids of the argument positions
// and Rhs a term over those variables.
type FuncDef struct {
	Args []int
	Rhs  logic.Term
}

// A Problem is the immutable input of a search: the flattened clause set,
// the sorted signature, and the preprocessing leftovers needed to
// complete a model after one is found. All maps may be nil.
type Problem struct {
	Sig    *logic.Signature
	Sorted *logic.SortedSignature

	// Ground holds the variable-free clauses (0-arity predicate
	// literals only), Clauses everything else.
	Ground  []*logic.Clause
	Clauses []*logic.Clause

	// DeletedFuncs and DeletedPreds record symbols eliminated before
	// encoding, keyed by symbol id, each with its retained definition.
	// PartialPreds are predicates only partially eliminated; they are
	// skipped during extraction and backfilled from their definition
	// like deleted ones. Deleted predicate definitions have the shape
	// forall (p(X...) <=> phi), or a truth constant for pure symbols.
	DeletedFuncs map[int]FuncDef
	DeletedPreds map[int]*logic.Formula
	PartialPreds map[int]*logic.Formula

	// TrivialPreds records predicates whose truth value was fixed
	// during preprocessing; extraction uses the recorded value instead
	// of reading the assignment.
	TrivialPreds map[int]bool

	// EPR marks effectively-propositional inputs, for which the
	// constant census bounds the model size.
	EPR bool
}

// NewProblem bundles a signature and clause set into a Problem,
// partitioning clauses into ground and non-ground.
func NewProblem(sig *logic.Signature, sorted *logic.SortedSignature, clauses []*logic.Clause) *Problem {
	p := &Problem{Sig: sig, Sorted: sorted}
	for _, c := range clauses {
		if c.Ground() {
			p.Ground = append(p.Ground, c)
		} else {
			p.Clauses = append(p.Clauses, c)
		}
	}
	return p
}

func (p *Problem) deletedFunc(f int) bool {
	_, ok := p.DeletedFuncs[f]
	return ok
}

func (p *Problem) deletedPred(pred int) bool {
	_, ok := p.DeletedPreds[pred]
	return ok
}
