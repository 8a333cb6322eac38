// Package sat defines the capability a SAT engine must offer to the
// finder and provides adapters for the supported engines. The finder
// produces plain DIMACS-style signed integer literals; each adapter
// translates them to its engine's representation.
package sat

import "github.com/pkg/errors"

// Status is the outcome of a Solve call.
type Status byte

const (
	// Unknown means the engine gave up (resource exhaustion or
	// interruption) without an answer.
	Unknown = Status(iota)
	// Sat means a satisfying assignment was found.
	Sat
	// Unsat means the clause set admits no assignment.
	Unsat
)

func (s Status) String() string {
	switch s {
	case Sat:
		return "SAT"
	case Unsat:
		return "UNSAT"
	default:
		return "UNKNOWN"
	}
}

// Backend is one SAT engine instance holding one clause set. A Backend is
// single-use: the finder creates a fresh one for every candidate size.
//
// Solve is blocking and non-reentrant. Cancellation is the caller's
// business and is only ever exercised between Solve calls, never during
// one.
type Backend interface {
	// EnsureVars declares that variables 1..n may occur.
	EnsureVars(n int)
	// AddClause adds a clause of non-zero DIMACS literals. The backend
	// takes ownership of the slice. An empty clause makes the problem
	// trivially unsatisfiable.
	AddClause(lits []int)
	// Solve decides the clause set added so far.
	Solve() Status
	// Value reports the binding of variable v (1-based) in the
	// satisfying assignment. Valid only after Solve returned Sat;
	// unconstrained variables read as false.
	Value(v int) bool
}

// Names of the supported backends.
const (
	Gophersat = "gophersat"
	Gini      = "gini"
)

// New builds a fresh backend. The empty name selects gophersat.
func New(name string) (Backend, error) {
	switch name {
	case "", Gophersat:
		return &gophersatBackend{}, nil
	case Gini:
		return newGini(), nil
	default:
		return nil, errors.Errorf("unknown SAT backend %q", name)
	}
}
