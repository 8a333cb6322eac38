// Package finder searches for a finite model of a flattened first-order
// clause set by iterative SAT encoding.
//
// For a candidate domain size N, every relational fact over {1..N} —
// "f(args) = v" for each function and "p(args) holds" for each predicate —
// is mapped bijectively to a boolean variable. The clause set is grounded
// within per-variable sort bounds, functionality, totality and
// symmetry-breaking axioms are added, and the resulting propositional
// instance is handed to a SAT backend. A satisfying assignment is decoded
// back into an explicit model; an unsatisfiable instance grows N and
// retries, up to a soundness ceiling beyond which no finite model can
// exist.
//
// Each size is solved as a fresh instance: the variable space, the
// backend and the clause batch are rebuilt from scratch whenever the
// candidate size changes. Only the signature, the clause set and the
// per-clause bound tables persist across attempts, and those are
// write-once before the search starts.
package finder
