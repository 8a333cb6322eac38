// Package logic describes flattened first-order clause sets and finite models.
//
// The types here are deliberately restrictive: a clause is a disjunction of
// flat literals, where a literal is either a predicate applied to variables,
// an equality between two variables, or an equality between a function
// applied to variables and a variable. Clause flattening itself is not
// performed by this module; it expects its input in that shape, the way a
// CNF solver expects its input already in clausal form.
//
// Besides the clause language, the package provides the sorted signature
// metadata consumed by the finder (per-symbol argument and result bounds),
// a small formula language used to retain the definitions of symbols that
// were eliminated during preprocessing, and the Model type holding an
// explicit finite interpretation once one has been found.
package logic
