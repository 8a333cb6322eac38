package logic

import "fmt"

// A Term is a variable or a function symbol applied to terms. Terms only
// occur inside the retained definitions of eliminated symbols; clause
// literals are flat and use bare variables.
type Term struct {
	Fn   int // function id, or -1 for a variable
	V    int // variable index, meaningful when Fn < 0
	Args []Term
}

// Var builds a variable term.
func Var(v int) Term { return Term{Fn: -1, V: v} }

// App builds an application term f(args...).
func App(f int, args ...Term) Term { return Term{Fn: f, Args: args} }

// IsVar reports whether t is a variable.
func (t Term) IsVar() bool { return t.Fn < 0 }

// Connective is the node kind of a Formula.
type Connective byte

const (
	ConnTrue Connective = iota
	ConnFalse
	ConnAtom   // predicate applied to terms
	ConnEq     // equality between two terms
	ConnNot    // one subformula
	ConnAnd    // n subformulas
	ConnOr     // n subformulas
	ConnIff    // two subformulas
	ConnForall // one subformula; quantified variables are implicit
)

// A Formula is a small connective tree. It exists to carry the retained
// definitions of predicates eliminated during preprocessing, so only the
// connectives such definitions need are represented.
type Formula struct {
	Conn        Connective
	Sub         []*Formula
	Pred        int  // ConnAtom
	Args        []Term
	Left, Right Term // ConnEq
}

// Truth and Falsity are the constant formulas.
func Truth() *Formula   { return &Formula{Conn: ConnTrue} }
func Falsity() *Formula { return &Formula{Conn: ConnFalse} }

// Atom builds p(args...).
func Atom(p int, args ...Term) *Formula {
	return &Formula{Conn: ConnAtom, Pred: p, Args: args}
}

// TermEq builds the equality left = right.
func TermEq(left, right Term) *Formula {
	return &Formula{Conn: ConnEq, Left: left, Right: right}
}

// Not, And, Or, Iff and Forall build the corresponding compound formulas.
func Not(f *Formula) *Formula { return &Formula{Conn: ConnNot, Sub: []*Formula{f}} }

func And(fs ...*Formula) *Formula { return &Formula{Conn: ConnAnd, Sub: fs} }

func Or(fs ...*Formula) *Formula { return &Formula{Conn: ConnOr, Sub: fs} }

func Iff(a, b *Formula) *Formula { return &Formula{Conn: ConnIff, Sub: []*Formula{a, b}} }

func Forall(f *Formula) *Formula { return &Formula{Conn: ConnForall, Sub: []*Formula{f}} }

func (c Connective) String() string {
	switch c {
	case ConnTrue:
		return "true"
	case ConnFalse:
		return "false"
	case ConnAtom:
		return "atom"
	case ConnEq:
		return "eq"
	case ConnNot:
		return "not"
	case ConnAnd:
		return "and"
	case ConnOr:
		return "or"
	case ConnIff:
		return "iff"
	case ConnForall:
		return "forall"
	default:
		return fmt.Sprintf("connective(%d)", byte(c))
	}
}
