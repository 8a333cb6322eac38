package logic

import (
	"fmt"
	"strings"
)

// LitKind discriminates the three flat literal shapes.
type LitKind byte

const (
	// PredLit is a predicate applied to variables: p(X1,...,Xn).
	PredLit LitKind = iota
	// EqLit is an equality between two variables: X = Y.
	EqLit
	// FuncLit is a rewrite-form equality between a function applied to
	// variables and a variable: f(X1,...,Xn) = Y.
	FuncLit
)

// A Literal is one flat literal. Variables are clause-local indices
// starting at 0. Which fields are meaningful depends on Kind.
type Literal struct {
	Kind     LitKind
	Positive bool
	Sym      int   // predicate id (PredLit) or function id (FuncLit)
	Args     []int // argument variables (PredLit, FuncLit)
	X, Y     int   // the two variables of an EqLit
	Res      int   // result variable of a FuncLit
}

// NewPred builds a predicate literal p(args...).
func NewPred(positive bool, p int, args ...int) Literal {
	return Literal{Kind: PredLit, Positive: positive, Sym: p, Args: args}
}

// NewEq builds a two-variable equality literal X = Y.
func NewEq(positive bool, x, y int) Literal {
	return Literal{Kind: EqLit, Positive: positive, X: x, Y: y}
}

// NewFuncEq builds a rewrite literal f(args...) = res.
func NewFuncEq(positive bool, f int, args []int, res int) Literal {
	return Literal{Kind: FuncLit, Positive: positive, Sym: f, Args: args, Res: res}
}

// A Clause is a disjunction of flat literals over NbVars clause-local
// variables numbered 0..NbVars-1.
type Clause struct {
	Lits   []Literal
	NbVars int
}

// NewClause builds a clause. The caller is responsible for NbVars covering
// every variable mentioned in the literals.
func NewClause(nbVars int, lits ...Literal) *Clause {
	return &Clause{Lits: lits, NbVars: nbVars}
}

// Ground reports whether the clause has no variables. By flatness a ground
// clause consists of 0-arity predicate literals only.
func (c *Clause) Ground() bool {
	return c.NbVars == 0
}

// Format renders the clause using the symbol names of sig, mostly for
// logs and error messages.
func (c *Clause) Format(sig *Signature) string {
	if len(c.Lits) == 0 {
		return "<empty>"
	}
	parts := make([]string, len(c.Lits))
	for i, l := range c.Lits {
		parts[i] = l.format(sig)
	}
	return strings.Join(parts, " | ")
}

func (l Literal) format(sig *Signature) string {
	varName := func(v int) string { return fmt.Sprintf("X%d", v) }
	args := func(vs []int) string {
		if len(vs) == 0 {
			return ""
		}
		names := make([]string, len(vs))
		for i, v := range vs {
			names[i] = varName(v)
		}
		return "(" + strings.Join(names, ",") + ")"
	}
	switch l.Kind {
	case EqLit:
		op := "="
		if !l.Positive {
			op = "!="
		}
		return fmt.Sprintf("%s %s %s", varName(l.X), op, varName(l.Y))
	case FuncLit:
		op := "="
		if !l.Positive {
			op = "!="
		}
		return fmt.Sprintf("%s%s %s %s", sig.Funcs[l.Sym].Name, args(l.Args), op, varName(l.Res))
	default:
		neg := ""
		if !l.Positive {
			neg = "~"
		}
		return neg + sig.Preds[l.Sym].Name + args(l.Args)
	}
}
