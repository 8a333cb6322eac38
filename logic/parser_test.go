package logic

import (
	"strings"
	"testing"
)

func TestParseSimpleClauseSet(t *testing.T) {
	input := `
# a two-element toy problem
a != X | p(X)
f(X) = Y | ~p(X) | X != Y  % trailing comment
q
`
	cs, err := Parse(strings.NewReader(input))
	if err != nil {
		t.Fatalf("could not parse clause set: %v", err)
	}
	if len(cs.Clauses) != 3 {
		t.Fatalf("expected 3 clauses, got %d", len(cs.Clauses))
	}
	sig := cs.Sig

	if len(sig.Funcs) != 2 {
		t.Fatalf("expected 2 function symbols, got %d", len(sig.Funcs))
	}
	if sig.Funcs[0].Name != "a" || sig.Funcs[0].Arity != 0 {
		t.Errorf("expected constant a first, got %s/%d", sig.Funcs[0].Name, sig.Funcs[0].Arity)
	}
	if sig.Funcs[1].Name != "f" || sig.Funcs[1].Arity != 1 {
		t.Errorf("expected f/1 second, got %s/%d", sig.Funcs[1].Name, sig.Funcs[1].Arity)
	}
	// Predicate id 0 is the built-in equality.
	if len(sig.Preds) != 3 || sig.Preds[0].Name != "=" {
		t.Fatalf("unexpected predicates: %v", sig.Preds)
	}

	c0 := cs.Clauses[0]
	if c0.NbVars != 1 || len(c0.Lits) != 2 {
		t.Fatalf("clause 0 has wrong shape: %d vars, %d literals", c0.NbVars, len(c0.Lits))
	}
	if l := c0.Lits[0]; l.Kind != FuncLit || l.Positive || l.Sym != 0 || len(l.Args) != 0 || l.Res != 0 {
		t.Errorf("clause 0 literal 0 is not ~(a = X): %+v", l)
	}
	if l := c0.Lits[1]; l.Kind != PredLit || !l.Positive || len(l.Args) != 1 || l.Args[0] != 0 {
		t.Errorf("clause 0 literal 1 is not p(X): %+v", l)
	}

	c1 := cs.Clauses[1]
	if c1.NbVars != 2 {
		t.Fatalf("clause 1 should have 2 variables, got %d", c1.NbVars)
	}
	if l := c1.Lits[0]; l.Kind != FuncLit || !l.Positive || l.Sym != 1 || l.Res != 1 {
		t.Errorf("clause 1 literal 0 is not f(X) = Y: %+v", l)
	}
	if l := c1.Lits[2]; l.Kind != EqLit || l.Positive || l.X != 0 || l.Y != 1 {
		t.Errorf("clause 1 literal 2 is not X != Y: %+v", l)
	}

	c2 := cs.Clauses[2]
	if !c2.Ground() || len(c2.Lits) != 1 || c2.Lits[0].Kind != PredLit {
		t.Errorf("clause 2 should be the ground unit q: %+v", c2)
	}
}

func TestParseNormalizesEqualitySides(t *testing.T) {
	cs, err := Parse(strings.NewReader("X = f(Y)"))
	if err != nil {
		t.Fatalf("could not parse: %v", err)
	}
	l := cs.Clauses[0].Lits[0]
	if l.Kind != FuncLit || !l.Positive {
		t.Fatalf("X = f(Y) should normalize to a positive rewrite literal, got %+v", l)
	}
	// The function application moves to the left, so its argument is
	// numbered before the equated variable.
	if l.Args[0] != 0 || l.Res != 1 {
		t.Errorf("expected f(X0) = X1 after normalization, got %+v", l)
	}
}

func TestParseCountsUsage(t *testing.T) {
	cs, err := Parse(strings.NewReader("f(X) = Y | f(Y) = X\nf(X) != X"))
	if err != nil {
		t.Fatalf("could not parse: %v", err)
	}
	if got := cs.Sig.Funcs[0].Usage; got != 3 {
		t.Errorf("f occurs 3 times, usage is %d", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"arity mismatch", "p(X) | p(X, Y)"},
		{"function arity mismatch", "f(X) = Y\nf(X, Y) = Z"},
		{"nested application", "f(g(X)) = Y"},
		{"constant equality not flat", "a = b"},
		{"variable as predicate", "X(Y)"},
		{"empty literal", "p(X) | | q(X)"},
		{"unbalanced parentheses", "p(X"},
		{"invalid identifier", "p(X) | 1q(X)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.input)); err == nil {
				t.Errorf("expected an error for %q", tt.input)
			}
		})
	}
}

func TestParseErrorMentionsLine(t *testing.T) {
	_, err := Parse(strings.NewReader("p(X)\n\np(X, Y)"))
	if err == nil {
		t.Fatal("expected an arity error")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error should name line 3, got %q", err)
	}
}
