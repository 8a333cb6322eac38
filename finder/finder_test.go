package finder

import (
	"context"
	"strings"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/crillab/gophermodel/logic"
	"github.com/crillab/gophermodel/sat"
)

func parseProblem(t *testing.T, input string) *Problem {
	t.Helper()
	cs, err := logic.Parse(strings.NewReader(input))
	require.NoError(t, err)
	return NewProblem(cs.Sig, logic.SingleSort(cs.Sig), cs.Clauses)
}

// attemptSizes reads the candidate sizes a run tried from the log.
func attemptSizes(hook *logtest.Hook) []int {
	var sizes []int
	for _, e := range hook.AllEntries() {
		if e.Message == "trying candidate size" {
			sizes = append(sizes, e.Data["size"].(int))
		}
	}
	return sizes
}

func TestRunFindsUnitModel(t *testing.T) {
	for _, backend := range []string{sat.Gophersat, sat.Gini} {
		t.Run(backend, func(t *testing.T) {
			prb := parseProblem(t, "a != X | p(X)")
			fnd, err := New(prb, Options{Backend: backend})
			require.NoError(t, err)

			res := fnd.Run(context.Background())
			require.Equal(t, Satisfiable, res.Outcome)
			require.Equal(t, 1, res.Size)
			require.NotNil(t, res.Model)

			a, ok := res.Model.Constant(0)
			require.True(t, ok)
			require.Equal(t, 1, a)
			p, ok := res.Model.Pred(1, []int{1})
			require.True(t, ok)
			require.True(t, p, "p must hold on the image of a")
		})
	}
}

func TestRunGrowsDomain(t *testing.T) {
	// A fixed-point-free function has no one-element model.
	prb := parseProblem(t, "f(X) != X")
	logger, hook := logtest.NewNullLogger()
	fnd, err := New(prb, Options{Logger: logger})
	require.NoError(t, err)

	res := fnd.Run(context.Background())
	require.Equal(t, Satisfiable, res.Outcome)
	require.Equal(t, 2, res.Size)
	require.Equal(t, []int{1, 2}, attemptSizes(hook))

	for a := 1; a <= 2; a++ {
		v, ok := res.Model.Func(0, []int{a})
		require.True(t, ok)
		require.NotEqual(t, a, v, "f(%d) must not be a fixed point", a)
	}
}

func TestRunRefutesFunctionFreeContradiction(t *testing.T) {
	prb := parseProblem(t, "p(X)\n~p(X)")
	prb.EPR = true
	fnd, err := New(prb, Options{})
	require.NoError(t, err)

	// Without constants the census ceiling is one element, so the size 1
	// refutation closes the whole search.
	res := fnd.Run(context.Background())
	require.Equal(t, Refuted, res.Outcome)
	require.Equal(t, 1, res.Size)
	require.Nil(t, res.Model)
}

func TestRunRefutesViaEqualityCeiling(t *testing.T) {
	// The all-positive equality clause caps any model at two elements,
	// and the fixed-point-free function forbids sizes 1 and 2.
	prb := parseProblem(t, "X = Y\nf(X) != X")
	logger, hook := logtest.NewNullLogger()
	fnd, err := New(prb, Options{Logger: logger})
	require.NoError(t, err)

	res := fnd.Run(context.Background())
	require.Equal(t, Refuted, res.Outcome)
	require.Equal(t, []int{1, 2}, attemptSizes(hook))
}

func TestRunStartWithConstants(t *testing.T) {
	// Two constants forced apart: starting from the constant count skips
	// the hopeless size 1 attempt.
	prb := parseProblem(t, "a != X | b != X")
	logger, hook := logtest.NewNullLogger()
	fnd, err := New(prb, Options{StartWithConstants: true, Logger: logger})
	require.NoError(t, err)

	res := fnd.Run(context.Background())
	require.Equal(t, Satisfiable, res.Outcome)
	require.Equal(t, 2, res.Size)
	require.Equal(t, []int{2}, attemptSizes(hook))

	a, _ := res.Model.Constant(0)
	b, _ := res.Model.Constant(1)
	require.NotEqual(t, a, b)
}

func TestRunReportsUnknownOnVarSpaceOverflow(t *testing.T) {
	prb := parseProblem(t, "a != X | b != X")
	fnd, err := New(prb, Options{MaxVars: 1})
	require.NoError(t, err)

	res := fnd.Run(context.Background())
	require.Equal(t, Unknown, res.Outcome)
	require.Nil(t, res.Model)
}

func TestRunHonorsCancellation(t *testing.T) {
	prb := parseProblem(t, "p(X)")
	fnd, err := New(prb, Options{})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	res := fnd.Run(ctx)
	require.Equal(t, TimeLimit, res.Outcome)
}

func TestRunUseModelSizeAxiom(t *testing.T) {
	// Only f(a) = a is constrained, so at size 2 the free entry f(2)
	// must pick up the top value once the axiom demands it is used.
	prb := parseProblem(t, "a != X | f(X) = X")
	fnd, err := New(prb, Options{StartSize: 2, UseModelSizeAxiom: true})
	require.NoError(t, err)

	res := fnd.Run(context.Background())
	require.Equal(t, Satisfiable, res.Outcome)
	require.Equal(t, 2, res.Size)

	a, ok := res.Model.Constant(0)
	require.True(t, ok)
	require.Equal(t, 1, a, "symmetry pins the first grounded term to 1")
	f1, _ := res.Model.Func(1, []int{1})
	require.Equal(t, 1, f1)
	f2, ok := res.Model.Func(1, []int{2})
	require.True(t, ok)
	require.Equal(t, 2, f2)
}

func TestNewRejectsBadInputs(t *testing.T) {
	_, err := New(nil, Options{})
	require.Error(t, err)

	prb := parseProblem(t, "p(X)")
	_, err = New(prb, Options{Backend: "minisat"})
	require.Error(t, err)
}

func TestOutcomeString(t *testing.T) {
	require.Equal(t, "SATISFIABLE", Satisfiable.String())
	require.Equal(t, "REFUTED", Refuted.String())
	require.Equal(t, "TIME-LIMIT", TimeLimit.String())
	require.Equal(t, "UNKNOWN", Unknown.String())
	require.Equal(t, "UNKNOWN", Outcome(42).String())
}
