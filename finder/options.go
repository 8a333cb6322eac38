package finder

import (
	"io"
	"math"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// WidgetOrder selects how the symmetry-breaking sequence of grounded
// terms is laid out within each sort.
type WidgetOrder byte

const (
	// FunctionFirst emits all groundings of one function before moving
	// to the next function.
	FunctionFirst = WidgetOrder(iota)
	// ArgumentFirst emits one grounding of every function before moving
	// to the next argument value.
	ArgumentFirst
	// Diagonal interleaves functions and argument values diagonally.
	Diagonal
)

func (o WidgetOrder) String() string {
	switch o {
	case ArgumentFirst:
		return "argument-first"
	case Diagonal:
		return "diagonal"
	default:
		return "function-first"
	}
}

// ParseWidgetOrder parses the command-line spelling of a WidgetOrder.
func ParseWidgetOrder(s string) (WidgetOrder, error) {
	switch s {
	case "", "function-first":
		return FunctionFirst, nil
	case "argument-first":
		return ArgumentFirst, nil
	case "diagonal":
		return Diagonal, nil
	default:
		return FunctionFirst, errors.Errorf("unknown widget order %q", s)
	}
}

// SymbolOrder selects the ordering of symbols inside each sort when the
// symmetry sequences are built.
type SymbolOrder byte

const (
	// OccurrenceOrder keeps symbols in signature order.
	OccurrenceOrder = SymbolOrder(iota)
	// InputUsageOrder sorts symbols by their usage count recomputed
	// from the input clauses, most used first.
	InputUsageOrder
	// PreprocessedUsageOrder sorts by the usage counts the signature
	// already carries (typically filled during preprocessing).
	PreprocessedUsageOrder
)

func (o SymbolOrder) String() string {
	switch o {
	case InputUsageOrder:
		return "input-usage"
	case PreprocessedUsageOrder:
		return "preprocessed-usage"
	default:
		return "occurrence"
	}
}

// ParseSymbolOrder parses the command-line spelling of a SymbolOrder.
func ParseSymbolOrder(s string) (SymbolOrder, error) {
	switch s {
	case "", "occurrence":
		return OccurrenceOrder, nil
	case "input-usage":
		return InputUsageOrder, nil
	case "preprocessed-usage":
		return PreprocessedUsageOrder, nil
	default:
		return OccurrenceOrder, errors.Errorf("unknown symbol order %q", s)
	}
}

// Options configures a Finder. The zero value is usable: search starts at
// size 1 with the default backend and full-prefix canonicity axioms.
type Options struct {
	// StartSize is the first candidate domain size. Values below 1 are
	// treated as 1.
	StartSize int
	// StartWithConstants seeds the first candidate size with the number
	// of constants instead of StartSize.
	StartWithConstants bool
	// SymmetryRatio is the fraction of the candidate size used as the
	// canonicity-axiom prefix width. Values outside (0,1] mean 1.0.
	// The ratio is an unproven volume/completeness trade-off; it never
	// affects the ordering axioms.
	SymmetryRatio float64
	// WidgetOrder and SymbolOrder shape the symmetry sequences.
	WidgetOrder WidgetOrder
	SymbolOrder SymbolOrder
	// Backend names the SAT engine (sat.Gophersat, sat.Gini). Empty
	// selects gophersat.
	Backend string
	// MaxVars caps the boolean variable space of one attempt. An
	// attempt needing more is abandoned and the run reports Unknown.
	// Values below 1 mean MaxInt32.
	MaxVars int
	// UseModelSizeAxiom additionally asserts, for signatures whose
	// functions have arity at most 1, that some grounded term takes the
	// maximal domain value.
	UseModelSizeAxiom bool
	// Logger receives per-attempt progress. Nil discards.
	Logger *logrus.Logger
}

func (o Options) withDefaults() Options {
	if o.StartSize < 1 {
		o.StartSize = 1
	}
	if o.SymmetryRatio <= 0 || o.SymmetryRatio > 1 {
		o.SymmetryRatio = 1
	}
	if o.MaxVars < 1 {
		o.MaxVars = math.MaxInt32
	}
	if o.Logger == nil {
		o.Logger = logrus.New()
		o.Logger.SetOutput(io.Discard)
	}
	return o
}
