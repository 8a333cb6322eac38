package logic

import "math"

// NoBound is the sort bound of a symbol position about which nothing is
// known. Grounding clamps every bound to the current candidate size, so
// NoBound simply means "the whole domain".
const NoBound = math.MaxInt32

// A Function is a function symbol. Arity 0 functions are the constants of
// the problem. Usage is an occurrence count filled in by preprocessing (or
// by the parser); it only influences the order in which symmetry-breaking
// sequences are built.
type Function struct {
	Name  string
	Arity int
	Usage int
}

// A Predicate is a predicate symbol.
type Predicate struct {
	Name  string
	Arity int
}

// A Signature holds the symbols of a problem, addressed by dense ids.
// Predicate id 0 is reserved for the built-in equality and is never used
// as an ordinary symbol.
type Signature struct {
	Funcs []Function
	Preds []Predicate
}

// NewSignature returns an empty signature with the equality predicate
// pre-registered at id 0.
func NewSignature() *Signature {
	return &Signature{Preds: []Predicate{{Name: "=", Arity: 2}}}
}

// AddFunc registers a function symbol and returns its id.
func (s *Signature) AddFunc(name string, arity int) int {
	s.Funcs = append(s.Funcs, Function{Name: name, Arity: arity})
	return len(s.Funcs) - 1
}

// AddPred registers a predicate symbol and returns its id.
func (s *Signature) AddPred(name string, arity int) int {
	s.Preds = append(s.Preds, Predicate{Name: name, Arity: arity})
	return len(s.Preds) - 1
}

// MaxArity returns the largest function arity in the signature, 0 when
// there are no functions.
func (s *Signature) MaxArity() int {
	max := 0
	for _, f := range s.Funcs {
		if f.Arity > max {
			max = f.Arity
		}
	}
	return max
}

// A SortedSignature is the output of sort inference: a partition of the
// universe into sorts, the constants and proper functions whose result
// belongs to each sort, and per-symbol bounds. FuncBounds[f][0] is the
// bound of f's result sort and FuncBounds[f][1..arity] the bounds of its
// argument sorts; PredBounds[p][i] is the bound of p's i-th argument sort.
//
// Sort inference is outside this module. Callers that have no inference
// pass can use SingleSort.
type SortedSignature struct {
	Sorts      int
	Constants  [][]int
	Functions  [][]int
	FuncBounds [][]int
	PredBounds [][]int
}

// SingleSort builds the degenerate sorted signature putting every symbol
// in one unbounded sort. It yields no grounding pruning at all, but it is
// always correct.
func SingleSort(sig *Signature) *SortedSignature {
	ss := &SortedSignature{
		Sorts:      1,
		Constants:  make([][]int, 1),
		Functions:  make([][]int, 1),
		FuncBounds: make([][]int, len(sig.Funcs)),
		PredBounds: make([][]int, len(sig.Preds)),
	}
	for f, fn := range sig.Funcs {
		if fn.Arity == 0 {
			ss.Constants[0] = append(ss.Constants[0], f)
		} else {
			ss.Functions[0] = append(ss.Functions[0], f)
		}
		bounds := make([]int, fn.Arity+1)
		for i := range bounds {
			bounds[i] = NoBound
		}
		ss.FuncBounds[f] = bounds
	}
	for p, pred := range sig.Preds {
		if p == 0 {
			continue
		}
		bounds := make([]int, pred.Arity)
		for i := range bounds {
			bounds[i] = NoBound
		}
		ss.PredBounds[p] = bounds
	}
	return ss
}
