package logic

import (
	"fmt"
	"io"
	"strings"
)

// A Model is an explicit interpretation over the finite domain {1..Size}.
// It is populated by the extractor on a successful run and read-only
// afterwards. Entries can be missing: a function tuple whose result was
// never constrained stays unset, and lookups report that explicitly
// instead of inventing a value.
type Model struct {
	Size int

	sig   *Signature
	funcs map[int][]int  // per function: table of length Size^arity, 0 = unset
	preds map[int][]int8 // per predicate: -1 false, 0 unset, 1 true
}

// NewModel returns an empty model of the given size over sig.
func NewModel(sig *Signature, size int) *Model {
	return &Model{
		Size:  size,
		sig:   sig,
		funcs: make(map[int][]int),
		preds: make(map[int][]int8),
	}
}

func (m *Model) index(args []int) int {
	idx, mult := 0, 1
	for _, a := range args {
		idx += mult * (a - 1)
		mult *= m.Size
	}
	return idx
}

func tableLen(size, arity int) int {
	n := 1
	for i := 0; i < arity; i++ {
		n *= size
	}
	return n
}

// SetFunc records f(args...) = val. For constants args is empty.
func (m *Model) SetFunc(f int, args []int, val int) {
	table, ok := m.funcs[f]
	if !ok {
		table = make([]int, tableLen(m.Size, m.sig.Funcs[f].Arity))
		m.funcs[f] = table
	}
	table[m.index(args)] = val
}

// SetPred records the truth value of p(args...).
func (m *Model) SetPred(p int, args []int, val bool) {
	table, ok := m.preds[p]
	if !ok {
		table = make([]int8, tableLen(m.Size, m.sig.Preds[p].Arity))
		m.preds[p] = table
	}
	if val {
		table[m.index(args)] = 1
	} else {
		table[m.index(args)] = -1
	}
}

// Func looks up f(args...). ok is false when the entry is unset.
func (m *Model) Func(f int, args []int) (val int, ok bool) {
	table, found := m.funcs[f]
	if !found {
		return 0, false
	}
	v := table[m.index(args)]
	return v, v != 0
}

// Constant looks up the interpretation of the 0-arity function f.
func (m *Model) Constant(f int) (val int, ok bool) {
	return m.Func(f, nil)
}

// Pred looks up the truth value of p(args...). ok is false when unset.
func (m *Model) Pred(p int, args []int) (val, ok bool) {
	table, found := m.preds[p]
	if !found {
		return false, false
	}
	switch table[m.index(args)] {
	case 1:
		return true, true
	case -1:
		return false, true
	default:
		return false, false
	}
}

// EvalTerm evaluates a ground instance of t: every variable of t must be
// bound to a domain element by env. It fails when the term depends on an
// unset function entry, which callers treat as "cannot backfill yet".
func (m *Model) EvalTerm(t Term, env map[int]int) (int, error) {
	if t.IsVar() {
		v, ok := env[t.V]
		if !ok {
			return 0, fmt.Errorf("unbound variable X%d", t.V)
		}
		return v, nil
	}
	args := make([]int, len(t.Args))
	for i, a := range t.Args {
		v, err := m.EvalTerm(a, env)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	v, ok := m.Func(t.Fn, args)
	if !ok {
		return 0, fmt.Errorf("no interpretation for %s/%d", m.sig.Funcs[t.Fn].Name, len(args))
	}
	return v, nil
}

// EvalFormula evaluates a ground instance of f under env. Quantifiers are
// transparent: the extractor substitutes domain elements for all free
// variables before evaluating, so a ConnForall node just evaluates its
// body.
func (m *Model) EvalFormula(f *Formula, env map[int]int) (bool, error) {
	switch f.Conn {
	case ConnTrue:
		return true, nil
	case ConnFalse:
		return false, nil
	case ConnAtom:
		args := make([]int, len(f.Args))
		for i, t := range f.Args {
			v, err := m.EvalTerm(t, env)
			if err != nil {
				return false, err
			}
			args[i] = v
		}
		v, ok := m.Pred(f.Pred, args)
		if !ok {
			return false, fmt.Errorf("no interpretation for %s/%d", m.sig.Preds[f.Pred].Name, len(args))
		}
		return v, nil
	case ConnEq:
		l, err := m.EvalTerm(f.Left, env)
		if err != nil {
			return false, err
		}
		r, err := m.EvalTerm(f.Right, env)
		if err != nil {
			return false, err
		}
		return l == r, nil
	case ConnNot:
		v, err := m.EvalFormula(f.Sub[0], env)
		return !v, err
	case ConnAnd:
		for _, sub := range f.Sub {
			v, err := m.EvalFormula(sub, env)
			if err != nil || !v {
				return false, err
			}
		}
		return true, nil
	case ConnOr:
		for _, sub := range f.Sub {
			v, err := m.EvalFormula(sub, env)
			if err != nil {
				return false, err
			}
			if v {
				return true, nil
			}
		}
		return false, nil
	case ConnIff:
		l, err := m.EvalFormula(f.Sub[0], env)
		if err != nil {
			return false, err
		}
		r, err := m.EvalFormula(f.Sub[1], env)
		if err != nil {
			return false, err
		}
		return l == r, nil
	case ConnForall:
		return m.EvalFormula(f.Sub[0], env)
	default:
		return false, fmt.Errorf("cannot evaluate %s", f.Conn)
	}
}

// WriteText renders the model, one set entry per line, in signature
// order: constants, then functions, then predicates. Unset entries are
// omitted.
func (m *Model) WriteText(w io.Writer) error {
	if _, err := fmt.Fprintf(w, "size: %d\n", m.Size); err != nil {
		return err
	}
	for f, fn := range m.sig.Funcs {
		if fn.Arity != 0 {
			continue
		}
		if v, ok := m.Constant(f); ok {
			if _, err := fmt.Fprintf(w, "%s = %d\n", fn.Name, v); err != nil {
				return err
			}
		}
	}
	for f, fn := range m.sig.Funcs {
		if fn.Arity == 0 {
			continue
		}
		if err := m.writeFuncTable(w, f, fn); err != nil {
			return err
		}
	}
	for p, pred := range m.sig.Preds {
		if p == 0 {
			continue
		}
		if err := m.writePredTable(w, p, pred); err != nil {
			return err
		}
	}
	return nil
}

func (m *Model) writeFuncTable(w io.Writer, f int, fn Function) error {
	for _, args := range m.argTuples(fn.Arity) {
		if v, ok := m.Func(f, args); ok {
			if _, err := fmt.Fprintf(w, "%s(%s) = %d\n", fn.Name, joinInts(args), v); err != nil {
				return err
			}
		}
	}
	return nil
}

func (m *Model) writePredTable(w io.Writer, p int, pred Predicate) error {
	for _, args := range m.argTuples(pred.Arity) {
		if v, ok := m.Pred(p, args); ok {
			if pred.Arity == 0 {
				if _, err := fmt.Fprintf(w, "%s = %t\n", pred.Name, v); err != nil {
					return err
				}
				continue
			}
			if _, err := fmt.Fprintf(w, "%s(%s) = %t\n", pred.Name, joinInts(args), v); err != nil {
				return err
			}
		}
	}
	return nil
}

// argTuples enumerates all argument tuples of the given arity over the
// domain, last position fastest, matching the encoder's tuple order.
func (m *Model) argTuples(arity int) [][]int {
	if arity == 0 {
		return [][]int{nil}
	}
	var out [][]int
	cur := make([]int, arity)
	for i := range cur {
		cur[i] = 1
	}
	for {
		tuple := make([]int, arity)
		copy(tuple, cur)
		out = append(out, tuple)
		i := arity - 1
		for ; i >= 0; i-- {
			if cur[i] == m.Size {
				cur[i] = 1
			} else {
				cur[i]++
				break
			}
		}
		if i < 0 {
			return out
		}
	}
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprintf("%d", v)
	}
	return strings.Join(parts, ",")
}

func (m *Model) String() string {
	var sb strings.Builder
	m.WriteText(&sb)
	return sb.String()
}

// Tables is the serialization-friendly view of a model.
type Tables struct {
	Size       int              `yaml:"size" json:"size"`
	Constants  map[string]int   `yaml:"constants,omitempty" json:"constants,omitempty"`
	Functions  []SymbolTable    `yaml:"functions,omitempty" json:"functions,omitempty"`
	Predicates []PredicateTable `yaml:"predicates,omitempty" json:"predicates,omitempty"`
}

// A SymbolTable lists the set entries of one function.
type SymbolTable struct {
	Name    string       `yaml:"name" json:"name"`
	Entries []FuncEntry  `yaml:"entries" json:"entries"`
}

// A PredicateTable lists the set entries of one predicate.
type PredicateTable struct {
	Name    string      `yaml:"name" json:"name"`
	Entries []PredEntry `yaml:"entries" json:"entries"`
}

// FuncEntry is one function table row f(Args...) = Value.
type FuncEntry struct {
	Args  []int `yaml:"args,flow" json:"args"`
	Value int   `yaml:"value" json:"value"`
}

// PredEntry is one predicate table row p(Args...) = Value.
type PredEntry struct {
	Args  []int `yaml:"args,flow" json:"args"`
	Value bool  `yaml:"value" json:"value"`
}

// Tables exports the set entries of the model for serialization.
func (m *Model) Tables() *Tables {
	out := &Tables{Size: m.Size, Constants: make(map[string]int)}
	for f, fn := range m.sig.Funcs {
		if fn.Arity == 0 {
			if v, ok := m.Constant(f); ok {
				out.Constants[fn.Name] = v
			}
			continue
		}
		table := SymbolTable{Name: fn.Name}
		for _, args := range m.argTuples(fn.Arity) {
			if v, ok := m.Func(f, args); ok {
				table.Entries = append(table.Entries, FuncEntry{Args: args, Value: v})
			}
		}
		if len(table.Entries) > 0 {
			out.Functions = append(out.Functions, table)
		}
	}
	for p, pred := range m.sig.Preds {
		if p == 0 {
			continue
		}
		table := PredicateTable{Name: pred.Name}
		for _, args := range m.argTuples(pred.Arity) {
			if v, ok := m.Pred(p, args); ok {
				table.Entries = append(table.Entries, PredEntry{Args: args, Value: v})
			}
		}
		if len(table.Entries) > 0 {
			out.Predicates = append(out.Predicates, table)
		}
	}
	if len(out.Constants) == 0 {
		out.Constants = nil
	}
	return out
}
