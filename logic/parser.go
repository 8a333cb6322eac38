package logic

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// A ClauseSet is a parsed flat clause set together with the signature its
// clauses mention.
type ClauseSet struct {
	Sig     *Signature
	Clauses []*Clause
}

// Parse reads a clause set in the fcnf format: one clause per line,
// literals separated by "|", '#' or '%' starting a comment. A literal is
// either a predicate application over variables ("p(X,Y)", optionally
// negated with "~"), a two-variable equality ("X = Y", "X != Y"), or a
// rewrite equality between a function application and a variable
// ("f(X) = Y", "a != X"). Variables start with an uppercase letter,
// symbols with a lowercase one. Terms must already be flat; nested
// applications are rejected.
func Parse(r io.Reader) (*ClauseSet, error) {
	p := &parser{
		sig:   NewSignature(),
		funcs: make(map[string]int),
		preds: make(map[string]int),
	}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := scanner.Text()
		if i := strings.IndexAny(text, "#%"); i >= 0 {
			text = text[:i]
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		c, err := p.parseClause(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %v", line, err)
		}
		p.clauses = append(p.clauses, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("could not read clause set: %v", err)
	}
	return &ClauseSet{Sig: p.sig, Clauses: p.clauses}, nil
}

type parser struct {
	sig     *Signature
	funcs   map[string]int
	preds   map[string]int
	clauses []*Clause
}

// clause-local variable numbering, in order of first occurrence.
type varScope struct {
	idx map[string]int
}

func (vs *varScope) get(name string) int {
	if i, ok := vs.idx[name]; ok {
		return i
	}
	i := len(vs.idx)
	vs.idx[name] = i
	return i
}

func (p *parser) parseClause(text string) (*Clause, error) {
	scope := &varScope{idx: make(map[string]int)}
	parts := strings.Split(text, "|")
	lits := make([]Literal, 0, len(parts))
	for _, part := range parts {
		lit, err := p.parseLiteral(strings.TrimSpace(part), scope)
		if err != nil {
			return nil, err
		}
		lits = append(lits, lit)
	}
	return &Clause{Lits: lits, NbVars: len(scope.idx)}, nil
}

func (p *parser) parseLiteral(text string, scope *varScope) (Literal, error) {
	if text == "" {
		return Literal{}, fmt.Errorf("empty literal")
	}
	positive := true
	if strings.HasPrefix(text, "~") {
		positive = false
		text = strings.TrimSpace(text[1:])
	}
	left, right, eq, hasEq, err := splitEquality(text)
	if err != nil {
		return Literal{}, err
	}
	if !hasEq {
		name, args, err := parseAtom(left)
		if err != nil {
			return Literal{}, err
		}
		if isVariable(name) {
			return Literal{}, fmt.Errorf("variable %q cannot be a predicate", name)
		}
		vars, err := p.argVars(args, scope)
		if err != nil {
			return Literal{}, err
		}
		pid, err := p.predicate(name, len(vars))
		if err != nil {
			return Literal{}, err
		}
		return NewPred(positive, pid, vars...), nil
	}
	if !eq {
		positive = !positive
	}
	lName, lArgs, err := parseAtom(left)
	if err != nil {
		return Literal{}, err
	}
	rName, rArgs, err := parseAtom(right)
	if err != nil {
		return Literal{}, err
	}
	// Normalize so the function application, if any, is on the left.
	if isVariable(lName) && !isVariable(rName) {
		lName, rName = rName, lName
		lArgs, rArgs = rArgs, lArgs
	}
	if isVariable(lName) {
		if len(lArgs) > 0 || len(rArgs) > 0 {
			return Literal{}, fmt.Errorf("variables take no arguments in %q", text)
		}
		return NewEq(positive, scope.get(lName), scope.get(rName)), nil
	}
	if !isVariable(rName) {
		return Literal{}, fmt.Errorf("equality %q must have a variable on one side (clauses must be flat)", text)
	}
	if len(rArgs) > 0 {
		return Literal{}, fmt.Errorf("variables take no arguments in %q", text)
	}
	vars, err := p.argVars(lArgs, scope)
	if err != nil {
		return Literal{}, err
	}
	fid, err := p.function(lName, len(vars))
	if err != nil {
		return Literal{}, err
	}
	p.sig.Funcs[fid].Usage++
	return NewFuncEq(positive, fid, vars, scope.get(rName)), nil
}

// splitEquality cuts "lhs op rhs" at the first top-level = or !=.
func splitEquality(text string) (left, right string, eq, found bool, err error) {
	depth := 0
	for i := 0; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
		case '!':
			if depth == 0 && i+1 < len(text) && text[i+1] == '=' {
				return strings.TrimSpace(text[:i]), strings.TrimSpace(text[i+2:]), false, true, nil
			}
		case '=':
			if depth == 0 {
				return strings.TrimSpace(text[:i]), strings.TrimSpace(text[i+1:]), true, true, nil
			}
		}
	}
	if depth != 0 {
		return "", "", false, false, fmt.Errorf("unbalanced parentheses in %q", text)
	}
	return text, "", false, false, nil
}

// parseAtom parses "name" or "name(arg,...,arg)" where every arg is a bare
// identifier.
func parseAtom(text string) (name string, args []string, err error) {
	open := strings.IndexByte(text, '(')
	if open < 0 {
		if !isIdent(text) {
			return "", nil, fmt.Errorf("invalid identifier %q", text)
		}
		return text, nil, nil
	}
	if !strings.HasSuffix(text, ")") {
		return "", nil, fmt.Errorf("unbalanced parentheses in %q", text)
	}
	name = strings.TrimSpace(text[:open])
	if !isIdent(name) {
		return "", nil, fmt.Errorf("invalid identifier %q", name)
	}
	inner := text[open+1 : len(text)-1]
	for _, arg := range strings.Split(inner, ",") {
		arg = strings.TrimSpace(arg)
		if !isIdent(arg) {
			return "", nil, fmt.Errorf("invalid argument %q in %q (clauses must be flat)", arg, text)
		}
		args = append(args, arg)
	}
	return name, args, nil
}

func (p *parser) argVars(args []string, scope *varScope) ([]int, error) {
	if len(args) == 0 {
		return nil, nil
	}
	vars := make([]int, len(args))
	for i, a := range args {
		if !isVariable(a) {
			return nil, fmt.Errorf("argument %q must be a variable (clauses must be flat)", a)
		}
		vars[i] = scope.get(a)
	}
	return vars, nil
}

func (p *parser) function(name string, arity int) (int, error) {
	if id, ok := p.funcs[name]; ok {
		if p.sig.Funcs[id].Arity != arity {
			return 0, fmt.Errorf("function %q used with arity %d and %d", name, p.sig.Funcs[id].Arity, arity)
		}
		return id, nil
	}
	id := p.sig.AddFunc(name, arity)
	p.funcs[name] = id
	return id, nil
}

func (p *parser) predicate(name string, arity int) (int, error) {
	if id, ok := p.preds[name]; ok {
		if p.sig.Preds[id].Arity != arity {
			return 0, fmt.Errorf("predicate %q used with arity %d and %d", name, p.sig.Preds[id].Arity, arity)
		}
		return id, nil
	}
	id := p.sig.AddPred(name, arity)
	p.preds[name] = id
	return id, nil
}

func isVariable(name string) bool {
	return len(name) > 0 && name[0] >= 'A' && name[0] <= 'Z'
}

func isIdent(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		letter := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		digit := c >= '0' && c <= '9'
		if !letter && !digit && c != '_' {
			return false
		}
		if i == 0 && (digit || c == '_') {
			return false
		}
	}
	return true
}
