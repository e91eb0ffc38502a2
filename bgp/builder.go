package bgp

import (
	"fmt"

	"github.com/rdfkit/rdfkit/rdferr"
	"github.com/rdfkit/rdfkit/term"
	"github.com/rdfkit/rdfkit/voc/rdf"
)

// A is the atom that, in predicate position, expands to the IRI of
// rdf:type (§4.4 pattern-syntax contract, "a" keyword).
var A = struct{ rdfTypeAtom bool }{true}

// Stmt is one statement accepted by New: a plain triple, a fan-out tuple,
// or a predicate path. Build Stmts with T, Fan, or Path; the zero value is
// not a valid Stmt.
type Stmt struct {
	s, p  interface{}
	os    []interface{} // fan-out objects (len 1 for a plain triple)
	preds []interface{} // path predicates beyond p, when this is a Path
	o     interface{}   // path tail object, when this is a Path
	path  bool
}

// T builds a single triple-pattern statement (s, p, o).
func T(s, p, o interface{}) Stmt { return Stmt{s: s, p: p, os: []interface{}{o}} }

// Fan builds a fan-out statement: a quadruple (s, p, o1, o2, …) expanding
// to one triple pattern (s, p, oᵢ) per object (§4.4).
func Fan(s, p interface{}, objects ...interface{}) Stmt {
	return Stmt{s: s, p: p, os: objects}
}

// Path builds a predicate-path statement: chain = [p1, p2, …, pn, o] (n≥2
// predicates followed by the tail object) expanding to
// (s, p1, b1), (b1, p2, b2), …, (b_{n-1}, pn, o), with each bᵢ a fresh
// internal variable generated by the builder (§4.4).
func Path(s interface{}, chain ...interface{}) Stmt {
	if len(chain) < 3 {
		return Stmt{s: s, path: true} // arity error surfaced by expandPath
	}
	return Stmt{s: s, preds: chain[:len(chain)-1], o: chain[len(chain)-1], path: true}
}

// New builds a BGP from a sequence of statements, resolving every position
// through the coercion layer (raw strings, vocabulary tokens, native
// values) except Var and A, which the builder recognizes directly.
// Resolver may be nil to disable vocabulary-token coercion.
func New(res term.Resolver, stmts ...Stmt) (*BGP, error) {
	b := &BGP{free: map[Var]bool{}}
	gen := &bnodeGen{}
	for i, st := range stmts {
		pats, err := st.expand(res, gen, b.free)
		if err != nil {
			return nil, fmt.Errorf("bgp: statement %d: %w", i, err)
		}
		b.patterns = append(b.patterns, pats...)
	}
	return b, nil
}

type bnodeGen struct{ n int }

func (g *bnodeGen) next() Var {
	g.n++
	return Var(fmt.Sprintf("_bgp%d", g.n))
}

func (st Stmt) expand(res term.Resolver, gen *bnodeGen, free map[Var]bool) ([]TriplePattern, error) {
	if st.path {
		return st.expandPath(res, gen, free)
	}
	if len(st.os) == 0 {
		return nil, &rdferr.InvalidQuery{Reason: "statement has no object"}
	}
	sElem, err := elementFor(st.s, res, free, "subject")
	if err != nil {
		return nil, err
	}
	pElem, err := predicateElement(st.p, res, free)
	if err != nil {
		return nil, err
	}
	out := make([]TriplePattern, 0, len(st.os))
	for _, raw := range st.os {
		oElem, err := elementFor(raw, res, free, "object")
		if err != nil {
			return nil, err
		}
		out = append(out, TriplePattern{S: sElem, P: pElem, O: oElem})
	}
	return out, nil
}

func (st Stmt) expandPath(res term.Resolver, gen *bnodeGen, free map[Var]bool) ([]TriplePattern, error) {
	if len(st.preds) < 2 || st.o == nil {
		return nil, &rdferr.InvalidQuery{Reason: "path requires at least two predicates and a tail object"}
	}
	sElem, err := elementFor(st.s, res, free, "subject")
	if err != nil {
		return nil, err
	}
	var out []TriplePattern
	cur := sElem
	for i, rawP := range st.preds {
		pElem, err := predicateElement(rawP, res, free)
		if err != nil {
			return nil, err
		}
		last := i == len(st.preds)-1
		var next Element
		if last {
			next, err = elementFor(st.o, res, free, "object")
			if err != nil {
				return nil, err
			}
		} else {
			next = internalVar(gen.next())
		}
		out = append(out, TriplePattern{S: cur, P: pElem, O: next})
		cur = next
	}
	return out, nil
}

// elementFor normalizes a raw statement position. A Var is recognized
// directly; anything else goes through the coercion layer. Literals are
// rejected in subject position.
func elementFor(raw interface{}, res term.Resolver, free map[Var]bool, position string) (Element, error) {
	if v, ok := raw.(Var); ok {
		free[v] = true
		return Variable(v), nil
	}
	t, err := term.Coerce(raw, res)
	if err != nil {
		return Element{}, err
	}
	if position == "subject" {
		if _, isLit := t.(term.Literal); isLit {
			return Element{}, &rdferr.InvalidQuery{Reason: "literal not allowed in subject position"}
		}
	}
	return Concrete(t), nil
}

// predicateElement normalizes a predicate position: a Var, the A atom
// (expanding to rdf:type), or an IRI-coercible value. Literals are always
// rejected in predicate position.
func predicateElement(raw interface{}, res term.Resolver, free map[Var]bool) (Element, error) {
	if raw == A {
		return Concrete(rdf.Type), nil
	}
	if v, ok := raw.(Var); ok {
		free[v] = true
		return Variable(v), nil
	}
	t, err := term.Coerce(raw, res)
	if err != nil {
		return Element{}, err
	}
	if _, ok := t.(term.IRI); !ok {
		return Element{}, &rdferr.InvalidQuery{Reason: "predicate position must be an IRI, a Var, or bgp.A"}
	}
	return Concrete(t), nil
}
