// Package bgp implements the basic-graph-pattern matcher: a builder for
// conjunctive triple-pattern queries, a planner that reorders patterns for
// selectivity, and two interchangeable evaluation strategies (materializing
// and streaming) that must agree on the solution multiset they produce.
//
// Grounded on the teacher's graph/iterator Scanner/Index split (the
// materializing/streaming duality) and graph/path morphism builder (the
// path-to-triples decomposition), generalized from cayley's internal
// value-ref model to this module's term.Term values.
package bgp

import (
	"fmt"

	"github.com/rdfkit/rdfkit/term"
)

// Var is a named placeholder in a triple pattern, distinguishable by type
// from a concrete term: the builder normalizes every raw input position
// into an Element before a BGP is ever evaluated (SPEC_FULL.md design
// notes, "variable representation in BGP").
type Var string

// Element is a single pattern position: either a concrete Term or a Var.
// internal marks placeholders synthesized by the builder itself (path-chain
// midpoints) which never appear in emitted
// solutions, mirroring RDF's treatment of blank nodes in a query pattern as
// non-distinguished variables.
type Element struct {
	term     term.Term
	v        Var
	isVar    bool
	internal bool
}

// Concrete wraps a resolved Term as a non-variable pattern element.
func Concrete(t term.Term) Element { return Element{term: t} }

// Variable wraps a free (user-named) variable as a pattern element.
func Variable(v Var) Element { return Element{v: v, isVar: true} }

func internalVar(v Var) Element { return Element{v: v, isVar: true, internal: true} }

// Resolve substitutes a bound variable in e, returning the term it stands
// for under bound and whether it is currently bound (true for any concrete
// element).
func (e Element) Resolve(bound Solution) (term.Term, bool) {
	if !e.isVar {
		return e.term, true
	}
	t, ok := bound[e.v]
	return t, ok
}

// TriplePattern is a triple whose positions may be variables or concrete
// terms. Predicate never admits a literal element's underlying term except
// as an IRI; that constraint is enforced at build time.
type TriplePattern struct {
	S, P, O Element
}

func (e Element) String() string {
	if e.isVar {
		return "?" + string(e.v)
	}
	return e.term.String()
}

func (p TriplePattern) String() string {
	return fmt.Sprintf("(%s %s %s)", p.S, p.P, p.O)
}

// vars returns the distinct variables appearing in the pattern.
func (p TriplePattern) vars() []Var {
	var out []Var
	seen := map[Var]bool{}
	for _, e := range []Element{p.S, p.P, p.O} {
		if e.isVar && !seen[e.v] {
			seen[e.v] = true
			out = append(out, e.v)
		}
	}
	return out
}

// Solution is a mapping from variable name to the term it is bound to.
type Solution map[Var]term.Term

func (s Solution) clone() Solution {
	out := make(Solution, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// restrict returns the subset of s whose keys are in free.
func (s Solution) restrict(free map[Var]bool) Solution {
	out := make(Solution, len(free))
	for k, v := range s {
		if free[k] {
			out[k] = v
		}
	}
	return out
}

// BGP is an ordered, planned conjunction of triple patterns, plus the set
// of free (user-named, non-internal) variables that survive into emitted
// solutions.
type BGP struct {
	patterns []TriplePattern
	free     map[Var]bool
}

// Patterns returns the BGP's triple patterns in construction order (not the
// planner's evaluation order, which is computed fresh per Match/Stream call
// from the patterns alone).
func (b *BGP) Patterns() []TriplePattern { return append([]TriplePattern(nil), b.patterns...) }

// FreeVars returns the BGP's free variables, the positions that appear in
// every emitted Solution.
func (b *BGP) FreeVars() []Var {
	out := make([]Var, 0, len(b.free))
	for v := range b.free {
		out = append(out, v)
	}
	return out
}
