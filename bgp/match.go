package bgp

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rdfkit/rdfkit/graph"
	"github.com/rdfkit/rdfkit/term"
)

// candidateIter calls yield once for every triple in g that could satisfy
// pat under the current partial binding, substituting bound variables
// first (§4.4 step 2). It does the minimum lookup the pattern's
// concreteness allows — a concrete subject or predicate narrows the
// search to one Description or one predicate's object set, a concrete
// object is tested by membership rather than enumerated against — and it
// stops as soon as yield returns false, rather than building the full
// candidate list up front. That incrementality is what lets Stream
// produce its first solution in bounded time regardless of graph size
// (§4.4 streaming, §8 S6): a fully unbound pattern's first candidate is
// yielded, and can reach emit, before any later subject or predicate is
// even looked at.
func candidateIter(g *graph.Graph, pat TriplePattern, bound Solution, yield func(term.Triple) bool) {
	sTerm, sBound := pat.S.Resolve(bound)
	pTerm, pBound := pat.P.Resolve(bound)
	oTerm, oBound := pat.O.Resolve(bound)

	descsVisited := 0
	defer func() { observeCandidates("subject", descsVisited) }()

	visitDesc := func(d *graph.Description) bool {
		descsVisited++
		var preds []term.IRI
		if pBound {
			iri, ok := pTerm.(term.IRI)
			if !ok {
				return true
			}
			preds = []term.IRI{iri}
		} else {
			preds = d.Predicates()
		}
		for _, p := range preds {
			objs, ok := d.Get(p)
			if !ok {
				continue
			}
			if oBound {
				if !d.Include(p, oTerm) {
					continue
				}
				if !yield(term.Triple{Subject: d.Subject(), Predicate: p, Object: oTerm}) {
					return false
				}
				continue
			}
			for _, o := range objs {
				if !yield(term.Triple{Subject: d.Subject(), Predicate: p, Object: o}) {
					return false
				}
			}
		}
		return true
	}

	if sBound {
		if d := g.Fetch(sTerm); d != nil {
			visitDesc(d)
		}
		return
	}
	for _, s := range g.Subjects() {
		d := g.Fetch(s)
		if d == nil {
			continue
		}
		if !visitDesc(d) {
			return
		}
	}
}

// extend attempts to grow bound with the bindings implied by matching cand
// against pat, enforcing that any variable repeated across positions (in
// this pattern or from an earlier one) binds consistently (§4.4 step 2-3).
func extend(bound Solution, pat TriplePattern, cand term.Triple) (Solution, bool) {
	next := bound.clone()
	if !bindElement(next, pat.S, cand.Subject) {
		return nil, false
	}
	if !bindElement(next, pat.P, cand.Predicate) {
		return nil, false
	}
	if !bindElement(next, pat.O, cand.Object) {
		return nil, false
	}
	return next, true
}

func bindElement(bound Solution, e Element, t term.Term) bool {
	if !e.isVar {
		return term.Equal(e.term, t)
	}
	if cur, ok := bound[e.v]; ok {
		return term.Equal(cur, t)
	}
	bound[e.v] = t
	return true
}

// search performs the shared depth-first join used by both Match and
// Stream: it tries every candidate of patterns[0] against bound, extends
// consistently, and recurses on the rest. emit is called with each full
// solution (restricted to the BGP's free variables by the caller); search
// stops early if emit returns false, which is how Stream implements
// cancellation. Because candidateIter is itself incremental, search never
// does more work than the join actually needs before the next call to
// emit — the property Stream relies on.
func search(ctx context.Context, g *graph.Graph, patterns []TriplePattern, bound Solution, emit func(Solution) bool) bool {
	if ctx.Err() != nil {
		return false
	}
	if len(patterns) == 0 {
		return emit(bound)
	}
	pat, rest := patterns[0], patterns[1:]
	keepGoing := true
	candidateIter(g, pat, bound, func(cand term.Triple) bool {
		next, ok := extend(bound, pat, cand)
		if !ok {
			return true
		}
		if !search(ctx, g, rest, next, emit) {
			keepGoing = false
			return false
		}
		return true
	})
	return keepGoing
}

// Match evaluates a BGP against g, eagerly producing the full solution
// list (§4.4 "materializing"). The zero-pattern BGP yields the single
// empty solution.
func Match(g *graph.Graph, b *BGP) []Solution {
	timer := prometheus.NewTimer(mMatchSeconds)
	defer timer.ObserveDuration()

	planned := plan(b.patterns)
	var out []Solution
	search(context.Background(), g, planned, Solution{}, func(s Solution) bool {
		out = append(out, s.restrict(b.free))
		return true
	})
	if out == nil {
		out = []Solution{}
	}
	mMatchSolutions.Observe(float64(len(out)))
	return out
}
