package graph

import "github.com/rdfkit/rdfkit/term"

// Isomorphic reports whether a and b contain the same triples up to some
// consistent renaming of blank nodes — the weaker relation Testable
// Property 6 (serialize-parse round trip) requires, as opposed to Equal's
// byte-exact blank-node labels. A root blank-node subject inlined as a
// Turtle "[ ... ]" block is reparsed under a fresh label, so round-trip
// tests need this instead of Equal.
func Isomorphic(a, b *Graph) bool {
	if !term.Equal(a.name, b.name) {
		return false
	}
	at, bt := a.Triples(), b.Triples()
	if len(at) != len(bt) {
		return false
	}
	aBlanks := distinctBlanks(at)
	bBlanks := distinctBlanks(bt)
	if len(aBlanks) != len(bBlanks) {
		return false
	}
	return matchBlanks(at, bt, aBlanks, bBlanks, 0, map[term.BlankNode]term.BlankNode{}, map[term.BlankNode]bool{})
}

func distinctBlanks(ts []term.Triple) []term.BlankNode {
	seen := map[term.BlankNode]bool{}
	var out []term.BlankNode
	add := func(t term.Term) {
		if bn, ok := t.(term.BlankNode); ok && !seen[bn] {
			seen[bn] = true
			out = append(out, bn)
		}
	}
	for _, t := range ts {
		add(t.Subject)
		add(t.Object)
	}
	return out
}

// matchBlanks tries every bijection from aBlanks to bBlanks (small graphs
// only; this is a test/diagnostic helper, not a BGP-matcher-scale
// operation) until one makes at and bt equal as multisets of triples.
func matchBlanks(at, bt []term.Triple, aBlanks, bBlanks []term.BlankNode, i int, mapping map[term.BlankNode]term.BlankNode, used map[term.BlankNode]bool) bool {
	if i == len(aBlanks) {
		return sameTriplesUnderMapping(at, bt, mapping)
	}
	a := aBlanks[i]
	for _, cand := range bBlanks {
		if used[cand] {
			continue
		}
		mapping[a], used[cand] = cand, true
		if matchBlanks(at, bt, aBlanks, bBlanks, i+1, mapping, used) {
			return true
		}
		delete(mapping, a)
		used[cand] = false
	}
	return false
}

func sameTriplesUnderMapping(at, bt []term.Triple, mapping map[term.BlankNode]term.BlankNode) bool {
	translate := func(t term.Term) term.Term {
		if bn, ok := t.(term.BlankNode); ok {
			if m, ok := mapping[bn]; ok {
				return m
			}
		}
		return t
	}
	want := map[string]int{}
	for _, t := range bt {
		want[t.String()]++
	}
	for _, t := range at {
		mapped := term.Triple{Subject: translate(t.Subject), Predicate: t.Predicate, Object: translate(t.Object)}
		key := mapped.String()
		if want[key] == 0 {
			return false
		}
		want[key]--
	}
	return true
}
