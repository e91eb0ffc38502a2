package graph

import "github.com/rdfkit/rdfkit/term"

// Diff computes the structural difference between two graphs by
// term-equality: the triples present in b but not a ("added"), and the
// triples present in a but not b ("removed"). Grounded on the teacher's
// added/removed quad bookkeeping when swapping QuadWriter backends
// (internal/db), generalized here to a pure Graph-to-Graph comparison
// since this module has no backend to swap (SPEC_FULL.md "Diff").
func Diff(a, b *Graph) (added, removed []term.Triple) {
	for _, t := range b.Triples() {
		if !a.Include(t) {
			added = append(added, t)
		}
	}
	for _, t := range a.Triples() {
		if !b.Include(t) {
			removed = append(removed, t)
		}
	}
	return added, removed
}
