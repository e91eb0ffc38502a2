package ttl

import (
	"github.com/rdfkit/rdfkit/graph"
	"github.com/rdfkit/rdfkit/term"
	"github.com/rdfkit/rdfkit/voc/rdf"
)

// analysis is the result of §4.5 step 1's preprocessing pass over a graph's
// triples: which blank nodes are roots, inlinable, or multiply-referenced
// ("named"), and which belong to a well-formed RDF list and so render with
// "( ... )" sugar at their single point of use instead of a property list.
type analysis struct {
	// objRefCount counts, for each blank node, how many triples hold it as
	// an object. 0 means "root" (only ever a subject), 1 means "inlinable"
	// (render "[ ... ]" at its one use site, never as a top-level
	// description), more means "named" (_:label both at its use sites and
	// as its own top-level description).
	objRefCount map[term.BlankNode]int

	// listMembers holds every blank node — head or interior — belonging to
	// a well-formed list chain. These never get a top-level description of
	// their own: isListShaped requires exactly rdf:first/rdf:rest and
	// nothing else, so there is never anything left to say about them once
	// the chain is rendered as list sugar.
	listMembers map[term.BlankNode]bool

	// listItems maps a list's head node to its rdf:first values, in order.
	listItems map[term.BlankNode][]term.Term
}

func analyze(g *graph.Graph) *analysis {
	a := &analysis{
		objRefCount: map[term.BlankNode]int{},
		listMembers: map[term.BlankNode]bool{},
		listItems:   map[term.BlankNode][]term.Term{},
	}
	for _, t := range g.Triples() {
		if bn, ok := t.Object.(term.BlankNode); ok {
			a.objRefCount[bn]++
		}
	}

	listShaped := map[term.BlankNode]bool{}
	restTargets := map[term.BlankNode]bool{}
	for _, s := range g.Subjects() {
		bn, ok := s.(term.BlankNode)
		if !ok {
			continue
		}
		d := g.Fetch(bn)
		if !isListShaped(d) {
			continue
		}
		listShaped[bn] = true
		if rest, ok := d.First(rdf.Rest); ok {
			if restBN, ok := rest.(term.BlankNode); ok {
				restTargets[restBN] = true
			}
		}
	}
	// A head is a list-shaped node nobody else's rdf:rest points at; every
	// other list-shaped node is reached while walking out from some head.
	// A head that is also never any triple's object (objRefCount 0) has no
	// point of use to sugar into "( ... )" — "(items) :p :o ." only makes
	// sense where something points at the list — so such orphan lists are
	// left out of listMembers entirely and fall back to ordinary
	// blank-node property-list rendering, one nested "[ ... ]" per node.
	for bn := range listShaped {
		if !restTargets[bn] && a.objRefCount[bn] > 0 {
			a.walkListFrom(g, bn, listShaped)
		}
	}
	return a
}

// isListShaped reports whether d's only predicates are rdf:first and
// rdf:rest, each with exactly one object — the shape list_nodes (§4.5
// step 1) requires of every chain member but the terminal rdf:nil.
func isListShaped(d *graph.Description) bool {
	if d == nil {
		return false
	}
	preds := d.Predicates()
	if len(preds) != 2 {
		return false
	}
	for _, p := range preds {
		if p != rdf.First && p != rdf.Rest {
			return false
		}
	}
	firsts, _ := d.Get(rdf.First)
	rests, _ := d.Get(rdf.Rest)
	return len(firsts) == 1 && len(rests) == 1
}

// walkListFrom follows head's rdf:first/rdf:rest chain. A chain is
// well-formed only if it terminates at rdf:nil and every interior node
// (not head itself) is referenced exactly once as an object — otherwise
// the chain is left out of listMembers entirely and every node in it
// serializes as ordinary blank-node properties.
func (a *analysis) walkListFrom(g *graph.Graph, head term.BlankNode, listShaped map[term.BlankNode]bool) {
	var items []term.Term
	var members []term.BlankNode
	visited := map[term.BlankNode]bool{}
	cur := head
	for {
		if visited[cur] || !listShaped[cur] {
			return
		}
		if cur != head && a.objRefCount[cur] != 1 {
			return
		}
		visited[cur] = true
		d := g.Fetch(cur)
		first, _ := d.First(rdf.First)
		rest, _ := d.First(rdf.Rest)
		items = append(items, first)
		members = append(members, cur)

		if restIRI, ok := rest.(term.IRI); ok && restIRI == rdf.Nil {
			for _, m := range members {
				a.listMembers[m] = true
			}
			a.listItems[head] = items
			return
		}
		restBN, ok := rest.(term.BlankNode)
		if !ok {
			return
		}
		cur = restBN
	}
}
